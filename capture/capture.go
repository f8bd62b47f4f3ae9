// Package capture grabs the screen as a slot source.
package capture

import (
	"errors"
	"image"

	"github.com/vova616/screenshot"

	"github.com/soocke/collage-go/domain/bitmap"
)

// Source is the bitmap source name used for screen grabs.
const Source = "screen"

// Grab returns a capture of the primary monitor as a bitmap.
func Grab() (*bitmap.Bitmap, error) {
	img, err := screenshot.CaptureScreen()
	if err != nil {
		return nil, err
	}
	return fromRGBA(img)
}

func fromRGBA(img *image.RGBA) (*bitmap.Bitmap, error) {
	if img == nil {
		return nil, errors.New("capture: no image")
	}
	return bitmap.New(img, Source)
}
