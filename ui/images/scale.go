package images

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
)

// EncodePNG encodes an image to PNG bytes. Errors are ignored and may return an empty slice.
func EncodePNG(img image.Image) []byte {
	if img == nil {
		return nil
	}
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

// ScaleToFit scales src down so that it fits within maxW x maxH preserving
// aspect ratio. If the source already fits, the original is returned.
func ScaleToFit(src image.Image, maxW, maxH int) image.Image {
	if src == nil {
		return nil
	}
	if maxW < 1 {
		maxW = 1
	}
	if maxH < 1 {
		maxH = 1
	}
	b := src.Bounds()
	if b.Dx() <= maxW && b.Dy() <= maxH {
		return src
	}
	return imaging.Fit(src, maxW, maxH, imaging.Linear)
}

// Thumbnail returns a w x h image cropped from the center of src, the same
// cover fit the collage zones use.
func Thumbnail(src image.Image, w, h int) image.Image {
	if src == nil || w < 1 || h < 1 {
		return nil
	}
	if b := src.Bounds(); b.Empty() {
		return nil
	}
	return imaging.Fill(src, w, h, imaging.Center, imaging.Linear)
}

// Placeholder is a flat w x h image shown where nothing has been rendered.
func Placeholder(w, h int, c string) image.Image {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	var col color.Color = color.White
	if parsed, err := colorful.Hex(c); err == nil {
		col = parsed
	}
	return imaging.New(w, h, col)
}
