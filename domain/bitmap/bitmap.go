// Package bitmap turns user supplied files into decoded images for the
// collage slots.
package bitmap

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"

	// extra decoders picked up by image.Decode through imaging
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrNotImage is returned when the input bytes are not a supported image.
var ErrNotImage = errors.New("bitmap: not an image")

// ErrEmpty is returned when decoding yields an image without pixels.
var ErrEmpty = errors.New("bitmap: image has no pixels")

// Bitmap is an immutable decoded image. Width and Height are always positive.
type Bitmap struct {
	Image  image.Image
	Width  int
	Height int
	// Source names where the pixels came from (file path or "screen").
	Source string
}

// New wraps an already decoded image.
func New(img image.Image, source string) (*Bitmap, error) {
	if img == nil {
		return nil, ErrEmpty
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, ErrEmpty
	}
	return &Bitmap{Image: img, Width: b.Dx(), Height: b.Dy(), Source: source}, nil
}

// Ratio returns width / height.
func (b *Bitmap) Ratio() float64 {
	if b == nil || b.Height == 0 {
		return 0
	}
	return float64(b.Width) / float64(b.Height)
}

// Decode sniffs and decodes r. EXIF orientation is applied so phone photos
// come out upright.
func Decode(r io.Reader, source string) (*Bitmap, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("bitmap: read %s: %w", source, err)
	}
	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return nil, fmt.Errorf("%w: %s is %s", ErrNotImage, source, mt.String())
	}
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNotImage, source, err)
	}
	return New(img, source)
}

// Open decodes the file at path.
func Open(path string) (*Bitmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f, filepath.Base(path))
}
