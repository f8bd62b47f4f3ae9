package render

import (
	"errors"
	"image"
	"io"

	"github.com/gogpu/gg"
)

// ErrNotRendered is returned when reading a surface that was never drawn.
var ErrNotRendered = errors.New("render: surface has no content")

// Surface is the collage raster. The zero value has no size and reports
// 0x0 until the first render pass; Clear returns it to that state.
// A Surface is owned by the UI goroutine and is not safe for concurrent use.
type Surface struct {
	dc *gg.Context
}

// Width returns the raster width, 0 before the first render.
func (s *Surface) Width() int {
	if s == nil || s.dc == nil {
		return 0
	}
	return s.dc.Width()
}

// Height returns the raster height, 0 before the first render.
func (s *Surface) Height() int {
	if s == nil || s.dc == nil {
		return 0
	}
	return s.dc.Height()
}

// Image returns a copy of the current raster, or nil before the first render.
func (s *Surface) Image() image.Image {
	if s == nil || s.dc == nil {
		return nil
	}
	return s.dc.Image()
}

// EncodeJPEG writes the raster as JPEG at the given quality (1-100).
func (s *Surface) EncodeJPEG(w io.Writer, quality int) error {
	if s == nil || s.dc == nil {
		return ErrNotRendered
	}
	return s.dc.EncodeJPEG(w, quality)
}

// Clear drops the raster.
func (s *Surface) Clear() {
	if s == nil || s.dc == nil {
		return
	}
	_ = s.dc.Close()
	s.dc = nil
}

// reset returns a context of the requested size, reusing the existing one
// when the size did not change.
func (s *Surface) reset(width, height int) *gg.Context {
	if s.dc != nil && s.dc.Width() == width && s.dc.Height() == height {
		s.dc.ResetClip()
		s.dc.Identity()
		s.dc.ClearPath()
		return s.dc
	}
	if s.dc != nil {
		_ = s.dc.Close()
	}
	s.dc = gg.NewContext(width, height)
	return s.dc
}
