package layout

import (
	"fmt"
	"image"
	"math"
)

// Placement is where a bitmap is drawn so that it covers a zone.
// The rectangle may extend past the zone on one axis; the excess is
// symmetric and must be clipped to the zone when drawing.
type Placement struct {
	DrawX, DrawY          float64
	DrawWidth, DrawHeight float64
}

// FitRect computes the cover fit of a width x height bitmap into zone.
// A relatively wider image matches the zone height and is centered
// horizontally; otherwise it matches the zone width and is centered
// vertically. Degenerate input is a caller bug and panics.
func FitRect(width, height int, zone Zone) Placement {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("layout: FitRect with non-positive bitmap size %dx%d", width, height))
	}
	if zone.Empty() {
		panic(fmt.Sprintf("layout: FitRect with empty zone %vx%v", zone.Width, zone.Height))
	}
	imgRatio := float64(width) / float64(height)
	zoneRatio := zone.Width / zone.Height

	if imgRatio > zoneRatio {
		drawHeight := zone.Height
		drawWidth := drawHeight * imgRatio
		return Placement{
			DrawX:      zone.X + (zone.Width-drawWidth)/2,
			DrawY:      zone.Y,
			DrawWidth:  drawWidth,
			DrawHeight: drawHeight,
		}
	}
	drawWidth := zone.Width
	drawHeight := drawWidth / imgRatio
	return Placement{
		DrawX:      zone.X,
		DrawY:      zone.Y + (zone.Height-drawHeight)/2,
		DrawWidth:  drawWidth,
		DrawHeight: drawHeight,
	}
}

// SourceCrop maps the zone back into bitmap pixel space: the part of a
// width x height bitmap that remains visible once the placement is clipped
// to the zone. The result is clamped to the bitmap bounds and never empty.
func (p Placement) SourceCrop(width, height int, zone Zone) image.Rectangle {
	scale := p.DrawWidth / float64(width)
	if scale <= 0 {
		return image.Rect(0, 0, width, height)
	}
	x0 := (zone.X - p.DrawX) / scale
	y0 := (zone.Y - p.DrawY) / scale
	x1 := x0 + zone.Width/scale
	y1 := y0 + zone.Height/scale

	r := image.Rect(
		int(math.Round(x0)),
		int(math.Round(y0)),
		int(math.Round(x1)),
		int(math.Round(y1)),
	).Intersect(image.Rect(0, 0, width, height))
	if r.Empty() {
		// sub-pixel zone on a huge bitmap; keep one source pixel
		cx := int(math.Min(math.Max(math.Floor((x0+x1)/2), 0), float64(width-1)))
		cy := int(math.Min(math.Max(math.Floor((y0+y1)/2), 0), float64(height-1)))
		return image.Rect(cx, cy, cx+1, cy+1)
	}
	return r
}
