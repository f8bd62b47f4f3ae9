// Package render draws the two collage slots onto a Surface.
package render

import (
	"fmt"
	"log/slog"

	"github.com/disintegration/imaging"
	"github.com/gogpu/gg"

	"github.com/soocke/collage-go/domain/bitmap"
	"github.com/soocke/collage-go/domain/layout"
)

// Palette holds the hex colors of the surface background and empty zones.
type Palette struct {
	Background string
	ZoneA      string
	ZoneB      string
}

// DefaultPalette returns the white background with a light blue zone A and
// a black zone B.
func DefaultPalette() Palette {
	return Palette{Background: "#FFFFFF", ZoneA: layout.FillZoneA, ZoneB: layout.FillZoneB}
}

// Renderer draws a full render pass for a fixed surface size.
type Renderer struct {
	Width   int
	Height  int
	Palette Palette
	Logger  *slog.Logger
}

// NewRenderer returns a renderer for a width x height surface.
func NewRenderer(width, height int, palette Palette, logger *slog.Logger) *Renderer {
	return &Renderer{Width: width, Height: height, Palette: palette, Logger: logger}
}

// Zones returns the zones for the configured surface, colored by the palette.
func (r *Renderer) Zones() (layout.Zone, layout.Zone) {
	a, b := layout.ComputeZones(r.Width, r.Height)
	if r.Palette.ZoneA != "" {
		a.Fill = r.Palette.ZoneA
	}
	if r.Palette.ZoneB != "" {
		b.Fill = r.Palette.ZoneB
	}
	return a, b
}

// Render clears s and redraws both zones. A nil bitmap leaves its zone
// showing the fill color. Rendering the same inputs twice yields an
// identical raster.
func (r *Renderer) Render(s *Surface, a, b *bitmap.Bitmap) error {
	if s == nil {
		return fmt.Errorf("render: nil surface")
	}
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("render: invalid surface size %dx%d", r.Width, r.Height)
	}
	zoneA, zoneB := r.Zones()
	if zoneA.Empty() || zoneB.Empty() {
		return fmt.Errorf("render: surface %dx%d too small for layout", r.Width, r.Height)
	}

	dc := s.reset(r.Width, r.Height)
	bg := r.Palette.Background
	if bg == "" {
		bg = DefaultPalette().Background
	}
	dc.ClearWithColor(gg.Hex(bg))

	if err := drawZone(dc, zoneA, a); err != nil {
		return fmt.Errorf("render: zone A: %w", err)
	}
	if err := drawZone(dc, zoneB, b); err != nil {
		return fmt.Errorf("render: zone B: %w", err)
	}
	if r.Logger != nil {
		r.Logger.Debug("render pass", "width", r.Width, "height", r.Height,
			"slot_a", a != nil, "slot_b", b != nil)
	}
	return nil
}

// drawZone fills the zone and draws the cover fit of bm clipped to it.
// Clipping happens by cropping the source to the visible part and scaling
// that crop to the zone's pixel size, so nothing is drawn outside the zone.
func drawZone(dc *gg.Context, zone layout.Zone, bm *bitmap.Bitmap) error {
	dc.SetHexColor(zone.Fill)
	dc.DrawRectangle(zone.X, zone.Y, zone.Width, zone.Height)
	if err := dc.Fill(); err != nil {
		return err
	}
	if bm == nil {
		return nil
	}
	dst := zone.Rect()
	if dst.Empty() {
		return nil
	}
	p := layout.FitRect(bm.Width, bm.Height, zone)
	crop := p.SourceCrop(bm.Width, bm.Height, zone).Add(bm.Image.Bounds().Min)
	visible := imaging.Crop(bm.Image, crop)
	scaled := imaging.Resize(visible, dst.Dx(), dst.Dy(), imaging.CatmullRom)
	dc.DrawImage(gg.ImageBufFromImage(scaled), float64(dst.Min.X), float64(dst.Min.Y))
	return nil
}
