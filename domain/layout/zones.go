package layout

import (
	"image"
	"math"
)

// Proportional layout constants shared by every surface size.
const (
	ZoneAHeightRatio = 0.89
	ZoneBWidthRatio  = 0.45
	// Gap separates zone A from zone B and zone B from the bottom edge.
	Gap = 20
)

// Default zone fill colors, visible while a slot is empty.
const (
	FillZoneA = "#ADD8E6"
	FillZoneB = "#000000"
)

// Zone is a rectangle in surface coordinates reserved for one slot.
// Zones are derived from the surface size on every render and never stored.
type Zone struct {
	X, Y          float64
	Width, Height float64
	Fill          string
}

// Rect returns the zone rounded to integer surface pixels.
func (z Zone) Rect() image.Rectangle {
	x0 := int(math.Round(z.X))
	y0 := int(math.Round(z.Y))
	x1 := int(math.Round(z.X + z.Width))
	y1 := int(math.Round(z.Y + z.Height))
	return image.Rect(x0, y0, x1, y1)
}

// Empty reports whether the zone has no area.
func (z Zone) Empty() bool { return z.Width <= 0 || z.Height <= 0 }

// ComputeZones splits a surface into the large top zone A and the narrow,
// horizontally centered zone B below it. The vertical budget always adds up:
// zoneA.Height + Gap + zoneB.Height + Gap == surfaceHeight.
func ComputeZones(surfaceWidth, surfaceHeight int) (zoneA, zoneB Zone) {
	w := float64(surfaceWidth)
	h := float64(surfaceHeight)

	aHeight := math.Round(h * ZoneAHeightRatio)
	zoneA = Zone{X: 0, Y: 0, Width: w, Height: aHeight, Fill: FillZoneA}

	bWidth := math.Round(w * ZoneBWidthRatio)
	zoneB = Zone{
		X:      (w - bWidth) / 2,
		Y:      aHeight + Gap,
		Width:  bWidth,
		Height: h - aHeight - 2*Gap,
		Fill:   FillZoneB,
	}
	return zoneA, zoneB
}
