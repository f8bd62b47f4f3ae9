package render

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soocke/collage-go/domain/bitmap"
	"github.com/soocke/collage-go/domain/layout"
)

// small surface keeps the tests fast; proportions match production
const (
	testW = 236
	testH = 512
)

func solidBitmap(t *testing.T, w, h int, c color.Color) *bitmap.Bitmap {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	b, err := bitmap.New(img, "solid")
	require.NoError(t, err)
	return b
}

func gradientBitmap(t *testing.T, w, h int) *bitmap.Bitmap {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{uint8(x * 255 / w), uint8(y * 255 / h), 0x40, 0xff})
		}
	}
	b, err := bitmap.New(img, "gradient")
	require.NoError(t, err)
	return b
}

func rgbaAt(t *testing.T, img image.Image, x, y int) color.RGBA {
	t.Helper()
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

func assertNear(t *testing.T, want, got color.RGBA) {
	t.Helper()
	const tol = 2
	diff := func(a, b uint8) int {
		d := int(a) - int(b)
		if d < 0 {
			return -d
		}
		return d
	}
	if diff(want.R, got.R) > tol || diff(want.G, got.G) > tol || diff(want.B, got.B) > tol || diff(want.A, got.A) > tol {
		t.Fatalf("color mismatch: want %v got %v", want, got)
	}
}

func TestSurface_ZeroValueHasNoContent(t *testing.T) {
	var s Surface
	assert.Equal(t, 0, s.Width())
	assert.Equal(t, 0, s.Height())
	assert.Nil(t, s.Image())
	assert.ErrorIs(t, s.EncodeJPEG(&bytes.Buffer{}, 95), ErrNotRendered)
}

func TestRender_EmptySlotsShowZoneFills(t *testing.T) {
	r := NewRenderer(testW, testH, DefaultPalette(), nil)
	s := &Surface{}
	require.NoError(t, r.Render(s, nil, nil))
	require.Equal(t, testW, s.Width())
	require.Equal(t, testH, s.Height())

	a, b := r.Zones()
	img := s.Image()
	ra, rb := a.Rect(), b.Rect()
	assertNear(t, color.RGBA{0xAD, 0xD8, 0xE6, 0xff}, rgbaAt(t, img, (ra.Min.X+ra.Max.X)/2, (ra.Min.Y+ra.Max.Y)/2))
	assertNear(t, color.RGBA{0, 0, 0, 0xff}, rgbaAt(t, img, (rb.Min.X+rb.Max.X)/2, (rb.Min.Y+rb.Max.Y)/2))
	// gap between the zones and the side margins stay background
	assertNear(t, color.RGBA{0xff, 0xff, 0xff, 0xff}, rgbaAt(t, img, 2, ra.Max.Y+layout.Gap/2))
	assertNear(t, color.RGBA{0xff, 0xff, 0xff, 0xff}, rgbaAt(t, img, 2, rb.Max.Y-2))
}

func TestRender_BitmapIsClippedToZone(t *testing.T) {
	r := NewRenderer(testW, testH, DefaultPalette(), nil)
	s := &Surface{}
	red := color.RGBA{0xff, 0, 0, 0xff}
	// very wide bitmap overflows zone B horizontally
	require.NoError(t, r.Render(s, nil, solidBitmap(t, 400, 20, red)))

	_, b := r.Zones()
	rb := b.Rect()
	img := s.Image()
	assertNear(t, red, rgbaAt(t, img, rb.Min.X+1, rb.Min.Y+1))
	assertNear(t, red, rgbaAt(t, img, rb.Max.X-2, rb.Max.Y-2))
	// just outside zone B on both sides must stay background
	assertNear(t, color.RGBA{0xff, 0xff, 0xff, 0xff}, rgbaAt(t, img, rb.Min.X-3, (rb.Min.Y+rb.Max.Y)/2))
	assertNear(t, color.RGBA{0xff, 0xff, 0xff, 0xff}, rgbaAt(t, img, rb.Max.X+2, (rb.Min.Y+rb.Max.Y)/2))
	// zone A untouched
	assertNear(t, color.RGBA{0xAD, 0xD8, 0xE6, 0xff}, rgbaAt(t, img, testW/2, 10))
}

func TestRender_TallBitmapFillsZoneA(t *testing.T) {
	r := NewRenderer(testW, testH, DefaultPalette(), nil)
	s := &Surface{}
	green := color.RGBA{0, 0xff, 0, 0xff}
	require.NoError(t, r.Render(s, solidBitmap(t, 10, 100, green), nil))

	a, _ := r.Zones()
	ra := a.Rect()
	img := s.Image()
	assertNear(t, green, rgbaAt(t, img, 0, 0))
	assertNear(t, green, rgbaAt(t, img, ra.Max.X-1, ra.Max.Y-1))
	assertNear(t, color.RGBA{0xff, 0xff, 0xff, 0xff}, rgbaAt(t, img, 1, ra.Max.Y+1))
}

func TestRender_Idempotent(t *testing.T) {
	r := NewRenderer(testW, testH, DefaultPalette(), nil)
	a := gradientBitmap(t, 300, 200)
	b := gradientBitmap(t, 50, 120)

	s := &Surface{}
	require.NoError(t, r.Render(s, a, b))
	first := s.Image().(*image.RGBA)
	require.NoError(t, r.Render(s, a, b))
	second := s.Image().(*image.RGBA)
	assert.True(t, bytes.Equal(first.Pix, second.Pix), "second render differs")

	other := &Surface{}
	require.NoError(t, r.Render(other, a, b))
	assert.True(t, bytes.Equal(first.Pix, other.Image().(*image.RGBA).Pix), "fresh surface differs")
}

func TestRender_ReplacingSlotRedrawsFromScratch(t *testing.T) {
	r := NewRenderer(testW, testH, DefaultPalette(), nil)
	s := &Surface{}
	require.NoError(t, r.Render(s, solidBitmap(t, 10, 10, color.RGBA{0xff, 0, 0, 0xff}), nil))
	require.NoError(t, r.Render(s, nil, nil))

	fresh := &Surface{}
	require.NoError(t, r.Render(fresh, nil, nil))
	assert.True(t, bytes.Equal(s.Image().(*image.RGBA).Pix, fresh.Image().(*image.RGBA).Pix))
}

func TestRender_CustomPalette(t *testing.T) {
	r := NewRenderer(testW, testH, Palette{Background: "#000000", ZoneA: "#00FF00", ZoneB: "#0000FF"}, nil)
	s := &Surface{}
	require.NoError(t, r.Render(s, nil, nil))
	_, b := r.Zones()
	rb := b.Rect()
	img := s.Image()
	assertNear(t, color.RGBA{0, 0xff, 0, 0xff}, rgbaAt(t, img, 5, 5))
	assertNear(t, color.RGBA{0, 0, 0xff, 0xff}, rgbaAt(t, img, rb.Min.X+2, rb.Min.Y+2))
	assertNear(t, color.RGBA{0, 0, 0, 0xff}, rgbaAt(t, img, 1, rb.Min.Y+2))
}

func TestRender_InvalidSize(t *testing.T) {
	assert.Error(t, NewRenderer(0, 100, DefaultPalette(), nil).Render(&Surface{}, nil, nil))
	assert.Error(t, NewRenderer(100, 30, DefaultPalette(), nil).Render(&Surface{}, nil, nil))
	assert.Error(t, NewRenderer(100, 100, DefaultPalette(), nil).Render(nil, nil, nil))
}

func TestSurface_EncodeJPEGAndClear(t *testing.T) {
	r := NewRenderer(testW, testH, DefaultPalette(), nil)
	s := &Surface{}
	require.NoError(t, r.Render(s, nil, nil))

	var buf bytes.Buffer
	require.NoError(t, s.EncodeJPEG(&buf, 95))
	cfg, err := jpeg.DecodeConfig(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, testW, cfg.Width)
	assert.Equal(t, testH, cfg.Height)

	s.Clear()
	assert.Equal(t, 0, s.Width())
	assert.Equal(t, 0, s.Height())
}
