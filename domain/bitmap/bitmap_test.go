package bitmap

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func encodeTestPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{uint8(x), uint8(y), 0x80, 0xff})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestDecode_PNG(t *testing.T) {
	b, err := Decode(bytes.NewReader(encodeTestPNG(t, 40, 20)), "wide.png")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b.Width != 40 || b.Height != 20 {
		t.Fatalf("expected 40x20, got %dx%d", b.Width, b.Height)
	}
	if b.Ratio() != 2 {
		t.Fatalf("expected ratio 2, got %v", b.Ratio())
	}
	if b.Source != "wide.png" {
		t.Fatalf("unexpected source %q", b.Source)
	}
}

func TestDecode_JPEG(t *testing.T) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, image.NewGray(image.Rect(0, 0, 16, 32)), nil); err != nil {
		t.Fatalf("encode jpeg: %v", err)
	}
	b, err := Decode(&buf, "tall.jpg")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b.Width != 16 || b.Height != 32 {
		t.Fatalf("expected 16x32, got %dx%d", b.Width, b.Height)
	}
}

func TestDecode_RejectsNonImage(t *testing.T) {
	_, err := Decode(strings.NewReader("just some notes, not a photo"), "notes.txt")
	if !errors.Is(err, ErrNotImage) {
		t.Fatalf("expected ErrNotImage, got %v", err)
	}
}

func TestDecode_RejectsTruncatedImage(t *testing.T) {
	data := encodeTestPNG(t, 10, 10)
	_, err := Decode(bytes.NewReader(data[:len(data)/2]), "broken.png")
	if !errors.Is(err, ErrNotImage) {
		t.Fatalf("expected ErrNotImage, got %v", err)
	}
}

func TestNew_RejectsEmpty(t *testing.T) {
	if _, err := New(nil, "nil"); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty for nil, got %v", err)
	}
	if _, err := New(image.NewRGBA(image.Rect(0, 0, 0, 5)), "zero"); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty for zero width, got %v", err)
	}
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "photo.png")
	if err := os.WriteFile(path, encodeTestPNG(t, 8, 6), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	b, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if b.Width != 8 || b.Height != 6 || b.Source != "photo.png" {
		t.Fatalf("unexpected bitmap %+v", b)
	}
	if _, err := Open(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
