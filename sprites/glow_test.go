package sprites

import (
	"image/color"
	"testing"
)

func TestGlowDimensions(t *testing.T) {
	img := Glow(64, color.NRGBA{R: 150, G: 130, B: 255, A: 200})
	bounds := img.Bounds()
	if bounds.Dx() != 64 || bounds.Dy() != 64 {
		t.Fatalf("glow size: got %dx%d, want 64x64", bounds.Dx(), bounds.Dy())
	}
}

func TestGlowFadesOutward(t *testing.T) {
	img := Glow(64, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	_, _, _, centerAlpha := img.At(32, 32).RGBA()
	_, _, _, cornerAlpha := img.At(1, 1).RGBA()

	if centerAlpha == 0 {
		t.Fatal("glow center is fully transparent")
	}
	if cornerAlpha >= centerAlpha {
		t.Fatalf("glow does not fade outward: corner %d >= center %d", cornerAlpha, centerAlpha)
	}
}

func TestGlowTinyDiameter(t *testing.T) {
	// Degenerate sizes are clamped rather than panicking
	img := Glow(0, color.NRGBA{A: 255})
	if img.Bounds().Dx() < 1 {
		t.Fatalf("clamped glow has no pixels")
	}
}

func TestEncodePNG(t *testing.T) {
	img := Glow(16, color.NRGBA{R: 100, G: 100, B: 255, A: 255})
	data, err := EncodePNG(img)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("encoded PNG is empty")
	}
	// PNG magic bytes
	if data[0] != 0x89 || data[1] != 0x50 {
		t.Fatalf("output is not a PNG: % x", data[:2])
	}

	if _, err := EncodePNG(nil); err == nil {
		t.Fatal("nil image should error")
	}
}
