package sprites

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"

	"github.com/disintegration/imaging"
)

// Glow renders a soft circular glow sprite used for the decorative orbs.
// A radially falling-off disc is drawn first, then softened with a
// gaussian blur so the edge melts into the background instead of ending
// in a hard ring.
func Glow(diameter int, tint color.NRGBA) *image.NRGBA {
	if diameter < 2 {
		diameter = 2
	}

	img := image.NewNRGBA(image.Rect(0, 0, diameter, diameter))
	center := float64(diameter) / 2
	radius := center

	for y := 0; y < diameter; y++ {
		for x := 0; x < diameter; x++ {
			dx := float64(x) + 0.5 - center
			dy := float64(y) + 0.5 - center
			dist := math.Sqrt(dx*dx + dy*dy)
			if dist >= radius {
				continue
			}
			// Quadratic falloff keeps the core bright and fades the rim
			falloff := 1 - dist/radius
			alpha := falloff * falloff * float64(tint.A)
			img.SetNRGBA(x, y, color.NRGBA{R: tint.R, G: tint.G, B: tint.B, A: uint8(alpha)})
		}
	}

	// Blur sigma scales with size so small and large orbs look alike
	return imaging.Blur(img, float64(diameter)/24)
}

// EncodePNG serializes a sprite to PNG bytes, e.g. for use as a static
// Fyne resource (window icon).
func EncodePNG(img image.Image) ([]byte, error) {
	if img == nil {
		return nil, errors.New("nil image")
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
