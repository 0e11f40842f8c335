package ui

import (
	"math"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"

	"aurora/motion"
)

func testLayers() ([]ParallaxLayer, *canvas.Rectangle) {
	rect := canvas.NewRectangle(AccentColor)
	rect.Move(fyne.NewPos(100, 100))
	return []ParallaxLayer{{Object: rect, Depth: 0.1}}, rect
}

func TestParallaxStartDeclinesWithoutLayers(t *testing.T) {
	f := NewParallaxField(nil, fyne.NewSize(800, 600), false)
	if f.Start() {
		t.Fatal("started with no layers")
	}
	if f.Running() {
		t.Fatal("running with no layers")
	}
	f.Stop() // Must be safe even though Start declined
}

func TestParallaxStartDeclinesOnTouchOnly(t *testing.T) {
	layers, _ := testLayers()
	f := NewParallaxField(layers, fyne.NewSize(800, 600), true)
	if f.Start() {
		t.Fatal("started on a touch-only device")
	}
}

func TestParallaxStepMovesLayerByDepth(t *testing.T) {
	test.NewApp()
	layers, rect := testLayers()

	f := NewParallaxField(layers, fyne.NewSize(800, 600), false)
	if !f.Start() {
		t.Fatal("field did not start")
	}
	defer f.Stop()

	// Pointer at the right edge: normalized target (1, 0)
	f.PointerMoved(fyne.NewPos(800, 300))
	f.step()

	// One smoothing step: current = 0.065, excursion = 0.065*0.1*80
	wantDX := motion.SmoothFactor * 0.1 * ParallaxTravel
	gotDX := float64(rect.Position().X - 100)
	if math.Abs(gotDX-wantDX) > 1e-3 {
		t.Errorf("layer x excursion: got %v, want %v", gotDX, wantDX)
	}
	if rect.Position().Y != 100 {
		t.Errorf("layer y moved without vertical offset: got %v", rect.Position().Y)
	}
}

func TestParallaxConvergesOnTarget(t *testing.T) {
	test.NewApp()
	layers, rect := testLayers()

	f := NewParallaxField(layers, fyne.NewSize(800, 600), false)
	f.Start()
	defer f.Stop()

	f.PointerMoved(fyne.NewPos(800, 600)) // target (1, 1)
	for i := 0; i < 400; i++ {
		f.step()
	}

	wantD := 0.1 * ParallaxTravel // full excursion at depth 0.1
	if math.Abs(float64(rect.Position().X-100)-wantD) > 0.1 {
		t.Errorf("x did not converge: got %v, want %v", rect.Position().X-100, wantD)
	}
	if math.Abs(float64(rect.Position().Y-100)-wantD) > 0.1 {
		t.Errorf("y did not converge: got %v, want %v", rect.Position().Y-100, wantD)
	}
}

func TestParallaxResizeRecentersPointer(t *testing.T) {
	layers, _ := testLayers()
	f := NewParallaxField(layers, fyne.NewSize(800, 600), false)

	f.ViewportResized(fyne.NewSize(400, 400))
	f.PointerMoved(fyne.NewPos(200, 200)) // Center of the new viewport

	// The next step keeps the layer at rest: target is zero
	f.Start()
	defer f.Stop()
	f.step()

	if pos := layers[0].Object.Position(); pos.X != 100 || pos.Y != 100 {
		t.Errorf("layer moved for a centered pointer: %v", pos)
	}
}

func TestParallaxDepthDefaulting(t *testing.T) {
	rect := canvas.NewRectangle(AccentColor)
	f := NewParallaxField([]ParallaxLayer{{Object: rect, Depth: -1}}, fyne.NewSize(800, 600), false)

	if got := f.layers[0].depth; got != DefaultDepth {
		t.Errorf("non-positive depth not defaulted: got %v, want %v", got, DefaultDepth)
	}

	// Nil objects are skipped entirely
	f = NewParallaxField([]ParallaxLayer{{Object: nil, Depth: 0.05}}, fyne.NewSize(800, 600), false)
	if len(f.layers) != 0 {
		t.Errorf("nil layer retained")
	}
}

func TestParallaxStopIdempotent(t *testing.T) {
	test.NewApp()
	layers, _ := testLayers()
	f := NewParallaxField(layers, fyne.NewSize(800, 600), false)

	f.Start()
	f.Stop()
	f.Stop()
	if f.Running() {
		t.Fatal("still running after Stop")
	}
}
