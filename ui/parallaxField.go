package ui

import (
	"image/color"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"aurora/motion"
)

const (
	// ParallaxTravel is the maximum pixel excursion of a depth-1.0 layer.
	// Real layers sit at 0.02-0.10, so visible travel is a few pixels.
	ParallaxTravel = 80

	// DefaultDepth is used when a layer carries no usable depth value
	DefaultDepth = 0.05

	// frameInterval paces the smoothing loop at roughly display rate
	frameInterval = time.Second / 60
)

// ParallaxLayer is one depth-tagged canvas object the field repositions.
// Depth controls how strongly the layer reacts to pointer movement.
type ParallaxLayer struct {
	Object fyne.CanvasObject
	Depth  float64
}

// ParallaxField samples pointer position, smooths it over time and
// continuously nudges each layer proportionally to its depth. It runs
// until explicitly stopped; all rendering happens as position moves so
// layout is never invalidated mid-animation.
type ParallaxField struct {
	offset    *motion.PointerOffset
	layers    []parallaxLayer
	touchOnly bool

	frame   *time.Ticker
	quit    chan struct{}
	running bool
}

type parallaxLayer struct {
	object fyne.CanvasObject
	depth  float64
	base   fyne.Position
}

// NewParallaxField prepares a field over the given layers. Layers with a
// non-positive depth fall back to DefaultDepth. Pass touchOnly=true on
// devices without hover capability; Start then refuses to run since the
// effect would never be perceived there.
func NewParallaxField(layers []ParallaxLayer, viewport fyne.Size, touchOnly bool) *ParallaxField {
	f := &ParallaxField{
		offset:    motion.NewPointerOffset(float64(viewport.Width), float64(viewport.Height)),
		touchOnly: touchOnly,
	}

	for _, l := range layers {
		if l.Object == nil {
			continue
		}
		depth := l.Depth
		if depth <= 0 {
			depth = DefaultDepth
		}
		f.layers = append(f.layers, parallaxLayer{object: l.Object, depth: depth})
	}

	return f
}

// Start begins the per-frame smoothing loop. It reports false, wiring
// nothing, when there are no layers to move or the device is touch-only.
// Calling Start on a running field is a no-op returning true.
func (f *ParallaxField) Start() bool {
	if f.running {
		return true
	}
	if len(f.layers) == 0 || f.touchOnly {
		return false
	}

	// Capture resting positions; every frame offsets from these
	for i := range f.layers {
		f.layers[i].base = f.layers[i].object.Position()
	}

	f.quit = make(chan struct{})
	f.frame = time.NewTicker(frameInterval)
	f.running = true

	go func(frame *time.Ticker, quit chan struct{}) {
		for {
			select {
			case <-frame.C:
				fyne.Do(f.step)
			case <-quit:
				return
			}
		}
	}(f.frame, f.quit)

	log.Printf("[UI] Parallax field started with %d layers", len(f.layers))
	return true
}

// Stop halts the frame loop. Safe to call repeatedly and safe to call
// when Start never ran.
func (f *ParallaxField) Stop() {
	if !f.running {
		return
	}
	f.frame.Stop()
	close(f.quit)
	f.running = false
	log.Println("[UI] Parallax field stopped")
}

// Running reports whether the frame loop is active.
func (f *ParallaxField) Running() bool {
	return f.running
}

// PointerMoved feeds the latest absolute pointer position into the
// offset tracker. Only the target moves; the layers catch up over the
// following frames.
func (f *ParallaxField) PointerMoved(pos fyne.Position) {
	f.offset.SetPointer(float64(pos.X), float64(pos.Y))
}

// ViewportResized recomputes the stored center coordinates. Depths and
// resting positions are left alone and the loop keeps running.
func (f *ParallaxField) ViewportResized(size fyne.Size) {
	f.offset.SetViewport(float64(size.Width), float64(size.Height))
}

// step advances the smoothing by one frame and repositions every layer.
// Must run on the UI thread.
func (f *ParallaxField) step() {
	f.offset.Tick()
	x, y := f.offset.Current()

	for i := range f.layers {
		l := &f.layers[i]
		dx := float32(x * l.depth * ParallaxTravel)
		dy := float32(y * l.depth * ParallaxTravel)
		l.object.Move(fyne.NewPos(l.base.X+dx, l.base.Y+dy))
	}
}

// parallaxSurface is an invisible full-window widget whose only job is
// forwarding hover movement and size changes to the field. It implements
// no tap interfaces, so clicks pass through to the page content.
type parallaxSurface struct {
	widget.BaseWidget
	field *ParallaxField
}

var _ desktop.Hoverable = (*parallaxSurface)(nil)

func newParallaxSurface(field *ParallaxField) *parallaxSurface {
	s := &parallaxSurface{field: field}
	s.ExtendBaseWidget(s)
	return s
}

func (s *parallaxSurface) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(canvas.NewRectangle(color.Transparent))
}

func (s *parallaxSurface) MouseIn(ev *desktop.MouseEvent) {
	s.MouseMoved(ev)
}

// MouseMoved feeds the field only while its loop runs, so a declined
// Start really does wire nothing.
func (s *parallaxSurface) MouseMoved(ev *desktop.MouseEvent) {
	if s.field.Running() {
		s.field.PointerMoved(ev.Position)
	}
}

func (s *parallaxSurface) MouseOut() {}

func (s *parallaxSurface) Resize(size fyne.Size) {
	s.BaseWidget.Resize(size)
	if s.field.Running() {
		s.field.ViewportResized(size)
	}
}
