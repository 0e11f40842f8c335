package motion

// PointerOffset tracks the smoothed pointer position that drives the
// parallax field. Two pairs of scalars are kept: the target offset, set
// directly from the latest pointer sample, and the current offset, blended
// toward the target a little on every tick. Both are normalized to [-1, 1]
// relative to the viewport center.
//
// The current offset starts at zero and never jumps discontinuously; the
// only way it changes is through Tick.
type PointerOffset struct {
	centerX, centerY   float64
	targetX, targetY   float64
	currentX, currentY float64
}

// NewPointerOffset creates an offset tracker for the given viewport size.
func NewPointerOffset(width, height float64) *PointerOffset {
	p := &PointerOffset{}
	p.SetViewport(width, height)
	return p
}

// SetViewport recomputes the stored viewport-center coordinates after a
// resize. It does not touch the current or target offsets.
func (p *PointerOffset) SetViewport(width, height float64) {
	p.centerX = width / 2
	p.centerY = height / 2
}

// SetPointer converts an absolute pointer position into a normalized
// target offset: (coord - center) / center, independently per axis.
// This only updates the target; the visible offset catches up via Tick.
func (p *PointerOffset) SetPointer(x, y float64) {
	if p.centerX == 0 || p.centerY == 0 {
		return
	}
	p.targetX = (x - p.centerX) / p.centerX
	p.targetY = (y - p.centerY) / p.centerY
}

// Tick blends the current offset toward the target by SmoothFactor.
// Called once per animation frame.
func (p *PointerOffset) Tick() {
	p.currentX = Lerp(p.currentX, p.targetX, SmoothFactor)
	p.currentY = Lerp(p.currentY, p.targetY, SmoothFactor)
}

// Current returns the smoothed offset applied to the layers this frame.
func (p *PointerOffset) Current() (x, y float64) {
	return p.currentX, p.currentY
}

// Target returns the raw offset from the latest pointer sample.
func (p *PointerOffset) Target() (x, y float64) {
	return p.targetX, p.targetY
}
