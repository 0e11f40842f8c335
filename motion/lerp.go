package motion

// SmoothFactor is the per-frame interpolation coefficient for the pointer
// offset. Deliberately small so the parallax motion lags behind the pointer
// and feels fluid rather than snapping.
const SmoothFactor = 0.065

// Lerp moves current toward target by factor t and returns the new value.
// For t in (0,1) repeated application converges on target without
// overshooting.
func Lerp(current, target, t float64) float64 {
	return current + (target-current)*t
}
