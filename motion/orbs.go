package motion

import "math/rand/v2"

// Orb drift cycle bounds, in seconds. Durations are long and offsets are
// spread out so the orbs never look like they started in lockstep.
const (
	OrbDurationMin = 10.0
	OrbDurationMax = 26.0
	OrbDelayMax    = 12.0
)

// OrbParams are the randomized animation parameters assigned to one
// decorative orb at startup: how long one drift cycle takes and how far
// into the cycle it should already be on first paint.
type OrbParams struct {
	Duration float64 // Drift cycle length in seconds, in [10, 26)
	Delay    float64 // Sampled offset in seconds, in [0, 12)
}

// StartOffset is the value actually applied to the animation: the negation
// of the sampled delay, so the cycle appears to have started in the past
// and the orb is mid-drift immediately.
func (p OrbParams) StartOffset() float64 {
	return -p.Delay
}

// SampleOrbParams draws randomized drift parameters for one orb.
// Pass a seeded rand.Rand to make placement deterministic in tests.
func SampleOrbParams(rng *rand.Rand) OrbParams {
	return OrbParams{
		Duration: OrbDurationMin + rng.Float64()*(OrbDurationMax-OrbDurationMin),
		Delay:    rng.Float64() * OrbDelayMax,
	}
}
