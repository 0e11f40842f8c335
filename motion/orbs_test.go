package motion

import (
	"math/rand/v2"
	"testing"
)

func TestSampleOrbParamsRanges(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 1000; i++ {
		p := SampleOrbParams(rng)
		if p.Duration < OrbDurationMin || p.Duration >= OrbDurationMax {
			t.Fatalf("sample %d: duration %v outside [%v, %v)", i, p.Duration, OrbDurationMin, OrbDurationMax)
		}
		if p.Delay < 0 || p.Delay >= OrbDelayMax {
			t.Fatalf("sample %d: delay %v outside [0, %v)", i, p.Delay, OrbDelayMax)
		}
		if p.StartOffset() != -p.Delay {
			t.Fatalf("sample %d: start offset %v is not the negated delay %v", i, p.StartOffset(), p.Delay)
		}
	}
}

func TestSampleOrbParamsDeterministic(t *testing.T) {
	a := rand.New(rand.NewPCG(7, 7))
	b := rand.New(rand.NewPCG(7, 7))

	for i := 0; i < 10; i++ {
		pa := SampleOrbParams(a)
		pb := SampleOrbParams(b)
		if pa != pb {
			t.Fatalf("sample %d: same seed diverged: %+v vs %+v", i, pa, pb)
		}
	}
}
