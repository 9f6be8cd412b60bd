package fixed32

import (
	"math"
	"math/rand/v2"
	"testing"
)

// scaledErr is the absolute error for results below 1 in magnitude and the
// relative error above. A 16-bit fraction cannot do better than an
// absolute 2^-16, so small results are not held to a relative bound.
func scaledErr(got, want float64) float64 {
	return math.Abs(got-want) / math.Max(math.Abs(want), 1)
}

func sweep(t *testing.T, name string, fn func(int32) int32, ref func(float64) float64, lo, hi, bound float64) {
	t.Helper()
	rng := rand.New(rand.NewPCG(5, uint64(len(name))))
	worst, worstX := 0.0, 0.0
	for range 4096 {
		x := FromDouble(lo + (hi-lo)*rng.Float64())
		xd := ToDouble(x)
		if e := scaledErr(ToDouble(fn(x)), ref(xd)); e > worst {
			worst, worstX = e, xd
		}
	}
	if worst > bound {
		t.Errorf("%s: max error %.3g at x=%g exceeds %.3g", name, worst, worstX, bound)
	}
}

func sweep2(t *testing.T, name string, fn func(int32, int32) int32, ref func(float64, float64) float64,
	aLo, aHi, bLo, bHi, bound float64) {
	t.Helper()
	rng := rand.New(rand.NewPCG(6, uint64(len(name))))
	worst := 0.0
	for range 4096 {
		a := FromDouble(aLo + (aHi-aLo)*rng.Float64())
		b := FromDouble(bLo + (bHi-bLo)*rng.Float64())
		worst = math.Max(worst, scaledErr(ToDouble(fn(a, b)), ref(ToDouble(a), ToDouble(b))))
	}
	if worst > bound {
		t.Errorf("%s: max error %.3g exceeds %.3g", name, worst, bound)
	}
}
