package fixed64

import (
	"math"
	"math/rand/v2"
	"testing"
)

type errMetric int

const (
	absolute errMetric = iota
	relative
)

func measure(metric errMetric, got, want float64) float64 {
	diff := math.Abs(got - want)
	if metric == absolute {
		return diff
	}
	return diff / math.Max(math.Abs(want), 1.0/65536)
}

// sweepUnary evaluates fn on n seeded samples in [lo, hi) and fails when the
// worst error against ref exceeds bound.
func sweepUnary(t *testing.T, name string, fn func(int64) int64, ref func(float64) float64,
	lo, hi float64, metric errMetric, bound float64) {
	t.Helper()
	rng := rand.New(rand.NewPCG(1, uint64(len(name))))
	worst, worstX := 0.0, 0.0
	for range 4096 {
		x := FromDouble(lo + (hi-lo)*rng.Float64())
		xd := ToDouble(x)
		if e := measure(metric, ToDouble(fn(x)), ref(xd)); e > worst {
			worst, worstX = e, xd
		}
	}
	if worst > bound {
		t.Errorf("%s: max error %.3g at x=%g exceeds %.3g", name, worst, worstX, bound)
	}
}

func sweepBinary(t *testing.T, name string, fn func(int64, int64) int64, ref func(float64, float64) float64,
	aLo, aHi, bLo, bHi float64, metric errMetric, bound float64) {
	t.Helper()
	rng := rand.New(rand.NewPCG(2, uint64(len(name))))
	worst := 0.0
	var worstA, worstB float64
	for range 4096 {
		a := FromDouble(aLo + (aHi-aLo)*rng.Float64())
		b := FromDouble(bLo + (bHi-bLo)*rng.Float64())
		ad, bd := ToDouble(a), ToDouble(b)
		if e := measure(metric, ToDouble(fn(a, b)), ref(ad, bd)); e > worst {
			worst, worstA, worstB = e, ad, bd
		}
	}
	if worst > bound {
		t.Errorf("%s: max error %.3g at (%g, %g) exceeds %.3g", name, worst, worstA, worstB, bound)
	}
}
