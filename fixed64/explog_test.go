package fixed64

import (
	"math"
	"testing"
)

func TestExpLogScenarios(t *testing.T) {
	t.Parallel()
	if got := Log2(One); got != 0 {
		t.Errorf("Log2(1) = %d, want 0", got)
	}
	if got := Log(One); got != 0 {
		t.Errorf("Log(1) = %d, want 0", got)
	}
	if got := Exp2(One); got != Two {
		t.Errorf("Exp2(1) = %d, want %d", got, Two)
	}
	if got := Exp2(0); got != One {
		t.Errorf("Exp2(0) = %d, want %d", got, One)
	}
	if got := Log2(FromInt(1024)); got != FromInt(10) {
		t.Errorf("Log2(1024) = %v, want 10", ToDouble(got))
	}
	if got := Exp2(FromInt(-3)); got != One>>3 {
		t.Errorf("Exp2(-3) = %v, want 0.125", ToDouble(got))
	}
}

func TestExpLogSentinels(t *testing.T) {
	t.Parallel()
	exps := map[string]func(int64) int64{"Exp2": Exp2, "Exp2Fast": Exp2Fast, "Exp2Fastest": Exp2Fastest}
	for name, fn := range exps {
		if got := fn(FromInt(32)); got != MaxValue {
			t.Errorf("%s(32) = %d, want MaxValue", name, got)
		}
		if got := fn(FromInt(-32)); got != 0 {
			t.Errorf("%s(-32) = %d, want 0", name, got)
		}
	}
	logs := map[string]func(int64) int64{
		"Log": Log, "LogFast": LogFast, "LogFastest": LogFastest,
		"Log2": Log2, "Log2Fast": Log2Fast, "Log2Fastest": Log2Fastest,
	}
	for name, fn := range logs {
		if got := fn(0); got != 0 {
			t.Errorf("%s(0) = %d, want 0", name, got)
		}
		if got := fn(-One); got != 0 {
			t.Errorf("%s(-1) = %d, want 0", name, got)
		}
	}
	pows := map[string]func(int64, int64) int64{"Pow": Pow, "PowFast": PowFast, "PowFastest": PowFastest}
	for name, fn := range pows {
		if got := fn(0, Two); got != 0 {
			t.Errorf("%s(0, 2) = %d, want 0", name, got)
		}
		if got := fn(-Two, Two); got != 0 {
			t.Errorf("%s(-2, 2) = %d, want 0", name, got)
		}
	}
}

func TestExpLogAccuracy(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		fn     func(int64) int64
		ref    func(float64) float64
		lo, hi float64
		bound  float64
	}{
		{"Exp", Exp, math.Exp, -10, 10, 2e-5},
		{"ExpFast", ExpFast, math.Exp, -10, 10, 4e-5},
		{"ExpFastest", ExpFastest, math.Exp, -10, 10, 5e-4},
		{"Exp2", Exp2, math.Exp2, -10, 10, 2e-6},
		{"Exp2Fast", Exp2Fast, math.Exp2, -10, 10, 2e-5},
		{"Exp2Fastest", Exp2Fastest, math.Exp2, -10, 10, 5e-4},
		{"Log", Log, math.Log, 0.001, 1e6, 3e-9},
		{"LogFast", LogFast, math.Log, 0.001, 1e6, 1e-6},
		{"LogFastest", LogFastest, math.Log, 0.001, 1e6, 2e-5},
		{"Log2", Log2, math.Log2, 0.001, 1e6, 1e-9},
		{"Log2Fast", Log2Fast, math.Log2, 0.001, 1e6, 5e-8},
		{"Log2Fastest", Log2Fastest, math.Log2, 0.001, 1e6, 2e-5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			sweepUnary(t, tt.name, tt.fn, tt.ref, tt.lo, tt.hi, relative, tt.bound)
		})
	}
}

func TestPowAccuracy(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		fn    func(int64, int64) int64
		bound float64
	}{
		{"Pow", Pow, 1e-6},
		{"PowFast", PowFast, 6e-5},
		{"PowFastest", PowFastest, 3e-3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			sweepPow(t, tt.name, tt.fn, tt.bound)
		})
	}
}

// sweepPow measures error relative to max(|ref|, 1/256), which keeps tiny
// results from dominating.
func sweepPow(t *testing.T, name string, fn func(int64, int64) int64, bound float64) {
	t.Helper()
	ranges := [][4]float64{
		{1e-6, 1, 1e-3, 20},
		{1, 16, 1e-3, 1},
	}
	worst := 0.0
	for i, r := range ranges {
		for j := range 2048 {
			fa := r[0] + (r[1]-r[0])*float64((j*7919+i)%2048)/2048
			fb := r[2] + (r[3]-r[2])*float64((j*104729+i)%2048)/2048
			a, b := FromDouble(fa), FromDouble(fb)
			want := math.Pow(ToDouble(a), ToDouble(b))
			e := math.Abs(ToDouble(fn(a, b))-want) / math.Max(math.Abs(want), 1.0/256)
			worst = math.Max(worst, e)
		}
	}
	if worst > bound {
		t.Errorf("%s: max error %.3g exceeds %.3g", name, worst, bound)
	}
}
