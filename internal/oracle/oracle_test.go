package oracle

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/agbru/fixpoint/fixed32"
	"github.com/agbru/fixpoint/fixed64"
)

func TestOracleScenarios(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		got  int64
		want int64
	}{
		{"Mul64 2.5*-4", Mul64(fixed64.FromDouble(2.5), fixed64.FromInt(-4)), fixed64.FromInt(-10)},
		{"Mul64 floors negative", Mul64(-1, 1), -1},
		{"Div64 10/4", Div64(fixed64.FromInt(10), fixed64.FromInt(4)), fixed64.FromDouble(2.5)},
		{"Div64 by zero saturates", Div64(fixed64.One, 0), fixed64.MaxValue},
		{"Div64 -1/3 truncates", Div64(fixed64.Neg1, fixed64.Three), -(fixed64.One / 3)},
		{"Sqrt64 6.25", Sqrt64(fixed64.FromDouble(6.25)), fixed64.FromDouble(2.5)},
		{"Sqrt64 negative", Sqrt64(-fixed64.One), 0},
		{"Mul32 1.5*1.5", int64(Mul32(fixed32.FromDouble(1.5), fixed32.FromDouble(1.5))), int64(fixed32.FromDouble(2.25))},
		{"Div32 by MinValue", int64(Div32(fixed32.One, fixed32.MinValue)), 0},
		{"Div32 7/-2", int64(Div32(fixed32.FromInt(7), fixed32.FromInt(-2))), int64(fixed32.FromDouble(-3.5))},
		{"Sqrt32 2", int64(Sqrt32(fixed32.Two)), 92681},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.got != tt.want {
				t.Errorf("got %d, want %d", tt.got, tt.want)
			}
		})
	}
	if Backend == "" {
		t.Error("Backend should name the integer library")
	}
}

func TestKernelMatchesOracle_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 5000
	properties := gopter.NewProperties(parameters)

	properties.Property("fixed64.Mul is the floored exact product", prop.ForAll(
		func(a, b int64) bool { return fixed64.Mul(a, b) == Mul64(a, b) },
		gen.Int64(), gen.Int64(),
	))
	properties.Property("fixed64.DivPrecise is the truncated exact quotient", prop.ForAll(
		func(a, b int64) bool { return fixed64.DivPrecise(a, b) == Div64(a, b) },
		gen.Int64(), gen.Int64(),
	))
	properties.Property("fixed64.SqrtPrecise is the floored exact root below the limit", prop.ForAll(
		func(a int64) bool { return fixed64.SqrtPrecise(a) == Sqrt64(a) },
		gen.Int64Range(0, Sqrt64ExactLimit),
	))
	properties.Property("fixed32.Mul is the floored exact product", prop.ForAll(
		func(a, b int32) bool { return fixed32.Mul(a, b) == Mul32(a, b) },
		gen.Int32(), gen.Int32(),
	))
	properties.Property("fixed32.DivPrecise is the truncated exact quotient", prop.ForAll(
		func(a, b int32) bool { return fixed32.DivPrecise(a, b) == Div32(a, b) },
		gen.Int32(), gen.Int32(),
	))
	properties.Property("fixed32.SqrtPrecise is the floored exact root", prop.ForAll(
		func(a int32) bool { return fixed32.SqrtPrecise(a) == Sqrt32(a) },
		gen.Int32Range(0, fixed32.MaxValue),
	))

	properties.TestingRun(t)
}

func FuzzDiv64(f *testing.F) {
	f.Add(int64(1), int64(0))
	f.Add(fixed64.MinValue, int64(-1))
	f.Add(fixed64.MaxValue, fixed64.MinValue)
	f.Add(int64(1)<<40, int64(3))
	f.Fuzz(func(t *testing.T, a, b int64) {
		if got, want := fixed64.DivPrecise(a, b), Div64(a, b); got != want {
			t.Fatalf("DivPrecise(%d, %d) = %d, oracle %d", a, b, got, want)
		}
	})
}

func BenchmarkOracleDiv64(b *testing.B) {
	b.ReportAllocs()
	x, y := fixed64.FromDouble(1234.5), fixed64.FromDouble(-3.25)
	for i := 0; i < b.N; i++ {
		_ = Div64(x, y)
	}
}
