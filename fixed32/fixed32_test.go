package fixed32

import (
	"math"
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestConstants(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		got  int32
		want float64
	}{
		{"Pi", Pi, math.Pi},
		{"Pi2", Pi2, 2 * math.Pi},
		{"PiHalf", PiHalf, math.Pi / 2},
		{"E", E, math.E},
		{"Half", Half, 0.5},
		{"Neg1", Neg1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if d := math.Abs(ToDouble(tt.got) - tt.want); d > 1.0/65536 {
				t.Errorf("%s = %v, want %v", tt.name, ToDouble(tt.got), tt.want)
			}
		})
	}
}

func TestIntegerExtraction(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in                 float64
		ceil, floor, round int32
	}{
		{2.5, 3, 2, 3},
		{-2.5, -2, -3, -2},
		{0.25, 1, 0, 0},
		{-0.25, 0, -1, 0},
		{7, 7, 7, 7},
	}
	for _, tt := range tests {
		v := FromDouble(tt.in)
		if got := CeilToInt(v); got != tt.ceil {
			t.Errorf("CeilToInt(%v) = %d, want %d", tt.in, got, tt.ceil)
		}
		if got := FloorToInt(v); got != tt.floor {
			t.Errorf("FloorToInt(%v) = %d, want %d", tt.in, got, tt.floor)
		}
		if got := RoundToInt(v); got != tt.round {
			t.Errorf("RoundToInt(%v) = %d, want %d", tt.in, got, tt.round)
		}
		if got := Ceil(v); got != FromInt(tt.ceil) {
			t.Errorf("Ceil(%v) = %v", tt.in, ToDouble(got))
		}
		if got := Floor(v) + Fract(v); got != v {
			t.Errorf("Floor+Fract(%v) = %v", tt.in, ToDouble(got))
		}
	}
}

func TestElementary(t *testing.T) {
	t.Parallel()
	if got := Abs(FromInt(-3)); got != FromInt(3) {
		t.Errorf("Abs(-3) = %v", ToDouble(got))
	}
	if got := Abs(MinValue); got != MinValue {
		t.Errorf("Abs(MinValue) = %d, want MinValue", got)
	}
	if got := Nabs(FromInt(3)); got != FromInt(-3) {
		t.Errorf("Nabs(3) = %v", ToDouble(got))
	}
	for _, tt := range []struct{ x, want int32 }{{-5, -1}, {0, 0}, {9, 1}, {MinValue, -1}, {MaxValue, 1}} {
		if got := Sign(tt.x); got != tt.want {
			t.Errorf("Sign(%d) = %d, want %d", tt.x, got, tt.want)
		}
	}
	if got := Clamp(FromInt(5), 0, One); got != One {
		t.Errorf("Clamp(5, 0, 1) = %v", ToDouble(got))
	}
	if got := Min(One, Two) + Max(One, Two); got != Three {
		t.Errorf("Min+Max = %v", ToDouble(got))
	}
	if got := Add(MaxValue, 1); got != MinValue {
		t.Errorf("Add(MaxValue, 1) = %d, want wraparound", got)
	}
	if got := Sub(MinValue, 1); got != MaxValue {
		t.Errorf("Sub(MinValue, 1) = %d, want wraparound", got)
	}
	if got := Mul(One, One); got != One {
		t.Errorf("Mul(1, 1) = %d", got)
	}
	if got := Mul(FromDouble(1.5), FromInt(-4)); got != FromInt(-6) {
		t.Errorf("Mul(1.5, -4) = %v", ToDouble(got))
	}
	if got := Mod(FromDouble(7.5), Two); got != FromDouble(1.5) {
		t.Errorf("Mod(7.5, 2) = %v", ToDouble(got))
	}
	if got := Mod(FromDouble(-7.5), Two); got != FromDouble(-1.5) {
		t.Errorf("Mod(-7.5, 2) = %v", ToDouble(got))
	}
	if got := Mod(One, 0); got != 0 {
		t.Errorf("Mod(1, 0) = %d, want 0", got)
	}
	if got := Lerp(Four, Two, Half); got != Three {
		t.Errorf("Lerp(4, 2, 0.5) = %v", ToDouble(got))
	}
	if got := Lerp(Four, Two, One); got != Four {
		t.Errorf("Lerp(4, 2, 1) = %v", ToDouble(got))
	}
}

func TestConversions(t *testing.T) {
	t.Parallel()
	if got := FromFloat(0.75); got != 3*One/4 {
		t.Errorf("FromFloat(0.75) = %d", got)
	}
	if got := ToFloat(Half); got != 0.5 {
		t.Errorf("ToFloat(Half) = %v", got)
	}
	if got := ToInt(FromDouble(-1.5)); got != -2 {
		t.Errorf("ToInt(-1.5) = %d, want -2", got)
	}
}

func TestDivision(t *testing.T) {
	t.Parallel()
	divs := map[string]func(int32, int32) int32{
		"DivPrecise": DivPrecise, "Div": Div, "DivFast": DivFast, "DivFastest": DivFastest,
	}
	for name, fn := range divs {
		if got := fn(One, 0); got != 0 {
			t.Errorf("%s(1, 0) = %d, want 0", name, got)
		}
		if got := fn(Three, MinValue); got != 0 {
			t.Errorf("%s(3, MinValue) = %d, want 0", name, got)
		}
	}
	if got := Div(FromInt(10), FromInt(4)); got != FromDouble(2.5) {
		t.Errorf("Div(10, 4) = %v, want 2.5", ToDouble(got))
	}
	if got := DivPrecise(FromInt(-10), FromInt(4)); got != FromDouble(-2.5) {
		t.Errorf("DivPrecise(-10, 4) = %v, want -2.5", ToDouble(got))
	}
	for name, fn := range map[string]func(int32) int32{"Rcp": Rcp, "RcpFast": RcpFast, "RcpFastest": RcpFastest} {
		if got := fn(-Two); got != -Half {
			t.Errorf("%s(-2) = %v, want -0.5", name, ToDouble(got))
		}
		if got := fn(0); got != 0 {
			t.Errorf("%s(0) = %d, want 0", name, got)
		}
	}
}

func TestRoots(t *testing.T) {
	t.Parallel()
	for name, fn := range map[string]func(int32) int32{
		"SqrtPrecise": SqrtPrecise, "Sqrt": Sqrt, "RSqrt": RSqrt,
	} {
		if got := fn(-One); got != 0 {
			t.Errorf("%s(-1) = %d, want 0", name, got)
		}
		if got := fn(0); got != 0 {
			t.Errorf("%s(0) = %d, want 0", name, got)
		}
	}
	if got := Sqrt(Four); got != Two {
		t.Errorf("Sqrt(4) = %v, want 2", ToDouble(got))
	}
	if got := SqrtPrecise(Four); got != Two {
		t.Errorf("SqrtPrecise(4) = %v, want 2", ToDouble(got))
	}
	if got := RSqrt(Four); got != Half {
		t.Errorf("RSqrt(4) = %v, want 0.5", ToDouble(got))
	}
}

// Radicands at or above 2^30 raw keep their low bits.
func TestSqrtPrecise_LargeRadicands(t *testing.T) {
	t.Parallel()
	tests := []struct {
		a, want int32
	}{
		{1 << 30, 1 << 23},
		{1074790438, 8392703},
		{MaxValue, 11863283},
	}
	for _, tt := range tests {
		if got := SqrtPrecise(tt.a); got != tt.want {
			t.Errorf("SqrtPrecise(%d) = %d, want %d", tt.a, got, tt.want)
		}
	}
}

func TestExpLog(t *testing.T) {
	t.Parallel()
	if got := Log2(One); got != 0 {
		t.Errorf("Log2(1) = %d, want 0", got)
	}
	if got := Exp2(One); got != Two {
		t.Errorf("Exp2(1) = %d, want %d", got, Two)
	}
	if got := Log2(FromInt(1024)); got != FromInt(10) {
		t.Errorf("Log2(1024) = %v, want 10", ToDouble(got))
	}
	for name, fn := range map[string]func(int32) int32{"Exp2": Exp2, "Exp2Fast": Exp2Fast, "Exp2Fastest": Exp2Fastest} {
		if got := fn(FromInt(15)); got != MaxValue {
			t.Errorf("%s(15) = %d, want MaxValue", name, got)
		}
		if got := fn(FromInt(-16)); got != 0 {
			t.Errorf("%s(-16) = %d, want 0", name, got)
		}
	}
	for name, fn := range map[string]func(int32) int32{"Log": Log, "Log2Fast": Log2Fast, "LogFastest": LogFastest} {
		if got := fn(0); got != 0 {
			t.Errorf("%s(0) = %d, want 0", name, got)
		}
	}
	if got := Pow(-One, Two); got != 0 {
		t.Errorf("Pow(-1, 2) = %d, want 0", got)
	}
}

func TestInverseTrigEdges(t *testing.T) {
	t.Parallel()
	if got := Atan2(0, -One); got != Pi {
		t.Errorf("Atan2(0, -1) = %d, want %d", got, Pi)
	}
	for name, fn := range map[string]func(int32, int32) int32{"Atan2Fast": Atan2Fast, "Atan2Fastest": Atan2Fastest} {
		if got := fn(0, -One); got < Pi-1 || got > Pi {
			t.Errorf("%s(0, -1) = %d, want %d within 1 ulp", name, got, Pi)
		}
		if got := fn(0, 0); got != 0 {
			t.Errorf("%s(0, 0) = %d, want 0", name, got)
		}
	}
	if got := Atan2(-One, 0); got != -PiHalf {
		t.Errorf("Atan2(-1, 0) = %d, want %d", got, -PiHalf)
	}
	// MinValue magnitudes must stay inside the table range.
	for _, p := range [][2]int32{{MinValue, MinValue}, {5, MinValue}, {MinValue, 5}} {
		if got := Atan2(p[0], p[1]); got < -Pi || got > Pi {
			t.Errorf("Atan2(%d, %d) = %d outside [-Pi, Pi]", p[0], p[1], got)
		}
	}
	if got := Asin(One); got != PiHalf {
		t.Errorf("Asin(1) = %d, want %d", got, PiHalf)
	}
	if got := Acos(One); got != 0 {
		t.Errorf("Acos(1) = %d, want 0", got)
	}
	for _, x := range []int32{One + 1, -One - 1, MaxValue} {
		if Asin(x) != 0 || AcosFast(x) != 0 || AsinFastest(x) != 0 {
			t.Errorf("Asin/Acos(%d) should return 0 out of range", x)
		}
	}
}

func TestProperties(t *testing.T) {
	t.Parallel()
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("FloorToInt(FromInt(n)) == n", prop.ForAll(
		func(n int32) bool { return FloorToInt(FromInt(n)) == n },
		gen.Int32Range(-32768, 32767),
	))

	properties.Property("SqrtPrecise is the floor square root", prop.ForAll(
		func(a int32) bool {
			want := new(big.Int).Sqrt(new(big.Int).Lsh(big.NewInt(int64(a)), Shift))
			return int64(SqrtPrecise(a)) == want.Int64()
		},
		gen.Int32Range(1, math.MaxInt32),
	))

	properties.Property("SqrtPrecise(Mul(x, x)) == Abs(x)", prop.ForAll(
		func(k int32) bool {
			x := k << 8
			return SqrtPrecise(Mul(x, x)) == Abs(x)
		},
		gen.Int32Range(-46340, 46340),
	))

	properties.Property("DivPrecise(Mul(FromInt(n), b), b) == FromInt(n)", prop.ForAll(
		func(n int32, b int32) bool {
			return DivPrecise(Mul(FromInt(n), FromInt(b)), FromInt(b)) == FromInt(n)
		},
		gen.Int32Range(-100, 100),
		gen.Int32Range(1, 100),
	))

	properties.Property("Mul is commutative", prop.ForAll(
		func(a, b int32) bool { return Mul(a, b) == Mul(b, a) },
		gen.Int32(),
		gen.Int32(),
	))

	properties.TestingRun(t)
}
