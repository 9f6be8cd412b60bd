package catalog

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/agbru/fixpoint/fixed32"
	"github.com/agbru/fixpoint/fixed64"
)

func TestDefaultCatalogShape(t *testing.T) {
	t.Parallel()
	c := Default()

	if got, want := c.Len(), 128; got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}
	if got, want := len(c.Names()), 29; got != want {
		t.Errorf("len(Names()) = %d, want %d", got, want)
	}

	keys := c.Keys()
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			t.Fatalf("keys not strictly sorted at %d: %q >= %q", i, keys[i-1], keys[i])
		}
	}

	for _, op := range c.List() {
		if len(op.Domains) == 0 {
			t.Errorf("%s has no input domain", op.Key())
		}
		if op.Iters <= 0 {
			t.Errorf("%s has no benchmark iteration count", op.Key())
		}
		if (op.Arity() == 1) != (op.Ref1 != nil) {
			t.Errorf("%s reference arity does not match evaluator", op.Key())
		}
	}
}

func TestGetAndLookup(t *testing.T) {
	t.Parallel()
	c := Default()

	tests := []struct {
		key     string
		wantErr bool
		arity   int
	}{
		{"sin/64/fast", false, 1},
		{"atan2/32/precise", false, 2},
		{"div/64/exact", false, 2},
		{"ceil/32/exact", false, 1},
		{"exp/64/exact", true, 0},
		{"nope/64/fast", true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Parallel()
			op, err := c.Get(tt.key)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownOp) {
					t.Fatalf("Get(%q) error = %v, want ErrUnknownOp", tt.key, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Get(%q): %v", tt.key, err)
			}
			if op.Key() != tt.key {
				t.Errorf("Key() = %q, want %q", op.Key(), tt.key)
			}
			if op.Arity() != tt.arity {
				t.Errorf("Arity() = %d, want %d", op.Arity(), tt.arity)
			}
		})
	}

	op, err := c.Lookup("sqrt", Width32, TierFastest)
	if err != nil || op.Key() != "sqrt/32/fastest" {
		t.Errorf("Lookup(sqrt, 32, fastest) = %q, %v", op.Key(), err)
	}
}

func TestEvaluatorsMatchKernel(t *testing.T) {
	t.Parallel()
	c := Default()

	x64 := fixed64.FromDouble(2.75)
	y64 := fixed64.FromDouble(-1.25)
	x32 := fixed32.FromDouble(2.75)
	y32 := fixed32.FromDouble(-1.25)

	tests := []struct {
		key  string
		in   []int64
		want int64
	}{
		{"sqrt/64/fast", []int64{x64}, fixed64.SqrtFast(x64)},
		{"rcp/64/exact", []int64{x64}, fixed64.DivPrecise(fixed64.One, x64)},
		{"div/64/fastest", []int64{x64, y64}, fixed64.DivFastest(x64, y64)},
		{"sin/32/precise", []int64{int64(x32)}, int64(fixed32.Sin(x32))},
		{"atan2/32/fast", []int64{int64(y32), int64(x32)}, int64(fixed32.Atan2Fast(y32, x32))},
		{"nabs/32/exact", []int64{int64(x32)}, int64(fixed32.Nabs(x32))},
		{"mul/32/exact", []int64{int64(x32), int64(y32)}, int64(fixed32.Mul(x32, y32))},
		{"sign/64/exact", []int64{y64}, fixed64.Neg1},
		{"sign/32/exact", []int64{int64(x32)}, int64(fixed32.One)},
		{"sign/32/exact", []int64{0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Parallel()
			op, err := c.Get(tt.key)
			if err != nil {
				t.Fatal(err)
			}
			if got := op.Eval(tt.in...); got != tt.want {
				t.Errorf("Eval(%v) = %#x, want %#x", tt.in, got, tt.want)
			}
		})
	}
}

func TestFilter(t *testing.T) {
	t.Parallel()
	c := Default()

	tests := []struct {
		name     string
		patterns string
		width    Width
		tier     Tier
		wantKeys []string
		wantErr  bool
	}{
		{
			name:     "glob with width and tier",
			patterns: "s*", width: Width64, tier: TierFast,
			wantKeys: []string{"sin/64/fast", "sqrt/64/fast"},
		},
		{
			name:     "list of names",
			patterns: "exp2, log2", width: Width32, tier: TierPrecise,
			wantKeys: []string{"exp2/32/precise", "log2/32/precise"},
		},
		{
			name:     "exact tier only",
			patterns: "div", width: AnyWidth, tier: TierExact,
			wantKeys: []string{"div/32/exact", "div/64/exact"},
		},
		{
			name:     "no match",
			patterns: "sinh", width: AnyWidth, tier: AnyTier,
			wantErr:  true,
		},
		{
			name:     "bad glob",
			patterns: "[", width: AnyWidth, tier: AnyTier,
			wantErr:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ops, err := c.Filter(tt.patterns, tt.width, tt.tier)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Filter(%q) expected an error, got %d ops", tt.patterns, len(ops))
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if len(ops) != len(tt.wantKeys) {
				t.Fatalf("Filter(%q) returned %d ops, want %d", tt.patterns, len(ops), len(tt.wantKeys))
			}
			for i, op := range ops {
				if op.Key() != tt.wantKeys[i] {
					t.Errorf("op %d = %q, want %q", i, op.Key(), tt.wantKeys[i])
				}
			}
		})
	}

	all, err := c.Filter("all", AnyWidth, AnyTier)
	if err != nil || len(all) != c.Len() {
		t.Errorf("Filter(all) = %d ops, %v; want %d", len(all), err, c.Len())
	}
}

func TestFamilies(t *testing.T) {
	t.Parallel()
	fams := Default().Families()
	if len(fams) != 58 {
		t.Fatalf("len(Families()) = %d, want 58", len(fams))
	}
	for _, f := range fams {
		for i := 1; i < len(f.Ops); i++ {
			if f.Ops[i-1].Tier >= f.Ops[i].Tier {
				t.Errorf("family %s not ordered by tier", f.Key)
			}
		}
		if f.Key == "sqrt/64" && len(f.Ops) != 4 {
			t.Errorf("sqrt/64 should have 4 tiers, got %d", len(f.Ops))
		}
		if f.Key == "sin/32" && f.Ops[0].Tier != TierPrecise {
			t.Errorf("sin/32 should start at precise, got %s", f.Ops[0].Tier)
		}
	}
}

func TestParseWidthTier(t *testing.T) {
	t.Parallel()
	widths := map[string]Width{"64": Width64, "32": Width32, "all": AnyWidth, "": AnyWidth}
	for in, want := range widths {
		got, err := ParseWidth(in)
		if err != nil || got != want {
			t.Errorf("ParseWidth(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseWidth("16"); err == nil {
		t.Error("ParseWidth(16) should fail")
	}

	tiers := map[string]Tier{"exact": TierExact, "precise": TierPrecise, "fast": TierFast, "fastest": TierFastest, "all": AnyTier}
	for in, want := range tiers {
		got, err := ParseTier(in)
		if err != nil || got != want {
			t.Errorf("ParseTier(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseTier("turbo"); err == nil {
		t.Error("ParseTier(turbo) should fail")
	}
	var unset Tier
	if unset != AnyTier || unset.String() != "any" {
		t.Errorf("zero Tier = %v (%q), want AnyTier", unset, unset.String())
	}
	if TierExact.String() != "exact" || TierFastest.String() != "fastest" {
		t.Errorf("tier names = %q, %q", TierExact.String(), TierFastest.String())
	}
}

func TestMetric(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		m      Metric
		y, out float64
		ref    float64
		want   float64
	}{
		{"absolute", Metric{Kind: Absolute}, 0, 1.5, 1.0, 0.5},
		{"relative large ref", Metric{Kind: Relative, Threshold: 1.0 / 65536}, 0, 2.2, 2.0, 0.1},
		{"relative small ref uses threshold", Metric{Kind: Relative, Threshold: 0.5}, 0, 0.1, 0.0, 0.2},
		{"division relative to divisor", Metric{Kind: DivisionRelative, Threshold: 1.0 / 65536}, 4, 1.5, 1.0, 0.125},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.m.Error(0, tt.y, tt.out, tt.ref); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBasicInputsDropsUnrepresentable(t *testing.T) {
	t.Parallel()
	c := Default()

	op64, _ := c.Get("rcp/64/precise")
	op32, _ := c.Get("rcp/32/precise")
	if got := len(op64.BasicInputs()); got != 14 {
		t.Errorf("rcp/64 basic inputs = %d, want 14", got)
	}
	// 65535 and 123544 exceed s16.16.
	if got := len(op32.BasicInputs()); got != 12 {
		t.Errorf("rcp/32 basic inputs = %d, want 12", got)
	}

	div, _ := c.Get("div/64/exact")
	in := div.BasicInputs()
	if len(in) != 4 || len(in[1]) != 2 || in[1][0] != fixed64.Four || in[1][1] != fixed64.Two {
		t.Errorf("div basic inputs = %v", in)
	}
}

func TestNewRejectsInvalid(t *testing.T) {
	t.Parallel()
	id := func(x int64) int64 { return x }
	op := Op{Name: "id", Width: Width64, Tier: TierExact, Unary: id, Ref1: func(x float64) float64 { return x }}

	if _, err := New(op, op); err == nil {
		t.Error("duplicate keys should be rejected")
	}
	bad := op
	bad.Binary = func(a, b int64) int64 { return a }
	if _, err := New(bad); err == nil {
		t.Error("an op with two evaluators should be rejected")
	}
	untiered := op
	untiered.Tier = AnyTier
	if _, err := New(untiered); err == nil {
		t.Error("an op without a tier should be rejected")
	}
}

func TestWidthConversions(t *testing.T) {
	t.Parallel()
	if Width64.Shift() != 32 || Width32.Shift() != 16 {
		t.Fatal("unexpected shifts")
	}
	if Width32.ToDouble(Width32.FromDouble(-2.5)) != -2.5 {
		t.Error("32-bit round trip of -2.5 failed")
	}
	if Width64.ToDouble(Width64.FromDouble(1e6+0.25)) != 1e6+0.25 {
		t.Error("64-bit round trip failed")
	}
	if got := Width32.ReferenceLimit(); got != 65536*0.99 {
		t.Errorf("32-bit reference limit = %v", got)
	}
}

func ExampleCatalog_Lookup() {
	op, err := Default().Lookup("sqrt", Width64, TierExact)
	if err != nil {
		panic(err)
	}
	out := op.Eval(op.Width.FromDouble(6.25))
	fmt.Println(op.Key(), op.Width.ToDouble(out))
	// Output: sqrt/64/exact 2.5
}
