package catalog

import (
	"math"

	"github.com/agbru/fixpoint/fixed32"
	"github.com/agbru/fixpoint/fixed64"
)

// Kernel tables are indexed by tier order: exact, precise, fast, fastest. A nil
// slot means the function has no implementation at that tier.
type (
	unaryKernels  [numTiers]func(int64) int64
	binaryKernels [numTiers]func(int64, int64) int64
)

func lift32U(fs ...func(int32) int32) unaryKernels {
	var k unaryKernels
	for i, f := range fs {
		if f != nil {
			k[i] = func(x int64) int64 { return int64(f(int32(x))) }
		}
	}
	return k
}

func lift32B(fs ...func(int32, int32) int32) binaryKernels {
	var k binaryKernels
	for i, f := range fs {
		if f != nil {
			k[i] = func(a, b int64) int64 { return int64(f(int32(a), int32(b))) }
		}
	}
	return k
}

type unaryFamily struct {
	name     string
	ref      func(float64) float64
	metric   MetricKind
	iters    int
	d64, d32 []Range
	basic    []float64
	k64, k32 unaryKernels
}

type binaryFamily struct {
	name      string
	ref       func(float64, float64) float64
	metric    MetricKind
	threshold float64 // 64-bit threshold; 0 selects the width default
	iters     int
	d64, d32  []Domain
	basic     [][2]float64
	k64, k32  binaryKernels
}

// signum is the kernel Sign lifted to a value: -1, 0 or 1.
func signum(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

func lin(lo, hi float64) Range { return Range{Lo: lo, Hi: hi} }

func pair(x, y Range) Domain { return Domain{X: x, Y: y} }

// defaultThreshold is the floor of the relative metric denominator. For
// s16.16 one output ulp is already 1.5e-5, so errors are scaled against 1.
func defaultThreshold(w Width) float64 {
	if w == Width32 {
		return 1
	}
	return 1.0 / 65536
}

var (
	rcpValues = []float64{
		0.03, 0.125, 0.5, 1.0, 2.0, 3.0, 3.999, 4.0, 7.777,
		11.12345, 12.0, 256.0, 65535.0, 123544.0,
	}
	sinCosValues = []float64{
		-16.1234, -4.444, -0.5, 0.0, 0.12345, 0.5, 1.2, 2.1, math.Pi,
		1.9999 * math.Pi, 2.0001 * math.Pi, 4.56 * math.Pi, 16.0 * math.Pi,
	}
	asinCosValues = []float64{
		-0.9999972383957, -0.99, -0.95, -0.9, -0.8, -0.75, -0.73, -0.71,
		-0.7071059781592, -0.7, -0.65, -0.5, -0.321, -0.11211, -0.000014884,
		0.0, 0.00001, 0.321, 0.5521, 0.7071059781592, 0.99, 0.9999972383957,
	}
	halfOne = []float64{0.5, 1.0}

	bitsDomain64 = []Range{lin(-1e6, 1e6), lin(-1, 1)}
	bitsDomain32 = []Range{lin(-3e4, 3e4), lin(-1, 1)}
)

func unaryFamilies() []unaryFamily {
	return []unaryFamily{
		{
			name: "ceil", ref: math.Ceil, iters: 1000000,
			d64: bitsDomain64, d32: bitsDomain32, basic: rcpValues,
			k64: unaryKernels{fixed64.Ceil}, k32: lift32U(fixed32.Ceil),
		},
		{
			name: "floor", ref: math.Floor, iters: 1000000,
			d64: bitsDomain64, d32: bitsDomain32, basic: rcpValues,
			k64: unaryKernels{fixed64.Floor}, k32: lift32U(fixed32.Floor),
		},
		{
			name: "round", ref: func(x float64) float64 { return math.Floor(x + 0.5) }, iters: 1000000,
			d64: bitsDomain64, d32: bitsDomain32, basic: rcpValues,
			k64: unaryKernels{fixed64.Round}, k32: lift32U(fixed32.Round),
		},
		{
			name: "fract", ref: func(x float64) float64 { return x - math.Floor(x) }, iters: 1000000,
			d64: bitsDomain64, d32: bitsDomain32, basic: rcpValues,
			k64: unaryKernels{fixed64.Fract}, k32: lift32U(fixed32.Fract),
		},
		{
			name: "abs", ref: math.Abs, iters: 1000000,
			d64: bitsDomain64, d32: bitsDomain32, basic: rcpValues,
			k64: unaryKernels{fixed64.Abs}, k32: lift32U(fixed32.Abs),
		},
		{
			name: "nabs", ref: func(x float64) float64 { return -math.Abs(x) }, iters: 1000000,
			d64: bitsDomain64, d32: bitsDomain32, basic: rcpValues,
			k64: unaryKernels{fixed64.Nabs}, k32: lift32U(fixed32.Nabs),
		},
		{
			name: "sign", ref: signum, iters: 1000000,
			d64: bitsDomain64, d32: bitsDomain32, basic: []float64{-2.5, 0, 0.5, 3},
			k64: unaryKernels{func(x int64) int64 { return fixed64.FromInt(fixed64.Sign(x)) }},
			k32: lift32U(func(x int32) int32 { return fixed32.FromInt(fixed32.Sign(x)) }),
		},
		{
			name: "rcp", ref: func(x float64) float64 { return 1 / x }, metric: Relative, iters: 100000,
			d64: []Range{lin(0.01, 40)}, d32: []Range{lin(0.01, 40)}, basic: rcpValues,
			k64: unaryKernels{
				func(x int64) int64 { return fixed64.DivPrecise(fixed64.One, x) },
				fixed64.Rcp, fixed64.RcpFast, fixed64.RcpFastest,
			},
			k32: lift32U(
				func(x int32) int32 { return fixed32.DivPrecise(fixed32.One, x) },
				fixed32.Rcp, fixed32.RcpFast, fixed32.RcpFastest,
			),
		},
		{
			name: "sqrt", ref: math.Sqrt, metric: Relative, iters: 10000,
			d64: []Range{lin(0.01, 40)}, d32: []Range{lin(0.01, 40)}, basic: rcpValues,
			k64: unaryKernels{fixed64.SqrtPrecise, fixed64.Sqrt, fixed64.SqrtFast, fixed64.SqrtFastest},
			k32: lift32U(fixed32.SqrtPrecise, fixed32.Sqrt, fixed32.SqrtFast, fixed32.SqrtFastest),
		},
		{
			name: "rsqrt", ref: func(x float64) float64 { return 1 / math.Sqrt(x) }, metric: Relative, iters: 100000,
			d64: []Range{lin(0.01, 40)}, d32: []Range{lin(0.01, 40)}, basic: rcpValues,
			k64: unaryKernels{nil, fixed64.RSqrt, fixed64.RSqrtFast, fixed64.RSqrtFastest},
			k32: lift32U(nil, fixed32.RSqrt, fixed32.RSqrtFast, fixed32.RSqrtFastest),
		},
		{
			name: "exp", ref: math.Exp, metric: Relative, iters: 100000,
			d64: []Range{lin(-10, 10)}, d32: []Range{lin(-10, 10)},
			basic: []float64{0.5, 1.0, 4.85202256566845},
			k64:   unaryKernels{nil, fixed64.Exp, fixed64.ExpFast, fixed64.ExpFastest},
			k32:   lift32U(nil, fixed32.Exp, fixed32.ExpFast, fixed32.ExpFastest),
		},
		{
			name: "exp2", ref: math.Exp2, metric: Relative, iters: 100000,
			d64: []Range{lin(-10, 10)}, d32: []Range{lin(-10, 10)},
			basic: []float64{0.5, 1.0, 6.9999888928141445},
			k64:   unaryKernels{nil, fixed64.Exp2, fixed64.Exp2Fast, fixed64.Exp2Fastest},
			k32:   lift32U(nil, fixed32.Exp2, fixed32.Exp2Fast, fixed32.Exp2Fastest),
		},
		{
			name: "log", ref: math.Log, metric: Relative, iters: 100000,
			d64: []Range{lin(0.001, 1e6)}, d32: []Range{lin(0.001, 3e4)}, basic: halfOne,
			k64: unaryKernels{nil, fixed64.Log, fixed64.LogFast, fixed64.LogFastest},
			k32: lift32U(nil, fixed32.Log, fixed32.LogFast, fixed32.LogFastest),
		},
		{
			name: "log2", ref: math.Log2, metric: Relative, iters: 100000,
			d64: []Range{lin(0.001, 1e6)}, d32: []Range{lin(0.001, 3e4)}, basic: halfOne,
			k64: unaryKernels{nil, fixed64.Log2, fixed64.Log2Fast, fixed64.Log2Fastest},
			k32: lift32U(nil, fixed32.Log2, fixed32.Log2Fast, fixed32.Log2Fastest),
		},
		{
			name: "sin", ref: math.Sin, iters: 500000,
			d64:   []Range{lin(-10, 10), lin(-100, 100), lin(-1e6, 1e6)},
			d32:   []Range{lin(-10, 10), lin(-100, 100), lin(-3e4, 3e4)},
			basic: sinCosValues,
			k64:   unaryKernels{nil, fixed64.Sin, fixed64.SinFast, fixed64.SinFastest},
			k32:   lift32U(nil, fixed32.Sin, fixed32.SinFast, fixed32.SinFastest),
		},
		{
			name: "cos", ref: math.Cos, iters: 500000,
			d64:   []Range{lin(-10, 10), lin(-100, 100), lin(-1e6, 1e6)},
			d32:   []Range{lin(-10, 10), lin(-100, 100), lin(-3e4, 3e4)},
			basic: sinCosValues,
			k64:   unaryKernels{nil, fixed64.Cos, fixed64.CosFast, fixed64.CosFastest},
			k32:   lift32U(nil, fixed32.Cos, fixed32.CosFast, fixed32.CosFastest),
		},
		{
			name: "tan", ref: math.Tan, metric: Relative, iters: 100000,
			d64:   []Range{lin(-0.99, -0.1), lin(-0.1, 0.1), lin(0.1, 0.99)},
			d32:   []Range{lin(-0.99, -0.1), lin(-0.1, 0.1), lin(0.1, 0.99)},
			basic: halfOne,
			k64:   unaryKernels{nil, fixed64.Tan, fixed64.TanFast, fixed64.TanFastest},
			k32:   lift32U(nil, fixed32.Tan, fixed32.TanFast, fixed32.TanFastest),
		},
		{
			name: "asin", ref: math.Asin, iters: 50000,
			d64: []Range{lin(-1, 1)}, d32: []Range{lin(-1, 1)}, basic: asinCosValues,
			k64: unaryKernels{nil, fixed64.Asin, fixed64.AsinFast, fixed64.AsinFastest},
			k32: lift32U(nil, fixed32.Asin, fixed32.AsinFast, fixed32.AsinFastest),
		},
		{
			name: "acos", ref: math.Acos, iters: 50000,
			d64: []Range{lin(-1, 1)}, d32: []Range{lin(-1, 1)}, basic: asinCosValues,
			k64: unaryKernels{nil, fixed64.Acos, fixed64.AcosFast, fixed64.AcosFastest},
			k32: lift32U(nil, fixed32.Acos, fixed32.AcosFast, fixed32.AcosFastest),
		},
		{
			name: "atan", ref: math.Atan, iters: 100000,
			d64: []Range{lin(-1, 1), lin(-1000, 1000)}, d32: []Range{lin(-1, 1), lin(-1000, 1000)},
			basic: halfOne,
			k64:   unaryKernels{nil, fixed64.Atan, fixed64.AtanFast, fixed64.AtanFastest},
			k32:   lift32U(nil, fixed32.Atan, fixed32.AtanFast, fixed32.AtanFastest),
		},
	}
}

func binaryFamilies() []binaryFamily {
	wide64 := []Domain{pair(lin(-1e6, 1e6), lin(-1e6, 1e6))}
	wide32 := []Domain{pair(lin(-1.5e4, 1.5e4), lin(-1.5e4, 1.5e4))}
	minMax64 := []Domain{wide64[0], pair(lin(-1e6, 1e6), lin(-1e6, -1e6))}
	minMax32 := []Domain{wide32[0], pair(lin(-1.5e4, 1.5e4), lin(-1.5e4, -1.5e4))}

	return []binaryFamily{
		{
			name: "add", ref: func(a, b float64) float64 { return a + b }, iters: 1000000,
			d64: wide64, d32: wide32,
			k64: binaryKernels{fixed64.Add}, k32: lift32B(fixed32.Add),
		},
		{
			name: "sub", ref: func(a, b float64) float64 { return a - b }, iters: 1000000,
			d64: wide64, d32: wide32,
			k64: binaryKernels{fixed64.Sub}, k32: lift32B(fixed32.Sub),
		},
		{
			name: "mul", ref: func(a, b float64) float64 { return a * b }, metric: Relative, iters: 1000000,
			d64: []Domain{
				pair(lin(-1e3, 1e3), lin(-1e3, 1e3)),
				pair(lin(-1e6, 1e6), lin(-1, 1)),
				pair(lin(-1e9, 1e9), lin(-1e-3, 1e-3)),
			},
			d32: []Domain{
				pair(lin(-100, 100), lin(-100, 100)),
				pair(lin(-3e4, 3e4), lin(-1, 1)),
			},
			k64: binaryKernels{fixed64.Mul}, k32: lift32B(fixed32.Mul),
		},
		{
			name: "div", ref: func(a, b float64) float64 { return a / b }, metric: DivisionRelative, iters: 1000000,
			d64:   []Domain{pair(lin(0, 1e3), lin(1e3, 1e9))},
			d32:   []Domain{pair(lin(0, 100), lin(100, 3e4))},
			basic: [][2]float64{{0, 1}, {4, 2}, {6, 0.5}, {39.483308344613761, 87595497.47375004}},
			k64:   binaryKernels{fixed64.DivPrecise, fixed64.Div, fixed64.DivFast, fixed64.DivFastest},
			k32:   lift32B(fixed32.DivPrecise, fixed32.Div, fixed32.DivFast, fixed32.DivFastest),
		},
		{
			name: "mod", ref: math.Mod, iters: 1000000,
			d64: []Domain{pair(lin(-1e3, 1e3), lin(1, 100))},
			d32: []Domain{pair(lin(-1e3, 1e3), lin(1, 100))},
			k64: binaryKernels{fixed64.Mod}, k32: lift32B(fixed32.Mod),
		},
		{
			name: "min", ref: math.Min, iters: 1000000,
			d64: minMax64, d32: minMax32,
			k64: binaryKernels{fixed64.Min}, k32: lift32B(fixed32.Min),
		},
		{
			name: "max", ref: math.Max, iters: 1000000,
			d64: minMax64, d32: minMax32,
			k64: binaryKernels{fixed64.Max}, k32: lift32B(fixed32.Max),
		},
		{
			name: "pow", ref: math.Pow, metric: Relative, threshold: 1.0 / 256, iters: 100000,
			d64: []Domain{
				pair(lin(1e-6, 1), lin(1e-3, 20)),
				pair(lin(1, 16), lin(1e-3, 1)),
			},
			d32: []Domain{
				pair(lin(1e-3, 1), lin(1e-3, 20)),
				pair(lin(1, 16), lin(1e-3, 1)),
			},
			basic: [][2]float64{
				{0.03431271179579, 8.52991297887638},
				{0.00991570530459, 9.13006472284906},
				{0.16317143756896, 12.2345450441353},
				{0.28775308770127, 17.8064287465531},
			},
			k64: binaryKernels{nil, fixed64.Pow, fixed64.PowFast, fixed64.PowFastest},
			k32: lift32B(nil, fixed32.Pow, fixed32.PowFast, fixed32.PowFastest),
		},
		{
			name: "atan2", ref: math.Atan2, iters: 100000,
			d64: []Domain{
				pair(lin(1e-6, 1), lin(1e-6, 1)),
				pair(lin(1, 1e6), lin(1, 1e6)),
			},
			d32: []Domain{
				pair(lin(1e-3, 1), lin(1e-3, 1)),
				pair(lin(1, 3e4), lin(1, 3e4)),
			},
			k64: binaryKernels{nil, fixed64.Atan2, fixed64.Atan2Fast, fixed64.Atan2Fastest},
			k32: lift32B(nil, fixed32.Atan2, fixed32.Atan2Fast, fixed32.Atan2Fastest),
		},
	}
}

func builtinOps() []Op {
	var ops []Op
	for _, f := range unaryFamilies() {
		for _, w := range []Width{Width64, Width32} {
			kernels, ranges := f.k64, f.d64
			if w == Width32 {
				kernels, ranges = f.k32, f.d32
			}
			domains := make([]Domain, len(ranges))
			for i, r := range ranges {
				domains[i] = Domain{X: r}
			}
			basic := make([][2]float64, len(f.basic))
			for i, v := range f.basic {
				basic[i] = [2]float64{v}
			}
			for t, k := range kernels {
				if k == nil {
					continue
				}
				ops = append(ops, Op{
					Name:    f.name,
					Width:   w,
					Tier:    TierExact + Tier(t),
					Unary:   k,
					Ref1:    f.ref,
					Metric:  Metric{Kind: f.metric, Threshold: defaultThreshold(w)},
					Domains: domains,
					Basic:   basic,
					Iters:   f.iters,
				})
			}
		}
	}
	for _, f := range binaryFamilies() {
		for _, w := range []Width{Width64, Width32} {
			kernels, domains := f.k64, f.d64
			threshold := defaultThreshold(w)
			if w == Width64 && f.threshold != 0 {
				threshold = f.threshold
			}
			if w == Width32 {
				kernels, domains = f.k32, f.d32
			}
			for t, k := range kernels {
				if k == nil {
					continue
				}
				ops = append(ops, Op{
					Name:    f.name,
					Width:   w,
					Tier:    TierExact + Tier(t),
					Binary:  k,
					Ref2:    f.ref,
					Metric:  Metric{Kind: f.metric, Threshold: threshold},
					Domains: domains,
					Basic:   f.basic,
					Iters:   f.iters,
				})
			}
		}
	}
	return ops
}
