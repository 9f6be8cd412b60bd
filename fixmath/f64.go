package fixmath

import (
	"strconv"

	"github.com/agbru/fixpoint/fixed64"
)

// F64 is an s32.32 fixed-point value.
type F64 int64

const (
	F64Zero   = F64(fixed64.Zero)
	F64One    = F64(fixed64.One)
	F64Neg1   = F64(fixed64.Neg1)
	F64Half   = F64(fixed64.Half)
	F64Two    = F64(fixed64.Two)
	F64Pi     = F64(fixed64.Pi)
	F64Pi2    = F64(fixed64.Pi2)
	F64PiHalf = F64(fixed64.PiHalf)
	F64E      = F64(fixed64.E)
	F64Min    = F64(fixed64.MinValue)
	F64Max    = F64(fixed64.MaxValue)
)

func F64FromRaw(raw int64) F64 {
	return F64(raw)
}

func F64FromInt(v int32) F64 {
	return F64(fixed64.FromInt(v))
}

func F64FromFloat(v float32) F64 {
	return F64(fixed64.FromFloat(v))
}

func F64FromDouble(v float64) F64 {
	return F64(fixed64.FromDouble(v))
}

func (a F64) Raw() int64 {
	return int64(a)
}

func (a F64) Float() float32 {
	return fixed64.ToFloat(int64(a))
}

func (a F64) Double() float64 {
	return fixed64.ToDouble(int64(a))
}

func (a F64) Int() int32 {
	return fixed64.ToInt(int64(a))
}

// ToF32 narrows to s16.16 by dropping the low 16 fraction bits. The
// integer part wraps unless it fits in 16 bits.
func (a F64) ToF32() F32 {
	return F32(int32(int64(a) >> 16))
}

// String renders the value as a float64 decimal, for debugging.
func (a F64) String() string {
	return strconv.FormatFloat(a.Double(), 'g', -1, 64)
}

func (a F64) Cmp(b F64) int {
	return cmp(int64(a), int64(b))
}

func (a F64) Less(b F64) bool {
	return a < b
}

func (a F64) Add(b F64) F64 {
	return a + b
}

func (a F64) Sub(b F64) F64 {
	return a - b
}

func (a F64) Neg() F64 {
	return -a
}

func (a F64) Mul(b F64) F64 {
	return F64(fixed64.Mul(int64(a), int64(b)))
}

func (a F64) Mod(b F64) F64 {
	return F64(fixed64.Mod(int64(a), int64(b)))
}

func (a F64) Min(b F64) F64 {
	return F64(fixed64.Min(int64(a), int64(b)))
}

func (a F64) Max(b F64) F64 {
	return F64(fixed64.Max(int64(a), int64(b)))
}

func (a F64) Clamp(lo, hi F64) F64 {
	return F64(fixed64.Clamp(int64(a), int64(lo), int64(hi)))
}

func (a F64) Abs() F64 {
	return F64(fixed64.Abs(int64(a)))
}

func (a F64) Nabs() F64 {
	return F64(fixed64.Nabs(int64(a)))
}

func (a F64) Sign() int32 {
	return fixed64.Sign(int64(a))
}

func (a F64) Ceil() F64 {
	return F64(fixed64.Ceil(int64(a)))
}

func (a F64) Floor() F64 {
	return F64(fixed64.Floor(int64(a)))
}

func (a F64) Round() F64 {
	return F64(fixed64.Round(int64(a)))
}

func (a F64) Fract() F64 {
	return F64(fixed64.Fract(int64(a)))
}

func (a F64) Lerp(b, t F64) F64 {
	return F64(fixed64.Lerp(int64(a), int64(b), int64(t)))
}

func (a F64) AddInt(n int32) F64 {
	return a + F64FromInt(n)
}

// MulInt multiplies by a plain integer without rescaling.
func (a F64) MulInt(n int32) F64 {
	return a * F64(n)
}

func (a F64) DivInt(n int32) F64 {
	return a.Div(F64FromInt(n))
}

// Atan2 treats a as the y coordinate.
func (a F64) Atan2(x F64) F64 {
	return F64(fixed64.Atan2(int64(a), int64(x)))
}

func (a F64) Atan2Fast(x F64) F64 {
	return F64(fixed64.Atan2Fast(int64(a), int64(x)))
}

func (a F64) Atan2Fastest(x F64) F64 {
	return F64(fixed64.Atan2Fastest(int64(a), int64(x)))
}

// Div divides exactly; see fixed64.DivPrecise.
func (a F64) Div(b F64) F64 {
	return F64(fixed64.DivPrecise(int64(a), int64(b)))
}

func (a F64) DivFast(b F64) F64 {
	return F64(fixed64.DivFast(int64(a), int64(b)))
}

func (a F64) DivFastest(b F64) F64 {
	return F64(fixed64.DivFastest(int64(a), int64(b)))
}

func (a F64) Pow(e F64) F64 {
	return F64(fixed64.Pow(int64(a), int64(e)))
}

func (a F64) PowFast(e F64) F64 {
	return F64(fixed64.PowFast(int64(a), int64(e)))
}

func (a F64) PowFastest(e F64) F64 {
	return F64(fixed64.PowFastest(int64(a), int64(e)))
}

func (a F64) SqrtPrecise() F64 {
	return F64(fixed64.SqrtPrecise(int64(a)))
}

func (a F64) Sqrt() F64 {
	return F64(fixed64.Sqrt(int64(a)))
}

func (a F64) SqrtFast() F64 {
	return F64(fixed64.SqrtFast(int64(a)))
}

func (a F64) SqrtFastest() F64 {
	return F64(fixed64.SqrtFastest(int64(a)))
}

func (a F64) RSqrt() F64 {
	return F64(fixed64.RSqrt(int64(a)))
}

func (a F64) RSqrtFast() F64 {
	return F64(fixed64.RSqrtFast(int64(a)))
}

func (a F64) RSqrtFastest() F64 {
	return F64(fixed64.RSqrtFastest(int64(a)))
}

func (a F64) Rcp() F64 {
	return F64(fixed64.Rcp(int64(a)))
}

func (a F64) RcpFast() F64 {
	return F64(fixed64.RcpFast(int64(a)))
}

func (a F64) RcpFastest() F64 {
	return F64(fixed64.RcpFastest(int64(a)))
}

func (a F64) Exp() F64 {
	return F64(fixed64.Exp(int64(a)))
}

func (a F64) ExpFast() F64 {
	return F64(fixed64.ExpFast(int64(a)))
}

func (a F64) ExpFastest() F64 {
	return F64(fixed64.ExpFastest(int64(a)))
}

func (a F64) Exp2() F64 {
	return F64(fixed64.Exp2(int64(a)))
}

func (a F64) Exp2Fast() F64 {
	return F64(fixed64.Exp2Fast(int64(a)))
}

func (a F64) Exp2Fastest() F64 {
	return F64(fixed64.Exp2Fastest(int64(a)))
}

func (a F64) Log() F64 {
	return F64(fixed64.Log(int64(a)))
}

func (a F64) LogFast() F64 {
	return F64(fixed64.LogFast(int64(a)))
}

func (a F64) LogFastest() F64 {
	return F64(fixed64.LogFastest(int64(a)))
}

func (a F64) Log2() F64 {
	return F64(fixed64.Log2(int64(a)))
}

func (a F64) Log2Fast() F64 {
	return F64(fixed64.Log2Fast(int64(a)))
}

func (a F64) Log2Fastest() F64 {
	return F64(fixed64.Log2Fastest(int64(a)))
}

func (a F64) Sin() F64 {
	return F64(fixed64.Sin(int64(a)))
}

func (a F64) SinFast() F64 {
	return F64(fixed64.SinFast(int64(a)))
}

func (a F64) SinFastest() F64 {
	return F64(fixed64.SinFastest(int64(a)))
}

func (a F64) Cos() F64 {
	return F64(fixed64.Cos(int64(a)))
}

func (a F64) CosFast() F64 {
	return F64(fixed64.CosFast(int64(a)))
}

func (a F64) CosFastest() F64 {
	return F64(fixed64.CosFastest(int64(a)))
}

func (a F64) Tan() F64 {
	return F64(fixed64.Tan(int64(a)))
}

func (a F64) TanFast() F64 {
	return F64(fixed64.TanFast(int64(a)))
}

func (a F64) TanFastest() F64 {
	return F64(fixed64.TanFastest(int64(a)))
}

func (a F64) Asin() F64 {
	return F64(fixed64.Asin(int64(a)))
}

func (a F64) AsinFast() F64 {
	return F64(fixed64.AsinFast(int64(a)))
}

func (a F64) AsinFastest() F64 {
	return F64(fixed64.AsinFastest(int64(a)))
}

func (a F64) Acos() F64 {
	return F64(fixed64.Acos(int64(a)))
}

func (a F64) AcosFast() F64 {
	return F64(fixed64.AcosFast(int64(a)))
}

func (a F64) AcosFastest() F64 {
	return F64(fixed64.AcosFastest(int64(a)))
}

func (a F64) Atan() F64 {
	return F64(fixed64.Atan(int64(a)))
}

func (a F64) AtanFast() F64 {
	return F64(fixed64.AtanFast(int64(a)))
}

func (a F64) AtanFastest() F64 {
	return F64(fixed64.AtanFastest(int64(a)))
}

func cmp[T int32 | int64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
