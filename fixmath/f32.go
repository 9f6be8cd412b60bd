package fixmath

import (
	"strconv"

	"github.com/agbru/fixpoint/fixed32"
)

// F32 is an s16.16 fixed-point value.
type F32 int32

const (
	F32Zero   = F32(fixed32.Zero)
	F32One    = F32(fixed32.One)
	F32Neg1   = F32(fixed32.Neg1)
	F32Half   = F32(fixed32.Half)
	F32Two    = F32(fixed32.Two)
	F32Pi     = F32(fixed32.Pi)
	F32Pi2    = F32(fixed32.Pi2)
	F32PiHalf = F32(fixed32.PiHalf)
	F32E      = F32(fixed32.E)
	F32Min    = F32(fixed32.MinValue)
	F32Max    = F32(fixed32.MaxValue)
)

func F32FromRaw(raw int32) F32 {
	return F32(raw)
}

func F32FromInt(v int32) F32 {
	return F32(fixed32.FromInt(v))
}

func F32FromFloat(v float32) F32 {
	return F32(fixed32.FromFloat(v))
}

func F32FromDouble(v float64) F32 {
	return F32(fixed32.FromDouble(v))
}

func (a F32) Raw() int32 {
	return int32(a)
}

func (a F32) Float() float32 {
	return fixed32.ToFloat(int32(a))
}

func (a F32) Double() float64 {
	return fixed32.ToDouble(int32(a))
}

func (a F32) Int() int32 {
	return fixed32.ToInt(int32(a))
}

// ToF64 widens to s32.32 exactly.
func (a F32) ToF64() F64 {
	return F64(int64(a) << 16)
}

func (a F32) String() string {
	return strconv.FormatFloat(a.Double(), 'g', -1, 64)
}

func (a F32) Cmp(b F32) int {
	return cmp(int32(a), int32(b))
}

func (a F32) Less(b F32) bool {
	return a < b
}

func (a F32) Add(b F32) F32 {
	return a + b
}

func (a F32) Sub(b F32) F32 {
	return a - b
}

func (a F32) Neg() F32 {
	return -a
}

func (a F32) Mul(b F32) F32 {
	return F32(fixed32.Mul(int32(a), int32(b)))
}

func (a F32) Mod(b F32) F32 {
	return F32(fixed32.Mod(int32(a), int32(b)))
}

func (a F32) Min(b F32) F32 {
	return F32(fixed32.Min(int32(a), int32(b)))
}

func (a F32) Max(b F32) F32 {
	return F32(fixed32.Max(int32(a), int32(b)))
}

func (a F32) Clamp(lo, hi F32) F32 {
	return F32(fixed32.Clamp(int32(a), int32(lo), int32(hi)))
}

func (a F32) Abs() F32 {
	return F32(fixed32.Abs(int32(a)))
}

func (a F32) Nabs() F32 {
	return F32(fixed32.Nabs(int32(a)))
}

func (a F32) Sign() int32 {
	return fixed32.Sign(int32(a))
}

func (a F32) Ceil() F32 {
	return F32(fixed32.Ceil(int32(a)))
}

func (a F32) Floor() F32 {
	return F32(fixed32.Floor(int32(a)))
}

func (a F32) Round() F32 {
	return F32(fixed32.Round(int32(a)))
}

func (a F32) Fract() F32 {
	return F32(fixed32.Fract(int32(a)))
}

func (a F32) Lerp(b, t F32) F32 {
	return F32(fixed32.Lerp(int32(a), int32(b), int32(t)))
}

func (a F32) AddInt(n int32) F32 {
	return a + F32FromInt(n)
}

func (a F32) MulInt(n int32) F32 {
	return a * F32(n)
}

func (a F32) DivInt(n int32) F32 {
	return a.Div(F32FromInt(n))
}

func (a F32) Atan2(x F32) F32 {
	return F32(fixed32.Atan2(int32(a), int32(x)))
}

func (a F32) Atan2Fast(x F32) F32 {
	return F32(fixed32.Atan2Fast(int32(a), int32(x)))
}

func (a F32) Atan2Fastest(x F32) F32 {
	return F32(fixed32.Atan2Fastest(int32(a), int32(x)))
}

// Div divides exactly; see fixed32.DivPrecise.
func (a F32) Div(b F32) F32 {
	return F32(fixed32.DivPrecise(int32(a), int32(b)))
}

func (a F32) DivFast(b F32) F32 {
	return F32(fixed32.DivFast(int32(a), int32(b)))
}

func (a F32) DivFastest(b F32) F32 {
	return F32(fixed32.DivFastest(int32(a), int32(b)))
}

func (a F32) Pow(e F32) F32 {
	return F32(fixed32.Pow(int32(a), int32(e)))
}

func (a F32) PowFast(e F32) F32 {
	return F32(fixed32.PowFast(int32(a), int32(e)))
}

func (a F32) PowFastest(e F32) F32 {
	return F32(fixed32.PowFastest(int32(a), int32(e)))
}

func (a F32) SqrtPrecise() F32 {
	return F32(fixed32.SqrtPrecise(int32(a)))
}

func (a F32) Sqrt() F32 {
	return F32(fixed32.Sqrt(int32(a)))
}

func (a F32) SqrtFast() F32 {
	return F32(fixed32.SqrtFast(int32(a)))
}

func (a F32) SqrtFastest() F32 {
	return F32(fixed32.SqrtFastest(int32(a)))
}

func (a F32) RSqrt() F32 {
	return F32(fixed32.RSqrt(int32(a)))
}

func (a F32) RSqrtFast() F32 {
	return F32(fixed32.RSqrtFast(int32(a)))
}

func (a F32) RSqrtFastest() F32 {
	return F32(fixed32.RSqrtFastest(int32(a)))
}

func (a F32) Rcp() F32 {
	return F32(fixed32.Rcp(int32(a)))
}

func (a F32) RcpFast() F32 {
	return F32(fixed32.RcpFast(int32(a)))
}

func (a F32) RcpFastest() F32 {
	return F32(fixed32.RcpFastest(int32(a)))
}

func (a F32) Exp() F32 {
	return F32(fixed32.Exp(int32(a)))
}

func (a F32) ExpFast() F32 {
	return F32(fixed32.ExpFast(int32(a)))
}

func (a F32) ExpFastest() F32 {
	return F32(fixed32.ExpFastest(int32(a)))
}

func (a F32) Exp2() F32 {
	return F32(fixed32.Exp2(int32(a)))
}

func (a F32) Exp2Fast() F32 {
	return F32(fixed32.Exp2Fast(int32(a)))
}

func (a F32) Exp2Fastest() F32 {
	return F32(fixed32.Exp2Fastest(int32(a)))
}

func (a F32) Log() F32 {
	return F32(fixed32.Log(int32(a)))
}

func (a F32) LogFast() F32 {
	return F32(fixed32.LogFast(int32(a)))
}

func (a F32) LogFastest() F32 {
	return F32(fixed32.LogFastest(int32(a)))
}

func (a F32) Log2() F32 {
	return F32(fixed32.Log2(int32(a)))
}

func (a F32) Log2Fast() F32 {
	return F32(fixed32.Log2Fast(int32(a)))
}

func (a F32) Log2Fastest() F32 {
	return F32(fixed32.Log2Fastest(int32(a)))
}

func (a F32) Sin() F32 {
	return F32(fixed32.Sin(int32(a)))
}

func (a F32) SinFast() F32 {
	return F32(fixed32.SinFast(int32(a)))
}

func (a F32) SinFastest() F32 {
	return F32(fixed32.SinFastest(int32(a)))
}

func (a F32) Cos() F32 {
	return F32(fixed32.Cos(int32(a)))
}

func (a F32) CosFast() F32 {
	return F32(fixed32.CosFast(int32(a)))
}

func (a F32) CosFastest() F32 {
	return F32(fixed32.CosFastest(int32(a)))
}

func (a F32) Tan() F32 {
	return F32(fixed32.Tan(int32(a)))
}

func (a F32) TanFast() F32 {
	return F32(fixed32.TanFast(int32(a)))
}

func (a F32) TanFastest() F32 {
	return F32(fixed32.TanFastest(int32(a)))
}

func (a F32) Asin() F32 {
	return F32(fixed32.Asin(int32(a)))
}

func (a F32) AsinFast() F32 {
	return F32(fixed32.AsinFast(int32(a)))
}

func (a F32) AsinFastest() F32 {
	return F32(fixed32.AsinFastest(int32(a)))
}

func (a F32) Acos() F32 {
	return F32(fixed32.Acos(int32(a)))
}

func (a F32) AcosFast() F32 {
	return F32(fixed32.AcosFast(int32(a)))
}

func (a F32) AcosFastest() F32 {
	return F32(fixed32.AcosFastest(int32(a)))
}

func (a F32) Atan() F32 {
	return F32(fixed32.Atan(int32(a)))
}

func (a F32) AtanFast() F32 {
	return F32(fixed32.AtanFast(int32(a)))
}

func (a F32) AtanFastest() F32 {
	return F32(fixed32.AtanFastest(int32(a)))
}

