package fixed32

import "github.com/agbru/fixpoint/fixed64"

// The unit sine kernels work on s2.30 angles and are shared with fixed64.

func unitAngle(x int32) int32 {
	return Mul(rcpHalfPi, x)
}

// Sin returns the sine of x radians. The angle reduction wraps, so any
// input is accepted.
func Sin(x int32) int32 {
	return fixed64.UnitSin(unitAngle(x)) >> 14
}

// SinFast is Sin at the fast tier.
func SinFast(x int32) int32 {
	return fixed64.UnitSinFast(unitAngle(x)) >> 14
}

// SinFastest is Sin at the fastest tier.
func SinFastest(x int32) int32 {
	return fixed64.UnitSinFastest(unitAngle(x)) >> 14
}

// Cos returns the cosine of x, as Sin(x + PiHalf).
func Cos(x int32) int32 {
	return Sin(x + PiHalf)
}

// CosFast is Cos at the fast tier.
func CosFast(x int32) int32 {
	return SinFast(x + PiHalf)
}

// CosFastest is Cos at the fastest tier.
func CosFastest(x int32) int32 {
	return SinFastest(x + PiHalf)
}

// Tan divides two unit sines a quarter period apart. At a pole the divisor
// is 0 and so is the result.
func Tan(x int32) int32 {
	z := unitAngle(x)
	return Div(fixed64.UnitSin(z), fixed64.UnitSin(z+one30))
}

// TanFast is Tan at the fast tier.
func TanFast(x int32) int32 {
	z := unitAngle(x)
	return DivFast(fixed64.UnitSinFast(z), fixed64.UnitSinFast(z+one30))
}

// TanFastest is Tan at the fastest tier.
func TanFastest(x int32) int32 {
	z := unitAngle(x)
	return DivFastest(fixed64.UnitSinFastest(z), fixed64.UnitSinFastest(z+one30))
}
