package fixed64

import (
	"math"

	"github.com/agbru/fixpoint/internal/fixutil"
)

// UnitSin evaluates sin(z*pi/2) for an s2.30 angle z where a full period
// spans [0, 4). Inputs in the second and third quarters (top two bits
// differ) are mirrored into [-1, 1] first; the subtraction wraps.
func UnitSin(z int32) int32 {
	return unitSin(z, fixutil.SinPoly4)
}

// UnitSinFast is UnitSin at the fast tier.
func UnitSinFast(z int32) int32 {
	return unitSin(z, fixutil.SinPoly3)
}

// UnitSinFastest is UnitSin at the fastest tier.
func UnitSinFastest(z int32) int32 {
	return unitSin(z, fixutil.SinPoly2)
}

func unitSin(z int32, poly func(int32) int32) int32 {
	if z^(z<<1) < 0 {
		z = math.MinInt32 - z
	}
	fixutil.Assert(z >= -one30 && z <= one30, "unitSin: z in [-ONE, ONE]")

	zz := fixutil.Qmul30(z, z)
	return fixutil.Qmul30(poly(zz), z)
}

// unitAngle maps x radians onto the s2.30 unit circle. Overflow past 32
// bits discards whole periods.
func unitAngle(x int64) int32 {
	return MulIntLongLow(rcpHalfPi, x)
}

// Sin returns the sine of x radians. Any x is accepted; the reduction
// into one period uses integer wraparound.
func Sin(x int64) int64 {
	return int64(UnitSin(unitAngle(x))) << 2
}

// SinFast is Sin at the fast tier.
func SinFast(x int64) int64 {
	return int64(UnitSinFast(unitAngle(x))) << 2
}

// SinFastest is Sin at the fastest tier.
func SinFastest(x int64) int64 {
	return int64(UnitSinFastest(unitAngle(x))) << 2
}

// Cos returns the cosine of x radians, as Sin(x + Pi/2).
func Cos(x int64) int64 {
	return Sin(x + PiHalf)
}

// CosFast is Cos at the fast tier.
func CosFast(x int64) int64 {
	return SinFast(x + PiHalf)
}

// CosFastest is Cos at the fastest tier.
func CosFastest(x int64) int64 {
	return SinFastest(x + PiHalf)
}

// Tan returns the tangent of x radians as the quotient of two unit sines
// a quarter period apart. Near the poles the result is whatever Div makes
// of a tiny divisor.
func Tan(x int64) int64 {
	z := unitAngle(x)
	sinX := int64(UnitSin(z)) << 32
	cosX := int64(UnitSin(z+one30)) << 32
	return Div(sinX, cosX)
}

// TanFast is Tan at the fast tier.
func TanFast(x int64) int64 {
	z := unitAngle(x)
	sinX := int64(UnitSinFast(z)) << 32
	cosX := int64(UnitSinFast(z+one30)) << 32
	return DivFast(sinX, cosX)
}

// TanFastest is Tan at the fastest tier.
func TanFastest(x int64) int64 {
	z := unitAngle(x)
	sinX := int64(UnitSinFastest(z)) << 32
	cosX := int64(UnitSinFastest(z+one30)) << 32
	return DivFastest(sinX, cosX)
}
