package fixed32

import (
	"github.com/agbru/fixpoint/fixed64"
	"github.com/agbru/fixpoint/internal/fixutil"
)

func atan2Div(y, x int32, rcp func(int32) int32) int32 {
	fixutil.Assert(y >= 0 && x > 0 && x >= y, "atan2Div: 0 <= y <= x, x > 0")

	offset := 1 - fixutil.Nlz32(uint32(x))
	n := fixutil.ShiftRight32(x, offset)
	fixutil.Assert(n >= one30, "atan2Div: n >= ONE")
	oox := rcp(n - one30)

	yr := fixutil.ShiftRight32(y, offset)
	return fixutil.Qmul30(yr, oox)
}

// Atan2Div returns y/x as s2.30 for 0 <= y <= x, x > 0.
func Atan2Div(y, x int32) int32 {
	return atan2Div(y, x, fixutil.RcpPoly4Lut8)
}

// Atan2DivFast is Atan2Div at the fast tier.
func Atan2DivFast(y, x int32) int32 {
	return atan2Div(y, x, fixutil.RcpPoly6)
}

// Atan2DivFastest is Atan2Div at the fastest tier.
func Atan2DivFastest(y, x int32) int32 {
	return atan2Div(y, x, fixutil.RcpPoly4)
}

// magnitude is Abs with MinValue pinned to MaxValue, keeping the
// octant reduction inside its table range.
func magnitude(x int32) int32 {
	if x == MinValue {
		return MaxValue
	}
	return Abs(x)
}

// atan2 reconstructs the full-circle angle from the first octant. With
// exactNeg the x-dominant branch negates in two's complement; otherwise it
// flips bits and lands one ulp low on negative results.
func atan2(y, x int32, ratio func(y, x int32) int32, poly func(int32) int32, exactNeg bool) int32 {
	if x == 0 {
		switch {
		case y > 0:
			return PiHalf
		case y < 0:
			return -PiHalf
		}
		return 0
	}

	nx := magnitude(x)
	ny := magnitude(y)
	negMask := (x ^ y) >> 31

	if nx >= ny {
		z := poly(ratio(ny, nx))
		angle := negMask ^ (z >> 14)
		if exactNeg {
			angle -= negMask
		}
		if x > 0 {
			return angle
		}
		if y >= 0 {
			return angle + Pi
		}
		return angle - Pi
	}

	z := poly(ratio(nx, ny))
	angle := negMask ^ (z >> 14)
	if y > 0 {
		return PiHalf - angle
	}
	return -PiHalf - angle
}

// Atan2 returns the angle of (x, y) in [-Pi, Pi]. Atan2(0, 0) returns 0.
func Atan2(y, x int32) int32 {
	return atan2(y, x, Atan2Div, fixutil.AtanPoly5Lut8, true)
}

// Atan2Fast is Atan2 at the fast tier.
func Atan2Fast(y, x int32) int32 {
	return atan2(y, x, Atan2DivFast, fixutil.AtanPoly3Lut8, false)
}

// Atan2Fastest is Atan2 at the fastest tier.
func Atan2Fastest(y, x int32) int32 {
	return atan2(y, x, Atan2DivFastest, fixutil.AtanPoly4, false)
}

// Atan returns the arctangent of x, as Atan2(x, One).
func Atan(x int32) int32 {
	return Atan2(x, One)
}

// AtanFast is Atan at the fast tier.
func AtanFast(x int32) int32 {
	return Atan2Fast(x, One)
}

// AtanFastest is Atan at the fastest tier.
func AtanFastest(x int32) int32 {
	return Atan2Fastest(x, One)
}

// side returns sqrt(1 - x*x) in s32.32. The 16.16 product (1+x)(1-x) is an
// exact s32.32 value.
func side(x int32, root func(int64) int64) int64 {
	return root(int64(One+x) * int64(One-x))
}

func asin(x int32, root func(int64) int64, atan2 func(y, x int64) int64) int32 {
	if x < -One || x > One {
		return 0
	}
	return int32(atan2(int64(x)<<16, side(x, root)) >> 16)
}

func acos(x int32, root func(int64) int64, atan2 func(y, x int64) int64) int32 {
	if x < -One || x > One {
		return 0
	}
	return int32(atan2(side(x, root), int64(x)<<16) >> 16)
}

// Asin returns the arcsine of x, evaluated in s32.32. Input outside
// [-One, One] returns 0.
func Asin(x int32) int32 {
	return asin(x, fixed64.Sqrt, fixed64.Atan2)
}

// AsinFast is Asin at the fast tier.
func AsinFast(x int32) int32 {
	return asin(x, fixed64.SqrtFast, fixed64.Atan2Fast)
}

// AsinFastest is Asin at the fastest tier.
func AsinFastest(x int32) int32 {
	return asin(x, fixed64.SqrtFastest, fixed64.Atan2Fastest)
}

// Acos returns the arccosine of x, evaluated in s32.32. Input outside
// [-One, One] returns 0.
func Acos(x int32) int32 {
	return acos(x, fixed64.Sqrt, fixed64.Atan2)
}

// AcosFast is Acos at the fast tier.
func AcosFast(x int32) int32 {
	return acos(x, fixed64.SqrtFast, fixed64.Atan2Fast)
}

// AcosFastest is Acos at the fastest tier.
func AcosFastest(x int32) int32 {
	return acos(x, fixed64.SqrtFastest, fixed64.Atan2Fastest)
}
