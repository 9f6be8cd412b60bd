package fixed64

import "github.com/agbru/fixpoint/internal/fixutil"

// atan2Div returns y/x as s2.30 for the principal octant
// (0 <= y <= x, x > 0), using the reciprocal polynomial rcp. The folded
// magnitudes of -1 reach here as x == y == 0, which yields 0.
func atan2Div(y, x int64, rcp func(int32) int32) int32 {
	if x == 0 {
		return 0
	}
	fixutil.Assert(y >= 0 && x > 0 && x >= y, "atan2Div: 0 <= y <= x, x > 0")

	n, offset := normalize(x)
	oox := rcp(n - one30)
	// RcpPoly4 may undershoot HALF by one ulp at the top of the range.
	fixutil.Assert(oox >= one30>>1-1 && oox <= one30, "atan2Div: oox in [HALF, ONE]")

	yr := fixutil.ShiftRight64(y, offset)
	return fixutil.Qmul30(int32(yr>>2), oox)
}

// Atan2Div is the octant-restricted ratio used by Atan2. It requires
// 0 <= y <= x and x > 0; violations are only caught under fixdebug.
func Atan2Div(y, x int64) int32 {
	return atan2Div(y, x, fixutil.RcpPoly4Lut8)
}

// Atan2DivFast is Atan2Div on the fast reciprocal.
func Atan2DivFast(y, x int64) int32 {
	return atan2Div(y, x, fixutil.RcpPoly6)
}

// Atan2DivFastest is Atan2Div on the fastest reciprocal.
func Atan2DivFastest(y, x int64) int32 {
	return atan2Div(y, x, fixutil.RcpPoly4)
}

func atan2(y, x int64, ratio func(y, x int64) int32, poly func(int32) int32) int64 {
	if x == 0 {
		switch {
		case y > 0:
			return PiHalf
		case y < 0:
			return -PiHalf
		}
		return 0
	}

	// One's complement magnitudes; negative inputs come out one ulp small.
	nx := x ^ (x >> 63)
	ny := y ^ (y >> 63)
	negMask := (x ^ y) >> 63

	if nx >= ny {
		z := poly(ratio(ny, nx))
		angle := negMask ^ (int64(z) << 2)
		if x > 0 {
			return angle
		}
		if y >= 0 {
			return angle + Pi
		}
		return angle - Pi
	}

	z := poly(ratio(nx, ny))
	angle := negMask ^ (int64(z) << 2)
	if y > 0 {
		return PiHalf - angle
	}
	return -PiHalf - angle
}

// Atan2 returns the angle of the point (x, y) in (-Pi, Pi]. Atan2(0, 0)
// returns 0.
func Atan2(y, x int64) int64 {
	return atan2(y, x, Atan2Div, fixutil.AtanPoly5Lut8)
}

// Atan2Fast is Atan2 at the fast tier.
func Atan2Fast(y, x int64) int64 {
	return atan2(y, x, Atan2DivFast, fixutil.AtanPoly3Lut8)
}

// Atan2Fastest is Atan2 at the fastest tier.
func Atan2Fastest(y, x int64) int64 {
	return atan2(y, x, Atan2DivFastest, fixutil.AtanPoly4)
}

// Atan returns the arctangent of x, as Atan2(x, One).
func Atan(x int64) int64 {
	return Atan2(x, One)
}

// AtanFast is Atan at the fast tier.
func AtanFast(x int64) int64 {
	return Atan2Fast(x, One)
}

// AtanFastest is Atan at the fastest tier.
func AtanFastest(x int64) int64 {
	return Atan2Fastest(x, One)
}

// asinSide returns sqrt(1 - x*x) for x in [-1, 1].
func asinSide(x int64, root func(int64) int64) int64 {
	return root(Mul(One+x, One-x))
}

// Asin returns the arcsine of x. Input outside [-One, One] returns 0.
func Asin(x int64) int64 {
	if x < -One || x > One {
		return 0
	}
	return Atan2(x, asinSide(x, Sqrt))
}

// AsinFast is Asin at the fast tier.
func AsinFast(x int64) int64 {
	if x < -One || x > One {
		return 0
	}
	return Atan2Fast(x, asinSide(x, SqrtFast))
}

// AsinFastest is Asin at the fastest tier.
func AsinFastest(x int64) int64 {
	if x < -One || x > One {
		return 0
	}
	return Atan2Fastest(x, asinSide(x, SqrtFastest))
}

// Acos returns the arccosine of x. Input outside [-One, One] returns 0.
func Acos(x int64) int64 {
	if x < -One || x > One {
		return 0
	}
	return Atan2(asinSide(x, Sqrt), x)
}

// AcosFast is Acos at the fast tier.
func AcosFast(x int64) int64 {
	if x < -One || x > One {
		return 0
	}
	return Atan2Fast(asinSide(x, SqrtFast), x)
}

// AcosFastest is Acos at the fastest tier.
func AcosFastest(x int64) int64 {
	if x < -One || x > One {
		return 0
	}
	return Atan2Fastest(asinSide(x, SqrtFastest), x)
}
