package fixed32

import "github.com/agbru/fixpoint/internal/fixutil"

func exp2(x int32, poly func(int32) int32) int32 {
	if x >= 15*One {
		return MaxValue
	}
	if x <= -16*One {
		return 0
	}
	k := (x & FractionMask) << 14
	y := poly(k)
	return fixutil.ShiftRight32(y, 14-(x>>Shift))
}

// Exp2 returns 2^x. It saturates to MaxValue for x >= 15 and returns 0 for
// x <= -16.
func Exp2(x int32) int32 {
	return exp2(x, fixutil.Exp2Poly5)
}

// Exp2Fast is Exp2 at the fast tier.
func Exp2Fast(x int32) int32 {
	return exp2(x, fixutil.Exp2Poly4)
}

// Exp2Fastest is Exp2 at the fastest tier.
func Exp2Fastest(x int32) int32 {
	return exp2(x, fixutil.Exp2Poly3)
}

// Exp returns e^x as Exp2(x / ln 2).
func Exp(x int32) int32 {
	return Exp2(Mul(x, rcpLn2))
}

// ExpFast is Exp at the fast tier.
func ExpFast(x int32) int32 {
	return Exp2Fast(Mul(x, rcpLn2))
}

// ExpFastest is Exp at the fastest tier.
func ExpFastest(x int32) int32 {
	return Exp2Fastest(Mul(x, rcpLn2))
}

// mantissa splits a positive x into an s2.30 value in [1, 2) and its
// binary exponent.
func mantissa(x int32) (n, offset int32) {
	offset = 15 - fixutil.Nlz32(uint32(x))
	n = fixutil.ShiftRight32(x, offset-14)
	fixutil.Assert(n >= one30, "mantissa: n >= ONE")
	return n, offset
}

func log(x int32, poly func(int32) int32) int32 {
	if x <= 0 {
		return 0
	}
	n, offset := mantissa(x)
	y := poly(n - one30)
	return offset*rcpLog2E + (y >> 14)
}

func log2(x int32, poly func(int32) int32) int32 {
	if x <= 0 {
		return 0
	}
	n, offset := mantissa(x)
	y := poly(n - one30)
	return offset<<Shift + (y >> 14)
}

// Log returns ln(x). Non-positive input returns 0.
func Log(x int32) int32 {
	return log(x, fixutil.LogPoly5Lut8)
}

// LogFast is Log at the fast tier.
func LogFast(x int32) int32 {
	return log(x, fixutil.LogPoly3Lut8)
}

// LogFastest is Log at the fastest tier.
func LogFastest(x int32) int32 {
	return log(x, fixutil.LogPoly5)
}

// Log2 returns log2(x). Non-positive input returns 0.
func Log2(x int32) int32 {
	return log2(x, fixutil.Log2Poly4Lut16)
}

// Log2Fast is Log2 at the fast tier.
func Log2Fast(x int32) int32 {
	return log2(x, fixutil.Log2Poly3Lut16)
}

// Log2Fastest is Log2 at the fastest tier.
func Log2Fastest(x int32) int32 {
	return log2(x, fixutil.Log2Poly5)
}

// Pow returns x^exponent for positive x, and 0 otherwise.
func Pow(x, exponent int32) int32 {
	if x <= 0 {
		return 0
	}
	return Exp(Mul(exponent, Log(x)))
}

// PowFast is Pow at the fast tier.
func PowFast(x, exponent int32) int32 {
	if x <= 0 {
		return 0
	}
	return ExpFast(Mul(exponent, LogFast(x)))
}

// PowFastest is Pow at the fastest tier.
func PowFastest(x, exponent int32) int32 {
	if x <= 0 {
		return 0
	}
	return ExpFastest(Mul(exponent, LogFastest(x)))
}
