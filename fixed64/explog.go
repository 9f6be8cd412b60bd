package fixed64

import "github.com/agbru/fixpoint/internal/fixutil"

func exp2(x int64, poly func(int32) int32) int64 {
	if x >= 32*One {
		return MaxValue
	}
	if x <= -32*One {
		return 0
	}

	// 2^x = 2^int(x) * 2^fract(x); the fraction is evaluated as s2.30.
	k := int32((x & FractionMask) >> 2)
	y := int64(poly(k)) << 2
	intPart := int32(x >> Shift)
	return fixutil.ShiftLeft64(y, intPart)
}

// Exp2 returns 2^x. It saturates to MaxValue for x >= 32 and returns 0 for
// x <= -32.
func Exp2(x int64) int64 {
	return exp2(x, fixutil.Exp2Poly5)
}

// Exp2Fast is Exp2 at the fast tier.
func Exp2Fast(x int64) int64 {
	return exp2(x, fixutil.Exp2Poly4)
}

// Exp2Fastest is Exp2 at the fastest tier.
func Exp2Fastest(x int64) int64 {
	return exp2(x, fixutil.Exp2Poly3)
}

// Exp returns e^x, computed as Exp2(x / ln 2).
func Exp(x int64) int64 {
	return Exp2(Mul(x, rcpLn2))
}

// ExpFast is Exp at the fast tier.
func ExpFast(x int64) int64 {
	return Exp2Fast(Mul(x, rcpLn2))
}

// ExpFastest is Exp at the fastest tier.
func ExpFastest(x int64) int64 {
	return Exp2Fastest(Mul(x, rcpLn2))
}

func log(x int64, poly func(int32) int32) int64 {
	if x <= 0 {
		return 0
	}
	n, offset := normalize(x)
	y := int64(poly(n-one30)) << 2
	return int64(offset)*rcpLog2E + y
}

func log2(x int64, poly func(int32) int32) int64 {
	if x <= 0 {
		return 0
	}
	n, offset := normalize(x)
	y := int64(poly(n-one30)) << 2
	return int64(offset)<<Shift + y
}

// Log returns the natural logarithm of x. Non-positive input returns 0.
func Log(x int64) int64 {
	return log(x, fixutil.LogPoly5Lut8)
}

// LogFast is Log at the fast tier.
func LogFast(x int64) int64 {
	return log(x, fixutil.LogPoly3Lut8)
}

// LogFastest is Log at the fastest tier.
func LogFastest(x int64) int64 {
	return log(x, fixutil.LogPoly5)
}

// Log2 returns the base-2 logarithm of x. Non-positive input returns 0.
func Log2(x int64) int64 {
	return log2(x, fixutil.Log2Poly4Lut16)
}

// Log2Fast is Log2 at the fast tier.
func Log2Fast(x int64) int64 {
	return log2(x, fixutil.Log2Poly3Lut16)
}

// Log2Fastest is Log2 at the fastest tier.
func Log2Fastest(x int64) int64 {
	return log2(x, fixutil.Log2Poly5)
}

// Pow returns x^exponent as Exp(exponent * Log(x)). Non-positive x returns 0.
func Pow(x, exponent int64) int64 {
	if x <= 0 {
		return 0
	}
	return Exp(Mul(exponent, Log(x)))
}

// PowFast is Pow at the fast tier.
func PowFast(x, exponent int64) int64 {
	if x <= 0 {
		return 0
	}
	return ExpFast(Mul(exponent, LogFast(x)))
}

// PowFastest is Pow at the fastest tier.
func PowFastest(x, exponent int64) int64 {
	if x <= 0 {
		return 0
	}
	return ExpFastest(Mul(exponent, LogFastest(x)))
}
