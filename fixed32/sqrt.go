package fixed32

import "github.com/agbru/fixpoint/internal/fixutil"

// SqrtPrecise returns the square root of a rounded down to the last bit:
// floor(sqrt(a * 2^16)) over the raw bits, by the digit-by-digit
// recurrence in a 64-bit register. Non-positive input returns 0.
func SqrtPrecise(a int32) int32 {
	if a <= 0 {
		return 0
	}

	r := uint64(a) << Shift
	b := uint64(1) << 46
	for b > r {
		b >>= 2
	}
	q := uint64(0)
	for b != 0 {
		if r >= q+b {
			r -= q + b
			q = q>>1 + b
		} else {
			q >>= 1
		}
		b >>= 2
	}
	return int32(q)
}

func sqrt(x int32, poly func(int32) int32) int32 {
	if x <= 0 {
		return 0
	}
	offset := 15 - fixutil.Nlz32(uint32(x))
	n := fixutil.ShiftRight32(x, offset-14)
	fixutil.Assert(n >= one30, "sqrt: n >= ONE")
	y := poly(n - one30)

	adjust := one30
	if offset&1 != 0 {
		adjust = sqrt2
	}
	offset >>= 1

	yr := fixutil.Qmul30(adjust, y)
	return fixutil.ShiftRight32(yr, 14-offset)
}

func rsqrt(x int32, poly func(int32) int32) int32 {
	if x <= 0 {
		return 0
	}
	offset := 1 - fixutil.Nlz32(uint32(x))
	n := fixutil.ShiftRight32(x, offset)
	fixutil.Assert(n >= one30, "rsqrt: n >= ONE")
	y := poly(n - one30)

	adjust := one30
	if offset&1 != 0 {
		adjust = halfSqrt2
	}
	offset >>= 1

	yr := fixutil.Qmul30(adjust, y)
	return fixutil.ShiftRight32(yr, offset+21)
}

// Sqrt approximates the square root of x. Non-positive input returns 0.
func Sqrt(x int32) int32 {
	return sqrt(x, fixutil.SqrtPoly3Lut8)
}

// SqrtFast is Sqrt at the fast tier.
func SqrtFast(x int32) int32 {
	return sqrt(x, fixutil.SqrtPoly4)
}

// SqrtFastest is Sqrt at the fastest tier.
func SqrtFastest(x int32) int32 {
	return sqrt(x, fixutil.SqrtPoly3)
}

// RSqrt approximates 1/sqrt(x). Non-positive input returns 0.
func RSqrt(x int32) int32 {
	return rsqrt(x, fixutil.RSqrtPoly3Lut16)
}

// RSqrtFast is RSqrt at the fast tier.
func RSqrtFast(x int32) int32 {
	return rsqrt(x, fixutil.RSqrtPoly5)
}

// RSqrtFastest is RSqrt at the fastest tier.
func RSqrtFastest(x int32) int32 {
	return rsqrt(x, fixutil.RSqrtPoly3)
}
