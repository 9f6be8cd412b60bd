package fixed64

import "github.com/agbru/fixpoint/internal/fixutil"

// SqrtPrecise returns the square root of a rounded down to the last bit,
// using the digit-by-digit recurrence. Floor-correctness is checked for raw
// bits below 1<<62 only. Negative input returns 0.
func SqrtPrecise(a int64) int64 {
	if a < 0 {
		return 0
	}

	r := uint64(a)
	b := uint64(0x4000000000000000)
	q := uint64(0)
	for b > 0x40 {
		t := q + b
		if r >= t {
			r -= t
			q = t + b
		}
		r <<= 1
		b >>= 1
	}
	return int64(q >> 16)
}

func sqrt(x int64, poly func(int32) int32) int64 {
	if x <= 0 {
		return 0
	}
	n, offset := normalize(x)
	y := poly(n - one30)

	// Halve the exponent; an odd exponent leaves a factor of sqrt(2).
	adjust := one30
	if offset&1 != 0 {
		adjust = sqrt2
	}
	offset >>= 1

	yr := int64(fixutil.Qmul30(adjust, y)) << 2
	return fixutil.ShiftLeft64(yr, offset)
}

func rsqrt(x int64, poly func(int32) int32) int64 {
	if x <= 0 {
		return 0
	}
	n, offset := normalize(x)
	y := poly(n - one30)

	adjust := one30
	if offset&1 != 0 {
		adjust = halfSqrt2
	}
	offset >>= 1

	yr := int64(fixutil.Qmul30(adjust, y)) << 2
	return fixutil.ShiftRight64(yr, offset)
}

// Sqrt approximates the square root of x (about 23 bits). Non-positive
// input returns 0.
func Sqrt(x int64) int64 {
	return sqrt(x, fixutil.SqrtPoly3Lut8)
}

// SqrtFast approximates the square root of x (about 16 bits).
func SqrtFast(x int64) int64 {
	return sqrt(x, fixutil.SqrtPoly4)
}

// SqrtFastest approximates the square root of x (about 13 bits).
func SqrtFastest(x int64) int64 {
	return sqrt(x, fixutil.SqrtPoly3)
}

// RSqrt approximates 1/sqrt(x) (about 24 bits). Non-positive input returns 0.
func RSqrt(x int64) int64 {
	return rsqrt(x, fixutil.RSqrtPoly3Lut16)
}

// RSqrtFast approximates 1/sqrt(x) (about 16 bits).
func RSqrtFast(x int64) int64 {
	return rsqrt(x, fixutil.RSqrtPoly5)
}

// RSqrtFastest approximates 1/sqrt(x) (about 10 bits).
func RSqrtFastest(x int64) int64 {
	return rsqrt(x, fixutil.RSqrtPoly3)
}
