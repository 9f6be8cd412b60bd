package fixed64

import "github.com/agbru/fixpoint/internal/fixutil"

// Abs returns |x| without branching. Abs(MinValue) wraps to MinValue.
func Abs(x int64) int64 {
	mask := x >> 63
	return (x + mask) ^ mask
}

// Nabs returns -|x|, which is representable for every input.
func Nabs(x int64) int64 {
	return -Abs(x)
}

// Ceil rounds x up to an integral value.
func Ceil(x int64) int64 {
	return (x + FractionMask) & IntegerMask
}

// Floor rounds x down to an integral value.
func Floor(x int64) int64 {
	return x & IntegerMask
}

// Round rounds x to the nearest integral value.
func Round(x int64) int64 {
	return (x + Half) & IntegerMask
}

// Fract returns x - Floor(x).
func Fract(x int64) int64 {
	return x & FractionMask
}

// Min returns the smaller of a and b.
func Min(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

// Clamp limits a to [lo, hi]. The upper bound wins if lo > hi.
func Clamp(a, lo, hi int64) int64 {
	if a > hi {
		return hi
	}
	if a < lo {
		return lo
	}
	return a
}

// Sign returns -1, 0 or 1 without branching.
func Sign(x int64) int32 {
	return int32((x >> 63) | int64(uint64(-x)>>63))
}

// Add returns a+b with two's complement wraparound.
func Add(a, b int64) int64 {
	return a + b
}

// Sub returns a-b with two's complement wraparound.
func Sub(a, b int64) int64 {
	return a - b
}

// Mul multiplies two s32.32 values. The low fraction product is shifted
// logically so its top bit is not taken as a sign.
func Mul(a, b int64) int64 {
	ai := a >> Shift
	af := a & FractionMask
	bi := b >> Shift
	bf := b & FractionMask
	return fixutil.LogicalShiftRight64(af*bf, Shift) + ai*b + af*bi
}

// MulIntLongLow multiplies a non-negative s2.30 (or plain integer) a by
// the s32.32 value b and keeps the low 32 bits of the s2.30-scaled result.
// The truncation is what wraps trigonometric angles into a single period.
func MulIntLongLow(a int32, b int64) int32 {
	fixutil.Assert(a >= 0, "MulIntLongLow: a >= 0")
	bi := int32(b >> Shift)
	bf := b & FractionMask
	return int32(fixutil.LogicalShiftRight64(int64(a)*bf, Shift)) + a*bi
}

// MulIntLongLong is MulIntLongLow without the final truncation.
func MulIntLongLong(a int32, b int64) int64 {
	fixutil.Assert(a >= 0, "MulIntLongLong: a >= 0")
	bi := b >> Shift
	bf := b & FractionMask
	return fixutil.LogicalShiftRight64(int64(a)*bf, Shift) + int64(a)*bi
}

// Lerp returns Mul(a, t) + Mul(b, One-t): t == One yields a, t == 0 yields b.
func Lerp(a, b, t int64) int64 {
	return Mul(a, t) + Mul(b, One-t)
}

// Mod returns the truncated remainder a - (a/b)*b, carrying the sign of a.
// Mod(a, 0) returns 0.
func Mod(a, b int64) int64 {
	if b == 0 {
		return 0
	}
	return a - (a/b)*b
}
