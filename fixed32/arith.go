package fixed32

// Abs returns |x|. Abs(MinValue) wraps to MinValue.
func Abs(x int32) int32 {
	mask := x >> 31
	return (x + mask) ^ mask
}

// Nabs returns -|x|. It never overflows.
func Nabs(x int32) int32 {
	return -Abs(x)
}

// Ceil rounds x up to the next integer.
func Ceil(x int32) int32 {
	return (x + FractionMask) & IntegerMask
}

// Floor rounds x down to the previous integer.
func Floor(x int32) int32 {
	return x & IntegerMask
}

// Round rounds x to the nearest integer, halves up.
func Round(x int32) int32 {
	return (x + Half) & IntegerMask
}

// Fract returns x - Floor(x).
func Fract(x int32) int32 {
	return x & FractionMask
}

// Min returns the smaller of a and b.
func Min(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

// Clamp limits a to [lo, hi]. The upper bound wins if lo > hi.
func Clamp(a, lo, hi int32) int32 {
	if a > hi {
		return hi
	}
	if a < lo {
		return lo
	}
	return a
}

// Sign returns -1, 0 or 1.
func Sign(x int32) int32 {
	return (x >> 31) | int32(uint32(-x)>>31)
}

// Add returns a + b. Overflow wraps.
func Add(a, b int32) int32 {
	return a + b
}

// Sub returns a - b. Overflow wraps.
func Sub(a, b int32) int32 {
	return a - b
}

// Mul multiplies through a 64-bit product, truncating toward negative
// infinity.
func Mul(a, b int32) int32 {
	return int32((int64(a) * int64(b)) >> Shift)
}

// Lerp returns Mul(a, t) + Mul(b, One-t).
func Lerp(a, b, t int32) int32 {
	return Mul(a, t) + Mul(b, One-t)
}

// Mod returns the truncated remainder of a/b. Mod(a, 0) returns 0.
func Mod(a, b int32) int32 {
	if b == 0 {
		return 0
	}
	return a - (a/b)*b
}
