package fixutil

import "math/bits"

// One is 1.0 in the s2.30 format used by the evaluators.
const One int32 = 1 << 30

// ShiftRight32 shifts v arithmetically right by s. A negative s shifts left by -s.
func ShiftRight32(v int32, s int32) int32 {
	if s >= 0 {
		return v >> uint(s)
	}
	return v << uint(-s)
}

// ShiftRight64 shifts v arithmetically right by s. A negative s shifts left by -s.
func ShiftRight64(v int64, s int32) int64 {
	if s >= 0 {
		return v >> uint(s)
	}
	return v << uint(-s)
}

// ShiftLeft32 shifts v left by s. A negative s shifts arithmetically right by -s.
func ShiftLeft32(v int32, s int32) int32 {
	if s >= 0 {
		return v << uint(s)
	}
	return v >> uint(-s)
}

// ShiftLeft64 shifts v left by s. A negative s shifts arithmetically right by -s.
func ShiftLeft64(v int64, s int32) int64 {
	if s >= 0 {
		return v << uint(s)
	}
	return v >> uint(-s)
}

// LogicalShiftRight32 shifts v right by s, filling with zero bits.
func LogicalShiftRight32(v int32, s int32) int32 {
	return int32(uint32(v) >> uint(s))
}

// LogicalShiftRight64 shifts v right by s, filling with zero bits.
func LogicalShiftRight64(v int64, s int32) int64 {
	return int64(uint64(v) >> uint(s))
}

// Nlz32 returns the number of leading zero bits of x, 32 for zero.
func Nlz32(x uint32) int32 {
	return int32(bits.LeadingZeros32(x))
}

// Nlz64 returns the number of leading zero bits of x, 64 for zero.
func Nlz64(x uint64) int32 {
	return int32(bits.LeadingZeros64(x))
}

// Qmul30 multiplies two s2.30 values.
func Qmul30(a, b int32) int32 {
	return int32((int64(a) * int64(b)) >> 30)
}
