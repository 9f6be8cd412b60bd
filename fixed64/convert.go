package fixed64

// FromInt converts an integer to s32.32.
func FromInt(v int32) int64 {
	return int64(v) << Shift
}

// FromDouble converts a float64 to s32.32, truncating toward zero.
// Values outside the representable range give implementation-defined bits.
func FromDouble(v float64) int64 {
	return int64(v * 4294967296.0)
}

// FromFloat converts a float32 to s32.32. The scaling happens in float32.
func FromFloat(v float32) int64 {
	return int64(v * 4294967296.0)
}

// ToInt returns the integer part of v, rounded toward negative infinity.
func ToInt(v int64) int32 {
	return FloorToInt(v)
}

// CeilToInt rounds v up to the nearest integer.
func CeilToInt(v int64) int32 {
	return int32((v + (One - 1)) >> Shift)
}

// FloorToInt rounds v down to the nearest integer.
func FloorToInt(v int64) int32 {
	return int32(v >> Shift)
}

// RoundToInt rounds v to the nearest integer, halves toward positive infinity.
func RoundToInt(v int64) int32 {
	return int32((v + Half) >> Shift)
}

// ToDouble converts v to a float64.
func ToDouble(v int64) float64 {
	return float64(v) * (1.0 / 4294967296.0)
}

// ToFloat converts v to a float32.
func ToFloat(v int64) float32 {
	return float32(v) * (1.0 / 4294967296.0)
}
