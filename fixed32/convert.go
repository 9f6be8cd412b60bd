package fixed32

// FromInt converts an integer to s16.16. Out-of-range values wrap.
func FromInt(v int32) int32 {
	return v << Shift
}

// FromDouble converts a float64 to s16.16, truncating toward zero.
func FromDouble(v float64) int32 {
	return int32(v * 65536.0)
}

// FromFloat converts a float32 to s16.16. The scaling happens in float32.
func FromFloat(v float32) int32 {
	return int32(v * 65536.0)
}

// ToInt is FloorToInt.
func ToInt(v int32) int32 {
	return FloorToInt(v)
}

// CeilToInt returns the smallest integer >= v.
func CeilToInt(v int32) int32 {
	return (v + (One - 1)) >> Shift
}

// FloorToInt returns the largest integer <= v.
func FloorToInt(v int32) int32 {
	return v >> Shift
}

// RoundToInt returns the nearest integer, halves up.
func RoundToInt(v int32) int32 {
	return (v + Half) >> Shift
}

// ToDouble converts v to float64 exactly.
func ToDouble(v int32) float64 {
	return float64(v) * (1.0 / 65536.0)
}

// ToFloat converts v to float32.
func ToFloat(v int32) float32 {
	return float32(v) * (1.0 / 65536.0)
}
