// Package oracle provides exact integer references for the kernel operations
// whose result is defined bit for bit: multiplication, the precise division
// and the precise square root. The arithmetic runs on arbitrary precision
// integers, math/big by default or GMP when built with the gmp tag.
//
// The oracle belongs to the tooling and the tests. Kernel code never calls it.
package oracle

import (
	"math"

	"github.com/agbru/fixpoint/fixed32"
	"github.com/agbru/fixpoint/fixed64"
)

// Mul64 returns floor(a*b / 2^32) wrapped to 64 bits.
func Mul64(a, b int64) int64 {
	return int64(mulShift(a, b, fixed64.Shift))
}

// Mul32 returns floor(a*b / 2^16) wrapped to 32 bits.
func Mul32(a, b int32) int32 {
	return int32(mulShift(int64(a), int64(b), fixed32.Shift))
}

// Div64 returns a*2^32 / b truncated toward zero. Quotients of 2^64 or more,
// including b == 0, saturate to MaxValue; quotients in [2^63, 2^64) wrap.
func Div64(a, b int64) int64 {
	q, overflow := quoShift(magnitude(a), magnitude(b), fixed64.Shift)
	if overflow {
		return fixed64.MaxValue
	}
	if (a ^ b) < 0 {
		return -int64(q)
	}
	return int64(q)
}

// Div32 returns a*2^16 / b truncated toward zero and wrapped to 32 bits.
// Division by 0 or MinValue returns 0.
func Div32(a, b int32) int32 {
	if b == 0 || b == fixed32.MinValue {
		return 0
	}
	q, _ := quoShift(magnitude(int64(a)), magnitude(int64(b)), fixed32.Shift)
	if (a ^ b) < 0 {
		return int32(-int64(q))
	}
	return int32(q)
}

// Sqrt64 returns floor(sqrt(a * 2^32)), or 0 for negative a.
func Sqrt64(a int64) int64 {
	if a < 0 {
		return 0
	}
	return int64(isqrtShift(uint64(a), fixed64.Shift))
}

// Sqrt32 returns floor(sqrt(a * 2^16)), or 0 for negative a.
func Sqrt32(a int32) int32 {
	if a < 0 {
		return 0
	}
	return int32(isqrtShift(uint64(a), fixed32.Shift))
}

// Sqrt64ExactLimit is the largest raw input for which fixed64.SqrtPrecise
// agrees with Sqrt64.
const Sqrt64ExactLimit int64 = 1<<62 - 1

func magnitude(v int64) uint64 {
	if v == math.MinInt64 {
		return 1 << 63
	}
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}
