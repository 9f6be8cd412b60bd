package fixed64

import (
	"math/bits"

	"github.com/agbru/fixpoint/internal/fixutil"
)

// DivPrecise returns a/b rounded toward zero, exact to the last bit.
//
// The quotient (|a|<<32)/|b| is computed with two base-2^32 digits of
// Knuth's Algorithm D (after Hacker's Delight divlu). A quotient of 2^64 or
// more, which includes b == 0, saturates to MaxValue regardless of sign.
// Quotients in [2^63, 2^64) wrap.
func DivPrecise(a, b int64) int64 {
	const base = 1 << 32

	signDif := a ^ b
	ua := uint64(a)
	if a < 0 {
		ua = uint64(-a)
	}
	u1 := ua >> 32
	u0 := ua << 32
	v := uint64(b)
	if b < 0 {
		v = uint64(-b)
	}

	if u1 >= v {
		return MaxValue
	}

	// Normalize so the divisor's top bit is set.
	s := uint(bits.LeadingZeros64(v))
	v <<= s
	vn1 := v >> 32
	vn0 := v & 0xffffffff

	// Go defines u0 >> 64 as 0, which covers s == 0.
	un32 := u1<<s | u0>>(64-s)
	un10 := u0 << s
	un1 := un10 >> 32
	un0 := un10 & 0xffffffff

	q1 := un32 / vn1
	rhat := un32 - q1*vn1
	for q1 >= base || q1*vn0 > base*rhat+un1 {
		q1--
		rhat += vn1
		if rhat >= base {
			break
		}
	}

	un21 := un32*base + un1 - q1*v

	q0 := un21 / vn1
	rhat = un21 - q0*vn1
	for q0 >= base || q0*vn0 > base*rhat+un0 {
		q0--
		rhat += vn1
		if rhat >= base {
			break
		}
	}

	q := int64(q1*base + q0)
	if signDif < 0 {
		return -q
	}
	return q
}

// normalize splits a positive x into an s2.30 mantissa in [One, 2*One) and
// the binary exponent offset such that x ~= n * 2^(offset-30) in s32.32.
func normalize(x int64) (n int32, offset int32) {
	offset = 31 - fixutil.Nlz64(uint64(x))
	n = int32(fixutil.ShiftRight64(x, offset+2))
	fixutil.Assert(n >= one30, "normalize: n >= ONE")
	return n, offset
}

func div(a, b int64, rcp func(int32) int32) int64 {
	if b == MinValue || b == 0 {
		return 0
	}
	sign := int64(1)
	if b < 0 {
		sign = -1
		b = -b
	}
	n, offset := normalize(b)
	res := rcp(n - one30)
	y := MulIntLongLong(res, a) << 2
	return fixutil.ShiftRight64(sign*y, offset)
}

func rcp(x int64, poly func(int32) int32) int64 {
	if x == MinValue || x == 0 {
		return 0
	}
	sign := int32(1)
	if x < 0 {
		sign = -1
		x = -x
	}
	n, offset := normalize(x)
	res := poly(n - one30)
	y := int64(sign*res) << 2
	return fixutil.ShiftRight64(y, offset)
}

// Div approximates a/b through a reciprocal polynomial with an 8-segment
// table (about 24 bits of mantissa). Div(a, 0) and Div(a, MinValue) return 0.
func Div(a, b int64) int64 {
	return div(a, b, fixutil.RcpPoly4Lut8)
}

// DivFast approximates a/b using a degree-6 reciprocal polynomial.
func DivFast(a, b int64) int64 {
	return div(a, b, fixutil.RcpPoly6)
}

// DivFastest approximates a/b using a degree-4 reciprocal polynomial.
func DivFastest(a, b int64) int64 {
	return div(a, b, fixutil.RcpPoly4)
}

// Rcp approximates 1/x. Rcp(0) and Rcp(MinValue) return 0.
func Rcp(x int64) int64 {
	return rcp(x, fixutil.RcpPoly4Lut8)
}

// RcpFast approximates 1/x using a degree-6 polynomial.
func RcpFast(x int64) int64 {
	return rcp(x, fixutil.RcpPoly6)
}

// RcpFastest approximates 1/x using a degree-4 polynomial.
func RcpFastest(x int64) int64 {
	return rcp(x, fixutil.RcpPoly4)
}
