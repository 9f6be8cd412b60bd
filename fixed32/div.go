package fixed32

import "github.com/agbru/fixpoint/internal/fixutil"

// DivPrecise returns a/b truncated toward zero, computed as a 64-bit
// integer quotient. Division by 0 or MinValue returns 0; quotients outside
// the int32 range wrap.
func DivPrecise(a, b int32) int32 {
	if b == MinValue || b == 0 {
		return 0
	}
	return int32((int64(a) << Shift) / int64(b))
}

// Div is the precise division tier. In s16.16 the exact 64-bit quotient is
// as cheap as any polynomial, so Div and DivPrecise return the same bits.
func Div(a, b int32) int32 {
	return DivPrecise(a, b)
}

// normalizeRcp maps a positive x onto an s2.30 mantissa n in [1, 2) with
// x ~= n * 2^(offset-14) in s16.16.
func normalizeRcp(x int32) (n, offset int32) {
	offset = 29 - fixutil.Nlz32(uint32(x))
	n = fixutil.ShiftRight32(x, offset-28)
	fixutil.Assert(n >= one30, "normalizeRcp: n >= ONE")
	return n, offset
}

func div(a, b int32, poly func(int32) int32) int32 {
	if b == MinValue || b == 0 {
		return 0
	}
	sign := int32(1)
	if b < 0 {
		sign = -1
		b = -b
	}
	n, offset := normalizeRcp(b)
	res := poly(n - one30)
	y := fixutil.Qmul30(res, a)
	return fixutil.ShiftRight32(sign*y, offset-14)
}

// DivFast approximates a/b with a degree-6 reciprocal polynomial.
func DivFast(a, b int32) int32 {
	return div(a, b, fixutil.RcpPoly6)
}

// DivFastest approximates a/b with a degree-4 reciprocal polynomial.
func DivFastest(a, b int32) int32 {
	return div(a, b, fixutil.RcpPoly4)
}

func rcp(x int32, poly func(int32) int32) int32 {
	if x == MinValue || x == 0 {
		return 0
	}
	sign := int32(1)
	if x < 0 {
		sign = -1
		x = -x
	}
	n, offset := normalizeRcp(x)
	res := poly(n - one30)
	return fixutil.ShiftRight32(sign*res, offset)
}

// Rcp approximates 1/x. Rcp(0) and Rcp(MinValue) return 0.
func Rcp(x int32) int32 {
	return rcp(x, fixutil.RcpPoly4Lut8)
}

// RcpFast is Rcp at the fast tier.
func RcpFast(x int32) int32 {
	return rcp(x, fixutil.RcpPoly6)
}

// RcpFastest is Rcp at the fastest tier.
func RcpFastest(x int32) int32 {
	return rcp(x, fixutil.RcpPoly4)
}
