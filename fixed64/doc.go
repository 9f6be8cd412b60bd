// Package fixed64 implements deterministic s32.32 fixed-point arithmetic.
//
// A value is a plain int64 holding real*2^32: 32 integer bits (sign
// included) and 32 fraction bits. Every function is a pure integer
// computation, so the same input bits produce the same output bits on every
// CPU, operating system and Go release. Floating point only appears in the
// conversion helpers (FromDouble, ToDouble and friends).
//
// # Tiers
//
// Transcendental functions come in three sibling variants that trade
// accuracy for speed:
//
//   - Sqrt, Exp, Sin, ...: the most precise polynomial/LUT combination.
//   - SqrtFast, ExpFast, SinFast, ...: a cheaper polynomial.
//   - SqrtFastest, ExpFastest, SinFastest, ...: the cheapest polynomial.
//
// DivPrecise and SqrtPrecise are exact (floor-correct) integer algorithms.
//
// # Error handling
//
// Nothing in this package returns an error or panics. Inputs outside a
// function's domain (the square root of a negative number, the logarithm
// of zero, Asin outside [-1, 1]) return 0. Overflowing exact division
// returns MaxValue. Abs(MinValue) is not representable and wraps to
// MinValue. Add, Sub and the trigonometric range reduction rely on two's
// complement wraparound.
package fixed64
