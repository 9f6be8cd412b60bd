// Package fixed32 implements deterministic s16.16 fixed-point arithmetic on
// int32 values.
//
// The API mirrors package fixed64 function for function, with one width
// difference: intermediate results that would lose too much precision in
// 32 bits (the square root inside Asin and Acos) are computed in s32.32 and
// narrowed. Out-of-domain inputs return 0, and no function panics.
package fixed32
