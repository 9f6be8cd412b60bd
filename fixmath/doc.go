// Package fixmath wraps the raw fixed64 and fixed32 kernels in named value
// types with methods, plus a two-component vector over F64.
//
// The types carry no state besides the raw bits, so converting between an
// F64 and its int64 with Raw and FromRaw is free. Every method has exactly
// the semantics of the kernel function of the same name.
package fixmath
