// Package fixutil holds the integer helpers shared by the fixed64 and fixed32
// kernels: sign-aware shifts, leading-zero counts, the s2.30 multiply and the
// polynomial and lookup-table evaluators that approximate every transcendental
// function.
//
// All evaluators take and return s2.30 values (One = 1<<30). Inputs are
// expected in [0, One); anything else is a caller contract violation and is
// only diagnosed in builds tagged fixdebug.
package fixutil
