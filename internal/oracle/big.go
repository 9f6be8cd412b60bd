//go:build !gmp

package oracle

import "math/big"

// Backend names the arbitrary precision library in use.
const Backend = "math/big"

var mod64 = new(big.Int).Lsh(big.NewInt(1), 64)

func mulShift(a, b int64, shift uint) uint64 {
	p := new(big.Int).Mul(big.NewInt(a), big.NewInt(b))
	p.Rsh(p, shift)
	return p.Mod(p, mod64).Uint64()
}

func quoShift(ua, ub uint64, shift uint) (uint64, bool) {
	if ub == 0 {
		return 0, true
	}
	n := new(big.Int).SetUint64(ua)
	n.Lsh(n, shift)
	n.Quo(n, new(big.Int).SetUint64(ub))
	if n.Cmp(mod64) >= 0 {
		return 0, true
	}
	return n.Uint64(), false
}

func isqrtShift(a uint64, shift uint) uint64 {
	n := new(big.Int).SetUint64(a)
	n.Lsh(n, shift)
	return n.Sqrt(n).Uint64()
}
