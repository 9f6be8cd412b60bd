//go:build gmp

package oracle

import "github.com/ncw/gmp"

// Backend names the arbitrary precision library in use.
const Backend = "gmp"

var mod64 = new(gmp.Int).Lsh(gmp.NewInt(1), 64)

func mulShift(a, b int64, shift uint) uint64 {
	p := new(gmp.Int).Mul(gmp.NewInt(a), gmp.NewInt(b))
	p.Rsh(p, shift)
	return p.Mod(p, mod64).Uint64()
}

func quoShift(ua, ub uint64, shift uint) (uint64, bool) {
	if ub == 0 {
		return 0, true
	}
	n := new(gmp.Int).SetUint64(ua)
	n.Lsh(n, shift)
	n.Quo(n, new(gmp.Int).SetUint64(ub))
	if n.Cmp(mod64) >= 0 {
		return 0, true
	}
	return n.Uint64(), false
}

// isqrtShift runs Newton's iteration from above, which converges to the
// floor of the root.
func isqrtShift(a uint64, shift uint) uint64 {
	n := new(gmp.Int).SetUint64(a)
	n.Lsh(n, shift)
	if n.Sign() == 0 {
		return 0
	}
	x := new(gmp.Int).Set(n)
	y := new(gmp.Int).Add(x, gmp.NewInt(1))
	y.Rsh(y, 1)
	t := new(gmp.Int)
	for y.Cmp(x) < 0 {
		x.Set(y)
		t.Quo(n, x)
		y.Add(x, t)
		y.Rsh(y, 1)
	}
	return x.Uint64()
}
