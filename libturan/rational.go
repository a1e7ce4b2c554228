package libturan

import (
	"math/big"
)

// GCD returns gcd(a, b) using the iterative Euclidean algorithm: (a, b) <- (b, a mod b) until b = 0.
// Neither a nor b is modified.
func GCD(a, b *big.Int) *big.Int {
	x := new(big.Int).Set(a)
	y := new(big.Int).Set(b)
	m := new(big.Int)
	for y.Sign() != 0 {
		m.Mod(x, y)
		x, y, m = y, m, x
	}
	return x
}

// Reduce returns num/g and den/g where g = gcd(num, den).
// Assumes den > 0 and num >= 0.
func Reduce(num, den *big.Int) (*big.Int, *big.Int) {
	g := GCD(num, den)
	if g.Cmp(bigOne) == 0 {
		return new(big.Int).Set(num), new(big.Int).Set(den)
	}
	return new(big.Int).Quo(num, g), new(big.Int).Quo(den, g)
}

var bigOne = big.NewInt(1)
