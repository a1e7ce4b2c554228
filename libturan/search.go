package libturan

import (
	"math/big"
)

// F returns f(l) = (1 - 1/l)^(pr+q) * l/(l - r), the quantity whose crossing of 1 locates the extremal l.
// Assumes l > r.
func F(l, r, q, p int) float64 {
	res := 1.0
	for i := 0; i < p*r+q; i++ {
		res *= 1 - 1/float64(l)
	}
	return res * float64(l) / float64(l-r)
}

// FExact is F evaluated exactly: ((l-1)/l)^(pr+q) * l/(l-r)
func FExact(l, r, q, p int) *big.Rat {
	n := p*r + q
	num := bigPow(l-1, n)
	num.Mul(num, big.NewInt(int64(l)))
	den := bigPow(l, n)
	den.Mul(den, big.NewInt(int64(l-r)))
	return new(big.Rat).SetFrac(num, den)
}

// FExceedsOne reports f(l) > 1, evaluated in float64 or exactly.
func FExceedsOne(l, r, q, p int, exact bool) bool {
	if exact {
		return FExact(l, r, q, p).Cmp(ratOne) > 0
	}
	return F(l, r, q, p) > 1
}

// Search returns the l reached by starting at l = r and stepping while f(l+1) > 1.
// Callers only use it for p >= 1 and r >= 3, where f eventually drops to 1 or below.
func Search(r, q, p int) int {
	return search(r, q, p, false)
}

// SearchExact is Search with f decided by FExact.
func SearchExact(r, q, p int) int {
	return search(r, q, p, true)
}

func search(r, q, p int, exact bool) int {
	l := r
	for FExceedsOne(l+1, r, q, p, exact) {
		l++
	}
	return l
}

var ratOne = big.NewRat(1, 1)
