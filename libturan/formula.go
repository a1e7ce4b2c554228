package libturan

import (
	"math/big"
)

// Factorial returns j!
func Factorial(j int) *big.Int {
	f := big.NewInt(1)
	if j > 1 {
		f.MulRange(1, int64(j))
	}
	return f
}

func bigPow(base, exp int) *big.Int {
	return new(big.Int).Exp(big.NewInt(int64(base)), big.NewInt(int64(exp)), nil)
}

// Bipartite returns the reduced inducibility of T(2p+q, 2):
//
//	(2p+q)! / (p! (p+q)!) / 2^(2p)
func Bipartite(p, q int) (num, den *big.Int) {
	num = Factorial(2*p + q)
	num.Quo(num, Factorial(p))
	num.Quo(num, Factorial(p+q))
	den = bigPow(2, 2*p)
	return Reduce(num, den)
}

// Numerator returns l! (pr+q)!, the unreduced numerator of the balanced complete l-partite density of T(pr+q, r).
func Numerator(l, r, q, p int) *big.Int {
	num := Factorial(l)
	return num.Mul(num, Factorial(p*r+q))
}

// Denominator returns (r-q)! q! (l-r)! l^(pr+q) (p+1)^q (p!)^r, the unreduced denominator paired with Numerator.
func Denominator(l, r, q, p int) *big.Int {
	den := Factorial(r - q)
	den.Mul(den, Factorial(q))
	den.Mul(den, Factorial(l-r))
	den.Mul(den, bigPow(l, p*r+q))
	den.Mul(den, bigPow(p+1, q))
	pFact := Factorial(p)
	return den.Mul(den, pFact.Exp(pFact, big.NewInt(int64(r)), nil))
}

// Evaluate returns the reduced inducibility of T(pr+q, r) witnessed by the balanced complete l-partite graphon.
func Evaluate(l, r, q, p int) (num, den *big.Int) {
	return Reduce(Numerator(l, r, q, p), Denominator(l, r, q, p))
}
