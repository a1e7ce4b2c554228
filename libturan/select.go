package libturan

import (
	"math"
	"math/big"

	"github.com/raphaelyuster/turan-inducibility/turan"
)

// BSCondition is the Brown–Sidorenko sufficient condition for l = r:
//
//	(1 + 1/r)^s (1 - s/(p(r+1))) > 1
func BSCondition(s, r int) bool {
	p := s / r
	rf := float64(r)
	return math.Pow(1+1/rf, float64(s))*(1-float64(s)/float64(p*(r+1))) > 1
}

// BSConditionExact is BSCondition evaluated with big.Rat.
func BSConditionExact(s, r int) bool {
	p := s / r
	lhs := new(big.Rat).SetFrac(bigPow(r+1, s), bigPow(r, s))
	lhs.Mul(lhs, big.NewRat(int64(p*(r+1)-s), int64(p*(r+1))))
	return lhs.Cmp(ratOne) > 0
}

func bsCondition(s, r int, exact bool) bool {
	if exact {
		return BSConditionExact(s, r)
	}
	return BSCondition(s, r)
}

// Select decides l for T(s,r), r >= 3, and the citation that justifies it.
// l is turan.UnknownL when neither a closed form nor a safe search range applies.
func Select(s, r int, opts turan.ComputeOpts) (l int, cite turan.Citation) {
	p, q := s/r, s%r

	bs := bsCondition(s, r, opts.ExactInequalities)
	switch {
	case bs:
		l = r
	case p > 4 || (p == 3 && q >= 2):
		return turan.UnknownL, nil
	case opts.ExactInequalities:
		l = SearchExact(r, q, p)
	default:
		l = Search(r, q, p)
	}

	return l, citeFor(s, r, p, q, bs)
}

// citeFor is an ordered match over the published results; the first match wins.
func citeFor(s, r, p, q int, bs bool) turan.Citation {
	switch {
	case bs:
		return turan.Cite(turan.Ref_BS1994)
	case s == 5 && r == 3:
		return turan.Cite(turan.Ref_BS1994, turan.Ref_PST2019)
	case s == 4 && r == 3:
		return turan.Cite(turan.Ref_Hirst2014)
	case s == 5 && r == 4:
		return turan.Cite(turan.Ref_LPSS2023, turan.Ref_LMR2023)
	case s == r+1:
		return turan.Cite(turan.Ref_LMR2023)
	case p <= 2 || (p == 3 && q <= 1):
		return turan.Cite(turan.Ref_Here)
	default:
		return turan.Cite(turan.Ref_Unknown)
	}
}

// SelectBipartite returns l and the citation for T(s,2).
func SelectBipartite(s int) (l int, cite turan.Citation) {
	if s == 3 {
		return 2, turan.Cite(turan.Ref_Goodman1959)
	}
	return 2, turan.Cite(turan.Ref_BS1994)
}
