package libturan

import (
	"fmt"

	"github.com/plan-systems/klog"
	"github.com/raphaelyuster/turan-inducibility/turan"
)

type DisagreementKind int32

const (
	Disagree_BSCondition DisagreementKind = 1 // float64 and exact Brown–Sidorenko conditions differ
	Disagree_Search      DisagreementKind = 2 // float64 and exact searches stop at different l
)

// Disagreement records a T(s,r) where a float64 decision differs from the exact one.
type Disagreement struct {
	Params turan.Params
	Kind   DisagreementKind
	Float  int // l (or 0/1 for a condition) from the float64 path
	Exact  int // l (or 0/1 for a condition) from the exact path
}

func (d Disagreement) String() string {
	switch d.Kind {
	case Disagree_BSCondition:
		return fmt.Sprintf("%v: Brown-Sidorenko condition float=%d exact=%d", d.Params, d.Float, d.Exact)
	default:
		return fmt.Sprintf("%v: search l float=%d exact=%d", d.Params, d.Float, d.Exact)
	}
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// CrossCheck evaluates the inequalities behind T's l both in float64 and exactly and returns where they disagree.
// Only the decisions Select would actually take for T are compared.
func CrossCheck(T turan.Params) []Disagreement {
	if T.R < 3 || T.IsTrivial() {
		return nil
	}

	var diffs []Disagreement
	p, q := T.PQ()

	bs := BSCondition(T.S, T.R)
	bsExact := BSConditionExact(T.S, T.R)
	if bs != bsExact {
		diffs = append(diffs, Disagreement{
			Params: T,
			Kind:   Disagree_BSCondition,
			Float:  b2i(bs),
			Exact:  b2i(bsExact),
		})
	}

	if !bs && !bsExact && !(p > 4 || (p == 3 && q >= 2)) {
		l := Search(T.R, q, p)
		lExact := SearchExact(T.R, q, p)
		if l != lExact {
			diffs = append(diffs, Disagreement{
				Params: T,
				Kind:   Disagree_Search,
				Float:  l,
				Exact:  lExact,
			})
		}
	}

	for _, d := range diffs {
		klog.Warningf("float64 and exact evaluation disagree: %v", d)
	}
	return diffs
}
