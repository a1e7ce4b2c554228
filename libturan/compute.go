package libturan

import (
	"github.com/raphaelyuster/turan-inducibility/turan"
)

// Compute returns the inducibility of T(s,r) for 2 <= r < s using the default (float64) decisions.
func Compute(s, r int) turan.Result {
	return ComputeWith(turan.T(s, r), turan.DefaultComputeOpts)
}

// ComputeWith returns the inducibility of T, 2 <= T.R < T.S.
//
// The result depends only on T and opts.ExactInequalities, so it may be called concurrently.
func ComputeWith(T turan.Params, opts turan.ComputeOpts) turan.Result {
	p, q := T.PQ()

	X := turan.Result{
		Params: T,
		Status: turan.Status_Complete,
	}

	if T.R == 2 {
		X.L, X.Cite = SelectBipartite(T.S)
		X.Num, X.Den = Bipartite(p, q)
		return X
	}

	X.L, X.Cite = Select(T.S, T.R, opts)
	if X.L == turan.UnknownL {
		return turan.UnknownResult(T)
	}
	X.Num, X.Den = Evaluate(X.L, T.R, q, p)
	return X
}

// ComputeRow is ComputeWith for any valid T, including the trivial T(s,s) row that the table driver owns.
func ComputeRow(T turan.Params, opts turan.ComputeOpts) (turan.Result, error) {
	if err := T.Validate(); err != nil {
		return turan.Result{}, err
	}
	if T.IsTrivial() {
		return turan.TrivialResult(T), nil
	}
	return ComputeWith(T, opts), nil
}
