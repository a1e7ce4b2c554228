package pyturan

import (
	"math/big"
	"strings"

	"github.com/go-python/gpython/py"
	"github.com/raphaelyuster/turan-inducibility/libturan"
	"github.com/raphaelyuster/turan-inducibility/turan"
)

var (
	LIB_VERSION = "v1.2024.1"
)

func pyBig(x *big.Int) py.Object {
	return (*py.BigInt)(new(big.Int).Set(x))
}

// Arg 1 (int): s
// Arg 2 (int): r
//
// Returns (l, num, den, cite) or None if l is unknown.
func py_Compute(module py.Object, args py.Tuple) (py.Object, error) {
	var sObj, rObj py.Object
	err := py.ParseTuple(args, "ii", &sObj, &rObj)
	if err != nil {
		return nil, err
	}

	T := turan.T(int(sObj.(py.Int)), int(rObj.(py.Int)))
	X, err := libturan.ComputeRow(T, turan.DefaultComputeOpts)
	if err != nil {
		return nil, py.ExceptionNewf(py.ValueError, "%v", err)
	}
	if !X.IsKnown() {
		return py.None, nil
	}

	return py.Tuple{
		py.Int(X.L),
		pyBig(X.Num),
		pyBig(X.Den),
		py.String(X.Cite.String()),
	}, nil
}

func boolKwarg(kwargs py.StringDict, key string) (bool, error) {
	v, exists := kwargs[key]
	if !exists {
		return false, nil
	}
	switch b := v.(type) {
	case py.Bool:
		return bool(b), nil
	case py.Int:
		return b != 0, nil
	}
	return false, py.ExceptionNewf(py.TypeError, "%s: expected bool (got %v)", key, v.Type().Name)
}

// Arg 1 (str, optional): grid expression, e.g. "T(3..14, 2..)"
// kwarg latex (bool): LaTeX rows rather than plain text
// kwarg exact (bool): decide inequalities exactly
func py_Table(module py.Object, args py.Tuple, kwargs py.StringDict) (py.Object, error) {
	opts := libturan.DefaultTableOpts

	if len(args) > 0 {
		grid, isStr := args[0].(py.String)
		if !isStr {
			return nil, py.ExceptionNewf(py.TypeError, "expected grid str (got %v)", args[0].Type().Name)
		}
		opts.Grid = string(grid)
	}
	if gridObj, exists := kwargs["grid"]; exists {
		grid, isStr := gridObj.(py.String)
		if !isStr {
			return nil, py.ExceptionNewf(py.TypeError, "expected grid str (got %v)", gridObj.Type().Name)
		}
		opts.Grid = string(grid)
	}

	var err error
	if opts.Print.LaTeX, err = boolKwarg(kwargs, "latex"); err != nil {
		return nil, err
	}
	if opts.Compute.ExactInequalities, err = boolKwarg(kwargs, "exact"); err != nil {
		return nil, err
	}

	out := strings.Builder{}
	if _, err = libturan.RenderTable(&out, opts); err != nil {
		return nil, py.ExceptionNewf(py.ValueError, "%v", err)
	}
	return py.String(out.String()), nil
}

// kwarg latex (bool): \bibitem list rather than plain text
func py_References(module py.Object, args py.Tuple, kwargs py.StringDict) (py.Object, error) {
	latex, err := boolKwarg(kwargs, "latex")
	if err != nil {
		return nil, err
	}

	out := strings.Builder{}
	err = libturan.FullBibliography().WriteReferences(&out, turan.PrintOpts{LaTeX: latex})
	if err != nil {
		return nil, py.ExceptionNewf(py.RuntimeError, "%v", err)
	}
	return py.String(out.String()), nil
}

func init() {
	methods := []*py.Method{
		py.MustNewMethod("Compute", py_Compute, 0, "Compute(s, r) -> (l, num, den, cite), or None if l is unknown"),
		py.MustNewMethod("Table", py_Table, 0, "Table(grid='T(3..14, 2..)', latex=False, exact=False) -> str"),
		py.MustNewMethod("References", py_References, 0, "References(latex=False) -> str"),
	}

	globals := py.StringDict{
		"LIB_VERSION":  py.String(LIB_VERSION),
		"DEFAULT_GRID": py.String(libturan.DefaultGrid),
		"UNKNOWN_L":    py.Int(turan.UnknownL),
	}

	py.RegisterModule(&py.ModuleImpl{
		Info: py.ModuleInfo{
			Name: "_turan",
			Doc:  "Turán graph inducibility gpython module",
		},
		Methods: methods,
		Globals: globals,
	})
}
