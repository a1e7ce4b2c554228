package libturan

import (
	"io"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"github.com/raphaelyuster/turan-inducibility/libturan/catalog"
	"github.com/raphaelyuster/turan-inducibility/turan"
)

// TableOpts specifies a complete table run.
type TableOpts struct {
	Grid    string               // grid expression (DefaultGrid if empty)
	Compute turan.ComputeOpts    // how each row is computed
	Print   turan.PrintOpts      // how each row is printed
	Select  turan.ResultSelector // rows to print
	Check   bool                 // if set, float64 vs exact disagreements are logged for each row
}

// DefaultTableOpts renders the default grid as plain text.
var DefaultTableOpts = TableOpts{
	Grid:    DefaultGrid,
	Compute: turan.DefaultComputeOpts,
	Print:   turan.DefaultPrintOpts,
	Select:  turan.DefaultResultSelector,
}

// computeCatalog computes every T(s,r) named by gridExpr concurrently into a new Catalog attached to ctx.
func computeCatalog(ctx turan.CatalogContext, gridExpr string, opts turan.ComputeOpts) (turan.Catalog, error) {
	if gridExpr == "" {
		gridExpr = DefaultGrid
	}
	grid, err := ParseGrid(gridExpr)
	if err != nil {
		return nil, err
	}

	cat, err := catalog.NewCatalog(ctx, turan.CatalogOpts{Label: gridExpr})
	if err != nil {
		return nil, err
	}

	added := StreamGrid(grid).
		DropDupes().
		Compute(opts).
		AddTo(cat, AddResultOpts{}).
		PullAll()
	klog.V(2).Infof("computed %d rows for %q", added, gridExpr)

	return cat, nil
}

// ComputeTable computes every T(s,r) named by gridExpr and returns the Results in (s,r) order.
func ComputeTable(gridExpr string, opts turan.ComputeOpts) ([]turan.Result, error) {
	ctx := turan.NewCatalogContext()
	defer func() {
		ctx.Close()
		<-ctx.Done()
	}()

	cat, err := computeCatalog(ctx, gridExpr, opts)
	if err != nil {
		return nil, err
	}
	return SelectFromCatalog(cat, turan.DefaultResultSelector).Collect(), nil
}

// RenderTable computes the table named by opts.Grid and writes the selected rows to out in (s,r) order.
func RenderTable(out io.Writer, opts TableOpts) ([]turan.Result, error) {
	ctx := turan.NewCatalogContext()
	defer func() {
		ctx.Close()
		<-ctx.Done()
	}()

	cat, err := computeCatalog(ctx, opts.Grid, opts.Compute)
	if err != nil {
		return nil, err
	}

	stream := SelectFromCatalog(cat, opts.Select)
	if opts.Check {
		stream = stream.CrossCheck()
	}
	printed := stream.Print(out, opts.Print)
	results := printed.Collect()
	if printed.Err != nil {
		return results, errors.Wrap(printed.Err, "writing table")
	}
	return results, nil
}

// CrossCheck logs, via CrossCheck(), where float64 and exact evaluation disagree for each Result passing through.
func (stream *ResultStream) CrossCheck() *ResultStream {
	next := &ResultStream{
		Outlet: make(chan turan.Result, 1),
	}

	go func() {
		for X := range stream.Outlet {
			CrossCheck(X.Params)
			next.Outlet <- X
		}
		next.Close()
	}()

	return next
}
