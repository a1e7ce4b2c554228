package libturan

import (
	"io"
	"runtime"
	"strings"
	"sync"

	"github.com/plan-systems/klog"
	"github.com/raphaelyuster/turan-inducibility/turan"
)

// ParamsStream carries T(s,r) params from one pipeline stage to the next.
type ParamsStream struct {
	Outlet chan turan.Params
}

// ResultStream carries Results from one pipeline stage to the next.
type ResultStream struct {
	Outlet chan turan.Result

	// Err is the first error the producing stage hit, set before Outlet closes.
	Err error
}

type AddResultOpts struct {
	AutoCloseCatalog bool
}

// StreamGrid pushes each of the given params, in order.
func StreamGrid(grid []turan.Params) *ParamsStream {
	next := &ParamsStream{
		Outlet: make(chan turan.Params, 1),
	}

	go func() {
		for _, T := range grid {
			next.Outlet <- T
		}
		next.Close()
	}()

	return next
}

func (stream *ParamsStream) Close() {
	if stream.Outlet != nil {
		close(stream.Outlet)
	}
}

// DropDupes passes each T(s,r) only the first time it appears.
func (stream *ParamsStream) DropDupes() *ParamsStream {
	next := &ParamsStream{
		Outlet: make(chan turan.Params, 1),
	}

	go func() {
		set := NewParamsSet()
		for T := range stream.Outlet {
			if set.TryAdd(T) {
				next.Outlet <- T
			} else {
				klog.V(2).Infof("dropping repeated %v", T)
			}
		}
		set.Close()
		next.Close()
	}()

	return next
}

// Compute computes each T(s,r) on opts.Workers goroutines.
// Results arrive in completion order; route them through a Catalog to restore (s,r) order.
func (stream *ParamsStream) Compute(opts turan.ComputeOpts) *ResultStream {
	next := &ResultStream{
		Outlet: make(chan turan.Result, 1),
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	wg := sync.WaitGroup{}
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for T := range stream.Outlet {
				X, err := ComputeRow(T, opts)
				if err != nil {
					klog.Warningf("skipping %v: %v", T, err)
					continue
				}
				next.Outlet <- X
			}
		}()
	}

	go func() {
		wg.Wait()
		next.Close()
	}()

	return next
}

func (stream *ResultStream) Close() {
	if stream.Outlet != nil {
		close(stream.Outlet)
	}
}

// PullAll drains this stream and returns how many Results it carried.
func (stream *ResultStream) PullAll() int {
	count := int(0)
	for range stream.Outlet {
		count++
	}
	return count
}

// Collect drains this stream into a slice.
func (stream *ResultStream) Collect() []turan.Result {
	var results []turan.Result
	for X := range stream.Outlet {
		results = append(results, X)
	}
	return results
}

// AddTo offers each Result to target and passes on those that were added.
func (stream *ResultStream) AddTo(target turan.ResultAdder, opts AddResultOpts) *ResultStream {
	next := &ResultStream{
		Outlet: make(chan turan.Result, 1),
	}

	go func() {
		for X := range stream.Outlet {
			if target.TryAddResult(X) {
				next.Outlet <- X
			}
		}
		if opts.AutoCloseCatalog {
			if cat, ok := target.(turan.Catalog); ok {
				cat.Close()
			}
		}
		next.Close()
	}()

	return next
}

// SelectFromCatalog emits the Results of cat meeting sel, in (s,r) order.
func SelectFromCatalog(cat turan.Catalog, sel turan.ResultSelector) *ResultStream {
	next := &ResultStream{
		Outlet: make(chan turan.Result, 1),
	}

	onHit := make(chan turan.Result, 4)

	go func() {
		cat.Select(sel, onHit)
		close(onHit)
	}()

	go func() {
		for X := range onHit {
			if sel.SelectsResult(&X) {
				next.Outlet <- X
			}
		}
		next.Close()
	}()

	return next
}

func (stream *ResultStream) SelectFromStream(sel turan.ResultSelector) *ResultStream {
	next := &ResultStream{
		Outlet: make(chan turan.Result, 1),
	}

	go func() {
		for X := range stream.Outlet {
			if sel.SelectsResult(&X) {
				next.Outlet <- X
			}
		}
		next.Close()
	}()

	return next
}

// Print writes the table header, a row for each Result, and the table footer to out.
// After the first write error, Results still pass through but nothing more is written; see Err.
func (stream *ResultStream) Print(out io.Writer, opts turan.PrintOpts) *ResultStream {
	next := &ResultStream{
		Outlet: make(chan turan.Result, 1),
	}

	go func() {
		next.Err = WriteTableHeader(out, opts)

		buf := strings.Builder{}
		buf.Grow(256)
		for X := range stream.Outlet {
			if next.Err == nil {
				AppendResult(&buf, &X, opts)
				_, next.Err = io.WriteString(out, buf.String())
				buf.Reset()
			}
			next.Outlet <- X
		}

		if next.Err == nil {
			next.Err = WriteTableFooter(out, opts)
		}
		if next.Err != nil {
			klog.Errorf("print: %v", next.Err)
		}
		next.Close()
	}()

	return next
}
