package libturan

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/raphaelyuster/turan-inducibility/turan"
)

func TestComputeTableMatchesSequential(t *testing.T) {
	for _, workers := range []int{1, 3, 0} {
		opts := turan.ComputeOpts{Workers: workers}

		// repeated and out of order terms come back once each, in (s,r) order
		results, err := ComputeTable("T(9..14, 2..); T(3..8, 2..); T(4,3); T(14,13)", opts)
		if err != nil {
			t.Fatal(err)
		}
		if len(results) != len(gKnownRows) {
			t.Fatalf("workers=%d: expected %d rows, got %d", workers, len(gKnownRows), len(results))
		}
		for i, row := range gKnownRows {
			checkRow(t, results[i], row)
		}
	}
}

func TestDropDupes(t *testing.T) {
	grid := []turan.Params{turan.T(5, 3), turan.T(4, 3), turan.T(5, 3), turan.T(4, 3), turan.T(6, 2)}
	var got []turan.Params
	stream := StreamGrid(grid).DropDupes()
	for T := range stream.Outlet {
		got = append(got, T)
	}
	if len(got) != 3 || got[0] != turan.T(5, 3) || got[1] != turan.T(4, 3) || got[2] != turan.T(6, 2) {
		t.Fatalf("got %v", got)
	}
}

func TestComputeStreamSkipsBadParams(t *testing.T) {
	grid := []turan.Params{turan.T(5, 3), turan.T(5, 1), turan.T(5, 5)}
	results := StreamGrid(grid).Compute(turan.ComputeOpts{Workers: 2}).Collect()
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
}

func TestSelectFromStream(t *testing.T) {
	grid, _ := ParseGrid("T(14..16, 3..5)")
	sel := turan.DefaultResultSelector
	sel.KnownOnly = true

	results := StreamGrid(grid).
		Compute(turan.ComputeOpts{Workers: 1}).
		SelectFromStream(sel).
		Collect()
	for _, X := range results {
		if !X.IsKnown() {
			t.Fatalf("%v should have been dropped", X.Params)
		}
	}
	if len(results) != len(grid)-1 {
		t.Fatalf("expected only T(15,4) dropped, got %d of %d", len(results), len(grid))
	}
}

func TestRenderTable(t *testing.T) {
	expected, err := os.ReadFile("testdata/default-grid.tex")
	if err != nil {
		t.Fatal(err)
	}

	opts := DefaultTableOpts
	opts.Print = turan.PrintOpts{LaTeX: true}
	opts.Check = true

	b := strings.Builder{}
	results, err := RenderTable(&b, opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 78 {
		t.Fatalf("expected 78 rows, got %d", len(results))
	}
	if b.String() != string(expected) {
		t.Fatalf("LaTeX table mismatch:\n%s", b.String())
	}

	opts = DefaultTableOpts
	opts.Grid = "T(15, 4)"
	b.Reset()
	if _, err = RenderTable(&b, opts); err != nil {
		t.Fatal(err)
	}
	if b.String() != "i(T(15,4)) = unknown\n" {
		t.Fatalf("got %q", b.String())
	}

	opts.Grid = "T(15"
	if _, err = RenderTable(&b, opts); err == nil {
		t.Fatal("expected a grid error")
	}
}

// brokenWriter accepts n writes and fails every write after that.
type brokenWriter struct {
	n int
}

func (w *brokenWriter) Write(p []byte) (int, error) {
	if w.n <= 0 {
		return 0, io.ErrClosedPipe
	}
	w.n--
	return len(p), nil
}

func TestRenderTableWriteError(t *testing.T) {
	for _, n := range []int{0, 3, 77} {
		results, err := RenderTable(&brokenWriter{n: n}, DefaultTableOpts)
		if err == nil || !strings.Contains(err.Error(), io.ErrClosedPipe.Error()) {
			t.Fatalf("n=%d: expected a write error, got %v", n, err)
		}
		if len(results) != 78 {
			t.Fatalf("n=%d: expected 78 rows, got %d", n, len(results))
		}
	}

	w := &brokenWriter{n: 1 << 20}
	if _, err := RenderTable(w, DefaultTableOpts); err != nil {
		t.Fatal(err)
	}
}
