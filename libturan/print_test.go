package libturan

import (
	"os"
	"strings"
	"testing"

	"github.com/raphaelyuster/turan-inducibility/turan"
)

func TestPlainRows(t *testing.T) {
	cases := []struct {
		X   turan.Result
		row string
	}{
		{Compute(3, 2), "i(T(3,2)) = 3 / 4 \t\t(p,q)=(1,1) l=2 goodman-1959\n"},
		{Compute(4, 2), "i(T(4,2)) = 3 / 8 \t\t(p,q)=(2,0) l=2 BS-1994\n"},
		{Compute(5, 3), "i(T(5,3)) = 10 / 27 \t\t(p,q)=(1,2) l=3 BS-1994 PST-2019\n"},
		{Compute(5, 4), "i(T(5,4)) = 525 / 1024 \t\t(p,q)=(1,1) l=8 LPSS-2023 LMR-2023\n"},
		{Compute(6, 4), "i(T(6,4)) = 25 / 72 \t\t(p,q)=(1,2) l=6 here\n"},
		{ComputeWith(turan.T(15, 4), turan.DefaultComputeOpts), "i(T(15,4)) = unknown\n"},
		{turan.TrivialResult(turan.T(5, 5)), "i(T(5,5)) = 1 / 1 \t\t(p,q)=(1,0) l=5 complete graph\n"},
	}

	for _, c := range cases {
		b := strings.Builder{}
		if err := WriteResult(&b, &c.X, turan.DefaultPrintOpts); err != nil {
			t.Fatal(err)
		}
		if b.String() != c.row {
			t.Fatalf("expected %q, got %q", c.row, b.String())
		}
	}

	X := Compute(4, 3)
	b := strings.Builder{}
	WriteResult(&b, &X, turan.PrintOpts{Label: "out[1]"})
	if b.String() != "out[1] i(T(4,3)) = 72 / 125 \t\tl=5 hirst-2014\n" {
		t.Fatalf("got %q", b.String())
	}
}

func TestLaTeXRows(t *testing.T) {
	opts := turan.PrintOpts{LaTeX: true}

	X := Compute(5, 4)
	b := strings.Builder{}
	WriteResult(&b, &X, opts)
	if b.String() != "\\\\\n\\hline\n$T(5,4)$ & $8$ & $525$ & $1024$ & \\cite{LPSS-2023} \\cite{LMR-2023}" {
		t.Fatalf("got %q", b.String())
	}

	X = Compute(7, 4)
	b.Reset()
	WriteResult(&b, &X, opts)
	if !strings.HasSuffix(b.String(), "& here") {
		t.Fatalf("got %q", b.String())
	}

	X = ComputeWith(turan.T(35, 6), turan.DefaultComputeOpts)
	b.Reset()
	WriteResult(&b, &X, opts)
	if b.String() != "\n% i(T(35,6)) = unknown\n" {
		t.Fatalf("got %q", b.String())
	}
}

// The LaTeX table of the default grid must match the published one row for row.
func TestDefaultGridLaTeX(t *testing.T) {
	expected, err := os.ReadFile("testdata/default-grid.tex")
	if err != nil {
		t.Fatal(err)
	}

	grid, err := ParseGrid(DefaultGrid)
	if err != nil {
		t.Fatal(err)
	}
	results := make([]turan.Result, len(grid))
	for i, T := range grid {
		results[i] = Compute(T.S, T.R)
	}

	b := strings.Builder{}
	if err = WriteTable(&b, results, turan.PrintOpts{LaTeX: true}); err != nil {
		t.Fatal(err)
	}
	if b.String() != string(expected) {
		t.Fatalf("LaTeX table mismatch:\n%s", b.String())
	}
}

func TestCites(t *testing.T) {
	if PlainCite(turan.Cite(turan.Ref_Unknown)) != "unknown" || LaTeXCite(nil) != "unknown" {
		t.Fatal("unknown citation")
	}
	if PlainCite(turan.Cite(turan.Ref_Goodman1959)) != "goodman-1959" || PlainCite(turan.Cite(turan.Ref_Here)) != "here" {
		t.Fatal(PlainCite(turan.Cite(turan.Ref_Goodman1959)))
	}
	if LaTeXCite(turan.Cite(turan.Ref_BS1994, turan.Ref_PST2019)) != "\\cite{BS-1994} \\cite{PST-2019}" {
		t.Fatal(LaTeXCite(turan.Cite(turan.Ref_BS1994, turan.Ref_PST2019)))
	}
}
