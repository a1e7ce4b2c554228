package libturan

import (
	"fmt"
	"io"
	"strings"

	"github.com/raphaelyuster/turan-inducibility/turan"
)

const (
	latexHeader = "graph & $t$ & numerator & denominator & reference"
	latexRowSep = "\\\\\n\\hline\n"
)

// WriteTableHeader writes what precedes the first row (LaTeX only).
func WriteTableHeader(out io.Writer, opts turan.PrintOpts) error {
	if !opts.LaTeX {
		return nil
	}
	_, err := io.WriteString(out, latexHeader)
	return err
}

// WriteTableFooter closes the last row (LaTeX only).
func WriteTableFooter(out io.Writer, opts turan.PrintOpts) error {
	if !opts.LaTeX {
		return nil
	}
	_, err := io.WriteString(out, "\\\\\n")
	return err
}

// WriteResult writes one table row for X.
//
// Plain rows end with a newline; LaTeX rows are preceded by the row separator so that the footer closes the last one.
// A LaTeX row for an unknown l is written as a comment line, keeping the tabular valid.
func WriteResult(out io.Writer, X *turan.Result, opts turan.PrintOpts) error {
	buf := strings.Builder{}
	buf.Grow(160)
	AppendResult(&buf, X, opts)
	_, err := io.WriteString(out, buf.String())
	return err
}

// AppendResult is WriteResult into a strings.Builder.
func AppendResult(buf *strings.Builder, X *turan.Result, opts turan.PrintOpts) {
	if opts.LaTeX {
		appendLaTeXRow(buf, X)
	} else {
		appendPlainRow(buf, X, opts)
	}
}

func appendPlainRow(buf *strings.Builder, X *turan.Result, opts turan.PrintOpts) {
	if len(opts.Label) > 0 {
		buf.WriteString(opts.Label)
		buf.WriteByte(' ')
	}

	fmt.Fprintf(buf, "i(T(%d,%d)) = ", X.S, X.R)
	if !X.IsKnown() {
		buf.WriteString("unknown\n")
		return
	}

	fmt.Fprintf(buf, "%v / %v \t\t", X.Num, X.Den)
	if opts.ShowPQ {
		p, q := X.PQ()
		fmt.Fprintf(buf, "(p,q)=(%d,%d) ", p, q)
	}
	fmt.Fprintf(buf, "l=%d ", X.L)

	if X.Status == turan.Status_Trivial {
		buf.WriteString("complete graph\n")
		return
	}
	buf.WriteString(PlainCite(X.Cite))
	buf.WriteByte('\n')
}

func appendLaTeXRow(buf *strings.Builder, X *turan.Result) {
	if !X.IsKnown() {
		fmt.Fprintf(buf, "\n%% i(T(%d,%d)) = unknown\n", X.S, X.R)
		return
	}

	buf.WriteString(latexRowSep)
	fmt.Fprintf(buf, "$T(%d,%d)$ & $%d$ & $%v$ & $%v$ & ", X.S, X.R, X.L, X.Num, X.Den)
	if X.Status == turan.Status_Trivial {
		buf.WriteString("trivial")
		return
	}
	buf.WriteString(LaTeXCite(X.Cite))
}

// PlainCite renders a citation as its space separated cite keys, e.g. "LPSS-2023 LMR-2023".
func PlainCite(cite turan.Citation) string {
	return cite.String()
}

// LaTeXCite renders a citation as space separated \cite{} commands; "here" and "unknown" are written literally.
func LaTeXCite(cite turan.Citation) string {
	if !cite.IsKnown() {
		return "unknown"
	}
	parts := make([]string, 0, len(cite))
	for _, ref := range cite {
		if ref.IsCitable() {
			parts = append(parts, "\\cite{"+ref.CiteKey()+"}")
		} else {
			parts = append(parts, ref.CiteKey())
		}
	}
	return strings.Join(parts, " ")
}

// WriteTable writes the header, every row of results, and the footer.
func WriteTable(out io.Writer, results []turan.Result, opts turan.PrintOpts) error {
	if err := WriteTableHeader(out, opts); err != nil {
		return err
	}
	for i := range results {
		if err := WriteResult(out, &results[i], opts); err != nil {
			return err
		}
	}
	return WriteTableFooter(out, opts)
}

// CiteBibliography returns the Bibliography of every reference cited by results.
func CiteBibliography(results []turan.Result) *Bibliography {
	bib := NewBibliography()
	for i := range results {
		if results[i].IsKnown() {
			bib.AddCitation(results[i].Cite)
		}
	}
	return bib
}
