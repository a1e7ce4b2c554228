package libturan

import (
	"fmt"
	"io"
	"strings"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/raphaelyuster/turan-inducibility/turan"
)

// Bibliography is the ordered set of references cited by a table.
type Bibliography struct {
	refs *redblacktree.Tree // int(turan.RefKey) => turan.RefKey
}

// NewBibliography returns a Bibliography holding the given references.
func NewBibliography(refs ...turan.RefKey) *Bibliography {
	bib := &Bibliography{
		refs: redblacktree.NewWithIntComparator(),
	}
	for _, ref := range refs {
		bib.Add(ref)
	}
	return bib
}

// FullBibliography returns a Bibliography holding every known reference.
func FullBibliography() *Bibliography {
	bib := NewBibliography()
	for ref := turan.RefKey(0); ref < turan.NumRefs; ref++ {
		bib.Add(ref)
	}
	return bib
}

// Add adds ref if it is valid and not yet present.
func (bib *Bibliography) Add(ref turan.RefKey) {
	if ref.IsValid() {
		bib.refs.Put(int(ref), ref)
	}
}

// AddCitation adds each reference of the given citation.
func (bib *Bibliography) AddCitation(cite turan.Citation) {
	for _, ref := range cite {
		bib.Add(ref)
	}
}

// Len returns the number of references in this Bibliography.
func (bib *Bibliography) Len() int {
	return bib.refs.Size()
}

// Contains returns true if ref has been added.
func (bib *Bibliography) Contains(ref turan.RefKey) bool {
	_, found := bib.refs.Get(int(ref))
	return found
}

// Refs returns the references in ascending index order.
func (bib *Bibliography) Refs() []turan.RefKey {
	refs := make([]turan.RefKey, 0, bib.refs.Size())
	it := bib.refs.Iterator()
	for it.Next() {
		refs = append(refs, it.Value().(turan.RefKey))
	}
	return refs
}

// Lookup resolves a cite key (e.g. "LMR-2023") against this Bibliography.
func (bib *Bibliography) Lookup(citeKey string) (turan.RefKey, bool) {
	ref := turan.RefKeyFromCiteKey(citeKey)
	if ref == turan.Ref_Unknown || !bib.Contains(ref) {
		return turan.Ref_Unknown, false
	}
	return ref, true
}

// WriteReferences writes one line per reference: "[i] entry" or, for LaTeX, "\bibitem{key} entry".
func (bib *Bibliography) WriteReferences(out io.Writer, opts turan.PrintOpts) error {
	buf := strings.Builder{}
	buf.Grow(128 * bib.Len())

	if opts.LaTeX {
		buf.WriteString("\\begin{thebibliography}{9}\n")
	}
	for _, ref := range bib.Refs() {
		if opts.LaTeX {
			fmt.Fprintf(&buf, "\\bibitem{%s} %s\n", ref.CiteKey(), ref.Entry())
		} else {
			fmt.Fprintf(&buf, "[%d] %s\n", int(ref), ref.Entry())
		}
	}
	if opts.LaTeX {
		buf.WriteString("\\end{thebibliography}\n")
	}

	_, err := io.WriteString(out, buf.String())
	return err
}
