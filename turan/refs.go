package turan

import (
	"strings"
)

type refInfo struct {
	CiteKey string
	Entry   string
}

var gRefs = [NumRefs]refInfo{
	Ref_Goodman1959: {"goodman-1959", `Goodman, "On sets of acquaintances and strangers at any party".`},
	Ref_BS1994:      {"BS-1994", `Brown and Sidorenko, "The inducibility of complete bipartite graphs".`},
	Ref_Hirst2014:   {"hirst-2014", `Hirst, "The inducibility of graphs on four vertices".`},
	Ref_LPSS2023:    {"LPSS-2023", `Liu, Pikhurko, Sharifzadeh, Staden, "Stability from graph symmetrisation arguments with applications to inducibility".`},
	Ref_LMR2023:     {"LMR-2023", `Liu, Mubayi, Reiher, "The feasible region of induced graphs".`},
	Ref_PST2019:     {"PST-2019", `Pikhurko, Sliacan, Tyros, "Strong Forms of Stability from Flag Algebra Calculations".`},
	Ref_Here:        {"here", `The author.`},
}

// IsValid returns true if ref is one of the known references (Ref_Unknown is not).
func (ref RefKey) IsValid() bool {
	return ref >= 0 && ref < NumRefs
}

// CiteKey returns the bibtex-style key of this reference, e.g. "BS-1994".
func (ref RefKey) CiteKey() string {
	if !ref.IsValid() {
		return "unknown"
	}
	return gRefs[ref].CiteKey
}

// Entry returns the bibliography line for this reference.
func (ref RefKey) Entry() string {
	if !ref.IsValid() {
		return ""
	}
	return gRefs[ref].Entry
}

// IsCitable returns true if this reference is printed with \cite{} in LaTeX output.
func (ref RefKey) IsCitable() bool {
	return ref.IsValid() && ref != Ref_Here
}

func (ref RefKey) String() string {
	return ref.CiteKey()
}

// RefKeyFromCiteKey resolves a cite key (e.g. "hirst-2014") to its RefKey.
func RefKeyFromCiteKey(citeKey string) RefKey {
	for i, info := range gRefs {
		if info.CiteKey == citeKey {
			return RefKey(i)
		}
	}
	return Ref_Unknown
}

// Cite returns a Citation of the given references.
func Cite(refs ...RefKey) Citation {
	return Citation(refs)
}

// IsKnown returns true if this Citation names at least one valid reference.
func (cite Citation) IsKnown() bool {
	for _, ref := range cite {
		if ref.IsValid() {
			return true
		}
	}
	return false
}

// IsEqual returns true if both citations list the same references in the same order.
func (cite Citation) IsEqual(other Citation) bool {
	if len(cite) != len(other) {
		return false
	}
	for i, ref := range cite {
		if other[i] != ref {
			return false
		}
	}
	return true
}

// String joins the cite keys with a space, e.g. "LPSS-2023 LMR-2023".
func (cite Citation) String() string {
	if !cite.IsKnown() {
		return "unknown"
	}
	keys := make([]string, len(cite))
	for i, ref := range cite {
		keys[i] = ref.CiteKey()
	}
	return strings.Join(keys, " ")
}
