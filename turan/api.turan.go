package turan

import (
	"math/big"
)

const (

	// UnknownL is the value of Result.L when no l could be determined for a given T(s,r).
	UnknownL = -1

	// MaxS is the largest vertex count a grid or catalog key can carry.
	MaxS = 255
)

// Params identifies the Turán graph T(s,r): the complete r-partite graph on s vertices with parts as balanced as possible.
type Params struct {
	S int // number of vertices
	R int // number of parts
}

// T returns the Params for T(s,r).
func T(s, r int) Params {
	return Params{S: s, R: r}
}

type Status int32

const (
	Status_Unknown  Status = 0 // no l is known for this T(s,r); Num and Den are nil
	Status_Complete Status = 1 // l, Num, Den, and Cite are set
	Status_Trivial  Status = 2 // r == s, so T(s,r) is complete and its inducibility is 1
)

// Result is the inducibility of a T(s,r) as an exact fraction Num/Den in lowest terms.
//
// A Result is built once and never mutated; Num and Den must be treated as read-only.
type Result struct {
	Params
	Status Status
	L      int      // number of parts of the extremal balanced complete l-partite construction (UnknownL if unknown)
	Num    *big.Int // numerator (nil if Status_Unknown)
	Den    *big.Int // denominator (nil if Status_Unknown)
	Cite   Citation // references justifying L
}

// RefKey identifies a published (or unpublished) result that justifies a given l.
type RefKey int32

const (
	Ref_Unknown     RefKey = -1
	Ref_Goodman1959 RefKey = 0 // [0] Goodman, "On sets of acquaintances and strangers at any party"
	Ref_BS1994      RefKey = 1 // [1] Brown and Sidorenko, "The inducibility of complete bipartite graphs"
	Ref_Hirst2014   RefKey = 2 // [2] Hirst, "The inducibility of graphs on four vertices"
	Ref_LPSS2023    RefKey = 3 // [3] Liu, Pikhurko, Sharifzadeh, Staden
	Ref_LMR2023     RefKey = 4 // [4] Liu, Mubayi, Reiher
	Ref_PST2019     RefKey = 5 // [5] Pikhurko, Sliacan, Tyros
	Ref_Here        RefKey = 6 // [6] the author's own derivation

	NumRefs = 7
)

// Citation is an ordered list of references that jointly justify a Result.
// An empty Citation means no reference is known.
type Citation []RefKey

// ComputeOpts specifies how a Result is computed.
type ComputeOpts struct {
	ExactInequalities bool // if set, the Brown–Sidorenko condition and f(l) are decided with big.Rat rather than float64
	Workers           int  // number of concurrent compute workers in a ResultStream (0 denotes runtime.NumCPU())
}

// DefaultComputeOpts reproduces the float64 decisions of the published tables.
var DefaultComputeOpts = ComputeOpts{}

// PrintOpts specifies how a Result row is printed
type PrintOpts struct {
	Label  string // Prefix label
	LaTeX  bool   // If set, rows are LaTeX tabular rows; otherwise plain text
	ShowPQ bool   // If set, plain rows include (p,q)
}

// DefaultPrintOpts{}
var DefaultPrintOpts = PrintOpts{
	ShowPQ: true,
}

// ResultSelector selects Results from a Catalog or ResultStream.
type ResultSelector struct {
	Min         Params // lower select bounds (inclusive)
	Max         Params // upper select bounds (inclusive)
	KnownOnly   bool   // Only select Results with a known l
	CitedOnly   bool   // Only select Results with a known l and a known citation
	SkipTrivial bool   // Drop r == s rows
}

// DefaultResultSelector selects every Result.
var DefaultResultSelector = ResultSelector{
	Min: Params{S: 0, R: 0},
	Max: Params{S: MaxS, R: MaxS},
}

// OnResultHit is a callback channel used to return Results meeting a set of selection criteria.
type OnResultHit chan<- Result

// ResultAdder accepts Results.
type ResultAdder interface {

	// Tries to add the given Result.
	// If true is returned, no Result for X.Params existed and X was added.
	TryAddResult(X Result) bool
}

// Catalog is an ordered, memory resident table of Results keyed by T(s,r).
type Catalog interface {
	ResultAdder

	// NumResults returns the number of Results in this catalog.
	NumResults() int64

	// Select fires the given callback with each Result that meets the selection criteria, in ascending (s,r) order.
	Select(sel ResultSelector, onHit OnResultHit)

	Close() error
}

// CatalogOpts specifies params for opening a Catalog
type CatalogOpts struct {
	Label string // used only for logging
}

// CatalogContext is a container for open / active Catalog instances.
type CatalogContext interface {

	// Attaches the given Catalog to this context.
	AttachCatalog(cat Catalog)

	// Detaches the given Catalog from this context.
	DetachCatalog(cat Catalog)

	// Closes all open catalogs then closes.
	Close()

	// Signals when Close() completed and all open Catalogs have been closed
	Done() <-chan struct{}
}
