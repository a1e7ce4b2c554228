package libturan

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
	"github.com/raphaelyuster/turan-inducibility/turan"
)

// DefaultGrid is s = 3..14 and, for each s, r = 2..s-1.
const DefaultGrid = "T(3..14, 2..)"

type GridExpr struct {
	Terms []*GridTerm `parser:"@@ (\";\" @@)*"`
}

type GridTerm struct {
	Name string `parser:"@Ident \"(\""`
	S    *Span  `parser:"@@ \",\""`
	R    *Span  `parser:"@@ \")\""`
}

type Span struct {
	Lo    int        `parser:"@Int"`
	Upper *SpanUpper `parser:"@@?"`
}

type SpanUpper struct {
	Dots bool `parser:"@\"..\""`
	Hi   *int `parser:"@Int?"`
}

var sGridLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[A-Za-z]+`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Dots", Pattern: `\.\.`},
	{Name: "Punct", Pattern: `[(),;]`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})

var parseGridExpr = participle.MustBuild[GridExpr](
	participle.Lexer(sGridLexer),
	participle.Elide("Whitespace"),
)

// bounds returns the inclusive range of this Span; an open upper bound is returned as hi = -1.
func (span *Span) bounds() (lo, hi int) {
	lo = span.Lo
	switch {
	case span.Upper == nil:
		hi = lo
	case span.Upper.Hi == nil:
		hi = -1
	default:
		hi = *span.Upper.Hi
	}
	return
}

// ParseGrid expands a grid expression such as "T(3..14, 2..); T(20, 4)" into the T(s,r) it names, in the order written.
//
// An open r span runs up to s-1. Pairs with r > s are skipped, so T(s,s) only appears when a closed r span reaches s.
func ParseGrid(gridExpr string) ([]turan.Params, error) {
	if strings.TrimSpace(gridExpr) == "" {
		return nil, errors.Wrap(turan.ErrBadGridExpr, "empty expression")
	}

	expr, err := parseGridExpr.ParseString("", gridExpr)
	if err != nil {
		return nil, errors.Wrap(turan.ErrBadGridExpr, err.Error())
	}

	var grid []turan.Params
	for ti, term := range expr.Terms {
		if term.Name != "T" {
			return nil, errors.Wrapf(turan.ErrBadGridExpr, "term #%d: expected T(s,r), got %s(...)", ti+1, term.Name)
		}

		sLo, sHi := term.S.bounds()
		if sHi < 0 {
			return nil, errors.Wrapf(turan.ErrBadGridExpr, "term #%d: s span must be closed", ti+1)
		}
		if sLo > sHi {
			return nil, errors.Wrapf(turan.ErrBadGridExpr, "term #%d: empty s span %d..%d", ti+1, sLo, sHi)
		}

		rLo, rHi := term.R.bounds()
		if rHi >= 0 && rLo > rHi {
			return nil, errors.Wrapf(turan.ErrBadGridExpr, "term #%d: empty r span %d..%d", ti+1, rLo, rHi)
		}

		for s := sLo; s <= sHi; s++ {
			hi := rHi
			if hi < 0 {
				hi = s - 1
			} else if hi > s {
				hi = s
			}
			for r := rLo; r <= hi; r++ {
				T := turan.T(s, r)
				if err := T.Validate(); err != nil {
					return nil, errors.Wrapf(err, "term #%d", ti+1)
				}
				grid = append(grid, T)
			}
		}
	}

	return grid, nil
}
