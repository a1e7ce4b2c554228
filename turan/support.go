package turan

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/pkg/errors"
)

// PQ returns p = floor(s/r), the base part size, and q = s mod r, the number of parts of size p+1.
func (T Params) PQ() (p, q int) {
	return T.S / T.R, T.S % T.R
}

// IsTrivial returns true if T(s,r) is the complete graph K_s (r == s).
func (T Params) IsTrivial() bool {
	return T.R == T.S
}

// Validate checks 3 <= s <= MaxS and 2 <= r <= s.
func (T Params) Validate() error {
	if T.S < 3 || T.S > MaxS {
		return errors.Wrapf(ErrBadParams, "%v: s must be in 3..%d", T, MaxS)
	}
	if T.R < 2 || T.R > T.S {
		return errors.Wrapf(ErrBadParams, "%v: r must be in 2..s", T)
	}
	return nil
}

func (T Params) String() string {
	return fmt.Sprintf("T(%d,%d)", T.S, T.R)
}

// AppendKey appends the two byte catalog key of T, which sorts in (s,r) order.
func (T Params) AppendKey(dst []byte) []byte {
	return append(dst, byte(T.S), byte(T.R))
}

// ParamsFromKey is the inverse of AppendKey.
func ParamsFromKey(key []byte) (Params, error) {
	if len(key) != 2 {
		return Params{}, errors.Wrapf(ErrUnmarshal, "bad key length %d", len(key))
	}
	return Params{S: int(key[0]), R: int(key[1])}, nil
}

// Compare returns <0, 0, or >0 as T sorts before, equal to, or after other in (s,r) order.
func (T Params) Compare(other Params) int {
	if d := T.S - other.S; d != 0 {
		return d
	}
	return T.R - other.R
}

// IsKnown returns true if this Result carries an l and a fraction.
func (X *Result) IsKnown() bool {
	return X.Status != Status_Unknown
}

// Ratio returns Num/Den as a big.Rat, or nil if l is unknown.
func (X *Result) Ratio() *big.Rat {
	if !X.IsKnown() {
		return nil
	}
	return new(big.Rat).SetFrac(X.Num, X.Den)
}

// IsEqual returns true if X and Y are identical in every field.
func (X *Result) IsEqual(Y *Result) bool {
	if X.Params != Y.Params || X.Status != Y.Status || X.L != Y.L {
		return false
	}
	if !X.Cite.IsEqual(Y.Cite) {
		return false
	}
	return bigEqual(X.Num, Y.Num) && bigEqual(X.Den, Y.Den)
}

func bigEqual(a, b *big.Int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Cmp(b) == 0
}

// UnknownResult returns the Result reported when no l is known for T.
func UnknownResult(T Params) Result {
	return Result{
		Params: T,
		Status: Status_Unknown,
		L:      UnknownL,
	}
}

// TrivialResult returns the Result for T(s,s) = K_s, whose inducibility is 1.
func TrivialResult(T Params) Result {
	return Result{
		Params: T,
		Status: Status_Trivial,
		L:      T.S,
		Num:    big.NewInt(1),
		Den:    big.NewInt(1),
	}
}

// SelectsResult is a convenience function used to see if a Result is selected according to a ResultSelector.
func (sel *ResultSelector) SelectsResult(X *Result) bool {
	if X.S < sel.Min.S || X.R < sel.Min.R || X.S > sel.Max.S || X.R > sel.Max.R {
		return false
	}
	if sel.SkipTrivial && X.Status == Status_Trivial {
		return false
	}
	if sel.KnownOnly && !X.IsKnown() {
		return false
	}
	if sel.CitedOnly && (!X.IsKnown() || !X.Cite.IsKnown()) {
		return false
	}
	return true
}

func NewCatalogContext() CatalogContext {
	ctx := &catalogContext{
		openCatalogs: make(map[Catalog]struct{}),
		closing:      make(chan struct{}),
		closed:       make(chan struct{}),
	}
	ctx.openCount.Add(1)
	go func() {
		<-ctx.closing
		ctx.openCount.Done()
		ctx.openCount.Wait()
		close(ctx.closed)
	}()
	return ctx
}

type catalogContext struct {
	mu           sync.Mutex
	openCount    sync.WaitGroup
	openCatalogs map[Catalog]struct{}
	closing      chan struct{}
	closed       chan struct{}
}

func (ctx *catalogContext) AttachCatalog(cat Catalog) {
	ctx.openCount.Add(1)
	ctx.mu.Lock()
	ctx.openCatalogs[cat] = struct{}{}
	ctx.mu.Unlock()
}

func (ctx *catalogContext) DetachCatalog(cat Catalog) {
	ctx.mu.Lock()
	if _, exists := ctx.openCatalogs[cat]; exists {
		delete(ctx.openCatalogs, cat)
		ctx.openCount.Done()
	}
	ctx.mu.Unlock()
}

func (ctx *catalogContext) Done() <-chan struct{} {
	return ctx.closed
}

func (ctx *catalogContext) Close() {
	close(ctx.closing)
	ctx.mu.Lock()
	for cat := range ctx.openCatalogs {
		go cat.Close()
	}
	ctx.mu.Unlock()
}
