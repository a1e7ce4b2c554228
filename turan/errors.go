package turan

import "errors"

// Errors
var (
	ErrBadParams     = errors.New("bad T(s,r) params")
	ErrBadGridExpr   = errors.New("bad grid expression")
	ErrUnmarshal     = errors.New("unmarshal failed")
	ErrCatalogClosed = errors.New("catalog is closed")
	ErrBadRefKey     = errors.New("bad reference key")
)
