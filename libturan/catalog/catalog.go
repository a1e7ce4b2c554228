package catalog

import (
	"sync"

	"github.com/dgraph-io/badger/v3"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"github.com/raphaelyuster/turan-inducibility/turan"
)

/***

Catalog format:

	key:   [s, r] (two bytes, so keys sort in (s,r) order)
	value: ResultRecord (gogo/protobuf)

The catalog is memory resident and lives as long as its CatalogContext; nothing is written to disk.
Its purpose is to collect Results arriving from concurrent workers in any order and hand them back in grid order.

***/

// catalog is a badger wrapper holding Results keyed by T(s,r)
type catalog struct {
	ctx        turan.CatalogContext
	opts       turan.CatalogOpts
	mu         sync.Mutex
	db         *badger.DB
	numResults int64
}

// NewCatalog opens an empty memory resident Catalog and attaches it to ctx.
func NewCatalog(ctx turan.CatalogContext, opts turan.CatalogOpts) (turan.Catalog, error) {
	cat := &catalog{
		ctx:  ctx,
		opts: opts,
	}

	dbOpts := badger.DefaultOptions("").WithInMemory(true)
	dbOpts.DetectConflicts = false // not needed so disable for performance
	dbOpts.Logger = nil
	dbOpts.MetricsEnabled = false

	var err error
	cat.db, err = badger.Open(dbOpts)
	if err != nil {
		return nil, errors.Wrapf(err, "opening catalog %q", opts.Label)
	}

	// Once the db is open, we consider the catalog ctx blocked until the catalog closes
	ctx.AttachCatalog(cat)
	return cat, nil
}

func (cat *catalog) NumResults() int64 {
	cat.mu.Lock()
	defer cat.mu.Unlock()
	return cat.numResults
}

func (cat *catalog) TryAddResult(X turan.Result) bool {
	cat.mu.Lock()
	defer cat.mu.Unlock()

	if cat.db == nil {
		klog.Warningf("catalog %q: %v: dropping %v", cat.opts.Label, turan.ErrCatalogClosed, X.Params)
		return false
	}

	val, err := MarshalResult(&X)
	if err != nil {
		klog.Errorf("catalog %q: %v: %v", cat.opts.Label, X.Params, err)
		return false
	}

	var keyBuf [2]byte
	key := X.Params.AppendKey(keyBuf[:0])

	added := false
	err = cat.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		if err == nil {
			return nil
		}
		if err != badger.ErrKeyNotFound {
			return err
		}
		added = true
		return txn.Set(key, val)
	})
	if err != nil {
		klog.Errorf("catalog %q: %v: %v", cat.opts.Label, X.Params, err)
		return false
	}

	if added {
		cat.numResults++
	}
	return added
}

func (cat *catalog) Select(sel turan.ResultSelector, onHit turan.OnResultHit) {
	cat.mu.Lock()
	db := cat.db
	cat.mu.Unlock()
	if db == nil {
		return
	}

	var startKey [2]byte
	sel.Min.AppendKey(startKey[:0])

	err := db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(startKey[:]); it.Valid(); it.Next() {
			item := it.Item()
			T, err := turan.ParamsFromKey(item.Key())
			if err != nil {
				return err
			}
			if T.S > sel.Max.S {
				break
			}

			var X turan.Result
			err = item.Value(func(val []byte) error {
				X, err = UnmarshalResult(val)
				return err
			})
			if err != nil {
				return err
			}
			if sel.SelectsResult(&X) {
				onHit <- X
			}
		}
		return nil
	})
	if err != nil {
		klog.Errorf("catalog %q: select: %v", cat.opts.Label, err)
	}
}

func (cat *catalog) Close() error {
	cat.mu.Lock()
	db := cat.db
	cat.db = nil
	cat.mu.Unlock()

	if db == nil {
		return nil
	}
	err := db.Close()
	cat.ctx.DetachCatalog(cat)
	return err
}
