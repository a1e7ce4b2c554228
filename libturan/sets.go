package libturan

import (
	"github.com/dgraph-io/badger/v3"
	"github.com/raphaelyuster/turan-inducibility/turan"
)

// ParamsSet allows adding T(s,r) params and returning if a given T(s,r) has already been added.
type ParamsSet interface {

	// TryAdd adds the given T(s,r) if it is not already present.
	//
	// If T already is in this ParamsSet, false is returned and this call has no effect.
	// If T isn't in this ParamsSet, T is added and true is returned.
	//
	// After one or more calls to TryAdd(), be sure to call Close() for cleanup.
	TryAdd(T turan.Params) bool

	// Close removes all previously added items from this set.
	Close()
}

func NewParamsSet() ParamsSet {
	return &paramsSet{}
}

type paramsSet struct {
	lsmSet
}

func (ps *paramsSet) TryAdd(T turan.Params) bool {
	var buf [2]byte
	return ps.tryAdd(T.AppendKey(buf[:0]))
}

type lsmSet struct {
	db *badger.DB
}

func (set *lsmSet) autoOpen() {
	if set.db == nil {
		dbOpts := badger.DefaultOptions("").WithInMemory(true)
		dbOpts.Logger = nil
		dbOpts.MetricsEnabled = false

		var err error
		set.db, err = badger.Open(dbOpts)
		if err != nil {
			panic(err)
		}
	}
}

func (set *lsmSet) tryAdd(key []byte) bool {
	set.autoOpen()

	txn := set.db.NewTransaction(true)
	defer txn.Discard()

	added := false
	_, err := txn.Get(key)
	if err == nil {
		// no-op since the key is already in the db
	} else if err == badger.ErrKeyNotFound {
		if err = txn.Set(key, nil); err == nil {
			err = txn.Commit()
		}
		added = true
	}

	if err != nil {
		panic(err)
	}

	return added
}

func (set *lsmSet) Close() {
	if set.db != nil {
		set.db.Close()
		set.db = nil
	}
}
