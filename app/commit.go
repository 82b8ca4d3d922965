package app

import (
	"github.com/iov-one/adminnft"
	"github.com/iov-one/adminnft/errors"
)

// CommitStore handles loading from a CommitKVStore, maintaining different
// cache wraps for Deliver and Check, and returning useful state info.
type CommitStore struct {
	committed adminnft.CommitKVStore
	deliver   adminnft.KVCacheWrap
	check     adminnft.KVCacheWrap
}

// NewCommitStore loads the latest persisted version of the store and sets
// up the deliver and check caches on top of it.
func NewCommitStore(db adminnft.CommitKVStore) (*CommitStore, error) {
	if err := db.LoadLatestVersion(); err != nil {
		return nil, errors.Wrap(err, "load latest version")
	}
	return &CommitStore{
		committed: db,
		deliver:   db.CacheWrap(),
		check:     db.CacheWrap(),
	}, nil
}

// CommitInfo returns the current height and hash.
func (cs *CommitStore) CommitInfo() (adminnft.CommitID, error) {
	return cs.committed.LatestVersion()
}

// Commit will flush deliver to the underlying store and commit it to disk.
// It then regenerates new deliver and check caches.
//
// Changes made to the check cache are dropped.
func (cs *CommitStore) Commit() (adminnft.CommitID, error) {
	if err := cs.deliver.Write(); err != nil {
		return adminnft.CommitID{}, errors.Wrap(err, "write deliver cache")
	}
	cs.check.Discard()

	res, err := cs.committed.Commit()
	if err != nil {
		return res, err
	}

	cs.deliver = cs.committed.CacheWrap()
	cs.check = cs.committed.CacheWrap()
	return res, nil
}

// CheckStore returns a store implementation that must be used during the
// checking phase.
func (cs *CommitStore) CheckStore() adminnft.CacheableKVStore {
	return cs.check
}

// DeliverStore returns a store implementation that must be used during the
// delivery phase.
func (cs *CommitStore) DeliverStore() adminnft.CacheableKVStore {
	return cs.deliver
}

// CommittedStore returns a read only view of the last committed state.
func (cs *CommitStore) CommittedStore() adminnft.ReadOnlyKVStore {
	return cs.committed.CacheWrap()
}
