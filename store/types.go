package store

import "github.com/iov-one/adminnft"

// Aliases of the storage interfaces, so that implementations in this package
// can use the short names.
type (
	ReadOnlyKVStore  = adminnft.ReadOnlyKVStore
	SetDeleter       = adminnft.SetDeleter
	KVStore          = adminnft.KVStore
	Batch            = adminnft.Batch
	Iterator         = adminnft.Iterator
	CacheableKVStore = adminnft.CacheableKVStore
	KVCacheWrap      = adminnft.KVCacheWrap
	CommitKVStore    = adminnft.CommitKVStore
	CommitID         = adminnft.CommitID
	Model            = adminnft.Model
)

// Pair constructs a model from a key-value pair.
var Pair = adminnft.Pair
