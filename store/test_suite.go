package store

import (
	"testing"

	"github.com/iov-one/adminnft/errors"
	"github.com/iov-one/adminnft/weavetest/assert"
)

// TestSuite groups KVStore checks that are shared by every implementation,
// so that the in-memory and the iavl backed stores are tested the same way.
type TestSuite struct {
	makeBase TestStoreConstructor
}

// TestStoreConstructor returns a new, empty store and its cleanup function.
type TestStoreConstructor func() (base CacheableKVStore, cleanup func())

func NewTestSuite(constructor TestStoreConstructor) *TestSuite {
	return &TestSuite{makeBase: constructor}
}

// GetSet checks that cached writes are visible only after Write and are
// dropped on Discard.
func (s *TestSuite) GetSet(t *testing.T) {
	base, cleanup := s.makeBase()
	defer cleanup()

	k, v := []byte("registry"), []byte("admin")
	AssertGetHas(t, base, k, nil, false)
	assert.Nil(t, base.Set(k, v))
	AssertGetHas(t, base, k, v, true)

	cache := base.CacheWrap()
	AssertGetHas(t, cache, k, v, true)

	k2, v2 := []byte("token"), []byte("owner")
	assert.Nil(t, cache.Set(k2, v2))
	AssertGetHas(t, cache, k2, v2, true)
	AssertGetHas(t, base, k2, nil, false)

	assert.Nil(t, cache.Write())
	AssertGetHas(t, base, k, v, true)
	AssertGetHas(t, base, k2, v2, true)

	k3, v3 := []byte("pool"), []byte("coins")
	discarded := base.CacheWrap()
	assert.Nil(t, discarded.Set(k3, v3))
	discarded.Discard()
	AssertGetHas(t, base, k3, nil, false)

	deleting := base.CacheWrap()
	assert.Nil(t, deleting.Delete(k))
	AssertGetHas(t, deleting, k, nil, false)
	AssertGetHas(t, base, k, v, true)
	assert.Nil(t, deleting.Write())
	AssertGetHas(t, base, k, nil, false)
	AssertGetHas(t, base, k2, v2, true)
}

// CacheConflicts checks overwriting and deleting values of the parent from
// within a cache.
func (s *TestSuite) CacheConflicts(t *testing.T) {
	base, cleanup := s.makeBase()
	defer cleanup()

	ks := [][]byte{[]byte("a"), []byte("b"), []byte("c")}
	assert.Nil(t, SetOp(ks[0], []byte("1")).Apply(base))
	assert.Nil(t, SetOp(ks[1], []byte("2")).Apply(base))

	child := base.CacheWrap()
	assert.Nil(t, SetOp(ks[0], []byte("11")).Apply(child))
	assert.Nil(t, DelOp(ks[1]).Apply(child))
	assert.Nil(t, SetOp(ks[2], []byte("3")).Apply(child))

	AssertGetHas(t, base, ks[0], []byte("1"), true)
	AssertGetHas(t, base, ks[1], []byte("2"), true)
	AssertGetHas(t, base, ks[2], nil, false)
	AssertGetHas(t, child, ks[0], []byte("11"), true)
	AssertGetHas(t, child, ks[1], nil, false)
	AssertGetHas(t, child, ks[2], []byte("3"), true)

	assert.Nil(t, child.Write())
	AssertGetHas(t, base, ks[0], []byte("11"), true)
	AssertGetHas(t, base, ks[1], nil, false)
	AssertGetHas(t, base, ks[2], []byte("3"), true)
}

// Iteration checks that iterating a cache merges the cached and the parent
// values in both directions.
func (s *TestSuite) Iteration(t *testing.T) {
	base, cleanup := s.makeBase()
	defer cleanup()

	for _, k := range []string{"k1", "k3", "k5", "k7"} {
		assert.Nil(t, base.Set([]byte(k), []byte("base-"+k)))
	}

	cache := base.CacheWrap()
	assert.Nil(t, cache.Set([]byte("k2"), []byte("cache-k2")))
	assert.Nil(t, cache.Set([]byte("k5"), []byte("cache-k5")))
	assert.Nil(t, cache.Delete([]byte("k3")))
	assert.Nil(t, cache.Set([]byte("k9"), []byte("cache-k9")))

	all := []Model{
		Pair([]byte("k1"), []byte("base-k1")),
		Pair([]byte("k2"), []byte("cache-k2")),
		Pair([]byte("k5"), []byte("cache-k5")),
		Pair([]byte("k7"), []byte("base-k7")),
		Pair([]byte("k9"), []byte("cache-k9")),
	}

	it, err := cache.Iterator(nil, nil)
	assert.Nil(t, err)
	assert.Equal(t, all, ConsumeIterator(t, it))

	it, err = cache.Iterator([]byte("k2"), []byte("k7"))
	assert.Nil(t, err)
	assert.Equal(t, all[1:3], ConsumeIterator(t, it))

	it, err = cache.ReverseIterator(nil, nil)
	assert.Nil(t, err)
	assert.Equal(t, reversed(all), ConsumeIterator(t, it))

	it, err = cache.ReverseIterator([]byte("k2"), nil)
	assert.Nil(t, err)
	assert.Equal(t, reversed(all[1:]), ConsumeIterator(t, it))
}

// AssertGetHas ensures the store returns the expected value for the key.
func AssertGetHas(t testing.TB, kv ReadOnlyKVStore, key, val []byte, has bool) {
	t.Helper()
	got, err := kv.Get(key)
	assert.Nil(t, err)
	assert.Equal(t, val, got)
	exists, err := kv.Has(key)
	assert.Nil(t, err)
	assert.Equal(t, has, exists)
}

// ConsumeIterator reads all models from the iterator and releases it.
func ConsumeIterator(t testing.TB, it Iterator) []Model {
	t.Helper()
	defer it.Release()

	var res []Model
	for {
		k, v, err := it.Next()
		if errors.ErrIteratorDone.Is(err) {
			return res
		}
		assert.Nil(t, err)
		res = append(res, Pair(k, v))
	}
}

func reversed(ms []Model) []Model {
	res := make([]Model, 0, len(ms))
	for i := len(ms) - 1; i >= 0; i-- {
		res = append(res, ms[i])
	}
	return res
}
