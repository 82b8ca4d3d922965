package iavl

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/iov-one/adminnft/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeBase() (store.CacheableKVStore, func()) {
	return MockCommitStore().Adapter(), func() {}
}

func TestIavlAdapter(t *testing.T) {
	suite := store.NewTestSuite(makeBase)
	t.Run("get set", suite.GetSet)
	t.Run("cache conflicts", suite.CacheConflicts)
	t.Run("iteration", suite.Iteration)
}

func TestCommitOnlyExposesSavedState(t *testing.T) {
	commit := MockCommitStore()

	cache := commit.CacheWrap()
	require.NoError(t, cache.Set([]byte("registry"), []byte("admin")))
	require.NoError(t, cache.Write())

	got, err := commit.Get([]byte("registry"))
	require.NoError(t, err)
	assert.Nil(t, got, "value visible before commit")

	id, err := commit.Commit()
	require.NoError(t, err)
	assert.EqualValues(t, 1, id.Version)
	assert.NotEmpty(t, id.Hash)

	got, err = commit.Get([]byte("registry"))
	require.NoError(t, err)
	assert.Equal(t, []byte("admin"), got)

	latest, err := commit.LatestVersion()
	require.NoError(t, err)
	assert.Equal(t, id, latest)
}

func TestCommitStoreReload(t *testing.T) {
	dir, err := ioutil.TempDir("", "iavl-commit-")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	commit, err := NewCommitStore(dir, "reload")
	require.NoError(t, err)

	cache := commit.CacheWrap()
	require.NoError(t, cache.Set([]byte("token"), []byte("owner")))
	require.NoError(t, cache.Write())
	first, err := commit.Commit()
	require.NoError(t, err)

	// A second commit store on the same files would lock the database,
	// so only the version info is compared here.
	latest, err := commit.LatestVersion()
	require.NoError(t, err)
	assert.Equal(t, first.Version, latest.Version)
	assert.Equal(t, first.Hash, latest.Hash)
}
