package weavetest

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/iov-one/adminnft"
	"github.com/iov-one/adminnft/store/iavl"
)

// CommitKVStore returns a store backed by the same iavl and leveldb engine as
// the production host. Call cleanup to remove its files.
func CommitKVStore(t testing.TB) (db adminnft.CommitKVStore, cleanup func()) {
	t.Helper()
	dbpath, err := ioutil.TempDir("", "nftstore")
	if err != nil {
		t.Fatalf("cannot create a temporary directory: %s", err)
	}
	db, err = iavl.NewCommitStore(dbpath, "db")
	if err != nil {
		os.RemoveAll(dbpath)
		t.Fatalf("cannot open commit store: %s", err)
	}
	return db, func() { os.RemoveAll(dbpath) }
}
