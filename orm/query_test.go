package orm

import (
	"testing"

	"github.com/iov-one/adminnft"
	"github.com/iov-one/adminnft/errors"
	"github.com/iov-one/adminnft/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawQuery(t *testing.T) {
	db := store.MemStore()
	require.NoError(t, db.Set([]byte("foo:1"), []byte("one")))
	require.NoError(t, db.Set([]byte("foo:2"), []byte("two")))
	require.NoError(t, db.Set([]byte("bar:1"), []byte("three")))

	qr := adminnft.NewQueryRouter()
	RegisterQuery(qr)
	h := qr.Handler("/")
	require.NotNil(t, h)

	res, err := h.Query(db, adminnft.KeyQueryMod, []byte("foo:2"))
	require.NoError(t, err)
	assert.Equal(t, []adminnft.Model{adminnft.Pair([]byte("foo:2"), []byte("two"))}, res)

	res, err = h.Query(db, adminnft.KeyQueryMod, []byte("foo:3"))
	require.NoError(t, err)
	assert.Empty(t, res)

	res, err = h.Query(db, adminnft.PrefixQueryMod, []byte("foo:"))
	require.NoError(t, err)
	assert.Len(t, res, 2)

	res, err = h.Query(db, adminnft.PrefixQueryMod, nil)
	require.NoError(t, err)
	assert.Len(t, res, 3)

	_, err = h.Query(db, "range", nil)
	assert.True(t, errors.ErrInput.Is(err))
}
