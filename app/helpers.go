package app

import (
	"github.com/iov-one/adminnft"
	"github.com/iov-one/adminnft/errors"
	"github.com/iov-one/adminnft/store"
	abci "github.com/tendermint/tendermint/abci/types"
)

// ABCIStore exposes the abci.Query interface as a ReadOnlyKVStore, so that
// buckets can be read from outside of the application.
type ABCIStore struct {
	app abci.Application
}

var _ adminnft.ReadOnlyKVStore = (*ABCIStore)(nil)

// NewABCIStore returns a store that queries given application.
func NewABCIStore(app abci.Application) *ABCIStore {
	return &ABCIStore{app: app}
}

// Get will query for exactly one value over the abci store.
func (a *ABCIStore) Get(key []byte) ([]byte, error) {
	query := a.app.Query(abci.RequestQuery{
		Path: "/",
		Data: key,
	})
	if query.Code != 0 {
		return nil, errors.Wrapf(errors.ErrDatabase, "query failed (%d): %s", query.Code, query.Log)
	}
	var value ResultSet
	if err := value.Unmarshal(query.Value); err != nil {
		return nil, errors.Wrap(err, "unmarshal result set")
	}
	switch len(value.Results) {
	case 0:
		return nil, nil
	case 1:
		return value.Results[0], nil
	default:
		return nil, errors.Wrapf(errors.ErrState, "%d results for a key query", len(value.Results))
	}
}

// Has returns true if the given key is in the abci app store.
func (a *ABCIStore) Has(key []byte) (bool, error) {
	val, err := a.Get(key)
	return len(val) > 0, err
}

// Iterator lists the entire store. Only prefix queries are supported by the
// host, so no other range can be served.
func (a *ABCIStore) Iterator(start, end []byte) (adminnft.Iterator, error) {
	if start != nil || end != nil {
		return nil, errors.Wrap(errors.ErrInput, "iterator only implemented for entire range")
	}
	query := a.app.Query(abci.RequestQuery{
		Path: "/?" + adminnft.PrefixQueryMod,
	})
	if query.Code != 0 {
		return nil, errors.Wrapf(errors.ErrDatabase, "query failed (%d): %s", query.Code, query.Log)
	}
	models, err := toModels(query.Key, query.Value)
	if err != nil {
		return nil, errors.Wrap(err, "cannot convert to model")
	}
	return store.NewSliceIterator(models), nil
}

// ReverseIterator is not supported.
func (a *ABCIStore) ReverseIterator(start, end []byte) (adminnft.Iterator, error) {
	return nil, errors.Wrap(errors.ErrHuman, "reverse iterator not implemented")
}

func toModels(keys, values []byte) ([]adminnft.Model, error) {
	var k, v ResultSet
	if err := k.Unmarshal(keys); err != nil {
		return nil, errors.Wrap(err, "cannot unmarshal keys")
	}
	if err := v.Unmarshal(values); err != nil {
		return nil, errors.Wrap(err, "cannot unmarshal values")
	}
	return JoinResults(&k, &v)
}
