package orm

import (
	"github.com/iov-one/adminnft"
	"github.com/iov-one/adminnft/errors"
)

// queryPrefix returns all models whose key starts with prefix.
func queryPrefix(db adminnft.ReadOnlyKVStore, prefix []byte) ([]adminnft.Model, error) {
	it, err := db.Iterator(prefix, prefixRange(prefix))
	if err != nil {
		return nil, err
	}
	return consumeIterator(it)
}

// consumeIterator reads all remaining data into a slice and releases the
// iterator.
func consumeIterator(it adminnft.Iterator) ([]adminnft.Model, error) {
	defer it.Release()

	var res []adminnft.Model
	for {
		key, value, err := it.Next()
		if err != nil {
			if errors.ErrIteratorDone.Is(err) {
				return res, nil
			}
			return nil, err
		}
		res = append(res, adminnft.Pair(key, value))
	}
}

// prefixRange returns the exclusive end of the range of all keys starting
// with prefix. It returns nil (unbounded) if no such key exists.
func prefixRange(prefix []byte) []byte {
	end := make([]byte, len(prefix))
	copy(end, prefix)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return end[:i+1]
		}
	}
	return nil
}

// RegisterQuery exposes the whole store under "/", for clients that know the
// full database key of what they look for.
func RegisterQuery(qr adminnft.QueryRouter) {
	qr.Register("/", rawQuery{})
}

type rawQuery struct{}

func (rawQuery) Query(db adminnft.ReadOnlyKVStore, mod string, data []byte) ([]adminnft.Model, error) {
	switch mod {
	case adminnft.KeyQueryMod:
		value, err := db.Get(data)
		if err != nil {
			return nil, err
		}
		if value == nil {
			return nil, nil
		}
		return []adminnft.Model{adminnft.Pair(data, value)}, nil
	case adminnft.PrefixQueryMod:
		return queryPrefix(db, data)
	default:
		return nil, errors.Wrapf(errors.ErrInput, "unknown mod: %s", mod)
	}
}
