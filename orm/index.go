package orm

import (
	"bytes"

	"github.com/iov-one/adminnft"
	"github.com/iov-one/adminnft/errors"
)

// Index is a secondary index over the objects of a bucket.
type Index interface {
	adminnft.QueryHandler

	// Name returns the name of this index.
	Name() string

	// Update updates the index. It must be called whenever an entity of
	// the bucket changes.
	//
	// prev == nil means insert
	// save == nil means delete
	// both == nil is an error
	// if both != nil and prev.Key() != save.Key() this is an error
	Update(db adminnft.KVStore, prev Object, save Object) error

	// Keys returns all primary keys indexed under given value, in
	// ascending order.
	Keys(db adminnft.ReadOnlyKVStore, value []byte) ([][]byte, error)
}

const indexPrefix = "_i."

// Indexer calculates the secondary index key for a given object. Returning
// a nil key excludes the object from the index.
type Indexer func(Object) ([]byte, error)

// index stores all primary keys under a single key per indexed value. A
// unique index stores the primary key directly. A non-unique index stores a
// MultiRef, so it should only be used for small collections.
type index struct {
	name   string
	id     []byte
	unique bool
	index  Indexer
	refKey func([]byte) []byte
}

var _ Index = index{}

// NewIndex constructs an index.
//
// indexer calculates the index value for an object, unique enforces a unique
// constraint on the index and refKey calculates the absolute db key for a
// primary key.
func NewIndex(name string, indexer Indexer, unique bool, refKey func([]byte) []byte) Index {
	return index{
		name:   name,
		id:     append([]byte(indexPrefix), []byte(name+":")...),
		index:  indexer,
		unique: unique,
		refKey: refKey,
	}
}

func (i index) Name() string {
	return i.name
}

func (i index) indexKey(key []byte) []byte {
	l := len(i.id)
	out := make([]byte, l+len(key))
	copy(out, i.id)
	copy(out[l:], key)
	return out
}

func (i index) Update(db adminnft.KVStore, prev Object, save Object) error {
	switch {
	case prev == nil && save == nil:
		return errors.Wrap(errors.ErrHuman, "update requires at least one non-nil object")
	case prev == nil:
		key, err := i.index(save)
		if err != nil {
			return err
		}
		return i.insert(db, key, save.Key())
	case save == nil:
		key, err := i.index(prev)
		if err != nil {
			return err
		}
		return i.remove(db, key, prev.Key())
	default:
		return i.move(db, prev, save)
	}
}

func (i index) move(db adminnft.KVStore, prev Object, save Object) error {
	if !bytes.Equal(prev.Key(), save.Key()) {
		return errors.Wrap(errors.ErrImmutable, "cannot modify the primary key of an object")
	}
	oldKey, err := i.index(prev)
	if err != nil {
		return err
	}
	newKey, err := i.index(save)
	if err != nil {
		return err
	}
	if bytes.Equal(oldKey, newKey) {
		return nil
	}
	if err := i.remove(db, oldKey, prev.Key()); err != nil {
		return err
	}
	return i.insert(db, newKey, save.Key())
}

func (i index) insert(db adminnft.KVStore, key []byte, pk []byte) error {
	if key == nil {
		return nil
	}
	dbkey := i.indexKey(key)
	cur, err := db.Get(dbkey)
	if err != nil {
		return err
	}

	if i.unique {
		if cur != nil {
			return errors.Wrapf(errors.ErrDuplicate, "unique index %s", i.name)
		}
		return db.Set(dbkey, pk)
	}

	var refs MultiRef
	if cur != nil {
		if err := refs.Unmarshal(cur); err != nil {
			return err
		}
	}
	if err := refs.Add(pk); err != nil {
		return errors.Wrapf(err, "index %s", i.name)
	}
	bz, err := refs.Marshal()
	if err != nil {
		return err
	}
	return db.Set(dbkey, bz)
}

func (i index) remove(db adminnft.KVStore, key []byte, pk []byte) error {
	if key == nil {
		return nil
	}
	dbkey := i.indexKey(key)
	cur, err := db.Get(dbkey)
	if err != nil {
		return err
	}
	if cur == nil {
		return errors.Wrapf(errors.ErrNotFound, "index %s has no value", i.name)
	}

	if i.unique {
		if !bytes.Equal(cur, pk) {
			return errors.Wrapf(errors.ErrState, "index %s points to another key", i.name)
		}
		return db.Delete(dbkey)
	}

	var refs MultiRef
	if err := refs.Unmarshal(cur); err != nil {
		return err
	}
	if err := refs.Remove(pk); err != nil {
		return errors.Wrapf(err, "index %s", i.name)
	}
	if len(refs.Refs) == 0 {
		return db.Delete(dbkey)
	}
	bz, err := refs.Marshal()
	if err != nil {
		return err
	}
	return db.Set(dbkey, bz)
}

func (i index) Keys(db adminnft.ReadOnlyKVStore, value []byte) ([][]byte, error) {
	cur, err := db.Get(i.indexKey(value))
	if err != nil {
		return nil, err
	}
	if cur == nil {
		return nil, nil
	}
	if i.unique {
		return [][]byte{cur}, nil
	}
	var refs MultiRef
	if err := refs.Unmarshal(cur); err != nil {
		return nil, err
	}
	return refs.Refs, nil
}

// Query returns the indexed objects. With the key mod the data is the exact
// index value, with the prefix mod all values starting with data match.
func (i index) Query(db adminnft.ReadOnlyKVStore, mod string, data []byte) ([]adminnft.Model, error) {
	switch mod {
	case adminnft.KeyQueryMod:
		refs, err := i.Keys(db, data)
		if err != nil {
			return nil, err
		}
		return i.loadRefs(db, refs)
	case adminnft.PrefixQueryMod:
		prefix := i.indexKey(data)
		entries, err := queryPrefix(db, prefix)
		if err != nil {
			return nil, err
		}
		var refs [][]byte
		for _, e := range entries {
			keys, err := i.Keys(db, e.Key[len(i.id):])
			if err != nil {
				return nil, err
			}
			refs = append(refs, keys...)
		}
		return i.loadRefs(db, refs)
	default:
		return nil, errors.Wrapf(errors.ErrInput, "unknown mod: %s", mod)
	}
}

func (i index) loadRefs(db adminnft.ReadOnlyKVStore, refs [][]byte) ([]adminnft.Model, error) {
	var res []adminnft.Model
	for _, ref := range refs {
		key := i.refKey(ref)
		value, err := db.Get(key)
		if err != nil {
			return nil, err
		}
		if value == nil {
			return nil, errors.Wrapf(errors.ErrState, "indexed key %X not found", ref)
		}
		res = append(res, adminnft.Pair(key, value))
	}
	return res, nil
}
