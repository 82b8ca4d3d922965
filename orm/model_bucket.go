package orm

import (
	"reflect"

	"github.com/iov-one/adminnft"
	"github.com/iov-one/adminnft/errors"
)

// ModelBucket is implemented by buckets that operate on Models rather than
// Objects.
type ModelBucket interface {
	// One queries the database for a single model instance. Lookup is
	// done by the primary index key. Result is loaded into given
	// destination model.
	// This method returns ErrNotFound if the entity does not exist in the
	// database.
	// If given model type cannot be used to contain stored entity, ErrType
	// is returned.
	One(db adminnft.ReadOnlyKVStore, key []byte, dest Model) error

	// Has returns nil if an entity with given primary key value exists. It
	// returns ErrNotFound if no entity can be found.
	Has(db adminnft.ReadOnlyKVStore, key []byte) error

	// ByIndex returns all keys and models indexed under given value.
	// Destination must be a pointer to a slice of models, or to a slice
	// of pointers to models.
	ByIndex(db adminnft.ReadOnlyKVStore, indexName string, value []byte, dest interface{}) ([][]byte, error)

	// Put saves given model in the database. If the key is nil, a new one
	// is generated with the bucket sequence. The key is returned.
	Put(db adminnft.KVStore, key []byte, m Model) ([]byte, error)

	// Delete removes an entity with given primary key from the database.
	// It returns ErrNotFound if an entity with given key does not exist.
	Delete(db adminnft.KVStore, key []byte) error

	// Register registers this bucket and its indexes for queries.
	Register(name string, r adminnft.QueryRouter)
}

// ModelBucketOption configures a ModelBucket.
type ModelBucketOption func(mb *modelBucket)

// WithIndex configures the bucket to build an index with given name. All
// entities stored in the bucket are indexed using the value returned by the
// indexer function.
func WithIndex(name string, indexer Indexer, unique bool) ModelBucketOption {
	return func(mb *modelBucket) {
		mb.b = mb.b.WithIndex(name, indexer, unique)
	}
}

// NewModelBucket returns a ModelBucket storing entities of the same type as
// proto.
func NewModelBucket(name string, proto Model, opts ...ModelBucketOption) ModelBucket {
	b := NewBucket(name, NewSimpleObj(nil, proto))
	mb := &modelBucket{
		b:     b,
		idSeq: b.Sequence("id"),
		model: reflect.TypeOf(proto),
	}
	for _, fn := range opts {
		fn(mb)
	}
	return mb
}

type modelBucket struct {
	b     Bucket
	idSeq Sequence
	model reflect.Type
}

var _ ModelBucket = (*modelBucket)(nil)

func (mb *modelBucket) One(db adminnft.ReadOnlyKVStore, key []byte, dest Model) error {
	obj, err := mb.b.Get(db, key)
	if err != nil {
		return err
	}
	if obj == nil || obj.Value() == nil {
		return errors.Wrapf(errors.ErrNotFound, "%T not in the store", dest)
	}
	res := obj.Value()

	if !reflect.TypeOf(res).AssignableTo(reflect.TypeOf(dest)) {
		return errors.Wrapf(errors.ErrType, "%T cannot be represented as %T", res, dest)
	}
	reflect.ValueOf(dest).Elem().Set(reflect.ValueOf(res).Elem())
	return nil
}

func (mb *modelBucket) Has(db adminnft.ReadOnlyKVStore, key []byte) error {
	if len(key) == 0 {
		return errors.Wrap(errors.ErrNotFound, "zero length key")
	}
	ok, err := mb.b.Has(db, key)
	if err != nil {
		return err
	}
	if !ok {
		return errors.ErrNotFound
	}
	return nil
}

func (mb *modelBucket) ByIndex(db adminnft.ReadOnlyKVStore, indexName string, value []byte, dest interface{}) ([][]byte, error) {
	objs, err := mb.b.GetIndexed(db, indexName, value)
	if err != nil {
		return nil, err
	}

	ptr := reflect.ValueOf(dest)
	if ptr.Kind() != reflect.Ptr || ptr.Elem().Kind() != reflect.Slice {
		return nil, errors.Wrapf(errors.ErrType, "destination must be a pointer to a slice, got %T", dest)
	}
	slice := ptr.Elem()
	elem := slice.Type().Elem()
	byPointer := elem.Kind() == reflect.Ptr
	if (byPointer && elem != mb.model) || (!byPointer && reflect.PtrTo(elem) != mb.model) {
		return nil, errors.Wrapf(errors.ErrType, "%T cannot hold %s", dest, mb.model)
	}

	keys := make([][]byte, 0, len(objs))
	for _, obj := range objs {
		val := reflect.ValueOf(obj.Value())
		if !byPointer {
			val = val.Elem()
		}
		slice = reflect.Append(slice, val)
		keys = append(keys, obj.Key())
	}
	ptr.Elem().Set(slice)
	return keys, nil
}

func (mb *modelBucket) Put(db adminnft.KVStore, key []byte, m Model) ([]byte, error) {
	if reflect.TypeOf(m) != mb.model {
		return nil, errors.Wrapf(errors.ErrType, "cannot store %T in %s bucket", m, mb.model)
	}
	if err := m.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid model")
	}
	if len(key) == 0 {
		var err error
		key, err = mb.idSeq.NextVal(db)
		if err != nil {
			return nil, errors.Wrap(err, "id sequence")
		}
	}
	obj := NewSimpleObj(key, m)
	if err := mb.b.Save(db, obj); err != nil {
		return nil, errors.Wrap(err, "cannot store in the database")
	}
	return key, nil
}

func (mb *modelBucket) Delete(db adminnft.KVStore, key []byte) error {
	if err := mb.Has(db, key); err != nil {
		return err
	}
	return mb.b.Delete(db, key)
}

func (mb *modelBucket) Register(name string, r adminnft.QueryRouter) {
	mb.b.Register(name, r)
}
