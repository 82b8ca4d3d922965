package store

import (
	"github.com/iov-one/adminnft/errors"
)

// SliceIterator iterates over a slice of models.
type SliceIterator struct {
	data []Model
	idx  int
}

var _ Iterator = (*SliceIterator)(nil)

// NewSliceIterator creates a new Iterator over this slice.
func NewSliceIterator(data []Model) *SliceIterator {
	return &SliceIterator{data: data}
}

func (s *SliceIterator) Next() ([]byte, []byte, error) {
	if s.idx >= len(s.data) {
		return nil, nil, errors.ErrIteratorDone
	}
	m := s.data[s.idx]
	s.idx++
	return m.Key, m.Value, nil
}

func (s *SliceIterator) Release() {
	s.data = nil
}

// EmptyKVStore never holds any data. It is the base layer of the in-memory
// store.
type EmptyKVStore struct{}

var _ KVStore = EmptyKVStore{}

func (EmptyKVStore) Get(key []byte) ([]byte, error) { return nil, nil }

func (EmptyKVStore) Has(key []byte) (bool, error) { return false, nil }

func (EmptyKVStore) Set(key, value []byte) error { return nil }

func (EmptyKVStore) Delete(key []byte) error { return nil }

func (EmptyKVStore) Iterator(start, end []byte) (Iterator, error) {
	return NewSliceIterator(nil), nil
}

func (EmptyKVStore) ReverseIterator(start, end []byte) (Iterator, error) {
	return NewSliceIterator(nil), nil
}

func (e EmptyKVStore) NewBatch() Batch {
	return NewNonAtomicBatch(e)
}

type opKind int32

const (
	setKind opKind = iota + 1
	delKind
)

// Op is either a set or a delete operation.
type Op struct {
	kind  opKind
	key   []byte
	value []byte // only for set
}

// Apply performs the operation on given store.
func (o Op) Apply(out SetDeleter) error {
	switch o.kind {
	case setKind:
		return out.Set(o.key, o.value)
	case delKind:
		return out.Delete(o.key)
	default:
		return errors.Wrapf(errors.ErrDatabase, "unknown kind: %d", o.kind)
	}
}

// IsSetOp returns the key and value of a set operation.
func (o Op) IsSetOp() (key, value []byte, ok bool) {
	if o.kind != setKind {
		return nil, nil, false
	}
	return o.key, o.value, true
}

// IsDeleteOp returns the key of a delete operation.
func (o Op) IsDeleteOp() (key []byte, ok bool) {
	if o.kind != delKind {
		return nil, false
	}
	return o.key, true
}

// SetOp creates a set operation.
func SetOp(key, value []byte) Op {
	return Op{kind: setKind, key: key, value: value}
}

// DelOp creates a delete operation.
func DelOp(key []byte) Op {
	return Op{kind: delKind, key: key}
}

// NonAtomicBatch piles up operations and executes them later on the
// underlying store. Use it only for in-memory stores.
type NonAtomicBatch struct {
	out SetDeleter
	ops []Op
}

var _ Batch = (*NonAtomicBatch)(nil)
var _ ShowOpser = (*NonAtomicBatch)(nil)

// NewNonAtomicBatch creates an empty batch writing to out.
func NewNonAtomicBatch(out SetDeleter) *NonAtomicBatch {
	return &NonAtomicBatch{out: out}
}

func (b *NonAtomicBatch) Set(key, value []byte) error {
	b.ops = append(b.ops, SetOp(key, value))
	return nil
}

func (b *NonAtomicBatch) Delete(key []byte) error {
	b.ops = append(b.ops, DelOp(key))
	return nil
}

// Write applies all operations in order and resets the batch.
func (b *NonAtomicBatch) Write() error {
	for _, op := range b.ops {
		if err := op.Apply(b.out); err != nil {
			return err
		}
	}
	b.ops = nil
	return nil
}

// ShowOps lists all operations not written yet.
func (b *NonAtomicBatch) ShowOps() []Op {
	return b.ops
}
