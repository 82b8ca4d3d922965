package orm

import (
	"encoding/binary"
	"math"

	"github.com/iov-one/adminnft"
	"github.com/iov-one/adminnft/errors"
)

// Sequence maintains a counter and generates a series of keys. Each key is
// greater than the last, both as an integer and using bytes.Compare on its
// encoded form.
//
// The stored state is the next value to hand out. The first value is 0.
type Sequence struct {
	id []byte
}

// NewSequence returns a sequence counter. Sequence is using the following
// pattern to construct its key:
//    _s.<bucket>:<name>
func NewSequence(bucket, name string) Sequence {
	id := "_s." + bucket + ":" + name
	return Sequence{
		id: []byte(id),
	}
}

// NextVal returns the current value of the sequence as 8 bytes and advances
// the counter.
func (s *Sequence) NextVal(db adminnft.KVStore) ([]byte, error) {
	val, err := s.NextInt(db)
	if err != nil {
		return nil, err
	}
	return EncodeSequence(val), nil
}

// NextInt returns the current value of the sequence and advances the
// counter. A value is never returned twice.
func (s *Sequence) NextInt(db adminnft.KVStore) (uint64, error) {
	val, err := s.Peek(db)
	if err != nil {
		return 0, err
	}
	if val == math.MaxUint64 {
		return 0, errors.Wrap(errors.ErrOverflow, "sequence exhausted")
	}
	if err := db.Set(s.id, EncodeSequence(val+1)); err != nil {
		return 0, errors.Wrap(err, "cannot store sequence")
	}
	return val, nil
}

// Peek returns the value the next NextInt call will return. This method does
// not modify the sequence state.
func (s *Sequence) Peek(db adminnft.ReadOnlyKVStore) (uint64, error) {
	raw, err := db.Get(s.id)
	if err != nil {
		return 0, errors.Wrap(err, "cannot load sequence")
	}
	return DecodeSequence(raw)
}

// DecodeSequence reads a sequence value. A missing value is 0.
func DecodeSequence(bz []byte) (uint64, error) {
	if bz == nil {
		return 0, nil
	}
	if err := ValidateSequence(bz); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(bz), nil
}

// EncodeSequence returns the 8 byte, big endian form of val.
func EncodeSequence(val uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, val)
	return bz
}

// ValidateSequence returns an error if this is not an 8-byte sequence value.
func ValidateSequence(id []byte) error {
	if len(id) == 0 {
		return errors.Wrap(errors.ErrEmpty, "sequence missing")
	}
	if len(id) != 8 {
		return errors.Wrap(errors.ErrInput, "sequence is invalid length (expect 8 bytes)")
	}
	return nil
}
