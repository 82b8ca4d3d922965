package orm

import (
	"github.com/iov-one/adminnft/codec"
	"github.com/iov-one/adminnft/errors"
)

// record is the model stored by the tests of this package.
type record struct {
	Owner []byte `json:"owner"`
	Label string `json:"label"`
}

var _ Model = (*record)(nil)

func (r *record) Validate() error {
	if len(r.Owner) == 0 {
		return errors.Field("Owner", errors.ErrEmpty, "required")
	}
	return nil
}

func (r *record) Copy() CloneableData {
	cpy := *r
	return &cpy
}

func (r *record) Marshal() ([]byte, error) {
	return codec.Marshal(r)
}

func (r *record) Unmarshal(bz []byte) error {
	return codec.Unmarshal(bz, r)
}

func ownerIndexer(obj Object) ([]byte, error) {
	r, ok := obj.Value().(*record)
	if !ok {
		return nil, errors.Wrapf(errors.ErrType, "%T", obj.Value())
	}
	return r.Owner, nil
}
