package orm

import (
	"reflect"

	"github.com/iov-one/adminnft"
	"github.com/iov-one/adminnft/errors"
	"github.com/iov-one/adminnft/x"
)

// SimpleObj is the Object used by every bucket of this module: a primary
// key next to its model.
type SimpleObj struct {
	key   []byte
	value Model
}

var _ x.Validater = (*SimpleObj)(nil)

func NewSimpleObj(key []byte, value Model) *SimpleObj {
	return &SimpleObj{key: key, value: value}
}

func (o SimpleObj) Key() []byte {
	return o.key
}

func (o *SimpleObj) SetKey(key []byte) {
	o.key = key
}

func (o SimpleObj) Value() adminnft.Persistent {
	return o.value
}

// Validate requires both the key and the model. The model validation
// errors are reported under the Value field.
func (o SimpleObj) Validate() error {
	switch {
	case len(o.key) == 0:
		return errors.Field("Key", errors.ErrEmpty, "missing key")
	case o.value == nil:
		return errors.Field("Value", errors.ErrEmpty, "missing value")
	}
	return errors.Field("Value", o.value.Validate(), "invalid value")
}

// Clone returns an object with a copy of the key and a zero model of the
// same type, to be filled by unmarshaling.
func (o *SimpleObj) Clone() Object {
	zero := reflect.New(reflect.TypeOf(o.value).Elem()).Interface().(Model)
	var key []byte
	if len(o.key) != 0 {
		key = append(key, o.key...)
	}
	return NewSimpleObj(key, zero)
}
