/*
Package codec provides the binary encoding of every persisted model and
message.

Values are encoded with go-amino in its bare binary form. Types that only
travel inside another value (models, keys, signatures) need no registration.
Types that are decoded through an interface, like a message inside of a
transaction, must be registered with an application codec created by
NewCodec.
*/
package codec

import (
	"github.com/iov-one/adminnft/errors"
	amino "github.com/tendermint/go-amino"
)

// plain is used for values that are never decoded through an interface.
var plain = amino.NewCodec()

// Marshal serializes given value using the binary bare encoding.
func Marshal(o interface{}) ([]byte, error) {
	bz, err := plain.MarshalBinaryBare(o)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrType, "cannot marshal %T: %s", o, err)
	}
	return bz, nil
}

// Unmarshal deserializes given data into the destination, which must be a
// pointer.
func Unmarshal(bz []byte, ptr interface{}) error {
	if err := plain.UnmarshalBinaryBare(bz, ptr); err != nil {
		return errors.Wrapf(errors.ErrInput, "cannot unmarshal %T: %s", ptr, err)
	}
	return nil
}

// MustMarshal is like Marshal, but panics on error. Use it only with values
// you control, for example in tests.
func MustMarshal(o interface{}) []byte {
	bz, err := Marshal(o)
	if err != nil {
		panic(err)
	}
	return bz
}

// Codec encodes values that embed interfaces. All implementations of an
// interface must be registered before the first use.
type Codec struct {
	cdc *amino.Codec
}

// NewCodec returns a codec without any registrations.
func NewCodec() *Codec {
	return &Codec{cdc: amino.NewCodec()}
}

// RegisterInterface declares an interface type. Pass a nil pointer to the
// interface, for example (*adminnft.Msg)(nil).
func (c *Codec) RegisterInterface(ptr interface{}) {
	c.cdc.RegisterInterface(ptr, nil)
}

// RegisterConcrete declares an implementation of a registered interface
// under a unique name. The name is part of the wire format and must never
// change.
func (c *Codec) RegisterConcrete(o interface{}, name string) {
	c.cdc.RegisterConcrete(o, name, nil)
}

// Seal prevents any further registrations.
func (c *Codec) Seal() *Codec {
	c.cdc.Seal()
	return c
}

// Marshal serializes given value using the binary bare encoding.
func (c *Codec) Marshal(o interface{}) ([]byte, error) {
	bz, err := c.cdc.MarshalBinaryBare(o)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrType, "cannot marshal %T: %s", o, err)
	}
	return bz, nil
}

// Unmarshal deserializes given data into the destination pointer.
func (c *Codec) Unmarshal(bz []byte, ptr interface{}) error {
	if err := c.cdc.UnmarshalBinaryBare(bz, ptr); err != nil {
		return errors.Wrapf(errors.ErrInput, "cannot unmarshal %T: %s", ptr, err)
	}
	return nil
}

// MarshalJSON serializes given value using the amino JSON format. Registered
// interface implementations are wrapped with their type name.
func (c *Codec) MarshalJSON(o interface{}) ([]byte, error) {
	bz, err := c.cdc.MarshalJSON(o)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrType, "cannot marshal %T: %s", o, err)
	}
	return bz, nil
}

// UnmarshalJSON deserializes data produced by MarshalJSON.
func (c *Codec) UnmarshalJSON(bz []byte, ptr interface{}) error {
	if err := c.cdc.UnmarshalJSON(bz, ptr); err != nil {
		return errors.Wrapf(errors.ErrInput, "cannot unmarshal %T: %s", ptr, err)
	}
	return nil
}
