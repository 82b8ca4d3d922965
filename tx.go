package adminnft

import (
	"reflect"

	"github.com/iov-one/adminnft/errors"
)

// Msg is a message for the registry host to take an action (make a state
// transition). It is just the request, and must be validated by the Handlers.
// All authentication information is in the wrapping Tx.
type Msg interface {
	Persistent

	// Path returns the message path. This is used by the Router to locate
	// the proper Handler. Msg should be created alongside the Handler that
	// corresponds to them.
	//
	// Must be of the form [a-z_]+(/[a-z_]+)*
	Path() string

	// Validate performs a sanity checks on this message. It returns an
	// error if at least one of the fields is not valid.
	Validate() error
}

// Marshaller is anything that can be represented in binary.
type Marshaller interface {
	Marshal() ([]byte, error)
}

// Persistent supports Marshal and Unmarshal.
//
// This is separated from Marshaller, as this almost always requires a
// pointer, and functions that only need to marshal bytes can use the
// Marshaller interface to access non-pointers.
type Persistent interface {
	Marshaller
	Unmarshal([]byte) error
}

// Tx represents the data sent from the user to the host. It includes the
// actual message, along with information needed to authenticate the sender
// (cryptographic signatures).
type Tx interface {
	Persistent

	// GetMsg returns the action we wish to communicate.
	GetMsg() (Msg, error)
}

// GetPath returns the path of the message, or (missing) if no message.
func GetPath(tx Tx) string {
	msg, err := tx.GetMsg()
	if err == nil && msg != nil {
		return msg.Path()
	}
	return "(missing)"
}

// TxDecoder can parse bytes into a Tx.
type TxDecoder func(txBytes []byte) (Tx, error)

// LoadMsg extracts the message represented by given transaction into given
// destination. Before returning, the message is validated.
func LoadMsg(tx Tx, destination interface{}) error {
	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "cannot get transaction message")
	}
	if msg == nil {
		return errors.Wrap(errors.ErrMsg, "nil message")
	}

	// Destination must be a pointer to the exact type of the message.
	res := reflect.ValueOf(msg)
	dest := reflect.ValueOf(destination)
	if dest.Kind() != reflect.Ptr {
		return errors.Wrap(errors.ErrType, "destination must be a pointer")
	}
	if res.Kind() == reflect.Ptr {
		res = res.Elem()
	}
	if !res.Type().AssignableTo(dest.Elem().Type()) {
		return errors.Wrapf(errors.ErrType, "message is %T, not %T", msg, destination)
	}
	dest.Elem().Set(res)

	if err := msg.Validate(); err != nil {
		return errors.Wrap(err, "invalid message")
	}
	return nil
}
