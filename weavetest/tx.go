package weavetest

import "github.com/iov-one/adminnft"

// Tx is a transaction mock carrying a single message.
type Tx struct {
	// Msg is returned by GetMsg.
	Msg adminnft.Msg
	// Err if set is returned by GetMsg.
	Err error
}

var _ adminnft.Tx = (*Tx)(nil)

func (tx *Tx) GetMsg() (adminnft.Msg, error) {
	return tx.Msg, tx.Err
}

func (tx *Tx) Unmarshal([]byte) error {
	panic("not implemented")
}

func (tx *Tx) Marshal() ([]byte, error) {
	panic("not implemented")
}

// Msg is a message mock that can be routed to a handler.
type Msg struct {
	// RoutePath is returned by Path.
	RoutePath string
	// Serialized is the binary form of this message.
	Serialized []byte
	// Err if set is returned by every method call.
	Err error
}

var _ adminnft.Msg = (*Msg)(nil)

func (m *Msg) Path() string {
	return m.RoutePath
}

func (m *Msg) Validate() error {
	return m.Err
}

func (m *Msg) Unmarshal(b []byte) error {
	m.Serialized = b
	return m.Err
}

func (m *Msg) Marshal() ([]byte, error) {
	return m.Serialized, m.Err
}
