package app

import (
	"github.com/iov-one/adminnft"
	"github.com/iov-one/adminnft/errors"
	"github.com/iov-one/adminnft/x/sigs"
)

// Tx is the transaction envelope of the registry chain. It carries exactly
// one message together with the signatures authorizing it.
type Tx struct {
	Msg        adminnft.Msg         `json:"msg"`
	Signatures []*sigs.StdSignature `json:"signatures"`
}

var _ adminnft.Tx = (*Tx)(nil)
var _ sigs.SignedTx = (*Tx)(nil)

// TxDecoder creates a Tx and unmarshals bytes into it.
func TxDecoder(bz []byte) (adminnft.Tx, error) {
	tx := new(Tx)
	if err := tx.Unmarshal(bz); err != nil {
		return nil, err
	}
	return tx, nil
}

// GetMsg returns the single message of this transaction.
func (tx *Tx) GetMsg() (adminnft.Msg, error) {
	if tx.Msg == nil {
		return nil, errors.Wrap(errors.ErrMsg, "no message")
	}
	return tx.Msg, nil
}

// GetSignatures returns the signatures attached to the message.
func (tx *Tx) GetSignatures() []*sigs.StdSignature {
	return tx.Signatures
}

// GetSignBytes returns the bytes to sign. They are the serialization of the
// transaction without any signature.
func (tx *Tx) GetSignBytes() ([]byte, error) {
	unsigned := Tx{Msg: tx.Msg}
	return unsigned.Marshal()
}

func (tx *Tx) Marshal() ([]byte, error) {
	return cdc.Marshal(tx)
}

func (tx *Tx) Unmarshal(bz []byte) error {
	return cdc.Unmarshal(bz, tx)
}
