package sigs

import (
	"github.com/iov-one/adminnft/codec"
	"github.com/iov-one/adminnft/crypto"
	"github.com/iov-one/adminnft/errors"
)

// SignedTx represents a transaction that contains signatures,
// which can be verified by the Decorator.
type SignedTx interface {
	// GetSignBytes returns the canonical byte representation of the Msg.
	// Helpful to store original, unparsed bytes here, just in case.
	GetSignBytes() ([]byte, error)

	// GetSignatures returns the signature of signers who signed the Msg.
	GetSignatures() []*StdSignature
}

// StdSignature is a signature together with the public key that produced
// it and the sequence it was created for.
type StdSignature struct {
	Sequence  int64             `json:"sequence,omitempty"`
	Pubkey    *crypto.PublicKey `json:"pubkey"`
	Signature *crypto.Signature `json:"signature"`
}

// Validate ensures the StdSignature meets basic standards
func (s *StdSignature) Validate() error {
	if s.Sequence < 0 {
		return errors.Wrap(ErrInvalidSequence, "negative")
	}
	if s.Pubkey == nil {
		return errors.Wrap(errors.ErrUnauthorized, "missing public key")
	}
	if s.Signature == nil {
		return errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	return nil
}

func (s *StdSignature) Marshal() ([]byte, error) {
	return codec.Marshal(s)
}

func (s *StdSignature) Unmarshal(bz []byte) error {
	return codec.Unmarshal(bz, s)
}
