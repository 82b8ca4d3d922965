package sigs

import (
	"crypto/sha512"
	"encoding/binary"

	"github.com/iov-one/adminnft"
	"github.com/iov-one/adminnft/crypto"
	"github.com/iov-one/adminnft/errors"
)

// SignCodeV1 prefixes the signed payload. A new signing scheme must use a
// new prefix.
var SignCodeV1 = []byte{0, 0xCA, 0xFE, 0}

// VerifyTxSignatures validates every signature of tx in order and returns
// the conditions of the signers. A transaction without signatures returns
// an empty list. The first invalid signature aborts the verification.
func VerifyTxSignatures(db adminnft.KVStore, tx SignedTx, chainID string) ([]adminnft.Condition, error) {
	payload, err := tx.GetSignBytes()
	if err != nil {
		return nil, err
	}
	all := tx.GetSignatures()
	conds := make([]adminnft.Condition, 0, len(all))
	for _, sig := range all {
		cond, err := VerifySignature(db, sig, payload, chainID)
		if err != nil {
			return nil, err
		}
		conds = append(conds, cond)
	}
	return conds, nil
}

// VerifySignature validates sig over signBytes for the given chain and
// consumes the sequence of its signer. The signer account is created on its
// first signature.
func VerifySignature(db adminnft.KVStore, sig *StdSignature, signBytes []byte, chainID string) (adminnft.Condition, error) {
	if err := sig.Validate(); err != nil {
		return nil, err
	}
	digest, err := BuildSignBytes(signBytes, chainID, sig.Sequence)
	if err != nil {
		return nil, err
	}

	b := NewBucket()
	obj, err := b.GetOrCreate(db, sig.Pubkey)
	if err != nil {
		return nil, err
	}
	user := AsUser(obj)
	if !user.Pubkey.Verify(digest, sig.Signature) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "invalid signature")
	}
	if err := user.CheckAndIncrementSequence(sig.Sequence); err != nil {
		return nil, err
	}
	if err := b.Save(db, obj); err != nil {
		return nil, err
	}
	return user.Pubkey.Condition(), nil
}

// BuildSignBytes returns the sha512 digest that is signed for a
// transaction. The digest covers, in order:
//
//   SignCodeV1            4 bytes
//   len(chainID)          1 byte
//   chainID               ascii
//   seq                   8 bytes, big endian
//   signBytes             serialized transaction
//
// Binding the chain id and the sequence prevents replays on another chain
// or of an already executed transaction.
func BuildSignBytes(signBytes []byte, chainID string, seq int64) ([]byte, error) {
	switch {
	case seq < 0:
		return nil, errors.Wrap(ErrInvalidSequence, "negative")
	case !adminnft.IsValidChainID(chainID):
		return nil, errors.Wrapf(errors.ErrInput, "chain id: %v", chainID)
	}

	raw := make([]byte, 0, len(SignCodeV1)+1+len(chainID)+8+len(signBytes))
	raw = append(raw, SignCodeV1...)
	raw = append(raw, byte(len(chainID)))
	raw = append(raw, chainID...)
	raw = binary.BigEndian.AppendUint64(raw, uint64(seq))
	raw = append(raw, signBytes...)

	digest := sha512.Sum512(raw)
	return digest[:], nil
}

// BuildSignBytesTx is BuildSignBytes for the sign bytes of tx.
func BuildSignBytesTx(tx SignedTx, chainID string, seq int64) ([]byte, error) {
	payload, err := tx.GetSignBytes()
	if err != nil {
		return nil, err
	}
	return BuildSignBytes(payload, chainID, seq)
}

// SignTx signs tx for the given chain with the sequence the signer must use
// next, see NextNonce.
func SignTx(signer crypto.Signer, tx SignedTx, chainID string, seq int64) (*StdSignature, error) {
	digest, err := BuildSignBytesTx(tx, chainID, seq)
	if err != nil {
		return nil, err
	}
	sig, err := signer.Sign(digest)
	if err != nil {
		return nil, err
	}
	return &StdSignature{Sequence: seq, Pubkey: signer.PublicKey(), Signature: sig}, nil
}

// NextNonce returns the sequence the next signature of signer must carry.
// An address that never signed starts at zero.
func NextNonce(db adminnft.ReadOnlyKVStore, signer adminnft.Address) (int64, error) {
	obj, err := NewBucket().Get(db, signer)
	if err != nil {
		return 0, errors.Wrap(err, "load signer")
	}
	if user := AsUser(obj); user != nil {
		return user.Sequence, nil
	}
	return 0, nil
}
