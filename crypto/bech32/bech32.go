// Package bech32 converts addresses to and from their bech32 representation.
package bech32

import (
	"github.com/btcsuite/btcutil/bech32"
	"github.com/iov-one/adminnft/errors"
)

// Decode converts given bech32 encoded representation into the human
// readable part and the raw payload.
func Decode(raw string) (string, []byte, error) {
	hrp, payload, err := bech32.Decode(raw)
	if err != nil {
		return "", nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	payload, err = bech32.ConvertBits(payload, 5, 8, false)
	if err != nil {
		return "", nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return hrp, payload, nil
}

// Encode converts given payload into its bech32 encoded representation
// using hrp as the human readable part.
func Encode(hrp string, payload []byte) ([]byte, error) {
	converted, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	raw, err := bech32.Encode(hrp, converted)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return []byte(raw), nil
}
