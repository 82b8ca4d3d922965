package weavetest

import (
	"crypto/rand"
	"encoding/binary"
	"testing"

	"github.com/iov-one/adminnft"
	"github.com/iov-one/adminnft/crypto"
)

// NewKey returns a new random signing key.
func NewKey() crypto.Signer {
	return crypto.GenPrivKeyEd25519()
}

// NewCondition returns the condition of a new random key.
func NewCondition() adminnft.Condition {
	return NewKey().PublicKey().Condition()
}

// RandomAddr returns a valid random address.
func RandomAddr(t testing.TB) adminnft.Address {
	t.Helper()
	raw := make([]byte, adminnft.AddressLength)
	if _, err := rand.Read(raw); err != nil {
		t.Fatalf("cannot generate a random address: %s", err)
	}
	return adminnft.Address(raw)
}

// ParseAddress decodes an address from its human readable form.
func ParseAddress(t testing.TB, encoded string) adminnft.Address {
	t.Helper()
	addr, err := adminnft.ParseAddress(encoded)
	if err != nil {
		t.Fatalf("cannot parse %q address: %s", encoded, err)
	}
	return addr
}

// SequenceID returns the big endian encoded form of n, the same way
// orm.Sequence builds its keys.
func SequenceID(n uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return b
}
