// Package crypto provides the keys used to authenticate callers.
//
// A verified signature is turned into a Condition of the form
// sigs/ed25519/<pubkey>. Its Address is the caller identity compared against
// a registry admin.
package crypto

import (
	"github.com/iov-one/adminnft"
)

// ExtensionName is used for the Conditions we get from signatures.
const ExtensionName = "sigs"

// PubKey represents a crypto public key we use.
type PubKey interface {
	Verify(message []byte, sig *Signature) bool
	Condition() adminnft.Condition
}

// Signer is the functionality we use from a private key.
// No serializing to support hardware devices as well.
type Signer interface {
	Sign(message []byte) (*Signature, error)
	PublicKey() *PublicKey
}
