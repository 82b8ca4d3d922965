package crypto

import (
	"github.com/iov-one/adminnft"
	"github.com/iov-one/adminnft/codec"
	"github.com/iov-one/adminnft/errors"
	"golang.org/x/crypto/ed25519"
)

// PublicKey is an ed25519 public key.
type PublicKey struct {
	Ed25519 []byte `json:"ed25519"`
}

var _ PubKey = (*PublicKey)(nil)

// Verify verifies the signature was created with this message and public key.
func (p *PublicKey) Verify(message []byte, sig *Signature) bool {
	if p == nil || sig == nil || len(sig.Ed25519) == 0 {
		return false
	}
	if len(p.Ed25519) != ed25519.PublicKeySize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(p.Ed25519), message, sig.Ed25519)
}

// Condition encodes the public key into a condition.
func (p *PublicKey) Condition() adminnft.Condition {
	if p == nil || len(p.Ed25519) == 0 {
		return nil
	}
	return adminnft.NewCondition(ExtensionName, "ed25519", p.Ed25519)
}

// Address returns the address of the condition created by this key.
func (p *PublicKey) Address() adminnft.Address {
	return p.Condition().Address()
}

// Validate ensures the key has the length expected by ed25519.
func (p *PublicKey) Validate() error {
	if p == nil || len(p.Ed25519) == 0 {
		return errors.ErrEmpty.New("public key")
	}
	if len(p.Ed25519) != ed25519.PublicKeySize {
		return errors.ErrInput.Newf("public key of %d bytes", len(p.Ed25519))
	}
	return nil
}

func (p *PublicKey) Marshal() ([]byte, error) {
	return codec.Marshal(p)
}

func (p *PublicKey) Unmarshal(bz []byte) error {
	return codec.Unmarshal(bz, p)
}

// PrivateKey is an ed25519 private key.
type PrivateKey struct {
	Ed25519 []byte `json:"ed25519"`
}

var _ Signer = (*PrivateKey)(nil)

// Sign returns a matching signature for this private key.
func (p *PrivateKey) Sign(message []byte) (*Signature, error) {
	if len(p.Ed25519) != ed25519.PrivateKeySize {
		return nil, errors.ErrInput.Newf("private key of %d bytes", len(p.Ed25519))
	}
	bz := ed25519.Sign(ed25519.PrivateKey(p.Ed25519), message)
	return &Signature{Ed25519: bz}, nil
}

// PublicKey returns the corresponding PublicKey.
func (p *PrivateKey) PublicKey() *PublicKey {
	priv := ed25519.PrivateKey(p.Ed25519)
	pub := priv.Public().(ed25519.PublicKey)
	return &PublicKey{Ed25519: pub}
}

func (p *PrivateKey) Marshal() ([]byte, error) {
	return codec.Marshal(p)
}

func (p *PrivateKey) Unmarshal(bz []byte) error {
	return codec.Unmarshal(bz, p)
}

// Signature is an ed25519 signature.
type Signature struct {
	Ed25519 []byte `json:"ed25519"`
}

func (s *Signature) Marshal() ([]byte, error) {
	return codec.Marshal(s)
}

func (s *Signature) Unmarshal(bz []byte) error {
	return codec.Unmarshal(bz, s)
}

// GenPrivKeyEd25519 returns a random new private key.
func GenPrivKeyEd25519() *PrivateKey {
	_, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		panic(err)
	}
	return &PrivateKey{Ed25519: priv}
}

// PrivKeyEd25519FromSeed will deterministically generate a private key from
// a given seed. Use if you have a strong source of external randomness, or
// for deterministic keys in test cases.
func PrivKeyEd25519FromSeed(seed []byte) *PrivateKey {
	priv := ed25519.NewKeyFromSeed(seed)
	return &PrivateKey{Ed25519: priv}
}
