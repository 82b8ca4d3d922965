package nft

import (
	"encoding/hex"

	"github.com/iov-one/adminnft"
	"github.com/iov-one/adminnft/codec"
	"github.com/iov-one/adminnft/errors"
	"github.com/iov-one/adminnft/orm"
)

const (
	// DefaultName is used when a registry is created without a name.
	DefaultName = "Admin NFT"
	// DefaultDescription is used when a registry is created without a
	// description.
	DefaultDescription = "An NFT controlled by the admin"

	registryBucketName = "nftreg"
	tokenBucketName    = "nfttoken"
	ownerIndexName     = "owner"

	maxNameLength        = 128
	maxDescriptionLength = 1024
)

// Registry is the state of a single token registry. The token counter is not
// part of it, it is kept in a sequence scoped to the registry ID.
type Registry struct {
	// Admin is the only address allowed to mint and burn. It never changes.
	Admin       adminnft.Address `json:"admin"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
}

var _ orm.Model = (*Registry)(nil)

func (r *Registry) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Admin", r.Admin.Validate())
	if len(r.Name) > maxNameLength {
		errs = errors.AppendField(errs, "Name", errors.Wrapf(errors.ErrInput, "longer than %d characters", maxNameLength))
	}
	if len(r.Description) > maxDescriptionLength {
		errs = errors.AppendField(errs, "Description", errors.Wrapf(errors.ErrInput, "longer than %d characters", maxDescriptionLength))
	}
	return errs
}

func (r *Registry) Copy() orm.CloneableData {
	return &Registry{
		Admin:       r.Admin.Clone(),
		Name:        r.Name,
		Description: r.Description,
	}
}

func (r *Registry) Marshal() ([]byte, error) {
	return codec.Marshal(r)
}

func (r *Registry) Unmarshal(bz []byte) error {
	return codec.Unmarshal(bz, r)
}

// withDefaults returns a copy with the descriptive fields filled in.
func (r *Registry) withDefaults() *Registry {
	cpy := r.Copy().(*Registry)
	if cpy.Name == "" {
		cpy.Name = DefaultName
	}
	if cpy.Description == "" {
		cpy.Description = DefaultDescription
	}
	return cpy
}

// Token is a single issued token. It exists from its mint until its burn.
type Token struct {
	Owner    adminnft.Address `json:"owner"`
	Metadata string           `json:"metadata"`
}

var _ orm.Model = (*Token)(nil)

func (t *Token) Validate() error {
	return errors.AppendField(nil, "Owner", t.Owner.Validate())
}

func (t *Token) Copy() orm.CloneableData {
	return &Token{
		Owner:    t.Owner.Clone(),
		Metadata: t.Metadata,
	}
}

func (t *Token) Marshal() ([]byte, error) {
	return codec.Marshal(t)
}

func (t *Token) Unmarshal(bz []byte) error {
	return codec.Unmarshal(bz, t)
}

// NewRegistryBucket returns a bucket storing registries under their
// sequence generated ID.
func NewRegistryBucket() orm.ModelBucket {
	return orm.NewModelBucket(registryBucketName, &Registry{})
}

// NewTokenBucket returns a bucket storing tokens of all registries. The key
// of a token is the registry ID followed by the big endian token ID.
func NewTokenBucket() orm.ModelBucket {
	return orm.NewModelBucket(tokenBucketName, &Token{},
		orm.WithIndex(ownerIndexName, ownerIndexer, false))
}

// ownerIndexer indexes tokens by their registry and owner, so that the
// tokens of an owner can be listed per registry.
func ownerIndexer(obj orm.Object) ([]byte, error) {
	if obj == nil {
		return nil, errors.Wrap(errors.ErrHuman, "cannot index nil")
	}
	t, ok := obj.Value().(*Token)
	if !ok {
		return nil, errors.Wrapf(errors.ErrType, "cannot index %T", obj.Value())
	}
	regID, _, err := splitTokenKey(obj.Key())
	if err != nil {
		return nil, err
	}
	return ownerKey(regID, t.Owner), nil
}

func ownerKey(regID []byte, owner adminnft.Address) []byte {
	key := make([]byte, 0, len(regID)+len(owner))
	key = append(key, regID...)
	return append(key, owner...)
}

// tokenKey returns the primary key of a token.
func tokenKey(regID []byte, id uint64) []byte {
	key := make([]byte, 0, len(regID)+8)
	key = append(key, regID...)
	return append(key, orm.EncodeSequence(id)...)
}

// splitTokenKey is the reverse of tokenKey.
func splitTokenKey(key []byte) ([]byte, uint64, error) {
	if len(key) <= 8 {
		return nil, 0, errors.Wrapf(errors.ErrInput, "token key %X", key)
	}
	n := len(key) - 8
	id, err := orm.DecodeSequence(key[n:])
	if err != nil {
		return nil, 0, err
	}
	return key[:n], id, nil
}

// tokenSequence returns the counter of issued tokens of a registry.
func tokenSequence(regID []byte) orm.Sequence {
	return orm.NewSequence(tokenBucketName, hex.EncodeToString(regID))
}

// PoolCondition returns the condition owning the payment pool of a
// registry. No signature can fulfil it.
func PoolCondition(regID []byte) adminnft.Condition {
	return adminnft.NewCondition("nft", "pool", regID)
}

// PoolAddress returns the address of the payment pool wallet of a registry.
func PoolAddress(regID []byte) adminnft.Address {
	return PoolCondition(regID).Address()
}
