package nft

import (
	"github.com/iov-one/adminnft"
	"github.com/iov-one/adminnft/coin"
	"github.com/iov-one/adminnft/errors"
	"github.com/iov-one/adminnft/orm"
	"github.com/iov-one/adminnft/x/cash"
)

// Balancer is the part of the cash controller the registry needs to manage
// its payment pool.
type Balancer interface {
	cash.CoinMover
	Balance(db adminnft.ReadOnlyKVStore, addr adminnft.Address) (coin.Coins, error)
}

// Controller implements the registry operations on top of a store. It does
// not authenticate, every mutating method is given the caller address that
// was established by the transport.
type Controller struct {
	registries orm.ModelBucket
	tokens     orm.ModelBucket
	cash       Balancer
}

// NewController returns a controller moving payments with given cash
// controller.
func NewController(cash Balancer) *Controller {
	return &Controller{
		registries: NewRegistryBucket(),
		tokens:     NewTokenBucket(),
		cash:       cash,
	}
}

// Instantiate creates a new registry and returns its ID. The token set is
// empty, the counter is zero and the pool holds no coins. Empty descriptive
// fields are set to their defaults.
func (c *Controller) Instantiate(db adminnft.KVStore, reg *Registry) ([]byte, error) {
	if reg == nil {
		return nil, errors.Wrap(errors.ErrEmpty, "registry")
	}
	id, err := c.registries.Put(db, nil, reg.withDefaults())
	if err != nil {
		return nil, errors.Wrap(err, "cannot store registry")
	}
	return id, nil
}

// Registry returns the registry stored under the ID.
func (c *Controller) Registry(db adminnft.ReadOnlyKVStore, regID []byte) (*Registry, error) {
	var reg Registry
	if err := c.registries.One(db, regID, &reg); err != nil {
		return nil, errors.Wrapf(err, "registry %X", regID)
	}
	return &reg, nil
}

// authorize loads the registry and ensures the caller is its admin.
func (c *Controller) authorize(db adminnft.ReadOnlyKVStore, caller adminnft.Address, regID []byte) (*Registry, error) {
	reg, err := c.Registry(db, regID)
	if err != nil {
		return nil, err
	}
	if !reg.Admin.Equals(caller) {
		return nil, errors.Wrapf(errors.ErrUnauthorized, "caller %s is not the registry admin", caller)
	}
	return reg, nil
}

// Mint issues a new token to the owner and returns its ID. Only the registry
// admin can mint. A non empty payment is moved from the admin wallet into
// the registry pool before the token is issued.
//
// On failure the counter is not advanced. The store may hold partial writes
// of the payment, so callers must discard it. Handle and the transaction
// savepoint both do.
func (c *Controller) Mint(db adminnft.KVStore, caller adminnft.Address, regID []byte, owner adminnft.Address, metadata string, payment *coin.Coin) (uint64, error) {
	reg, err := c.authorize(db, caller, regID)
	if err != nil {
		return 0, err
	}
	token := &Token{Owner: owner, Metadata: metadata}
	if err := token.Validate(); err != nil {
		return 0, errors.Wrap(err, "invalid token")
	}

	if !coin.IsEmpty(payment) {
		if err := c.cash.MoveCoins(db, reg.Admin, PoolAddress(regID), *payment); err != nil {
			return 0, errors.Wrap(err, "cannot collect payment")
		}
	}

	seq := tokenSequence(regID)
	id, err := seq.NextInt(db)
	if err != nil {
		return 0, errors.Wrap(err, "cannot allocate token id")
	}
	if _, err := c.tokens.Put(db, tokenKey(regID, id), token); err != nil {
		return 0, errors.Wrap(err, "cannot store token")
	}
	return id, nil
}

// Burn removes a token and returns its ID. Only the registry admin can burn.
// Burning a token that does not exist fails with ErrNotFound. The ID is
// never issued again.
func (c *Controller) Burn(db adminnft.KVStore, caller adminnft.Address, regID []byte, id uint64) (uint64, error) {
	if _, err := c.authorize(db, caller, regID); err != nil {
		return 0, err
	}
	if err := c.tokens.Delete(db, tokenKey(regID, id)); err != nil {
		return 0, errors.Wrapf(err, "token %d", id)
	}
	return id, nil
}

// Token returns the token with given ID.
func (c *Controller) Token(db adminnft.ReadOnlyKVStore, regID []byte, id uint64) (*Token, error) {
	var t Token
	if err := c.tokens.One(db, tokenKey(regID, id), &t); err != nil {
		return nil, errors.Wrapf(err, "token %d", id)
	}
	return &t, nil
}

// NextID returns the ID the next mint of the registry will issue. It is also
// the number of tokens ever minted.
func (c *Controller) NextID(db adminnft.ReadOnlyKVStore, regID []byte) (uint64, error) {
	if err := c.registries.Has(db, regID); err != nil {
		return 0, errors.Wrapf(err, "registry %X", regID)
	}
	seq := tokenSequence(regID)
	return seq.Peek(db)
}

// PaymentPool returns the coins collected by the registry.
func (c *Controller) PaymentPool(db adminnft.ReadOnlyKVStore, regID []byte) (coin.Coins, error) {
	if err := c.registries.Has(db, regID); err != nil {
		return nil, errors.Wrapf(err, "registry %X", regID)
	}
	coins, err := c.cash.Balance(db, PoolAddress(regID))
	switch {
	case errors.ErrNotFound.Is(err):
		return nil, nil
	case err != nil:
		return nil, err
	}
	return coins, nil
}

// TokensByOwner returns the IDs of all tokens of the registry held by the
// owner, in ascending order.
func (c *Controller) TokensByOwner(db adminnft.ReadOnlyKVStore, regID []byte, owner adminnft.Address) ([]uint64, error) {
	var tokens []*Token
	keys, err := c.tokens.ByIndex(db, ownerIndexName, ownerKey(regID, owner), &tokens)
	if err != nil {
		return nil, errors.Wrap(err, "owner index")
	}
	ids := make([]uint64, 0, len(keys))
	for _, k := range keys {
		_, id, err := splitTokenKey(k)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
