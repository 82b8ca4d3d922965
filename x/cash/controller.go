package cash

import (
	"github.com/iov-one/adminnft"
	"github.com/iov-one/adminnft/coin"
	"github.com/iov-one/adminnft/errors"
	"github.com/iov-one/adminnft/orm"
)

// CoinMover is the interface other extensions use to transfer value.
type CoinMover interface {
	// MoveCoins removes funds from the source account and adds them to
	// the destination account. Both wallets are saved before returning.
	MoveCoins(db adminnft.KVStore, src adminnft.Address, dest adminnft.Address, amount coin.Coin) error
}

// Controller is the full set of operations on wallets.
type Controller interface {
	CoinMover

	// Balance returns the coins held by given address. It returns
	// ErrNotFound if there is no wallet for that address.
	Balance(db adminnft.ReadOnlyKVStore, addr adminnft.Address) (coin.Coins, error)

	// IssueCoins adds the amount to the destination wallet. The amount may
	// be negative as long as the wallet balance stays non negative.
	IssueCoins(db adminnft.KVStore, dest adminnft.Address, amount coin.Coin) error
}

// BaseController is a simple implementation of Controller.
type BaseController struct {
	bucket Bucket
}

var _ Controller = BaseController{}

// NewController returns a controller using the given bucket.
func NewController(bucket Bucket) BaseController {
	return BaseController{bucket: bucket}
}

// Balance returns the coins held by given address.
func (c BaseController) Balance(db adminnft.ReadOnlyKVStore, addr adminnft.Address) (coin.Coins, error) {
	obj, err := c.bucket.Get(db, addr)
	if err != nil {
		return nil, errors.Wrap(err, "cannot get wallet")
	}
	if obj == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "wallet %s", addr)
	}
	return AsSet(obj).Coins.Clone(), nil
}

// MoveCoins moves the given amount from src to dest.
// If src doesn't exist, or doesn't have sufficient
// coins, it fails.
func (c BaseController) MoveCoins(db adminnft.KVStore, src adminnft.Address, dest adminnft.Address, amount coin.Coin) error {
	if !amount.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "non-positive amount")
	}
	if src.Equals(dest) {
		return errors.Wrap(errors.ErrInput, "source and destination are the same")
	}

	sender, err := c.bucket.Get(db, src)
	if err != nil {
		return errors.Wrap(err, "cannot get sender")
	}
	if sender == nil {
		return errors.Wrapf(ErrInsufficientFunds, "empty account %s", src)
	}
	if !AsSet(sender).Contains(amount) {
		return errors.Wrapf(ErrInsufficientFunds, "%s holds less than %s", src, amount)
	}

	recipient, err := c.bucket.GetOrCreate(db, dest)
	if err != nil {
		return errors.Wrap(err, "cannot get recipient")
	}
	if err := add(sender, amount.Negative()); err != nil {
		return err
	}
	if err := add(recipient, amount); err != nil {
		return err
	}

	if err := c.bucket.Store(db, sender); err != nil {
		return errors.Wrap(err, "cannot save sender")
	}
	if err := c.bucket.Store(db, recipient); err != nil {
		return errors.Wrap(err, "cannot save recipient")
	}
	return nil
}

// IssueCoins attempts to add the given amount of coins to the destination
// address. Fails if it overflows the wallet.
//
// Note the amount may also be negative:
// "the lord giveth and the lord taketh away"
func (c BaseController) IssueCoins(db adminnft.KVStore, dest adminnft.Address, amount coin.Coin) error {
	if err := amount.Validate(); err != nil {
		return errors.Wrap(err, "invalid amount")
	}
	recipient, err := c.bucket.GetOrCreate(db, dest)
	if err != nil {
		return errors.Wrap(err, "cannot get recipient")
	}
	if err := add(recipient, amount); err != nil {
		return err
	}
	return c.bucket.Store(db, recipient)
}

func add(wallet orm.Object, amount coin.Coin) error {
	set := AsSet(wallet)
	cs, err := set.Coins.Add(amount)
	if err != nil {
		return err
	}
	set.Coins = cs
	return nil
}
