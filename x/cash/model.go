package cash

import (
	"github.com/iov-one/adminnft"
	"github.com/iov-one/adminnft/codec"
	"github.com/iov-one/adminnft/coin"
	"github.com/iov-one/adminnft/errors"
	"github.com/iov-one/adminnft/orm"
)

// BucketName is where we store the balances
const BucketName = "cash"

// Set is the content of a wallet: a normalized list of coins.
type Set struct {
	Coins coin.Coins `json:"coins"`
}

var _ orm.CloneableData = (*Set)(nil)

// Validate requires that all coins are in alphabetical order, non zero and
// not negative.
func (s *Set) Validate() error {
	if err := s.Coins.Validate(); err != nil {
		return errors.Field("Coins", err, "")
	}
	if !s.Coins.IsNonNegative() {
		return errors.Field("Coins", errors.ErrAmount, "negative balance")
	}
	return nil
}

// Copy makes a new set with the same coins
func (s *Set) Copy() orm.CloneableData {
	return &Set{
		Coins: s.Coins.Clone(),
	}
}

func (s *Set) Marshal() ([]byte, error) {
	return codec.Marshal(s)
}

func (s *Set) Unmarshal(bz []byte) error {
	return codec.Unmarshal(bz, s)
}

// Contains returns true if the set holds at least the given amount.
func (s *Set) Contains(c coin.Coin) bool {
	return s.Coins.Contains(c)
}

// IsEmpty returns true if the set holds no coins.
func (s *Set) IsEmpty() bool {
	return s.Coins.IsEmpty()
}

// NewWallet creates a wallet object for given address.
func NewWallet(key adminnft.Address) orm.Object {
	return orm.NewSimpleObj(key, new(Set))
}

// WalletWith creates a wallet with the given coins. The coins are normalized
// and validated.
func WalletWith(key adminnft.Address, coins ...*coin.Coin) (orm.Object, error) {
	set := new(Set)
	for _, c := range coins {
		cs, err := set.Coins.Add(*c)
		if err != nil {
			return nil, err
		}
		set.Coins = cs
	}
	obj := orm.NewSimpleObj(key, set)
	return obj, obj.Validate()
}

// AsSet safely extracts the Set from an object loaded from the Bucket.
func AsSet(obj orm.Object) *Set {
	if obj == nil || obj.Value() == nil {
		return nil
	}
	return obj.Value().(*Set)
}

// Bucket is a type-safe wrapper around orm.Bucket
type Bucket struct {
	orm.Bucket
}

// NewBucket initializes a cash.Bucket with default name
func NewBucket() Bucket {
	return Bucket{
		Bucket: orm.NewBucket(BucketName, NewWallet(nil)),
	}
}

// GetOrCreate returns the wallet stored under the address, or an empty one.
func (b Bucket) GetOrCreate(db adminnft.ReadOnlyKVStore, key adminnft.Address) (orm.Object, error) {
	obj, err := b.Get(db, key)
	if err == nil && obj == nil {
		obj = NewWallet(key)
	}
	return obj, err
}

// Store writes the wallet, or removes it when it holds no coins. An empty
// wallet has no binary representation.
func (b Bucket) Store(db adminnft.KVStore, obj orm.Object) error {
	if AsSet(obj).IsEmpty() {
		return b.Delete(db, obj.Key())
	}
	return b.Save(db, obj)
}
