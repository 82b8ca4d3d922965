package cash

import (
	"github.com/iov-one/adminnft"
	"github.com/iov-one/adminnft/coin"
	"github.com/iov-one/adminnft/errors"
)

const optKey = "cash"

// GenesisAccount is used to parse the json from genesis file. The address is
// hex encoded or in one of the prefixed forms accepted by ParseAddress.
type GenesisAccount struct {
	Address adminnft.Address `json:"address"`
	Coins   []*coin.Coin     `json:"coins"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ adminnft.Initializer = Initializer{}

// FromGenesis will parse initial account info from genesis
// and save it to the database
func (Initializer) FromGenesis(opts adminnft.Options, kv adminnft.KVStore) error {
	var accts []GenesisAccount
	if err := opts.ReadOptions(optKey, &accts); err != nil {
		return err
	}
	bucket := NewBucket()
	for i, acct := range accts {
		if err := acct.Address.Validate(); err != nil {
			return errors.Wrapf(err, "account #%d", i)
		}
		wallet, err := WalletWith(acct.Address, acct.Coins...)
		if err != nil {
			return errors.Wrapf(err, "account #%d", i)
		}
		if err := bucket.Store(kv, wallet); err != nil {
			return errors.Wrapf(err, "account #%d", i)
		}
	}
	return nil
}

// RegisterQuery will register this bucket as "/wallets"
func RegisterQuery(qr adminnft.QueryRouter) {
	NewBucket().Register("wallets", qr)
}
