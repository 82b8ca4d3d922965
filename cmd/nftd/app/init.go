package app

import (
	"encoding/json"

	"github.com/iov-one/adminnft"
	"github.com/iov-one/adminnft/coin"
	"github.com/iov-one/adminnft/errors"
	"github.com/iov-one/adminnft/x/cash"
	"github.com/iov-one/adminnft/x/nft"
)

// initialSupply is the amount given to the admin of a development chain.
const initialSupply = 123456789

// GenInitOptions produces the app state of a development chain. The admin
// owns one registry and a wallet funded with the given ticker, so that it
// can mint with payments right away.
func GenInitOptions(admin adminnft.Address, ticker string) (json.RawMessage, error) {
	if err := admin.Validate(); err != nil {
		return nil, errors.Wrap(err, "admin")
	}
	supply := coin.NewCoin(initialSupply, 0, ticker)
	if err := supply.Validate(); err != nil {
		return nil, errors.Wrap(err, "ticker")
	}

	state := struct {
		Cash []cash.GenesisAccount `json:"cash"`
		NFT  []nft.GenesisRegistry `json:"nft"`
	}{
		Cash: []cash.GenesisAccount{
			{Address: admin, Coins: []*coin.Coin{&supply}},
		},
		NFT: []nft.GenesisRegistry{
			{Admin: admin},
		},
	}
	raw, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return raw, nil
}
