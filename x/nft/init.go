package nft

import (
	"github.com/iov-one/adminnft"
	"github.com/iov-one/adminnft/errors"
)

const optKey = "nft"

// GenesisRegistry describes a registry created at genesis.
type GenesisRegistry struct {
	Admin       adminnft.Address `json:"admin"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
}

// Initializer creates the registries listed in the genesis file. Their IDs
// are assigned in the order of the list, starting with 0.
type Initializer struct{}

var _ adminnft.Initializer = Initializer{}

// FromGenesis will parse initial registry info from genesis and save it to
// the database.
func (Initializer) FromGenesis(opts adminnft.Options, db adminnft.KVStore) error {
	var regs []GenesisRegistry
	if err := opts.ReadOptions(optKey, &regs); err != nil {
		return err
	}
	// Payments are never collected here, so no cash controller is needed.
	ctrl := NewController(nil)
	for i, r := range regs {
		reg := &Registry{Admin: r.Admin, Name: r.Name, Description: r.Description}
		if _, err := ctrl.Instantiate(db, reg); err != nil {
			return errors.Wrapf(err, "registry #%d", i)
		}
	}
	return nil
}
