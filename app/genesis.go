package app

import (
	"encoding/json"
	"io/ioutil"

	"github.com/iov-one/adminnft"
	"github.com/iov-one/adminnft/errors"
)

// Genesis is the part of the tendermint genesis file read by the host.
type Genesis struct {
	ChainID  string           `json:"chain_id"`
	AppState adminnft.Options `json:"app_state"`
}

// LoadGenesis reads a genesis file from disk.
func LoadGenesis(filePath string) (*Genesis, error) {
	raw, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrap(err, "read genesis file")
	}
	var gen Genesis
	if err := json.Unmarshal(raw, &gen); err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "cannot decode genesis file: %s", err)
	}
	return &gen, nil
}

// chainIDKey is kept outside of every bucket name space.
const chainIDKey = "_nft:chainID"

// loadChainID returns the chain id stored if any.
func loadChainID(kv adminnft.ReadOnlyKVStore) (string, error) {
	v, err := kv.Get([]byte(chainIDKey))
	if err != nil {
		return "", errors.Wrap(err, "load chain id")
	}
	return string(v), nil
}

// saveChainID stores a chain id in the kv store. It returns an error if the
// chain id was already set or is not valid.
func saveChainID(kv adminnft.KVStore, chainID string) error {
	if !adminnft.IsValidChainID(chainID) {
		return errors.Wrapf(errors.ErrInput, "chain id: %v", chainID)
	}
	k := []byte(chainIDKey)
	exists, err := kv.Has(k)
	if err != nil {
		return errors.Wrap(err, "load chain id")
	}
	if exists {
		return errors.Wrap(errors.ErrImmutable, "chain id is set at genesis")
	}
	if err := kv.Set(k, []byte(chainID)); err != nil {
		return errors.Wrap(err, "save chain id")
	}
	return nil
}
