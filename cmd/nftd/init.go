package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	"github.com/iov-one/adminnft"
	nftd "github.com/iov-one/adminnft/cmd/nftd/app"
	"github.com/iov-one/adminnft/crypto"
	"github.com/iov-one/adminnft/errors"
	"github.com/spf13/cobra"
	cmn "github.com/tendermint/tendermint/libs/common"
)

func initCmd(flags *globalFlags) *cobra.Command {
	var (
		ticker  string
		chainID string
	)

	cmd := &cobra.Command{
		Use:   "init [admin-address]",
		Short: "Initialize the app state of the genesis file",
		Long: `Write the app state of a development chain into
<home>/config/genesis.json. The genesis file is created when missing.

The admin owns one registry and a funded wallet. When no admin address is
given, a new key is generated and stored in <home>/config/admin.key.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configDir := filepath.Join(flags.home, "config")
			if err := os.MkdirAll(configDir, 0700); err != nil {
				return errors.Wrap(err, "create config directory")
			}

			var admin adminnft.Address
			if len(args) == 1 {
				addr, err := adminnft.ParseAddress(args[0])
				if err != nil {
					return errors.Wrap(err, "admin address")
				}
				admin = addr
			} else {
				addr, err := generateAdminKey(filepath.Join(configDir, "admin.key"))
				if err != nil {
					return err
				}
				admin = addr
			}

			options, err := nftd.GenInitOptions(admin, ticker)
			if err != nil {
				return err
			}
			genFile := filepath.Join(configDir, "genesis.json")
			if err := addGenesisOptions(genFile, chainID, options); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registry admin: %s\nGenesis file:   %s\n", admin, genFile)
			return nil
		},
	}

	cmd.Flags().StringVar(&ticker, "ticker", "IOV", "ticker of the coins given to the admin")
	cmd.Flags().StringVar(&chainID, "chain-id", "", "chain id of a new genesis file (default random)")
	return cmd
}

// generateAdminKey creates a new private key and stores it hex encoded.
// An existing key file is never overwritten.
func generateAdminKey(path string) (adminnft.Address, error) {
	if _, err := os.Stat(path); err == nil {
		return nil, errors.Wrapf(errors.ErrDuplicate, "key file %s already exists", path)
	}
	key := crypto.GenPrivKeyEd25519()
	raw, err := key.Marshal()
	if err != nil {
		return nil, err
	}
	if err := ioutil.WriteFile(path, []byte(hex.EncodeToString(raw)), 0600); err != nil {
		return nil, errors.Wrap(err, "write key file")
	}
	return key.PublicKey().Address(), nil
}

// genesisDoc involves some tendermint specific structures we don't want to
// parse, so we just grab it into a raw object format, so we can add one
// line.
type genesisDoc map[string]json.RawMessage

// addGenesisOptions sets the app state of the genesis file. A minimal file
// is created if none exists yet.
func addGenesisOptions(filename, chainID string, options json.RawMessage) error {
	doc := make(genesisDoc)
	bz, err := ioutil.ReadFile(filename)
	switch {
	case err == nil:
		if err := json.Unmarshal(bz, &doc); err != nil {
			return errors.Wrapf(errors.ErrInput, "cannot decode %s: %s", filename, err)
		}
	case os.IsNotExist(err):
		if chainID == "" {
			chainID = "nft-chain-" + cmn.RandStr(6)
		}
		if !adminnft.IsValidChainID(chainID) {
			return errors.Wrapf(errors.ErrInput, "chain id %q", chainID)
		}
		if doc["chain_id"], err = json.Marshal(chainID); err != nil {
			return err
		}
		if doc["genesis_time"], err = json.Marshal(time.Now().UTC()); err != nil {
			return err
		}
	default:
		return errors.Wrap(err, "read genesis file")
	}

	doc["app_state"] = options
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return ioutil.WriteFile(filename, out, 0600)
}
