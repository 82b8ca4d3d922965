package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/iov-one/adminnft"
	"github.com/iov-one/adminnft/crypto"
	"github.com/iov-one/adminnft/errors"
	"github.com/iov-one/adminnft/weavetest"
	"github.com/iov-one/adminnft/x/nft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t testing.TB, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

type appState struct {
	NFT []nft.GenesisRegistry `json:"nft"`
}

func readGenesis(t testing.TB, home string) (string, appState) {
	t.Helper()
	raw, err := ioutil.ReadFile(filepath.Join(home, "config", "genesis.json"))
	require.NoError(t, err)
	var doc struct {
		ChainID  string   `json:"chain_id"`
		AppState appState `json:"app_state"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))
	return doc.ChainID, doc.AppState
}

func TestInitGeneratesAdminKey(t *testing.T) {
	home, err := ioutil.TempDir("", "nftd-init")
	require.NoError(t, err)
	defer os.RemoveAll(home)

	out, err := runCmd(t, "init", "--home", home, "--chain-id", "my-chain")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Registry admin:")

	keyFile := filepath.Join(home, "config", "admin.key")
	info, err := os.Stat(keyFile)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	hexKey, err := ioutil.ReadFile(keyFile)
	require.NoError(t, err)
	raw, err := hex.DecodeString(string(hexKey))
	require.NoError(t, err)
	var key crypto.PrivateKey
	require.NoError(t, key.Unmarshal(raw))

	chainID, state := readGenesis(t, home)
	assert.Equal(t, "my-chain", chainID)
	require.Len(t, state.NFT, 1)
	assert.Equal(t, key.PublicKey().Address(), state.NFT[0].Admin)

	// A second run must not replace the existing key.
	_, err = runCmd(t, "init", "--home", home)
	assert.True(t, errors.ErrDuplicate.Is(err), "%+v", err)
}

func TestInitWithAdminAddress(t *testing.T) {
	home, err := ioutil.TempDir("", "nftd-init")
	require.NoError(t, err)
	defer os.RemoveAll(home)

	admin := weavetest.NewCondition().Address()
	_, err = runCmd(t, "init", admin.String(), "--home", home)
	require.NoError(t, err)

	chainID, state := readGenesis(t, home)
	assert.True(t, adminnft.IsValidChainID(chainID), chainID)
	require.Len(t, state.NFT, 1)
	assert.Equal(t, admin, state.NFT[0].Admin)

	_, err = os.Stat(filepath.Join(home, "config", "admin.key"))
	assert.True(t, os.IsNotExist(err))

	// Running again keeps the chain id and replaces the app state.
	other := weavetest.NewCondition().Address()
	_, err = runCmd(t, "init", other.String(), "--home", home)
	require.NoError(t, err)
	again, state := readGenesis(t, home)
	assert.Equal(t, chainID, again)
	assert.Equal(t, other, state.NFT[0].Admin)
}

func TestInitRejectsInvalidInput(t *testing.T) {
	home, err := ioutil.TempDir("", "nftd-init")
	require.NoError(t, err)
	defer os.RemoveAll(home)

	_, err = runCmd(t, "init", "zz", "--home", home)
	assert.True(t, errors.ErrInput.Is(err), "%+v", err)

	_, err = runCmd(t, "init", "--home", home, "--chain-id", "bad chain id!")
	assert.True(t, errors.ErrInput.Is(err), "%+v", err)
}

func TestVersion(t *testing.T) {
	out, err := runCmd(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, adminnft.Version()+"\n", out)

	out, err = runCmd(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Go version:")
}
