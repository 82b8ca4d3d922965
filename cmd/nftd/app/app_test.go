package app

import (
	"testing"

	"github.com/iov-one/adminnft"
	"github.com/iov-one/adminnft/app"
	"github.com/iov-one/adminnft/coin"
	"github.com/iov-one/adminnft/crypto"
	"github.com/iov-one/adminnft/errors"
	"github.com/iov-one/adminnft/orm"
	"github.com/iov-one/adminnft/x/cash"
	"github.com/iov-one/adminnft/x/nft"
	"github.com/iov-one/adminnft/x/sigs"
	"github.com/iov-one/adminnft/x/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

const chainID = "test-chain-22"

// testChain drives an in-memory application one transaction per block.
type testChain struct {
	t      *testing.T
	app    app.BaseApp
	height int64
}

func newTestChain(t *testing.T, admin adminnft.Address) *testChain {
	t.Helper()
	metrics := utils.NewMetrics("test", prometheus.NewRegistry())
	myApp, err := GenerateApp("", log.NewNopLogger(), metrics, false)
	require.NoError(t, err)

	state, err := GenInitOptions(admin, "IOV")
	require.NoError(t, err)
	myApp.InitChain(abci.RequestInitChain{ChainId: chainID, AppStateBytes: state})

	c := &testChain{t: t, app: myApp}
	// Genesis state is queryable only once the first block is committed.
	c.emptyBlock()
	return c
}

func (c *testChain) emptyBlock() {
	c.height++
	c.app.BeginBlock(abci.RequestBeginBlock{Header: abci.Header{Height: c.height, ChainID: chainID}})
	c.app.EndBlock(abci.RequestEndBlock{Height: c.height})
	c.app.Commit()
}

// sign builds a transaction carrying msg signed by the key with the
// sequence stored for the key.
func (c *testChain) sign(key *crypto.PrivateKey, msg adminnft.Msg) []byte {
	c.t.Helper()
	tx := &Tx{Msg: msg}
	seq, err := sigs.NextNonce(c.app.DeliverStore(), key.PublicKey().Address())
	require.NoError(c.t, err)
	sig, err := sigs.SignTx(key, tx, chainID, seq)
	require.NoError(c.t, err)
	tx.Signatures = []*sigs.StdSignature{sig}
	raw, err := tx.Marshal()
	require.NoError(c.t, err)
	return raw
}

// submit checks and delivers the transaction in a new block.
func (c *testChain) submit(key *crypto.PrivateKey, msg adminnft.Msg) (abci.ResponseCheckTx, abci.ResponseDeliverTx) {
	c.t.Helper()
	raw := c.sign(key, msg)

	c.height++
	c.app.BeginBlock(abci.RequestBeginBlock{Header: abci.Header{Height: c.height, ChainID: chainID}})
	chres := c.app.CheckTx(raw)
	dres := c.app.DeliverTx(raw)
	c.app.EndBlock(abci.RequestEndBlock{Height: c.height})
	c.app.Commit()
	return chres, dres
}

func (c *testChain) query(path string, data []byte) [][]byte {
	c.t.Helper()
	res := c.app.Query(abci.RequestQuery{Path: path, Data: data})
	require.Equal(c.t, uint32(0), res.Code, res.Log)
	var values app.ResultSet
	require.NoError(c.t, values.Unmarshal(res.Value))
	return values.Results
}

func TestRegistryScenario(t *testing.T) {
	adminKey := crypto.GenPrivKeyEd25519()
	admin := adminKey.PublicKey().Address()
	otherKey := crypto.GenPrivKeyEd25519()
	b := crypto.GenPrivKeyEd25519().PublicKey().Address()
	c := crypto.GenPrivKeyEd25519().PublicKey().Address()

	chain := newTestChain(t, admin)
	regID := orm.EncodeSequence(0)

	// The genesis registry belongs to the admin.
	regs := chain.query("/nft/registries", regID)
	require.Len(t, regs, 1)
	var reg nft.Registry
	require.NoError(t, reg.Unmarshal(regs[0]))
	assert.Equal(t, admin, reg.Admin)
	assert.Equal(t, nft.DefaultName, reg.Name)

	chres, dres := chain.submit(adminKey, &nft.MintMsg{RegistryID: regID, Owner: b, Metadata: "m1"})
	require.Equal(t, uint32(0), chres.Code, chres.Log)
	require.Equal(t, uint32(0), dres.Code, dres.Log)
	assert.Equal(t, orm.EncodeSequence(0), dres.Data)
	assert.Equal(t, int64(50), chres.GasWanted)
	require.Len(t, dres.Tags, 1)
	assert.Equal(t, []byte("nft/mint"), dres.Tags[0].Value)

	_, dres = chain.submit(adminKey, &nft.MintMsg{RegistryID: regID, Owner: c, Metadata: "m2"})
	require.Equal(t, uint32(0), dres.Code, dres.Log)
	assert.Equal(t, orm.EncodeSequence(1), dres.Data)

	_, dres = chain.submit(adminKey, &nft.BurnMsg{RegistryID: regID, TokenID: 0})
	require.Equal(t, uint32(0), dres.Code, dres.Log)
	assert.Equal(t, orm.EncodeSequence(0), dres.Data)

	// Anyone else is rejected and the counter is unchanged.
	chres, dres = chain.submit(otherKey, &nft.MintMsg{RegistryID: regID, Owner: c, Metadata: "m3"})
	assert.Equal(t, errors.ErrUnauthorized.ABCICode(), chres.Code)
	assert.Equal(t, errors.ErrUnauthorized.ABCICode(), dres.Code)

	// Burning twice reports the missing token.
	_, dres = chain.submit(adminKey, &nft.BurnMsg{RegistryID: regID, TokenID: 0})
	assert.Equal(t, errors.ErrNotFound.ABCICode(), dres.Code)

	tokens := chain.query("/nft/tokens?prefix", regID)
	require.Len(t, tokens, 1)
	var token nft.Token
	require.NoError(t, token.Unmarshal(tokens[0]))
	assert.Equal(t, nft.Token{Owner: c, Metadata: "m2"}, token)

	// A new mint continues the sequence.
	_, dres = chain.submit(adminKey, &nft.MintMsg{RegistryID: regID, Owner: b})
	require.Equal(t, uint32(0), dres.Code, dres.Log)
	assert.Equal(t, orm.EncodeSequence(2), dres.Data)

	owned := chain.query("/nft/tokens/owner", append(append([]byte{}, regID...), b...))
	assert.Len(t, owned, 1)
}

func TestInstantiateAndPayment(t *testing.T) {
	adminKey := crypto.GenPrivKeyEd25519()
	admin := adminKey.PublicKey().Address()
	creatorKey := crypto.GenPrivKeyEd25519()
	owner := crypto.GenPrivKeyEd25519().PublicKey().Address()

	chain := newTestChain(t, admin)

	// Anyone can create a registry, the admin is named in the message.
	_, dres := chain.submit(creatorKey, &nft.InstantiateMsg{Admin: admin, Name: "Second"})
	require.Equal(t, uint32(0), dres.Code, dres.Log)
	regID := dres.Data
	assert.Equal(t, orm.EncodeSequence(1), regID)

	payment := coin.NewCoinp(1000, 0, "IOV")
	_, dres = chain.submit(adminKey, &nft.MintMsg{RegistryID: regID, Owner: owner, Payment: payment})
	require.Equal(t, uint32(0), dres.Code, dres.Log)

	wallets := chain.query("/wallets", nft.PoolAddress(regID))
	require.Len(t, wallets, 1)
	var pool cash.Set
	require.NoError(t, pool.Unmarshal(wallets[0]))
	assert.Equal(t, coin.Coins{payment}, pool.Coins)

	// A payment above the balance fails without minting.
	_, dres = chain.submit(adminKey, &nft.MintMsg{RegistryID: regID, Owner: owner, Payment: coin.NewCoinp(initialSupply, 0, "IOV")})
	assert.Equal(t, cash.ErrInsufficientFunds.ABCICode(), dres.Code)

	_, dres = chain.submit(adminKey, &nft.MintMsg{RegistryID: regID, Owner: owner})
	require.Equal(t, uint32(0), dres.Code, dres.Log)
	assert.Equal(t, orm.EncodeSequence(1), dres.Data)
}

func TestRejectUnsignedTx(t *testing.T) {
	admin := crypto.GenPrivKeyEd25519().PublicKey().Address()
	chain := newTestChain(t, admin)

	raw, err := (&Tx{Msg: &nft.BurnMsg{RegistryID: orm.EncodeSequence(0)}}).Marshal()
	require.NoError(t, err)
	dres := chain.app.DeliverTx(raw)
	assert.Equal(t, errors.ErrUnauthorized.ABCICode(), dres.Code)

	dres = chain.app.DeliverTx([]byte("garbage"))
	assert.NotEqual(t, uint32(0), dres.Code)
}

func TestGenesisVisibleAfterFirstCommit(t *testing.T) {
	admin := crypto.GenPrivKeyEd25519().PublicKey().Address()
	myApp, err := GenerateApp("", log.NewNopLogger(), nil, false)
	require.NoError(t, err)
	state, err := GenInitOptions(admin, "IOV")
	require.NoError(t, err)
	myApp.InitChain(abci.RequestInitChain{ChainId: chainID, AppStateBytes: state})

	query := abci.RequestQuery{Path: "/nft/registries", Data: orm.EncodeSequence(0)}
	res := myApp.Query(query)
	require.Equal(t, uint32(0), res.Code, res.Log)
	assert.Empty(t, res.Value)

	myApp.BeginBlock(abci.RequestBeginBlock{Header: abci.Header{Height: 1, ChainID: chainID}})
	myApp.EndBlock(abci.RequestEndBlock{Height: 1})
	myApp.Commit()

	res = myApp.Query(query)
	require.Equal(t, uint32(0), res.Code, res.Log)
	assert.Equal(t, int64(1), res.Height)
	var values app.ResultSet
	require.NoError(t, values.Unmarshal(res.Value))
	require.Len(t, values.Results, 1)
	var reg nft.Registry
	require.NoError(t, reg.Unmarshal(values.Results[0]))
	assert.Equal(t, admin, reg.Admin)
}
