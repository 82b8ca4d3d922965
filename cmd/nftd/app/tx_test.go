package app

import (
	"testing"

	"github.com/iov-one/adminnft"
	"github.com/iov-one/adminnft/crypto"
	"github.com/iov-one/adminnft/errors"
	"github.com/iov-one/adminnft/orm"
	"github.com/iov-one/adminnft/x/nft"
	"github.com/iov-one/adminnft/x/sigs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxRoundTrip(t *testing.T) {
	key := crypto.GenPrivKeyEd25519()
	msg := &nft.MintMsg{
		RegistryID: orm.EncodeSequence(3),
		Owner:      key.PublicKey().Address(),
		Metadata:   "ipfs://token",
	}
	tx := &Tx{Msg: msg}
	sig, err := sigs.SignTx(key, tx, chainID, 7)
	require.NoError(t, err)
	tx.Signatures = []*sigs.StdSignature{sig}

	raw, err := tx.Marshal()
	require.NoError(t, err)

	decoded, err := TxDecoder(raw)
	require.NoError(t, err)
	got, err := decoded.GetMsg()
	require.NoError(t, err)
	assert.Equal(t, msg, got)

	var loaded nft.MintMsg
	require.NoError(t, adminnft.LoadMsg(decoded, &loaded))
	assert.Equal(t, *msg, loaded)

	signed, ok := decoded.(sigs.SignedTx)
	require.True(t, ok)
	require.Len(t, signed.GetSignatures(), 1)
	assert.Equal(t, int64(7), signed.GetSignatures()[0].Sequence)
}

func TestSignBytesIgnoreSignatures(t *testing.T) {
	tx := &Tx{Msg: &nft.BurnMsg{RegistryID: orm.EncodeSequence(1), TokenID: 2}}
	unsigned, err := tx.GetSignBytes()
	require.NoError(t, err)

	sig, err := sigs.SignTx(crypto.GenPrivKeyEd25519(), tx, chainID, 0)
	require.NoError(t, err)
	tx.Signatures = []*sigs.StdSignature{sig}
	signed, err := tx.GetSignBytes()
	require.NoError(t, err)
	assert.Equal(t, unsigned, signed)

	other := &Tx{Msg: &nft.BurnMsg{RegistryID: orm.EncodeSequence(1), TokenID: 3}}
	otherBytes, err := other.GetSignBytes()
	require.NoError(t, err)
	assert.NotEqual(t, unsigned, otherBytes)
}

func TestTxWithoutMsg(t *testing.T) {
	var tx Tx
	_, err := tx.GetMsg()
	assert.True(t, errors.ErrMsg.Is(err))

	_, err = TxDecoder([]byte("{not json"))
	assert.Error(t, err)
}
