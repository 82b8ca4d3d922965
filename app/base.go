package app

import (
	"github.com/iov-one/adminnft"
	"github.com/iov-one/adminnft/errors"
	abci "github.com/tendermint/tendermint/abci/types"
)

// BaseApp adds DeliverTx and CheckTx handlers to the storage and query
// functionality of StoreApp.
type BaseApp struct {
	*StoreApp
	decoder adminnft.TxDecoder
	handler adminnft.Handler
	debug   bool
}

var _ abci.Application = BaseApp{}

// NewBaseApp constructs a basic abci application.
func NewBaseApp(
	store *StoreApp,
	decoder adminnft.TxDecoder,
	handler adminnft.Handler,
	debug bool,
) BaseApp {
	return BaseApp{
		StoreApp: store,
		decoder:  decoder,
		handler:  handler,
		debug:    debug,
	}
}

// DeliverTx implements abci.Application. It dispatches to the handler.
func (b BaseApp) DeliverTx(txBytes []byte) abci.ResponseDeliverTx {
	tx, err := b.loadTx(txBytes)
	if err != nil {
		return adminnft.DeliverTxError(err, b.debug)
	}

	ctx := adminnft.WithLogInfo(b.BlockContext(),
		"call", "deliver_tx",
		"path", adminnft.GetPath(tx))

	res, err := b.handler.Deliver(ctx, b.DeliverStore(), tx)
	return adminnft.DeliverOrError(res, err, b.debug)
}

// CheckTx implements abci.Application. It dispatches to the handler.
func (b BaseApp) CheckTx(txBytes []byte) abci.ResponseCheckTx {
	tx, err := b.loadTx(txBytes)
	if err != nil {
		return adminnft.CheckTxError(err, b.debug)
	}

	ctx := adminnft.WithLogInfo(b.BlockContext(),
		"call", "check_tx",
		"path", adminnft.GetPath(tx))

	res, err := b.handler.Check(ctx, b.CheckStore(), tx)
	return adminnft.CheckOrError(res, err, b.debug)
}

// loadTx calls the decoder, and captures any panics.
func (b BaseApp) loadTx(txBytes []byte) (tx adminnft.Tx, err error) {
	defer errors.Recover(&err)
	tx, err = b.decoder(txBytes)
	if err != nil {
		return nil, errors.Wrap(err, "decode tx")
	}
	return tx, nil
}
