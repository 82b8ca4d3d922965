/*
Package app links together all the various components to construct the
nftd application.
*/
package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/iov-one/adminnft"
	"github.com/iov-one/adminnft/app"
	"github.com/iov-one/adminnft/errors"
	"github.com/iov-one/adminnft/orm"
	"github.com/iov-one/adminnft/store/iavl"
	"github.com/iov-one/adminnft/x"
	"github.com/iov-one/adminnft/x/cash"
	"github.com/iov-one/adminnft/x/nft"
	"github.com/iov-one/adminnft/x/sigs"
	"github.com/iov-one/adminnft/x/utils"
	"github.com/tendermint/tendermint/libs/log"
)

// Authenticator returns the authentication used by all handlers. Only
// public key signatures are supported.
func Authenticator() x.Authenticator {
	return x.ChainAuth(sigs.Authenticate{})
}

// Chain returns a chain of decorators, to handle authentication, logging,
// metrics and recovery. metrics may be nil.
func Chain(metrics *utils.Metrics) app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		metrics,
		// on CheckTx, bad tx don't affect state
		utils.NewSavepoint().OnCheck(),
		sigs.NewDecorator(),
		utils.NewActionTagger(),
		// on DeliverTx, bad tx will increment the nonce even if the
		// message fails
		utils.NewSavepoint().OnDeliver(),
	)
}

// Router returns a router dispatching all registry messages.
func Router(authFn x.Authenticator, cashCtrl nft.Balancer) *app.Router {
	r := app.NewRouter()
	nft.RegisterRoutes(r, authFn, cashCtrl)
	return r
}

// QueryRouter returns a default query router, allowing access to "/",
// "/auth", "/wallets", "/nft/registries", "/nft/tokens" and
// "/nft/tokens/owner".
func QueryRouter() adminnft.QueryRouter {
	r := adminnft.NewQueryRouter()
	r.RegisterAll(
		orm.RegisterQuery,
		sigs.RegisterQuery,
		cash.RegisterQuery,
		nft.RegisterQuery,
	)
	return r
}

// Stack wires up a standard router with a standard decorator chain. This
// can be passed into BaseApp.
func Stack(metrics *utils.Metrics) adminnft.Handler {
	authFn := Authenticator()
	cashCtrl := cash.NewController(cash.NewBucket())
	return Chain(metrics).WithHandler(Router(authFn, cashCtrl))
}

// Initializers returns the genesis initializers of all extensions.
func Initializers() adminnft.Initializer {
	return adminnft.ChainInitializers(
		cash.Initializer{},
		nft.Initializer{},
	)
}

// Application constructs a basic ABCI application with the given
// arguments. If you are not sure what to use for the Handler, just use
// Stack().
func Application(name string, h adminnft.Handler, tx adminnft.TxDecoder, dbPath string, logger log.Logger, debug bool) (app.BaseApp, error) {
	kv, err := CommitKVStore(dbPath)
	if err != nil {
		return app.BaseApp{}, err
	}
	store, err := app.NewStoreApp(name, kv, QueryRouter(), context.Background())
	if err != nil {
		return app.BaseApp{}, err
	}
	store = store.WithLogger(logger).WithInit(Initializers())
	return app.NewBaseApp(store, tx, h, debug), nil
}

// CommitKVStore returns an initialized KVStore that persists the data to the
// named path. An empty path returns an in-memory store.
func CommitKVStore(dbPath string) (adminnft.CommitKVStore, error) {
	if dbPath == "" {
		return iavl.MockCommitStore(), nil
	}

	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "invalid database name: %s", dbPath)
	}
	// Some callers add a ".db" suffix, which is added by the backend.
	path = strings.TrimSuffix(path, filepath.Ext(path))

	dir := filepath.Dir(path)
	name := filepath.Base(path)
	return iavl.NewCommitStore(dir, name)
}

// GenerateApp creates the registry application storing its state in home.
// An empty home keeps everything in memory.
func GenerateApp(home string, logger log.Logger, metrics *utils.Metrics, debug bool) (app.BaseApp, error) {
	var dbPath string
	if home != "" {
		dbPath = filepath.Join(home, "nftd.db")
	}
	return Application("nftd", Stack(metrics), TxDecoder, dbPath, logger, debug)
}
