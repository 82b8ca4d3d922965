package adminnft

import (
	"context"
	"regexp"
	"time"

	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// Context is passed through the app, decorators and handlers. Each layer may
// enrich it with its own values, for example the authentication extension
// stores the signers.
//
// For every value XYZ of type T that is supported there are two functions:
//
//   WithXYZ(Context, T) Context
//   GetXYZ(Context) (val T, ok bool)
//
// WithXYZ panics if the value was previously set, so that lower level modules
// cannot overwrite it.
type Context = context.Context

type contextKey int // local to this package

const (
	contextKeyHeight contextKey = iota
	contextKeyHeader
	contextKeyChainID
	contextKeyLogger
)

var (
	// DefaultLogger is used for all contexts that have not set anything
	// themselves.
	DefaultLogger = log.NewNopLogger()

	// IsValidChainID is the RegExp to ensure valid chain IDs.
	IsValidChainID = regexp.MustCompile(`^[a-zA-Z0-9_\-]{6,20}$`).MatchString
)

// WithHeader sets the block header for the Context.
// It panics if the header is already set.
func WithHeader(ctx Context, header abci.Header) Context {
	if _, ok := GetHeader(ctx); ok {
		panic("Header already set")
	}
	return context.WithValue(ctx, contextKeyHeader, header)
}

// GetHeader returns the current block header. ok is false if no header was
// set in this context.
func GetHeader(ctx Context) (abci.Header, bool) {
	val, ok := ctx.Value(contextKeyHeader).(abci.Header)
	return val, ok
}

// BlockTime returns the time declared by the current block header.
func BlockTime(ctx Context) (time.Time, bool) {
	h, ok := GetHeader(ctx)
	if !ok {
		return time.Time{}, false
	}
	return h.Time, true
}

// WithHeight sets the block height for the Context.
// It panics if the height is already set.
func WithHeight(ctx Context, height int64) Context {
	if _, ok := GetHeight(ctx); ok {
		panic("Height already set")
	}
	return context.WithValue(ctx, contextKeyHeight, height)
}

// GetHeight returns the current block height. ok is false if no height was
// set in this context.
func GetHeight(ctx Context) (int64, bool) {
	val, ok := ctx.Value(contextKeyHeight).(int64)
	return val, ok
}

// WithChainID sets the chain id for the Context.
// It panics if the chain id is already set or is invalid.
func WithChainID(ctx Context, chainID string) Context {
	if ctx.Value(contextKeyChainID) != nil {
		panic("Chain ID already set")
	}
	if !IsValidChainID(chainID) {
		panic("Invalid chain ID")
	}
	return context.WithValue(ctx, contextKeyChainID, chainID)
}

// GetChainID returns the current chain id. It returns an empty string if no
// chain id was set.
func GetChainID(ctx Context) string {
	val, _ := ctx.Value(contextKeyChainID).(string)
	return val
}

// WithLogger sets the logger for this Context.
func WithLogger(ctx Context, logger log.Logger) Context {
	return context.WithValue(ctx, contextKeyLogger, logger)
}

// WithLogInfo accepts keyvalue pairs and returns another context with a
// logger that includes them.
func WithLogInfo(ctx Context, keyvals ...interface{}) Context {
	logger := GetLogger(ctx).With(keyvals...)
	return WithLogger(ctx, logger)
}

// GetLogger returns the currently set logger, or DefaultLogger if none was
// set.
func GetLogger(ctx Context) log.Logger {
	val, ok := ctx.Value(contextKeyLogger).(log.Logger)
	if !ok {
		return DefaultLogger
	}
	return val
}
