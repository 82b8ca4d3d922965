package weavetest

import (
	"context"
	"fmt"

	"github.com/iov-one/adminnft"
)

// Auth is a static mock of the x.Authenticator interface.
//
// It authenticates every condition referenced by Signer or Signers.
type Auth struct {
	// Signer is a shortcut for authenticating a single caller.
	Signer adminnft.Condition

	// Signers are authenticated together with Signer.
	Signers []adminnft.Condition
}

func (a *Auth) GetConditions(adminnft.Context) []adminnft.Condition {
	if a.Signer != nil {
		return append(a.Signers, a.Signer)
	}
	return a.Signers
}

func (a *Auth) HasAddress(ctx adminnft.Context, addr adminnft.Address) bool {
	for _, c := range a.GetConditions(ctx) {
		if addr.Equals(c.Address()) {
			return true
		}
	}
	return false
}

// CtxAuth is a mock of the x.Authenticator interface that keeps the
// authenticated conditions in the context.
type CtxAuth struct {
	// Key under which the conditions are stored in the context.
	Key string
}

// SetConditions returns a context that authenticates given conditions.
func (a *CtxAuth) SetConditions(ctx adminnft.Context, conds ...adminnft.Condition) adminnft.Context {
	return context.WithValue(ctx, a.Key, conds)
}

func (a *CtxAuth) GetConditions(ctx adminnft.Context) []adminnft.Condition {
	val := ctx.Value(a.Key)
	if val == nil {
		return nil
	}
	conds, ok := val.([]adminnft.Condition)
	if !ok {
		panic(fmt.Sprintf("instead of []adminnft.Condition got %T", val))
	}
	return conds
}

func (a *CtxAuth) HasAddress(ctx adminnft.Context, addr adminnft.Address) bool {
	for _, c := range a.GetConditions(ctx) {
		if addr.Equals(c.Address()) {
			return true
		}
	}
	return false
}
