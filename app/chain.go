package app

import (
	"reflect"

	"github.com/iov-one/adminnft"
)

// Decorators holds a chain of decorators, not yet resolved by a Handler.
type Decorators struct {
	chain []adminnft.Decorator
}

/*
ChainDecorators takes a chain of decorators, and upon adding a final Handler
(often a Router), returns a Handler that will execute this whole stack.

  app.ChainDecorators(
    utils.NewRecovery(),
    utils.NewLogging(),
    sigs.NewDecorator(),
    utils.NewSavepoint().OnDeliver(),
  ).WithHandler(
    router,
  )
*/
func ChainDecorators(chain ...adminnft.Decorator) Decorators {
	return Decorators{}.Chain(chain...)
}

// Chain allows us to keep adding more Decorators to the chain. Nil
// decorators are skipped.
func (d Decorators) Chain(chain ...adminnft.Decorator) Decorators {
	next := make([]adminnft.Decorator, len(d.chain), len(d.chain)+len(chain))
	copy(next, d.chain)
	for _, dec := range chain {
		if isNil(dec) {
			continue
		}
		next = append(next, dec)
	}
	return Decorators{chain: next}
}

func isNil(d adminnft.Decorator) bool {
	if d == nil {
		return true
	}
	v := reflect.ValueOf(d)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// WithHandler resolves the stack and returns a concrete Handler that will
// pass through the chain of decorators before calling the final Handler.
func (d Decorators) WithHandler(h adminnft.Handler) adminnft.Handler {
	// The first decorator of the chain is the outermost one.
	for i := len(d.chain) - 1; i >= 0; i-- {
		h = step{d: d.chain[i], next: h}
	}
	return h
}

// step captures one step executing a decorator around a specific Handler.
type step struct {
	d    adminnft.Decorator
	next adminnft.Handler
}

var _ adminnft.Handler = step{}

func (s step) Check(ctx adminnft.Context, db adminnft.KVStore, tx adminnft.Tx) (*adminnft.CheckResult, error) {
	return s.d.Check(ctx, db, tx, s.next)
}

func (s step) Deliver(ctx adminnft.Context, db adminnft.KVStore, tx adminnft.Tx) (*adminnft.DeliverResult, error) {
	return s.d.Deliver(ctx, db, tx, s.next)
}
