package utils

import (
	"github.com/iov-one/adminnft"
	"github.com/iov-one/adminnft/errors"
)

// Recovery converts a panic raised further down the stack into an
// ErrPanic result and logs it. A panicking handler never takes the node
// down.
type Recovery struct{}

var _ adminnft.Decorator = Recovery{}

func NewRecovery() Recovery {
	return Recovery{}
}

func (Recovery) Check(ctx adminnft.Context, db adminnft.KVStore, tx adminnft.Tx, next adminnft.Checker) (res *adminnft.CheckResult, err error) {
	defer logPanic(ctx, tx, &err)
	defer errors.Recover(&err)
	return next.Check(ctx, db, tx)
}

func (Recovery) Deliver(ctx adminnft.Context, db adminnft.KVStore, tx adminnft.Tx, next adminnft.Deliverer) (res *adminnft.DeliverResult, err error) {
	defer logPanic(ctx, tx, &err)
	defer errors.Recover(&err)
	return next.Deliver(ctx, db, tx)
}

// logPanic reports an error produced by errors.Recover. Deferred calls run
// in reverse order, so it sees the converted error.
func logPanic(ctx adminnft.Context, tx adminnft.Tx, err *error) {
	if *err == nil || !errors.ErrPanic.Is(*err) {
		return
	}
	path := "(missing)"
	if tx != nil {
		path = adminnft.GetPath(tx)
	}
	adminnft.GetLogger(ctx).Error("Recovered panic", "path", path, "err", *err)
}
