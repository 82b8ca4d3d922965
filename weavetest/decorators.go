package weavetest

import "github.com/iov-one/adminnft"

// Decorator counts its calls and can fail either phase. A failing phase
// does not call the next handler.
type Decorator struct {
	CheckErr   error
	DeliverErr error

	checks, delivers int
}

var _ adminnft.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx adminnft.Context, db adminnft.KVStore, tx adminnft.Tx, next adminnft.Checker) (*adminnft.CheckResult, error) {
	if d.checks++; d.CheckErr != nil {
		return nil, d.CheckErr
	}
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx adminnft.Context, db adminnft.KVStore, tx adminnft.Tx, next adminnft.Deliverer) (*adminnft.DeliverResult, error) {
	if d.delivers++; d.DeliverErr != nil {
		return nil, d.DeliverErr
	}
	return next.Deliver(ctx, db, tx)
}

func (d *Decorator) CheckCallCount() int {
	return d.checks
}

func (d *Decorator) DeliverCallCount() int {
	return d.delivers
}

func (d *Decorator) CallCount() int {
	return d.checks + d.delivers
}

// Decorate wraps h with d, so that a single decorator can be tested
// without building a chain.
func Decorate(h adminnft.Handler, d adminnft.Decorator) adminnft.Handler {
	return decorated{next: h, dec: d}
}

type decorated struct {
	next adminnft.Handler
	dec  adminnft.Decorator
}

func (w decorated) Check(ctx adminnft.Context, db adminnft.KVStore, tx adminnft.Tx) (*adminnft.CheckResult, error) {
	return w.dec.Check(ctx, db, tx, w.next)
}

func (w decorated) Deliver(ctx adminnft.Context, db adminnft.KVStore, tx adminnft.Tx) (*adminnft.DeliverResult, error) {
	return w.dec.Deliver(ctx, db, tx, w.next)
}
