package sigs

import (
	"github.com/iov-one/adminnft"
	"github.com/iov-one/adminnft/errors"
)

const (
	signatureVerifyCost = 500
)

// RegisterQuery will register this bucket as "/auth"
func RegisterQuery(qr adminnft.QueryRouter) {
	NewBucket().Register("auth", qr)
}

// Decorator verifies the signatures and adds them to the context
type Decorator struct {
	allowMissingSigs bool
}

var _ adminnft.Decorator = Decorator{}

// NewDecorator returns a default authentication decorator,
// which appends the chainID before checking the signature,
// and requires at least one signature to be present
func NewDecorator() Decorator {
	return Decorator{
		allowMissingSigs: false,
	}
}

// AllowMissingSigs allows us to pass along items with no signatures
func (d Decorator) AllowMissingSigs() Decorator {
	d.allowMissingSigs = true
	return d
}

// Check verifies signatures before calling down the stack.
func (d Decorator) Check(ctx adminnft.Context, db adminnft.KVStore, tx adminnft.Tx, next adminnft.Checker) (*adminnft.CheckResult, error) {
	ctx, signers, err := d.authenticate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	res, err := next.Check(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	// Signature validation is the most expensive part of a check. Only
	// valid signatures are charged.
	res.GasPayment += int64(len(signers) * signatureVerifyCost)
	return res, nil
}

// Deliver verifies signatures before calling down the stack.
func (d Decorator) Deliver(ctx adminnft.Context, db adminnft.KVStore, tx adminnft.Tx, next adminnft.Deliverer) (*adminnft.DeliverResult, error) {
	ctx, _, err := d.authenticate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	return next.Deliver(ctx, db, tx)
}

func (d Decorator) authenticate(ctx adminnft.Context, db adminnft.KVStore, tx adminnft.Tx) (adminnft.Context, []adminnft.Condition, error) {
	stx, ok := tx.(SignedTx)
	if !ok {
		return ctx, nil, nil
	}

	signers, err := VerifyTxSignatures(db, stx, adminnft.GetChainID(ctx))
	if err != nil {
		return nil, nil, errors.Wrap(err, "cannot verify signatures")
	}
	if len(signers) == 0 && !d.allowMissingSigs {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	return withSigners(ctx, signers), signers, nil
}
