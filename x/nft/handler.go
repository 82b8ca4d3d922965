package nft

import (
	"github.com/iov-one/adminnft"
	"github.com/iov-one/adminnft/errors"
	"github.com/iov-one/adminnft/orm"
	"github.com/iov-one/adminnft/x"
)

const (
	instantiateCost = 100
	mintCost        = 50
	burnCost        = 10
)

// RegisterQuery registers the registry and token buckets as
// "/nft/registries", "/nft/tokens" and "/nft/tokens/owner".
func RegisterQuery(qr adminnft.QueryRouter) {
	NewRegistryBucket().Register("nft/registries", qr)
	NewTokenBucket().Register("nft/tokens", qr)
}

// RegisterRoutes will instantiate and register all handlers in this package.
func RegisterRoutes(r adminnft.Registry, auth x.Authenticator, cash Balancer) {
	ctrl := NewController(cash)
	r.Handle(&InstantiateMsg{}, &instantiateHandler{ctrl: ctrl})
	r.Handle(&MintMsg{}, &mintHandler{auth: auth, ctrl: ctrl})
	r.Handle(&BurnMsg{}, &burnHandler{auth: auth, ctrl: ctrl})
}

type instantiateHandler struct {
	ctrl *Controller
}

var _ adminnft.Handler = (*instantiateHandler)(nil)

func (h *instantiateHandler) Check(ctx adminnft.Context, db adminnft.KVStore, tx adminnft.Tx) (*adminnft.CheckResult, error) {
	if _, err := h.validate(tx); err != nil {
		return nil, err
	}
	return &adminnft.CheckResult{GasAllocated: instantiateCost}, nil
}

func (h *instantiateHandler) Deliver(ctx adminnft.Context, db adminnft.KVStore, tx adminnft.Tx) (*adminnft.DeliverResult, error) {
	msg, err := h.validate(tx)
	if err != nil {
		return nil, err
	}
	id, err := h.ctrl.Instantiate(db, &Registry{
		Admin:       msg.Admin,
		Name:        msg.Name,
		Description: msg.Description,
	})
	if err != nil {
		return nil, err
	}
	return &adminnft.DeliverResult{Data: id}, nil
}

func (h *instantiateHandler) validate(tx adminnft.Tx) (*InstantiateMsg, error) {
	var msg InstantiateMsg
	if err := adminnft.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &msg, nil
}

type mintHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

var _ adminnft.Handler = (*mintHandler)(nil)

func (h *mintHandler) Check(ctx adminnft.Context, db adminnft.KVStore, tx adminnft.Tx) (*adminnft.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &adminnft.CheckResult{GasAllocated: mintCost}, nil
}

func (h *mintHandler) Deliver(ctx adminnft.Context, db adminnft.KVStore, tx adminnft.Tx) (*adminnft.DeliverResult, error) {
	msg, reg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	id, err := h.ctrl.Mint(db, reg.Admin, msg.RegistryID, msg.Owner, msg.Metadata, msg.Payment)
	if err != nil {
		return nil, err
	}
	return &adminnft.DeliverResult{Data: orm.EncodeSequence(id)}, nil
}

func (h *mintHandler) validate(ctx adminnft.Context, db adminnft.KVStore, tx adminnft.Tx) (*MintMsg, *Registry, error) {
	var msg MintMsg
	if err := adminnft.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	reg, err := authorizedRegistry(ctx, h.auth, h.ctrl, db, msg.RegistryID)
	if err != nil {
		return nil, nil, err
	}
	return &msg, reg, nil
}

type burnHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

var _ adminnft.Handler = (*burnHandler)(nil)

func (h *burnHandler) Check(ctx adminnft.Context, db adminnft.KVStore, tx adminnft.Tx) (*adminnft.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &adminnft.CheckResult{GasAllocated: burnCost}, nil
}

func (h *burnHandler) Deliver(ctx adminnft.Context, db adminnft.KVStore, tx adminnft.Tx) (*adminnft.DeliverResult, error) {
	msg, reg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	id, err := h.ctrl.Burn(db, reg.Admin, msg.RegistryID, msg.TokenID)
	if err != nil {
		return nil, err
	}
	return &adminnft.DeliverResult{Data: orm.EncodeSequence(id)}, nil
}

func (h *burnHandler) validate(ctx adminnft.Context, db adminnft.KVStore, tx adminnft.Tx) (*BurnMsg, *Registry, error) {
	var msg BurnMsg
	if err := adminnft.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	reg, err := authorizedRegistry(ctx, h.auth, h.ctrl, db, msg.RegistryID)
	if err != nil {
		return nil, nil, err
	}
	if err := h.ctrl.tokens.Has(db, tokenKey(msg.RegistryID, msg.TokenID)); err != nil {
		return nil, nil, errors.Wrapf(err, "token %d", msg.TokenID)
	}
	return &msg, reg, nil
}

// authorizedRegistry loads the registry and ensures its admin signed the
// transaction, so that an unauthorized call is rejected during the check
// already.
func authorizedRegistry(ctx adminnft.Context, auth x.Authenticator, ctrl *Controller, db adminnft.ReadOnlyKVStore, regID []byte) (*Registry, error) {
	reg, err := ctrl.Registry(db, regID)
	if err != nil {
		return nil, err
	}
	if !auth.HasAddress(ctx, reg.Admin) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "registry admin signature required")
	}
	return reg, nil
}
