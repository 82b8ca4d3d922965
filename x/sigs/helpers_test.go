package sigs

import (
	"github.com/iov-one/adminnft"
	"github.com/iov-one/adminnft/weavetest"
)

// StdTx is a signed transaction mock carrying a single message.
type StdTx struct {
	weavetest.Tx
	Signatures []*StdSignature
}

var _ SignedTx = (*StdTx)(nil)
var _ adminnft.Tx = (*StdTx)(nil)

func NewStdTx(payload []byte) *StdTx {
	msg := &weavetest.Msg{RoutePath: "nft/mint", Serialized: payload}
	return &StdTx{Tx: weavetest.Tx{Msg: msg}}
}

func (tx *StdTx) GetSignatures() []*StdSignature {
	return tx.Signatures
}

func (tx *StdTx) GetSignBytes() ([]byte, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	return msg.Marshal()
}

// SigCheckHandler stores the seen signers on each call
type SigCheckHandler struct {
	Signers []adminnft.Condition
}

var _ adminnft.Handler = (*SigCheckHandler)(nil)

func (s *SigCheckHandler) Check(ctx adminnft.Context, db adminnft.KVStore, tx adminnft.Tx) (*adminnft.CheckResult, error) {
	s.Signers = Authenticate{}.GetConditions(ctx)
	return &adminnft.CheckResult{}, nil
}

func (s *SigCheckHandler) Deliver(ctx adminnft.Context, db adminnft.KVStore, tx adminnft.Tx) (*adminnft.DeliverResult, error) {
	s.Signers = Authenticate{}.GetConditions(ctx)
	return &adminnft.DeliverResult{}, nil
}
