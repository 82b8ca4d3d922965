package weavetest

import "github.com/iov-one/adminnft"

// Handler is a mock of adminnft.Handler that counts its calls.
//
// When WriteKey is set, every Deliver call writes WriteKey/WriteValue to the
// store before returning, so that the transactional behaviour of decorators
// can be tested.
type Handler struct {
	checkCall   int
	CheckResult adminnft.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult adminnft.DeliverResult
	DeliverErr    error

	WriteKey   []byte
	WriteValue []byte

	// Panic if set makes every call panic with this value.
	Panic interface{}
}

var _ adminnft.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx adminnft.Context, db adminnft.KVStore, tx adminnft.Tx) (*adminnft.CheckResult, error) {
	h.checkCall++
	if h.Panic != nil {
		panic(h.Panic)
	}
	res := h.CheckResult
	return &res, h.CheckErr
}

func (h *Handler) Deliver(ctx adminnft.Context, db adminnft.KVStore, tx adminnft.Tx) (*adminnft.DeliverResult, error) {
	h.deliverCall++
	if h.Panic != nil {
		panic(h.Panic)
	}
	if h.WriteKey != nil {
		if err := db.Set(h.WriteKey, h.WriteValue); err != nil {
			return nil, err
		}
	}
	res := h.DeliverResult
	return &res, h.DeliverErr
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}
