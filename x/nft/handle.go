package nft

import (
	"sync"

	"github.com/iov-one/adminnft"
	"github.com/iov-one/adminnft/coin"
	"github.com/iov-one/adminnft/x/cash"
)

// Handle gives direct access to a single registry, outside of any
// transaction processing. All calls are serialized. Every mutation runs in
// its own cache wrap that is written only if the operation succeeds, so a
// failed call leaves the store untouched.
type Handle struct {
	mu    sync.Mutex
	db    adminnft.CacheableKVStore
	ctrl  *Controller
	id    []byte
	admin adminnft.Address
}

// Instantiate creates a new registry administered by admin and returns a
// handle to it. Payments are kept in the cash wallets of the same store.
func Instantiate(db adminnft.CacheableKVStore, admin adminnft.Address) (*Handle, error) {
	return InstantiateRegistry(db, &Registry{Admin: admin}, NewController(cash.NewController(cash.NewBucket())))
}

// InstantiateRegistry creates the registry using the given controller.
func InstantiateRegistry(db adminnft.CacheableKVStore, reg *Registry, ctrl *Controller) (*Handle, error) {
	h := &Handle{db: db, ctrl: ctrl}
	err := h.atomic(func(kv adminnft.KVStore) error {
		id, err := ctrl.Instantiate(kv, reg)
		if err != nil {
			return err
		}
		h.id = id
		h.admin = reg.Admin.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return h, nil
}

// atomic runs fn with exclusive access to a cache wrap of the store.
func (h *Handle) atomic(fn func(adminnft.KVStore) error) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	cache := h.db.CacheWrap()
	if err := fn(cache); err != nil {
		cache.Discard()
		return err
	}
	return cache.Write()
}

// ID returns the registry ID.
func (h *Handle) ID() []byte {
	return append([]byte(nil), h.id...)
}

// Admin returns the address allowed to mint and burn.
func (h *Handle) Admin() adminnft.Address {
	return h.admin.Clone()
}

// Mint issues a token to the owner. See Controller.Mint.
func (h *Handle) Mint(caller, owner adminnft.Address, metadata string) (uint64, error) {
	return h.MintWithPayment(caller, owner, metadata, nil)
}

// MintWithPayment issues a token to the owner and moves the payment from the
// admin wallet into the registry pool.
func (h *Handle) MintWithPayment(caller, owner adminnft.Address, metadata string, payment *coin.Coin) (uint64, error) {
	var id uint64
	err := h.atomic(func(kv adminnft.KVStore) error {
		var err error
		id, err = h.ctrl.Mint(kv, caller, h.id, owner, metadata, payment)
		return err
	})
	return id, err
}

// Burn removes the token. See Controller.Burn.
func (h *Handle) Burn(caller adminnft.Address, id uint64) (uint64, error) {
	err := h.atomic(func(kv adminnft.KVStore) error {
		_, err := h.ctrl.Burn(kv, caller, h.id, id)
		return err
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Token returns the token with given ID.
func (h *Handle) Token(id uint64) (*Token, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.ctrl.Token(h.db, h.id, id)
}

// NextID returns the ID the next mint will issue.
func (h *Handle) NextID() (uint64, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.ctrl.NextID(h.db, h.id)
}

// PaymentPool returns the coins collected by mint payments.
func (h *Handle) PaymentPool() (coin.Coins, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.ctrl.PaymentPool(h.db, h.id)
}

// TokensByOwner returns the IDs of the tokens held by the owner.
func (h *Handle) TokensByOwner(owner adminnft.Address) ([]uint64, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.ctrl.TokensByOwner(h.db, h.id, owner)
}
