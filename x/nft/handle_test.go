package nft

import (
	"sync"
	"testing"

	"github.com/iov-one/adminnft/coin"
	"github.com/iov-one/adminnft/errors"
	"github.com/iov-one/adminnft/store"
	"github.com/iov-one/adminnft/weavetest"
	"github.com/iov-one/adminnft/weavetest/assert"
	"github.com/iov-one/adminnft/x/cash"
)

func TestHandleScenario(t *testing.T) {
	db := store.MemStore()
	a := weavetest.RandomAddr(t)
	b := weavetest.RandomAddr(t)
	c := weavetest.RandomAddr(t)
	x := weavetest.RandomAddr(t)

	h, err := Instantiate(db, a)
	assert.Nil(t, err)
	assert.Equal(t, a, h.Admin())

	id, err := h.Mint(a, b, "m1")
	assert.Nil(t, err)
	assert.Equal(t, uint64(0), id)
	id, err = h.Mint(a, c, "m2")
	assert.Nil(t, err)
	assert.Equal(t, uint64(1), id)

	id, err = h.Burn(a, 0)
	assert.Nil(t, err)
	assert.Equal(t, uint64(0), id)

	_, err = h.Token(0)
	assert.IsErr(t, errors.ErrNotFound, err)
	token, err := h.Token(1)
	assert.Nil(t, err)
	assert.Equal(t, &Token{Owner: c, Metadata: "m2"}, token)

	_, err = h.Mint(x, x, "m3")
	assert.IsErr(t, errors.ErrUnauthorized, err)
	next, err := h.NextID()
	assert.Nil(t, err)
	assert.Equal(t, uint64(2), next)

	_, err = h.Burn(a, 0)
	assert.IsErr(t, errors.ErrNotFound, err)

	_, err = h.Burn(x, 1)
	assert.IsErr(t, errors.ErrUnauthorized, err)
	ids, err := h.TokensByOwner(c)
	assert.Nil(t, err)
	assert.Equal(t, []uint64{1}, ids)
}

func TestHandleInstantiateFailure(t *testing.T) {
	db := store.MemStore()
	_, err := Instantiate(db, nil)
	assert.IsErr(t, errors.ErrEmpty, err)

	// Nothing was written, the first valid registry still gets ID 0.
	h, err := Instantiate(db, weavetest.RandomAddr(t))
	assert.Nil(t, err)
	assert.Equal(t, weavetest.SequenceID(0), h.ID())
}

func TestHandleFailedPaymentRollsBack(t *testing.T) {
	db := store.MemStore()
	admin := weavetest.RandomAddr(t)
	owner := weavetest.RandomAddr(t)

	cashCtrl := cash.NewController(cash.NewBucket())
	assert.Nil(t, cashCtrl.IssueCoins(db, admin, coin.NewCoin(5, 0, "IOV")))

	h, err := InstantiateRegistry(db, &Registry{Admin: admin}, NewController(cashCtrl))
	assert.Nil(t, err)

	_, err = h.MintWithPayment(admin, owner, "paid", coin.NewCoinp(2, 0, "IOV"))
	assert.Nil(t, err)

	// An invalid owner fails after the registry was checked. Nothing is
	// collected and no ID is used.
	_, err = h.MintWithPayment(admin, nil, "broken", coin.NewCoinp(2, 0, "IOV"))
	assert.IsErr(t, errors.ErrEmpty, err)
	_, err = h.MintWithPayment(admin, owner, "too much", coin.NewCoinp(4, 0, "IOV"))
	assert.IsErr(t, cash.ErrInsufficientFunds, err)

	next, err := h.NextID()
	assert.Nil(t, err)
	assert.Equal(t, uint64(1), next)

	pool, err := h.PaymentPool()
	assert.Nil(t, err)
	assert.Equal(t, coin.Coins{coin.NewCoinp(2, 0, "IOV")}, pool)
	balance, err := cashCtrl.Balance(db, admin)
	assert.Nil(t, err)
	assert.Equal(t, coin.Coins{coin.NewCoinp(3, 0, "IOV")}, balance)
}

func TestHandleConcurrentMints(t *testing.T) {
	db := store.MemStore()
	admin := weavetest.RandomAddr(t)
	stranger := weavetest.RandomAddr(t)
	h, err := Instantiate(db, admin)
	assert.Nil(t, err)

	const workers = 8
	const perWorker = 25

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		ids = make(map[uint64]int)
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				id, err := h.Mint(admin, admin, "")
				if err != nil {
					t.Errorf("mint: %s", err)
					return
				}
				if _, err := h.Mint(stranger, stranger, ""); !errors.ErrUnauthorized.Is(err) {
					t.Errorf("want unauthorized, got %v", err)
					return
				}
				mu.Lock()
				ids[id]++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, workers*perWorker, len(ids))
	for id, n := range ids {
		if n != 1 {
			t.Fatalf("id %d issued %d times", id, n)
		}
		if id >= workers*perWorker {
			t.Fatalf("id %d out of range", id)
		}
	}
	next, err := h.NextID()
	assert.Nil(t, err)
	assert.Equal(t, uint64(workers*perWorker), next)
}
