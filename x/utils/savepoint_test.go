package utils

import (
	"context"
	"testing"

	"github.com/iov-one/adminnft"
	"github.com/iov-one/adminnft/errors"
	"github.com/iov-one/adminnft/store"
	"github.com/iov-one/adminnft/weavetest"
	"github.com/iov-one/adminnft/weavetest/assert"
)

func TestSavepoint(t *testing.T) {
	// always written before calling the decorator
	ok, ov := []byte("demo"), []byte("data")
	// written by the handler
	nk, nv := []byte{1, 2, 3}, []byte{4, 5, 6}

	cases := map[string]struct {
		save    Savepoint
		handler adminnft.Handler
		check   bool
		wantErr *errors.Error
		written [][]byte
		missing [][]byte
	}{
		"savepoint disabled, error keeps the write": {
			save:    NewSavepoint(),
			handler: &writeHandler{key: nk, value: nv, err: errors.ErrHuman},
			check:   true,
			wantErr: errors.ErrHuman,
			written: [][]byte{ok, nk},
		},
		"savepoint on check, error rolls back": {
			save:    NewSavepoint().OnCheck(),
			handler: &writeHandler{key: nk, value: nv, err: errors.ErrHuman},
			check:   true,
			wantErr: errors.ErrHuman,
			written: [][]byte{ok},
			missing: [][]byte{nk},
		},
		"savepoint on deliver, error rolls back": {
			save:    NewSavepoint().OnDeliver(),
			handler: &weavetest.Handler{WriteKey: nk, WriteValue: nv, DeliverErr: errors.ErrUnauthorized},
			wantErr: errors.ErrUnauthorized,
			written: [][]byte{ok},
			missing: [][]byte{nk},
		},
		"double activation maintains both behaviors": {
			save:    NewSavepoint().OnDeliver().OnCheck(),
			handler: &weavetest.Handler{WriteKey: nk, WriteValue: nv, DeliverErr: errors.ErrNotFound},
			wantErr: errors.ErrNotFound,
			written: [][]byte{ok},
			missing: [][]byte{nk},
		},
		"savepoint on check does not affect deliver": {
			save:    NewSavepoint().OnCheck(),
			handler: &weavetest.Handler{WriteKey: nk, WriteValue: nv, DeliverErr: errors.ErrHuman},
			wantErr: errors.ErrHuman,
			written: [][]byte{ok, nk},
		},
		"success is written": {
			save:    NewSavepoint().OnCheck().OnDeliver(),
			handler: &weavetest.Handler{WriteKey: nk, WriteValue: nv},
			written: [][]byte{ok, nk},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			ctx := context.Background()
			kv := store.MemStore()
			assert.Nil(t, kv.Set(ok, ov))

			var err error
			if tc.check {
				_, err = tc.save.Check(ctx, kv, nil, tc.handler)
			} else {
				_, err = tc.save.Deliver(ctx, kv, nil, tc.handler)
			}
			assert.IsErr(t, tc.wantErr, err)

			for _, k := range tc.written {
				has, err := kv.Has(k)
				assert.Nil(t, err)
				if !has {
					t.Errorf("%x not written", k)
				}
			}
			for _, k := range tc.missing {
				has, err := kv.Has(k)
				assert.Nil(t, err)
				if has {
					t.Errorf("%x must not be written", k)
				}
			}
		})
	}
}

// writeHandler writes a single value in both check and deliver before
// returning its error.
type writeHandler struct {
	key   []byte
	value []byte
	err   error
}

func (h *writeHandler) Check(ctx adminnft.Context, db adminnft.KVStore, tx adminnft.Tx) (*adminnft.CheckResult, error) {
	if err := db.Set(h.key, h.value); err != nil {
		return nil, err
	}
	return &adminnft.CheckResult{}, h.err
}

func (h *writeHandler) Deliver(ctx adminnft.Context, db adminnft.KVStore, tx adminnft.Tx) (*adminnft.DeliverResult, error) {
	if err := db.Set(h.key, h.value); err != nil {
		return nil, err
	}
	return &adminnft.DeliverResult{}, h.err
}
