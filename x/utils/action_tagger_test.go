package utils_test

import (
	"context"
	"testing"

	"github.com/iov-one/adminnft"
	"github.com/iov-one/adminnft/errors"
	"github.com/iov-one/adminnft/store"
	"github.com/iov-one/adminnft/weavetest"
	"github.com/iov-one/adminnft/weavetest/assert"
	"github.com/iov-one/adminnft/x/utils"
	"github.com/tendermint/tendermint/libs/common"
)

func stringTag(key, value string) common.KVPair {
	return common.KVPair{
		Key:   []byte(key),
		Value: []byte(value),
	}
}

func TestActionTagger(t *testing.T) {
	cases := map[string]struct {
		handler adminnft.Handler
		tx      adminnft.Tx
		err     *errors.Error
		tags    []common.KVPair
	}{
		"simple call": {
			handler: &weavetest.Handler{},
			tx:      &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "nft/mint"}},
			tags:    []common.KVPair{stringTag(utils.ActionKey, "nft/mint")},
		},
		"passes through error": {
			handler: &weavetest.Handler{DeliverErr: errors.ErrUnauthorized},
			tx:      &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "nft/mint"}},
			err:     errors.ErrUnauthorized,
		},
		"message error stops early": {
			handler: &weavetest.Handler{},
			tx:      &weavetest.Tx{Err: errors.ErrMsg},
			err:     errors.ErrMsg,
		},
		"tags are additive": {
			handler: &weavetest.Handler{
				DeliverResult: adminnft.DeliverResult{Tags: []common.KVPair{stringTag(utils.ActionKey, "random")}},
			},
			tx:   &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "nft/burn"}},
			tags: []common.KVPair{stringTag(utils.ActionKey, "random"), stringTag(utils.ActionKey, "nft/burn")},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			stack := weavetest.Decorate(tc.handler, utils.NewActionTagger())
			ctx := context.Background()
			db := store.MemStore()

			// Check does not add tags.
			_, err := stack.Check(ctx, db, tc.tx)
			assert.Nil(t, err)

			res, err := stack.Deliver(ctx, db, tc.tx)
			assert.IsErr(t, tc.err, err)
			if tc.err == nil {
				assert.Equal(t, tc.tags, res.Tags)
			}
		})
	}
}
