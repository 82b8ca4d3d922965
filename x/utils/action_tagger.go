package utils

import (
	"github.com/iov-one/adminnft"
	"github.com/tendermint/tendermint/libs/common"
)

// ActionKey is the tag key under which the message path is indexed.
const ActionKey = "action"

// ActionTagger labels every successful deliver with the path of its
// message, for example action=nft/burn. Tendermint indexes the tag, so all
// mints or burns of a chain can be searched for.
type ActionTagger struct{}

var _ adminnft.Decorator = ActionTagger{}

func NewActionTagger() ActionTagger {
	return ActionTagger{}
}

// Check does not tag. Check results are never indexed.
func (ActionTagger) Check(ctx adminnft.Context, db adminnft.KVStore, tx adminnft.Tx, next adminnft.Checker) (*adminnft.CheckResult, error) {
	return next.Check(ctx, db, tx)
}

func (ActionTagger) Deliver(ctx adminnft.Context, db adminnft.KVStore, tx adminnft.Tx, next adminnft.Deliverer) (*adminnft.DeliverResult, error) {
	// An unreadable message is rejected before any handler runs.
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	res, err := next.Deliver(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	res.Tags = append(res.Tags, actionTag(msg.Path()))
	return res, nil
}

func actionTag(path string) common.KVPair {
	return common.KVPair{Key: []byte(ActionKey), Value: []byte(path)}
}
