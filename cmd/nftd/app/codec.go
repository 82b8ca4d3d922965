package app

import (
	"github.com/iov-one/adminnft"
	"github.com/iov-one/adminnft/codec"
	"github.com/iov-one/adminnft/x/nft"
)

// cdc encodes transactions. Every message that can be carried by a Tx must
// be registered here. Its path is used as the amino name.
var cdc = newCodec(
	&nft.InstantiateMsg{},
	&nft.MintMsg{},
	&nft.BurnMsg{},
)

func newCodec(msgs ...adminnft.Msg) *codec.Codec {
	c := codec.NewCodec()
	c.RegisterInterface((*adminnft.Msg)(nil))
	for _, m := range msgs {
		c.RegisterConcrete(m, m.Path())
	}
	return c.Seal()
}
