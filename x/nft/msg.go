package nft

import (
	"github.com/iov-one/adminnft"
	"github.com/iov-one/adminnft/codec"
	"github.com/iov-one/adminnft/coin"
	"github.com/iov-one/adminnft/errors"
	"github.com/iov-one/adminnft/orm"
)

const (
	pathInstantiateMsg = "nft/instantiate"
	pathMintMsg        = "nft/mint"
	pathBurnMsg        = "nft/burn"
)

// InstantiateMsg creates a new registry.
type InstantiateMsg struct {
	Admin       adminnft.Address `json:"admin"`
	Name        string           `json:"name,omitempty"`
	Description string           `json:"description,omitempty"`
}

var _ adminnft.Msg = (*InstantiateMsg)(nil)

func (InstantiateMsg) Path() string {
	return pathInstantiateMsg
}

func (m *InstantiateMsg) Validate() error {
	reg := Registry{Admin: m.Admin, Name: m.Name, Description: m.Description}
	return reg.Validate()
}

func (m *InstantiateMsg) Marshal() ([]byte, error) {
	return codec.Marshal(m)
}

func (m *InstantiateMsg) Unmarshal(bz []byte) error {
	return codec.Unmarshal(bz, m)
}

// MintMsg issues a new token. It must be signed by the registry admin.
type MintMsg struct {
	RegistryID []byte           `json:"registry_id"`
	Owner      adminnft.Address `json:"owner"`
	Metadata   string           `json:"metadata,omitempty"`
	// Payment is optional. When set, it is moved from the admin wallet to
	// the registry payment pool.
	Payment *coin.Coin `json:"payment,omitempty"`
}

var _ adminnft.Msg = (*MintMsg)(nil)

func (MintMsg) Path() string {
	return pathMintMsg
}

func (m *MintMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "RegistryID", orm.ValidateSequence(m.RegistryID))
	errs = errors.AppendField(errs, "Owner", m.Owner.Validate())
	if !coin.IsEmpty(m.Payment) {
		if err := m.Payment.Validate(); err != nil {
			errs = errors.AppendField(errs, "Payment", err)
		} else if !m.Payment.IsPositive() {
			errs = errors.AppendField(errs, "Payment", errors.Wrap(errors.ErrAmount, "must be positive"))
		}
	}
	return errs
}

func (m *MintMsg) Marshal() ([]byte, error) {
	return codec.Marshal(m)
}

func (m *MintMsg) Unmarshal(bz []byte) error {
	return codec.Unmarshal(bz, m)
}

// BurnMsg removes a token. It must be signed by the registry admin.
type BurnMsg struct {
	RegistryID []byte `json:"registry_id"`
	TokenID    uint64 `json:"token_id"`
}

var _ adminnft.Msg = (*BurnMsg)(nil)

func (BurnMsg) Path() string {
	return pathBurnMsg
}

func (m *BurnMsg) Validate() error {
	return errors.AppendField(nil, "RegistryID", orm.ValidateSequence(m.RegistryID))
}

func (m *BurnMsg) Marshal() ([]byte, error) {
	return codec.Marshal(m)
}

func (m *BurnMsg) Unmarshal(bz []byte) error {
	return codec.Unmarshal(bz, m)
}
