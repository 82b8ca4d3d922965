package cash

import "github.com/iov-one/adminnft/errors"

// ErrInsufficientFunds is returned when a wallet does not hold enough coins
// to complete a transfer.
var ErrInsufficientFunds = errors.Register(130, "insufficient funds")
