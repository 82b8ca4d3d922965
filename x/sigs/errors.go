package sigs

import "github.com/iov-one/adminnft/errors"

// ErrInvalidSequence is returned when a signature was created with a sequence
// different from the one stored for its public key.
var ErrInvalidSequence = errors.Register(120, "invalid sequence number")
