package orm

import (
	"github.com/iov-one/adminnft/errors"
)

// Orm reserves 100~109 error codes.
var (
	// ErrInvalidIndex is returned when an index specified is invalid.
	ErrInvalidIndex = errors.Register(100, "invalid index")
)
