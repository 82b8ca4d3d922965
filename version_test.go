package adminnft_test

import (
	"testing"

	"github.com/iov-one/adminnft"
	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	defer func(c string) { adminnft.GitCommit = c }(adminnft.GitCommit)

	adminnft.GitCommit = ""
	assert.Equal(t, "v0.1.0", adminnft.Version())

	adminnft.GitCommit = "12345678"
	assert.Equal(t, "v0.1.0 12345678", adminnft.Version())
}
