package rand

import (
	"bytes"
	"strings"
	"testing"

	"github.com/openziti/cpl/cmd/cpl/cpl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRand(t *testing.T, args ...string) []string {
	out := new(bytes.Buffer)
	cpl.RootCmd.SetOut(out)
	cpl.RootCmd.SetArgs(append([]string{"rand"}, args...))
	require.NoError(t, cpl.RootCmd.Execute())
	return strings.Fields(out.String())
}

func TestRandSeedFlag(t *testing.T) {
	// without --seed the configured default (0x1234abcd) applies
	assert.Equal(t, []string{"851401618", "1804928587"}, runRand(t, "lrand48", "--count", "2"))

	// negative seeds are passed through and truncated to 32 bits
	assert.Equal(t, []string{"644300343", "97305740"}, runRand(t, "lrand48", "--seed=-1", "--count", "2"))
	assert.Equal(t, []string{"366850414"}, runRand(t, "lrand48", "--seed", "0", "--count", "1"))
}
