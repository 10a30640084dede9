package networks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetNetwork(t *testing.T) {
	n, err := GetNetwork("mainnet")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n.GetChainID())

	// alternative names and spacing are accepted
	n, err = GetNetwork("  Ethereum ")
	require.NoError(t, err)
	assert.Equal(t, "mainnet", n.GetName())

	// empty selects the default network
	n, err = GetNetwork("")
	require.NoError(t, err)
	assert.Equal(t, "mainnet", n.GetName())
}

func TestGetNetworkUnknown(t *testing.T) {
	_, err := GetNetwork("dogechain")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetworkNotFound)
}
