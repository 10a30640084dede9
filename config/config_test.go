package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, network, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "mainnet", network.GetName())
	assert.Equal(t, uint(5), cfg.MaxRetries)
	assert.Equal(t, 500*time.Millisecond, cfg.BaseDelay)
	assert.Equal(t, "warn", cfg.LogLevel)
	// without any override the network's default node is used
	assert.NotEmpty(t, cfg.NodeURL)
}

func TestLoadExplicitNodeWins(t *testing.T) {
	t.Setenv("ETHSCOUT_NODE_URL", "https://node.example.com")
	t.Setenv("ETHEREUM_MAINNET_NODE", "https://ignored.example.com")

	cfg, _, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://node.example.com", cfg.NodeURL)
}

func TestLoadNetworkNodeVariable(t *testing.T) {
	t.Setenv("ETHEREUM_MAINNET_NODE", "https://my-node.example.com")

	cfg, _, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://my-node.example.com", cfg.NodeURL)
}

func TestLoadUnknownNetwork(t *testing.T) {
	t.Setenv("ETHSCOUT_NETWORK", "dogechain")

	_, _, err := Load()
	require.Error(t, err)
}
