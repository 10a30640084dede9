// Package config reads process configuration from the environment. Every
// field has a working default so the binary runs with nothing set.
package config

import (
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/trankha/ethscout/networks"
)

type Config struct {
	Network    string        `envconfig:"NETWORK" default:"mainnet"`
	NodeURL    string        `envconfig:"NODE_URL"`
	NodeName   string        `envconfig:"NODE_NAME" default:"custom"`
	MaxRetries uint          `envconfig:"MAX_RETRIES" default:"5"`
	BaseDelay  time.Duration `envconfig:"BASE_DELAY" default:"500ms"`
	LogLevel   string        `envconfig:"LOG_LEVEL" default:"warn"`
}

// Load reads ETHSCOUT_* variables and resolves the node endpoint. An
// explicit ETHSCOUT_NODE_URL wins, then the network's own node variable
// (for mainnet ETHEREUM_MAINNET_NODE), then the network's default node.
func Load() (Config, networks.Network, error) {
	var cfg Config
	if err := envconfig.Process("ethscout", &cfg); err != nil {
		return Config{}, nil, err
	}
	network, err := networks.GetNetwork(cfg.Network)
	if err != nil {
		return Config{}, nil, err
	}
	if cfg.NodeURL == "" {
		if url := os.Getenv(network.GetNodeVariableName()); url != "" {
			cfg.NodeURL = url
		} else {
			cfg.NodeName, cfg.NodeURL = firstNode(network.GetDefaultNodes())
		}
	}
	return cfg, network, nil
}

func firstNode(nodes map[string]string) (string, string) {
	for name, url := range nodes {
		return name, url
	}
	return "", ""
}
