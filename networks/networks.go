package networks

import (
	"fmt"
	"strings"
)

// Insert more Network implementations here to support more chains.
var supportedNetworks = []Network{
	EthereumMainnet,
}

var ErrNetworkNotFound = fmt.Errorf("network not found")

func GetNetwork(name string) (Network, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return EthereumMainnet, nil
	}
	for _, n := range supportedNetworks {
		if n.GetName() == name {
			return n, nil
		}
		for _, alt := range n.GetAlternativeNames() {
			if alt == name {
				return n, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNetworkNotFound, name)
}

func SupportedNetworks() []Network {
	return supportedNetworks
}
