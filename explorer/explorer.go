// Package explorer assembles the structured result records out of raw node
// data: primary fetches go through the retrying reader and propagate with
// operation context, while every secondary enrichment (names, proxy and token
// probes, balance scans) degrades to an absent field on failure.
package explorer

import (
	"github.com/trankha/ethscout/ens"
	"github.com/trankha/ethscout/inspect"
	"github.com/trankha/ethscout/networks"
	"github.com/trankha/ethscout/util/reader"
	"github.com/trankha/ethscout/util/retry"
)

type Explorer struct {
	reader    *reader.EthReader
	resolver  *ens.Resolver
	inspector *inspect.Inspector
	scanner   *inspect.TokenBalanceScanner
	network   networks.Network
}

// New connects an Explorer to one RPC endpoint. The endpoint is dialed
// lazily; construction never touches the network.
func New(network networks.Network, nodeName, nodeURL string, executor *retry.Executor) *Explorer {
	node := reader.NewOneNodeReader(nodeName, nodeURL)
	return NewWithReader(network, reader.NewEthReader(node, executor))
}

// NewWithReader wires an Explorer over an existing reader. Tests use this to
// substitute a fake transport.
func NewWithReader(network networks.Network, r *reader.EthReader) *Explorer {
	return &Explorer{
		reader:    r,
		resolver:  ens.NewResolver(r, network),
		inspector: inspect.NewInspector(r),
		scanner:   inspect.NewTokenBalanceScanner(r),
		network:   network,
	}
}

func (e *Explorer) Network() networks.Network {
	return e.network
}

func (e *Explorer) Resolver() *ens.Resolver {
	return e.resolver
}
