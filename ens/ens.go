// Package ens resolves names through the on-chain ENS deployment: batch
// reverse lookups through the ReverseRecords aggregator and forward lookups
// through the registry/resolver pair.
package ens

import (
	"context"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	scoutcommon "github.com/trankha/ethscout/common"
	"github.com/trankha/ethscout/networks"
	"github.com/trankha/ethscout/util/logger"
	"github.com/trankha/ethscout/util/reader"
)

// Namehash computes the ENS node of a dotted name: labels are hashed right to
// left into an accumulator seeded with the zero node. The empty name is the
// zero node itself.
func Namehash(name string) common.Hash {
	var node common.Hash
	if name == "" {
		return node
	}

	labels := strings.Split(name, ".")
	for i := len(labels) - 1; i >= 0; i-- {
		labelHash := crypto.Keccak256Hash([]byte(labels[i]))
		node = crypto.Keccak256Hash(node.Bytes(), labelHash.Bytes())
	}
	return node
}

type Resolver struct {
	reader         *reader.EthReader
	reverseRecords common.Address
	registry       common.Address
}

func NewResolver(r *reader.EthReader, network networks.Network) *Resolver {
	return &Resolver{
		reader:         r,
		reverseRecords: network.GetENSReverseRecordsContract(),
		registry:       network.GetENSRegistryContract(),
	}
}

// Names reverse-resolves a batch of addresses in one aggregator call. The
// result maps only addresses that actually have a name; an empty returned
// name is no resolution, not an error. Any failure yields an empty map since
// names are a cosmetic enrichment.
func (r *Resolver) Names(ctx context.Context, addrs []common.Address) map[common.Address]string {
	result := map[common.Address]string{}
	if len(addrs) == 0 || r.reverseRecords == (common.Address{}) {
		return result
	}

	a := scoutcommon.GetReverseRecordsABI()
	data, err := a.Pack("getNames", addrs)
	if err != nil {
		logger.L().Debugw("packing getNames failed", "err", err)
		return result
	}

	response, err := r.reader.EthCall(ctx, r.reverseRecords.Hex(), data)
	if err != nil {
		logger.L().Debugw("reverse records call failed", "err", err)
		return result
	}

	var names []string
	if err := a.UnpackIntoInterface(&names, "getNames", response); err != nil {
		logger.L().Debugw("decoding getNames response failed", "err", err)
		return result
	}

	for i, addr := range addrs {
		if i >= len(names) {
			break
		}
		if names[i] != "" {
			result[addr] = names[i]
		}
	}
	return result
}

// Name reverse-resolves a single address, returning "" when it has no name.
func (r *Resolver) Name(ctx context.Context, addr common.Address) string {
	return r.Names(ctx, []common.Address{addr})[addr]
}

// Resolve forward-resolves a name to an address: the registry maps the
// namehash to a resolver contract, then the resolver maps the same node to an
// address. A zero address at either step is a resolution failure.
func (r *Resolver) Resolve(ctx context.Context, name string) (common.Address, error) {
	if r.registry == (common.Address{}) {
		return common.Address{}, fmt.Errorf("no ENS registry on this network")
	}

	node := Namehash(name)

	registryABI := scoutcommon.GetENSRegistryABI()
	data, err := registryABI.Pack("resolver", node)
	if err != nil {
		return common.Address{}, fmt.Errorf("packing registry query for %s: %w", name, err)
	}
	response, err := r.reader.EthCall(ctx, r.registry.Hex(), data)
	if err != nil {
		return common.Address{}, fmt.Errorf("querying ENS registry for %s: %w", name, err)
	}
	var resolverAddr common.Address
	if err := registryABI.UnpackIntoInterface(&resolverAddr, "resolver", response); err != nil {
		return common.Address{}, fmt.Errorf("decoding resolver address for %s: %w", name, err)
	}
	if resolverAddr == (common.Address{}) {
		return common.Address{}, fmt.Errorf("no resolver found for ENS name %s", name)
	}

	resolverABI := scoutcommon.GetENSResolverABI()
	data, err = resolverABI.Pack("addr", node)
	if err != nil {
		return common.Address{}, fmt.Errorf("packing resolver query for %s: %w", name, err)
	}
	response, err = r.reader.EthCall(ctx, resolverAddr.Hex(), data)
	if err != nil {
		return common.Address{}, fmt.Errorf("querying ENS resolver for %s: %w", name, err)
	}
	var resolved common.Address
	if err := resolverABI.UnpackIntoInterface(&resolved, "addr", response); err != nil {
		return common.Address{}, fmt.Errorf("decoding resolved address for %s: %w", name, err)
	}
	if resolved == (common.Address{}) {
		return common.Address{}, fmt.Errorf("ENS name %s does not resolve to an address", name)
	}

	return resolved, nil
}
