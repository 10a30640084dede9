// Package inspect probes deployed contracts for metadata that isn't part of
// any canonical interface: proxy indirection, ERC-20-ness, ownership. Every
// probe failure is local; callers surface missing probes as absent fields.
package inspect

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	scoutcommon "github.com/trankha/ethscout/common"
	"github.com/trankha/ethscout/util/logger"
	"github.com/trankha/ethscout/util/reader"
)

// eip1967ImplementationSlot is keccak256("eip1967.proxy.implementation") - 1,
// the storage slot where EIP-1967 proxies keep their implementation address.
var eip1967ImplementationSlot = common.BigToHash(
	new(big.Int).Sub(
		crypto.Keccak256Hash([]byte("eip1967.proxy.implementation")).Big(),
		big.NewInt(1),
	),
)

type Inspector struct {
	reader *reader.EthReader
}

func NewInspector(r *reader.EthReader) *Inspector {
	return &Inspector{reader: r}
}

// Implementation reads the EIP-1967 implementation slot. The low 20 bytes of
// the slot are the address; a zero interpreted address means no proxy even
// when upper reserved bytes are set.
func (in *Inspector) Implementation(ctx context.Context, address string) (common.Address, error) {
	data, err := in.reader.StorageAt(ctx, address, eip1967ImplementationSlot.Hex())
	if err != nil {
		return common.Address{}, err
	}

	impl := common.BytesToAddress(data)
	if impl == (common.Address{}) {
		return common.Address{}, fmt.Errorf("%s is not an eip1967 proxy contract", address)
	}
	return impl, nil
}

func (in *Inspector) callString(ctx context.Context, address, method string) (string, error) {
	a := scoutcommon.GetERC20ABI()
	data, err := a.Pack(method)
	if err != nil {
		return "", err
	}
	response, err := in.reader.EthCall(ctx, address, data)
	if err != nil {
		return "", err
	}
	var result string
	err = a.UnpackIntoInterface(&result, method, response)
	return result, err
}

func (in *Inspector) callUint8(ctx context.Context, address, method string) (uint8, error) {
	a := scoutcommon.GetERC20ABI()
	data, err := a.Pack(method)
	if err != nil {
		return 0, err
	}
	response, err := in.reader.EthCall(ctx, address, data)
	if err != nil {
		return 0, err
	}
	var result uint8
	err = a.UnpackIntoInterface(&result, method, response)
	return result, err
}

func (in *Inspector) callBig(ctx context.Context, address, method string) (*big.Int, error) {
	a := scoutcommon.GetERC20ABI()
	data, err := a.Pack(method)
	if err != nil {
		return nil, err
	}
	response, err := in.reader.EthCall(ctx, address, data)
	if err != nil {
		return nil, err
	}
	result := big.NewInt(0)
	err = a.UnpackIntoInterface(&result, method, response)
	return result, err
}

// DetectToken probes the ERC-20 view functions independently. The contract
// counts as a token iff symbol and decimals both decode; name and totalSupply
// are cosmetic. A nil result with nil error means "not a token".
func (in *Inspector) DetectToken(ctx context.Context, address string) (*scoutcommon.TokenInfo, error) {
	symbol, symbolErr := in.callString(ctx, address, "symbol")
	decimals, decimalsErr := in.callUint8(ctx, address, "decimals")
	if symbolErr != nil || decimalsErr != nil {
		return nil, nil
	}

	info := &scoutcommon.TokenInfo{
		Symbol:   symbol,
		Decimals: decimals,
	}
	if name, err := in.callString(ctx, address, "name"); err == nil {
		info.Name = name
	} else {
		logger.L().Debugw("name() probe failed", "address", address, "err", err)
	}
	if supply, err := in.callBig(ctx, address, "totalSupply"); err == nil {
		info.TotalSupply = supply
	} else {
		logger.L().Debugw("totalSupply() probe failed", "address", address, "err", err)
	}
	return info, nil
}

// Owner calls owner() on the contract. A zero decoded address is "no owner",
// not a valid result.
func (in *Inspector) Owner(ctx context.Context, address string) (common.Address, error) {
	a := scoutcommon.GetOwnableABI()
	data, err := a.Pack("owner")
	if err != nil {
		return common.Address{}, err
	}
	response, err := in.reader.EthCall(ctx, address, data)
	if err != nil {
		return common.Address{}, err
	}
	var owner common.Address
	if err := a.UnpackIntoInterface(&owner, "owner", response); err != nil {
		return common.Address{}, err
	}
	if owner == (common.Address{}) {
		return common.Address{}, fmt.Errorf("%s has no owner", address)
	}
	return owner, nil
}
