package common

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

func GetERC20ABI() *abi.ABI {
	result, _ := abi.JSON(strings.NewReader(erc20abi))
	return &result
}

func GetOwnableABI() *abi.ABI {
	result, _ := abi.JSON(strings.NewReader(ownableabi))
	return &result
}

func GetReverseRecordsABI() *abi.ABI {
	result, _ := abi.JSON(strings.NewReader(reverserecordsabi))
	return &result
}

func GetENSRegistryABI() *abi.ABI {
	result, _ := abi.JSON(strings.NewReader(ensregistryabi))
	return &result
}

func GetENSResolverABI() *abi.ABI {
	result, _ := abi.JSON(strings.NewReader(ensresolverabi))
	return &result
}

func HexToAddress(hex string) common.Address {
	return common.HexToAddress(hex)
}
