package networks

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

var EthereumMainnet Network = NewEthereumMainnet()

type ethereumMainnet struct{}

func NewEthereumMainnet() *ethereumMainnet {
	return &ethereumMainnet{}
}

func (self *ethereumMainnet) GetName() string {
	return "mainnet"
}

func (self *ethereumMainnet) GetChainID() int64 {
	return 1
}

func (self *ethereumMainnet) GetAlternativeNames() []string {
	return []string{"ethereum", "eth"}
}

func (self *ethereumMainnet) GetNativeTokenSymbol() string {
	return "ETH"
}

func (self *ethereumMainnet) GetNativeTokenDecimal() int64 {
	return 18
}

func (self *ethereumMainnet) GetBlockTime() time.Duration {
	return 12 * time.Second
}

func (self *ethereumMainnet) GetNodeVariableName() string {
	return "ETHEREUM_MAINNET_NODE"
}

func (self *ethereumMainnet) GetDefaultNodes() map[string]string {
	return map[string]string{
		"mainnet-public": "https://ethereum-rpc.publicnode.com",
	}
}

// ENS ReverseRecords aggregator on mainnet (batch address -> name).
func (self *ethereumMainnet) GetENSReverseRecordsContract() common.Address {
	return common.HexToAddress("0x3671aE578E63FdF66ad4F3E12CC0c0d71Ac7510C")
}

// ENS Registry on mainnet (name -> resolver).
func (self *ethereumMainnet) GetENSRegistryContract() common.Address {
	return common.HexToAddress("0x00000000000C2E074eC69A0dFb2997BA6C7d2e1e")
}
