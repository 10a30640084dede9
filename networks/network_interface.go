package networks

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

type Network interface {
	GetName() string
	GetChainID() int64
	GetAlternativeNames() []string
	GetNativeTokenSymbol() string
	GetNativeTokenDecimal() int64
	GetBlockTime() time.Duration

	GetNodeVariableName() string
	GetDefaultNodes() map[string]string

	// ENS deployment on this network. Zero addresses mean name resolution is
	// not available.
	GetENSReverseRecordsContract() common.Address
	GetENSRegistryContract() common.Address
}
