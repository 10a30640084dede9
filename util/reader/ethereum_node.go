package reader

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/core/types"

	scoutcommon "github.com/trankha/ethscout/common"
)

// EthereumNode is the primitive operation surface of one RPC endpoint. It
// exists so tests can substitute a deterministic fake for the live transport.
// Implementations are read only and safe for concurrent use.
type EthereumNode interface {
	NodeName() string
	NodeURL() string

	BlockByNumber(ctx context.Context, number uint64) (*scoutcommon.Block, error)
	BlockHeaderByNumber(ctx context.Context, number int64) (*types.Header, error)
	BlockReceipts(ctx context.Context, number uint64) ([]*types.Receipt, error)
	TransactionByHash(ctx context.Context, hash string) (tx *scoutcommon.Transaction, isPending bool, err error)
	TransactionReceipt(ctx context.Context, hash string) (*types.Receipt, error)
	GetBalance(ctx context.Context, address string) (*big.Int, error)
	GetMinedNonce(ctx context.Context, address string) (uint64, error)
	GetCode(ctx context.Context, address string) ([]byte, error)
	StorageAt(ctx context.Context, address string, slot string) ([]byte, error)
	EthCall(ctx context.Context, to string, data []byte) ([]byte, error)
	SuggestedGasPrice(ctx context.Context) (*big.Int, error)
	FeeHistory(ctx context.Context, blockCount uint64, rewardPercentiles []float64) (*ethereum.FeeHistory, error)
	CurrentBlock(ctx context.Context) (uint64, error)
	ClientVersion(ctx context.Context) (string, error)
}
