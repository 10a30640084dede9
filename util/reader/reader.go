package reader

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/core/types"

	scoutcommon "github.com/trankha/ethscout/common"
	"github.com/trankha/ethscout/util/retry"
)

// EthReader is the retrying front of one EthereumNode. Every operation runs
// through the retry executor and, on failure, is wrapped with the operation,
// the target identifier and the endpoint so the full chain reads without
// knowing reader internals.
type EthReader struct {
	node     EthereumNode
	executor *retry.Executor
}

func NewEthReader(node EthereumNode, executor *retry.Executor) *EthReader {
	if executor == nil {
		executor = retry.DefaultExecutor()
	}
	return &EthReader{
		node:     node,
		executor: executor,
	}
}

func (er *EthReader) NodeURL() string {
	return er.node.NodeURL()
}

func (er *EthReader) wrapError(err error, op string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s via %s: %w", op, er.node.NodeURL(), err)
}

func (er *EthReader) BlockByNumber(ctx context.Context, number uint64) (*scoutcommon.Block, error) {
	block, err := retry.Try(ctx, er.executor, func() (*scoutcommon.Block, error) {
		return er.node.BlockByNumber(ctx, number)
	})
	return block, er.wrapError(err, fmt.Sprintf("get block %d", number))
}

func (er *EthReader) BlockHeaderByNumber(ctx context.Context, number int64) (*types.Header, error) {
	header, err := retry.Try(ctx, er.executor, func() (*types.Header, error) {
		return er.node.BlockHeaderByNumber(ctx, number)
	})
	return header, er.wrapError(err, fmt.Sprintf("get block header %d", number))
}

func (er *EthReader) BlockReceipts(ctx context.Context, number uint64) ([]*types.Receipt, error) {
	receipts, err := retry.Try(ctx, er.executor, func() ([]*types.Receipt, error) {
		return er.node.BlockReceipts(ctx, number)
	})
	return receipts, er.wrapError(err, fmt.Sprintf("get receipts of block %d", number))
}

type txAndPending struct {
	tx        *scoutcommon.Transaction
	isPending bool
}

func (er *EthReader) TransactionByHash(ctx context.Context, hash string) (*scoutcommon.Transaction, bool, error) {
	result, err := retry.Try(ctx, er.executor, func() (txAndPending, error) {
		tx, isPending, err := er.node.TransactionByHash(ctx, hash)
		return txAndPending{tx, isPending}, err
	})
	return result.tx, result.isPending, er.wrapError(err, fmt.Sprintf("get transaction %s", hash))
}

func (er *EthReader) TransactionReceipt(ctx context.Context, hash string) (*types.Receipt, error) {
	receipt, err := retry.Try(ctx, er.executor, func() (*types.Receipt, error) {
		return er.node.TransactionReceipt(ctx, hash)
	})
	return receipt, er.wrapError(err, fmt.Sprintf("get receipt of %s", hash))
}

func (er *EthReader) GetBalance(ctx context.Context, address string) (*big.Int, error) {
	balance, err := retry.Try(ctx, er.executor, func() (*big.Int, error) {
		return er.node.GetBalance(ctx, address)
	})
	return balance, er.wrapError(err, fmt.Sprintf("get balance of %s", address))
}

func (er *EthReader) GetMinedNonce(ctx context.Context, address string) (uint64, error) {
	nonce, err := retry.Try(ctx, er.executor, func() (uint64, error) {
		return er.node.GetMinedNonce(ctx, address)
	})
	return nonce, er.wrapError(err, fmt.Sprintf("get nonce of %s", address))
}

func (er *EthReader) GetCode(ctx context.Context, address string) ([]byte, error) {
	code, err := retry.Try(ctx, er.executor, func() ([]byte, error) {
		return er.node.GetCode(ctx, address)
	})
	return code, er.wrapError(err, fmt.Sprintf("get code of %s", address))
}

func (er *EthReader) StorageAt(ctx context.Context, address string, slot string) ([]byte, error) {
	data, err := retry.Try(ctx, er.executor, func() ([]byte, error) {
		return er.node.StorageAt(ctx, address, slot)
	})
	return data, er.wrapError(err, fmt.Sprintf("read storage %s of %s", slot, address))
}

func (er *EthReader) EthCall(ctx context.Context, to string, data []byte) ([]byte, error) {
	response, err := retry.Try(ctx, er.executor, func() ([]byte, error) {
		return er.node.EthCall(ctx, to, data)
	})
	return response, er.wrapError(err, fmt.Sprintf("call contract %s", to))
}

func (er *EthReader) SuggestedGasPrice(ctx context.Context) (*big.Int, error) {
	price, err := retry.Try(ctx, er.executor, func() (*big.Int, error) {
		return er.node.SuggestedGasPrice(ctx)
	})
	return price, er.wrapError(err, "get gas price")
}

func (er *EthReader) FeeHistory(ctx context.Context, blockCount uint64, rewardPercentiles []float64) (*ethereum.FeeHistory, error) {
	history, err := retry.Try(ctx, er.executor, func() (*ethereum.FeeHistory, error) {
		return er.node.FeeHistory(ctx, blockCount, rewardPercentiles)
	})
	return history, er.wrapError(err, "get fee history")
}

func (er *EthReader) CurrentBlock(ctx context.Context) (uint64, error) {
	block, err := retry.Try(ctx, er.executor, func() (uint64, error) {
		return er.node.CurrentBlock(ctx)
	})
	return block, er.wrapError(err, "get latest block number")
}

func (er *EthReader) ClientVersion(ctx context.Context) (string, error) {
	version, err := retry.Try(ctx, er.executor, func() (string, error) {
		return er.node.ClientVersion(ctx)
	})
	return version, er.wrapError(err, "get client version")
}
