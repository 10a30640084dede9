// Package readertest provides a deterministic in-memory EthereumNode for
// tests. Only the function fields a test sets are answered; every other call
// fails with a "not supported" error, so tests state exactly which node
// operations they exercise.
package readertest

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/core/types"

	scoutcommon "github.com/trankha/ethscout/common"
)

type FakeNode struct {
	BlockByNumberFn       func(ctx context.Context, number uint64) (*scoutcommon.Block, error)
	BlockHeaderByNumberFn func(ctx context.Context, number int64) (*types.Header, error)
	BlockReceiptsFn       func(ctx context.Context, number uint64) ([]*types.Receipt, error)
	TransactionByHashFn   func(ctx context.Context, hash string) (*scoutcommon.Transaction, bool, error)
	TransactionReceiptFn  func(ctx context.Context, hash string) (*types.Receipt, error)
	GetBalanceFn          func(ctx context.Context, address string) (*big.Int, error)
	GetMinedNonceFn       func(ctx context.Context, address string) (uint64, error)
	GetCodeFn             func(ctx context.Context, address string) ([]byte, error)
	StorageAtFn           func(ctx context.Context, address string, slot string) ([]byte, error)
	EthCallFn             func(ctx context.Context, to string, data []byte) ([]byte, error)
	SuggestedGasPriceFn   func(ctx context.Context) (*big.Int, error)
	FeeHistoryFn          func(ctx context.Context, blockCount uint64, rewardPercentiles []float64) (*ethereum.FeeHistory, error)
	CurrentBlockFn        func(ctx context.Context) (uint64, error)
	ClientVersionFn       func(ctx context.Context) (string, error)
}

func notSupported(op string) error {
	return fmt.Errorf("fake node: %s not supported", op)
}

func (f *FakeNode) NodeName() string { return "fake" }
func (f *FakeNode) NodeURL() string  { return "fake://node" }

func (f *FakeNode) BlockByNumber(ctx context.Context, number uint64) (*scoutcommon.Block, error) {
	if f.BlockByNumberFn == nil {
		return nil, notSupported("BlockByNumber")
	}
	return f.BlockByNumberFn(ctx, number)
}

func (f *FakeNode) BlockHeaderByNumber(ctx context.Context, number int64) (*types.Header, error) {
	if f.BlockHeaderByNumberFn == nil {
		return nil, notSupported("BlockHeaderByNumber")
	}
	return f.BlockHeaderByNumberFn(ctx, number)
}

func (f *FakeNode) BlockReceipts(ctx context.Context, number uint64) ([]*types.Receipt, error) {
	if f.BlockReceiptsFn == nil {
		return nil, notSupported("BlockReceipts")
	}
	return f.BlockReceiptsFn(ctx, number)
}

func (f *FakeNode) TransactionByHash(ctx context.Context, hash string) (*scoutcommon.Transaction, bool, error) {
	if f.TransactionByHashFn == nil {
		return nil, false, notSupported("TransactionByHash")
	}
	return f.TransactionByHashFn(ctx, hash)
}

func (f *FakeNode) TransactionReceipt(ctx context.Context, hash string) (*types.Receipt, error) {
	if f.TransactionReceiptFn == nil {
		return nil, notSupported("TransactionReceipt")
	}
	return f.TransactionReceiptFn(ctx, hash)
}

func (f *FakeNode) GetBalance(ctx context.Context, address string) (*big.Int, error) {
	if f.GetBalanceFn == nil {
		return nil, notSupported("GetBalance")
	}
	return f.GetBalanceFn(ctx, address)
}

func (f *FakeNode) GetMinedNonce(ctx context.Context, address string) (uint64, error) {
	if f.GetMinedNonceFn == nil {
		return 0, notSupported("GetMinedNonce")
	}
	return f.GetMinedNonceFn(ctx, address)
}

func (f *FakeNode) GetCode(ctx context.Context, address string) ([]byte, error) {
	if f.GetCodeFn == nil {
		return nil, notSupported("GetCode")
	}
	return f.GetCodeFn(ctx, address)
}

func (f *FakeNode) StorageAt(ctx context.Context, address string, slot string) ([]byte, error) {
	if f.StorageAtFn == nil {
		return nil, notSupported("StorageAt")
	}
	return f.StorageAtFn(ctx, address, slot)
}

func (f *FakeNode) EthCall(ctx context.Context, to string, data []byte) ([]byte, error) {
	if f.EthCallFn == nil {
		return nil, notSupported("EthCall")
	}
	return f.EthCallFn(ctx, to, data)
}

func (f *FakeNode) SuggestedGasPrice(ctx context.Context) (*big.Int, error) {
	if f.SuggestedGasPriceFn == nil {
		return nil, notSupported("SuggestedGasPrice")
	}
	return f.SuggestedGasPriceFn(ctx)
}

func (f *FakeNode) FeeHistory(ctx context.Context, blockCount uint64, rewardPercentiles []float64) (*ethereum.FeeHistory, error) {
	if f.FeeHistoryFn == nil {
		return nil, notSupported("FeeHistory")
	}
	return f.FeeHistoryFn(ctx, blockCount, rewardPercentiles)
}

func (f *FakeNode) CurrentBlock(ctx context.Context) (uint64, error) {
	if f.CurrentBlockFn == nil {
		return 0, notSupported("CurrentBlock")
	}
	return f.CurrentBlockFn(ctx)
}

func (f *FakeNode) ClientVersion(ctx context.Context) (string, error) {
	if f.ClientVersionFn == nil {
		return "", notSupported("ClientVersion")
	}
	return f.ClientVersionFn(ctx)
}
