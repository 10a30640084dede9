package explorer

import (
	"context"
	"fmt"
	"math/big"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"

	scoutcommon "github.com/trankha/ethscout/common"
	"github.com/trankha/ethscout/decoder"
	"github.com/trankha/ethscout/util/logger"
)

// GetBlock returns the header level view of a block. The derived aggregates
// stay zeroed here; they need full bodies and receipts, which
// GetBlockTransactions fetches.
func (e *Explorer) GetBlock(ctx context.Context, number uint64) (*scoutcommon.BlockInfo, error) {
	block, err := e.reader.BlockByNumber(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch block #%d: %w", number, err)
	}
	info := blockInfoFrom(block)
	info.MinerName = e.resolver.Name(ctx, block.Header.Coinbase)
	return info, nil
}

func blockInfoFrom(block *scoutcommon.Block) *scoutcommon.BlockInfo {
	header := block.Header
	info := &scoutcommon.BlockInfo{
		Number:           header.Number.Uint64(),
		Hash:             header.Hash().Hex(),
		ParentHash:       header.ParentHash.Hex(),
		Timestamp:        header.Time,
		GasUsed:          header.GasUsed,
		GasLimit:         header.GasLimit,
		BaseFee:          header.BaseFee,
		TxCount:          len(block.Transactions),
		Miner:            header.Coinbase.Hex(),
		StateRoot:        header.Root.Hex(),
		ReceiptsRoot:     header.ReceiptHash.Hex(),
		TransactionsRoot: header.TxHash.Hex(),
		ExtraData:        hexutil.Encode(header.Extra),
		ExtraDataText:    decoder.DecodeExtraData(header.Extra),
		Size:             block.Size,
		UnclesCount:      len(block.Uncles),
		WithdrawalsCount: len(block.Withdrawals),
		BlobGasUsed:      header.BlobGasUsed,
		ExcessBlobGas:    header.ExcessBlobGas,
		BuilderTag:       decoder.BuilderTag(header.Extra, header.Coinbase),

		TotalValueTransferred: big.NewInt(0),
		TotalFees:             big.NewInt(0),
		BurntFees:             big.NewInt(0),
	}
	return info
}

// LatestBlockNumber reads the chain head's number from its header. Cheaper
// than a snapshot when only the number is needed.
func (e *Explorer) LatestBlockNumber(ctx context.Context) (uint64, error) {
	header, err := e.reader.BlockHeaderByNumber(ctx, -1)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch latest block number: %w", err)
	}
	return header.Number.Uint64(), nil
}

// GetBlockTxHashes returns just the transaction hashes of a block, in block
// order.
func (e *Explorer) GetBlockTxHashes(ctx context.Context, number uint64) ([]string, error) {
	block, err := e.reader.BlockByNumber(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch block #%d: %w", number, err)
	}
	hashes := make([]string, 0, len(block.Transactions))
	for _, tx := range block.Transactions {
		hashes = append(hashes, tx.Hash().Hex())
	}
	return hashes, nil
}

// GetBlockTransactions returns per transaction summaries for a block plus the
// aggregates over them. Receipts are fetched once for the whole block; when
// that fails the summaries still come back, with the fee fields left empty.
func (e *Explorer) GetBlockTransactions(ctx context.Context, number uint64) ([]scoutcommon.TxSummary, scoutcommon.BlockStats, error) {
	stats := scoutcommon.BlockStats{
		TotalValueTransferred: big.NewInt(0),
		TotalFees:             big.NewInt(0),
		BurntFees:             big.NewInt(0),
	}
	block, err := e.reader.BlockByNumber(ctx, number)
	if err != nil {
		return nil, stats, fmt.Errorf("failed to fetch transactions of block #%d: %w", number, err)
	}

	receiptByHash := map[ethcommon.Hash]*types.Receipt{}
	receipts, err := e.reader.BlockReceipts(ctx, number)
	if err != nil {
		logger.L().Debugw("block receipts unavailable, fees will be missing",
			"block", number, "err", err)
	} else {
		for _, receipt := range receipts {
			receiptByHash[receipt.TxHash] = receipt
		}
	}

	names := e.resolver.Names(ctx, blockParticipants(block))

	// burnt fees come from the header alone, so they survive a failed or
	// partial receipt fetch
	if block.Header.BaseFee != nil {
		stats.BurntFees = new(big.Int).Mul(new(big.Int).SetUint64(block.Header.GasUsed), block.Header.BaseFee)
	}

	summaries := make([]scoutcommon.TxSummary, 0, len(block.Transactions))
	for _, tx := range block.Transactions {
		summary := scoutcommon.TxSummary{
			Hash:               tx.Hash().Hex(),
			From:               tx.From().Hex(),
			Value:              tx.Value(),
			GasLimit:           tx.Gas(),
			Type:               scoutcommon.TxType(tx.Type()),
			IsContractCreation: tx.To() == nil,
			FromName:           names[tx.From()],
			InputSize:          len(tx.Data()),
			BlobCount:          len(tx.BlobHashes()),
		}
		if tx.To() != nil {
			summary.To = tx.To().Hex()
			summary.ToName = names[*tx.To()]
		}
		if len(tx.Data()) >= 4 {
			summary.MethodSelector = hexutil.Encode(tx.Data()[:4])
			if name, ok := decoder.ShortFunctionName(tx.Data()); ok {
				summary.Method = name
			}
		}
		stats.TotalValueTransferred.Add(stats.TotalValueTransferred, tx.Value())
		stats.BlobCount += len(tx.BlobHashes())

		if receipt, ok := receiptByHash[tx.Hash()]; ok {
			if receipt.EffectiveGasPrice != nil {
				fee := new(big.Int).Mul(new(big.Int).SetUint64(receipt.GasUsed), receipt.EffectiveGasPrice)
				summary.FeePaid = fee
				stats.TotalFees.Add(stats.TotalFees, fee)
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries, stats, nil
}

// blockParticipants collects the deduplicated senders and recipients of a
// block for one batched name lookup.
func blockParticipants(block *scoutcommon.Block) []ethcommon.Address {
	seen := map[ethcommon.Address]bool{}
	addrs := []ethcommon.Address{}
	add := func(addr ethcommon.Address) {
		if !seen[addr] {
			seen[addr] = true
			addrs = append(addrs, addr)
		}
	}
	for _, tx := range block.Transactions {
		add(tx.From())
		if tx.To() != nil {
			add(*tx.To())
		}
	}
	return addrs
}
