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

// GetTransaction returns the full record of one transaction. The tx fetch is
// the only hard requirement; a missing receipt (pending tx, pruned node)
// leaves the receipt derived fields unset.
func (e *Explorer) GetTransaction(ctx context.Context, hash string) (*scoutcommon.TxInfo, error) {
	tx, _, err := e.reader.TransactionByHash(ctx, hash)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transaction %s: %w", hash, err)
	}

	info := &scoutcommon.TxInfo{
		Hash:        tx.Hash().Hex(),
		From:        tx.From().Hex(),
		Value:       tx.Value(),
		GasPrice:    tx.GasPrice(),
		GasLimit:    tx.Gas(),
		Nonce:       tx.Nonce(),
		BlockNumber: tx.IncludedIn(),
		InputSize:   len(tx.Data()),
		Type:        scoutcommon.TxType(tx.Type()),
		InputData:   tx.Data(),
	}
	if tx.To() != nil {
		info.To = tx.To().Hex()
	}
	if tx.Type() >= types.AccessListTxType {
		n := len(tx.AccessList())
		info.AccessListSize = &n
	}
	if tx.Type() >= types.DynamicFeeTxType {
		info.MaxFeePerGas = tx.GasFeeCap()
		info.MaxPriorityFeePerGas = tx.GasTipCap()
	}
	for _, blobHash := range tx.BlobHashes() {
		info.BlobHashes = append(info.BlobHashes, blobHash.Hex())
	}
	if name, ok := decoder.FunctionName(tx.Data()); ok {
		info.Method = name
	} else if len(tx.Data()) >= 4 {
		info.Method = hexutil.Encode(tx.Data()[:4])
	}

	receipt, err := e.reader.TransactionReceipt(ctx, hash)
	if err != nil {
		logger.L().Debugw("receipt unavailable", "tx", hash, "err", err)
	} else if receipt != nil {
		applyReceipt(info, tx, receipt)
	}

	names := e.resolver.Names(ctx, txParticipants(tx))
	info.FromName = names[tx.From()]
	if tx.To() != nil {
		info.ToName = names[*tx.To()]
	}
	return info, nil
}

func applyReceipt(info *scoutcommon.TxInfo, tx *scoutcommon.Transaction, receipt *types.Receipt) {
	gasUsed := receipt.GasUsed
	info.GasUsed = &gasUsed
	status := receipt.Status == types.ReceiptStatusSuccessful
	info.Status = &status
	txIndex := receipt.TransactionIndex
	info.TxIndex = &txIndex

	effective := receipt.EffectiveGasPrice
	if effective == nil {
		effective = tx.GasPrice()
	}
	info.ActualFee = new(big.Int).Mul(new(big.Int).SetUint64(receipt.GasUsed), effective)

	if receipt.ContractAddress != (ethcommon.Address{}) {
		info.ContractCreated = receipt.ContractAddress.Hex()
	}
	if receipt.BlobGasUsed > 0 {
		blobGasUsed := receipt.BlobGasUsed
		info.BlobGasUsed = &blobGasUsed
		info.BlobGasPrice = receipt.BlobGasPrice
	}
	for _, log := range receipt.Logs {
		info.Logs = append(info.Logs, decoder.DecodeLog(log))
	}
	info.TokenTransfers = decoder.CollectTokenTransfers(receipt.Logs)
}

func txParticipants(tx *scoutcommon.Transaction) []ethcommon.Address {
	addrs := []ethcommon.Address{tx.From()}
	if tx.To() != nil && *tx.To() != tx.From() {
		addrs = append(addrs, *tx.To())
	}
	return addrs
}
