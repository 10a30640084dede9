package common

import (
	"math/big"
)

// BlockInfo is everything we show about a block. The derived fields
// (TotalValueTransferred, TotalFees, BurntFees, BlobCount) start zeroed and are
// only filled by the transaction fetch for the same block, since they need the
// full bodies and receipts.
type BlockInfo struct {
	Number           uint64
	Hash             string
	ParentHash       string
	Timestamp        uint64
	GasUsed          uint64
	GasLimit         uint64
	BaseFee          *big.Int
	TxCount          int
	Miner            string
	MinerName        string
	StateRoot        string
	ReceiptsRoot     string
	TransactionsRoot string
	ExtraData        string
	ExtraDataText    string
	Size             uint64
	UnclesCount      int
	WithdrawalsCount int
	BlobGasUsed      *uint64
	ExcessBlobGas    *uint64

	BlobCount             int
	TotalValueTransferred *big.Int
	TotalFees             *big.Int
	BurntFees             *big.Int
	BuilderTag            string
}

// BlockStats are aggregates over one block's transactions and receipts.
type BlockStats struct {
	TotalValueTransferred *big.Int
	TotalFees             *big.Int
	BurntFees             *big.Int
	BlobCount             int
}

// TxSummary is the lightweight per transaction record used in block listings.
// FeePaid is nil when no receipt was obtainable for the tx.
type TxSummary struct {
	Hash               string
	From               string
	To                 string
	Value              *big.Int
	GasLimit           uint64
	Type               TxType
	IsContractCreation bool
	FromName           string
	ToName             string
	InputSize          int
	MethodSelector     string
	Method             string
	BlobCount          int
	FeePaid            *big.Int
}

// TxInfo is the full transaction record. GasUsed, Status, ActualFee and
// ContractCreated are set iff a receipt was retrieved; their absence means the
// tx is unconfirmed or the receipt call failed, not an error.
type TxInfo struct {
	Hash                 string
	From                 string
	To                   string
	Value                *big.Int
	GasPrice             *big.Int
	GasLimit             uint64
	GasUsed              *uint64
	Nonce                uint64
	BlockNumber          *big.Int
	Status               *bool
	InputSize            int
	Type                 TxType
	MaxFeePerGas         *big.Int
	MaxPriorityFeePerGas *big.Int
	TxIndex              *uint
	ContractCreated      string
	AccessListSize       *int
	BlobGasUsed          *uint64
	BlobGasPrice         *big.Int
	BlobHashes           []string
	InputData            []byte

	FromName string
	ToName   string

	ActualFee      *big.Int
	Method         string
	Logs           []DecodedLog
	TokenTransfers []TokenTransfer
}

// DecodedLog keeps the raw log content next to the best effort decoding.
// Params preserve the order of the event's arguments as encoded.
type DecodedLog struct {
	Address   string
	Topics    []string
	Data      string
	EventName string
	Params    []DecodedParam
}

// DecodedParam is one decoded event argument. IsAddress marks values the
// caller can navigate to as identities.
type DecodedParam struct {
	Name      string
	Value     string
	IsAddress bool
}

// TokenTransfer is an ERC20 Transfer extracted from a receipt log.
type TokenTransfer struct {
	TokenAddress string
	From         string
	To           string
	Amount       *big.Int
	TokenSymbol  string
	Decimals     *uint8
}

// TokenInfo holds the ERC20 metadata probes that succeeded. Symbol and
// Decimals are always set when the record exists; Name and TotalSupply are
// cosmetic and may be absent.
type TokenInfo struct {
	Name        string
	Symbol      string
	Decimals    uint8
	TotalSupply *big.Int
}

// TokenBalance is one entry of the popular token balance scan.
type TokenBalance struct {
	Symbol   string
	Name     string
	Address  string
	Balance  *big.Int
	Decimals uint8
}

// AddressInfo is the merged result of the independent address probes. Every
// optional field is nullable on its own; one probe failing never clears the
// others.
type AddressInfo struct {
	Address       string
	Balance       *big.Int
	Nonce         uint64
	IsContract    bool
	CodeSize      int
	ProxyImpl     string
	Token         *TokenInfo
	Name          string
	Owner         string
	TokenBalances []TokenBalance
}

// NetworkSnapshot is a point in time view of the connected node and chain.
type NetworkSnapshot struct {
	LatestBlock            uint64
	GasPrice               *big.Int
	ClientVersion          string
	BaseFeeTrend           []*big.Int
	PriorityFeePercentiles []*big.Int
}
