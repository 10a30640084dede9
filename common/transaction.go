package common

import (
	"encoding/json"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
)

// Transaction wraps types.Transaction with the extra fields the node reports
// alongside the consensus payload. The sender in particular can't be derived
// without signature recovery, so we keep what the server said.
type Transaction struct {
	*types.Transaction
	Extra TxExtraInfo `json:"extra"`
}

type TxExtraInfo struct {
	BlockNumber *string         `json:"blockNumber,omitempty"`
	BlockHash   *common.Hash    `json:"blockHash,omitempty"`
	From        *common.Address `json:"from,omitempty"`
}

func (tx *Transaction) UnmarshalJSON(msg []byte) error {
	if err := json.Unmarshal(msg, &tx.Transaction); err != nil {
		return err
	}
	return json.Unmarshal(msg, &tx.Extra)
}

// From returns the server reported sender, or the zero address when the node
// didn't include one.
func (tx *Transaction) From() common.Address {
	if tx.Extra.From == nil {
		return common.Address{}
	}
	return *tx.Extra.From
}

// IsPending reports whether the tx has been included in a block yet.
func (tx *Transaction) IsPending() bool {
	return tx.Extra.BlockNumber == nil
}

// IncludedIn returns the block number the tx was mined in, nil while pending
// or when the field can't be parsed.
func (tx *Transaction) IncludedIn() *big.Int {
	if tx.Extra.BlockNumber == nil {
		return nil
	}
	n, err := hexutil.DecodeBig(*tx.Extra.BlockNumber)
	if err != nil {
		return nil
	}
	return n
}

// Block is a block with full transaction bodies as returned by
// eth_getBlockByNumber. The header carries the consensus fields; the rest is
// body content the typed header doesn't cover.
type Block struct {
	Header       *types.Header
	Transactions []*Transaction
	Uncles       []common.Hash
	Withdrawals  types.Withdrawals
	Size         uint64
}
