// Package decoder turns raw log and calldata bytes into best-effort
// human-readable structures. Everything here is a pure function of its input:
// no I/O, no retry, no state.
package decoder

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"

	scoutcommon "github.com/trankha/ethscout/common"
)

var (
	TransferSig   = crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))
	ApprovalSig   = crypto.Keccak256Hash([]byte("Approval(address,address,uint256)"))
	SwapV2Sig     = crypto.Keccak256Hash([]byte("Swap(address,uint256,uint256,uint256,uint256,address)"))
	SwapV3Sig     = crypto.Keccak256Hash([]byte("Swap(address,address,int256,int256,uint160,uint128,int24)"))
	DepositSig    = crypto.Keccak256Hash([]byte("Deposit(address,uint256)"))
	WithdrawalSig = crypto.Keccak256Hash([]byte("Withdrawal(address,uint256)"))
)

var knownEventSignatures = map[common.Hash]string{
	TransferSig:   "Transfer(address,address,uint256)",
	ApprovalSig:   "Approval(address,address,uint256)",
	SwapV2Sig:     "Swap(address,uint256,uint256,uint256,uint256,address)",
	SwapV3Sig:     "Swap(address,address,int256,int256,uint160,uint128,int24)",
	DepositSig:    "Deposit(address,uint256)",
	WithdrawalSig: "Withdrawal(address,uint256)",
}

var maxUint256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

// EventName maps a topic0 hash to a known event signature.
func EventName(topic0 common.Hash) (string, bool) {
	name, ok := knownEventSignatures[topic0]
	return name, ok
}

func topicAddress(topic common.Hash) string {
	return common.BytesToAddress(topic.Bytes()[12:]).Hex()
}

func dataWord(data []byte, offset int) *big.Int {
	if len(data) < offset+32 {
		return big.NewInt(0)
	}
	return new(big.Int).SetBytes(data[offset : offset+32])
}

// DecodeLog decodes one receipt log. Known signatures get their fixed rule;
// everything else goes through a generic topic/data heuristic. The raw topics
// and data are always kept alongside the decoded view.
func DecodeLog(log *types.Log) scoutcommon.DecodedLog {
	topics := make([]string, 0, len(log.Topics))
	for _, t := range log.Topics {
		topics = append(topics, t.Hex())
	}

	decoded := scoutcommon.DecodedLog{
		Address: log.Address.Hex(),
		Topics:  topics,
		Data:    fmt.Sprintf("0x%s", common.Bytes2Hex(log.Data)),
	}

	// without a topic0 there is no signature to interpret against, keep the
	// log raw
	if len(log.Topics) == 0 {
		return decoded
	}

	topic0 := log.Topics[0]
	if name, ok := EventName(topic0); ok {
		decoded.EventName = name
	}

	switch {
	case topic0 == TransferSig && len(log.Topics) >= 3:
		amount := dataWord(log.Data, 0)
		decoded.Params = []scoutcommon.DecodedParam{
			{Name: "from", Value: topicAddress(log.Topics[1]), IsAddress: true},
			{Name: "to", Value: topicAddress(log.Topics[2]), IsAddress: true},
			{Name: "value", Value: scoutcommon.FormatBigWithDecimals(amount, 18), IsAddress: false},
		}
	case topic0 == ApprovalSig && len(log.Topics) >= 3:
		amount := dataWord(log.Data, 0)
		amountDisplay := scoutcommon.FormatBigWithDecimals(amount, 18)
		if amount.Cmp(maxUint256) == 0 {
			amountDisplay = "unlimited"
		}
		decoded.Params = []scoutcommon.DecodedParam{
			{Name: "owner", Value: topicAddress(log.Topics[1]), IsAddress: true},
			{Name: "spender", Value: topicAddress(log.Topics[2]), IsAddress: true},
			{Name: "value", Value: amountDisplay, IsAddress: false},
		}
	case topic0 == SwapV2Sig && len(log.Topics) >= 2:
		params := []scoutcommon.DecodedParam{
			{Name: "sender", Value: topicAddress(log.Topics[1]), IsAddress: true},
		}
		if len(log.Data) >= 128 {
			for i, name := range []string{"amount0In", "amount1In", "amount0Out", "amount1Out"} {
				params = append(params, scoutcommon.DecodedParam{
					Name:  name,
					Value: scoutcommon.FormatBigWithDecimals(dataWord(log.Data, i*32), 18),
				})
			}
		}
		if len(log.Data) >= 160 {
			// the recipient is the trailing address argument
			params = append(params, scoutcommon.DecodedParam{
				Name:      "to",
				Value:     common.BytesToAddress(log.Data[140:160]).Hex(),
				IsAddress: true,
			})
		}
		decoded.Params = params
	case topic0 == DepositSig && len(log.Topics) >= 2:
		decoded.Params = []scoutcommon.DecodedParam{
			{Name: "dst", Value: topicAddress(log.Topics[1]), IsAddress: true},
			{Name: "wad", Value: scoutcommon.FormatBigWithDecimals(dataWord(log.Data, 0), 18)},
		}
	case topic0 == WithdrawalSig && len(log.Topics) >= 2:
		decoded.Params = []scoutcommon.DecodedParam{
			{Name: "src", Value: topicAddress(log.Topics[1]), IsAddress: true},
			{Name: "wad", Value: scoutcommon.FormatBigWithDecimals(dataWord(log.Data, 0), 18)},
		}
	default:
		decoded.Params = genericParams(log)
	}

	return decoded
}

// genericParams is the fallback for unrecognized events: indexed topics that
// look like addresses (zero high 12 bytes) become addresses, the rest uint256;
// the data payload is read as up to 4 leading 32-byte integers.
func genericParams(log *types.Log) []scoutcommon.DecodedParam {
	params := []scoutcommon.DecodedParam{}

	for i := 1; i < len(log.Topics); i++ {
		bytes := log.Topics[i].Bytes()
		allZero := true
		for _, b := range bytes[:12] {
			if b != 0 {
				allZero = false
				break
			}
		}
		if allZero {
			params = append(params, scoutcommon.DecodedParam{
				Name:      fmt.Sprintf("topic%d", i),
				Value:     common.BytesToAddress(bytes[12:]).Hex(),
				IsAddress: true,
			})
		} else {
			params = append(params, scoutcommon.DecodedParam{
				Name:  fmt.Sprintf("topic%d", i),
				Value: new(big.Int).SetBytes(bytes).String(),
			})
		}
	}

	chunks := len(log.Data) / 32
	if chunks > 4 {
		chunks = 4
	}
	for i := 0; i < chunks; i++ {
		params = append(params, scoutcommon.DecodedParam{
			Name:  fmt.Sprintf("data%d", i),
			Value: scoutcommon.FormatBigWithDecimals(dataWord(log.Data, i*32), 18),
		})
	}

	return params
}

// CollectTokenTransfers extracts ERC-20 Transfer shaped logs into token
// transfer records, labelling them with symbol and decimals when the emitting
// contract is in the popular token registry.
func CollectTokenTransfers(logs []*types.Log) []scoutcommon.TokenTransfer {
	transfers := []scoutcommon.TokenTransfer{}
	for _, log := range logs {
		if len(log.Topics) < 3 || log.Topics[0] != TransferSig {
			continue
		}
		transfer := scoutcommon.TokenTransfer{
			TokenAddress: log.Address.Hex(),
			From:         topicAddress(log.Topics[1]),
			To:           topicAddress(log.Topics[2]),
			Amount:       dataWord(log.Data, 0),
		}
		if token, ok := PopularTokenByAddress(log.Address); ok {
			transfer.TokenSymbol = token.Symbol
			decimals := token.Decimals
			transfer.Decimals = &decimals
		}
		transfers = append(transfers, transfer)
	}
	return transfers
}
