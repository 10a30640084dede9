package decoder

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addressTopic(addr common.Address) common.Hash {
	return common.BytesToHash(addr.Bytes())
}

func word(value *big.Int) []byte {
	return common.BigToHash(value).Bytes()
}

func TestEventName(t *testing.T) {
	name, ok := EventName(TransferSig)
	assert.True(t, ok)
	assert.Equal(t, "Transfer(address,address,uint256)", name)

	_, ok = EventName(common.HexToHash("0xdeadbeef"))
	assert.False(t, ok)
}

func TestDecodeLogTransfer(t *testing.T) {
	from := common.HexToAddress("0x1111111111111111111111111111111111111111")
	to := common.HexToAddress("0x2222222222222222222222222222222222222222")
	oneEth := new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

	log := &types.Log{
		Address: common.HexToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"),
		Topics:  []common.Hash{TransferSig, addressTopic(from), addressTopic(to)},
		Data:    word(oneEth),
	}
	decoded := DecodeLog(log)

	assert.Equal(t, "Transfer(address,address,uint256)", decoded.EventName)
	require.Len(t, decoded.Params, 3)
	assert.Equal(t, "from", decoded.Params[0].Name)
	assert.Equal(t, from.Hex(), decoded.Params[0].Value)
	assert.True(t, decoded.Params[0].IsAddress)
	assert.Equal(t, to.Hex(), decoded.Params[1].Value)
	assert.Equal(t, "1", decoded.Params[2].Value)
	assert.False(t, decoded.Params[2].IsAddress)
}

func TestDecodeLogApprovalUnlimited(t *testing.T) {
	owner := common.HexToAddress("0x1111111111111111111111111111111111111111")
	spender := common.HexToAddress("0x2222222222222222222222222222222222222222")

	log := &types.Log{
		Topics: []common.Hash{ApprovalSig, addressTopic(owner), addressTopic(spender)},
		Data:   word(maxUint256),
	}
	decoded := DecodeLog(log)

	require.Len(t, decoded.Params, 3)
	assert.Equal(t, "unlimited", decoded.Params[2].Value)
}

func TestDecodeLogSwapV2(t *testing.T) {
	sender := common.HexToAddress("0x7a250d5630B4cF539739dF2C5dAcb4c659F2488D")
	recipient := common.HexToAddress("0x3333333333333333333333333333333333333333")
	oneEth := new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

	data := append(word(oneEth), word(big.NewInt(0))...)
	data = append(data, word(big.NewInt(0))...)
	data = append(data, word(new(big.Int).Mul(oneEth, big.NewInt(2)))...)
	data = append(data, common.BytesToHash(recipient.Bytes()).Bytes()...)

	log := &types.Log{
		Topics: []common.Hash{SwapV2Sig, addressTopic(sender)},
		Data:   data,
	}
	decoded := DecodeLog(log)

	require.Len(t, decoded.Params, 6)
	assert.Equal(t, "sender", decoded.Params[0].Name)
	assert.Equal(t, sender.Hex(), decoded.Params[0].Value)
	assert.Equal(t, "amount0In", decoded.Params[1].Name)
	assert.Equal(t, "1", decoded.Params[1].Value)
	assert.Equal(t, "amount1Out", decoded.Params[4].Name)
	assert.Equal(t, "2", decoded.Params[4].Value)
	assert.Equal(t, "to", decoded.Params[5].Name)
	assert.Equal(t, recipient.Hex(), decoded.Params[5].Value)
}

func TestDecodeLogGenericFallback(t *testing.T) {
	addr := common.HexToAddress("0x4444444444444444444444444444444444444444")
	bigTopic := common.HexToHash("0xffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")

	log := &types.Log{
		Topics: []common.Hash{
			common.HexToHash("0x0102030405060708010203040506070801020304050607080102030405060708"),
			addressTopic(addr),
			bigTopic,
		},
		Data: word(new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)),
	}
	decoded := DecodeLog(log)

	assert.Empty(t, decoded.EventName)
	require.Len(t, decoded.Params, 3)
	// topic with zero high bytes reads as an address
	assert.Equal(t, addr.Hex(), decoded.Params[0].Value)
	assert.True(t, decoded.Params[0].IsAddress)
	// topic with set high bytes reads as a uint256
	assert.False(t, decoded.Params[1].IsAddress)
	assert.Equal(t, new(big.Int).SetBytes(bigTopic.Bytes()).String(), decoded.Params[1].Value)
	assert.Equal(t, "data0", decoded.Params[2].Name)
	assert.Equal(t, "1", decoded.Params[2].Value)
}

func TestDecodeLogWithoutTopicsStaysRaw(t *testing.T) {
	log := &types.Log{
		Address: common.HexToAddress("0x4444444444444444444444444444444444444444"),
		Data:    word(big.NewInt(7)),
	}
	decoded := DecodeLog(log)

	assert.Empty(t, decoded.EventName)
	assert.Empty(t, decoded.Params)
	// the raw content is still carried
	assert.Equal(t, log.Address.Hex(), decoded.Address)
	assert.NotEmpty(t, decoded.Data)
}

func TestDecodeLogGenericFallbackCapsDataChunks(t *testing.T) {
	log := &types.Log{
		Topics: []common.Hash{common.HexToHash("0x01")},
		Data:   make([]byte, 7*32),
	}
	decoded := DecodeLog(log)
	assert.Len(t, decoded.Params, 4)
}

func TestCollectTokenTransfers(t *testing.T) {
	from := common.HexToAddress("0x1111111111111111111111111111111111111111")
	to := common.HexToAddress("0x2222222222222222222222222222222222222222")
	usdt := common.HexToAddress("0xdAC17F958D2ee523a2206206994597C13D831ec7")
	obscure := common.HexToAddress("0x9999999999999999999999999999999999999999")

	logs := []*types.Log{
		{
			Address: usdt,
			Topics:  []common.Hash{TransferSig, addressTopic(from), addressTopic(to)},
			Data:    word(big.NewInt(1500000)),
		},
		{
			Address: obscure,
			Topics:  []common.Hash{TransferSig, addressTopic(from), addressTopic(to)},
			Data:    word(big.NewInt(42)),
		},
		{
			// not a Transfer, must be skipped
			Topics: []common.Hash{DepositSig, addressTopic(from)},
			Data:   word(big.NewInt(7)),
		},
	}
	transfers := CollectTokenTransfers(logs)
	require.Len(t, transfers, 2)

	assert.Equal(t, "USDT", transfers[0].TokenSymbol)
	require.NotNil(t, transfers[0].Decimals)
	assert.Equal(t, uint8(6), *transfers[0].Decimals)
	assert.Equal(t, "1500000", transfers[0].Amount.String())

	assert.Empty(t, transfers[1].TokenSymbol)
	assert.Nil(t, transfers[1].Decimals)
}
