package inspect

import (
	"context"
	"math/big"
	"time"

	scoutcommon "github.com/trankha/ethscout/common"
	"github.com/trankha/ethscout/decoder"
	"github.com/trankha/ethscout/util/logger"
	"github.com/trankha/ethscout/util/reader"
)

const defaultScanTimeout = 5 * time.Second

// TokenBalanceScanner probes balanceOf for every entry of the popular token
// registry. The whole scan shares one timeout; on timeout or decode failure
// it degrades to an empty list instead of failing the address lookup.
type TokenBalanceScanner struct {
	reader  *reader.EthReader
	timeout time.Duration
}

func NewTokenBalanceScanner(r *reader.EthReader) *TokenBalanceScanner {
	return &TokenBalanceScanner{
		reader:  r,
		timeout: defaultScanTimeout,
	}
}

// TokenBalances returns the non-dust balances of the popular tokens held by
// address, in registry order. A balance counts only when it is at least
// 10^max(decimals-4, 0) raw units, i.e. roughly 0.0001 in display units.
func (s *TokenBalanceScanner) TokenBalances(ctx context.Context, address string) []scoutcommon.TokenBalance {
	scanCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resCh := make(chan []scoutcommon.TokenBalance, 1)
	go func() {
		resCh <- s.scan(scanCtx, address)
	}()

	select {
	case balances := <-resCh:
		return balances
	case <-scanCtx.Done():
		logger.L().Debugw("token balance scan timed out", "address", address)
		return []scoutcommon.TokenBalance{}
	}
}

func (s *TokenBalanceScanner) scan(ctx context.Context, address string) []scoutcommon.TokenBalance {
	balances := []scoutcommon.TokenBalance{}

	erc20 := scoutcommon.GetERC20ABI()
	for _, token := range decoder.PopularTokens {
		data, err := erc20.Pack("balanceOf", scoutcommon.HexToAddress(address))
		if err != nil {
			continue
		}
		response, err := s.reader.EthCall(ctx, token.Address.Hex(), data)
		if err != nil || len(response) < 32 {
			continue
		}
		balance := new(big.Int).SetBytes(response[:32])

		if balance.Cmp(dustThreshold(token.Decimals)) >= 0 {
			balances = append(balances, scoutcommon.TokenBalance{
				Symbol:   token.Symbol,
				Name:     token.Name,
				Address:  token.Address.Hex(),
				Balance:  balance,
				Decimals: token.Decimals,
			})
		}
	}

	return balances
}

func dustThreshold(decimals uint8) *big.Int {
	exp := int64(0)
	if decimals > 4 {
		exp = int64(decimals) - 4
	}
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(exp), nil)
}
