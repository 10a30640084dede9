package decoder

import (
	"github.com/ethereum/go-ethereum/common"
)

// PopularToken describes one entry of the fixed well-known token registry.
type PopularToken struct {
	Symbol   string
	Name     string
	Address  common.Address
	Decimals uint8
}

// PopularTokens is the curated mainnet ERC-20 registry used for balance
// scanning and for labelling token transfers. Order matters: scan output
// preserves it.
var PopularTokens = []PopularToken{
	{"USDT", "Tether USD", common.HexToAddress("0xdAC17F958D2ee523a2206206994597C13D831ec7"), 6},
	{"USDC", "USD Coin", common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"), 6},
	{"WETH", "Wrapped Ether", common.HexToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"), 18},
	{"DAI", "Dai Stablecoin", common.HexToAddress("0x6B175474E89094C44Da98b954EedeAC495271d0F"), 18},
	{"WBTC", "Wrapped Bitcoin", common.HexToAddress("0x2260FAC5E5542a773Aa44fBCfeDf7C193bc2C599"), 8},
	{"LINK", "Chainlink", common.HexToAddress("0x514910771AF9Ca656af840dff83E8264EcF986CA"), 18},
	{"UNI", "Uniswap", common.HexToAddress("0x1f9840a85d5aF5bf1D1762F925BDADdC4201F984"), 18},
	{"MATIC", "Polygon", common.HexToAddress("0x7D1AfA7B718fb893dB30A3aBc0Cfc608AaCfeBB0"), 18},
	{"SHIB", "Shiba Inu", common.HexToAddress("0x95aD61b0a150d79219dCF64E1E6Cc01f0B64C4cE"), 18},
	{"stETH", "Lido Staked ETH", common.HexToAddress("0xae7ab96520DE3A18E5e111B5EaAb095312D7fE84"), 18},
}

// PopularTokenByAddress looks up the registry entry for a token contract.
func PopularTokenByAddress(addr common.Address) (PopularToken, bool) {
	for _, t := range PopularTokens {
		if t.Address == addr {
			return t, true
		}
	}
	return PopularToken{}, false
}
