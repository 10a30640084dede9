package decoder

import (
	"encoding/hex"
	"strings"
)

// knownSelectors maps 4-byte function selectors to their signatures. This is
// read-only domain knowledge covering the calls that dominate mainnet
// traffic: ERC-20/721, AMM routers, lending pools, proxies and ENS.
var knownSelectors = map[string]string{
	// ERC-20
	"a9059cbb": "transfer(address,uint256)",
	"23b872dd": "transferFrom(address,address,uint256)",
	"095ea7b3": "approve(address,uint256)",
	"70a08231": "balanceOf(address)",
	"dd62ed3e": "allowance(address,address)",
	// ERC-721
	"42842e0e": "safeTransferFrom(address,address,uint256)",
	"b88d4fde": "safeTransferFrom(address,address,uint256,bytes)",
	"6352211e": "getApproved(uint256)",
	"a22cb465": "setApprovalForAll(address,bool)",
	// Uniswap V2
	"38ed1739": "swapExactTokensForTokens",
	"7ff36ab5": "swapExactETHForTokens",
	"18cbafe5": "swapExactTokensForETH",
	"fb3bdb41": "swapETHForExactTokens",
	// Uniswap V3
	"c04b8d59": "exactInput",
	"db3e2198": "exactInputSingle",
	"09b81346": "exactOutput",
	"5ae401dc": "exactOutputSingle",
	"ac9650d8": "multicall(uint256,bytes[])",
	"1f0e7408": "multicall(bytes[])",
	// common
	"39509351": "deposit",
	"2e1a7d4d": "withdraw(uint256)",
	"3ccfd60b": "withdraw",
	"d0e30db0": "mint",
	"a0712d68": "burn",
	"01ffc9a7": "supportsInterface(bytes4)",
	// proxy
	"3e58c58c": "proxy()",
	"5c60da1b": "implementation()",
	"f851a440": "admin()",
	"4f1ef286": "upgradeTo(address)",
	// Aave
	"e8eda9df": "flashLoan",
	"69328dec": "supply",
	"a415bcad": "borrow",
	"573eab5f": "repay",
	// ENS
	"3b3b57de": "setAddr(bytes32,address)",
	"01fbc98e": "setName(string)",
}

// FunctionName maps the first 4 bytes of call input to a known function
// signature. Short or unrecognized input yields no match.
func FunctionName(input []byte) (string, bool) {
	if len(input) < 4 {
		return "", false
	}
	sig, ok := knownSelectors[hex.EncodeToString(input[:4])]
	return sig, ok
}

// ShortFunctionName is FunctionName with the argument list stripped, for
// compact listings.
func ShortFunctionName(input []byte) (string, bool) {
	sig, ok := FunctionName(input)
	if !ok {
		return "", false
	}
	name, _, _ := strings.Cut(sig, "(")
	return name, true
}
