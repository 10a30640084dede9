package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	scoutcommon "github.com/trankha/ethscout/common"
)

var addrCmd = &cobra.Command{
	Use:   "addr [address]",
	Short: "Show an address: balance, contract probes, token holdings",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ex, err := newExplorer()
		if err != nil {
			fail(err)
		}
		stop := spin(fmt.Sprintf("Inspecting %s...", args[0]))
		info, err := ex.GetAddress(context.Background(), args[0])
		stop()
		if err != nil {
			fail(err)
		}
		printAddress(info)
	},
}

func printAddress(info *scoutcommon.AddressInfo) {
	fmt.Printf("Address %s\n", withName(info.Address, info.Name))
	fmt.Printf("  Balance:      %s\n", eth(info.Balance))
	fmt.Printf("  Nonce:        %d\n", info.Nonce)
	if !info.IsContract {
		fmt.Printf("  Kind:         externally owned account\n")
		return
	}
	fmt.Printf("  Kind:         contract (%d bytes of code)\n", info.CodeSize)
	if info.ProxyImpl != "" {
		fmt.Printf("  Proxy impl:   %s\n", info.ProxyImpl)
	}
	if info.Owner != "" {
		fmt.Printf("  Owner:        %s\n", info.Owner)
	}
	if info.Token != nil {
		fmt.Printf("  Token:        %s", info.Token.Symbol)
		if info.Token.Name != "" {
			fmt.Printf(" (%s)", info.Token.Name)
		}
		fmt.Printf(", %d decimals", info.Token.Decimals)
		if info.Token.TotalSupply != nil {
			fmt.Printf(", supply %s", scoutcommon.FormatBigWithDecimals(info.Token.TotalSupply, info.Token.Decimals))
		}
		fmt.Printf("\n")
	}
	if len(info.TokenBalances) > 0 {
		fmt.Printf("\nToken holdings:\n")
		for _, b := range info.TokenBalances {
			fmt.Printf("  %-8s %s\n", b.Symbol, scoutcommon.FormatBigWithDecimals(b.Balance, b.Decimals))
		}
	}
}

func init() {
	rootCmd.AddCommand(addrCmd)
}
