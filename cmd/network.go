package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var netCmd = &cobra.Command{
	Use:   "net",
	Short: "Show the connected network: head block, gas price, fee history",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ex, err := newExplorer()
		if err != nil {
			fail(err)
		}
		stop := spin("Fetching network status...")
		snapshot, err := ex.GetNetworkSnapshot(context.Background())
		stop()
		if err != nil {
			fail(err)
		}

		fmt.Printf("Network %s (chain id %d)\n", ex.Network().GetName(), ex.Network().GetChainID())
		fmt.Printf("  Latest block: #%d\n", snapshot.LatestBlock)
		fmt.Printf("  Gas price:    %s\n", gwei(snapshot.GasPrice))
		fmt.Printf("  Client:       %s\n", snapshot.ClientVersion)
		if len(snapshot.BaseFeeTrend) > 0 {
			fmt.Printf("  Base fee trend:")
			for _, fee := range snapshot.BaseFeeTrend {
				fmt.Printf(" %s", gwei(fee))
			}
			fmt.Printf("\n")
		}
		if len(snapshot.PriorityFeePercentiles) > 0 {
			fmt.Printf("  Priority fee (25/50/75):")
			for _, fee := range snapshot.PriorityFeePercentiles {
				fmt.Printf(" %s", gwei(fee))
			}
			fmt.Printf("\n")
		}
	},
}

func init() {
	rootCmd.AddCommand(netCmd)
}
