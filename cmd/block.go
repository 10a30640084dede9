package cmd

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	scoutcommon "github.com/trankha/ethscout/common"
	"github.com/trankha/ethscout/explorer"
)

var blockTxs bool

var blockCmd = &cobra.Command{
	Use:   "block [number|latest]",
	Short: "Show a block, optionally with its transactions",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ex, err := newExplorer()
		if err != nil {
			fail(err)
		}
		ctx := context.Background()

		number, err := blockNumberArg(ctx, ex, args[0])
		if err != nil {
			fail(err)
		}

		stop := spin(fmt.Sprintf("Fetching block #%d...", number))
		info, err := ex.GetBlock(ctx, number)
		stop()
		if err != nil {
			fail(err)
		}
		printBlock(info)

		if blockTxs {
			stop := spin(fmt.Sprintf("Fetching transactions of block #%d...", number))
			summaries, stats, err := ex.GetBlockTransactions(ctx, number)
			stop()
			if err != nil {
				fail(err)
			}
			printBlockTxs(summaries, stats)
		}
	},
}

func blockNumberArg(ctx context.Context, ex *explorer.Explorer, arg string) (uint64, error) {
	if arg == "latest" {
		return ex.LatestBlockNumber(ctx)
	}
	number, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid block number %q", arg)
	}
	return number, nil
}

func printBlock(info *scoutcommon.BlockInfo) {
	fmt.Printf("Block #%d\n", info.Number)
	fmt.Printf("  Hash:         %s\n", info.Hash)
	fmt.Printf("  Parent:       %s\n", info.ParentHash)
	fmt.Printf("  Time:         %s\n", time.Unix(int64(info.Timestamp), 0).UTC().Format(time.RFC3339))
	fmt.Printf("  Miner:        %s\n", withName(info.Miner, info.MinerName))
	if info.BuilderTag != "" {
		fmt.Printf("  Builder:      %s\n", info.BuilderTag)
	}
	fmt.Printf("  Gas:          %d / %d\n", info.GasUsed, info.GasLimit)
	if info.BaseFee != nil {
		fmt.Printf("  Base fee:     %s\n", gwei(info.BaseFee))
	}
	fmt.Printf("  Txs:          %d\n", info.TxCount)
	fmt.Printf("  Size:         %d bytes\n", info.Size)
	if info.WithdrawalsCount > 0 {
		fmt.Printf("  Withdrawals:  %d\n", info.WithdrawalsCount)
	}
	if info.UnclesCount > 0 {
		fmt.Printf("  Uncles:       %d\n", info.UnclesCount)
	}
	if info.BlobGasUsed != nil {
		fmt.Printf("  Blob gas:     %d\n", *info.BlobGasUsed)
	}
	if info.ExtraDataText != "" {
		fmt.Printf("  Extra data:   %s (%s)\n", info.ExtraData, info.ExtraDataText)
	} else if info.ExtraData != "0x" {
		fmt.Printf("  Extra data:   %s\n", info.ExtraData)
	}
}

func printBlockTxs(summaries []scoutcommon.TxSummary, stats scoutcommon.BlockStats) {
	fmt.Printf("\nTransactions (%d):\n", len(summaries))
	for i, s := range summaries {
		to := shortWithName(s.To, s.ToName)
		if s.IsContractCreation {
			to = scoutcommon.InfoColor("contract creation")
		}
		fmt.Printf("  %3d. %s\n", i, s.Hash)
		fmt.Printf("       %s -> %s  %s", shortWithName(s.From, s.FromName), to, eth(s.Value))
		if s.Method != "" {
			fmt.Printf("  %s", scoutcommon.DimColor(s.Method))
		} else if s.MethodSelector != "" {
			fmt.Printf("  %s", scoutcommon.DimColor(s.MethodSelector))
		}
		if s.FeePaid != nil {
			fmt.Printf("  fee %s", eth(s.FeePaid))
		}
		fmt.Printf("\n")
	}
	fmt.Printf("\nTotals: %s moved, %s fees, %s burnt",
		eth(stats.TotalValueTransferred), eth(stats.TotalFees), eth(stats.BurntFees))
	if stats.BlobCount > 0 {
		fmt.Printf(", %d blobs", stats.BlobCount)
	}
	fmt.Printf("\n")
}

func init() {
	rootCmd.AddCommand(blockCmd)
	blockCmd.Flags().BoolVarP(&blockTxs, "txs", "t", false, "also list the block's transactions with totals")
}
