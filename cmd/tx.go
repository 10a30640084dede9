package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	scoutcommon "github.com/trankha/ethscout/common"
)

var txCmd = &cobra.Command{
	Use:   "tx [hash]",
	Short: "Show a transaction with decoded method and events",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ex, err := newExplorer()
		if err != nil {
			fail(err)
		}
		stop := spin(fmt.Sprintf("Fetching tx %s...", args[0]))
		info, err := ex.GetTransaction(context.Background(), args[0])
		stop()
		if err != nil {
			fail(err)
		}
		printTx(info)
	},
}

func printTx(info *scoutcommon.TxInfo) {
	fmt.Printf("Transaction %s\n", info.Hash)
	switch {
	case info.Status == nil:
		fmt.Printf("  Status:       %s\n", scoutcommon.DimColor("unconfirmed"))
	case *info.Status:
		fmt.Printf("  Status:       %s\n", scoutcommon.InfoColor("success"))
	default:
		fmt.Printf("  Status:       %s\n", scoutcommon.AlertColor("failed"))
	}
	if info.BlockNumber != nil {
		fmt.Printf("  Block:        #%s", info.BlockNumber.String())
		if info.TxIndex != nil {
			fmt.Printf(" (index %d)", *info.TxIndex)
		}
		fmt.Printf("\n")
	}
	fmt.Printf("  Type:         %s\n", info.Type)
	fmt.Printf("  From:         %s\n", withName(info.From, info.FromName))
	if info.To != "" {
		fmt.Printf("  To:           %s\n", withName(info.To, info.ToName))
	}
	if info.ContractCreated != "" {
		fmt.Printf("  Created:      %s\n", info.ContractCreated)
	}
	fmt.Printf("  Value:        %s\n", eth(info.Value))
	fmt.Printf("  Nonce:        %d\n", info.Nonce)
	fmt.Printf("  Gas limit:    %d\n", info.GasLimit)
	if info.GasUsed != nil {
		fmt.Printf("  Gas used:     %d\n", *info.GasUsed)
	}
	fmt.Printf("  Gas price:    %s\n", gwei(info.GasPrice))
	if info.MaxFeePerGas != nil {
		fmt.Printf("  Max fee:      %s (priority %s)\n", gwei(info.MaxFeePerGas), gwei(info.MaxPriorityFeePerGas))
	}
	if info.ActualFee != nil {
		fmt.Printf("  Fee paid:     %s\n", eth(info.ActualFee))
	}
	if info.AccessListSize != nil {
		fmt.Printf("  Access list:  %d entries\n", *info.AccessListSize)
	}
	if len(info.BlobHashes) > 0 {
		fmt.Printf("  Blobs:        %d\n", len(info.BlobHashes))
		for _, h := range info.BlobHashes {
			fmt.Printf("    %s\n", h)
		}
		if info.BlobGasUsed != nil {
			fmt.Printf("  Blob gas:     %d at %s\n", *info.BlobGasUsed, gwei(info.BlobGasPrice))
		}
	}
	if info.Method != "" {
		fmt.Printf("  Method:       %s\n", scoutcommon.InfoColor(info.Method))
	}
	if info.InputSize > 0 {
		fmt.Printf("  Input:        %d bytes\n", info.InputSize)
	}

	if len(info.Logs) > 0 {
		fmt.Printf("\nEvents (%d):\n", len(info.Logs))
		for i, log := range info.Logs {
			name := log.EventName
			if name == "" {
				name = scoutcommon.DimColor("unknown event")
			}
			fmt.Printf("  %d. %s @ %s\n", i, name, log.Address)
			for _, p := range log.Params {
				fmt.Printf("       %s: %s\n", p.Name, p.Value)
			}
		}
	}
	if len(info.TokenTransfers) > 0 {
		fmt.Printf("\nToken transfers (%d):\n", len(info.TokenTransfers))
		for _, t := range info.TokenTransfers {
			amount := t.Amount.String()
			symbol := t.TokenSymbol
			if t.Decimals != nil {
				amount = scoutcommon.FormatBigWithDecimals(t.Amount, *t.Decimals)
			}
			if symbol == "" {
				symbol = scoutcommon.DimColor(shortHex(t.TokenAddress))
			}
			fmt.Printf("  %s -> %s  %s %s\n", shortHex(t.From), shortHex(t.To), amount, symbol)
		}
	}
}

func init() {
	rootCmd.AddCommand(txCmd)
}
