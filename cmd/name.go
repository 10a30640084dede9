package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	scoutcommon "github.com/trankha/ethscout/common"
)

var nameCmd = &cobra.Command{
	Use:   "name [ens-name|address]",
	Short: "Resolve an ENS name to an address, or an address to its name",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ex, err := newExplorer()
		if err != nil {
			fail(err)
		}
		ctx := context.Background()
		arg := args[0]

		if strings.Contains(arg, ".") {
			stop := spin(fmt.Sprintf("Resolving %s...", arg))
			addr, err := ex.Resolver().Resolve(ctx, arg)
			stop()
			if err != nil {
				fail(err)
			}
			fmt.Printf("%s -> %s\n", scoutcommon.NameWithColor(arg), addr.Hex())
			return
		}

		stop := spin(fmt.Sprintf("Looking up name of %s...", arg))
		name := ex.Resolver().Name(ctx, scoutcommon.HexToAddress(arg))
		stop()
		if name == "" {
			fmt.Printf("%s has no primary ENS name\n", arg)
			return
		}
		fmt.Printf("%s -> %s\n", arg, scoutcommon.NameWithColor(name))
	},
}

func init() {
	rootCmd.AddCommand(nameCmd)
}
