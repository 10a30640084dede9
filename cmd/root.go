package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/trankha/ethscout/util/logger"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ethscout",
	Short: "Inspect ethereum blocks, transactions and addresses from your terminal",
	Long: `Ethscout is a command line tool to look up ethereum chain data: blocks,
transactions, addresses and ENS names, with event decoding and contract
introspection built in.

It talks to one JSON-RPC endpoint. By default it uses the public node of the
selected network; set ETHSCOUT_NODE_URL (or the network specific variable,
for mainnet ETHEREUM_MAINNET_NODE) to use your own.

Other knobs, all optional:
	ETHSCOUT_NETWORK      network name, default "mainnet"
	ETHSCOUT_MAX_RETRIES  retry attempts on transient RPC errors, default 5
	ETHSCOUT_BASE_DELAY   first retry delay, default 500ms
	ETHSCOUT_LOG_LEVEL    zap level for diagnostics on stderr, default warn`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
