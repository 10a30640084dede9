package cmd

import (
	"fmt"
	"math/big"
	"os"
	"time"

	"github.com/briandowns/spinner"

	scoutcommon "github.com/trankha/ethscout/common"
	"github.com/trankha/ethscout/config"
	"github.com/trankha/ethscout/explorer"
	"github.com/trankha/ethscout/util/logger"
	"github.com/trankha/ethscout/util/retry"
)

func newExplorer() (*explorer.Explorer, error) {
	cfg, network, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := logger.Init(cfg.LogLevel); err != nil {
		return nil, err
	}
	executor := retry.NewExecutor(cfg.MaxRetries, cfg.BaseDelay)
	return explorer.New(network, cfg.NodeName, cfg.NodeURL, executor), nil
}

// spin shows an animated spinner with msg until the returned stop function is
// called. On non-terminal outputs it just prints the message once.
func spin(msg string) func() {
	fi, err := os.Stdout.Stat()
	if err != nil || fi.Mode()&os.ModeCharDevice == 0 {
		fmt.Println(msg)
		return func() {}
	}
	s := spinner.New(spinner.CharSets[14], 80*time.Millisecond)
	s.Suffix = " " + msg
	s.Start()
	return func() {
		s.Stop()
		fmt.Println()
	}
}

func fail(err error) {
	fmt.Println(scoutcommon.AlertColor(err.Error()))
	os.Exit(1)
}

func eth(value *big.Int) string {
	if value == nil {
		return "?"
	}
	return scoutcommon.FormatBigWithDecimals(value, 18) + " ETH"
}

func gwei(value *big.Int) string {
	if value == nil {
		return "?"
	}
	return scoutcommon.FormatBigWithDecimals(value, 9) + " gwei"
}

func withName(addr, name string) string {
	if name == "" {
		return addr
	}
	return fmt.Sprintf("%s (%s)", addr, scoutcommon.NameWithColor(name))
}

// shortHex compacts a 0x-prefixed hash or address for list output.
func shortHex(s string) string {
	if len(s) <= 14 {
		return s
	}
	return s[:10] + ".." + s[len(s)-4:]
}

// shortWithName prefers the resolved name and falls back to the compact hex.
func shortWithName(addr, name string) string {
	if name != "" {
		return scoutcommon.NameWithColor(name)
	}
	return shortHex(addr)
}
