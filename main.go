package main

import "github.com/trankha/ethscout/cmd"

func main() {
	cmd.Execute()
}
