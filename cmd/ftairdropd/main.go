package main

import (
	"os"

	"cosmossdk.io/log"

	"github.com/babylonlabs-io/ftairdrop/app/params"
	"github.com/babylonlabs-io/ftairdrop/cmd/ftairdropd/cmd"
)

func main() {
	params.SetAddressPrefixes()
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		log.NewLogger(rootCmd.OutOrStderr()).Error("failure when running app", "err", err)
		os.Exit(1)
	}
}
