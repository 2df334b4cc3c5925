package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/babylonlabs-io/ftairdrop/app"
)

// newInitCmd initializes the node home and the chain state from an optional
// genesis file.
func newInitCmd(n *node) *cobra.Command {
	return &cobra.Command{
		Use:   "init [genesis-file]",
		Short: "Initialize the node home directory and the chain state",
		Long: `Write app.toml to <home>/config if it does not exist yet and initialize
every module from the given genesis file, or from the default genesis.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(filepath.Join(configDir(n.home), appConfigName+"."+appConfigType)); os.IsNotExist(err) {
				if err := WriteConfig(n.home, n.cfg); err != nil {
					return fmt.Errorf("failed to write config: %w", err)
				}
			}

			var genState app.GenesisState
			if len(args) == 1 {
				bz, err := os.ReadFile(args[0])
				if err != nil {
					return err
				}
				if err := json.Unmarshal(bz, &genState); err != nil {
					return fmt.Errorf("failed to unmarshal genesis file: %w", err)
				}
			}

			return n.withApp(cmd, true, func(a *app.AirdropApp) error {
				if a.LastBlockHeight() > 0 {
					return fmt.Errorf("chain %s is already initialized at height %d", a.ChainID(), a.LastBlockHeight())
				}
				if err := a.InitChain(a.NewContext(), genState); err != nil {
					return err
				}
				return printJSON(cmd, map[string]string{"chain_id": a.ChainID(), "home": n.home})
			})
		},
	}
}
