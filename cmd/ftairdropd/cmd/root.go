package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"cosmossdk.io/log"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/babylonlabs-io/ftairdrop/app"
)

const (
	flagHome      = "home"
	flagChainID   = "chain-id"
	flagDBBackend = "db-backend"
	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"
	flagFrom      = "from"
)

// node is the state shared by the commands of one invocation.
type node struct {
	v    *viper.Viper
	home string
	cfg  AppConfig
}

// NewRootCmd creates a new root command for ftairdropd. It is called once in
// the main function.
func NewRootCmd() *cobra.Command {
	n := &node{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:          "ftairdropd",
		Short:        "Issue a fungible token and run its airdrop contract",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SetOut(cmd.OutOrStdout())
			cmd.SetErr(cmd.ErrOrStderr())

			n.home = cast.ToString(n.v.Get(flagHome))
			if n.home == "" {
				n.home = app.DefaultNodeHome
			}

			cfg, err := ReadConfig(n.v, n.home)
			if err != nil {
				return err
			}
			n.cfg = cfg
			return nil
		},
	}

	rootCmd.PersistentFlags().String(flagHome, app.DefaultNodeHome, "directory for config and data")
	rootCmd.PersistentFlags().String(flagChainID, "", "chain id of the contexts contracts run in")
	rootCmd.PersistentFlags().String(flagDBBackend, "", "database backend: goleveldb | memdb")
	rootCmd.PersistentFlags().String(flagLogLevel, "", "log level: trace | debug | info | warn | error")
	rootCmd.PersistentFlags().String(flagLogFormat, "", "log format: plain | json")
	for _, name := range []string{flagHome, flagChainID, flagDBBackend, flagLogLevel, flagLogFormat} {
		if err := n.v.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(
		newInitCmd(n),
		newInstantiateCmd(n),
		newExecuteCmd(n),
		newQueryCmd(n),
		newExportCmd(n),
		newConfigCmd(n),
	)

	return rootCmd
}

// openApp opens the node database and loads the app at its latest height.
// The returned function closes the database and releases the home lock.
func (n *node) openApp(cmd *cobra.Command) (*app.AirdropApp, func() error, error) {
	logger, err := n.cfg.Logger(cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, err
	}

	if err := os.MkdirAll(dataDir(n.home), 0o755); err != nil {
		return nil, nil, err
	}
	unlock, err := lockHome(cmd.Context(), n.home)
	if err != nil {
		return nil, nil, err
	}
	db, err := dbm.NewDB("application", dbm.BackendType(n.cfg.DBBackend), dataDir(n.home))
	if err != nil {
		_ = unlock()
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	closeFn := func() error {
		err := db.Close()
		if uerr := unlock(); err == nil {
			err = uerr
		}
		return err
	}

	a, err := app.NewAirdropApp(logger, db, n.cfg.ChainID)
	if err != nil {
		_ = closeFn()
		return nil, nil, err
	}
	return a, closeFn, nil
}

// withApp runs fn against the app and commits its writes if fn succeeds.
func (n *node) withApp(cmd *cobra.Command, commit bool, fn func(a *app.AirdropApp) error) (err error) {
	a, closeDB, err := n.openApp(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeDB(); err == nil {
			err = cerr
		}
	}()

	if err := fn(a); err != nil {
		return err
	}
	if commit {
		id := a.Commit()
		n.logger(cmd).Debug("state committed", "height", id.Version)
	}
	return nil
}

func (n *node) logger(cmd *cobra.Command) log.Logger {
	logger, err := n.cfg.Logger(cmd.ErrOrStderr())
	if err != nil {
		return log.NewNopLogger()
	}
	return logger
}

func printJSON(cmd *cobra.Command, v any) error {
	bz, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bz))
	return err
}

func printRawJSON(cmd *cobra.Command, bz []byte) error {
	var v any
	if err := json.Unmarshal(bz, &v); err != nil {
		return err
	}
	return printJSON(cmd, v)
}
