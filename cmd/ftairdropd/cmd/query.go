package cmd

import (
	"encoding/json"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cobra"

	"github.com/babylonlabs-io/ftairdrop/app"
	airdroptypes "github.com/babylonlabs-io/ftairdrop/x/airdrop/types"
)

func newQueryCmd(n *node) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query the airdrop contract and balances",
	}

	query := func(cmd *cobra.Command, msg airdroptypes.QueryMsg) error {
		return n.withApp(cmd, false, func(a *app.AirdropApp) error {
			bz, err := a.AirdropKeeper.Query(a.NewContext(), msg)
			if err != nil {
				return err
			}
			return printRawJSON(cmd, bz)
		})
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "token",
			Short: "Show the definition of the airdropped token",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return query(cmd, airdroptypes.QueryMsg{Token: &struct{}{}})
			},
		},
		&cobra.Command{
			Use:   "minted-for-airdrop",
			Short: "Show the amount left in the airdrop pool",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return query(cmd, airdroptypes.QueryMsg{MintedForAirdrop: &struct{}{}})
			},
		},
		&cobra.Command{
			Use:   "contract-info",
			Short: "Show the name and version of the contract",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return query(cmd, airdroptypes.QueryMsg{ContractInfo: &struct{}{}})
			},
		},
		&cobra.Command{
			Use:   "raw [json]",
			Short: "Run a JSON encoded query",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return n.withApp(cmd, false, func(a *app.AirdropApp) error {
					bz, err := a.AirdropKeeper.QueryRaw(a.NewContext(), []byte(args[0]))
					if err != nil {
						return err
					}
					return printRawJSON(cmd, bz)
				})
			},
		},
		&cobra.Command{
			Use:   "balance [address]",
			Short: "Show the balance of the airdropped token held by address",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				addr, err := sdk.AccAddressFromBech32(args[0])
				if err != nil {
					return err
				}
				return n.withApp(cmd, false, func(a *app.AirdropApp) error {
					ctx := a.NewContext()
					state, err := a.AirdropKeeper.GetState(ctx)
					if err != nil {
						return err
					}
					return printJSON(cmd, a.BankKeeper.GetBalance(ctx, addr, state.Denom))
				})
			},
		},
	)
	return cmd
}

func newExportCmd(n *node) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Export the state of every module as genesis JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return n.withApp(cmd, false, func(a *app.AirdropApp) error {
				genState, err := a.ExportGenesis(a.NewContext())
				if err != nil {
					return err
				}
				return printJSON(cmd, map[string]json.RawMessage(genState))
			})
		},
	}
}
