package cmd

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/babylonlabs-io/ftairdrop/app"
	airdroptypes "github.com/babylonlabs-io/ftairdrop/x/airdrop/types"
)

const (
	flagSymbol        = "symbol"
	flagSubunit       = "subunit"
	flagPrecision     = "precision"
	flagInitialAmount = "initial-amount"
	flagAirdropAmount = "airdrop-amount"
)

func addFromFlag(cmd *cobra.Command) {
	cmd.Flags().String(flagFrom, "", "bech32 address of the caller")
	_ = cmd.MarkFlagRequired(flagFrom)
}

func fromAddress(cmd *cobra.Command) (sdk.AccAddress, error) {
	from, err := cmd.Flags().GetString(flagFrom)
	if err != nil {
		return nil, err
	}
	addr, err := sdk.AccAddressFromBech32(from)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s address %q: %w", flagFrom, from, err)
	}
	return addr, nil
}

func parseAmount(name, s string) (sdkmath.Int, error) {
	amount, ok := sdkmath.NewIntFromString(s)
	if !ok {
		return sdkmath.Int{}, fmt.Errorf("invalid %s %q", name, s)
	}
	return amount, nil
}

func newInstantiateCmd(n *node) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "instantiate",
		Short: "Issue the token and create the airdrop pool",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sender, err := fromAddress(cmd)
			if err != nil {
				return err
			}

			symbol, _ := cmd.Flags().GetString(flagSymbol)
			subunit, _ := cmd.Flags().GetString(flagSubunit)
			precisionStr, _ := cmd.Flags().GetString(flagPrecision)
			precision, err := cast.ToUint32E(precisionStr)
			if err != nil {
				return fmt.Errorf("invalid precision: %w", err)
			}
			initialStr, _ := cmd.Flags().GetString(flagInitialAmount)
			initialAmount, err := parseAmount(flagInitialAmount, initialStr)
			if err != nil {
				return err
			}
			airdropStr, _ := cmd.Flags().GetString(flagAirdropAmount)
			airdropAmount, err := parseAmount(flagAirdropAmount, airdropStr)
			if err != nil {
				return err
			}

			msg := airdroptypes.InstantiateMsg{
				Symbol:        symbol,
				Subunit:       subunit,
				Precision:     precision,
				InitialAmount: initialAmount,
				AirdropAmount: airdropAmount,
			}

			return n.withApp(cmd, true, func(a *app.AirdropApp) error {
				res, err := a.AirdropKeeper.Instantiate(a.NewContext(), sender, msg)
				if err != nil {
					return err
				}
				return printResponse(cmd, res)
			})
		},
	}

	addFromFlag(cmd)
	cmd.Flags().String(flagSymbol, "", "token symbol")
	cmd.Flags().String(flagSubunit, "", "token subunit, the base of the denom")
	cmd.Flags().String(flagPrecision, "6", "number of decimal places of the token")
	cmd.Flags().String(flagInitialAmount, "0", "supply issued to the contract for the airdrop")
	cmd.Flags().String(flagAirdropAmount, "", "amount paid out by each claim")
	for _, name := range []string{flagSymbol, flagSubunit, flagAirdropAmount} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newExecuteCmd(n *node) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "execute",
		Short: "Execute the airdrop contract",
	}

	execute := func(cmd *cobra.Command, msg func() (airdroptypes.ExecuteMsg, error)) error {
		sender, err := fromAddress(cmd)
		if err != nil {
			return err
		}
		m, err := msg()
		if err != nil {
			return err
		}
		return n.withApp(cmd, true, func(a *app.AirdropApp) error {
			res, err := a.AirdropKeeper.Execute(a.NewContext(), sender, m)
			if err != nil {
				return err
			}
			return printResponse(cmd, res)
		})
	}

	mintCmd := &cobra.Command{
		Use:   "mint-for-airdrop [amount]",
		Short: "Mint more supply into the airdrop pool; owner only",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd, func() (airdroptypes.ExecuteMsg, error) {
				amount, err := parseAmount("amount", args[0])
				if err != nil {
					return airdroptypes.ExecuteMsg{}, err
				}
				return airdroptypes.ExecuteMsg{MintForAirdrop: &airdroptypes.MintForAirdropMsg{Amount: amount}}, nil
			})
		},
	}

	receiveCmd := &cobra.Command{
		Use:   "receive-airdrop",
		Short: "Claim one airdrop allotment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return execute(cmd, func() (airdroptypes.ExecuteMsg, error) {
				return airdroptypes.ExecuteMsg{ReceiveAirdrop: &struct{}{}}, nil
			})
		},
	}

	rawCmd := &cobra.Command{
		Use:   "raw [json]",
		Short: "Execute a JSON encoded message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sender, err := fromAddress(cmd)
			if err != nil {
				return err
			}
			return n.withApp(cmd, true, func(a *app.AirdropApp) error {
				res, err := a.AirdropKeeper.ExecuteRaw(a.NewContext(), sender, []byte(args[0]))
				if err != nil {
					return err
				}
				return printResponse(cmd, res)
			})
		},
	}

	for _, c := range []*cobra.Command{mintCmd, receiveCmd, rawCmd} {
		addFromFlag(c)
		cmd.AddCommand(c)
	}
	return cmd
}

func printResponse(cmd *cobra.Command, res *wasmvmtypes.Response) error {
	attrs := make(map[string]string, len(res.Attributes))
	for _, attr := range res.Attributes {
		attrs[attr.Key] = attr.Value
	}
	return printJSON(cmd, map[string]any{
		"attributes": attrs,
		"messages":   len(res.Messages),
	})
}
