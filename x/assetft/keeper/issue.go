package keeper

import (
	"context"
	"strings"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"

	"github.com/babylonlabs-io/ftairdrop/x/assetft/types"
)

// Issue creates a new token owned by settings.Issuer and mints the initial
// amount to it. It returns the denom of the new token.
func (k Keeper) Issue(ctx context.Context, settings types.IssueSettings) (string, error) {
	if settings.Issuer.Empty() {
		return "", errorsmod.Wrap(types.ErrInvalidInput, "issuer is empty")
	}

	token := types.Token{
		Denom:              types.BuildDenom(settings.Subunit, settings.Issuer),
		Issuer:             settings.Issuer.String(),
		Symbol:             settings.Symbol,
		Subunit:            strings.ToLower(settings.Subunit),
		Precision:          settings.Precision,
		Description:        settings.Description,
		Features:           settings.Features,
		BurnRate:           settings.BurnRate,
		SendCommissionRate: settings.SendCommissionRate,
	}
	if err := token.Validate(); err != nil {
		return "", err
	}
	if err := types.ValidateAmount(settings.InitialAmount); err != nil {
		return "", errorsmod.Wrap(err, "initial amount")
	}

	exists, err := k.tokens.Has(ctx, token.Denom)
	if err != nil {
		return "", err
	}
	if exists {
		return "", errorsmod.Wrapf(types.ErrTokenExists, "denom %s", token.Denom)
	}

	if err := k.tokens.Set(ctx, token.Denom, token); err != nil {
		return "", err
	}
	k.bankKeeper.SetDenomMetaData(ctx, denomMetadata(token))

	if err := k.mintTo(ctx, settings.Issuer, sdk.NewCoin(token.Denom, settings.InitialAmount)); err != nil {
		return "", errorsmod.Wrap(err, "failed to mint initial amount")
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeIssue,
			sdk.NewAttribute(types.AttributeKeyDenom, token.Denom),
			sdk.NewAttribute(types.AttributeKeyIssuer, token.Issuer),
			sdk.NewAttribute(types.AttributeKeyAmount, settings.InitialAmount.String()),
		),
	)
	k.Logger(ctx).Info("issued token", "denom", token.Denom, "issuer", token.Issuer, "initial_amount", settings.InitialAmount.String())

	return token.Denom, nil
}

func denomMetadata(token types.Token) banktypes.Metadata {
	units := []*banktypes.DenomUnit{{Denom: token.Denom, Exponent: 0}}
	display := token.Denom
	if token.Precision > 0 {
		display = strings.ToLower(token.Symbol)
		units = append(units, &banktypes.DenomUnit{Denom: display, Exponent: token.Precision})
	}

	return banktypes.Metadata{
		Description: token.Description,
		DenomUnits:  units,
		Base:        token.Denom,
		Display:     display,
		Name:        token.Symbol,
		Symbol:      token.Symbol,
	}
}
