package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/babylonlabs-io/ftairdrop/x/assetft/types"
)

// Mint mints coin to sender, who must be the issuer of a token issued with
// the minting feature.
func (k Keeper) Mint(ctx context.Context, sender sdk.AccAddress, coin sdk.Coin) error {
	if err := types.ValidateAmount(coin.Amount); err != nil {
		return err
	}
	token, err := k.GetToken(ctx, coin.Denom)
	if err != nil {
		return err
	}
	if !token.IsFeatureEnabled(types.FeatureMinting) {
		return errorsmod.Wrapf(types.ErrFeatureDisabled, "minting is disabled for %s", token.Denom)
	}
	if token.Issuer != sender.String() {
		return errorsmod.Wrapf(types.ErrUnauthorized, "only %s can mint %s", token.Issuer, token.Denom)
	}

	if err := k.mintTo(ctx, sender, coin); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeMint,
			sdk.NewAttribute(types.AttributeKeyDenom, coin.Denom),
			sdk.NewAttribute(sdk.AttributeKeyAmount, coin.Amount.String()),
		),
	)
	return nil
}
