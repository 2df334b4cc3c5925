package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	ft "github.com/babylonlabs-io/ftairdrop/types"
	"github.com/babylonlabs-io/ftairdrop/x/assetft/types"
)

// Send transfers coins from one account to another. For assetft denoms the
// sender additionally pays the send commission, credited to the issuer, and
// the burn rate, burned. Transfers to or from the issuer are exempt.
func (k Keeper) Send(ctx context.Context, from, to sdk.AccAddress, coins sdk.Coins) error {
	if err := k.bankKeeper.SendCoins(ctx, from, to, coins); err != nil {
		return err
	}

	for _, coin := range coins {
		if err := k.chargeFees(ctx, from, to, coin); err != nil {
			return err
		}
	}
	return nil
}

func (k Keeper) chargeFees(ctx context.Context, from, to sdk.AccAddress, coin sdk.Coin) error {
	exists, err := k.tokens.Has(ctx, coin.Denom)
	if err != nil || !exists {
		return err
	}
	token, err := k.tokens.Get(ctx, coin.Denom)
	if err != nil {
		return err
	}
	if token.Issuer == from.String() || token.Issuer == to.String() {
		return nil
	}

	commission := ft.MulRateCeil(coin.Amount, token.SendCommissionRate)
	if commission.IsPositive() {
		issuer := sdk.MustAccAddressFromBech32(token.Issuer)
		if err := k.bankKeeper.SendCoins(ctx, from, issuer, sdk.NewCoins(sdk.NewCoin(coin.Denom, commission))); err != nil {
			return err
		}
	}

	burn := ft.MulRateCeil(coin.Amount, token.BurnRate)
	if burn.IsPositive() {
		burnCoins := sdk.NewCoins(sdk.NewCoin(coin.Denom, burn))
		if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, from, types.ModuleName, burnCoins); err != nil {
			return err
		}
		if err := k.bankKeeper.BurnCoins(ctx, types.ModuleName, burnCoins); err != nil {
			return err
		}
	}

	if commission.IsPositive() || burn.IsPositive() {
		sdkCtx := sdk.UnwrapSDKContext(ctx)
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeSendCommission,
				sdk.NewAttribute(types.AttributeKeyDenom, coin.Denom),
				sdk.NewAttribute(types.AttributeKeySender, from.String()),
				sdk.NewAttribute(types.AttributeKeyCommission, commission.String()),
				sdk.NewAttribute(types.AttributeKeyBurned, burn.String()),
			),
		)
	}
	return nil
}
