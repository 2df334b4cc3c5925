package keeper

import (
	"context"
	"errors"
	"fmt"

	"cosmossdk.io/collections"
	corestoretypes "cosmossdk.io/core/store"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"

	ft "github.com/babylonlabs-io/ftairdrop/types"
	"github.com/babylonlabs-io/ftairdrop/x/assetft/types"
)

// Keeper of the assetft store
type Keeper struct {
	storeService corestoretypes.KVStoreService
	bankKeeper   types.BankKeeper

	// tokens maps (denom) => Token
	tokens collections.Map[string, types.Token]
}

// NewKeeper creates a new assetft Keeper instance.
func NewKeeper(
	storeService corestoretypes.KVStoreService,
	ak types.AccountKeeper,
	bankKeeper types.BankKeeper,
) Keeper {
	// Ensure the assetft module account has been set
	if addr := ak.GetModuleAddress(types.ModuleName); addr == nil {
		panic("the assetft module account has not been set")
	}

	sb := collections.NewSchemaBuilder(storeService)
	k := Keeper{
		storeService: storeService,
		bankKeeper:   bankKeeper,
		tokens: collections.NewMap(
			sb,
			types.TokenKeyPrefix,
			"tokens",
			// key: (denom)
			collections.StringKey,
			ft.JSONValue[types.Token]("token"),
		),
	}
	if _, err := sb.Build(); err != nil {
		panic(err)
	}
	return k
}

func (k Keeper) Logger(goCtx context.Context) log.Logger {
	ctx := sdk.UnwrapSDKContext(goCtx)
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// GetToken returns the definition of the token with the given denom.
func (k Keeper) GetToken(ctx context.Context, denom string) (types.Token, error) {
	token, err := k.tokens.Get(ctx, denom)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.Token{}, errorsmod.Wrapf(types.ErrTokenNotFound, "denom %s", denom)
		}
		return types.Token{}, err
	}
	return token, nil
}

// GetTokens returns every issued token ordered by denom.
func (k Keeper) GetTokens(ctx context.Context) ([]types.Token, error) {
	tokens := []types.Token{}
	err := k.tokens.Walk(ctx, nil, func(_ string, token types.Token) (bool, error) {
		tokens = append(tokens, token)
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

// GetSupply implements an alias call to the underlying bank keeper's
// GetSupply.
func (k Keeper) GetSupply(ctx context.Context, denom string) sdk.Coin {
	return k.bankKeeper.GetSupply(ctx, denom)
}

// mintTo mints coins through the assetft module account and credits them
// to recipient.
func (k Keeper) mintTo(ctx context.Context, recipient sdk.AccAddress, coin sdk.Coin) error {
	if coin.IsZero() {
		return nil
	}
	coins := sdk.NewCoins(coin)
	if err := k.bankKeeper.MintCoins(ctx, types.ModuleName, coins); err != nil {
		return err
	}
	return k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, recipient, coins)
}
