package keeper

import (
	"context"

	"github.com/babylonlabs-io/ftairdrop/x/assetft/types"
)

// InitGenesis initializes the x/assetft store with the tokens of the genesis state.
func (k Keeper) InitGenesis(ctx context.Context, gs types.GenesisState) error {
	if err := gs.Validate(); err != nil {
		return err
	}
	for _, token := range gs.Tokens {
		if err := k.tokens.Set(ctx, token.Denom, token); err != nil {
			return err
		}
	}
	return nil
}

// ExportGenesis returns a x/assetft GenesisState for the given context.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	tokens, err := k.GetTokens(ctx)
	if err != nil {
		return nil, err
	}
	return &types.GenesisState{Tokens: tokens}, nil
}
