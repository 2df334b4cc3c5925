package keeper

import (
	"context"

	"github.com/babylonlabs-io/ftairdrop/x/airdrop/types"
)

// InitGenesis initializes the contract from a genesis state. A genesis
// without State leaves the contract to be instantiated.
func (k Keeper) InitGenesis(ctx context.Context, gs types.GenesisState) error {
	if err := gs.Validate(); err != nil {
		return err
	}
	if gs.State == nil {
		return nil
	}
	if err := k.store.SaveContractInfo(ctx, *gs.ContractInfo); err != nil {
		return err
	}
	return k.store.Save(ctx, *gs.State)
}

// ExportGenesis returns the contract State and ContractInfo, if any.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	exists, err := k.store.Exists(ctx)
	if err != nil {
		return nil, err
	}
	if !exists {
		return types.DefaultGenesis(), nil
	}

	state, err := k.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	info, err := k.store.LoadContractInfo(ctx)
	if err != nil {
		return nil, err
	}
	return &types.GenesisState{State: &state, ContractInfo: &info}, nil
}
