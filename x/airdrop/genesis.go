package airdrop

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/babylonlabs-io/ftairdrop/x/airdrop/keeper"
	"github.com/babylonlabs-io/ftairdrop/x/airdrop/types"
)

// InitGenesis initializes the module's state from a provided genesis state.
func InitGenesis(ctx context.Context, k keeper.Keeper, genState types.GenesisState) error {
	return k.InitGenesis(ctx, genState)
}

// ExportGenesis returns the module's exported genesis.
func ExportGenesis(ctx context.Context, k keeper.Keeper) (*types.GenesisState, error) {
	return k.ExportGenesis(ctx)
}

// DefaultGenesis returns the default genesis state as raw JSON.
func DefaultGenesis() json.RawMessage {
	bz, err := json.Marshal(types.DefaultGenesis())
	if err != nil {
		panic(err)
	}
	return bz
}

// ValidateGenesis decodes and validates a raw JSON genesis state.
func ValidateGenesis(bz json.RawMessage) (types.GenesisState, error) {
	var gs types.GenesisState
	if err := json.Unmarshal(bz, &gs); err != nil {
		return gs, fmt.Errorf("failed to unmarshal %s genesis state: %w", types.ModuleName, err)
	}
	return gs, gs.Validate()
}
