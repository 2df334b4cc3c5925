package app

import (
	"encoding/json"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"

	"github.com/babylonlabs-io/ftairdrop/x/airdrop"
	airdroptypes "github.com/babylonlabs-io/ftairdrop/x/airdrop/types"
	"github.com/babylonlabs-io/ftairdrop/x/assetft"
	assetfttypes "github.com/babylonlabs-io/ftairdrop/x/assetft/types"
)

// GenesisState of the app is the raw JSON genesis of each module keyed by
// module name.
type GenesisState map[string]json.RawMessage

// DefaultGenesis returns the default genesis of every module.
func (app *AirdropApp) DefaultGenesis() GenesisState {
	return GenesisState{
		authtypes.ModuleName:    app.appCodec.MustMarshalJSON(authtypes.DefaultGenesisState()),
		banktypes.ModuleName:    app.appCodec.MustMarshalJSON(banktypes.DefaultGenesisState()),
		assetfttypes.ModuleName: assetft.DefaultGenesis(),
		airdroptypes.ModuleName: airdrop.DefaultGenesis(),
	}
}

// InitChain validates genState and initializes every module from it.
// Modules missing from genState start from their default genesis.
func (app *AirdropApp) InitChain(ctx sdk.Context, genState GenesisState) error {
	defaults := app.DefaultGenesis()
	raw := func(module string) json.RawMessage {
		if bz, ok := genState[module]; ok {
			return bz
		}
		return defaults[module]
	}

	var authGen authtypes.GenesisState
	if err := app.appCodec.UnmarshalJSON(raw(authtypes.ModuleName), &authGen); err != nil {
		return fmt.Errorf("failed to unmarshal %s genesis state: %w", authtypes.ModuleName, err)
	}
	if err := authtypes.ValidateGenesis(authGen); err != nil {
		return err
	}

	var bankGen banktypes.GenesisState
	if err := app.appCodec.UnmarshalJSON(raw(banktypes.ModuleName), &bankGen); err != nil {
		return fmt.Errorf("failed to unmarshal %s genesis state: %w", banktypes.ModuleName, err)
	}
	if err := bankGen.Validate(); err != nil {
		return err
	}

	assetftGen, err := assetft.ValidateGenesis(raw(assetfttypes.ModuleName))
	if err != nil {
		return err
	}
	airdropGen, err := airdrop.ValidateGenesis(raw(airdroptypes.ModuleName))
	if err != nil {
		return err
	}

	app.AccountKeeper.InitGenesis(ctx, authGen)
	app.BankKeeper.InitGenesis(ctx, &bankGen)
	if err := assetft.InitGenesis(ctx, app.AssetFTKeeper, assetftGen); err != nil {
		return err
	}
	if err := airdrop.InitGenesis(ctx, app.AirdropKeeper, airdropGen); err != nil {
		return err
	}

	app.logger.Info("initialized chain", "chain_id", app.chainID)
	return nil
}

// ExportGenesis exports the genesis of every module.
func (app *AirdropApp) ExportGenesis(ctx sdk.Context) (GenesisState, error) {
	assetftGen, err := assetft.ExportGenesis(ctx, app.AssetFTKeeper)
	if err != nil {
		return nil, err
	}
	assetftBz, err := json.Marshal(assetftGen)
	if err != nil {
		return nil, err
	}

	airdropGen, err := airdrop.ExportGenesis(ctx, app.AirdropKeeper)
	if err != nil {
		return nil, err
	}
	airdropBz, err := json.Marshal(airdropGen)
	if err != nil {
		return nil, err
	}

	return GenesisState{
		authtypes.ModuleName:    app.appCodec.MustMarshalJSON(app.AccountKeeper.ExportGenesis(ctx)),
		banktypes.ModuleName:    app.appCodec.MustMarshalJSON(app.BankKeeper.ExportGenesis(ctx)),
		assetfttypes.ModuleName: assetftBz,
		airdroptypes.ModuleName: airdropBz,
	}, nil
}
