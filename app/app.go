package app

import (
	"fmt"
	"os"
	"path/filepath"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	storemetrics "cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authcodec "github.com/cosmos/cosmos-sdk/x/auth/codec"
	authkeeper "github.com/cosmos/cosmos-sdk/x/auth/keeper"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"

	appparams "github.com/babylonlabs-io/ftairdrop/app/params"
	"github.com/babylonlabs-io/ftairdrop/wasmbinding"
	airdropkeeper "github.com/babylonlabs-io/ftairdrop/x/airdrop/keeper"
	airdroptypes "github.com/babylonlabs-io/ftairdrop/x/airdrop/types"
	assetftkeeper "github.com/babylonlabs-io/ftairdrop/x/assetft/keeper"
	assetfttypes "github.com/babylonlabs-io/ftairdrop/x/assetft/types"
)

const appName = "FTAirdropApp"

// DefaultNodeHome default home directories for the application daemon
var DefaultNodeHome string

func init() {
	userHomeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}

	DefaultNodeHome = filepath.Join(userHomeDir, ".ftairdrop")
}

// AirdropApp hosts the airdrop contract on top of the auth, bank and assetft
// modules. All modules share one commit multistore.
type AirdropApp struct {
	logger  log.Logger
	chainID string

	appCodec codec.Codec
	cms      storetypes.CommitMultiStore
	keys     map[string]*storetypes.KVStoreKey

	AccountKeeper authkeeper.AccountKeeper
	BankKeeper    bankkeeper.BaseKeeper
	AssetFTKeeper assetftkeeper.Keeper
	AirdropKeeper airdropkeeper.Keeper
}

// NewAirdropApp returns a reference to an initialized AirdropApp, loaded at
// the latest version committed to db.
func NewAirdropApp(logger log.Logger, db dbm.DB, chainID string) (*AirdropApp, error) {
	if chainID == "" {
		chainID = appparams.DefaultChainID
	}

	keys := storetypes.NewKVStoreKeys(
		authtypes.StoreKey,
		banktypes.StoreKey,
		assetfttypes.StoreKey,
		airdroptypes.StoreKey,
	)

	cms := store.NewCommitMultiStore(db, logger, storemetrics.NewNoOpMetrics())
	for _, key := range keys {
		cms.MountStoreWithDB(key, storetypes.StoreTypeIAVL, nil)
	}
	if err := cms.LoadLatestVersion(); err != nil {
		return nil, fmt.Errorf("failed to load latest version: %w", err)
	}

	appCodec := appparams.MakeCodec()
	app := &AirdropApp{
		logger:   logger.With("module", "app"),
		chainID:  chainID,
		appCodec: appCodec,
		cms:      cms,
		keys:     keys,
	}

	bech32Prefix := sdk.GetConfig().GetBech32AccountAddrPrefix()
	app.AccountKeeper = authkeeper.NewAccountKeeper(
		appCodec,
		runtime.NewKVStoreService(keys[authtypes.StoreKey]),
		authtypes.ProtoBaseAccount,
		appparams.GetMaccPerms(),
		authcodec.NewBech32Codec(bech32Prefix),
		bech32Prefix,
		appparams.AccGov.String(),
	)
	app.BankKeeper = bankkeeper.NewBaseKeeper(
		appCodec,
		runtime.NewKVStoreService(keys[banktypes.StoreKey]),
		app.AccountKeeper,
		BlockedAddresses(),
		appparams.AccGov.String(),
		logger,
	)
	app.AssetFTKeeper = assetftkeeper.NewKeeper(
		runtime.NewKVStoreService(keys[assetfttypes.StoreKey]),
		app.AccountKeeper,
		app.BankKeeper,
	)
	app.AirdropKeeper = airdropkeeper.NewKeeper(
		runtime.NewKVStoreService(keys[airdroptypes.StoreKey]),
		appparams.AccAirdrop,
		wasmbinding.NewCustomMessenger(app.AssetFTKeeper),
		wasmbinding.NewQueryPlugin(app.AssetFTKeeper),
	)

	return app, nil
}

// Name returns the name of the App
func (app *AirdropApp) Name() string { return appName }

// ChainID returns the chain id contexts are created with.
func (app *AirdropApp) ChainID() string { return app.chainID }

// AppCodec returns AirdropApp's app codec.
func (app *AirdropApp) AppCodec() codec.Codec { return app.appCodec }

// LastBlockHeight returns the height of the last committed block.
func (app *AirdropApp) LastBlockHeight() int64 {
	return app.cms.LastCommitID().Version
}

// NewContext returns a context for the block following the last commit.
// Writes through it reach the store but are only persisted by Commit.
func (app *AirdropApp) NewContext() sdk.Context {
	header := cmtproto.Header{
		ChainID: app.chainID,
		Height:  app.LastBlockHeight() + 1,
	}
	return sdk.NewContext(app.cms, header, false, app.logger)
}

// Commit persists every write made since the previous commit.
func (app *AirdropApp) Commit() storetypes.CommitID {
	id := app.cms.Commit()
	app.logger.Debug("committed state", "height", id.Version, "hash", fmt.Sprintf("%X", id.Hash))
	return id
}

// ModuleAccountAddrs returns all the app's module account addresses.
func (app *AirdropApp) ModuleAccountAddrs() map[string]bool {
	modAccAddrs := make(map[string]bool)
	for acc := range appparams.GetMaccPerms() {
		modAccAddrs[authtypes.NewModuleAddress(acc).String()] = true
	}

	return modAccAddrs
}

// BlockedAddresses returns all the app's blocked account addresses.
func BlockedAddresses() map[string]bool {
	modAccAddrs := make(map[string]bool)
	for acc := range appparams.GetMaccPerms() {
		modAccAddrs[authtypes.NewModuleAddress(acc).String()] = true
	}

	// the contract receives the supply it issues and mints
	delete(modAccAddrs, appparams.AccAirdrop.String())

	return modAccAddrs
}
