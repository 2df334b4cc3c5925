package keeper

import (
	"testing"

	"cosmossdk.io/collections"
	"cosmossdk.io/log"
	"cosmossdk.io/store"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	appparams "github.com/babylonlabs-io/ftairdrop/app/params"
	teststore "github.com/babylonlabs-io/ftairdrop/testutil/store"
	"github.com/babylonlabs-io/ftairdrop/x/airdrop/keeper"
	"github.com/babylonlabs-io/ftairdrop/x/airdrop/types"
)

// AirdropKeeper mounts the airdrop store on stateStore and returns a keeper
// deployed at the airdrop module address.
func AirdropKeeper(
	t testing.TB,
	db dbm.DB,
	stateStore store.CommitMultiStore,
	messenger types.Messenger,
	querier types.Querier,
) (keeper.Keeper, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	k := keeper.NewKeeper(
		runtime.NewKVStoreService(storeKey),
		appparams.AccAirdrop,
		messenger,
		querier,
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{ChainID: appparams.DefaultChainID, Height: 1}, false, log.NewNopLogger())

	return k, ctx
}

// AirdropStateStore returns a bare StateStore on a fresh in-memory store,
// for driving the contract without a host.
func AirdropStateStore(t testing.TB) (keeper.StateStore, sdk.Context) {
	ctx, storeService := teststore.NewStoreWithCtx(t, types.StoreKey)

	sb := collections.NewSchemaBuilder(storeService)
	s := keeper.NewStateStore(sb)
	_, err := sb.Build()
	require.NoError(t, err)

	return s, ctx
}
