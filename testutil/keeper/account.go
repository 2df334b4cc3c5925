package keeper

import (
	"testing"

	"cosmossdk.io/store"
	storetypes "cosmossdk.io/store/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authcodec "github.com/cosmos/cosmos-sdk/x/auth/codec"
	accountk "github.com/cosmos/cosmos-sdk/x/auth/keeper"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	appparams "github.com/babylonlabs-io/ftairdrop/app/params"
)

func AccountKeeper(
	t testing.TB,
	db dbm.DB,
	stateStore store.CommitMultiStore,
) accountk.AccountKeeper {
	storeKey := storetypes.NewKVStoreKey(authtypes.StoreKey)

	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	bech32Prefix := sdk.GetConfig().GetBech32AccountAddrPrefix()
	k := accountk.NewAccountKeeper(
		appparams.MakeCodec(),
		runtime.NewKVStoreService(storeKey),
		authtypes.ProtoBaseAccount,
		appparams.GetMaccPerms(),
		authcodec.NewBech32Codec(bech32Prefix),
		bech32Prefix,
		appparams.AccGov.String(),
	)

	return k
}
