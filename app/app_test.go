package app_test

import (
	"encoding/json"
	"math/big"
	"math/rand"
	"testing"

	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/babylonlabs-io/ftairdrop/app"
	appparams "github.com/babylonlabs-io/ftairdrop/app/params"
	"github.com/babylonlabs-io/ftairdrop/testutil/datagen"
	"github.com/babylonlabs-io/ftairdrop/wasmbinding/bindings"
	airdroptypes "github.com/babylonlabs-io/ftairdrop/x/airdrop/types"
	assetfttypes "github.com/babylonlabs-io/ftairdrop/x/assetft/types"
)

func setupApp(t *testing.T, db dbm.DB, genState app.GenesisState) (*app.AirdropApp, sdk.Context) {
	a, err := app.NewAirdropApp(log.NewTestLogger(t), db, "")
	require.NoError(t, err)
	ctx := a.NewContext()
	require.NoError(t, a.InitChain(ctx, genState))
	return a, ctx
}

func instantiateMsg() airdroptypes.InstantiateMsg {
	return airdroptypes.InstantiateMsg{
		Symbol:        "SYM",
		Subunit:       "SUB",
		Precision:     6,
		InitialAmount: sdkmath.NewInt(1000),
		AirdropAmount: sdkmath.NewInt(100),
	}
}

func mintedForAirdrop(t *testing.T, a *app.AirdropApp, ctx sdk.Context) string {
	bz, err := a.AirdropKeeper.QueryRaw(ctx, []byte(`{"minted_for_airdrop":{}}`))
	require.NoError(t, err)
	var res airdroptypes.AmountResponse
	require.NoError(t, json.Unmarshal(bz, &res))
	return res.Amount.String()
}

func TestAirdropScenario(t *testing.T) {
	r := rand.New(rand.NewSource(30))
	db := dbm.NewMemDB()
	a, ctx := setupApp(t, db, nil)

	owner := datagen.GenRandomAccAddress(r)
	claimer := datagen.GenRandomAccAddress(r)
	contract := a.AirdropKeeper.ContractAddress()
	require.Equal(t, appparams.AccAirdrop, contract)
	denom := airdroptypes.Denom("SUB", contract.String())

	_, err := a.AirdropKeeper.Instantiate(ctx, owner, instantiateMsg())
	require.NoError(t, err)
	require.Equal(t, "1000", mintedForAirdrop(t, a, ctx))
	require.Equal(t, int64(1000), a.BankKeeper.GetBalance(ctx, contract, denom).Amount.Int64())

	// only the owner mints
	_, err = a.AirdropKeeper.ExecuteRaw(ctx, claimer, []byte(`{"mint_for_airdrop":{"amount":"100"}}`))
	require.ErrorIs(t, err, airdroptypes.ErrUnauthorized)
	require.Equal(t, "1000", mintedForAirdrop(t, a, ctx))

	_, err = a.AirdropKeeper.ExecuteRaw(ctx, owner, []byte(`{"mint_for_airdrop":{"amount":"100"}}`))
	require.NoError(t, err)
	require.Equal(t, "1100", mintedForAirdrop(t, a, ctx))
	require.Equal(t, int64(1100), a.BankKeeper.GetBalance(ctx, contract, denom).Amount.Int64())
	require.Equal(t, int64(1100), a.BankKeeper.GetSupply(ctx, denom).Amount.Int64())

	_, err = a.AirdropKeeper.ExecuteRaw(ctx, claimer, []byte(`{"receive_airdrop":{}}`))
	require.NoError(t, err)
	require.Equal(t, "1000", mintedForAirdrop(t, a, ctx))
	require.Equal(t, int64(100), a.BankKeeper.GetBalance(ctx, claimer, denom).Amount.Int64())
	require.Equal(t, int64(1000), a.BankKeeper.GetBalance(ctx, contract, denom).Amount.Int64())

	bz, err := a.AirdropKeeper.QueryRaw(ctx, []byte(`{"token":{}}`))
	require.NoError(t, err)
	var tokenRes bindings.TokenResponse
	require.NoError(t, json.Unmarshal(bz, &tokenRes))
	require.Equal(t, denom, tokenRes.Token.Denom)
	require.Equal(t, contract.String(), tokenRes.Token.Issuer)
	require.Equal(t, []assetfttypes.Feature{assetfttypes.FeatureMinting}, tokenRes.Token.Features)

	// state survives a restart once committed
	a.Commit()
	a2, err := app.NewAirdropApp(log.NewTestLogger(t), db, "")
	require.NoError(t, err)
	require.Equal(t, int64(1), a2.LastBlockHeight())
	ctx2 := a2.NewContext()
	require.Equal(t, "1000", mintedForAirdrop(t, a2, ctx2))
	require.Equal(t, int64(100), a2.BankKeeper.GetBalance(ctx2, claimer, denom).Amount.Int64())

	_, err = a2.AirdropKeeper.Instantiate(ctx2, owner, instantiateMsg())
	require.ErrorIs(t, err, airdroptypes.ErrAlreadyInstantiated)
}

func TestAirdropDrain(t *testing.T) {
	r := rand.New(rand.NewSource(31))
	a, ctx := setupApp(t, dbm.NewMemDB(), nil)
	owner := datagen.GenRandomAccAddress(r)
	claimer := datagen.GenRandomAccAddress(r)
	denom := airdroptypes.Denom("SUB", a.AirdropKeeper.ContractAddress().String())

	_, err := a.AirdropKeeper.Instantiate(ctx, owner, instantiateMsg())
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		_, err := a.AirdropKeeper.ExecuteRaw(ctx, claimer, []byte(`{"receive_airdrop":{}}`))
		require.NoError(t, err)
	}
	require.Equal(t, "0", mintedForAirdrop(t, a, ctx))
	require.Equal(t, int64(1000), a.BankKeeper.GetBalance(ctx, claimer, denom).Amount.Int64())

	_, err = a.AirdropKeeper.ExecuteRaw(ctx, claimer, []byte(`{"receive_airdrop":{}}`))
	require.ErrorIs(t, err, airdroptypes.ErrInsufficientMinted)
}

func TestAirdropMintOverflow(t *testing.T) {
	r := rand.New(rand.NewSource(33))
	a, ctx := setupApp(t, dbm.NewMemDB(), nil)
	owner := datagen.GenRandomAccAddress(r)
	contract := a.AirdropKeeper.ContractAddress()
	denom := airdroptypes.Denom("SUB", contract.String())

	_, err := a.AirdropKeeper.Instantiate(ctx, owner, instantiateMsg())
	require.NoError(t, err)

	// 1000 + (2^128 - 1000) = 2^128 does not fit into 128 bits
	maxUint128 := sdkmath.NewIntFromBigInt(new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1)))
	overflow := maxUint128.SubRaw(999)
	_, err = a.AirdropKeeper.ExecuteRaw(ctx, owner, []byte(`{"mint_for_airdrop":{"amount":"`+overflow.String()+`"}}`))
	require.ErrorIs(t, err, airdroptypes.ErrOverflow)
	require.Equal(t, "1000", mintedForAirdrop(t, a, ctx))
	require.Equal(t, int64(1000), a.BankKeeper.GetSupply(ctx, denom).Amount.Int64())
	require.Equal(t, int64(1000), a.BankKeeper.GetBalance(ctx, contract, denom).Amount.Int64())

	// the largest representable total is accepted, sent as a JSON number
	fill := maxUint128.SubRaw(1000)
	_, err = a.AirdropKeeper.ExecuteRaw(ctx, owner, []byte(`{"mint_for_airdrop":{"amount":`+fill.String()+`}}`))
	require.NoError(t, err)
	require.Equal(t, maxUint128.String(), mintedForAirdrop(t, a, ctx))
	require.True(t, maxUint128.Equal(a.BankKeeper.GetSupply(ctx, denom).Amount))
}

func TestAirdropRollsBackFailedSend(t *testing.T) {
	r := rand.New(rand.NewSource(32))
	contract := appparams.AccAirdrop

	// the pool counter claims supply the contract account does not hold
	state := airdroptypes.NewState(datagen.GenRandomAccAddress(r).String(), "SUB", contract.String(),
		sdkmath.NewInt(500), sdkmath.NewInt(100))
	airdropGen, err := json.Marshal(airdroptypes.GenesisState{
		State:        &state,
		ContractInfo: &airdroptypes.ContractInfo{Contract: airdroptypes.ContractName, Version: airdroptypes.ContractVersion},
	})
	require.NoError(t, err)

	a, ctx := setupApp(t, dbm.NewMemDB(), app.GenesisState{airdroptypes.ModuleName: airdropGen})
	claimer := datagen.GenRandomAccAddress(r)

	_, err = a.AirdropKeeper.ExecuteRaw(ctx, claimer, []byte(`{"receive_airdrop":{}}`))
	require.Error(t, err)
	require.Equal(t, "500", mintedForAirdrop(t, a, ctx))
	require.True(t, a.BankKeeper.GetBalance(ctx, claimer, state.Denom).IsZero())
}

func TestExportGenesis(t *testing.T) {
	r := rand.New(rand.NewSource(33))
	a, ctx := setupApp(t, dbm.NewMemDB(), nil)
	_, err := a.AirdropKeeper.Instantiate(ctx, datagen.GenRandomAccAddress(r), instantiateMsg())
	require.NoError(t, err)

	exported, err := a.ExportGenesis(ctx)
	require.NoError(t, err)

	var assetftGen assetfttypes.GenesisState
	require.NoError(t, json.Unmarshal(exported[assetfttypes.ModuleName], &assetftGen))
	require.Len(t, assetftGen.Tokens, 1)

	var airdropGen airdroptypes.GenesisState
	require.NoError(t, json.Unmarshal(exported[airdroptypes.ModuleName], &airdropGen))
	require.NotNil(t, airdropGen.State)
	require.Equal(t, "1000", airdropGen.State.MintedForAirdrop.String())

	// the export boots a new chain with the same state
	a2, ctx2 := setupApp(t, dbm.NewMemDB(), exported)
	require.Equal(t, "1000", mintedForAirdrop(t, a2, ctx2))
	require.Equal(t, int64(1000), a2.BankKeeper.GetBalance(ctx2, a2.AirdropKeeper.ContractAddress(), airdropGen.State.Denom).Amount.Int64())
}

func TestBlockedAddrs(t *testing.T) {
	a, _ := setupApp(t, dbm.NewMemDB(), nil)

	require.True(t, a.BankKeeper.BlockedAddr(appparams.AccAssetFT))
	require.False(t, a.BankKeeper.BlockedAddr(appparams.AccAirdrop))
	require.True(t, a.ModuleAccountAddrs()[appparams.AccAirdrop.String()])
}
