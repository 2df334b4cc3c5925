package keeper_test

import (
	"fmt"
	"math/rand"
	"testing"

	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"
	"cosmossdk.io/store"
	storemetrics "cosmossdk.io/store/metrics"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/babylonlabs-io/ftairdrop/testutil/datagen"
	testkeeper "github.com/babylonlabs-io/ftairdrop/testutil/keeper"
	"github.com/babylonlabs-io/ftairdrop/x/assetft/keeper"
	"github.com/babylonlabs-io/ftairdrop/x/assetft/types"
)

type coinsMatcher struct {
	coins sdk.Coins
}

func (m coinsMatcher) Matches(x interface{}) bool {
	coins, ok := x.(sdk.Coins)
	return ok && coins.Equal(m.coins)
}

func (m coinsMatcher) String() string {
	return fmt.Sprintf("is equal to %s", m.coins)
}

func eqCoins(coins ...sdk.Coin) gomock.Matcher {
	return coinsMatcher{coins: sdk.NewCoins(coins...)}
}

func setupKeeper(t *testing.T, bankK types.BankKeeper) (keeper.Keeper, sdk.Context) {
	ctrl := gomock.NewController(t)
	accK := types.NewMockAccountKeeper(ctrl)
	accK.EXPECT().GetModuleAddress(types.ModuleName).Return(authtypes.NewModuleAddress(types.ModuleName)).AnyTimes()

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewTestLogger(t), storemetrics.NewNoOpMetrics())
	return testkeeper.AssetFTKeeper(t, db, stateStore, accK, bankK)
}

func issueSettings(issuer sdk.AccAddress) types.IssueSettings {
	return types.IssueSettings{
		Issuer:             issuer,
		Symbol:             "SYM",
		Subunit:            "SUB",
		Precision:          2,
		InitialAmount:      sdkmath.NewInt(1000),
		Features:           []types.Feature{types.FeatureMinting},
		BurnRate:           sdkmath.LegacyZeroDec(),
		SendCommissionRate: sdkmath.LegacyMustNewDecFromStr("0.1"),
	}
}

func TestIssue(t *testing.T) {
	r := rand.New(rand.NewSource(10))
	issuer := datagen.GenRandomAccAddress(r)
	denom := types.BuildDenom("sub", issuer)
	initial := sdk.NewCoin(denom, sdkmath.NewInt(1000))

	ctrl := gomock.NewController(t)
	bankK := types.NewMockBankKeeper(ctrl)
	bankK.EXPECT().SetDenomMetaData(gomock.Any(), gomock.Any()).Times(1)
	bankK.EXPECT().MintCoins(gomock.Any(), types.ModuleName, eqCoins(initial)).Return(nil).Times(1)
	bankK.EXPECT().SendCoinsFromModuleToAccount(gomock.Any(), types.ModuleName, issuer, eqCoins(initial)).Return(nil).Times(1)

	k, ctx := setupKeeper(t, bankK)

	gotDenom, err := k.Issue(ctx, issueSettings(issuer))
	require.NoError(t, err)
	require.Equal(t, denom, gotDenom)

	token, err := k.GetToken(ctx, denom)
	require.NoError(t, err)
	require.Equal(t, "sub", token.Subunit)
	require.Equal(t, "SYM", token.Symbol)
	require.Equal(t, uint32(2), token.Precision)
	require.Equal(t, issuer.String(), token.Issuer)
	require.True(t, token.IsFeatureEnabled(types.FeatureMinting))
	require.False(t, token.IsFeatureEnabled(types.FeatureBurning))
	require.True(t, sdkmath.LegacyMustNewDecFromStr("0.1").Equal(token.SendCommissionRate))

	// the same subunit cannot be issued twice by the same issuer
	_, err = k.Issue(ctx, issueSettings(issuer))
	require.ErrorIs(t, err, types.ErrTokenExists)

	tokens, err := k.GetTokens(ctx)
	require.NoError(t, err)
	require.Len(t, tokens, 1)
}

func TestIssueInvalidSettings(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	issuer := datagen.GenRandomAccAddress(r)

	tcs := []struct {
		name   string
		modify func(s *types.IssueSettings)
		expErr error
	}{
		{
			name:   "empty issuer",
			modify: func(s *types.IssueSettings) { s.Issuer = nil },
			expErr: types.ErrInvalidInput,
		},
		{
			name:   "symbol too short",
			modify: func(s *types.IssueSettings) { s.Symbol = "S" },
			expErr: types.ErrInvalidInput,
		},
		{
			name:   "subunit with spaces",
			modify: func(s *types.IssueSettings) { s.Subunit = "sub unit" },
			expErr: types.ErrInvalidInput,
		},
		{
			name:   "precision too high",
			modify: func(s *types.IssueSettings) { s.Precision = types.MaxPrecision + 1 },
			expErr: types.ErrInvalidInput,
		},
		{
			name:   "commission above one",
			modify: func(s *types.IssueSettings) { s.SendCommissionRate = sdkmath.LegacyMustNewDecFromStr("1.5") },
			expErr: types.ErrInvalidRate,
		},
		{
			name:   "negative burn rate",
			modify: func(s *types.IssueSettings) { s.BurnRate = sdkmath.LegacyMustNewDecFromStr("-0.1") },
			expErr: types.ErrInvalidRate,
		},
		{
			name:   "unknown feature",
			modify: func(s *types.IssueSettings) { s.Features = []types.Feature{types.Feature(9)} },
			expErr: types.ErrInvalidInput,
		},
		{
			name:   "negative initial amount",
			modify: func(s *types.IssueSettings) { s.InitialAmount = sdkmath.NewInt(-1) },
			expErr: types.ErrInvalidInput,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// no bank call is expected for rejected settings
			bankK := types.NewMockBankKeeper(gomock.NewController(t))
			k, ctx := setupKeeper(t, bankK)

			settings := issueSettings(issuer)
			tc.modify(&settings)
			_, err := k.Issue(ctx, settings)
			require.ErrorIs(t, err, tc.expErr)
		})
	}
}

func TestMint(t *testing.T) {
	r := rand.New(rand.NewSource(12))
	issuer := datagen.GenRandomAccAddress(r)
	other := datagen.GenRandomAccAddress(r)

	ctrl := gomock.NewController(t)
	bankK := types.NewMockBankKeeper(ctrl)
	bankK.EXPECT().SetDenomMetaData(gomock.Any(), gomock.Any()).AnyTimes()
	bankK.EXPECT().MintCoins(gomock.Any(), types.ModuleName, gomock.Any()).Return(nil).AnyTimes()
	bankK.EXPECT().SendCoinsFromModuleToAccount(gomock.Any(), types.ModuleName, issuer, gomock.Any()).Return(nil).AnyTimes()

	k, ctx := setupKeeper(t, bankK)

	denom, err := k.Issue(ctx, issueSettings(issuer))
	require.NoError(t, err)

	noMint := issueSettings(issuer)
	noMint.Subunit = "nomint"
	noMint.Features = nil
	noMintDenom, err := k.Issue(ctx, noMint)
	require.NoError(t, err)

	require.NoError(t, k.Mint(ctx, issuer, sdk.NewCoin(denom, sdkmath.NewInt(100))))

	err = k.Mint(ctx, other, sdk.NewCoin(denom, sdkmath.NewInt(100)))
	require.ErrorIs(t, err, types.ErrUnauthorized)

	err = k.Mint(ctx, issuer, sdk.NewCoin(noMintDenom, sdkmath.NewInt(100)))
	require.ErrorIs(t, err, types.ErrFeatureDisabled)

	err = k.Mint(ctx, issuer, sdk.NewCoin("unknown", sdkmath.NewInt(100)))
	require.ErrorIs(t, err, types.ErrTokenNotFound)
}

func TestSendChargesCommission(t *testing.T) {
	r := rand.New(rand.NewSource(13))
	issuer := datagen.GenRandomAccAddress(r)
	alice := datagen.GenRandomAccAddress(r)
	bob := datagen.GenRandomAccAddress(r)

	ctrl := gomock.NewController(t)
	bankK := types.NewMockBankKeeper(ctrl)
	bankK.EXPECT().SetDenomMetaData(gomock.Any(), gomock.Any()).AnyTimes()
	bankK.EXPECT().MintCoins(gomock.Any(), types.ModuleName, gomock.Any()).Return(nil).AnyTimes()
	bankK.EXPECT().SendCoinsFromModuleToAccount(gomock.Any(), types.ModuleName, issuer, gomock.Any()).Return(nil).AnyTimes()

	k, ctx := setupKeeper(t, bankK)

	settings := issueSettings(issuer)
	settings.BurnRate = sdkmath.LegacyMustNewDecFromStr("0.05")
	denom, err := k.Issue(ctx, settings)
	require.NoError(t, err)

	// issuer sends are exempt
	amt := sdk.NewCoin(denom, sdkmath.NewInt(100))
	bankK.EXPECT().SendCoins(gomock.Any(), issuer, alice, eqCoins(amt)).Return(nil).Times(1)
	require.NoError(t, k.Send(ctx, issuer, alice, sdk.NewCoins(amt)))

	// third party sends pay 10% commission to the issuer and burn 5%
	gomock.InOrder(
		bankK.EXPECT().SendCoins(gomock.Any(), alice, bob, eqCoins(amt)).Return(nil),
		bankK.EXPECT().SendCoins(gomock.Any(), alice, issuer, eqCoins(sdk.NewCoin(denom, sdkmath.NewInt(10)))).Return(nil),
		bankK.EXPECT().SendCoinsFromAccountToModule(gomock.Any(), alice, types.ModuleName, eqCoins(sdk.NewCoin(denom, sdkmath.NewInt(5)))).Return(nil),
		bankK.EXPECT().BurnCoins(gomock.Any(), types.ModuleName, eqCoins(sdk.NewCoin(denom, sdkmath.NewInt(5)))).Return(nil),
	)
	require.NoError(t, k.Send(ctx, alice, bob, sdk.NewCoins(amt)))

	// denoms not issued by assetft are plain bank sends
	native := sdk.NewCoin("stake", sdkmath.NewInt(7))
	bankK.EXPECT().SendCoins(gomock.Any(), alice, bob, eqCoins(native)).Return(nil).Times(1)
	require.NoError(t, k.Send(ctx, alice, bob, sdk.NewCoins(native)))
}

func TestExportGenesis(t *testing.T) {
	r := rand.New(rand.NewSource(14))
	issuer := datagen.GenRandomAccAddress(r)

	ctrl := gomock.NewController(t)
	bankK := types.NewMockBankKeeper(ctrl)
	bankK.EXPECT().SetDenomMetaData(gomock.Any(), gomock.Any()).AnyTimes()
	bankK.EXPECT().MintCoins(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	bankK.EXPECT().SendCoinsFromModuleToAccount(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	k, ctx := setupKeeper(t, bankK)
	_, err := k.Issue(ctx, issueSettings(issuer))
	require.NoError(t, err)

	gs, err := k.ExportGenesis(ctx)
	require.NoError(t, err)
	require.NoError(t, gs.Validate())
	require.Len(t, gs.Tokens, 1)

	dup := types.GenesisState{Tokens: []types.Token{gs.Tokens[0], gs.Tokens[0]}}
	require.ErrorIs(t, dup.Validate(), types.ErrTokenExists)

	k2, ctx2 := setupKeeper(t, types.NewMockBankKeeper(gomock.NewController(t)))
	require.NoError(t, k2.InitGenesis(ctx2, *gs))
	exported, err := k2.ExportGenesis(ctx2)
	require.NoError(t, err)
	require.Equal(t, gs.Tokens[0].Denom, exported.Tokens[0].Denom)
}
