package types_test

import (
	"math/rand"
	"strings"
	"testing"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	_ "github.com/babylonlabs-io/ftairdrop/app/params"
	"github.com/babylonlabs-io/ftairdrop/testutil/datagen"
	"github.com/babylonlabs-io/ftairdrop/x/assetft/types"
)

func FuzzTokenValidate(f *testing.F) {
	datagen.AddRandomSeedsToFuzzer(f, 10)

	f.Fuzz(func(t *testing.T, seed int64) {
		r := rand.New(rand.NewSource(seed))
		issuer := datagen.GenRandomAccAddress(r)
		subunit := datagen.GenRandomSubunit(r)

		token := types.Token{
			Denom:              types.BuildDenom(strings.ToUpper(subunit), issuer),
			Issuer:             issuer.String(),
			Symbol:             datagen.GenRandomSymbol(r),
			Subunit:            subunit,
			Precision:          uint32(datagen.RandomInt(r, types.MaxPrecision+1)),
			Features:           []types.Feature{types.FeatureMinting},
			BurnRate:           sdkmath.LegacyZeroDec(),
			SendCommissionRate: sdkmath.LegacyNewDecWithPrec(int64(datagen.RandomInt(r, 101)), 2),
		}
		require.NoError(t, token.Validate())
		require.NoError(t, sdk.ValidateDenom(token.Denom))
		require.True(t, strings.HasPrefix(token.Denom, subunit+"-"))

		// the denom is bound to the issuer
		token.Issuer = datagen.GenRandomAccAddress(r).String()
		require.ErrorIs(t, token.Validate(), types.ErrInvalidInput)
	})
}

func TestValidateRate(t *testing.T) {
	require.NoError(t, types.ValidateRate(sdkmath.LegacyZeroDec()))
	require.NoError(t, types.ValidateRate(sdkmath.LegacyOneDec()))
	require.ErrorIs(t, types.ValidateRate(sdkmath.LegacyDec{}), types.ErrInvalidRate)
	require.ErrorIs(t, types.ValidateRate(sdkmath.LegacyMustNewDecFromStr("1.01")), types.ErrInvalidRate)
	require.ErrorIs(t, types.ValidateRate(sdkmath.LegacyMustNewDecFromStr("-0.01")), types.ErrInvalidRate)
}

func TestFeature(t *testing.T) {
	token := types.Token{Features: []types.Feature{types.FeatureMinting, types.FeatureFreezing}}
	require.True(t, token.IsFeatureEnabled(types.FeatureMinting))
	require.True(t, token.IsFeatureEnabled(types.FeatureFreezing))
	require.False(t, token.IsFeatureEnabled(types.FeatureBurning))

	require.Equal(t, "minting", types.FeatureMinting.String())
	require.NoError(t, types.FeatureWhitelisting.Validate())
	require.ErrorIs(t, types.Feature(42).Validate(), types.ErrInvalidInput)
}
