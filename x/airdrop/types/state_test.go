package types_test

import (
	"math/big"
	"math/rand"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/babylonlabs-io/ftairdrop/testutil/datagen"
	"github.com/babylonlabs-io/ftairdrop/x/airdrop/types"
)

var maxUint128 = sdkmath.NewIntFromBigInt(new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1)))

func TestDenom(t *testing.T) {
	require.Equal(t, "sub-cosmos2contract", types.Denom("SUB", "cosmos2contract"))
	require.NotEqual(t, types.Denom("sub", "contract1"), types.Denom("sub", "contract2"))
}

func TestNewState(t *testing.T) {
	s := types.NewState("creator", "SUB", "cosmos2contract", sdkmath.NewInt(1000), sdkmath.NewInt(100))
	require.Equal(t, "creator", s.Owner)
	require.Equal(t, "sub-cosmos2contract", s.Denom)
	require.Equal(t, sdkmath.NewInt(1000), s.MintedForAirdrop)
	require.Equal(t, sdkmath.NewInt(100), s.AirdropAmount)
	require.NoError(t, s.Validate())
}

func TestStateMintForAirdrop(t *testing.T) {
	s := types.NewState("creator", "SUB", "cosmos2contract", sdkmath.NewInt(1000), sdkmath.NewInt(100))

	tcs := []struct {
		name      string
		sender    string
		amount    sdkmath.Int
		expMinted sdkmath.Int
		expErr    error
	}{
		{"owner mints", "creator", sdkmath.NewInt(100), sdkmath.NewInt(1100), nil},
		{"owner mints zero", "creator", sdkmath.ZeroInt(), sdkmath.NewInt(1000), nil},
		{"non owner", "anyone", sdkmath.NewInt(100), sdkmath.NewInt(1000), types.ErrUnauthorized},
		{"overflow", "creator", maxUint128, sdkmath.NewInt(1000), types.ErrOverflow},
		{"negative amount", "creator", sdkmath.NewInt(-1), sdkmath.NewInt(1000), types.ErrInvalidInput},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			next, err := s.MintForAirdrop(tc.sender, tc.amount)
			if tc.expErr != nil {
				require.ErrorIs(t, err, tc.expErr)
				require.Equal(t, s, next)
				return
			}
			require.NoError(t, err)
			require.True(t, tc.expMinted.Equal(next.MintedForAirdrop))
			require.Equal(t, s.Owner, next.Owner)
			require.Equal(t, s.Denom, next.Denom)
			require.Equal(t, s.AirdropAmount, next.AirdropAmount)
		})
	}

	// the receiver is not modified
	require.True(t, sdkmath.NewInt(1000).Equal(s.MintedForAirdrop))
}

func FuzzMintForAirdropIsExact(f *testing.F) {
	datagen.AddRandomSeedsToFuzzer(f, 10)
	f.Fuzz(func(t *testing.T, seed int64) {
		r := rand.New(rand.NewSource(seed))
		initial := datagen.RandomMathInt(r, 1_000_000)
		s := types.NewState("creator", "sub", "contract", initial, sdkmath.NewInt(1))

		amount := datagen.RandomMathInt(r, 1_000_000_000)
		next, err := s.MintForAirdrop("creator", amount)
		require.NoError(t, err)
		require.True(t, initial.Add(amount).Equal(next.MintedForAirdrop))
	})
}

func TestStateReceiveAirdrop(t *testing.T) {
	s := types.NewState("creator", "SUB", "cosmos2contract", sdkmath.NewInt(250), sdkmath.NewInt(100))

	s, err := s.ReceiveAirdrop()
	require.NoError(t, err)
	require.True(t, sdkmath.NewInt(150).Equal(s.MintedForAirdrop))

	s, err = s.ReceiveAirdrop()
	require.NoError(t, err)
	require.True(t, sdkmath.NewInt(50).Equal(s.MintedForAirdrop))

	next, err := s.ReceiveAirdrop()
	require.ErrorIs(t, err, types.ErrInsufficientMinted)
	require.Equal(t, s, next)
}

func TestStateReceiveAirdropExactBalance(t *testing.T) {
	s := types.NewState("creator", "sub", "contract", sdkmath.NewInt(100), sdkmath.NewInt(100))

	s, err := s.ReceiveAirdrop()
	require.NoError(t, err)
	require.True(t, s.MintedForAirdrop.IsZero())
}

func TestStateValidate(t *testing.T) {
	valid := types.NewState("creator", "sub", "contract", sdkmath.NewInt(1), sdkmath.NewInt(1))
	require.NoError(t, valid.Validate())

	noOwner := valid
	noOwner.Owner = ""
	require.ErrorIs(t, noOwner.Validate(), types.ErrInvalidInput)

	badDenom := valid
	badDenom.Denom = "1"
	require.ErrorIs(t, badDenom.Validate(), types.ErrInvalidInput)

	tooLarge := valid
	tooLarge.MintedForAirdrop = maxUint128.AddRaw(1)
	require.ErrorIs(t, tooLarge.Validate(), types.ErrInvalidInput)
}
