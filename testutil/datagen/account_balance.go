package datagen

import (
	"math/rand"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GenRandomAccAddress returns a random 20 byte account address.
func GenRandomAccAddress(r *rand.Rand) sdk.AccAddress {
	return sdk.AccAddress(GenRandomByteArray(r, 20))
}

// GenRandomSymbol returns a random token symbol of 3 to 8 upper case letters.
func GenRandomSymbol(r *rand.Rand) string {
	return genRandomLetters(r, RandomInRange(r, 3, 9), 'A')
}

// GenRandomSubunit returns a random lower case token subunit.
func GenRandomSubunit(r *rand.Rand) string {
	return genRandomLetters(r, RandomInRange(r, 1, 12), 'a')
}

func genRandomLetters(r *rand.Rand, n int, base byte) string {
	bz := make([]byte, n)
	for i := range bz {
		bz[i] = base + byte(r.Intn(26))
	}
	return string(bz)
}
