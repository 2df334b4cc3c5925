package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Uint128Bits is the width of the unsigned amounts handled by contracts.
const Uint128Bits = 128

// ValidateUint128 checks that x is a non-negative integer representable
// in 128 bits.
func ValidateUint128(x sdkmath.Int) error {
	if x.IsNil() {
		return fmt.Errorf("%w: nil value", ErrInvalidAmount)
	}
	if x.IsNegative() {
		return fmt.Errorf("%w: %s is negative", ErrInvalidAmount, x)
	}
	if x.BigInt().BitLen() > Uint128Bits {
		return fmt.Errorf("%w: %s", ErrUint128Overflow, x)
	}
	return nil
}

// UnmarshalUint128JSON decodes an amount sent either as a quoted decimal
// string or as a bare JSON number. The range is checked by ValidateUint128.
func UnmarshalUint128JSON(bz []byte) (sdkmath.Int, error) {
	bz = bytes.TrimSpace(bz)
	s := string(bz)
	if len(bz) > 0 && bz[0] == '"' {
		if err := json.Unmarshal(bz, &s); err != nil {
			return sdkmath.Int{}, fmt.Errorf("%w: %v", ErrUnmarshal, err)
		}
	}
	if !isDecimalInteger(s) {
		return sdkmath.Int{}, fmt.Errorf("%w: %q is not a decimal integer", ErrInvalidAmount, s)
	}
	x, ok := sdkmath.NewIntFromString(s)
	if !ok {
		return sdkmath.Int{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return x, nil
}

func isDecimalInteger(s string) bool {
	s = strings.TrimPrefix(s, "-")
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Uint128SafeAdd adds two uint128 values, failing instead of wrapping when
// the result does not fit.
func Uint128SafeAdd(a, b sdkmath.Int) (sdkmath.Int, error) {
	if err := ValidateUint128(a); err != nil {
		return sdkmath.Int{}, err
	}
	if err := ValidateUint128(b); err != nil {
		return sdkmath.Int{}, err
	}
	res := a.Add(b)
	if res.BigInt().BitLen() > Uint128Bits {
		return sdkmath.Int{}, fmt.Errorf("%w: %s + %s", ErrUint128Overflow, a, b)
	}
	return res, nil
}

// Uint128SafeSub subtracts b from a, failing when the result would be negative.
func Uint128SafeSub(a, b sdkmath.Int) (sdkmath.Int, error) {
	if err := ValidateUint128(a); err != nil {
		return sdkmath.Int{}, err
	}
	if err := ValidateUint128(b); err != nil {
		return sdkmath.Int{}, err
	}
	if a.LT(b) {
		return sdkmath.Int{}, fmt.Errorf("%w: %s - %s underflows", ErrInvalidAmount, a, b)
	}
	return a.Sub(b), nil
}

// SafeNewCoin safely validates the coin created instead of panicking.
// Returns an error if the coin denomination or amount is invalid.
func SafeNewCoin(denom string, amount sdkmath.Int) (sdk.Coin, error) {
	coin := sdk.Coin{
		Denom:  denom,
		Amount: amount,
	}

	if err := coin.Validate(); err != nil {
		return sdk.Coin{}, err
	}

	return coin, nil
}

// MulRateCeil applies rate to amount rounding up, so that fees charged on
// small transfers never round down to zero.
// Ex.: MulRateCeil(15, 0.1) = 2
func MulRateCeil(amount sdkmath.Int, rate sdkmath.LegacyDec) sdkmath.Int {
	if rate.IsNil() || rate.IsZero() || amount.IsZero() {
		return sdkmath.ZeroInt()
	}
	return sdkmath.LegacyNewDecFromInt(amount).Mul(rate).Ceil().TruncateInt()
}
