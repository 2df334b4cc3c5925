package types

import (
	"fmt"
	"regexp"
	"strings"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	ft "github.com/babylonlabs-io/ftairdrop/types"
)

// MaxPrecision is the largest number of decimal places a token can declare.
const MaxPrecision = 20

var (
	symbolRegex  = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9.-]{2,127}$`)
	subunitRegex = regexp.MustCompile(`^[a-z][a-z0-9/:._]{0,50}$`)
)

// Feature is an optional capability of an issued token.
type Feature uint32

const (
	FeatureMinting Feature = iota
	FeatureBurning
	FeatureFreezing
	FeatureWhitelisting
)

func (f Feature) String() string {
	switch f {
	case FeatureMinting:
		return "minting"
	case FeatureBurning:
		return "burning"
	case FeatureFreezing:
		return "freezing"
	case FeatureWhitelisting:
		return "whitelisting"
	default:
		return fmt.Sprintf("feature(%d)", uint32(f))
	}
}

func (f Feature) Validate() error {
	if f > FeatureWhitelisting {
		return errorsmod.Wrapf(ErrInvalidInput, "unknown feature %d", uint32(f))
	}
	return nil
}

// Token is the definition of an issued fungible token.
type Token struct {
	Denom              string            `json:"denom"`
	Issuer             string            `json:"issuer"`
	Symbol             string            `json:"symbol"`
	Subunit            string            `json:"subunit"`
	Precision          uint32            `json:"precision"`
	Description        string            `json:"description,omitempty"`
	Features           []Feature         `json:"features,omitempty"`
	BurnRate           sdkmath.LegacyDec `json:"burn_rate"`
	SendCommissionRate sdkmath.LegacyDec `json:"send_commission_rate"`
}

// IsFeatureEnabled reports whether f was requested when the token was issued.
func (t Token) IsFeatureEnabled(f Feature) bool {
	for _, feature := range t.Features {
		if feature == f {
			return true
		}
	}
	return false
}

func (t Token) Validate() error {
	if _, err := sdk.AccAddressFromBech32(t.Issuer); err != nil {
		return errorsmod.Wrapf(ErrInvalidInput, "invalid issuer %q: %v", t.Issuer, err)
	}
	if err := ValidateSymbol(t.Symbol); err != nil {
		return err
	}
	if err := ValidateSubunit(t.Subunit); err != nil {
		return err
	}
	if t.Precision > MaxPrecision {
		return errorsmod.Wrapf(ErrInvalidInput, "precision %d exceeds %d", t.Precision, MaxPrecision)
	}
	for _, f := range t.Features {
		if err := f.Validate(); err != nil {
			return err
		}
	}
	if err := ValidateRate(t.BurnRate); err != nil {
		return errorsmod.Wrap(err, "burn rate")
	}
	if err := ValidateRate(t.SendCommissionRate); err != nil {
		return errorsmod.Wrap(err, "send commission rate")
	}
	issuer, _ := sdk.AccAddressFromBech32(t.Issuer)
	if expected := BuildDenom(t.Subunit, issuer); t.Denom != expected {
		return errorsmod.Wrapf(ErrInvalidInput, "denom %q does not match %q", t.Denom, expected)
	}
	return sdk.ValidateDenom(t.Denom)
}

// IssueSettings is the request to create a new token.
type IssueSettings struct {
	Issuer             sdk.AccAddress
	Symbol             string
	Subunit            string
	Precision          uint32
	Description        string
	InitialAmount      sdkmath.Int
	Features           []Feature
	BurnRate           sdkmath.LegacyDec
	SendCommissionRate sdkmath.LegacyDec
}

// BuildDenom derives the denom of a token from its subunit and issuer.
// The same subunit issued by two accounts yields two distinct denoms.
func BuildDenom(subunit string, issuer sdk.AccAddress) string {
	return strings.ToLower(fmt.Sprintf("%s-%s", subunit, issuer))
}

func ValidateSymbol(symbol string) error {
	if !symbolRegex.MatchString(symbol) {
		return errorsmod.Wrapf(ErrInvalidInput, "symbol must match %s, got %q", symbolRegex, symbol)
	}
	return nil
}

func ValidateSubunit(subunit string) error {
	if !subunitRegex.MatchString(subunit) {
		return errorsmod.Wrapf(ErrInvalidInput, "subunit must match %s, got %q", subunitRegex, subunit)
	}
	return nil
}

// ValidateRate checks that rate is within [0, 1].
func ValidateRate(rate sdkmath.LegacyDec) error {
	if rate.IsNil() {
		return errorsmod.Wrap(ErrInvalidRate, "nil rate")
	}
	if rate.IsNegative() || rate.GT(sdkmath.LegacyOneDec()) {
		return errorsmod.Wrapf(ErrInvalidRate, "%s is outside [0, 1]", rate)
	}
	return nil
}

// ValidateAmount checks amount is a valid, non-negative 128 bit value.
func ValidateAmount(amount sdkmath.Int) error {
	if err := ft.ValidateUint128(amount); err != nil {
		return errorsmod.Wrap(ErrInvalidInput, err.Error())
	}
	return nil
}
