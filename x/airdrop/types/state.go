package types

import (
	"errors"
	"fmt"
	"strings"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	ft "github.com/babylonlabs-io/ftairdrop/types"
)

// State is the singleton record of a contract deployment.
type State struct {
	Owner            string      `json:"owner"`
	Denom            string      `json:"denom"`
	AirdropAmount    sdkmath.Int `json:"airdrop_amount"`
	MintedForAirdrop sdkmath.Int `json:"minted_for_airdrop"`
}

// ContractInfo identifies the code a deployment runs.
type ContractInfo struct {
	Contract string `json:"contract"`
	Version  string `json:"version"`
}

// Denom derives the token denom of a deployment. The contract address makes
// it unique even when two deployments use the same subunit.
func Denom(subunit, contractAddr string) string {
	return strings.ToLower(fmt.Sprintf("%s-%s", subunit, contractAddr))
}

// NewState returns the state of a freshly instantiated contract.
func NewState(owner, subunit, contractAddr string, initialAmount, airdropAmount sdkmath.Int) State {
	return State{
		Owner:            owner,
		Denom:            Denom(subunit, contractAddr),
		AirdropAmount:    airdropAmount,
		MintedForAirdrop: initialAmount,
	}
}

func (s State) Validate() error {
	if s.Owner == "" {
		return errorsmod.Wrap(ErrInvalidInput, "empty owner")
	}
	if err := sdk.ValidateDenom(s.Denom); err != nil {
		return errorsmod.Wrap(ErrInvalidInput, err.Error())
	}
	if err := ft.ValidateUint128(s.AirdropAmount); err != nil {
		return errorsmod.Wrapf(ErrInvalidInput, "airdrop amount: %v", err)
	}
	if err := ft.ValidateUint128(s.MintedForAirdrop); err != nil {
		return errorsmod.Wrapf(ErrInvalidInput, "minted for airdrop: %v", err)
	}
	return nil
}

// MintForAirdrop returns the state after sender minted amount into the
// airdrop pool. Only the owner may mint.
func (s State) MintForAirdrop(sender string, amount sdkmath.Int) (State, error) {
	if sender != s.Owner {
		return s, errorsmod.Wrapf(ErrUnauthorized, "%s is not the owner", sender)
	}

	minted, err := ft.Uint128SafeAdd(s.MintedForAirdrop, amount)
	switch {
	case errors.Is(err, ft.ErrUint128Overflow):
		return s, errorsmod.Wrap(ErrOverflow, err.Error())
	case err != nil:
		return s, errorsmod.Wrap(ErrInvalidInput, err.Error())
	}

	s.MintedForAirdrop = minted
	return s, nil
}

// ReceiveAirdrop returns the state after one allotment of AirdropAmount left
// the pool. Claims are not tracked per caller.
func (s State) ReceiveAirdrop() (State, error) {
	if s.MintedForAirdrop.LT(s.AirdropAmount) {
		return s, errorsmod.Wrapf(ErrInsufficientMinted, "minted for airdrop %s is less than airdrop amount %s",
			s.MintedForAirdrop, s.AirdropAmount)
	}

	remaining, err := ft.Uint128SafeSub(s.MintedForAirdrop, s.AirdropAmount)
	if err != nil {
		return s, errorsmod.Wrap(ErrInvalidInput, err.Error())
	}
	s.MintedForAirdrop = remaining
	return s, nil
}
