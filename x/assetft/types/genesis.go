package types

import (
	"errors"

	errorsmod "cosmossdk.io/errors"

	ft "github.com/babylonlabs-io/ftairdrop/types"
)

type GenesisState struct {
	Tokens []Token `json:"tokens"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Tokens: []Token{},
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	err := ft.ValidateEntries(gs.Tokens, func(t Token) string { return t.Denom })
	if errors.Is(err, ft.ErrDuplicateEntry) {
		return errorsmod.Wrap(ErrTokenExists, err.Error())
	}
	return err
}
