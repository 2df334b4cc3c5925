package types

import "errors"

type GenesisState struct {
	State        *State        `json:"state,omitempty"`
	ContractInfo *ContractInfo `json:"contract_info,omitempty"`
}

// DefaultGenesis returns the default genesis state: the contract is not
// instantiated yet.
func DefaultGenesis() *GenesisState {
	return &GenesisState{}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	if gs.State == nil {
		if gs.ContractInfo != nil {
			return errors.New("contract info without state")
		}
		return nil
	}
	if gs.ContractInfo == nil {
		return errors.New("state without contract info")
	}
	return gs.State.Validate()
}
