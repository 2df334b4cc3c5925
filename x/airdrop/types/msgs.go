package types

import (
	"encoding/json"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	ft "github.com/babylonlabs-io/ftairdrop/types"
)

// InstantiateMsg creates the token and the airdrop pool.
type InstantiateMsg struct {
	Symbol        string      `json:"symbol"`
	Subunit       string      `json:"subunit"`
	Precision     uint32      `json:"precision"`
	InitialAmount sdkmath.Int `json:"initial_amount"`
	AirdropAmount sdkmath.Int `json:"airdrop_amount"`
}

// ValidateBasic checks the amounts fit into 128 bits. Token parameters are
// validated by the asset module when the issue message is executed.
func (m InstantiateMsg) ValidateBasic() error {
	if err := ft.ValidateUint128(m.InitialAmount); err != nil {
		return errorsmod.Wrapf(ErrInvalidInput, "initial amount: %v", err)
	}
	if err := ft.ValidateUint128(m.AirdropAmount); err != nil {
		return errorsmod.Wrapf(ErrInvalidInput, "airdrop amount: %v", err)
	}
	return nil
}

// ExecuteMsg is the tagged union of state changing requests. Exactly one
// field is set.
type ExecuteMsg struct {
	MintForAirdrop *MintForAirdropMsg `json:"mint_for_airdrop,omitempty"`
	ReceiveAirdrop *struct{}          `json:"receive_airdrop,omitempty"`
}

type MintForAirdropMsg struct {
	Amount sdkmath.Int `json:"amount"`
}

// UnmarshalJSON accepts the amount both as a decimal string and as a plain
// JSON number.
func (m *MintForAirdropMsg) UnmarshalJSON(bz []byte) error {
	var raw struct {
		Amount json.RawMessage `json:"amount"`
	}
	if err := json.Unmarshal(bz, &raw); err != nil {
		return err
	}
	amount, err := ft.UnmarshalUint128JSON(raw.Amount)
	if err != nil {
		return errorsmod.Wrapf(ErrInvalidInput, "amount: %v", err)
	}
	m.Amount = amount
	return nil
}

func (m ExecuteMsg) ValidateBasic() error {
	switch {
	case m.MintForAirdrop != nil && m.ReceiveAirdrop != nil:
		return errorsmod.Wrap(ErrUnknownRequest, "more than one execute variant set")
	case m.MintForAirdrop != nil:
		if err := ft.ValidateUint128(m.MintForAirdrop.Amount); err != nil {
			return errorsmod.Wrapf(ErrInvalidInput, "amount: %v", err)
		}
		return nil
	case m.ReceiveAirdrop != nil:
		return nil
	default:
		return errorsmod.Wrap(ErrUnknownRequest, "unknown execute variant")
	}
}

// Method names the variant for logs and metrics. Messages that do not set
// exactly one variant are reported as MethodExecute.
func (m ExecuteMsg) Method() string {
	switch {
	case m.MintForAirdrop != nil && m.ReceiveAirdrop == nil:
		return MethodMintForAirdrop
	case m.ReceiveAirdrop != nil && m.MintForAirdrop == nil:
		return MethodReceiveAirdrop
	default:
		return MethodExecute
	}
}

// QueryMsg is the tagged union of read only requests. Exactly one field is set.
type QueryMsg struct {
	Token            *struct{} `json:"token,omitempty"`
	MintedForAirdrop *struct{} `json:"minted_for_airdrop,omitempty"`
	ContractInfo     *struct{} `json:"contract_info,omitempty"`
}

type AmountResponse struct {
	Amount sdkmath.Int `json:"amount"`
}
