package bindings

import (
	sdkmath "cosmossdk.io/math"
	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"

	assetfttypes "github.com/babylonlabs-io/ftairdrop/x/assetft/types"
)

// AssetFTMsg is the custom message contracts send to the assetft module.
// Exactly one field is set.
type AssetFTMsg struct {
	Issue *IssueMsg `json:"issue,omitempty"`
	Mint  *MintMsg  `json:"mint,omitempty"`
}

type IssueMsg struct {
	Symbol             string                 `json:"symbol"`
	Subunit            string                 `json:"subunit"`
	Precision          uint32                 `json:"precision"`
	InitialAmount      sdkmath.Int            `json:"initial_amount"`
	Description        string                 `json:"description,omitempty"`
	Features           []assetfttypes.Feature `json:"features,omitempty"`
	BurnRate           string                 `json:"burn_rate,omitempty"`
	SendCommissionRate string                 `json:"send_commission_rate,omitempty"`
}

type MintMsg struct {
	Coin wasmvmtypes.Coin `json:"coin"`
}

// AssetFTQuery is the custom query contracts send to the assetft module.
type AssetFTQuery struct {
	Token *TokenQuery `json:"token,omitempty"`
}

type TokenQuery struct {
	Denom string `json:"denom"`
}

type TokenResponse struct {
	Token assetfttypes.Token `json:"token"`
}
