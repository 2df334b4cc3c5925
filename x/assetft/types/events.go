package types

const (
	EventTypeIssue          = "assetft_issue"
	EventTypeMint           = "assetft_mint"
	EventTypeSendCommission = "assetft_send_commission"

	AttributeKeyDenom      = "denom"
	AttributeKeyIssuer     = "issuer"
	AttributeKeySender     = "sender"
	AttributeKeyAmount     = "amount"
	AttributeKeyCommission = "commission"
	AttributeKeyBurned     = "burned"
)
