package types

const (
	// EventTypeAirdrop carries the attributes returned by the contract
	EventTypeAirdrop = "airdrop"

	AttributeKeyContractAddr = "_contract_address"
	AttributeKeyMethod       = "method"
	AttributeKeyOwner        = "owner"
	AttributeKeyDenom        = "denom"
	AttributeKeyAmount       = "amount"

	MethodInstantiate    = "instantiate"
	MethodExecute        = "execute"
	MethodMintForAirdrop = "mint_for_airdrop"
	MethodReceiveAirdrop = "receive_airdrop"
)
