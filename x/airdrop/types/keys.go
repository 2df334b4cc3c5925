package types

import "cosmossdk.io/collections"

const (
	// ModuleName defines the module name
	ModuleName = "airdrop"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// ContractName and ContractVersion identify the deployed contract code.
	ContractName    = "crates.io:ft"
	ContractVersion = "0.1.0"
)

var (
	StateKey        = collections.NewPrefix("state")         // key for the singleton State
	ContractInfoKey = collections.NewPrefix("contract_info") // key for the ContractInfo
)
