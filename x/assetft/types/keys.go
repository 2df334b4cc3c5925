package types

import "cosmossdk.io/collections"

const (
	// ModuleName defines the module name
	ModuleName = "assetft"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName
)

var (
	TokenKeyPrefix = collections.NewPrefix(1) // key prefix for (denom) => Token
)
