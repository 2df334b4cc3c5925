package types

import (
	errorsmod "cosmossdk.io/errors"
)

// x/airdrop module sentinel errors
var (
	ErrStorage             = errorsmod.Register(ModuleName, 1100, "storage failure")
	ErrUnauthorized        = errorsmod.Register(ModuleName, 1101, "unauthorized")
	ErrInvalidInput        = errorsmod.Register(ModuleName, 1102, "invalid input")
	ErrInsufficientMinted  = errorsmod.Register(ModuleName, 1103, "insufficient minted balance")
	ErrStateNotFound       = errorsmod.Register(ModuleName, 1104, "state not found")
	ErrOverflow            = errorsmod.Register(ModuleName, 1105, "amount overflow")
	ErrAlreadyInstantiated = errorsmod.Register(ModuleName, 1106, "contract already instantiated")
	ErrUnknownRequest      = errorsmod.Register(ModuleName, 1107, "unknown request")
)
