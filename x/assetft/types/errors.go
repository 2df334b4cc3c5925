package types

import (
	errorsmod "cosmossdk.io/errors"
)

// x/assetft module sentinel errors
var (
	ErrInvalidInput    = errorsmod.Register(ModuleName, 1100, "invalid input")
	ErrTokenExists     = errorsmod.Register(ModuleName, 1101, "token already exists")
	ErrTokenNotFound   = errorsmod.Register(ModuleName, 1102, "token not found")
	ErrFeatureDisabled = errorsmod.Register(ModuleName, 1103, "feature disabled")
	ErrUnauthorized    = errorsmod.Register(ModuleName, 1104, "unauthorized")
	ErrInvalidRate     = errorsmod.Register(ModuleName, 1105, "invalid rate")
)
