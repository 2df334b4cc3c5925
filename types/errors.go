package types

import "errors"

var (
	ErrUnmarshal       = errors.New("unmarshal error")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrUint128Overflow = errors.New("value does not fit into 128 bits")
	ErrDuplicateEntry  = errors.New("duplicate entry")
)
