package types

import (
	"context"
	"encoding/json"

	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Messenger executes the messages a contract returns, on behalf of the
// contract address.
type Messenger interface {
	DispatchMsg(ctx context.Context, contractAddr sdk.AccAddress, msg wasmvmtypes.CosmosMsg) error
}

// Querier answers the custom queries a contract sends to the host.
type Querier interface {
	QueryCustom(ctx context.Context, request json.RawMessage) ([]byte, error)
}
