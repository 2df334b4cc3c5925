package wasmbinding

import (
	"context"
	"encoding/json"

	errorsmod "cosmossdk.io/errors"
	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/babylonlabs-io/ftairdrop/wasmbinding/bindings"
	airdroptypes "github.com/babylonlabs-io/ftairdrop/x/airdrop/types"
	assetfttypes "github.com/babylonlabs-io/ftairdrop/x/assetft/types"
)

// AssetFTKeeper is the part of the assetft keeper exposed to contracts.
type AssetFTKeeper interface {
	Issue(ctx context.Context, settings assetfttypes.IssueSettings) (string, error)
	Mint(ctx context.Context, sender sdk.AccAddress, coin sdk.Coin) error
	Send(ctx context.Context, from, to sdk.AccAddress, coins sdk.Coins) error
	GetToken(ctx context.Context, denom string) (assetfttypes.Token, error)
}

var _ airdroptypes.Querier = (*QueryPlugin)(nil)

type QueryPlugin struct {
	assetftKeeper AssetFTKeeper
}

// NewQueryPlugin returns a reference to a new QueryPlugin.
func NewQueryPlugin(k AssetFTKeeper) *QueryPlugin {
	return &QueryPlugin{assetftKeeper: k}
}

// QueryCustom dispatches custom assetft bindings queries.
func (qp *QueryPlugin) QueryCustom(ctx context.Context, request json.RawMessage) ([]byte, error) {
	var contractQuery bindings.AssetFTQuery
	if err := json.Unmarshal(request, &contractQuery); err != nil {
		return nil, errorsmod.Wrap(err, "failed to unmarshal request")
	}

	switch {
	case contractQuery.Token != nil:
		token, err := qp.assetftKeeper.GetToken(ctx, contractQuery.Token.Denom)
		if err != nil {
			return nil, err
		}

		bz, err := json.Marshal(bindings.TokenResponse{Token: token})
		if err != nil {
			return nil, errorsmod.Wrap(err, "failed marshaling")
		}

		return bz, nil
	default:
		return nil, wasmvmtypes.UnsupportedRequest{Kind: "unknown assetft query variant"}
	}
}
