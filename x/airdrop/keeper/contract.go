package keeper

import (
	"context"
	"encoding/json"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"

	"github.com/babylonlabs-io/ftairdrop/wasmbinding/bindings"
	"github.com/babylonlabs-io/ftairdrop/x/airdrop/types"
	assetfttypes "github.com/babylonlabs-io/ftairdrop/x/assetft/types"
)

const (
	issueBurnRate           = "0"
	issueSendCommissionRate = "0.1"
)

// Contract is the airdrop state machine. Every entry point loads the State,
// derives the next one, saves it and returns the messages the host must
// execute together with the state change.
type Contract struct {
	store   StateStore
	querier types.Querier
}

func NewContract(store StateStore, querier types.Querier) Contract {
	return Contract{store: store, querier: querier}
}

// Instantiate issues the token and creates the State.
func (c Contract) Instantiate(
	ctx context.Context,
	env wasmvmtypes.Env,
	info wasmvmtypes.MessageInfo,
	msg types.InstantiateMsg,
) (*wasmvmtypes.Response, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	issueMsg, err := customMsg(bindings.AssetFTMsg{
		Issue: &bindings.IssueMsg{
			Symbol:        msg.Symbol,
			Subunit:       msg.Subunit,
			Precision:     msg.Precision,
			InitialAmount: msg.InitialAmount,
			// the contract keeps the right to mint more supply
			Features:           []assetfttypes.Feature{assetfttypes.FeatureMinting},
			BurnRate:           issueBurnRate,
			SendCommissionRate: issueSendCommissionRate,
		},
	})
	if err != nil {
		return nil, err
	}

	state := types.NewState(info.Sender, msg.Subunit, env.Contract.Address, msg.InitialAmount, msg.AirdropAmount)

	if err := c.store.SaveContractInfo(ctx, types.ContractInfo{
		Contract: types.ContractName,
		Version:  types.ContractVersion,
	}); err != nil {
		return nil, err
	}
	if err := c.store.Save(ctx, state); err != nil {
		return nil, err
	}

	return &wasmvmtypes.Response{
		Messages: []wasmvmtypes.SubMsg{subMsg(issueMsg)},
		Attributes: []wasmvmtypes.EventAttribute{
			{Key: types.AttributeKeyOwner, Value: state.Owner},
			{Key: types.AttributeKeyDenom, Value: state.Denom},
		},
	}, nil
}

// Execute dispatches a state changing request.
func (c Contract) Execute(
	ctx context.Context,
	env wasmvmtypes.Env,
	info wasmvmtypes.MessageInfo,
	msg types.ExecuteMsg,
) (*wasmvmtypes.Response, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	switch {
	case msg.MintForAirdrop != nil:
		return c.mintForAirdrop(ctx, info, msg.MintForAirdrop.Amount)
	case msg.ReceiveAirdrop != nil:
		return c.receiveAirdrop(ctx, info)
	default:
		return nil, errorsmod.Wrap(types.ErrUnknownRequest, "unknown execute variant")
	}
}

func (c Contract) mintForAirdrop(
	ctx context.Context,
	info wasmvmtypes.MessageInfo,
	amount sdkmath.Int,
) (*wasmvmtypes.Response, error) {
	state, err := c.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	state, err = state.MintForAirdrop(info.Sender, amount)
	if err != nil {
		return nil, err
	}

	mintMsg, err := customMsg(bindings.AssetFTMsg{
		Mint: &bindings.MintMsg{
			Coin: wasmvmtypes.Coin{Denom: state.Denom, Amount: amount.String()},
		},
	})
	if err != nil {
		return nil, err
	}

	if err := c.store.Save(ctx, state); err != nil {
		return nil, err
	}

	return &wasmvmtypes.Response{
		Messages: []wasmvmtypes.SubMsg{subMsg(mintMsg)},
		Attributes: []wasmvmtypes.EventAttribute{
			{Key: types.AttributeKeyMethod, Value: types.MethodMintForAirdrop},
			{Key: types.AttributeKeyDenom, Value: state.Denom},
			{Key: types.AttributeKeyAmount, Value: amount.String()},
		},
	}, nil
}

func (c Contract) receiveAirdrop(ctx context.Context, info wasmvmtypes.MessageInfo) (*wasmvmtypes.Response, error) {
	state, err := c.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	state, err = state.ReceiveAirdrop()
	if err != nil {
		return nil, err
	}

	sendMsg := wasmvmtypes.CosmosMsg{
		Bank: &wasmvmtypes.BankMsg{
			Send: &wasmvmtypes.SendMsg{
				ToAddress: info.Sender,
				Amount:    []wasmvmtypes.Coin{{Denom: state.Denom, Amount: state.AirdropAmount.String()}},
			},
		},
	}

	if err := c.store.Save(ctx, state); err != nil {
		return nil, err
	}

	return &wasmvmtypes.Response{
		Messages: []wasmvmtypes.SubMsg{subMsg(sendMsg)},
		Attributes: []wasmvmtypes.EventAttribute{
			{Key: types.AttributeKeyMethod, Value: types.MethodReceiveAirdrop},
			{Key: types.AttributeKeyDenom, Value: state.Denom},
			{Key: types.AttributeKeyAmount, Value: state.AirdropAmount.String()},
		},
	}, nil
}

// Query answers a read only request with its JSON encoded response.
func (c Contract) Query(ctx context.Context, msg types.QueryMsg) ([]byte, error) {
	switch {
	case msg.Token != nil:
		return c.token(ctx)
	case msg.MintedForAirdrop != nil:
		state, err := c.store.Load(ctx)
		if err != nil {
			return nil, err
		}
		return json.Marshal(types.AmountResponse{Amount: state.MintedForAirdrop})
	case msg.ContractInfo != nil:
		info, err := c.store.LoadContractInfo(ctx)
		if err != nil {
			return nil, err
		}
		return json.Marshal(info)
	default:
		return nil, errorsmod.Wrap(types.ErrUnknownRequest, "unknown query variant")
	}
}

// token forwards the token metadata query of the contract denom to the host.
func (c Contract) token(ctx context.Context) ([]byte, error) {
	state, err := c.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	request, err := json.Marshal(bindings.AssetFTQuery{
		Token: &bindings.TokenQuery{Denom: state.Denom},
	})
	if err != nil {
		return nil, err
	}

	bz, err := c.querier.QueryCustom(ctx, request)
	if err != nil {
		return nil, errorsmod.Wrapf(err, "token query for %s", state.Denom)
	}

	var res bindings.TokenResponse
	if err := json.Unmarshal(bz, &res); err != nil {
		return nil, errorsmod.Wrap(err, "failed to unmarshal token response")
	}
	return json.Marshal(res)
}

func customMsg(msg bindings.AssetFTMsg) (wasmvmtypes.CosmosMsg, error) {
	bz, err := json.Marshal(msg)
	if err != nil {
		return wasmvmtypes.CosmosMsg{}, errorsmod.Wrap(err, "failed marshaling")
	}
	return wasmvmtypes.CosmosMsg{Custom: bz}, nil
}

func subMsg(msg wasmvmtypes.CosmosMsg) wasmvmtypes.SubMsg {
	return wasmvmtypes.SubMsg{Msg: msg, ReplyOn: wasmvmtypes.ReplyNever}
}
