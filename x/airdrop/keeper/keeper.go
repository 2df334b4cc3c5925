package keeper

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cosmossdk.io/collections"
	corestoretypes "cosmossdk.io/core/store"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"
	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/hashicorp/go-metrics"

	"github.com/babylonlabs-io/ftairdrop/x/airdrop/types"
)

// Keeper hosts the airdrop contract. It runs every entry point in a cached
// branch of the store and commits the branch only if the contract and all
// messages it returned succeeded.
type Keeper struct {
	storeService corestoretypes.KVStoreService
	messenger    types.Messenger

	contractAddr sdk.AccAddress
	store        StateStore
	contract     Contract
}

// NewKeeper creates a new airdrop Keeper deployed at contractAddr.
func NewKeeper(
	storeService corestoretypes.KVStoreService,
	contractAddr sdk.AccAddress,
	messenger types.Messenger,
	querier types.Querier,
) Keeper {
	if contractAddr.Empty() {
		panic("the airdrop contract address has not been set")
	}

	sb := collections.NewSchemaBuilder(storeService)
	store := NewStateStore(sb)
	if _, err := sb.Build(); err != nil {
		panic(err)
	}

	return Keeper{
		storeService: storeService,
		messenger:    messenger,
		contractAddr: contractAddr,
		store:        store,
		contract:     NewContract(store, querier),
	}
}

func (k Keeper) Logger(goCtx context.Context) log.Logger {
	ctx := sdk.UnwrapSDKContext(goCtx)
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// ContractAddress returns the address the contract is deployed at.
func (k Keeper) ContractAddress() sdk.AccAddress {
	return k.contractAddr
}

// GetState returns the contract State.
func (k Keeper) GetState(ctx context.Context) (types.State, error) {
	return k.store.Load(ctx)
}

// Instantiate runs the instantiate entry point once per deployment.
func (k Keeper) Instantiate(goCtx context.Context, sender sdk.AccAddress, msg types.InstantiateMsg) (*wasmvmtypes.Response, error) {
	exists, err := k.store.Exists(goCtx)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errorsmod.Wrapf(types.ErrAlreadyInstantiated, "contract %s", k.contractAddr)
	}

	return k.invoke(goCtx, types.MethodInstantiate, sender, func(ctx sdk.Context, env wasmvmtypes.Env, info wasmvmtypes.MessageInfo) (*wasmvmtypes.Response, error) {
		return k.contract.Instantiate(ctx, env, info, msg)
	})
}

// Execute runs the execute entry point.
func (k Keeper) Execute(goCtx context.Context, sender sdk.AccAddress, msg types.ExecuteMsg) (*wasmvmtypes.Response, error) {
	method := msg.Method()
	res, err := k.invoke(goCtx, method, sender, func(ctx sdk.Context, env wasmvmtypes.Env, info wasmvmtypes.MessageInfo) (*wasmvmtypes.Response, error) {
		return k.contract.Execute(ctx, env, info, msg)
	})
	if err != nil {
		return nil, err
	}

	telemetry.IncrCounterWithLabels(
		[]string{types.ModuleName, "execute"},
		1,
		[]metrics.Label{telemetry.NewLabel("method", method)},
	)
	return res, nil
}

// ExecuteRaw decodes a JSON execute message and runs it.
func (k Keeper) ExecuteRaw(goCtx context.Context, sender sdk.AccAddress, bz []byte) (*wasmvmtypes.Response, error) {
	var msg types.ExecuteMsg
	if err := json.Unmarshal(bz, &msg); err != nil {
		return nil, errorsmod.Wrapf(types.ErrInvalidInput, "failed to unmarshal execute message: %v", err)
	}
	return k.Execute(goCtx, sender, msg)
}

// Query runs the query entry point. Queries never modify state.
func (k Keeper) Query(goCtx context.Context, msg types.QueryMsg) ([]byte, error) {
	defer telemetry.ModuleMeasureSince(types.ModuleName, time.Now(), "query")
	return k.contract.Query(goCtx, msg)
}

// QueryRaw decodes a JSON query message and runs it.
func (k Keeper) QueryRaw(goCtx context.Context, bz []byte) ([]byte, error) {
	var msg types.QueryMsg
	if err := json.Unmarshal(bz, &msg); err != nil {
		return nil, errorsmod.Wrapf(types.ErrInvalidInput, "failed to unmarshal query message: %v", err)
	}
	return k.Query(goCtx, msg)
}

type entryPoint func(ctx sdk.Context, env wasmvmtypes.Env, info wasmvmtypes.MessageInfo) (*wasmvmtypes.Response, error)

func (k Keeper) invoke(goCtx context.Context, method string, sender sdk.AccAddress, fn entryPoint) (*wasmvmtypes.Response, error) {
	defer telemetry.ModuleMeasureSince(types.ModuleName, time.Now(), method)

	if err := sdk.VerifyAddressFormat(sender); err != nil {
		return nil, errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid sender: %v", err)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	cacheCtx, writeCache := ctx.CacheContext()

	info := wasmvmtypes.MessageInfo{Sender: sender.String()}
	res, err := fn(cacheCtx, k.env(cacheCtx), info)
	if err != nil {
		k.Logger(ctx).Debug("contract call rejected", "method", method, "sender", info.Sender, "err", err)
		return nil, err
	}

	for _, sub := range res.Messages {
		if err := k.messenger.DispatchMsg(cacheCtx, k.contractAddr, sub.Msg); err != nil {
			k.Logger(ctx).Debug("contract message failed", "method", method, "sender", info.Sender, "err", err)
			return nil, errorsmod.Wrapf(err, "failed to dispatch %s message", method)
		}
	}

	cacheCtx.EventManager().EmitEvent(k.contractEvent(res.Attributes))
	writeCache()

	k.Logger(ctx).Info("contract call executed", "method", method, "sender", info.Sender, "messages", len(res.Messages))
	return res, nil
}

func (k Keeper) env(ctx sdk.Context) wasmvmtypes.Env {
	return wasmvmtypes.Env{
		Block: wasmvmtypes.BlockInfo{
			Height:  uint64(ctx.BlockHeight()),
			ChainID: ctx.ChainID(),
		},
		Contract: wasmvmtypes.ContractInfo{
			Address: k.contractAddr.String(),
		},
	}
}

func (k Keeper) contractEvent(attrs []wasmvmtypes.EventAttribute) sdk.Event {
	event := sdk.NewEvent(
		types.EventTypeAirdrop,
		sdk.NewAttribute(types.AttributeKeyContractAddr, k.contractAddr.String()),
	)
	for _, attr := range attrs {
		event = event.AppendAttributes(sdk.NewAttribute(attr.Key, attr.Value))
	}
	return event
}
