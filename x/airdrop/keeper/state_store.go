package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"

	ft "github.com/babylonlabs-io/ftairdrop/types"
	"github.com/babylonlabs-io/ftairdrop/x/airdrop/types"
)

// StateStore is the typed view over the storage slot of the contract State.
type StateStore struct {
	state        collections.Item[types.State]
	contractInfo collections.Item[types.ContractInfo]
}

func NewStateStore(sb *collections.SchemaBuilder) StateStore {
	return StateStore{
		state: collections.NewItem(
			sb,
			types.StateKey,
			"state",
			ft.JSONValue[types.State]("state"),
		),
		contractInfo: collections.NewItem(
			sb,
			types.ContractInfoKey,
			"contract_info",
			ft.JSONValue[types.ContractInfo]("contract_info"),
		),
	}
}

// Load returns the State, or ErrStateNotFound if the contract was never
// instantiated.
func (s StateStore) Load(ctx context.Context) (types.State, error) {
	state, err := s.state.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.State{}, types.ErrStateNotFound
		}
		return types.State{}, errorsmod.Wrap(types.ErrStorage, err.Error())
	}
	return state, nil
}

// Save persists the whole State.
func (s StateStore) Save(ctx context.Context, state types.State) error {
	if err := s.state.Set(ctx, state); err != nil {
		return errorsmod.Wrap(types.ErrStorage, err.Error())
	}
	return nil
}

// Exists reports whether a State has been saved.
func (s StateStore) Exists(ctx context.Context) (bool, error) {
	exists, err := s.state.Has(ctx)
	if err != nil {
		return false, errorsmod.Wrap(types.ErrStorage, err.Error())
	}
	return exists, nil
}

func (s StateStore) LoadContractInfo(ctx context.Context) (types.ContractInfo, error) {
	info, err := s.contractInfo.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.ContractInfo{}, types.ErrStateNotFound
		}
		return types.ContractInfo{}, errorsmod.Wrap(types.ErrStorage, err.Error())
	}
	return info, nil
}

func (s StateStore) SaveContractInfo(ctx context.Context, info types.ContractInfo) error {
	if err := s.contractInfo.Set(ctx, info); err != nil {
		return errorsmod.Wrap(types.ErrStorage, err.Error())
	}
	return nil
}
