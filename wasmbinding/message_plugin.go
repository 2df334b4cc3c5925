package wasmbinding

import (
	"context"
	"encoding/json"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	ft "github.com/babylonlabs-io/ftairdrop/types"
	"github.com/babylonlabs-io/ftairdrop/wasmbinding/bindings"
	airdroptypes "github.com/babylonlabs-io/ftairdrop/x/airdrop/types"
	assetfttypes "github.com/babylonlabs-io/ftairdrop/x/assetft/types"
)

var _ airdroptypes.Messenger = (*CustomMessenger)(nil)

// CustomMessenger executes the messages returned by contracts: custom
// assetft messages and bank sends.
type CustomMessenger struct {
	assetftKeeper AssetFTKeeper
}

// NewCustomMessenger returns a reference to a new CustomMessenger.
func NewCustomMessenger(k AssetFTKeeper) *CustomMessenger {
	return &CustomMessenger{assetftKeeper: k}
}

func (m *CustomMessenger) DispatchMsg(ctx context.Context, contractAddr sdk.AccAddress, msg wasmvmtypes.CosmosMsg) error {
	switch {
	case msg.Custom != nil:
		return m.dispatchCustom(ctx, contractAddr, msg.Custom)
	case msg.Bank != nil && msg.Bank.Send != nil:
		return m.send(ctx, contractAddr, msg.Bank.Send)
	default:
		return wasmvmtypes.UnsupportedRequest{Kind: "unknown message variant"}
	}
}

func (m *CustomMessenger) dispatchCustom(ctx context.Context, contractAddr sdk.AccAddress, raw json.RawMessage) error {
	var contractMsg bindings.AssetFTMsg
	if err := json.Unmarshal(raw, &contractMsg); err != nil {
		return errorsmod.Wrap(err, "failed to unmarshal custom message")
	}

	switch {
	case contractMsg.Issue != nil:
		return m.issue(ctx, contractAddr, contractMsg.Issue)
	case contractMsg.Mint != nil:
		coin, err := toSdkCoin(contractMsg.Mint.Coin)
		if err != nil {
			return err
		}
		return m.assetftKeeper.Mint(ctx, contractAddr, coin)
	default:
		return wasmvmtypes.UnsupportedRequest{Kind: "unknown assetft message variant"}
	}
}

func (m *CustomMessenger) issue(ctx context.Context, contractAddr sdk.AccAddress, msg *bindings.IssueMsg) error {
	burnRate, err := parseRate(msg.BurnRate)
	if err != nil {
		return errorsmod.Wrap(err, "burn rate")
	}
	commissionRate, err := parseRate(msg.SendCommissionRate)
	if err != nil {
		return errorsmod.Wrap(err, "send commission rate")
	}

	_, err = m.assetftKeeper.Issue(ctx, assetfttypes.IssueSettings{
		Issuer:             contractAddr,
		Symbol:             msg.Symbol,
		Subunit:            msg.Subunit,
		Precision:          msg.Precision,
		Description:        msg.Description,
		InitialAmount:      msg.InitialAmount,
		Features:           msg.Features,
		BurnRate:           burnRate,
		SendCommissionRate: commissionRate,
	})
	return err
}

func (m *CustomMessenger) send(ctx context.Context, contractAddr sdk.AccAddress, msg *wasmvmtypes.SendMsg) error {
	to, err := sdk.AccAddressFromBech32(msg.ToAddress)
	if err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "recipient %q: %v", msg.ToAddress, err)
	}

	coins := make(sdk.Coins, 0, len(msg.Amount))
	for _, c := range msg.Amount {
		coin, err := toSdkCoin(c)
		if err != nil {
			return err
		}
		coins = append(coins, coin)
	}
	coins = coins.Sort()
	if err := coins.Validate(); err != nil {
		return errorsmod.Wrap(sdkerrors.ErrInvalidCoins, err.Error())
	}

	return m.assetftKeeper.Send(ctx, contractAddr, to, coins)
}

func toSdkCoin(c wasmvmtypes.Coin) (sdk.Coin, error) {
	amount, ok := sdkmath.NewIntFromString(c.Amount)
	if !ok {
		return sdk.Coin{}, errorsmod.Wrapf(sdkerrors.ErrInvalidCoins, "invalid amount %q", c.Amount)
	}
	coin, err := ft.SafeNewCoin(c.Denom, amount)
	if err != nil {
		return sdk.Coin{}, errorsmod.Wrap(sdkerrors.ErrInvalidCoins, err.Error())
	}
	return coin, nil
}

func parseRate(s string) (sdkmath.LegacyDec, error) {
	if s == "" {
		return sdkmath.LegacyZeroDec(), nil
	}
	return sdkmath.LegacyNewDecFromStr(s)
}
