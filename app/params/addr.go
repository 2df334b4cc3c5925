package params

import (
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	airdroptypes "github.com/babylonlabs-io/ftairdrop/x/airdrop/types"
	assetfttypes "github.com/babylonlabs-io/ftairdrop/x/assetft/types"
)

const govModuleName = "gov"

var (
	AccGov     = authtypes.NewModuleAddress(govModuleName)
	AccAssetFT = authtypes.NewModuleAddress(assetfttypes.ModuleName)
	// AccAirdrop is the address the airdrop contract is deployed at. It issues
	// the token and holds the airdrop pool.
	AccAirdrop = authtypes.NewModuleAddress(airdroptypes.ModuleName)
)

// GetMaccPerms returns the module account permissions of the host.
func GetMaccPerms() map[string][]string {
	return map[string][]string{
		assetfttypes.ModuleName: {authtypes.Minter, authtypes.Burner},
		airdroptypes.ModuleName: nil,
	}
}
