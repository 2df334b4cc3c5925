package types_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/babylonlabs-io/ftairdrop/types"
)

type sample struct {
	Name   string      `json:"name"`
	Amount sdkmath.Int `json:"amount"`
}

func TestJSONValue(t *testing.T) {
	c := types.JSONValue[sample]("sample")
	require.Equal(t, "json/sample", c.ValueType())

	v := sample{Name: "a", Amount: sdkmath.NewInt(1000)}
	bz, err := c.Encode(v)
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"a","amount":"1000"}`, string(bz))
	require.Equal(t, string(bz), c.Stringify(v))

	_, err = c.Decode([]byte("{"))
	require.ErrorIs(t, err, types.ErrUnmarshal)
}
