package types_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/babylonlabs-io/ftairdrop/types"
)

var errEmptyName = errors.New("empty name")

type namedEntry struct {
	name string
}

func (e namedEntry) Validate() error {
	if e.name == "" {
		return errEmptyName
	}
	return nil
}

func TestValidateEntries(t *testing.T) {
	key := func(e namedEntry) string { return e.name }

	require.NoError(t, types.ValidateEntries([]namedEntry{}, key))
	require.NoError(t, types.ValidateEntries([]namedEntry{{"a"}, {"b"}}, key))

	err := types.ValidateEntries([]namedEntry{{"a"}, {"b"}, {"a"}}, key)
	require.ErrorIs(t, err, types.ErrDuplicateEntry)
	require.Contains(t, err.Error(), "positions 0 and 2")

	require.ErrorIs(t, types.ValidateEntries([]namedEntry{{"a"}, {""}}, key), errEmptyName)
}
