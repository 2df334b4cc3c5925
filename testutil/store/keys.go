package store

import (
	"bytes"
	"sort"
	"testing"

	"cosmossdk.io/collections"
)

// CheckPrefixCollisions fails the test if a store key is empty, repeated, or
// a prefix of another key. Any of those lets two collections read each
// other's entries.
func CheckPrefixCollisions(t *testing.T, keys map[string]collections.Prefix) {
	t.Helper()

	names := make([]string, 0, len(keys))
	for name, key := range keys {
		if len(key.Bytes()) == 0 {
			t.Fatalf("key %s has empty prefix", name)
		}
		names = append(names, name)
	}
	sort.Strings(names)

	for i, name1 := range names {
		for _, name2 := range names[i+1:] {
			key1, key2 := keys[name1].Bytes(), keys[name2].Bytes()
			if bytes.HasPrefix(key1, key2) || bytes.HasPrefix(key2, key1) {
				t.Errorf("KEY COLLISION: %s (0x%x) and %s (0x%x)", name1, key1, name2, key2)
			}
		}
	}
}
