package types

import "fmt"

type Validator interface {
	Validate() error
}

// ValidateEntries validates every entry and rejects entries sharing the key
// returned by keyFunc.
func ValidateEntries[T Validator, K comparable](entries []T, keyFunc func(T) K) error {
	seen := make(map[K]int, len(entries))
	for i, entry := range entries {
		key := keyFunc(entry)
		if prev, ok := seen[key]; ok {
			return fmt.Errorf("%w: %v at positions %d and %d", ErrDuplicateEntry, key, prev, i)
		}
		seen[key] = i

		if err := entry.Validate(); err != nil {
			return fmt.Errorf("entry %v: %w", key, err)
		}
	}
	return nil
}
