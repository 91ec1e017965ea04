// Package maputil provides helpers for deterministic map iteration.
package maputil

import "slices"

// SortedKeys returns the keys of m in ascending order. The result is never nil.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
