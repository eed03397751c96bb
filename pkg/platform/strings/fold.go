// Package strings provides name normalization helpers.
package strings

import (
	"strings"
)

// Fold lowercases s, trims it and collapses inner runs of whitespace to a
// single space, so "  van  Dyke " and "VAN DYKE" compare equal.
func Fold(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// DedupeFold folds every value and drops empties and duplicates.
// Order of first occurrence is preserved.
func DedupeFold(values []string) []string {
	if len(values) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		folded := Fold(v)
		if folded == "" {
			continue
		}
		if _, ok := seen[folded]; ok {
			continue
		}
		seen[folded] = struct{}{}
		result = append(result, folded)
	}
	return result
}
