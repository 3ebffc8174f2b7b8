package inmem

import (
	"sort"
	"strings"
)

// matchesSearch reports whether any field contains the term,
// case-insensitively. Mirrors the ILIKE filters of the SQL repositories.
func matchesSearch(term string, fields ...string) bool {
	term = strings.ToLower(term)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// sortByID orders a slice by the ID of its elements, matching the stable
// ordering the SQL repositories get from ORDER BY id.
func sortByID[T any](items []T, id func(T) int64) {
	sort.Slice(items, func(i, j int) bool { return id(items[i]) < id(items[j]) })
}
