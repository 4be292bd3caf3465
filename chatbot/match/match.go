// Package match provides the shared matching primitives the resolvers build
// their fallback tiers from: substring containment, partial-ratio fuzzy key
// matching and full-table scans.
package match

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/skydesk/skydesk/store"
)

// FuzzyThreshold is the minimum partial-ratio score (exclusive) for a key
// match to be accepted.
const FuzzyThreshold = 70

// ContainsFold reports whether needle occurs in haystack, case-insensitively.
func ContainsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// BestKey scores every candidate key against the query with a partial-ratio
// similarity (0-100) and returns the best one. ok is false when the best
// score does not clear FuzzyThreshold. Candidate order breaks score ties.
func BestKey(query string, keys []string) (best string, score int, ok bool) {
	for _, key := range keys {
		if s := fuzzy.PartialRatio(query, key); s > score {
			best, score = key, s
		}
	}
	if score <= FuzzyThreshold {
		return "", score, false
	}
	return best, score, true
}

// RowContains reports whether any column of the row contains the query as a
// case-insensitive substring of its stringified value.
func RowContains(row store.Row, query string) bool {
	for _, v := range row {
		if ContainsFold(v.Text(), query) {
			return true
		}
	}
	return false
}

// FilterRows returns the rows of the table matching RowContains, preserving
// table order.
func FilterRows(table *store.Table, query string) []store.Row {
	if table == nil {
		return nil
	}
	var matched []store.Row
	for _, row := range table.Rows {
		if RowContains(row, query) {
			matched = append(matched, row)
		}
	}
	return matched
}

// ScanTables is the full-scan fallback: it collects every matching row across
// all named tables, visiting tables in the given order.
func ScanTables(tables map[string]*store.Table, order []string, query string) []store.Row {
	var found []store.Row
	for _, name := range order {
		found = append(found, FilterRows(tables[name], query)...)
	}
	return found
}
