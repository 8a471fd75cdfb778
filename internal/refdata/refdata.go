// Package refdata holds the static read-only catalogs the planner is seeded
// with: cities, attractions and hotels, plus the fixed route-lookup tables
// used to suggest attractions and hotels "along the route" of a trip.
//
// Nothing in this package is user-mutable and nothing touches the store.
// The route heuristics are lookup tables keyed on origin/destination
// substrings, NOT a routing algorithm; they are product data and must stay
// exactly as defined here.
package refdata

import "strings"

// containsAny reports whether s contains at least one of the substrings,
// case-insensitively. Route matching is substring-based so "Bengaluru City"
// still hits the Bangalore corridor.
func containsAny(s string, subs []string) bool {
	s = strings.ToLower(s)
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
