package tabular

import "strings"

// RoleMap decides which column should seed the chart when the user has
// not picked one. It is an explicit name-fragment table rather than a
// regex buried in the view: callers can extend it for datasets with
// different header vocabularies.
type RoleMap struct {
	fragments []string
}

// DefaultRoles covers the header names the synced planillas actually
// use (zone, status, responsible party, region, category).
func DefaultRoles() RoleMap {
	return RoleMap{fragments: []string{
		"zona",
		"estado",
		"status",
		"responsable",
		"region",
		"categoria",
		"categoría",
	}}
}

// WithFragments returns a RoleMap matching the given lowercase header
// fragments, in priority order.
func WithFragments(fragments ...string) RoleMap {
	return RoleMap{fragments: fragments}
}

// Matches reports whether a header name looks like a preferred chart
// dimension.
func (r RoleMap) Matches(header string) bool {
	h := strings.ToLower(header)
	for _, f := range r.fragments {
		if strings.Contains(h, f) {
			return true
		}
	}
	return false
}
