// Package cli provides terminal output, error formatting, and input
// helpers for locman.
package cli

import (
	"strings"
)

// MatchRef finds a unique entity reference from a prefix.
// An exact match always wins; otherwise the prefix must select exactly one
// reference. Matching is case-insensitive.
func MatchRef(prefix string, refs []string) (string, error) {
	lowered := strings.ToLower(prefix)

	// First check for an exact match
	for _, ref := range refs {
		if strings.ToLower(ref) == lowered {
			return ref, nil
		}
	}

	// Check for prefix matches
	var matches []string
	for _, ref := range refs {
		if strings.HasPrefix(strings.ToLower(ref), lowered) {
			matches = append(matches, ref)
		}
	}

	switch len(matches) {
	case 0:
		return "", &NotFoundError{Type: "entity", Name: prefix}
	case 1:
		return matches[0], nil
	default:
		return "", &AmbiguousRefError{Ref: prefix, Matches: matches}
	}
}
