package model

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	// ErrInvalidRef is returned when an entity reference cannot be parsed.
	ErrInvalidRef = errors.New("invalid entity reference")

	// refRegex matches entity references like App/Strings or
	// App/Strings@res/locale. The directory part disambiguates entities
	// that share a project and base name.
	refRegex = regexp.MustCompile(`^([^/@]+)/([^/@]+)(?:@(.+))?$`)
)

// EntityRef is a user-facing reference to an entity: project and base name,
// with an optional directory to break ties.
type EntityRef struct {
	Project   string
	BaseName  string
	Directory string
}

// ParseEntityRef parses a reference of the form "project/baseName" or
// "project/baseName@directory". Returns ErrInvalidRef on malformed input.
func ParseEntityRef(s string) (EntityRef, error) {
	matches := refRegex.FindStringSubmatch(s)
	if matches == nil {
		return EntityRef{}, fmt.Errorf("%w: %q (want project/baseName)", ErrInvalidRef, s)
	}
	return EntityRef{
		Project:   matches[1],
		BaseName:  matches[2],
		Directory: matches[3],
	}, nil
}

// FormatEntityRef renders the shortest reference for an entity key.
func FormatEntityRef(k EntityKey) string {
	return k.Project + "/" + k.BaseName
}

// Matches reports whether the reference resolves to the given entity key.
// An empty directory part matches any directory.
func (r EntityRef) Matches(k EntityKey) bool {
	if r.Project != k.Project || r.BaseName != k.BaseName {
		return false
	}
	return r.Directory == "" || r.Directory == k.Directory
}

// String renders the reference back to its parseable form.
func (r EntityRef) String() string {
	s := r.Project + "/" + r.BaseName
	if r.Directory != "" {
		s += "@" + r.Directory
	}
	return s
}
