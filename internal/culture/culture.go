// Package culture defines locale identifiers and the catalog of known cultures.
package culture

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Key identifies a locale, e.g. "en", "de-DE", or "zh-Hant-TW".
// The zero value is the neutral (culture-invariant) key.
type Key string

// Neutral is the culture-invariant key. Neutral string tables carry the
// source-language values that all other variants translate.
const Neutral Key = ""

var (
	// ErrInvalidKey is returned when a culture name cannot be parsed.
	ErrInvalidKey = errors.New("invalid culture name")

	// keyRegex matches language, language-REGION, and language-Script-REGION
	// names. Case is normalized by Parse, so the match is case-insensitive.
	keyRegex = regexp.MustCompile(`^([A-Za-z]{2,3})(?:-([A-Za-z]{4}))?(?:-([A-Za-z]{2}))?$`)
)

// Parse parses a culture name into a canonical Key.
// Accepts mixed case: "de-de", "DE-DE", and "de-DE" all parse to "de-DE".
// The empty string and "neutral" parse to the Neutral key.
// Returns ErrInvalidKey if the name has none of the recognized shapes.
func Parse(name string) (Key, error) {
	if name == "" || strings.EqualFold(name, "neutral") {
		return Neutral, nil
	}

	matches := keyRegex.FindStringSubmatch(name)
	if matches == nil {
		return Neutral, fmt.Errorf("%w: %q", ErrInvalidKey, name)
	}

	lang := strings.ToLower(matches[1])
	parts := []string{lang}
	if script := matches[2]; script != "" {
		parts = append(parts, strings.ToUpper(script[:1])+strings.ToLower(script[1:]))
	}
	if region := matches[3]; region != "" {
		parts = append(parts, strings.ToUpper(region))
	}

	return Key(strings.Join(parts, "-")), nil
}

// MustParse is like Parse but panics on invalid input. Intended for
// static culture tables.
func MustParse(name string) Key {
	k, err := Parse(name)
	if err != nil {
		panic(err)
	}
	return k
}

// String renders the key, using "neutral" for the Neutral key so it is
// never displayed or serialized as an empty string.
func (k Key) String() string {
	if k == Neutral {
		return "neutral"
	}
	return string(k)
}

// IsNeutral reports whether k is the culture-invariant key.
func (k Key) IsNeutral() bool {
	return k == Neutral
}

// Language returns the primary language subtag ("de" for "de-AT").
// Empty for the neutral key.
func (k Key) Language() string {
	if k == Neutral {
		return ""
	}
	s := string(k)
	if i := strings.Index(s, "-"); i >= 0 {
		return s[:i]
	}
	return s
}
