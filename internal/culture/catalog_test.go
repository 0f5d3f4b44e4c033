package culture

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog(t *testing.T) {
	c := NewCatalog("de", "en", "de", Neutral, "en-GB")

	// Duplicates and the neutral key are dropped.
	assert.Equal(t, 3, c.Len())
	assert.True(t, c.Has("de"))
	assert.True(t, c.Has("en"))
	assert.True(t, c.Has("en-GB"))
	assert.False(t, c.Has(Neutral))
	assert.False(t, c.Has("fr"))
}

func TestCatalogSpecificCultures(t *testing.T) {
	c := NewCatalog("fr", "de", "en")

	keys := c.SpecificCultures()
	assert.Equal(t, []Key{"de", "en", "fr"}, keys)

	// Mutating the returned slice must not affect the catalog.
	keys[0] = "zz"
	assert.Equal(t, []Key{"de", "en", "fr"}, c.SpecificCultures())
}

func TestCatalogIsValidLanguageName(t *testing.T) {
	c := DefaultCatalog()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"known language", "de", true},
		{"known region", "de-DE", true},
		{"case insensitive", "DE-de", true},
		{"known script", "zh-Hant", true},
		{"unknown but well formed", "xx", false},
		{"malformed", "de_DE", false},
		{"neutral is not specific", "neutral", false},
		{"empty is not specific", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.IsValidLanguageName(tt.input))
		})
	}
}

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	require.NotZero(t, c.Len())

	keys := c.SpecificCultures()
	assert.Len(t, keys, c.Len())
	assert.True(t, sort.SliceIsSorted(keys, func(i, j int) bool { return keys[i] < keys[j] }))

	// Every entry is already canonical.
	for _, k := range keys {
		parsed, err := Parse(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}
}
