package culture

import "sort"

// Catalog is a read-only set of known specific cultures. It is built once
// and shared by reference; every query returns copies, so a single catalog
// can back any number of concurrent readers.
type Catalog struct {
	keys []Key
	seen map[Key]struct{}
}

// defaultCultureNames is the built-in culture table. Kept sorted for
// readability; NewCatalog sorts regardless.
var defaultCultureNames = []string{
	"ar", "cs", "da", "de", "de-AT", "de-CH", "de-DE",
	"el", "en", "en-AU", "en-CA", "en-GB", "en-US",
	"es", "es-ES", "es-MX", "fi", "fr", "fr-CA", "fr-FR",
	"he", "hi", "hu", "id", "it", "it-IT", "ja", "ko",
	"nb", "nl", "nl-NL", "pl", "pt", "pt-BR", "pt-PT",
	"ro", "ru", "sk", "sv", "th", "tr", "uk", "vi",
	"zh-Hans", "zh-Hant", "zh-CN", "zh-TW",
}

// NewCatalog builds a catalog from the given keys. Duplicates and neutral
// keys are dropped; the remaining keys are sorted.
func NewCatalog(keys ...Key) *Catalog {
	c := &Catalog{seen: make(map[Key]struct{}, len(keys))}
	for _, k := range keys {
		if k.IsNeutral() {
			continue
		}
		if _, ok := c.seen[k]; ok {
			continue
		}
		c.seen[k] = struct{}{}
		c.keys = append(c.keys, k)
	}
	sort.Slice(c.keys, func(i, j int) bool { return c.keys[i] < c.keys[j] })
	return c
}

// DefaultCatalog returns a catalog of the built-in culture table.
func DefaultCatalog() *Catalog {
	keys := make([]Key, len(defaultCultureNames))
	for i, name := range defaultCultureNames {
		keys[i] = MustParse(name)
	}
	return NewCatalog(keys...)
}

// Has reports whether k is a known specific culture.
// The neutral key is not part of any catalog.
func (c *Catalog) Has(k Key) bool {
	_, ok := c.seen[k]
	return ok
}

// IsValidLanguageName reports whether name parses to a known specific
// culture. "de-de" is valid when "de-DE" is in the catalog; "neutral",
// the empty string, and unknown names are not.
func (c *Catalog) IsValidLanguageName(name string) bool {
	k, err := Parse(name)
	if err != nil {
		return false
	}
	return c.Has(k)
}

// SpecificCultures returns the catalog's keys in sorted order.
// The returned slice is a copy.
func (c *Catalog) SpecificCultures() []Key {
	out := make([]Key, len(c.keys))
	copy(out, c.keys)
	return out
}

// Len returns the number of cultures in the catalog.
func (c *Catalog) Len() int {
	return len(c.keys)
}
