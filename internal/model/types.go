// Package model defines the core data structures for locman.
package model

import (
	"sort"

	"github.com/mlindgren/locman/internal/culture"
)

// EntityKey is the structural identity of a resource entity. Entities are
// rebuilt wholesale on every load; keys are what survives, so selection and
// snapshot matching compare keys, never pointers.
type EntityKey struct {
	Project   string
	BaseName  string
	Directory string
}

// EntryKey is the structural identity of one table entry: the owning
// entity's key plus the entry's string key.
type EntryKey struct {
	Entity EntityKey
	Key    string
}

// Language is one locale variant of an entity, backed by a string-table
// file. Dirty marks unsaved edits; it is cleared by whoever persists the
// variant.
type Language struct {
	Culture culture.Key
	Path    string
	Table   *StringTable
	Dirty   bool
}

// NewLanguage returns an empty language variant for the given culture.
func NewLanguage(c culture.Key, path string) *Language {
	return &Language{Culture: c, Path: path, Table: NewStringTable()}
}

// Entity is one logical group of localizable strings: all string-table
// variants sharing a project, base name, and directory. The entity owns its
// languages and entries and keeps both ordered; the neutral language always
// sorts first.
type Entity struct {
	Key EntityKey

	languages []*Language
	keys      []string
	entries   []*TableEntry
	byKey     map[string]*TableEntry
}

// NewEntity builds an entity from its language variants. Languages are
// ordered neutral-first then by culture key; entry keys are the union of
// all language tables, in the order the languages introduce them.
func NewEntity(key EntityKey, languages []*Language) *Entity {
	e := &Entity{Key: key, byKey: make(map[string]*TableEntry)}
	for _, l := range languages {
		e.insertLanguage(l)
	}
	for _, l := range e.languages {
		for _, k := range l.Table.Keys() {
			e.appendKey(k)
		}
	}
	return e
}

// insertLanguage places l at its ordered position.
func (e *Entity) insertLanguage(l *Language) {
	e.languages = append(e.languages, l)
	sort.SliceStable(e.languages, func(i, j int) bool {
		a, b := e.languages[i].Culture, e.languages[j].Culture
		if a.IsNeutral() != b.IsNeutral() {
			return a.IsNeutral()
		}
		return a < b
	})
}

func (e *Entity) appendKey(k string) *TableEntry {
	if entry, ok := e.byKey[k]; ok {
		return entry
	}
	entry := &TableEntry{Entity: e, Key: k}
	e.keys = append(e.keys, k)
	e.entries = append(e.entries, entry)
	e.byKey[k] = entry
	return entry
}

// Languages returns the entity's language variants in order.
// The returned slice is a copy.
func (e *Entity) Languages() []*Language {
	out := make([]*Language, len(e.languages))
	copy(out, e.languages)
	return out
}

// Language returns the variant for the given culture, or nil.
func (e *Entity) Language(c culture.Key) *Language {
	for _, l := range e.languages {
		if l.Culture == c {
			return l
		}
	}
	return nil
}

// NeutralLanguage returns the first language in order. That is the neutral
// variant when one exists, otherwise the lowest culture. Nil if the entity
// has no languages at all.
func (e *Entity) NeutralLanguage() *Language {
	if len(e.languages) == 0 {
		return nil
	}
	return e.languages[0]
}

// Cultures returns the culture keys of the entity's languages in order.
func (e *Entity) Cultures() []culture.Key {
	out := make([]culture.Key, len(e.languages))
	for i, l := range e.languages {
		out[i] = l.Culture
	}
	return out
}

// Keys returns the entity's entry keys in order. The returned slice is a copy.
func (e *Entity) Keys() []string {
	out := make([]string, len(e.keys))
	copy(out, e.keys)
	return out
}

// Entries returns the entity's table entries in key order.
// The returned slice is a copy; the entries themselves are shared.
func (e *Entity) Entries() []*TableEntry {
	out := make([]*TableEntry, len(e.entries))
	copy(out, e.entries)
	return out
}

// Entry returns the table entry for the given key, or nil.
func (e *Entity) Entry(key string) *TableEntry {
	return e.byKey[key]
}

// AddLanguage attaches a new variant to the entity at its ordered position.
// Returns false if a variant for that culture already exists.
func (e *Entity) AddLanguage(l *Language) bool {
	if e.Language(l.Culture) != nil {
		return false
	}
	e.insertLanguage(l)
	for _, k := range l.Table.Keys() {
		e.appendKey(k)
	}
	return true
}

// AddKey creates the table entry for key. The key is materialized in the
// neutral language with an empty value and that language is marked dirty,
// so a later save persists the new row. Returns the entry and whether it
// was newly created; an existing entry is returned unchanged.
func (e *Entity) AddKey(key string) (*TableEntry, bool) {
	if entry, ok := e.byKey[key]; ok {
		return entry, false
	}
	entry := e.appendKey(key)
	if l := e.NeutralLanguage(); l != nil {
		l.Table.Set(key, "")
		l.Dirty = true
	}
	return entry, true
}

// HasChanges reports whether any language variant has unsaved edits.
func (e *Entity) HasChanges() bool {
	for _, l := range e.languages {
		if l.Dirty {
			return true
		}
	}
	return false
}

// TableEntry is one key row of an entity, with one value per language.
// Values live in the language tables; the entry reads through.
type TableEntry struct {
	Entity *Entity
	Key    string
}

// Identity returns the entry's structural identity for cross-load matching.
func (t *TableEntry) Identity() EntryKey {
	return EntryKey{Entity: t.Entity.Key, Key: t.Key}
}

// Value returns the entry's value for the given culture. The second result
// is false when the language is missing or has no value for this key.
func (t *TableEntry) Value(c culture.Key) (string, bool) {
	l := t.Entity.Language(c)
	if l == nil {
		return "", false
	}
	return l.Table.Get(t.Key)
}
