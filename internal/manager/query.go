package manager

import (
	"strings"

	"github.com/mlindgren/locman/internal/culture"
	"github.com/mlindgren/locman/internal/model"
)

// EntityFilter specifies filtering criteria for listing entities.
type EntityFilter struct {
	Ref     *model.EntityRef // Limit to entities matching the ref. Nil = all.
	Project string           // Exact project name. Empty = any.
	Dirty   bool             // Only entities with unsaved changes.
}

// ListEntities returns loaded entities matching the filter, in collection
// order.
func (m *Manager) ListEntities(f EntityFilter) []*model.Entity {
	var results []*model.Entity
	for _, e := range m.entities {
		if f.Ref != nil && !f.Ref.Matches(e.Key) {
			continue
		}
		if f.Project != "" && !strings.EqualFold(e.Key.Project, f.Project) {
			continue
		}
		if f.Dirty && !e.HasChanges() {
			continue
		}
		results = append(results, e)
	}
	return results
}

// EntryFilter specifies filtering criteria for listing table entries.
type EntryFilter struct {
	Ref     *model.EntityRef // Limit to entries of matching entities. Nil = all.
	Key     string           // Substring match on the entry key. Empty = any.
	Culture *culture.Key     // With Missing, inspect only this culture. Nil = all.
	Missing bool             // Only entries still untranslated somewhere.
}

// EntryResult is a single listed entry plus the cultures it still needs a
// value for.
type EntryResult struct {
	Entry   *model.TableEntry
	Missing []culture.Key
}

// ListEntries returns entries matching the filter, in collection order.
func (m *Manager) ListEntries(f EntryFilter) []EntryResult {
	var results []EntryResult
	for _, entry := range m.entries {
		if !matchesEntryFilter(entry, f) {
			continue
		}
		missing := missingCultures(entry, f.Culture)
		if f.Missing && len(missing) == 0 {
			continue
		}
		results = append(results, EntryResult{Entry: entry, Missing: missing})
	}
	return results
}

func matchesEntryFilter(entry *model.TableEntry, f EntryFilter) bool {
	if f.Ref != nil && !f.Ref.Matches(entry.Entity.Key) {
		return false
	}
	if f.Key != "" && !strings.Contains(strings.ToLower(entry.Key), strings.ToLower(f.Key)) {
		return false
	}
	return true
}

// missingCultures returns the cultures of the entry's entity that still
// need a value for this key: the primary language has a non-empty value
// but theirs is absent or empty. With only set, just that culture is
// inspected.
func missingCultures(entry *model.TableEntry, only *culture.Key) []culture.Key {
	e := entry.Entity
	source := e.NeutralLanguage()
	if source == nil {
		return nil
	}
	src, _ := source.Table.Get(entry.Key)
	if src == "" {
		return nil
	}

	var missing []culture.Key
	for _, l := range e.Languages() {
		if l == source {
			continue
		}
		if only != nil && l.Culture != *only {
			continue
		}
		if v, ok := l.Table.Get(entry.Key); !ok || v == "" {
			missing = append(missing, l.Culture)
		}
	}
	return missing
}

// FindEntries searches entry keys and values by keyword across the loaded
// collection.
func (m *Manager) FindEntries(query string) []*model.TableEntry {
	queryLower := strings.ToLower(query)
	var results []*model.TableEntry
	for _, entry := range m.entries {
		if strings.Contains(strings.ToLower(entry.Key), queryLower) {
			results = append(results, entry)
			continue
		}
		for _, c := range entry.Entity.Cultures() {
			if v, ok := entry.Value(c); ok && strings.Contains(strings.ToLower(v), queryLower) {
				results = append(results, entry)
				break
			}
		}
	}
	return results
}
