// Package manager owns the live resource collection: it groups scanned
// files into entities, keeps the derived views (flattened entries, culture
// keys) and the caller's selection consistent across reloads, negotiates
// edits with a cancellable policy, and coordinates persistence.
package manager

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/mlindgren/locman/internal/culture"
	"github.com/mlindgren/locman/internal/model"
)

// Finder is an in-flight background search over the collection. Load stops
// it before rebuilding so it never observes a half-replaced entity set.
type Finder interface {
	StopFind()
}

// Options configures a Manager. Store and Policy are required; Catalog and
// Finder may be nil.
type Options struct {
	Store   Store
	Policy  Policy
	Catalog *culture.Catalog
	Finder  Finder
}

// Manager owns the resource entity collection and everything derived from
// it. All mutation must come from a single goroutine. Observers reading the
// exposed collections between calls never see a half-built state: a load
// builds into temporaries and swaps.
type Manager struct {
	store   Store
	policy  Policy
	catalog *culture.Catalog
	finder  Finder

	entities []*model.Entity
	entries  []*model.TableEntry
	cultures *cultureIndex

	editPolicy EditPolicy
	snapshot   *model.Snapshot
	queue      taskQueue

	// SelectedEntities and SelectedEntries belong to the caller between
	// loads. A load reconciles them against the rebuilt collection rather
	// than clearing them.
	SelectedEntities *Selection[*model.Entity]
	SelectedEntries  *Selection[*model.TableEntry]

	// Event hooks, all optional, invoked synchronously.
	OnLoaded          func()
	OnReloadRequested func()
	OnLanguageSaved   func(e *model.Entity, l *model.Language)
}

// New builds a Manager. A nil Catalog falls back to the built-in one.
func New(opts Options) *Manager {
	catalog := opts.Catalog
	if catalog == nil {
		catalog = culture.DefaultCatalog()
	}
	m := &Manager{
		store:    opts.Store,
		policy:   opts.Policy,
		catalog:  catalog,
		finder:   opts.Finder,
		cultures: newCultureIndex(),
	}
	m.SelectedEntities = NewSelection(func(a, b *model.Entity) bool {
		return a.Key == b.Key
	})
	m.SelectedEntries = NewSelection(func(a, b *model.TableEntry) bool {
		return a.Identity() == b.Identity()
	})
	return m
}

// Load rebuilds the collection from a fresh set of scanned files. Previous
// selections are reconciled by structural identity, the culture index is
// rebuilt, and the current snapshot, if one is held, is reapplied so
// unsaved edits survive an externally triggered reload. On the very first
// load every entity starts selected.
func (m *Manager) Load(files []ProjectFile) {
	if m.finder != nil {
		m.finder.StopFind()
	}
	firstLoad := len(m.entities) == 0

	entities := buildEntities(files)
	entries := flattenEntries(entities)

	m.entities = entities
	m.entries = entries
	m.cultures.rebuild(entities)

	if firstLoad {
		m.SelectedEntities.Replace(entities...)
	} else {
		m.SelectedEntities.reconcile(entities)
	}
	m.SelectedEntries.reconcile(entries)

	if m.snapshot != nil {
		m.snapshot.Apply(m.entities)
	}

	log.Debug().
		Int("entities", len(entities)).
		Int("entries", len(entries)).
		Int("cultures", len(m.cultures.keys)).
		Msg("Resource collection loaded")

	if m.OnLoaded != nil {
		m.OnLoaded()
	}
}

// Reload asks the host to rebuild the collection. The manager does not
// re-read storage itself; whoever owns the scan responds by calling Load
// with a fresh file set.
func (m *Manager) Reload() {
	if m.OnReloadRequested != nil {
		m.OnReloadRequested()
	}
}

// Entities returns the loaded entities in order. The slice is a copy.
func (m *Manager) Entities() []*model.Entity {
	out := make([]*model.Entity, len(m.entities))
	copy(out, m.entities)
	return out
}

// Entity returns the loaded entity with the given key, or nil.
func (m *Manager) Entity(key model.EntityKey) *model.Entity {
	for _, e := range m.entities {
		if e.Key == key {
			return e
		}
	}
	return nil
}

// Entries returns every table entry across all entities, in entity order.
// The slice is a copy.
func (m *Manager) Entries() []*model.TableEntry {
	out := make([]*model.TableEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Cultures returns the distinct culture keys observed so far, in discovery
// order.
func (m *Manager) Cultures() []culture.Key {
	return m.cultures.list()
}

// HasChanges reports whether any loaded language has unsaved edits.
func (m *Manager) HasChanges() bool {
	for _, e := range m.entities {
		if e.HasChanges() {
			return true
		}
	}
	return false
}

// IsValidLanguageName reports whether name is a culture the catalog knows.
func (m *Manager) IsValidLanguageName(name string) bool {
	return m.catalog.IsValidLanguageName(name)
}

// SpecificCultures returns the catalog's known non-neutral cultures.
func (m *Manager) SpecificCultures() []culture.Key {
	return m.catalog.SpecificCultures()
}

// SetEditPolicy registers the edit negotiation handler. One handler serves
// the whole manager; passing nil removes it, restoring the allow-everything
// default.
func (m *Manager) SetEditPolicy(p EditPolicy) {
	m.editPolicy = p
}

// CanEdit asks the registered policy whether entity may be edited. A nil
// culture asks about the entity as a whole. With no policy registered the
// answer is always true.
func (m *Manager) CanEdit(e *model.Entity, c *culture.Key) bool {
	if m.editPolicy == nil {
		return true
	}
	return m.editPolicy(e, c) != Deny
}

// SetValue changes one entry value after negotiating the edit. It returns
// false when the policy denies the edit or the entity has no variant for
// the culture; the value is then untouched. A real change marks the
// language dirty and schedules a deferred save. Writing the value the
// entry already has is a successful no-op and schedules nothing.
func (m *Manager) SetValue(entry *model.TableEntry, c culture.Key, text string) bool {
	if !m.CanEdit(entry.Entity, &c) {
		return false
	}
	l := entry.Entity.Language(c)
	if l == nil {
		log.Debug().
			Str("entity", model.FormatEntityRef(entry.Entity.Key)).
			Str("culture", c.String()).
			Msg("No language variant for culture")
		return false
	}
	if current, ok := l.Table.Get(entry.Key); ok && current == text {
		return true
	}
	l.Table.Set(entry.Key, text)
	l.Dirty = true
	m.scheduleSave(entry.Entity, l)
	return true
}

// ValidateKey checks that a resource key is usable.
func ValidateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("resource key must not be empty")
	}
	return nil
}

// AddNewKey creates a new entry on the entity and makes it the sole
// selected entry. The edit must be approved for the entity as a whole; a
// denial or an invalid key leaves everything untouched and returns nil.
// If the key already exists, the existing entry is selected and returned.
func (m *Manager) AddNewKey(e *model.Entity, key string) *model.TableEntry {
	if ValidateKey(key) != nil {
		return nil
	}
	if !m.CanEdit(e, nil) {
		return nil
	}

	entry, created := e.AddKey(key)
	if created {
		m.entries = flattenEntries(m.entities)
		if m.snapshot != nil {
			m.snapshot.Apply(m.entities)
		}
		if l := e.NeutralLanguage(); l != nil {
			m.scheduleSave(e, l)
		}
	}
	m.SelectedEntries.Replace(entry)
	return entry
}

// LanguageAdded gives every loaded entity a variant for the new culture.
// It does nothing unless the configuration enables creating language files
// automatically. The first entity whose edit negotiation is denied stops
// the remainder of the pass. Returns the number of variants created.
func (m *Manager) LanguageAdded(c culture.Key) int {
	if !m.policy.AutoCreateLanguageFiles() {
		return 0
	}

	created := 0
	for _, e := range m.entities {
		if e.Language(c) != nil {
			continue
		}
		if !m.CanEdit(e, &c) {
			break
		}
		l := model.NewLanguage(c, m.store.LanguagePath(e.Key, c))
		l.Dirty = true
		e.AddLanguage(l)
		m.scheduleSave(e, l)
		created++
	}
	if created > 0 {
		m.cultures.add(c)
		log.Debug().Str("culture", c.String()).Int("created", created).Msg("Language variants created")
	}
	return created
}

// Save persists every language with unsaved changes, synchronously and in
// collection order. The first failure aborts the batch and is returned as
// a *SaveError; languages saved before it stay saved, the failed one stays
// dirty so a later Save can retry.
func (m *Manager) Save() error {
	for _, e := range m.entities {
		for _, l := range e.Languages() {
			if !l.Dirty {
				continue
			}
			if err := m.store.SaveLanguage(l); err != nil {
				return &SaveError{Entity: e.Key, Culture: l.Culture, Err: err}
			}
			l.Dirty = false
			if m.OnLanguageSaved != nil {
				m.OnLanguageSaved(e, l)
			}
		}
	}
	return nil
}

// CreateSnapshot captures every entry value of every entity into an opaque
// blob and retains the capture, so it is reapplied after each load.
func (m *Manager) CreateSnapshot() (string, error) {
	snap := model.TakeSnapshot(m.entities)
	blob, err := snap.Encode()
	if err != nil {
		return "", err
	}
	m.snapshot = snap
	return blob, nil
}

// LoadSnapshot applies a previously captured blob onto the live entities
// and retains it as current. Values that no longer match a live entity,
// key, or language are skipped silently.
func (m *Manager) LoadSnapshot(blob string) error {
	snap, err := model.DecodeSnapshot(blob)
	if err != nil {
		return err
	}
	snap.Apply(m.entities)
	m.snapshot = snap
	return nil
}

// Flush runs the deferred work scheduled so far: coalesced saves and
// anything queued behind them. The host calls this after each unit of
// interactive work returns.
func (m *Manager) Flush() {
	m.queue.drain()
}

// scheduleSave queues a deferred save for l. The queued step is skipped
// when the language is clean by the time it runs, so rapid edits collapse
// into one write. A failed deferred save is logged and leaves the dirty
// flag set; nothing is waiting on it, so it never propagates.
func (m *Manager) scheduleSave(e *model.Entity, l *model.Language) {
	m.queue.enqueue(func() {
		if !l.Dirty {
			return
		}
		if err := m.store.SaveLanguage(l); err != nil {
			log.Error().Err(err).Str("path", l.Path).Msg("Deferred save failed")
			return
		}
		l.Dirty = false
		if m.OnLanguageSaved != nil {
			m.OnLanguageSaved(e, l)
		}
	})
}
