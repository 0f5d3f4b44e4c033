package model

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/mlindgren/locman/internal/culture"
)

// Snapshot is a point-in-time capture of every entry value across a set of
// entities. It serializes to an opaque string blob; the blob layout is an
// implementation detail and carries no version marker.
type Snapshot struct {
	Entities []SnapshotEntity `yaml:"entities"`
}

// SnapshotEntity captures one entity's values, identified structurally so
// the capture can be matched against a rebuilt entity set.
type SnapshotEntity struct {
	Project   string          `yaml:"project"`
	BaseName  string          `yaml:"base"`
	Directory string          `yaml:"directory"`
	Entries   []SnapshotEntry `yaml:"entries,omitempty"`
}

// SnapshotEntry captures one key's values across languages.
type SnapshotEntry struct {
	Key    string          `yaml:"key"`
	Values []SnapshotValue `yaml:"values,omitempty"`
}

// SnapshotValue is one culture's text for a key.
type SnapshotValue struct {
	Culture string `yaml:"culture"`
	Text    string `yaml:"text"`
}

// TakeSnapshot captures the current value-state of the given entities.
// Only keys that hold a value in a language are captured for that language.
func TakeSnapshot(entities []*Entity) *Snapshot {
	s := &Snapshot{}
	for _, e := range entities {
		se := SnapshotEntity{
			Project:   e.Key.Project,
			BaseName:  e.Key.BaseName,
			Directory: e.Key.Directory,
		}
		for _, entry := range e.Entries() {
			sn := SnapshotEntry{Key: entry.Key}
			for _, l := range e.Languages() {
				if text, ok := l.Table.Get(entry.Key); ok {
					sn.Values = append(sn.Values, SnapshotValue{
						Culture: l.Culture.String(),
						Text:    text,
					})
				}
			}
			se.Entries = append(se.Entries, sn)
		}
		s.Entities = append(s.Entities, se)
	}
	return s
}

// Encode serializes the snapshot to its blob form.
func (s *Snapshot) Encode() (string, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return string(data), nil
}

// DecodeSnapshot parses a snapshot blob.
func DecodeSnapshot(blob string) (*Snapshot, error) {
	var s Snapshot
	if err := yaml.Unmarshal([]byte(blob), &s); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	return &s, nil
}

// Apply writes the snapshot's values onto the given entities. Captured
// entities, keys, and cultures that no longer resolve are skipped silently;
// a language whose value actually changes is marked dirty so the restored
// state counts as unsaved edits.
func (s *Snapshot) Apply(entities []*Entity) {
	byKey := make(map[EntityKey]*Entity, len(entities))
	for _, e := range entities {
		byKey[e.Key] = e
	}

	for _, se := range s.Entities {
		e, ok := byKey[EntityKey{Project: se.Project, BaseName: se.BaseName, Directory: se.Directory}]
		if !ok {
			continue
		}
		for _, sn := range se.Entries {
			if e.Entry(sn.Key) == nil {
				continue
			}
			for _, sv := range sn.Values {
				key, err := culture.Parse(sv.Culture)
				if err != nil {
					continue
				}
				l := e.Language(key)
				if l == nil {
					continue
				}
				if current, ok := l.Table.Get(sn.Key); ok && current == sv.Text {
					continue
				}
				l.Table.Set(sn.Key, sv.Text)
				l.Dirty = true
			}
		}
	}
}
