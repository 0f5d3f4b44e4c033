package manager

import (
	"fmt"

	"github.com/mlindgren/locman/internal/culture"
	"github.com/mlindgren/locman/internal/model"
)

// FindingKind classifies a consistency problem.
type FindingKind string

const (
	// FindingMissingValue marks an entry whose primary value has no
	// translation in some language.
	FindingMissingValue FindingKind = "missing-value"
	// FindingOrphanKey marks a key present in a translation but absent
	// from the primary language.
	FindingOrphanKey FindingKind = "orphan-key"
)

// Finding is one consistency problem detected in the loaded collection.
type Finding struct {
	Entity  model.EntityKey
	Kind    FindingKind
	Key     string
	Culture culture.Key
	Message string
}

// RunCheck scans the whole collection for consistency problems: values a
// translation still needs, and keys that exist only in a translation.
// Findings come out in collection order, primary-language problems first
// within each entry.
func (m *Manager) RunCheck() []Finding {
	var findings []Finding
	for _, e := range m.entities {
		findings = append(findings, checkEntity(e)...)
	}
	return findings
}

func checkEntity(e *model.Entity) []Finding {
	source := e.NeutralLanguage()
	if source == nil {
		return nil
	}

	var findings []Finding
	for _, entry := range e.Entries() {
		srcVal, srcHas := source.Table.Get(entry.Key)
		for _, l := range e.Languages() {
			if l == source {
				continue
			}
			val, has := l.Table.Get(entry.Key)
			switch {
			case !srcHas && has:
				findings = append(findings, Finding{
					Entity:  e.Key,
					Kind:    FindingOrphanKey,
					Key:     entry.Key,
					Culture: l.Culture,
					Message: fmt.Sprintf("key exists in %s but not in the primary language", l.Culture),
				})
			case srcHas && srcVal != "" && (!has || val == ""):
				findings = append(findings, Finding{
					Entity:  e.Key,
					Kind:    FindingMissingValue,
					Key:     entry.Key,
					Culture: l.Culture,
					Message: fmt.Sprintf("no %s value", l.Culture),
				})
			}
		}
	}
	return findings
}
