package main

import (
	"path/filepath"
	"strings"

	"github.com/mlindgren/locman/internal/cli"
	"github.com/mlindgren/locman/internal/culture"
	"github.com/mlindgren/locman/internal/manager"
	"github.com/mlindgren/locman/internal/model"
	"github.com/mlindgren/locman/internal/storage"
)

// openManager scans the workspace under the current directory and loads
// the collection into a fresh manager.
func openManager() (*manager.Manager, *storage.Storage, error) {
	st, err := storage.Open(".", nil)
	if err != nil {
		return nil, nil, err
	}
	cli.ConfigureColor(st.Config().Color)

	files, err := st.Scan()
	if err != nil {
		return nil, nil, err
	}

	m := manager.New(manager.Options{Store: st, Policy: st.Config()})
	m.Load(asProjectFiles(files))
	return m, st, nil
}

// asProjectFiles widens the scanner's concrete files to the manager's
// file interface.
func asProjectFiles(files []*storage.ScannedFile) []manager.ProjectFile {
	out := make([]manager.ProjectFile, len(files))
	for i, f := range files {
		out[i] = f
	}
	return out
}

// resolveEntity finds a single entity from a reference. Exact references
// (project/baseName, optionally @directory) and unique case-insensitive
// prefixes are accepted.
func resolveEntity(m *manager.Manager, st *storage.Storage, ref string) (*model.Entity, error) {
	entities := m.Entities()
	if len(entities) == 0 {
		return nil, &cli.NotFoundError{Type: "entity", Name: ref}
	}

	displays := make([]string, len(entities))
	byDisplay := make(map[string]*model.Entity, len(entities))
	for i, e := range entities {
		d := displayRef(st, entities, e)
		displays[i] = d
		byDisplay[d] = e
	}

	matched, err := cli.MatchRef(ref, displays)
	if err != nil {
		return nil, err
	}
	return byDisplay[matched], nil
}

// displayRef renders the reference shown for an entity: the short
// project/baseName form, qualified with the workspace-relative directory
// when another entity shares the short form.
func displayRef(st *storage.Storage, all []*model.Entity, e *model.Entity) string {
	short := model.FormatEntityRef(e.Key)
	shared := 0
	for _, other := range all {
		if model.FormatEntityRef(other.Key) == short {
			shared++
		}
	}
	if shared <= 1 {
		return short
	}
	return short + "@" + relDir(st.Root(), e.Key.Directory)
}

// relDir renders dir relative to the workspace root when it is inside it.
func relDir(root, dir string) string {
	rel, err := filepath.Rel(root, dir)
	if err != nil || strings.HasPrefix(rel, "..") {
		return dir
	}
	return rel
}

// formatCultures joins culture keys for display.
func formatCultures(keys []culture.Key) string {
	names := make([]string, len(keys))
	for i, c := range keys {
		names[i] = c.String()
	}
	return strings.Join(names, ", ")
}

// displayValue flattens a value for a single-line table cell.
func displayValue(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

// primaryValue returns the entry's value in its entity's primary language.
func primaryValue(entry *model.TableEntry) string {
	src := entry.Entity.NeutralLanguage()
	if src == nil {
		return ""
	}
	v, _ := src.Table.Get(entry.Key)
	return v
}

func boolToYesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
