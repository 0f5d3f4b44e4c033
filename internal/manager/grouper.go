package manager

import (
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/mlindgren/locman/internal/culture"
	"github.com/mlindgren/locman/internal/model"
)

// buildEntities partitions scanned files into resource entities, one per
// (project, base name, directory) triple. Files without a project name are
// dropped; they belong to no project, which is not an error. The result is
// ordered by project then base name, so repeated runs over the same input
// produce the same sequence.
func buildEntities(files []ProjectFile) []*model.Entity {
	groups := make(map[model.EntityKey][]ProjectFile)
	for _, f := range files {
		if !f.IsResourceFile() {
			continue
		}
		if f.ProjectName() == "" {
			log.Debug().Str("path", f.Path()).Msg("Skipping file outside any project")
			continue
		}
		key := model.EntityKey{
			Project:   f.ProjectName(),
			BaseName:  f.BaseName(),
			Directory: f.BaseDirectory(),
		}
		groups[key] = append(groups[key], f)
	}

	entities := make([]*model.Entity, 0, len(groups))
	for key, members := range groups {
		entities = append(entities, model.NewEntity(key, readLanguages(members)))
	}
	sortEntities(entities)
	return entities
}

// readLanguages parses each grouped file into a language variant. A file
// that fails to parse is skipped so the rest of its group still loads; the
// skip is logged, not raised.
func readLanguages(files []ProjectFile) []*model.Language {
	languages := make([]*model.Language, 0, len(files))
	seen := make(map[culture.Key]bool)
	for _, f := range files {
		c := f.CultureKey()
		if seen[c] {
			log.Warn().Str("path", f.Path()).Str("culture", c.String()).Msg("Duplicate language file for culture")
			continue
		}
		table, err := f.Read()
		if err != nil {
			log.Warn().Err(err).Str("path", f.Path()).Msg("Skipping unreadable resource file")
			continue
		}
		seen[c] = true
		l := model.NewLanguage(c, f.Path())
		l.Table = table
		languages = append(languages, l)
	}
	return languages
}

// flattenEntries concatenates each entity's entries in entity order.
func flattenEntries(entities []*model.Entity) []*model.TableEntry {
	var entries []*model.TableEntry
	for _, e := range entities {
		entries = append(entries, e.Entries()...)
	}
	return entries
}

// sortEntities orders entities by project, base name, then directory.
func sortEntities(entities []*model.Entity) {
	sort.Slice(entities, func(i, j int) bool {
		a, b := entities[i].Key, entities[j].Key
		if a.Project != b.Project {
			return a.Project < b.Project
		}
		if a.BaseName != b.BaseName {
			return a.BaseName < b.BaseName
		}
		return a.Directory < b.Directory
	})
}
