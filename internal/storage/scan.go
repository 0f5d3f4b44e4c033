package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/mlindgren/locman/internal/culture"
	"github.com/mlindgren/locman/internal/model"
)

// ScannedFile is one file candidate found during a scan. It satisfies the
// manager's project-file contract.
type ScannedFile struct {
	path     string
	dir      string
	base     string
	project  string
	culture  culture.Key
	resource bool
}

func (f *ScannedFile) Path() string            { return f.path }
func (f *ScannedFile) IsResourceFile() bool    { return f.resource }
func (f *ScannedFile) BaseDirectory() string   { return f.dir }
func (f *ScannedFile) BaseName() string        { return f.base }
func (f *ScannedFile) ProjectName() string     { return f.project }
func (f *ScannedFile) CultureKey() culture.Key { return f.culture }

// Read parses the file into a string table.
func (f *ScannedFile) Read() (*model.StringTable, error) {
	return model.LoadStringTable(f.path)
}

// markerDoc is the schema of a .locman.yaml project marker.
type markerDoc struct {
	Project string `yaml:"project"`
}

// Scan walks the workspace and returns every YAML file candidate, each
// classified by name and tagged with the project of the nearest ancestor
// marker. Directories starting with a dot are not descended into.
func (s *Storage) Scan() ([]*ScannedFile, error) {
	neutral := s.neutralCulture()

	var files []*ScannedFile
	markers := make(map[string]string) // directory -> project name

	err := filepath.Walk(s.root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("Error walking path")
			return nil
		}

		if info.IsDir() {
			if path != s.root && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		name := info.Name()
		switch {
		case name == markerFile:
			project, err := readMarker(path)
			if err != nil {
				log.Warn().Err(err).Str("path", path).Msg("Ignoring unusable project marker")
				return nil
			}
			markers[filepath.Dir(path)] = project
		case name == userConfigFile:
			// Not a candidate.
		case strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml"):
			files = append(files, s.classify(path, name, neutral))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", s.root, err)
	}

	// Projects resolve after the walk, so marker discovery order never
	// matters.
	for _, f := range files {
		f.project = projectFor(f.dir, s.root, markers)
	}

	log.Debug().Int("files", len(files)).Str("root", s.root).Msg("Workspace scan complete")
	return files, nil
}

// classify builds a ScannedFile from a file name. Base.strings.yaml is the
// neutral variant; Base.de-DE.strings.yaml names a culture the catalog
// knows. A middle segment the catalog does not know stays part of the base
// name.
func (s *Storage) classify(path, name string, neutral culture.Key) *ScannedFile {
	f := &ScannedFile{path: path, dir: filepath.Dir(path)}

	if !strings.HasSuffix(name, resourceSuffix) {
		f.base = name
		return f
	}
	base := strings.TrimSuffix(name, resourceSuffix)
	if base == "" {
		f.base = name
		return f
	}

	f.resource = true
	f.culture = neutral
	if i := strings.LastIndex(base, "."); i >= 0 {
		if key, err := culture.Parse(base[i+1:]); err == nil && s.catalog.Has(key) {
			f.culture = key
			base = base[:i]
		}
	}
	f.base = base
	return f
}

// neutralCulture returns the culture suffix-less files are recorded under,
// honoring the neutral_culture override.
func (s *Storage) neutralCulture() culture.Key {
	if s.config.NeutralCulture == "" {
		return culture.Neutral
	}
	key, err := culture.Parse(s.config.NeutralCulture)
	if err != nil {
		log.Warn().Str("value", s.config.NeutralCulture).Msg("Ignoring invalid neutral_culture")
		return culture.Neutral
	}
	return key
}

// readMarker loads the project name from a .locman.yaml file.
func readMarker(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	var doc markerDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return "", fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if doc.Project == "" {
		return "", fmt.Errorf("%s has no project name", path)
	}
	return doc.Project, nil
}

// projectFor finds the nearest marker at or above dir, stopping at the
// workspace root.
func projectFor(dir, root string, markers map[string]string) string {
	for {
		if project, ok := markers[dir]; ok {
			return project
		}
		if dir == root {
			return ""
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
