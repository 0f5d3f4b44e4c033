// Package storage discovers and persists string-table files in a workspace
// tree.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mlindgren/locman/internal/culture"
	"github.com/mlindgren/locman/internal/model"
)

const (
	// markerFile names the project that owns a directory subtree.
	markerFile = ".locman.yaml"
	// resourceSuffix ends every string-table file name. A culture code may
	// sit between the base name and the suffix.
	resourceSuffix = ".strings.yaml"
)

// Storage provides access to a workspace rooted at a directory.
type Storage struct {
	root    string
	catalog *culture.Catalog
	config  *Config
}

// Open returns a Storage for the given directory and reads its user
// configuration. A nil catalog falls back to the built-in one.
func Open(dir string, catalog *culture.Catalog) (*Storage, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", dir, err)
	}

	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("directory %s not found", dir)
		}
		return nil, fmt.Errorf("failed to access %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	if catalog == nil {
		catalog = culture.DefaultCatalog()
	}
	cfg, err := loadConfig(root)
	if err != nil {
		return nil, err
	}

	return &Storage{root: root, catalog: catalog, config: cfg}, nil
}

// Root returns the workspace root directory.
func (s *Storage) Root() string {
	return s.root
}

// Config returns the loaded user configuration.
func (s *Storage) Config() *Config {
	return s.config
}

// LanguagePath returns where the language file for an entity and culture
// lives, whether or not it exists yet.
func (s *Storage) LanguagePath(key model.EntityKey, c culture.Key) string {
	name := key.BaseName + resourceSuffix
	if !c.IsNeutral() {
		name = key.BaseName + "." + string(c) + resourceSuffix
	}
	return filepath.Join(key.Directory, name)
}

// SaveLanguage writes a language's table back to its file.
func (s *Storage) SaveLanguage(l *model.Language) error {
	if l.Path == "" {
		return fmt.Errorf("language %s has no file path", l.Culture)
	}
	return model.SaveStringTable(l.Path, l.Table)
}

// WriteMarker creates a .locman.yaml project marker in dir, claiming its
// subtree for the named project. Fails if a marker already exists.
func WriteMarker(dir, project string) error {
	if project == "" {
		return fmt.Errorf("project name must not be empty")
	}
	path := filepath.Join(dir, markerFile)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check for %s: %w", path, err)
	}

	data, err := yaml.Marshal(markerDoc{Project: project})
	if err != nil {
		return fmt.Errorf("failed to marshal marker: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
