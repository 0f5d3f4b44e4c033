package manager

import (
	"fmt"

	"github.com/mlindgren/locman/internal/culture"
	"github.com/mlindgren/locman/internal/model"
)

// ProjectFile is a single file candidate produced by a scan. Only candidates
// that report IsResourceFile and carry a project name take part in grouping;
// everything else is dropped without comment.
type ProjectFile interface {
	// Path returns the file's location on disk.
	Path() string
	// IsResourceFile reports whether the file holds localizable strings.
	IsResourceFile() bool
	// BaseDirectory returns the directory containing the file.
	BaseDirectory() string
	// BaseName returns the file name with culture suffix and extension removed.
	BaseName() string
	// ProjectName returns the owning project, or "" when the file belongs
	// to no known project.
	ProjectName() string
	// CultureKey identifies the locale variant the file holds.
	CultureKey() culture.Key
	// Read parses the file into a string table.
	Read() (*model.StringTable, error)
}

// Store defines the persistence interface required by the manager. The
// concrete implementation is storage.Storage, but this interface allows
// alternative backends (in-memory, HTTP, etc.) for testing and GUI use.
type Store interface {
	SaveLanguage(l *model.Language) error
	LanguagePath(key model.EntityKey, c culture.Key) string
}

// Policy exposes the read-only configuration flags the manager consults.
type Policy interface {
	AutoCreateLanguageFiles() bool
}

// Decision is the outcome of an edit negotiation.
type Decision string

const (
	Allow Decision = "allow"
	Deny  Decision = "deny"
)

// EditPolicy decides whether a pending edit may proceed. The culture is nil
// when the question concerns the entity as a whole rather than one language.
// With no policy registered every edit is allowed.
type EditPolicy func(entity *model.Entity, c *culture.Key) Decision

// SaveError reports a language file that could not be persisted. It is a
// distinct error type so callers can tell which file failed when a batch
// save aborts partway through.
type SaveError struct {
	Entity  model.EntityKey
	Culture culture.Key
	Err     error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("saving %s (%s): %v", model.FormatEntityRef(e.Entity), e.Culture, e.Err)
}

func (e *SaveError) Unwrap() error {
	return e.Err
}
