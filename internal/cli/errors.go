package cli

import (
	"fmt"
	"strings"
)

// NotFoundError indicates an entity, key, or culture was not found.
type NotFoundError struct {
	Type string // "entity", "key", or "culture"
	Name string // the name that was not found
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Type, e.Name)
}

// AmbiguousRefError indicates an entity reference matched more than one
// entity.
type AmbiguousRefError struct {
	Ref     string   // the reference as typed
	Matches []string // the entities it matched
}

func (e *AmbiguousRefError) Error() string {
	return fmt.Sprintf("ambiguous entity %q matches: %s", e.Ref, strings.Join(e.Matches, ", "))
}

// EditDeniedError indicates an edit was refused by the edit policy.
type EditDeniedError struct {
	Target string // what was being edited
}

func (e *EditDeniedError) Error() string {
	return fmt.Sprintf("editing %s is not permitted", e.Target)
}

// ValidationError indicates a validation failure.
type ValidationError struct {
	Field   string // the field that failed validation
	Message string // what went wrong
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}

// UnsavedError indicates changes could not be written back to disk.
type UnsavedError struct {
	Target string // the language file that stayed dirty
	Hint   string // suggestion for how to proceed
}

func (e *UnsavedError) Error() string {
	msg := fmt.Sprintf("changes to %s were not saved", e.Target)
	if e.Hint != "" {
		msg += "\n" + e.Hint
	}
	return msg
}

// FormatError returns a user-friendly error message.
// It prefixes the error with "error: " for consistent CLI output.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	return "error: " + err.Error()
}
