package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	err := &NotFoundError{Type: "entity", Name: "App/Missing"}
	assert.Equal(t, "entity App/Missing not found", err.Error())

	err = &NotFoundError{Type: "key", Name: "Greeting"}
	assert.Equal(t, "key Greeting not found", err.Error())

	err = &NotFoundError{Type: "culture", Name: "xx-YY"}
	assert.Equal(t, "culture xx-YY not found", err.Error())
}

func TestAmbiguousRefError(t *testing.T) {
	err := &AmbiguousRefError{
		Ref:     "App/S",
		Matches: []string{"App/Settings", "App/Strings"},
	}
	expected := "ambiguous entity \"App/S\" matches: App/Settings, App/Strings"
	assert.Equal(t, expected, err.Error())
}

func TestEditDeniedError(t *testing.T) {
	err := &EditDeniedError{Target: "App/Strings"}
	assert.Equal(t, "editing App/Strings is not permitted", err.Error())
}

func TestValidationError(t *testing.T) {
	// With field
	err := &ValidationError{Field: "culture", Message: "unknown name \"klingon\""}
	assert.Equal(t, "invalid culture: unknown name \"klingon\"", err.Error())

	// Without field
	err = &ValidationError{Message: "resource key must not be empty"}
	assert.Equal(t, "resource key must not be empty", err.Error())
}

func TestUnsavedError(t *testing.T) {
	// Without hint
	err := &UnsavedError{Target: "App/Strings (de)"}
	assert.Equal(t, "changes to App/Strings (de) were not saved", err.Error())

	// With hint
	err = &UnsavedError{
		Target: "App/Strings (de)",
		Hint:   "Fix the file permissions and run 'locman save'.",
	}
	expected := "changes to App/Strings (de) were not saved\nFix the file permissions and run 'locman save'."
	assert.Equal(t, expected, err.Error())
}

func TestFormatError(t *testing.T) {
	// nil error
	assert.Equal(t, "", FormatError(nil))

	// Simple error
	assert.Equal(t, "error: something went wrong", FormatError(errors.New("something went wrong")))

	// NotFoundError
	err := &NotFoundError{Type: "entity", Name: "App/Missing"}
	assert.Equal(t, "error: entity App/Missing not found", FormatError(err))

	// AmbiguousRefError
	ambErr := &AmbiguousRefError{
		Ref:     "App",
		Matches: []string{"App/Settings", "App/Strings"},
	}
	assert.Equal(t, "error: ambiguous entity \"App\" matches: App/Settings, App/Strings",
		FormatError(ambErr))
}
