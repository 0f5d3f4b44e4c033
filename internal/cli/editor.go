package cli

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// EditValue opens value in the user's editor and returns the edited text.
// The value is staged in a temporary .txt file. Editors habitually append a
// trailing newline on save; a single one is stripped so one-line values stay
// one line. Returns an error if neither VISUAL nor EDITOR is set or the
// editor exits non-zero.
func EditValue(value string) (string, error) {
	editor := editorCommand()
	if editor == "" {
		return "", fmt.Errorf("EDITOR not set. Set it or pass the value as an argument")
	}

	tmpFile, err := os.CreateTemp("", "locman-*.txt")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpFile.WriteString(value); err != nil {
		tmpFile.Close()
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := invokeEditor(editor, tmpPath); err != nil {
		return "", err
	}

	edited, err := os.ReadFile(tmpPath)
	if err != nil {
		return "", fmt.Errorf("failed to read edited file: %w", err)
	}

	return strings.TrimSuffix(string(edited), "\n"), nil
}

// editorCommand returns the editor command from the environment.
// VISUAL takes precedence over EDITOR.
func editorCommand() string {
	if editor := os.Getenv("VISUAL"); editor != "" {
		return editor
	}
	return os.Getenv("EDITOR")
}

// invokeEditor executes the editor with the given file path attached to the
// current terminal. The editor value may carry arguments ("code --wait").
func invokeEditor(editor, path string) error {
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("empty editor command")
	}

	args := append(parts[1:], path)
	cmd := exec.Command(parts[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return fmt.Errorf("editor exited with status %d", exitErr.ExitCode())
		}
		return fmt.Errorf("failed to run editor: %w", err)
	}

	return nil
}
