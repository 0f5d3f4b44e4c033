package main

import (
	"fmt"
	"os"

	"github.com/mlindgren/locman/internal/model"
	"github.com/spf13/cobra"
)

var restoreCmd = &cobra.Command{
	Use:   "restore <file>",
	Short: "Apply a snapshot file to the collection",
	Long: `Apply a snapshot taken earlier with the snapshot command.

Every captured value is written back onto the matching entity, key, and
language. Captures that no longer resolve, because the entity or key
was removed since, are skipped. Languages whose values change are
written to disk.

Examples:
  locman restore before-import.json`,
	Args: cobra.ExactArgs(1),
	RunE: runRestore,
}

func init() {
	rootCmd.AddCommand(restoreCmd)
}

func runRestore(cmd *cobra.Command, args []string) error {
	m, _, err := openManager()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read snapshot: %w", err)
	}

	restored := 0
	m.OnLanguageSaved = func(e *model.Entity, l *model.Language) {
		restored++
	}
	if err := m.LoadSnapshot(string(data)); err != nil {
		return err
	}
	if err := m.Save(); err != nil {
		return err
	}

	if restored == 0 {
		fmt.Println("Collection already matches the snapshot.")
		return nil
	}
	fmt.Printf("Restored %d language file(s) from %s\n", restored, args[0])
	return nil
}
