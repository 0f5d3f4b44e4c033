package main

import (
	"fmt"

	"github.com/mlindgren/locman/internal/model"
	"github.com/spf13/cobra"
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Write unsaved changes to disk",
	Long: `Write every language file with unsaved changes back to disk.

Edits made through locman are written as they happen, so this normally
reports nothing to do. It exists to retry writes that previously
failed, for example after fixing file permissions.`,
	Args: cobra.NoArgs,
	RunE: runSave,
}

func init() {
	rootCmd.AddCommand(saveCmd)
}

func runSave(cmd *cobra.Command, args []string) error {
	m, _, err := openManager()
	if err != nil {
		return err
	}

	saved := 0
	m.OnLanguageSaved = func(e *model.Entity, l *model.Language) {
		saved++
	}
	if err := m.Save(); err != nil {
		return err
	}

	if saved == 0 {
		fmt.Println("Nothing to save.")
		return nil
	}
	fmt.Printf("Saved %d language file(s)\n", saved)
	return nil
}
