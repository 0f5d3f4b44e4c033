package main

import (
	"fmt"

	"github.com/mlindgren/locman/internal/cli"
	"github.com/mlindgren/locman/internal/manager"
	"github.com/mlindgren/locman/internal/model"
	"github.com/spf13/cobra"
)

var addKeyCmd = &cobra.Command{
	Use:   "add-key <entity> <key>",
	Short: "Add a key to an entity",
	Long: `Add a new key to an entity.

The key is created with an empty value in the primary language, so it
shows up as untranslated everywhere until values are set. The edit goes
through the active edit policy.

Adding a key that already exists changes nothing.

Examples:
  locman add-key App/Strings WelcomeMessage`,
	Args:              cobra.ExactArgs(2),
	RunE:              runAddKey,
	ValidArgsFunction: completeEntityRefs,
}

func init() {
	rootCmd.AddCommand(addKeyCmd)
}

func runAddKey(cmd *cobra.Command, args []string) error {
	m, st, err := openManager()
	if err != nil {
		return err
	}

	e, err := resolveEntity(m, st, args[0])
	if err != nil {
		return err
	}

	key := args[1]
	if err := manager.ValidateKey(key); err != nil {
		return &cli.ValidationError{Field: "key", Message: err.Error()}
	}
	if e.Entry(key) != nil {
		fmt.Printf("Key %q already exists in %s\n", key, model.FormatEntityRef(e.Key))
		return nil
	}

	entry := m.AddNewKey(e, key)
	if entry == nil {
		return &cli.EditDeniedError{Target: model.FormatEntityRef(e.Key)}
	}
	m.Flush()
	if l := e.NeutralLanguage(); l != nil && l.Dirty {
		return &cli.UnsavedError{
			Target: model.FormatEntityRef(e.Key),
			Hint:   "Check that the file is writable and try again.",
		}
	}

	fmt.Printf("Added key %q to %s\n", key, model.FormatEntityRef(e.Key))
	return nil
}
