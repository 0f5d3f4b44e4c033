package main

import (
	"fmt"

	"github.com/mlindgren/locman/internal/cli"
	"github.com/mlindgren/locman/internal/culture"
	"github.com/spf13/cobra"
)

var addLanguageCmd = &cobra.Command{
	Use:   "add-language <culture>",
	Short: "Add a language to every entity",
	Long: `Add a language variant to every entity in the collection.

Each entity that does not yet have the culture gets a new, empty
language file next to its existing ones. Entities that already have the
culture are left alone. The culture must be one the catalog knows.

Creating files requires auto_create_languages to be enabled in
.locmanconfig.yaml (it is by default).

Examples:
  locman add-language fr
  locman add-language de-AT`,
	Args:              cobra.ExactArgs(1),
	RunE:              runAddLanguage,
	ValidArgsFunction: completeKnownCultures,
}

func init() {
	rootCmd.AddCommand(addLanguageCmd)
}

func runAddLanguage(cmd *cobra.Command, args []string) error {
	m, st, err := openManager()
	if err != nil {
		return err
	}

	name := args[0]
	if !m.IsValidLanguageName(name) {
		return &cli.ValidationError{Field: "culture", Message: fmt.Sprintf("unknown name %q", name)}
	}
	c, err := culture.Parse(name)
	if err != nil {
		return &cli.ValidationError{Field: "culture", Message: err.Error()}
	}

	if !st.Config().AutoCreateLanguageFiles() {
		return fmt.Errorf("auto_create_languages is disabled in .locmanconfig.yaml")
	}

	created := m.LanguageAdded(c)
	if created == 0 {
		fmt.Printf("All entities already have %s\n", c)
		return nil
	}
	m.Flush()

	failed := 0
	for _, e := range m.Entities() {
		if l := e.Language(c); l != nil && l.Dirty {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d language files could not be written", failed, created)
	}

	noun := "files"
	if created == 1 {
		noun = "file"
	}
	fmt.Printf("Created %d %s for %s\n", created, noun, c)
	return nil
}
