package main

import (
	"fmt"

	"github.com/mlindgren/locman/internal/cli"
	"github.com/mlindgren/locman/internal/culture"
	"github.com/mlindgren/locman/internal/model"
	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set <entity> <key> <culture> [value]",
	Short: "Set a resource value",
	Long: `Set the value of one key in one language variant.

The edit goes through the active edit policy and is written back to the
variant's file before the command exits. The culture must name a variant
the entity already has; use "neutral" for the primary language and
'locman add-language' to create new variants.

With -e/--edit the current value opens in $EDITOR and the saved content
becomes the new value; the value argument must then be omitted.

Examples:
  locman set App/Strings Greeting de "Hallo"
  locman set App/Strings Greeting neutral "Hello"
  locman set App/Strings Greeting de --edit`,
	Args:              cobra.RangeArgs(3, 4),
	RunE:              runSet,
	ValidArgsFunction: completeSetArgs,
}

var setEdit bool

func init() {
	setCmd.Flags().BoolVarP(&setEdit, "edit", "e", false, "edit the value in $EDITOR")
	rootCmd.AddCommand(setCmd)
}

func runSet(cmd *cobra.Command, args []string) error {
	m, st, err := openManager()
	if err != nil {
		return err
	}

	e, err := resolveEntity(m, st, args[0])
	if err != nil {
		return err
	}

	key := args[1]
	entry := e.Entry(key)
	if entry == nil {
		return &cli.NotFoundError{Type: "key", Name: key}
	}

	c, err := culture.Parse(args[2])
	if err != nil {
		return &cli.ValidationError{Field: "culture", Message: err.Error()}
	}
	l := e.Language(c)
	if l == nil {
		return &cli.NotFoundError{Type: "culture", Name: c.String()}
	}

	var value string
	switch {
	case setEdit && len(args) == 4:
		return &cli.ValidationError{Message: "--edit and a value argument are mutually exclusive"}
	case setEdit:
		current, _ := entry.Value(c)
		value, err = cli.EditValue(current)
		if err != nil {
			return err
		}
	case len(args) == 4:
		value = args[3]
	default:
		return &cli.ValidationError{Message: "a value argument or --edit is required"}
	}

	if !m.SetValue(entry, c, value) {
		return &cli.EditDeniedError{Target: model.FormatEntityRef(e.Key)}
	}
	m.Flush()
	if l.Dirty {
		return &cli.UnsavedError{
			Target: fmt.Sprintf("%s (%s)", model.FormatEntityRef(e.Key), c),
			Hint:   "Check that the file is writable and try again.",
		}
	}

	fmt.Printf("Set %s in %s (%s)\n", key, model.FormatEntityRef(e.Key), c)
	return nil
}
