package main

import (
	"fmt"
	"os"

	"github.com/mlindgren/locman/internal/cli"
	"github.com/mlindgren/locman/internal/culture"
	"github.com/mlindgren/locman/internal/manager"
	"github.com/mlindgren/locman/internal/model"
	"github.com/spf13/cobra"
)

var keysCmd = &cobra.Command{
	Use:   "keys [entity]",
	Short: "List table entries",
	Long: `List the flattened table entries of the collection.

With an entity reference, lists only that entity's entries. The value
column shows the primary language value.

Filter flags:
  -k, --key      Substring match on the key (case-insensitive)
  --missing      Show only entries still untranslated somewhere, with
                 the cultures that need a value
  --culture      With --missing, inspect only this culture

Examples:
  locman keys
  locman keys App/Strings
  locman keys --missing --culture de
  locman keys -k greet`,
	Args:              cobra.MaximumNArgs(1),
	RunE:              runKeys,
	ValidArgsFunction: completeEntityRefs,
}

var (
	keysKey     string
	keysMissing bool
	keysCulture string
)

func init() {
	keysCmd.Flags().StringVarP(&keysKey, "key", "k", "", "substring match on the key")
	keysCmd.Flags().BoolVar(&keysMissing, "missing", false, "show only entries missing a translation")
	keysCmd.Flags().StringVar(&keysCulture, "culture", "", "with --missing, inspect only this culture")
	keysCmd.RegisterFlagCompletionFunc("culture", completeCultureNames)
	rootCmd.AddCommand(keysCmd)
}

func runKeys(cmd *cobra.Command, args []string) error {
	m, st, err := openManager()
	if err != nil {
		return err
	}

	filter := manager.EntryFilter{Key: keysKey, Missing: keysMissing}

	if len(args) == 1 {
		e, err := resolveEntity(m, st, args[0])
		if err != nil {
			return err
		}
		ref := model.EntityRef{
			Project:   e.Key.Project,
			BaseName:  e.Key.BaseName,
			Directory: e.Key.Directory,
		}
		filter.Ref = &ref
	}

	if keysCulture != "" {
		c, err := culture.Parse(keysCulture)
		if err != nil {
			return &cli.ValidationError{Field: "culture", Message: err.Error()}
		}
		filter.Culture = &c
	}

	results := m.ListEntries(filter)
	if len(results) == 0 {
		fmt.Println("No entries found.")
		return nil
	}

	table := cli.NewTable()
	table.SetMaxWidth(2, cli.DefaultMaxValueWidth)
	if keysMissing {
		table.AddHeader("ENTITY", "KEY", "VALUE", "MISSING")
	} else {
		table.AddHeader("ENTITY", "KEY", "VALUE")
	}
	for _, r := range results {
		row := []string{
			model.FormatEntityRef(r.Entry.Entity.Key),
			r.Entry.Key,
			displayValue(primaryValue(r.Entry)),
		}
		if keysMissing {
			row = append(row, cli.Red(formatCultures(r.Missing)))
		}
		table.AddRow(row...)
	}
	table.Render(os.Stdout)
	return nil
}
