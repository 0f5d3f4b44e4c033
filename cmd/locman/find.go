package main

import (
	"fmt"
	"os"

	"github.com/mlindgren/locman/internal/cli"
	"github.com/mlindgren/locman/internal/model"
	"github.com/spf13/cobra"
)

var findCmd = &cobra.Command{
	Use:   "find <query>",
	Short: "Search keys and values",
	Long: `Search the whole collection by keyword.

The query is matched case-insensitively against entry keys and against
the values of every language. The value column shows the primary
language value of each hit.

Examples:
  locman find welcome
  locman find "Guten Tag"`,
	Args: cobra.ExactArgs(1),
	RunE: runFind,
}

func init() {
	rootCmd.AddCommand(findCmd)
}

func runFind(cmd *cobra.Command, args []string) error {
	m, _, err := openManager()
	if err != nil {
		return err
	}

	results := m.FindEntries(args[0])
	if len(results) == 0 {
		fmt.Printf("No results found for %q\n", args[0])
		return nil
	}

	table := cli.NewTable()
	table.SetMaxWidth(2, cli.DefaultMaxValueWidth)
	table.AddHeader("ENTITY", "KEY", "VALUE")
	for _, entry := range results {
		table.AddRow(
			model.FormatEntityRef(entry.Entity.Key),
			entry.Key,
			displayValue(primaryValue(entry)),
		)
	}
	table.Render(os.Stdout)
	return nil
}
