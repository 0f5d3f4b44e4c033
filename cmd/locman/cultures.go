package main

import (
	"fmt"
	"os"

	"github.com/mlindgren/locman/internal/cli"
	"github.com/spf13/cobra"
)

var culturesCmd = &cobra.Command{
	Use:   "cultures",
	Short: "List cultures in the workspace",
	Long: `List the culture keys observed across the workspace, in the order
they were first seen, with the number of entities carrying each one.

With --known, lists the catalog of culture names locman accepts
instead.`,
	RunE: runCultures,
}

var culturesKnown bool

func init() {
	culturesCmd.Flags().BoolVar(&culturesKnown, "known", false, "list the catalog of accepted culture names")
	rootCmd.AddCommand(culturesCmd)
}

func runCultures(cmd *cobra.Command, args []string) error {
	m, _, err := openManager()
	if err != nil {
		return err
	}

	if culturesKnown {
		for _, c := range m.SpecificCultures() {
			fmt.Println(string(c))
		}
		return nil
	}

	keys := m.Cultures()
	if len(keys) == 0 {
		fmt.Println("No cultures found.")
		return nil
	}

	entities := m.Entities()
	table := cli.NewTable()
	table.AddHeader("CULTURE", "ENTITIES")
	for _, c := range keys {
		count := 0
		for _, e := range entities {
			if e.Language(c) != nil {
				count++
			}
		}
		table.AddRow(c.String(), fmt.Sprintf("%d", count))
	}
	table.Render(os.Stdout)
	return nil
}
