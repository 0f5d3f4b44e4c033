package main

import (
	"fmt"
	"os"

	"github.com/mlindgren/locman/internal/cli"
	"github.com/mlindgren/locman/internal/model"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <entity>",
	Short: "Show entity details",
	Long: `Show one entity with its full key-by-culture value grid.

The entity reference is project/baseName, optionally @directory when two
entities share the short form. Unique prefixes are accepted.

Absent values render as a dash; a value that exists but is empty renders
as an empty cell.`,
	Args:              cobra.ExactArgs(1),
	RunE:              runShow,
	ValidArgsFunction: completeEntityRefs,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	m, st, err := openManager()
	if err != nil {
		return err
	}

	e, err := resolveEntity(m, st, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", model.FormatEntityRef(e.Key))
	fmt.Printf("Project:    %s\n", e.Key.Project)
	fmt.Printf("Base name:  %s\n", e.Key.BaseName)
	fmt.Printf("Directory:  %s\n", relDir(st.Root(), e.Key.Directory))
	fmt.Printf("Languages:  %s\n", formatCultures(e.Cultures()))
	fmt.Printf("Keys:       %d\n", len(e.Keys()))
	fmt.Printf("Unsaved:    %s\n", boolToYesNo(e.HasChanges()))

	if len(e.Keys()) == 0 {
		return nil
	}

	fmt.Println()
	cultures := e.Cultures()
	table := cli.NewTable()
	header := []string{"KEY"}
	for i, c := range cultures {
		header = append(header, c.String())
		table.SetMaxWidth(i+1, cli.DefaultMaxValueWidth)
	}
	table.AddHeader(header...)

	for _, entry := range e.Entries() {
		row := []string{entry.Key}
		for _, c := range cultures {
			if v, ok := entry.Value(c); ok {
				row = append(row, displayValue(v))
			} else {
				row = append(row, cli.Gray("-"))
			}
		}
		table.AddRow(row...)
	}
	table.Render(os.Stdout)
	return nil
}
