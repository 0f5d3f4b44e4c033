package main

import (
	"fmt"
	"os"

	"github.com/mlindgren/locman/internal/cli"
	"github.com/mlindgren/locman/internal/manager"
	"github.com/mlindgren/locman/internal/model"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List resource entities",
	Long: `List the resource entities found in the workspace.

An entity is one logical string table: every language variant sharing a
project, base name, and directory. The table shows each entity's
reference, its directory, how many language variants and keys it has,
and a * marker when it carries unsaved changes.

Filter flags:
  -p, --project  Limit to one project (exact name, case-insensitive)
  --dirty        Show only entities with unsaved changes

Entities are sorted by project, base name, and directory.`,
	RunE: runList,
}

var (
	listProject string
	listDirty   bool
)

func init() {
	listCmd.Flags().StringVarP(&listProject, "project", "p", "", "filter by project name")
	listCmd.Flags().BoolVar(&listDirty, "dirty", false, "show only entities with unsaved changes")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	m, st, err := openManager()
	if err != nil {
		return err
	}

	entities := m.ListEntities(manager.EntityFilter{
		Project: listProject,
		Dirty:   listDirty,
	})
	if len(entities) == 0 {
		fmt.Println("No entities found.")
		return nil
	}

	table := cli.NewTable()
	table.AddHeader("ENTITY", "DIRECTORY", "LANGS", "KEYS", "")
	for _, e := range entities {
		table.AddRow(
			model.FormatEntityRef(e.Key),
			relDir(st.Root(), e.Key.Directory),
			fmt.Sprintf("%d", len(e.Languages())),
			fmt.Sprintf("%d", len(e.Keys())),
			dirtyMark(e),
		)
	}
	table.Render(os.Stdout)
	return nil
}

// dirtyMark renders the unsaved-changes marker for an entity.
func dirtyMark(e *model.Entity) string {
	if e.HasChanges() {
		return cli.Yellow("*")
	}
	return ""
}
