package main

import (
	"fmt"

	"github.com/mlindgren/locman/internal/storage"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init <project>",
	Short: "Mark a directory as a project",
	Long: `Write a .locman.yaml project marker naming the project.

String-table files in the marked directory and below belong to the named
project, unless a deeper marker overrides it. Files outside any marked
directory belong to no project and are ignored.

Fails if the directory already has a marker.

Examples:
  locman init App
  locman init Backend --dir services/backend`,
	Args: cobra.ExactArgs(1),
	RunE: runInit,
}

var initDir string

func init() {
	initCmd.Flags().StringVar(&initDir, "dir", ".", "directory to mark")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	project := args[0]

	if err := storage.WriteMarker(initDir, project); err != nil {
		return err
	}

	fmt.Printf("Marked %s as project %q\n", initDir, project)
	return nil
}
