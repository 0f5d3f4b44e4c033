package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot <file>",
	Short: "Capture every value into a snapshot file",
	Long: `Capture the current value of every key in every entity into a
snapshot file.

The snapshot can later be applied with restore, including against a
collection that has changed shape in the meantime: values whose entity,
key, or language no longer exists are skipped.

Examples:
  locman snapshot before-import.json`,
	Args: cobra.ExactArgs(1),
	RunE: runSnapshot,
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	m, _, err := openManager()
	if err != nil {
		return err
	}

	blob, err := m.CreateSnapshot()
	if err != nil {
		return err
	}
	if err := os.WriteFile(args[0], []byte(blob), 0644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	fmt.Printf("Snapshot of %d entities written to %s\n", len(m.Entities()), args[0])
	return nil
}
