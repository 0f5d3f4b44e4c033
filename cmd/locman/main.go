// Package main is the entry point for the locman CLI.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mlindgren/locman/internal/cli"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "locman",
	Short: "locman - a manager for localizable string tables",
	Long: `locman manages collections of localizable string tables spread across
a workspace tree.

String tables are flat YAML files grouped into entities by project, base
name, and directory; each entity carries one language variant per
culture. locman discovers them, reports what is translated and what is
missing, and edits values through a policy-checked pipeline.

Run 'locman init <project>' to mark a directory as a project, then
'locman list' to see the entities found under the current directory.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.WarnLevel)
		}
	},
	// Show help when no subcommand is provided
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var verbose bool

func init() {
	// Errors are formatted once, in main
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	// Disable the default completion command (completion.go adds our own)
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	// Set version template
	rootCmd.SetVersionTemplate("locman version {{.Version}}\n")
}
