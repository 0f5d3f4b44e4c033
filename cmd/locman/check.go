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

var checkCmd = &cobra.Command{
	Use:   "check [culture...]",
	Short: "Check the collection for consistency problems",
	Long: `Check every entity for consistency problems.

Checks for:
- Values that still need a translation in some language
- Keys that exist in a translation but not in the primary language

With culture name arguments, the names are checked against the culture
catalog instead and the canonical form of each is printed.

Examples:
  locman check
  locman check de-de fr en-GB`,
	RunE:              runCheck,
	ValidArgsFunction: completeKnownCultures,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	m, _, err := openManager()
	if err != nil {
		return err
	}

	if len(args) > 0 {
		return runCheckCultures(m, args)
	}

	findings := m.RunCheck()
	if len(findings) == 0 {
		fmt.Println(cli.Green("No issues found."))
		return nil
	}

	fmt.Printf("Found %d issue(s):\n\n", len(findings))
	for _, f := range findings {
		fmt.Printf("%s %s %s: %s\n", model.FormatEntityRef(f.Entity), formatFindingKind(f.Kind), f.Key, f.Message)
	}

	// Exit with error code if there are issues
	os.Exit(1)
	return nil
}

func runCheckCultures(m *manager.Manager, names []string) error {
	unknown := 0
	for _, name := range names {
		if !m.IsValidLanguageName(name) {
			fmt.Printf("%s: %s\n", name, cli.Red("unknown"))
			unknown++
			continue
		}
		c, _ := culture.Parse(name)
		fmt.Printf("%s: %s\n", name, cli.Green(c.String()))
	}
	if unknown > 0 {
		return fmt.Errorf("%d unknown culture name(s)", unknown)
	}
	return nil
}

func formatFindingKind(k manager.FindingKind) string {
	switch k {
	case manager.FindingMissingValue:
		return cli.Red("[missing]")
	case manager.FindingOrphanKey:
		return cli.Yellow("[orphan]")
	default:
		return fmt.Sprintf("[%s]", k)
	}
}
