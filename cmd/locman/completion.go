package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for locman.

To load completions:

Bash:
  $ source <(locman completion bash)
  # To load completions for each session, execute once:
  # Linux:
  $ locman completion bash > /etc/bash_completion.d/locman
  # macOS:
  $ locman completion bash > $(brew --prefix)/etc/bash_completion.d/locman

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc
  # To load completions for each session, execute once:
  $ locman completion zsh > "${fpath[1]}/_locman"
  # You will need to start a new shell for this setup to take effect.

Fish:
  $ locman completion fish | source
  # To load completions for each session, execute once:
  $ locman completion fish > ~/.config/fish/completions/locman.fish
`,
}

var completionBashCmd = &cobra.Command{
	Use:   "bash",
	Short: "Generate bash completion script",
	Long:  "Generate the autocompletion script for bash.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenBashCompletion(os.Stdout)
	},
}

var completionZshCmd = &cobra.Command{
	Use:   "zsh",
	Short: "Generate zsh completion script",
	Long:  "Generate the autocompletion script for zsh.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenZshCompletion(os.Stdout)
	},
}

var completionFishCmd = &cobra.Command{
	Use:   "fish",
	Short: "Generate fish completion script",
	Long:  "Generate the autocompletion script for fish.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenFishCompletion(os.Stdout, true)
	},
}

func init() {
	completionCmd.AddCommand(completionBashCmd)
	completionCmd.AddCommand(completionZshCmd)
	completionCmd.AddCommand(completionFishCmd)
	rootCmd.AddCommand(completionCmd)
}

// completeEntityRefs returns a completion function for entity references.
func completeEntityRefs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	m, st, err := openManager()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	entities := m.Entities()
	var completions []string
	toCompleteLower := strings.ToLower(toComplete)

	for _, e := range entities {
		ref := displayRef(st, entities, e)
		if !strings.HasPrefix(strings.ToLower(ref), toCompleteLower) {
			continue
		}
		desc := fmt.Sprintf("%d keys, %d languages", len(e.Keys()), len(e.Languages()))
		completions = append(completions, ref+"\t"+desc)
	}

	return completions, cobra.ShellCompDirectiveNoFileComp
}

// completeCultureNames returns a completion function for cultures present
// in the loaded collection.
func completeCultureNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	m, _, err := openManager()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var completions []string
	toCompleteLower := strings.ToLower(toComplete)
	for _, c := range m.Cultures() {
		if strings.HasPrefix(strings.ToLower(c.String()), toCompleteLower) {
			completions = append(completions, c.String())
		}
	}

	return completions, cobra.ShellCompDirectiveNoFileComp
}

// completeKnownCultures returns a completion function for every culture the
// catalog knows, whether or not the collection uses it yet.
func completeKnownCultures(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	m, _, err := openManager()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var completions []string
	toCompleteLower := strings.ToLower(toComplete)
	for _, c := range m.SpecificCultures() {
		if strings.HasPrefix(strings.ToLower(c.String()), toCompleteLower) {
			completions = append(completions, c.String())
		}
	}

	return completions, cobra.ShellCompDirectiveNoFileComp
}

// completeSetArgs completes entity references for the first argument and
// cultures for the third.
func completeSetArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	switch len(args) {
	case 0:
		return completeEntityRefs(cmd, args, toComplete)
	case 2:
		return completeCultureNames(cmd, args, toComplete)
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}
