package cli

import (
	"strings"

	"github.com/spf13/cobra"

	cio "github.com/matzehuels/curricula/pkg/io"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for curricula.

Completions cover:
  metrics, schedule, report, graph, export   catalog files (*.csv, *.json)
  --plan                                     plan names read from the catalog
  report --format                            markdown, html, pdf, json, csv
  graph --format                             dot, svg, pdf, png
  config get|set|unset                       configuration keys

Bash:
  $ source <(curricula completion bash)
  $ curricula completion bash > /etc/bash_completion.d/curricula

Zsh (needs "autoload -U compinit; compinit" in ~/.zshrc):
  $ curricula completion zsh > "${fpath[1]}/_curricula"

Fish:
  $ curricula completion fish > ~/.config/fish/completions/curricula.fish

PowerShell:
  PS> curricula completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(c.Out)
			case "zsh":
				return cmd.Root().GenZshCompletion(c.Out)
			case "fish":
				return cmd.Root().GenFishCompletion(c.Out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(c.Out)
			}
			return nil
		},
	}

	return cmd
}

// completeCatalog offers catalog files for the single catalog argument.
func completeCatalog(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return []string{"csv", "json"}, cobra.ShellCompDirectiveFilterFileExt
}

// completePlans offers the plan names of the catalog already on the command
// line. Unreadable catalogs complete nothing.
func completePlans(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	school, err := cio.LoadCatalog(args[0])
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var names []string
	for _, p := range school.Plans {
		if strings.HasPrefix(p.Name, toComplete) {
			names = append(names, p.Name)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// completeValues offers a fixed list of flag values.
func completeValues(values ...string) cobra.CompletionFunc {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}
