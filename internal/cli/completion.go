package cli

import (
	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for forcelayout.

Graph arguments complete to .json files, --config to .toml files and the
render output to .svg or .dot.

Bash:
  $ source <(forcelayout completion bash)

Zsh:
  $ forcelayout completion zsh > "${fpath[1]}/_forcelayout"

Fish:
  $ forcelayout completion fish > ~/.config/fish/completions/forcelayout.fish

PowerShell:
  PS> forcelayout completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}

	return cmd
}

// completeGraphFile completes the single graph.json argument of layout,
// render and watch.
func completeGraphFile(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return []string{"json"}, cobra.ShellCompDirectiveFilterFileExt
}

// markFileFlag restricts completion of a file flag to the given extensions.
// Commands that do not define the flag are left alone.
func markFileFlag(cmd *cobra.Command, name string, exts ...string) {
	if cmd.Flags().Lookup(name) == nil {
		return
	}
	_ = cmd.MarkFlagFilename(name, exts...)
}

// registerSimCompletions wires completion for the shared simulation flags.
func registerSimCompletions(cmd *cobra.Command) {
	markFileFlag(cmd, "config", "toml")
	if cmd.Flags().Lookup("dimensions") != nil {
		_ = cmd.RegisterFlagCompletionFunc("dimensions",
			cobra.FixedCompletions([]string{"2", "3"}, cobra.ShellCompDirectiveNoFileComp))
	}
}
