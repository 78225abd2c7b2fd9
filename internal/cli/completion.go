package cli

import (
	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Write a completion script for the given shell to stdout.

  source <(lpda completion bash)
  lpda completion zsh > "${fpath[1]}/_lpda"
  lpda completion fish > ~/.config/fish/completions/lpda.fish
  lpda completion powershell | Out-String | Invoke-Expression`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(c.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(c.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(c.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(c.Stdout)
			}
			return nil
		},
	}

	return cmd
}
