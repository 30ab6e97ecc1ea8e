package cli

import (
	"github.com/spf13/cobra"
)

// completionCommand prints a shell completion script for the radialmap
// command tree, covering the render, layout, view and serve subcommands.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for radialmap.

To load completions:

Bash:
  $ source <(radialmap completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ radialmap completion bash > /etc/bash_completion.d/radialmap
  # macOS:
  $ radialmap completion bash > $(brew --prefix)/etc/bash_completion.d/radialmap

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ radialmap completion zsh > "${fpath[1]}/_radialmap"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ radialmap completion fish | source

  # To load completions for each session, execute once:
  $ radialmap completion fish > ~/.config/fish/completions/radialmap.fish

PowerShell:
  PS> radialmap completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> radialmap completion powershell > radialmap.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, out := cmd.Root(), cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(out, true)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			default:
				return root.GenPowerShellCompletionWithDesc(out)
			}
		},
	}
	return cmd
}
