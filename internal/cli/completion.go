package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// completionCommand generates shell completion scripts.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a completion script for the given shell.

Load it for the current session:

  source <(profilegen completion bash)
  profilegen completion fish | source

Or install it permanently, for example:

  profilegen completion bash > /etc/bash_completion.d/profilegen
  profilegen completion zsh > "${fpath[1]}/_profilegen"
  profilegen completion fish > ~/.config/fish/completions/profilegen.fish
  profilegen completion powershell > profilegen.ps1  # then dot-source it
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
}
