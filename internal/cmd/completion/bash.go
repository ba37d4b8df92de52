package completion

import (
	"github.com/spf13/cobra"
)

// NewCmdBash creates the bash completion command.
func NewCmdBash() *cobra.Command {
	return &cobra.Command{
		Use:   "bash",
		Short: "Generate bash completion script",
		Long: `Generate bash completion script for zen.

To load completions in your current shell session:

  source <(zen completion bash)

To load completions for every new session:

  # Linux
  zen completion bash > /etc/bash_completion.d/zen

  # macOS (requires bash-completion)
  zen completion bash > $(brew --prefix)/etc/bash_completion.d/zen`,
		Example: `  # Load in current session
  source <(zen completion bash)

  # Install permanently (Linux)
  zen completion bash | sudo tee /etc/bash_completion.d/zen > /dev/null

  # Install permanently (macOS with Homebrew)
  zen completion bash > $(brew --prefix)/etc/bash_completion.d/zen`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
		},
	}
}
