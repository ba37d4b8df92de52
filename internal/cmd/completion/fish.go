package completion

import (
	"github.com/spf13/cobra"
)

// NewCmdFish creates the fish completion command.
func NewCmdFish() *cobra.Command {
	return &cobra.Command{
		Use:   "fish",
		Short: "Generate fish completion script",
		Long: `Generate fish completion script for zen.

To load completions in your current shell session:

  zen completion fish | source

To load completions for every new session:

  zen completion fish > ~/.config/fish/completions/zen.fish`,
		Example: `  # Load in current session
  zen completion fish | source

  # Install permanently
  zen completion fish > ~/.config/fish/completions/zen.fish`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
		},
	}
}
