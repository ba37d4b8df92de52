package configcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/zen-cli/internal/config"
)

// NewCmdPath creates the config path command.
func NewCmdPath() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Example: `  # Open the config in your editor
  $EDITOR $(zen config path)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			if configPath == "" {
				configPath = config.DefaultConfigPath()
			}
			fmt.Fprintln(cmd.OutOrStdout(), configPath)
			return nil
		},
	}
}
