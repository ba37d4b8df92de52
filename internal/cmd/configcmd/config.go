// Package configcmd provides config management commands.
package configcmd

import (
	"github.com/spf13/cobra"
)

// NewCmdConfig creates the config command.
func NewCmdConfig() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage zen configuration",
		Long:  `Commands for viewing, checking, and clearing zen configuration.`,
	}

	cmd.AddCommand(NewCmdShow())
	cmd.AddCommand(NewCmdPath())
	cmd.AddCommand(NewCmdCheck())
	cmd.AddCommand(NewCmdClear())

	return cmd
}
