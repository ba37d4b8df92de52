// Package root provides the root command for the zen CLI.
package root

import (
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/zen-cli/internal/cmd/completion"
	"github.com/open-cli-collective/zen-cli/internal/cmd/configcmd"
	"github.com/open-cli-collective/zen-cli/internal/cmd/expand"
	initcmd "github.com/open-cli-collective/zen-cli/internal/cmd/init"
	"github.com/open-cli-collective/zen-cli/internal/cmd/interactive"
	"github.com/open-cli-collective/zen-cli/internal/cmd/query"
	"github.com/open-cli-collective/zen-cli/internal/cmd/snippets"
	"github.com/open-cli-collective/zen-cli/internal/cmd/wrap"
	"github.com/open-cli-collective/zen-cli/internal/version"
)

// NewCmdRoot creates the root command for zen.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zen",
		Short: "Expand zen-coding abbreviations into markup",
		Long: `zen expands terse zen-coding abbreviations like "ul>li*3" into
indented HTML or XML, wraps existing content in expanded markup, and
answers structural questions about markup documents.

Get started by running: zen expand "ul>li*3"`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
	}

	// Global flags
	cmd.PersistentFlags().StringP("config", "c", "", "config file (default: ~/.config/zen/config.yml)")
	cmd.PersistentFlags().StringP("output", "o", "table", "output format: table, json, plain")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	// Set version template
	cmd.SetVersionTemplate("zen version {{.Version}} (commit: " + version.Commit + ", built: " + version.Date + ")\n")

	// Subcommands
	cmd.AddCommand(initcmd.NewCmdInit())
	cmd.AddCommand(expand.NewCmdExpand())
	cmd.AddCommand(wrap.NewCmdWrap())
	cmd.AddCommand(query.NewCmdQuery())
	cmd.AddCommand(snippets.NewCmdSnippets())
	cmd.AddCommand(interactive.NewCmdInteractive())
	cmd.AddCommand(configcmd.NewCmdConfig())
	cmd.AddCommand(completion.NewCmdCompletion())

	return cmd
}
