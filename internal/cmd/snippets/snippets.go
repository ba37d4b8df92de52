// Package snippets provides the snippets command for listing the
// effective dictionary.
package snippets

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/zen-cli/internal/cmd/expand"
	"github.com/open-cli-collective/zen-cli/internal/view"
	"github.com/open-cli-collective/zen-cli/pkg/abbr"
)

type snippetsOptions struct {
	userOnly bool

	configPath string
	output     string
	noColor    bool
	out        io.Writer // test override
}

// NewCmdSnippets creates the snippets command.
func NewCmdSnippets() *cobra.Command {
	opts := &snippetsOptions{}

	cmd := &cobra.Command{
		Use:   "snippets",
		Short: "List the effective snippet dictionary",
		Long: `List every snippet the engine knows: built-in element and alias
snippets plus user snippets from the configuration file. A user snippet
with a built-in name shadows the built-in.`,
		Example: `  # Everything
  zen snippets

  # Only snippets from your config
  zen snippets --user

  # As JSON for tooling
  zen snippets -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.configPath, _ = cmd.Flags().GetString("config")
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			return runSnippets(opts, nil)
		},
	}

	cmd.Flags().BoolVar(&opts.userOnly, "user", false, "Only list snippets from the configuration file")

	return cmd
}

func runSnippets(opts *snippetsOptions, engine *abbr.Engine) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}

	if engine == nil {
		var err error
		engine, err = expand.LoadEngine(opts.configPath)
		if err != nil {
			return err
		}
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)
	if opts.out != nil {
		renderer.SetWriter(opts.out)
	}

	headers := []string{"NAME", "SOURCE", "BODY"}
	var rows [][]string
	for _, entry := range engine.Dictionary().Entries() {
		if opts.userOnly && entry.Source != "user" {
			continue
		}
		body := entry.Body
		if body == "" {
			body = "-"
		}
		rows = append(rows, []string{entry.Name, entry.Source, view.Truncate(body, 50)})
	}

	if len(rows) == 0 {
		renderer.RenderText("No snippets configured.")
		return nil
	}
	renderer.RenderTable(headers, rows)
	return nil
}
