package query

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/zen-cli/internal/view"
	"github.com/open-cli-collective/zen-cli/pkg/markup"
)

// NewCmdTag creates the query tag command.
func NewCmdTag() *cobra.Command {
	opts := &docOptions{}

	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Show the tag enclosing a position",
		Example: `  # Which tag encloses offset 42?
  zen query tag --file page.html --at 42

  # Full tag spans as JSON
  zen query tag --file page.html --at 42 -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.fromCommand(cmd)
			return runTag(opts)
		},
	}

	addDocFlags(cmd, opts)
	return cmd
}

func runTag(opts *docOptions) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}
	doc, err := opts.readDocument()
	if err != nil {
		return err
	}

	tag, ok := markup.EnclosingTag(doc, opts.at)
	if !ok {
		return fmt.Errorf("no tag encloses offset %d", opts.at)
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)
	if opts.out != nil {
		renderer.SetWriter(opts.out)
	}

	if opts.output == "json" {
		return renderer.RenderJSON(map[string]interface{}{
			"name":  tag.Name,
			"open":  map[string]int{"start": tag.Open.Start, "end": tag.Open.End},
			"close": map[string]int{"start": tag.Close.Start, "end": tag.Close.End},
		})
	}
	renderer.RenderText(tag.Name)
	return nil
}
