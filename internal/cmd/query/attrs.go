package query

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/zen-cli/internal/view"
	"github.com/open-cli-collective/zen-cli/pkg/markup"
)

// NewCmdAttrs creates the query attrs command.
func NewCmdAttrs() *cobra.Command {
	opts := &docOptions{}

	cmd := &cobra.Command{
		Use:   "attrs",
		Short: "List attribute completions inside an open tag",
		Example: `  # Position sits inside "<input |": list input attributes
  zen query attrs --file form.html --at 7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.fromCommand(cmd)
			return runAttrs(opts)
		},
	}

	addDocFlags(cmd, opts)
	return cmd
}

func runAttrs(opts *docOptions) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}
	doc, err := opts.readDocument()
	if err != nil {
		return err
	}

	tag, ok := markup.OpenTagAt(doc, opts.at)
	if !ok {
		return fmt.Errorf("offset %d is not inside an open tag", opts.at)
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)
	if opts.out != nil {
		renderer.SetWriter(opts.out)
	}

	attrs := markup.AttributesFor(tag)
	if opts.output == "json" {
		return renderer.RenderJSON(map[string]interface{}{"tag": tag, "attributes": attrs})
	}
	for _, attr := range attrs {
		renderer.RenderText(attr)
	}
	return nil
}
