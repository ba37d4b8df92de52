package query

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/zen-cli/internal/view"
	"github.com/open-cli-collective/zen-cli/pkg/markup"
)

// NewCmdValues creates the query values command.
func NewCmdValues() *cobra.Command {
	opts := &docOptions{}

	cmd := &cobra.Command{
		Use:   "values",
		Short: "List value completions inside an attribute value",
		Example: `  # Position sits inside type="|": list input types
  zen query values --file form.html --at 13`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.fromCommand(cmd)
			return runValues(opts)
		},
	}

	addDocFlags(cmd, opts)
	return cmd
}

func runValues(opts *docOptions) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}
	doc, err := opts.readDocument()
	if err != nil {
		return err
	}

	tag, attr, ok := markup.AttributeContext(doc, opts.at)
	if !ok {
		return fmt.Errorf("offset %d is not inside an attribute value", opts.at)
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)
	if opts.out != nil {
		renderer.SetWriter(opts.out)
	}

	values := markup.ValuesFor(attr)
	if opts.output == "json" {
		return renderer.RenderJSON(map[string]interface{}{
			"tag": tag, "attribute": attr, "values": values,
		})
	}
	if len(values) == 0 {
		return fmt.Errorf("attribute %q takes free-form values", attr)
	}
	for _, v := range values {
		renderer.RenderText(v)
	}
	return nil
}
