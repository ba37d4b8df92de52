package query

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/zen-cli/internal/view"
	"github.com/open-cli-collective/zen-cli/pkg/markup"
)

// NewCmdTarget creates the query wrap-target command.
func NewCmdTarget() *cobra.Command {
	opts := &docOptions{}
	var selEnd int

	cmd := &cobra.Command{
		Use:   "wrap-target",
		Short: "Show the span a wrap operation would enclose",
		Long: `Show what a wrap at the given position would enclose: the selection
when --end differs from --at, otherwise the trimmed line under the
position.`,
		Example: `  # Span for a caret on line three
  zen query wrap-target --file page.html --at 57

  # Span for an explicit selection
  zen query wrap-target --file page.html --at 57 --end 90`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.fromCommand(cmd)
			if !cmd.Flags().Changed("end") {
				selEnd = opts.at
			}
			return runTarget(opts, selEnd)
		},
	}

	addDocFlags(cmd, opts)
	cmd.Flags().IntVar(&selEnd, "end", 0, "Selection end offset (defaults to --at)")
	return cmd
}

func runTarget(opts *docOptions, selEnd int) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}
	doc, err := opts.readDocument()
	if err != nil {
		return err
	}

	target, ok := markup.WrapTarget(doc, opts.at, selEnd)
	if !ok {
		return fmt.Errorf("nothing to wrap at offset %d", opts.at)
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)
	if opts.out != nil {
		renderer.SetWriter(opts.out)
	}

	if opts.output == "json" {
		return renderer.RenderJSON(map[string]interface{}{
			"start": target.Start,
			"end":   target.End,
			"text":  doc[target.Start:target.End],
		})
	}
	renderer.RenderText(fmt.Sprintf("%d-%d: %s", target.Start, target.End, doc[target.Start:target.End]))
	return nil
}
