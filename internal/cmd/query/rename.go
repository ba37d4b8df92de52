package query

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/zen-cli/internal/view"
	"github.com/open-cli-collective/zen-cli/pkg/markup"
)

// NewCmdRename creates the query rename command.
func NewCmdRename() *cobra.Command {
	opts := &docOptions{}

	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Show the name ranges of the enclosing tag pair",
		Long: `Show the byte ranges of the tag name in both the open and close tag
around a position. Editors use these for linked rename: one edit applied
at every range keeps the pair consistent.`,
		Example: `  zen query rename --file page.html --at 42`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.fromCommand(cmd)
			return runRename(opts)
		},
	}

	addDocFlags(cmd, opts)
	return cmd
}

func runRename(opts *docOptions) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}
	doc, err := opts.readDocument()
	if err != nil {
		return err
	}

	ranges := markup.TagNameRanges(doc, opts.at)
	if len(ranges) == 0 {
		return fmt.Errorf("no tag encloses offset %d", opts.at)
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)
	if opts.out != nil {
		renderer.SetWriter(opts.out)
	}

	rows := make([][]string, 0, len(ranges))
	for _, r := range ranges {
		rows = append(rows, []string{
			fmt.Sprintf("%d", r.Start),
			fmt.Sprintf("%d", r.End),
			doc[r.Start:r.End],
		})
	}
	renderer.RenderTable([]string{"START", "END", "NAME"}, rows)
	return nil
}
