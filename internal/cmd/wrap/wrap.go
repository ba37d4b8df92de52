// Package wrap provides the wrap command: expanding an abbreviation around
// existing content.
package wrap

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/zen-cli/internal/cmd/expand"
	"github.com/open-cli-collective/zen-cli/internal/view"
	"github.com/open-cli-collective/zen-cli/pkg/abbr"
	"github.com/open-cli-collective/zen-cli/pkg/markup"
	"github.com/open-cli-collective/zen-cli/pkg/mdconv"
)

type wrapOptions struct {
	abbreviation string
	file         string
	profile      string
	markdown     bool
	selStart     int
	selEnd       int

	configPath string
	output     string
	noColor    bool
	in         io.Reader // test override
	out        io.Writer // test override
}

// NewCmdWrap creates the wrap command.
func NewCmdWrap() *cobra.Command {
	opts := &wrapOptions{}

	cmd := &cobra.Command{
		Use:   "wrap <abbreviation>",
		Short: "Wrap content with an expanded abbreviation",
		Long: `Expand an abbreviation and place existing content inside its deepest
element. Content is read from stdin or from a file.

With --start and --end the content is treated as a document: only the
selected span is wrapped and the rest is passed through unchanged. A
zero-width selection wraps the trimmed line under it.`,
		Example: `  # Wrap a line of text in a link
  echo "Read the docs" | zen wrap "a[href=/docs]"

  # Wrap each line of a file in a list item
  zen wrap "ul>li" --file items.txt

  # Wrap a span inside a document
  zen wrap "strong" --file page.html --start 120 --end 135

  # Convert markdown content to HTML before wrapping
  echo "some *emphasis*" | zen wrap "blockquote" --markdown`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.abbreviation = args[0]
			opts.configPath, _ = cmd.Flags().GetString("config")
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			return runWrap(opts, nil)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Read content from a file instead of stdin")
	cmd.Flags().StringVarP(&opts.profile, "profile", "p", "", "Output profile: html, xhtml, xml, or a configured profile")
	cmd.Flags().BoolVar(&opts.markdown, "markdown", false, "Convert content from markdown to HTML before wrapping")
	cmd.Flags().IntVar(&opts.selStart, "start", -1, "Selection start offset within the content")
	cmd.Flags().IntVar(&opts.selEnd, "end", -1, "Selection end offset within the content")

	return cmd
}

func runWrap(opts *wrapOptions, engine *abbr.Engine) error {
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

	content, err := readContent(opts)
	if err != nil {
		return err
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)
	if opts.out != nil {
		renderer.SetWriter(opts.out)
	}

	// Selection mode: wrap a span of the document, keep the rest.
	if opts.selStart >= 0 || opts.selEnd >= 0 {
		if opts.selStart < 0 || opts.selEnd < 0 {
			return fmt.Errorf("--start and --end must be given together")
		}
		target, ok := markup.WrapTarget(content, opts.selStart, opts.selEnd)
		if !ok {
			return fmt.Errorf("nothing to wrap at %d-%d", opts.selStart, opts.selEnd)
		}
		body, err := wrapBody(opts, content[target.Start:target.End])
		if err != nil {
			return err
		}
		res, err := engine.Wrap(opts.abbreviation, body, opts.profile)
		if err != nil {
			return err
		}
		renderer.RenderText(content[:target.Start] + res.Text + content[target.End:])
		return nil
	}

	body, err := wrapBody(opts, content)
	if err != nil {
		return err
	}
	res, err := engine.Wrap(opts.abbreviation, body, opts.profile)
	if err != nil {
		return err
	}
	return renderer.RenderExpansion(res, false)
}

// wrapBody applies the optional markdown conversion to the content that
// will be enclosed.
func wrapBody(opts *wrapOptions, body string) (string, error) {
	if !opts.markdown {
		return body, nil
	}
	html, err := mdconv.ToHTML(body)
	if err != nil {
		return "", fmt.Errorf("markdown conversion failed: %w", err)
	}
	return html, nil
}

func readContent(opts *wrapOptions) (string, error) {
	if opts.file != "" {
		data, err := os.ReadFile(opts.file)
		if err != nil {
			return "", fmt.Errorf("failed to read content: %w", err)
		}
		return string(data), nil
	}

	in := opts.in
	if in == nil {
		in = os.Stdin
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("no content to wrap (pipe content in or use --file)")
	}
	return strings.TrimRight(string(data), "\n"), nil
}
