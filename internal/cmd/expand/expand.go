// Package expand provides the expand command for one-shot abbreviation
// expansion.
package expand

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/zen-cli/internal/config"
	"github.com/open-cli-collective/zen-cli/internal/view"
	"github.com/open-cli-collective/zen-cli/pkg/abbr"
	"github.com/open-cli-collective/zen-cli/pkg/mdconv"
)

type expandOptions struct {
	abbreviation string
	profile      string
	syntax       string
	tabStops     bool
	snippet      bool
	toMarkdown   bool

	configPath string
	output     string
	noColor    bool
	out        io.Writer // test override
}

// NewCmdExpand creates the expand command.
func NewCmdExpand() *cobra.Command {
	opts := &expandOptions{}

	cmd := &cobra.Command{
		Use:   "expand <abbreviation>",
		Short: "Expand an abbreviation into markup",
		Long: `Expand a zen-coding abbreviation into indented markup.

Abbreviations combine element names with operators: + for siblings,
> for children, *N for repetition, plus CSS-style .class and #id
shorthand, [attr=value] attributes and {text} content.`,
		Example: `  # A list with three items
  zen expand "ul>li*3"

  # Classes, ids and attributes
  zen expand "div#page>a.button[href=/docs]{Read the docs}"

  # XHTML-style output
  zen expand "img.logo" --profile xhtml

  # Show the resulting tab stops
  zen expand "a" --tabstops

  # Editor snippet with ${N} placeholders
  zen expand "a{click}" --snippet

  # Convert the expansion to markdown
  zen expand "h1{Title}+p{Body}" --to-markdown`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.abbreviation = args[0]
			opts.configPath, _ = cmd.Flags().GetString("config")
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			return runExpand(opts, nil)
		},
	}

	cmd.Flags().StringVarP(&opts.profile, "profile", "p", "", "Output profile: html, xhtml, xml, or a configured profile")
	cmd.Flags().StringVarP(&opts.syntax, "syntax", "s", "", "Resolve the profile through the syntax mapping")
	cmd.Flags().BoolVar(&opts.tabStops, "tabstops", false, "List tab stop positions after the markup")
	cmd.Flags().BoolVar(&opts.snippet, "snippet", false, "Emit ${N} placeholder markers instead of plain text")
	cmd.Flags().BoolVar(&opts.toMarkdown, "to-markdown", false, "Convert the expansion to markdown")

	return cmd
}

func runExpand(opts *expandOptions, engine *abbr.Engine) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}
	if opts.profile != "" && opts.syntax != "" {
		return fmt.Errorf("--profile and --syntax are mutually exclusive")
	}

	if engine == nil {
		var err error
		engine, err = LoadEngine(opts.configPath)
		if err != nil {
			return err
		}
	}

	var res *abbr.ExpansionResult
	var err error
	if opts.syntax != "" {
		res, err = engine.ExpandForSyntax(opts.abbreviation, opts.syntax)
	} else {
		res, err = engine.Expand(opts.abbreviation, opts.profile)
	}
	if err != nil {
		return expansionError(opts.abbreviation, err)
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)
	if opts.out != nil {
		renderer.SetWriter(opts.out)
	}

	if opts.toMarkdown {
		markdown, err := mdconv.FromHTML(res.Text)
		if err != nil {
			return fmt.Errorf("markdown conversion failed: %w", err)
		}
		renderer.RenderText(markdown)
		return nil
	}
	if opts.snippet {
		renderer.RenderText(res.SnippetText())
		return nil
	}
	return renderer.RenderExpansion(res, opts.tabStops)
}

// LoadEngine builds an engine from the configuration file and environment.
// An empty path means the default config location.
func LoadEngine(configPath string) (*abbr.Engine, error) {
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}
	cfg, err := config.LoadWithEnv(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w (run 'zen init' to reconfigure)", err)
	}
	engineOpts, err := cfg.EngineOptions()
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w (run 'zen init' to reconfigure)", err)
	}
	return abbr.New(engineOpts), nil
}

// expansionError turns engine errors into messages that point at the
// problem. Parse errors get a caret under the offending character.
func expansionError(abbreviation string, err error) error {
	var parseErr *abbr.ParseError
	if errors.As(err, &parseErr) {
		return fmt.Errorf("invalid abbreviation: %s\n\n  %s\n  %s^",
			parseErr.Reason, abbreviation, strings.Repeat(" ", parseErr.Position))
	}
	return err
}
