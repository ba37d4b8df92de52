// Package init provides the init command for zen.
package init

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/zen-cli/internal/config"
)

// NewCmdInit creates the init command.
func NewCmdInit() *cobra.Command {
	var profile string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize zen configuration",
		Long: `Initialize zen with your preferred output settings.

This command will guide you through choosing a default profile,
indentation and quoting style. The configuration will be saved to
~/.config/zen/config.yml and can be edited by hand afterwards, for
example to add custom snippets.`,
		Example: `  # Interactive setup
  zen init

  # Pre-select the default profile
  zen init --profile xhtml`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(profile)
		},
	}

	cmd.Flags().StringVar(&profile, "profile", "", "Default profile: html, xhtml, xml")

	return cmd
}

func runInit(prefillProfile string) error {
	configPath := config.DefaultConfigPath()

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		var overwrite bool
		err := huh.NewConfirm().
			Title("Configuration already exists").
			Description(fmt.Sprintf("Overwrite %s?", configPath)).
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Println("Initialization cancelled.")
			return nil
		}
	}

	cfg := &config.Config{DefaultProfile: "html"}
	if prefillProfile != "" {
		cfg.DefaultProfile = prefillProfile
	}

	indent := "tab"
	quotes := "double"
	outputFormat := "table"

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Default profile").
				Description("Controls void element style: <br>, <br /> or <br/>").
				Options(
					huh.NewOption("html", "html"),
					huh.NewOption("xhtml", "xhtml"),
					huh.NewOption("xml", "xml"),
				).
				Value(&cfg.DefaultProfile),

			huh.NewSelect[string]().
				Title("Indentation").
				Options(
					huh.NewOption("tabs", "tab"),
					huh.NewOption("2 spaces", "two"),
					huh.NewOption("4 spaces", "four"),
				).
				Value(&indent),

			huh.NewSelect[string]().
				Title("Attribute quotes").
				Options(
					huh.NewOption(`double (")`, "double"),
					huh.NewOption(`single (')`, "single"),
				).
				Value(&quotes),

			huh.NewSelect[string]().
				Title("Command output format").
				Options(
					huh.NewOption("table", "table"),
					huh.NewOption("json", "json"),
					huh.NewOption("plain", "plain"),
				).
				Value(&outputFormat),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	cfg.OutputFormat = outputFormat
	applyFormatting(cfg, indent, quotes)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.Save(configPath); err != nil {
		return err
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	fmt.Println("\nYou're all set! Try running:")
	fmt.Println(`  zen expand "ul>li*3"`)
	fmt.Println(`  echo "hello" | zen wrap "em"`)

	return nil
}

// applyFormatting turns non-default indent and quote choices into a user
// profile overriding the chosen built-in, so defaults keep a clean config.
func applyFormatting(cfg *config.Config, indent, quotes string) {
	indentStr := "\t"
	switch indent {
	case "two":
		indentStr = "  "
	case "four":
		indentStr = "    "
	}
	if indentStr == "\t" && quotes == "double" {
		return
	}

	spec := config.ProfileSpec{Indent: indentStr, Quotes: quotes}
	switch cfg.DefaultProfile {
	case "xhtml":
		spec.SelfClosing = "xhtml"
	case "xml":
		spec.SelfClosing = "xml"
	default:
		spec.SelfClosing = "html"
	}

	cfg.Profiles = map[string]config.ProfileSpec{"default": spec}
	cfg.DefaultProfile = "default"
}
