package configcmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/zen-cli/internal/config"
	"github.com/open-cli-collective/zen-cli/pkg/abbr"
)

// NewCmdCheck creates the config check command.
func NewCmdCheck() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check that the configuration is usable",
		Long: `Validate the configuration file: profile definitions, the default
profile, the syntax mapping, and every user snippet body.`,
		Example: `  # Check the current config
  zen config check`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			configPath, _ := cmd.Flags().GetString("config")
			return runCheck(configPath, noColor, nil)
		},
	}

	return cmd
}

func runCheck(configPath string, noColor bool, cfg *config.Config) error {
	if noColor {
		color.NoColor = true
	}
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}

	if cfg == nil {
		var err error
		cfg, err = config.LoadWithEnv(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w (run 'zen init' to configure)", err)
		}
	}

	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	if err := cfg.Validate(); err != nil {
		red.Println("✗ Invalid configuration:", err)
		fmt.Println("\nInspect it with: zen config show")
		fmt.Println("Reconfigure with: zen init")
		return fmt.Errorf("invalid config: %w", err)
	}
	_, _ = green.Println("✓ Configuration valid")

	engineOpts, err := cfg.EngineOptions()
	if err != nil {
		red.Println("✗ Profile conversion failed:", err)
		return err
	}
	engine := abbr.New(engineOpts)

	// Every user snippet must expand under the effective default profile.
	bad := 0
	for name := range cfg.Snippets {
		if _, err := engine.Expand(name, ""); err != nil {
			red.Printf("✗ Snippet %q does not expand: %v\n", name, err)
			bad++
		}
	}
	if bad > 0 {
		return fmt.Errorf("%d snippet(s) failed to expand", bad)
	}
	if len(cfg.Snippets) > 0 {
		_, _ = green.Printf("✓ %d user snippet(s) expand cleanly\n", len(cfg.Snippets))
	}

	return nil
}
