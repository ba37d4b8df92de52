// Package config provides configuration management for zen.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/open-cli-collective/zen-cli/pkg/abbr"
)

// ProfileSpec is the on-disk form of an output profile. All fields are
// optional; empty fields keep the built-in default.
type ProfileSpec struct {
	TagCase     string `yaml:"tag_case,omitempty"`     // lower, upper, asis
	AttrCase    string `yaml:"attr_case,omitempty"`    // lower, upper, asis
	SelfClosing string `yaml:"self_closing,omitempty"` // html, xhtml, xml
	Indent      string `yaml:"indent,omitempty"`
	Quotes      string `yaml:"quotes,omitempty"` // double, single
}

// Config holds the zen configuration.
type Config struct {
	DefaultProfile string                 `yaml:"default_profile,omitempty"`
	OutputFormat   string                 `yaml:"output_format,omitempty"`
	Snippets       map[string]string      `yaml:"snippets,omitempty"`
	Profiles       map[string]ProfileSpec `yaml:"profiles,omitempty"`
	Syntaxes       map[string]string      `yaml:"syntaxes,omitempty"`
}

// Validate checks that every field holds a usable value.
func (c *Config) Validate() error {
	for name, body := range c.Snippets {
		if name == "" {
			return fmt.Errorf("snippet with empty name")
		}
		if body == "" {
			return fmt.Errorf("snippet %q has an empty body", name)
		}
	}
	for name, spec := range c.Profiles {
		if _, err := spec.Profile(); err != nil {
			return fmt.Errorf("profile %q: %w", name, err)
		}
	}
	if c.DefaultProfile != "" {
		if _, ok := c.Profiles[c.DefaultProfile]; !ok {
			if _, ok := abbr.BuiltinProfiles()[c.DefaultProfile]; !ok {
				return fmt.Errorf("default_profile %q is not a known profile", c.DefaultProfile)
			}
		}
	}
	return nil
}

// Profile converts the on-disk form into an output profile.
func (s ProfileSpec) Profile() (abbr.Profile, error) {
	p := abbr.DefaultProfile()

	tagCase, err := parseCase(s.TagCase)
	if err != nil {
		return abbr.Profile{}, fmt.Errorf("tag_case: %w", err)
	}
	p.TagCase = tagCase

	attrCase, err := parseCase(s.AttrCase)
	if err != nil {
		return abbr.Profile{}, fmt.Errorf("attr_case: %w", err)
	}
	p.AttrCase = attrCase

	switch s.SelfClosing {
	case "", "xhtml":
		p.SelfClosing = abbr.SelfClosingXHTML
	case "html":
		p.SelfClosing = abbr.SelfClosingHTML
	case "xml":
		p.SelfClosing = abbr.SelfClosingXML
	default:
		return abbr.Profile{}, fmt.Errorf("self_closing: unknown style %q", s.SelfClosing)
	}

	if s.Indent != "" {
		p.Indent = s.Indent
	}

	switch s.Quotes {
	case "", "double":
		p.Quotes = abbr.QuotesDouble
	case "single":
		p.Quotes = abbr.QuotesSingle
	default:
		return abbr.Profile{}, fmt.Errorf("quotes: unknown style %q", s.Quotes)
	}
	return p, nil
}

func parseCase(s string) (abbr.Case, error) {
	switch s {
	case "", "lower":
		return abbr.CaseLower, nil
	case "upper":
		return abbr.CaseUpper, nil
	case "asis":
		return abbr.CaseAsIs, nil
	default:
		return 0, fmt.Errorf("unknown case %q", s)
	}
}

// EngineOptions converts the configuration into engine options.
func (c *Config) EngineOptions() (abbr.Options, error) {
	opts := abbr.Options{
		Snippets:       c.Snippets,
		Syntaxes:       c.Syntaxes,
		DefaultProfile: c.DefaultProfile,
	}
	if len(c.Profiles) > 0 {
		opts.Profiles = make(map[string]abbr.Profile, len(c.Profiles))
		for name, spec := range c.Profiles {
			p, err := spec.Profile()
			if err != nil {
				return abbr.Options{}, fmt.Errorf("profile %q: %w", name, err)
			}
			opts.Profiles[name] = p
		}
	}
	return opts, nil
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables override existing values only if set and non-empty.
// Precedence: ZEN_* → EMMET_* → existing config value
func (c *Config) LoadFromEnv() {
	if profile := getEnvWithFallback("ZEN_PROFILE", "EMMET_PROFILE"); profile != "" {
		c.DefaultProfile = profile
	}
	if format := os.Getenv("ZEN_OUTPUT_FORMAT"); format != "" {
		c.OutputFormat = format
	}
}

// getEnvWithFallback returns the value of the primary env var, or the fallback if primary is empty.
func getEnvWithFallback(primary, fallback string) string {
	if v := os.Getenv(primary); v != "" {
		return v
	}
	return os.Getenv(fallback)
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	// Explicit override wins
	if path := os.Getenv("ZEN_CONFIG"); path != "" {
		return path
	}

	// Try XDG config directory first
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "zen", "config.yml")
	}

	// Fall back to ~/.config/zen/config.yml
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".zen", "config.yml")
	}

	return filepath.Join(home, ".config", "zen", "config.yml")
}

// Save writes the configuration to the specified path.
func (c *Config) Save(path string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Load reads the configuration from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadWithEnv loads configuration from file and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		// If file doesn't exist, start with empty config
		cfg = &Config{}
	}

	cfg.LoadFromEnv()
	return cfg, nil
}
