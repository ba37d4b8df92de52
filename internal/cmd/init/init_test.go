package init

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/zen-cli/internal/config"
	"github.com/open-cli-collective/zen-cli/pkg/abbr"
)

func TestNewCmdInit_Flags(t *testing.T) {
	cmd := NewCmdInit()

	// Verify command structure
	assert.Equal(t, "init", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	profileFlag := cmd.Flags().Lookup("profile")
	require.NotNil(t, profileFlag)
	assert.Equal(t, "", profileFlag.DefValue)
}

func TestApplyFormatting_Defaults(t *testing.T) {
	cfg := &config.Config{DefaultProfile: "html"}
	applyFormatting(cfg, "tab", "double")

	// Default choices leave the config on the built-in profile.
	assert.Equal(t, "html", cfg.DefaultProfile)
	assert.Empty(t, cfg.Profiles)
}

func TestApplyFormatting_CustomIndent(t *testing.T) {
	cfg := &config.Config{DefaultProfile: "html"}
	applyFormatting(cfg, "two", "double")

	require.Contains(t, cfg.Profiles, "default")
	assert.Equal(t, "default", cfg.DefaultProfile)
	assert.Equal(t, "  ", cfg.Profiles["default"].Indent)
	assert.Equal(t, "html", cfg.Profiles["default"].SelfClosing)
}

func TestApplyFormatting_SingleQuotesKeepsBase(t *testing.T) {
	cfg := &config.Config{DefaultProfile: "xml"}
	applyFormatting(cfg, "tab", "single")

	require.Contains(t, cfg.Profiles, "default")
	spec := cfg.Profiles["default"]
	assert.Equal(t, "single", spec.Quotes)
	assert.Equal(t, "xml", spec.SelfClosing)

	// The generated profile must survive validation and conversion.
	require.NoError(t, cfg.Validate())
	p, err := spec.Profile()
	require.NoError(t, err)
	assert.Equal(t, abbr.QuotesSingle, p.Quotes)
}

func TestConfigDirectoryCreation(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "deeply", "config.yml")

	cfg := config.Config{DefaultProfile: "html"}

	// Save should create the directory structure
	err := cfg.Save(configPath)
	require.NoError(t, err)

	// Verify file exists
	_, err = os.Stat(configPath)
	require.NoError(t, err)

	// Verify directory was created
	dirInfo, err := os.Stat(filepath.Dir(configPath))
	require.NoError(t, err)
	assert.True(t, dirInfo.IsDir())
}
