package configcmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/zen-cli/internal/config"
)

func TestNewCmdConfig_Subcommands(t *testing.T) {
	cmd := NewCmdConfig()

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "show")
	assert.Contains(t, names, "path")
	assert.Contains(t, names, "check")
	assert.Contains(t, names, "clear")
}

func TestRunCheck_ValidConfig(t *testing.T) {
	cfg := &config.Config{
		DefaultProfile: "html",
		Snippets:       map[string]string{"hero": "section.hero>h1"},
	}

	err := runCheck("", true, cfg)
	require.NoError(t, err)
}

func TestRunCheck_InvalidProfile(t *testing.T) {
	cfg := &config.Config{DefaultProfile: "nope"}

	err := runCheck("", true, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestRunCheck_BrokenSnippet(t *testing.T) {
	cfg := &config.Config{
		Snippets: map[string]string{"broken": "div>"},
	}

	err := runCheck("", true, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to expand")
}

func TestRunShow_MissingFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")
	err := runShow(configPath, true)
	require.NoError(t, err)
}

func TestCmdPath_HonorsConfigFlag(t *testing.T) {
	cmd := NewCmdPath()
	cmd.Flags().String("config", "/tmp/custom.yml", "")
	cmd.Flags().Bool("no-color", true, "")

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	require.NoError(t, cmd.RunE(cmd, nil))
	assert.Equal(t, "/tmp/custom.yml", strings.TrimSpace(buf.String()))
}
