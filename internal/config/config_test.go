package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// newTestRootCmd creates a cobra.Command with the same persistent flags as the
// real root command so that Load can bind them during tests.
func newTestRootCmd() *cobra.Command {
	cmd := &cobra.Command{}
	pf := cmd.PersistentFlags()
	pf.String("config", "", "")
	pf.String("log-level", "info", "")
	pf.String("log-format", "text", "")
	pf.Bool("no-color", false, "")
	pf.BoolP("quiet", "q", false, "")

	return cmd
}

// writeTempConfig writes a YAML string to a temporary file and returns the path.
func writeTempConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	p := filepath.Join(dir, "cfg.yaml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))

	return p
}

// ---------------------------------------------------------------------------
// Default / Validate
// ---------------------------------------------------------------------------

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, LogLevelInfo, cfg.LogLevel)
	assert.Equal(t, LogFormatText, cfg.LogFormat)
	assert.False(t, cfg.NoColor)
	assert.False(t, cfg.Quiet)
}

func TestValidate_ValidValues(t *testing.T) {
	for _, lvl := range []string{"debug", "info", "warn", "error"} {
		cfg := Default()
		cfg.LogLevel = lvl
		assert.NoError(t, cfg.Validate(), "level=%s", lvl)
	}

	for _, format := range []string{"text", "json"} {
		cfg := Default()
		cfg.LogFormat = format
		assert.NoError(t, cfg.Validate(), "format=%s", format)
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "verbose"
	assert.ErrorContains(t, cfg.Validate(), "invalid log level")
}

func TestValidate_InvalidLogFormat(t *testing.T) {
	cfg := Default()
	cfg.LogFormat = "xml"
	assert.ErrorContains(t, cfg.Validate(), "invalid log format")
}

func TestEffectiveLogLevel_Quiet(t *testing.T) {
	cfg := Default()
	cfg.Quiet = true
	assert.Equal(t, LogLevelError, cfg.EffectiveLogLevel())

	cfg.Quiet = false
	assert.Equal(t, LogLevelInfo, cfg.EffectiveLogLevel())
}

// ---------------------------------------------------------------------------
// Load
// ---------------------------------------------------------------------------

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(newTestRootCmd(), "")
	require.NoError(t, err)

	assert.Equal(t, LogLevelInfo, cfg.LogLevel)
	assert.Equal(t, LogFormatText, cfg.LogFormat)
}

func TestLoad_FromFile(t *testing.T) {
	p := writeTempConfig(t, "log-level: warn\nlog-format: json\n")

	cfg, err := Load(newTestRootCmd(), p)
	require.NoError(t, err)

	assert.Equal(t, LogLevelWarn, cfg.LogLevel)
	assert.Equal(t, LogFormatJSON, cfg.LogFormat)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("LABELWRANGLER_LOG_LEVEL", "debug")

	cfg, err := Load(newTestRootCmd(), "")
	require.NoError(t, err)

	assert.Equal(t, LogLevelDebug, cfg.LogLevel)
}

func TestLoad_FlagBeatsFile(t *testing.T) {
	p := writeTempConfig(t, "log-level: warn\n")

	cmd := newTestRootCmd()
	require.NoError(t, cmd.PersistentFlags().Set("log-level", "error"))

	cfg, err := Load(cmd, p)
	require.NoError(t, err)

	assert.Equal(t, LogLevelError, cfg.LogLevel)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(newTestRootCmd(), filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestLoad_InvalidValueRejected(t *testing.T) {
	p := writeTempConfig(t, "log-level: shouty\n")

	_, err := Load(newTestRootCmd(), p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

func TestContextRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = LogLevelWarn

	ctx := NewContext(context.Background(), cfg)
	assert.Same(t, cfg, FromContext(ctx))
}

func TestFromContext_FallsBackToDefault(t *testing.T) {
	cfg := FromContext(context.Background())
	assert.Equal(t, Default(), cfg)
}
