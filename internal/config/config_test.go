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

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, LogLevelInfo, cfg.LogLevel)
	assert.Equal(t, LogFormatText, cfg.LogFormat)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.False(t, cfg.Quiet)
	assert.NoError(t, cfg.Validate())
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "verbose"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestValidate_InvalidLogFormat(t *testing.T) {
	cfg := Default()
	cfg.LogFormat = "xml"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log format")
}

func TestValidate_EmptyAddr(t *testing.T) {
	cfg := Default()
	cfg.Addr = ""

	assert.Error(t, cfg.Validate())
}

func TestEffectiveLogLevel_QuietOverrides(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = LogLevelDebug
	cfg.Quiet = true

	assert.Equal(t, LogLevelError, cfg.EffectiveLogLevel())
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil, "")
	require.NoError(t, err)
	assert.Equal(t, LogLevelInfo, cfg.LogLevel)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log-level: debug\naddr: \":9090\"\n"), 0o644))

	cfg, err := Load(nil, path)
	require.NoError(t, err)
	assert.Equal(t, LogLevelDebug, cfg.LogLevel)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, path, cfg.ConfigFile)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(nil, filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestLoad_InvalidValueRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log-level: loud\n"), 0o644))

	_, err := Load(nil, path)
	assert.Error(t, err)
}

func TestLoad_FlagsWin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log-level: warn\n"), 0o644))

	cmd := &cobra.Command{Use: "test"}
	cmd.PersistentFlags().String("log-level", "info", "")
	require.NoError(t, cmd.PersistentFlags().Set("log-level", "debug"))

	cfg, err := Load(cmd, path)
	require.NoError(t, err)
	assert.Equal(t, LogLevelDebug, cfg.LogLevel)
}

func TestContextRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = LogLevelWarn

	ctx := NewContext(context.Background(), cfg)
	assert.Equal(t, cfg, FromContext(ctx))
}

func TestFromContext_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, Default(), FromContext(context.Background()))
}
