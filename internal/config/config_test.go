package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/ecoadvisor/internal/logging"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv(EnvHome, t.TempDir())
	t.Setenv(EnvConfig, "")

	cfg := New()
	assert.Equal(t, ColorAuto, cfg.Output.Color)
	assert.Equal(t, FormatText, cfg.Output.Format)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, filepath.Join(os.Getenv(EnvHome), "config.yaml"), cfg.ConfigPath())
	require.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, FormatText, cfg.Output.Format)
	})

	t.Run("partial file keeps other defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("output:\n  format: json\n"), 0o600))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, FormatJSON, cfg.Output.Format)
		assert.Equal(t, "warn", cfg.Logging.Level)
		assert.Equal(t, path, cfg.ConfigPath())
	})

	t.Run("env overrides file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: info\n"), 0o600))
		t.Setenv(EnvLogLevel, "debug")
		t.Setenv(EnvColor, "NEVER")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, ColorNever, cfg.Output.Color)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("output: [unterminated"), 0o600))

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing config file")
	})

	t.Run("invalid color rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("output:\n  color: rainbow\n"), 0o600))

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "output.color")
	})

	t.Run("unvalidated load keeps invalid values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("output:\n  color: rainbow\n"), 0o600))
		t.Setenv(EnvColor, "")

		cfg, err := LoadUnvalidated(path)
		require.NoError(t, err)
		assert.Equal(t, "rainbow", cfg.Output.Color)
		assert.Error(t, cfg.Validate())
	})
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := New()
	cfg.SetConfigPath(path)
	cfg.Output.Format = FormatJSON
	cfg.Logging.File = "/tmp/eco.log"
	require.NoError(t, cfg.Save())

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, loaded.Output.Format)
	assert.Equal(t, "/tmp/eco.log", loaded.Logging.File)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	t.Run("missing .env is ignored", func(t *testing.T) {
		assert.NoError(t, LoadDotEnv())
	})

	t.Run("values are loaded", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("ECOADVISOR_TEST_DOTENV=yes\n"), 0o600))
		t.Cleanup(func() { _ = os.Unsetenv("ECOADVISOR_TEST_DOTENV") })

		require.NoError(t, LoadDotEnv())
		assert.Equal(t, "yes", os.Getenv("ECOADVISOR_TEST_DOTENV"))
	})
}

func TestLoggingConfig_ToLoggingConfig(t *testing.T) {
	lc := LoggingConfig{Level: "info", Format: "json"}
	assert.Equal(t, logging.OutputStderr, lc.ToLoggingConfig().Output)

	lc.File = "/var/log/eco.log"
	got := lc.ToLoggingConfig()
	assert.Equal(t, logging.OutputFile, got.Output)
	assert.Equal(t, "/var/log/eco.log", got.File)
}

func TestGlobalConfig(t *testing.T) {
	t.Cleanup(ResetGlobalConfigForTest)

	ResetGlobalConfigForTest()
	assert.NotNil(t, GetGlobalConfig())

	cfg := New()
	cfg.Output.Color = ColorNever
	cfg.Output.Format = FormatJSON
	SetGlobalConfig(cfg)
	assert.Equal(t, ColorNever, GetColorMode())
	assert.Equal(t, FormatJSON, GetDefaultOutputFormat())
}
