package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("catalog", "", "")
	fs.String("format", "text", "")
	fs.Bool("no-color", false, "")
	fs.String("log-level", "warn", "")
	fs.String("log-format", "console", "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "careerfit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, FormatText, cfg.Format)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Empty(t, cfg.Catalog)
	assert.False(t, cfg.NoColor)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "")
	cfg, err := Load(path, testFlags(t))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
catalog: /etc/careerfit/questions.yaml
format: json
no_color: true
log:
  level: debug
  format: json
`)
	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "/etc/careerfit/questions.yaml", cfg.Catalog)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.True(t, cfg.NoColor)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "format: json\nlog:\n  level: info\n")
	t.Setenv("CAREERFIT_FORMAT", "text")
	t.Setenv("CAREERFIT_LOG_LEVEL", "error")
	t.Setenv("CAREERFIT_NO_COLOR", "true")

	cfg, err := Load(path, testFlags(t))
	require.NoError(t, err)
	assert.Equal(t, FormatText, cfg.Format)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.True(t, cfg.NoColor)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	path := writeConfig(t, "format: text\n")
	t.Setenv("CAREERFIT_FORMAT", "text")
	t.Setenv("CAREERFIT_CATALOG", "/from/env.yaml")

	cfg, err := Load(path, testFlags(t, "--format", "json", "--log-level", "debug"))
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/from/env.yaml", cfg.Catalog)
}

func TestLoad_UnsetFlagsDoNotMaskFile(t *testing.T) {
	path := writeConfig(t, "format: json\n")
	cfg, err := Load(path, testFlags(t))
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, cfg.Format)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestLoad_InvalidFormat(t *testing.T) {
	path := writeConfig(t, "format: xml\n")
	_, err := Load(path, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Log.Format = "logfmt"
	assert.Error(t, cfg.Validate())
}
