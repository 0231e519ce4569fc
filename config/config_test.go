package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadConfigAppliesDefaults(t *testing.T) {
	path := writeConfigFile(t, "api:\n  base_url: http://changes.example.com\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "http://changes.example.com", cfg.API.BaseURL)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, 0, cfg.API.RetryMax)
	assert.Equal(t, "Changes", cfg.Layout.PageTitle)
	assert.Equal(t, NavigationErrorPropagate, cfg.Layout.NavigationErrorPolicy)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, "server:\n  port: 9000\nlayout:\n  navigation_error_policy: propagate\n")
	t.Setenv("CHANGES_SERVER_PORT", "9100")
	t.Setenv("CHANGES_LAYOUT_NAVIGATION_ERROR_POLICY", "suppress")
	t.Setenv("CHANGES_API_AUTH_SECRET", "s3cret")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, NavigationErrorSuppress, cfg.Layout.NavigationErrorPolicy)
	assert.Equal(t, "s3cret", cfg.API.AuthSecret)
}

func TestLoadConfigRejectsInvalidPolicy(t *testing.T) {
	path := writeConfigFile(t, "layout:\n  navigation_error_policy: ignore\n")

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidateRejectsBadBaseURL(t *testing.T) {
	cfg := Defaults()
	cfg.API.BaseURL = "not a url"

	assert.Error(t, Validate(&cfg))
}

func TestLoadConfigLogFormat(t *testing.T) {
	path := writeConfigFile(t, "log:\n  level: debug\n")
	t.Setenv("CHANGES_LOG_FORMAT", "json")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadConfigRejectsInvalidLogFormat(t *testing.T) {
	path := writeConfigFile(t, "log:\n  format: xml\n")

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
