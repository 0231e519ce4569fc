package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/changesci/changes-web/config"
	"github.com/changesci/changes-web/internal"
)

func TestWriteConfigOmitsSecret(t *testing.T) {
	cfg := config.Defaults()
	cfg.API.AuthSecret = "super-secret"

	var buf bytes.Buffer
	require.NoError(t, writeConfig(&buf, &cfg))

	assert.NotContains(t, buf.String(), "super-secret")
	assert.Contains(t, buf.String(), "base_url: http://localhost:5000")

	var decoded config.Config
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, cfg.Layout, decoded.Layout)
	assert.Equal(t, cfg.API.BaseURL, decoded.API.BaseURL)
}

func TestNewAppState(t *testing.T) {
	log = internal.GetLogger()
	cfg := config.Defaults()

	appState, err := NewAppState(&cfg)
	require.NoError(t, err)

	assert.NotNil(t, appState.API)
	assert.NotNil(t, appState.Observability)
	assert.Same(t, &cfg, appState.Config)
}
