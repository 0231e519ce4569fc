package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/changesci/changes-web/config"
)

func TestSetupDisabled(t *testing.T) {
	cfg := config.Defaults()

	shutdown, err := Setup(context.Background(), &cfg)
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestSetupEnabled(t *testing.T) {
	cfg := config.Defaults()
	cfg.Telemetry.Enabled = true

	shutdown, err := Setup(context.Background(), &cfg)
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}
