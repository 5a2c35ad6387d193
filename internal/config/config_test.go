package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "partclass", cfg.Metrics.Namespace)
	assert.Empty(t, cfg.Catalog.DisabledFamilies)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PARTCLASS_LOG_LEVEL", "debug")
	t.Setenv("PARTCLASS_METRICS_ENABLED", "true")
	t.Setenv("PARTCLASS_DISABLED_FAMILIES", "stm32,irf")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, []string{"stm32", "irf"}, cfg.Catalog.DisabledFamilies)
}

func TestLoadOrDefaultFallsBack(t *testing.T) {
	t.Setenv("PARTCLASS_METRICS_ENABLED", "not-a-bool")
	cfg := LoadOrDefault()
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Metrics.Enabled)
}
