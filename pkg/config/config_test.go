package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "inbox", cfg.Paths.InputDir)
	assert.Equal(t, "out", cfg.Paths.OutputDir)
	assert.Empty(t, cfg.Paths.ProfileFile)
	assert.Equal(t, 4, cfg.Pipeline.Concurrency)
	assert.False(t, cfg.Watch.Enabled)
	assert.Equal(t, "*/5 * * * *", cfg.Watch.Schedule)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PO_INPUT_DIR", "/data/in")
	t.Setenv("PO_CONCURRENCY", "8")
	t.Setenv("PO_WATCH_ENABLED", "true")
	t.Setenv("PO_VENDOR", "WWNZ")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/data/in", cfg.Paths.InputDir)
	assert.Equal(t, 8, cfg.Pipeline.Concurrency)
	assert.True(t, cfg.Watch.Enabled)
	assert.Equal(t, "WWNZ", cfg.Pipeline.Vendor)
}

func TestLoad_InvalidConcurrency(t *testing.T) {
	t.Setenv("PO_CONCURRENCY", "0")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_BadValuesFallBack(t *testing.T) {
	t.Setenv("PO_CONCURRENCY", "not-a-number")
	t.Setenv("PO_WATCH_ENABLED", "maybe")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Pipeline.Concurrency)
	assert.False(t, cfg.Watch.Enabled)
}
