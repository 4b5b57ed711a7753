package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "faketape.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 4096, cfg.Device.BlockSize)
	assert.Equal(t, float64(1024*1024), cfg.Device.ReadSpeed)
	assert.Equal(t, float64(512*1024), cfg.Device.WriteSpeed)
	assert.Equal(t, 0.01, cfg.Device.SeekTimePerBlock)
	assert.Equal(t, 10000, cfg.Workload.BlockCount)
	assert.Equal(t, 1000, cfg.Workload.QueryCount)
	assert.Equal(t, 0.5, cfg.Workload.SizeRatio)
	assert.Equal(t, uint64(1000000), cfg.Workload.MaxID)
	assert.Zero(t, cfg.Workload.Seed)
	assert.Zero(t, cfg.Strategy.FixedInterval)
}

func TestLoadEmptyPathFallsBack(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
device:
  block_size: 8192
  seek_time_per_block: 0.02
workload:
  block_count: 500
  seed: 42
strategy:
  fixed_interval: 20
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8192, cfg.Device.BlockSize)
	assert.Equal(t, 0.02, cfg.Device.SeekTimePerBlock)
	assert.Equal(t, float64(1024*1024), cfg.Device.ReadSpeed)
	assert.Equal(t, 500, cfg.Workload.BlockCount)
	assert.Equal(t, int64(42), cfg.Workload.Seed)
	assert.Equal(t, 1000, cfg.Workload.QueryCount)
	assert.Equal(t, 20, cfg.Strategy.FixedInterval)
}

func TestLoadBackfillsInvalidValues(t *testing.T) {
	path := writeConfig(t, `
device:
  block_size: -1
workload:
  size_ratio: 1.5
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4096, cfg.Device.BlockSize)
	assert.Equal(t, 0.5, cfg.Workload.SizeRatio)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfig(t, "device: [not a mapping")

	_, err := Load(path)
	require.Error(t, err)
}
