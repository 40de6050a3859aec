package sim

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	config, err := LoadConfig(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestLoadConfigParsesHCL(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sim.hcl")
	content := `
simulation {
  hands     = 500
  players   = 4
  seed      = 42
  log_level = "debug"
}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 500, config.Simulation.Hands)
	assert.Equal(t, 4, config.Simulation.Players)
	assert.Equal(t, int64(42), config.Simulation.Seed)
	assert.Equal(t, "debug", config.Simulation.LogLevel)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sim.hcl")
	content := `
simulation {
  hands   = 100
  players = 1
}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigRejectsMalformedHCL(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sim.hcl")
	require.NoError(t, os.WriteFile(path, []byte("simulation {"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
