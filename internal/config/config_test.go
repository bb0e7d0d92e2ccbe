package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/careersim/gitcoach/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	cfg, err := config.New()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:3000", cfg.HTTP.Address)
	assert.True(t, cfg.HTTP.OpenAPI.Enabled)
	assert.Equal(t, "./data", cfg.Storage.DataDir)
	assert.False(t, cfg.Storage.InMemory)
	assert.Equal(t, 200, cfg.Sessions.MaxHistory)
}

func TestNew_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
http:
  address: 0.0.0.0:8080
storage:
  in_memory: true
sessions:
  max_history: 5
simulator:
  author: Ada <ada@example.com>
`), 0o600))
	t.Setenv("CONFIG_PATH", path)

	cfg, err := config.New()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Address)
	assert.True(t, cfg.Storage.InMemory)
	assert.Equal(t, 5, cfg.Sessions.MaxHistory)
	assert.Equal(t, "Ada <ada@example.com>", cfg.Simulator.Author)
	assert.Equal(t, "./data", cfg.Storage.DataDir)
}
