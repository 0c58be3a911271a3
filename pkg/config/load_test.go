package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profilefetch/pkg/config"
)

type testConfig struct {
	Name string `yaml:"name" env:"TEST_CONFIG_NAME" env-default:"default-name"`
	Port int    `yaml:"port" env:"TEST_CONFIG_PORT" env-default:"8080"`
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load[testConfig](context.Background(), "test", "")

	require.NoError(t, err)
	assert.Equal(t, "default-name", cfg.Name)
	assert.Equal(t, 8080, cfg.Port)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("TEST_CONFIG_NAME", "from-env")
	t.Setenv("TEST_CONFIG_PORT", "9090")

	cfg, err := config.Load[testConfig](context.Background(), "test", filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Name)
	assert.Equal(t, 9090, cfg.Port)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: from-file\nport: 7070\n"), 0o600))

	cfg, err := config.Load[testConfig](context.Background(), "test", path)

	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.Name)
	assert.Equal(t, 7070, cfg.Port)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("TEST_CONFIG_PORT", "not-a-number")

	cfg, err := config.Load[testConfig](context.Background(), "test", "")

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to load configuration")
}
