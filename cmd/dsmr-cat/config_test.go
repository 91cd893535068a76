package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("device: /dev/ttyUSB0\nbaud_rate: 9600\n"), 0o644))

	actual, err := loadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "/dev/ttyUSB0", actual.Device)
	assert.Equal(t, uint(9600), actual.BaudRate)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))

	assert.Error(t, err)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("device: [\n"), 0o644))

	_, err := loadConfig(path)

	assert.Error(t, err)
}
