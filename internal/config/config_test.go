package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("defaults fill unset values", func(t *testing.T) {
		path := writeConfig(t, "server:\n  port: 9090\n")

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, "0.0.0.0", cfg.Server.Host)
		assert.Equal(t, "data/invoices.db", cfg.Database.Path)
		assert.Equal(t, int64(10), cfg.Upload.MaxFileSizeMB)
		assert.Equal(t, "info", cfg.Logger.Level)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid port rejected", func(t *testing.T) {
		path := writeConfig(t, "server:\n  port: 70000\n")

		_, err := Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "port")
	})

	t.Run("non-positive upload limit rejected", func(t *testing.T) {
		path := writeConfig(t, "upload:\n  max_file_size_mb: 0\n")

		_, err := Load(path)
		assert.Error(t, err)
	})
}
