package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("first run creates a default config.yaml", func(t *testing.T) {
		dir := t.TempDir()

		v, err := Load(dir)
		require.NoError(t, err)

		_, err = os.Stat(filepath.Join(dir, "config.yaml"))
		assert.NoError(t, err)
		assert.Equal(t, DefaultListenAddr, v.GetString(KeyListenAddr))
		assert.Equal(t, DefaultLogLevel, v.GetString(KeyLogLevel))
		assert.Empty(t, v.GetString(KeyDataDir))
	})

	t.Run("existing config is not overwritten", func(t *testing.T) {
		dir := t.TempDir()
		custom := "listen_addr: \":9999\"\ndata_dir: /srv/notes\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(custom), 0o644))

		v, err := Load(dir)
		require.NoError(t, err)
		assert.Equal(t, ":9999", v.GetString(KeyListenAddr))
		assert.Equal(t, "/srv/notes", v.GetString(KeyDataDir))
		// Unset keys fall back to defaults.
		assert.Equal(t, DefaultLogLevel, v.GetString(KeyLogLevel))
	})

	t.Run("creates the config directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "conf")

		_, err := Load(dir)
		require.NoError(t, err)

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})
}
