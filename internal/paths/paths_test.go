package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveConfigDir(t *testing.T) {
	t.Run("flag wins over env", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "/env/config")

		dir, err := ResolveConfigDir("/flag/config")
		require.NoError(t, err)
		assert.Equal(t, "/flag/config", dir)
	})

	t.Run("env wins over default", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "/env/config")

		dir, err := ResolveConfigDir("")
		require.NoError(t, err)
		assert.Equal(t, "/env/config", dir)
	})

	t.Run("relative flag becomes absolute", func(t *testing.T) {
		dir, err := ResolveConfigDir("conf")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(dir))
	})
}

func TestResolveDataDir(t *testing.T) {
	t.Run("precedence flag over config over env", func(t *testing.T) {
		t.Setenv(EnvDataDir, "/env/data")

		dir, err := ResolveDataDir("/flag/data", "/config/data")
		require.NoError(t, err)
		assert.Equal(t, "/flag/data", dir)

		dir, err = ResolveDataDir("", "/config/data")
		require.NoError(t, err)
		assert.Equal(t, "/config/data", dir)

		dir, err = ResolveDataDir("", "")
		require.NoError(t, err)
		assert.Equal(t, "/env/data", dir)
	})

	t.Run("default is CWD-relative", func(t *testing.T) {
		t.Setenv(EnvDataDir, "")

		dir, err := ResolveDataDir("", "")
		require.NoError(t, err)
		assert.Equal(t, DefaultDataDirName, filepath.Base(dir))
		assert.True(t, filepath.IsAbs(dir))
	})
}
