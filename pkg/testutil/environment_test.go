package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryEnvironment(t *testing.T) {
	t.Setenv("PATHMAN_SEPARATOR", ";")

	env := NewTestEnvironment(t, EnvMemoryOnly)
	_, set := os.LookupEnv("PATHMAN_SEPARATOR")
	assert.False(t, set)
	assert.Equal(t, env.ConfigHome, xdg.ConfigHome)

	env.MkDirs("/usr/bin")
	exists := env.Exists()
	assert.True(t, exists("/usr/bin"))
	assert.False(t, exists("/opt"))
}

func TestIsolatedEnvironment(t *testing.T) {
	env := NewTestEnvironment(t, EnvIsolated)

	dirs := env.MkDirs("bin")
	require.Len(t, dirs, 1)
	assert.Equal(t, filepath.Join(env.HomeDir, "bin"), dirs[0])
	assert.True(t, env.Exists()(dirs[0]))
	assert.DirExists(t, dirs[0])
}

func TestWriteUserConfig(t *testing.T) {
	env := NewTestEnvironment(t, EnvMemoryOnly)

	path := env.WriteUserConfig("separator = \":\"\n")
	found, err := xdg.SearchConfigFile("pathman/config.toml")
	require.NoError(t, err)
	assert.Equal(t, path, found)
}
