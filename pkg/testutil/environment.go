package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/pathman/pkg/filesystem"
	"github.com/arthur-debert/pathman/pkg/pathlist"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // directories live in an afero.MemMapFs
	EnvIsolated                  // directories live on disk under HomeDir
)

const envPrefix = "PATHMAN_"

// TestEnvironment is an isolated home for one test
type TestEnvironment struct {
	// HomeDir is a real temp dir, also used for config and log files
	HomeDir string
	// ConfigHome is $XDG_CONFIG_HOME for the test
	ConfigHome string
	// FS holds the directories seen by Exists
	FS afero.Fs

	Type EnvType

	t *testing.T
}

// NewTestEnvironment creates a new test environment. Environment changes
// are undone when the test ends.
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	home := t.TempDir()
	env := &TestEnvironment{
		HomeDir:    home,
		ConfigHome: filepath.Join(home, "config"),
		Type:       envType,
		t:          t,
	}
	switch envType {
	case EnvIsolated:
		env.FS = afero.NewOsFs()
	default:
		env.FS = afero.NewMemMapFs()
	}

	clearPrefixed(t, envPrefix)
	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(home, "etc"))
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	return env
}

func clearPrefixed(t *testing.T, prefix string) {
	t.Helper()
	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, prefix) {
			// Setenv registers the restore, Unsetenv removes it for the test
			t.Setenv(name, "")
			require.NoError(t, os.Unsetenv(name))
		}
	}
}

// Path returns name inside HomeDir
func (env *TestEnvironment) Path(name string) string {
	return filepath.Join(env.HomeDir, name)
}

// MkDirs creates directories on FS. In an isolated environment relative
// names are placed under HomeDir. It returns the created paths.
func (env *TestEnvironment) MkDirs(dirs ...string) []string {
	env.t.Helper()
	created := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		if env.Type == EnvIsolated && !filepath.IsAbs(dir) {
			dir = env.Path(dir)
		}
		require.NoError(env.t, env.FS.MkdirAll(dir, 0755))
		created = append(created, dir)
	}
	return created
}

// WriteFile writes content to a real file, creating parent directories
func (env *TestEnvironment) WriteFile(path, content string) string {
	env.t.Helper()
	require.NoError(env.t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(env.t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// WriteUserConfig writes the config file found through XDG lookup
func (env *TestEnvironment) WriteUserConfig(content string) string {
	env.t.Helper()
	return env.WriteFile(filepath.Join(env.ConfigHome, "pathman", "config.toml"), content)
}

// Exists checks directories against FS
func (env *TestEnvironment) Exists() pathlist.ExistsFunc {
	return filesystem.New(env.FS).IsDir
}
