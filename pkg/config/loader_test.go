package config

import (
	"os"
	"testing"

	"github.com/arthur-debert/pathman/pkg/errors"
	"github.com/arthur-debert/pathman/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, string(os.PathListSeparator), cfg.Separator)
	assert.Equal(t, FormatLines, cfg.Split.Format)
	assert.Equal(t, 1, cfg.Filter.Workers)
	assert.Equal(t, "", cfg.Logging.File)
	assert.Equal(t, "", cfg.Source())
	assert.NoError(t, cfg.Validate())
}

func TestLoadXDGUserFile(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	path := env.WriteUserConfig(`
separator = ";"

[split]
format = "escaped"
`)

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, ";", cfg.Separator)
	assert.Equal(t, FormatEscaped, cfg.Split.Format)
	assert.Equal(t, 1, cfg.Filter.Workers, "unset keys keep defaults")
	assert.Equal(t, path, cfg.Source())
}

func TestLoadExplicitFile(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	path := env.WriteFile(env.Path("custom.toml"), "[filter]\nworkers = 8\n")

	cfg, err := Load(LoadOptions{ConfigFile: path})
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Filter.Workers)
	assert.Equal(t, path, cfg.Source())
}

func TestLoadExplicitFileMissing(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)

	_, err := Load(LoadOptions{ConfigFile: env.Path("nope.toml")})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestLoadBrokenFile(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	path := env.WriteFile(env.Path("broken.toml"), "separator = \n")

	_, err := Load(LoadOptions{ConfigFile: path})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestLoadEnvOverridesFile(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	path := env.WriteFile(env.Path("custom.toml"), "[filter]\nworkers = 8\n[split]\nformat = \"escaped\"\n")

	t.Setenv("PATHMAN_FILTER_WORKERS", "4")
	t.Setenv("PATHMAN_LOGGING_FILE", "/tmp/pathman.log")
	t.Setenv("PATHMAN_SEPARATOR", ",")

	cfg, err := Load(LoadOptions{ConfigFile: path})
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Filter.Workers)
	assert.Equal(t, "/tmp/pathman.log", cfg.Logging.File)
	assert.Equal(t, ",", cfg.Separator)
	assert.Equal(t, FormatEscaped, cfg.Split.Format)
}
