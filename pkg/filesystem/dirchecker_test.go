package filesystem_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/pathman/pkg/filesystem"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// deniedFs fails every Stat as if permissions were missing
type deniedFs struct {
	afero.Fs
}

func (deniedFs) Stat(name string) (fs.FileInfo, error) {
	return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrPermission}
}

func TestDirChecker_IsDir(t *testing.T) {
	memFs := afero.NewMemMapFs()
	require.NoError(t, memFs.MkdirAll("/usr/bin", 0755))
	require.NoError(t, afero.WriteFile(memFs, "/usr/bin/env", []byte("#!"), 0755))
	require.NoError(t, memFs.MkdirAll("/opt/My Apps/bin", 0755))

	checker := filesystem.New(memFs)

	tests := []struct {
		name string
		dir  string
		want bool
	}{
		{"existing directory", "/usr/bin", true},
		{"parent directory", "/usr", true},
		{"directory with spaces", "/opt/My Apps/bin", true},
		{"regular file", "/usr/bin/env", false},
		{"missing directory", "/opt/atom", false},
		{"empty string", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, checker.IsDir(tt.dir))
		})
	}
}

func TestDirChecker_PermissionDeniedIsMissing(t *testing.T) {
	checker := filesystem.New(deniedFs{Fs: afero.NewMemMapFs()})
	assert.False(t, checker.IsDir("/root/secret"))
}

func TestDirChecker_OS(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	checker := filesystem.NewOS()
	assert.True(t, checker.IsDir(dir))
	assert.False(t, checker.IsDir(file))
	assert.False(t, checker.IsDir(filepath.Join(dir, "missing")))
}
