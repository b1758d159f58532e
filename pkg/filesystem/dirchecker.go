package filesystem

import (
	"github.com/arthur-debert/pathman/pkg/logging"
	"github.com/spf13/afero"
)

// DirChecker answers whether a path names an existing directory.
type DirChecker struct {
	fs afero.Fs
}

// New creates a DirChecker backed by fs
func New(fs afero.Fs) *DirChecker {
	return &DirChecker{fs: fs}
}

// NewOS creates a DirChecker backed by the OS filesystem
func NewOS() *DirChecker {
	return New(afero.NewOsFs())
}

// IsDir reports whether dir exists and is a directory. Symlinks are
// followed by Stat. Any stat error, permission denied included, counts as
// missing.
func (c *DirChecker) IsDir(dir string) bool {
	if dir == "" {
		return false
	}
	info, err := c.fs.Stat(dir)
	if err != nil {
		logger := logging.GetLogger("filesystem")
		logger.Debug().Err(err).Str("dir", dir).Msg("Treating unreadable entry as missing")
		return false
	}
	return info.IsDir()
}
