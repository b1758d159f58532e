package pathlist

import "strings"

// NormalizeDir normalizes a single directory token: surrounding whitespace
// is trimmed, runs of '/' collapse into one and a trailing '/' is removed.
// The root "/" is left as is. A token is never made absolute.
func NormalizeDir(dir string) string {
	for {
		next := normalizeDirOnce(dir)
		if next == dir {
			return next
		}
		dir = next
	}
}

// normalizeDirOnce applies one trim/collapse/strip round. Stripping a
// trailing '/' can expose whitespace ("/ /" -> "/ "), so NormalizeDir
// repeats it until nothing changes.
func normalizeDirOnce(dir string) string {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return dir
	}

	var b strings.Builder
	b.Grow(len(dir))
	inRun := false
	for i := 0; i < len(dir); i++ {
		c := dir[i]
		if c == '/' {
			if inRun {
				continue
			}
			inRun = true
		} else {
			inRun = false
		}
		b.WriteByte(c)
	}

	out := b.String()
	if out != "/" && strings.HasSuffix(out, "/") {
		out = out[:len(out)-1]
	}
	return out
}
