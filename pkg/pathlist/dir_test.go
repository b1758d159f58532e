package pathlist_test

import (
	"testing"

	"github.com/arthur-debert/pathman/pkg/pathlist"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeDir(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"root", "/", "/"},
		{"root run", "///", "/"},
		{"messy absolute", "//foo//bar/baz///", "/foo/bar/baz"},
		{"trailing slash", "/usr/bin/", "/usr/bin"},
		{"surrounding whitespace", "  /usr/bin \t", "/usr/bin"},
		{"unicode whitespace", "\u00a0/opt/x\u2003", "/opt/x"},
		{"internal whitespace kept", " /opt/My  Apps/ ", "/opt/My  Apps"},
		{"relative stays relative", "bin//local/", "bin/local"},
		{"dot left alone", "./bin", "./bin"},
		{"empty", "", ""},
		{"only whitespace", " \n\t ", ""},
		{"whitespace exposed by trailing slash", "/ /", "/"},
		{"nested exposure", "a/ //", "a"},
		{"whitespace root", "  /  ", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pathlist.NormalizeDir(tt.in))
		})
	}
}

func TestNormalizeDirIdempotent(t *testing.T) {
	inputs := []string{
		"", "/", "//", " / / ", "/a/ /", "a b/", "\t//x//y//\t", "/ \u00a0/", "////a////", "x/ / / /",
	}
	for _, in := range inputs {
		once := pathlist.NormalizeDir(in)
		assert.Equal(t, once, pathlist.NormalizeDir(once), "input %q", in)
	}
}
