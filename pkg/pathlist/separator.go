package pathlist

import (
	"os"
	"strings"
	"unicode/utf8"
)

// Separator is the character that joins directory tokens in a path string.
type Separator rune

// Default is the platform path list separator (':' on POSIX).
const Default = Separator(os.PathListSeparator)

// ParseSeparator converts a one-character string into a Separator.
func ParseSeparator(s string) (Separator, bool) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, false
	}
	return Separator(r), true
}

func (s Separator) String() string {
	return string(rune(s))
}

// fields splits path on s in a single left-to-right scan. Whitespace
// adjacent to a separator is consumed with it, and empty fields produced
// by separator runs are dropped.
func (s Separator) fields(path string) []string {
	var out []string
	start := 0
	for i, r := range path {
		if r != rune(s) {
			continue
		}
		if tok := strings.TrimSpace(path[start:i]); tok != "" {
			out = append(out, tok)
		}
		start = i + utf8.RuneLen(r)
	}
	if tok := strings.TrimSpace(path[start:]); tok != "" {
		out = append(out, tok)
	}
	return out
}

// join concatenates already normalized tokens.
func (s Separator) join(tokens []string) string {
	return strings.Join(tokens, s.String())
}
