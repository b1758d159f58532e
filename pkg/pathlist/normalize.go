package pathlist

import (
	"strings"

	"github.com/arthur-debert/pathman/pkg/errors"
	"github.com/arthur-debert/pathman/pkg/logging"
)

// Split breaks path into normalized directory tokens. Empty tokens are
// never returned.
func (s Separator) Split(path string) []string {
	raw := s.fields(strings.TrimSpace(path))
	tokens := make([]string, 0, len(raw))
	for _, tok := range raw {
		if dir := NormalizeDir(tok); dir != "" {
			tokens = append(tokens, dir)
		}
	}
	return tokens
}

// Normalize returns the canonical form of path: normalized tokens joined by
// a single separator, with no leading, trailing or repeated separators.
// It fails with ErrInvalidPath if the result does not pass Valid.
func (s Separator) Normalize(path string) (string, error) {
	out := s.join(s.Split(path))
	if err := s.validate(out); err != nil {
		return "", err
	}
	return out, nil
}

// Valid reports whether path is a minimal path string: every token is
// non-empty and already normalized.
func (s Separator) Valid(path string) bool {
	if path == "" {
		return true
	}
	for _, tok := range strings.Split(path, s.String()) {
		if tok == "" || NormalizeDir(tok) != tok {
			return false
		}
	}
	return true
}

func (s Separator) validate(path string) error {
	if s.Valid(path) {
		return nil
	}
	logger := logging.GetLogger("pathlist")
	logger.Error().Str("path", path).Str("separator", s.String()).Msg("Normalized path failed validation")
	return errors.Newf(errors.ErrInvalidPath, "invalid path %q", path).
		WithDetail("path", path).
		WithDetail("separator", s.String())
}
