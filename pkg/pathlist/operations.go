package pathlist

import (
	"strings"
	"sync"
	"unicode"

	"github.com/arthur-debert/pathman/pkg/logging"
)

// ExistsFunc reports whether dir names an existing directory. Probe
// failures must be reported as false.
type ExistsFunc func(dir string) bool

// FilterOptions tunes Filter.
type FilterOptions struct {
	// Workers is the number of concurrent existence checks. Values below 2
	// check tokens one at a time.
	Workers int
}

// SplitLines returns the normalized tokens of path, one per line.
func (s Separator) SplitLines(path string) (string, error) {
	tokens, err := s.tokens(path)
	if err != nil {
		return "", err
	}
	return strings.Join(tokens, "\n"), nil
}

// SplitEscaped returns the normalized tokens of path joined by single
// spaces, with every whitespace character inside a token prefixed by a
// backslash.
func (s Separator) SplitEscaped(path string) (string, error) {
	tokens, err := s.tokens(path)
	if err != nil {
		return "", err
	}
	escaped := make([]string, len(tokens))
	for i, tok := range tokens {
		escaped[i] = EscapeWhitespace(tok)
	}
	return strings.Join(escaped, " "), nil
}

// EscapeWhitespace prefixes each whitespace character in tok with '\'.
func EscapeWhitespace(tok string) string {
	if strings.IndexFunc(tok, unicode.IsSpace) < 0 {
		return tok
	}
	var b strings.Builder
	b.Grow(len(tok) + 4)
	for _, r := range tok {
		if unicode.IsSpace(r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Filter keeps the tokens of path for which exists returns true and drops
// repeats, keeping first occurrences in their original order.
func (s Separator) Filter(path string, exists ExistsFunc) (string, error) {
	return s.FilterWith(path, exists, FilterOptions{})
}

// FilterWith is Filter with explicit options.
func (s Separator) FilterWith(path string, exists ExistsFunc, opts FilterOptions) (string, error) {
	tokens, err := s.tokens(path)
	if err != nil {
		return "", err
	}

	// Deduping first only saves probes; exists is assumed deterministic.
	tokens = Dedupe(tokens)
	keep := probe(tokens, exists, opts.Workers)

	logger := logging.GetLogger("pathlist")
	kept := make([]string, 0, len(tokens))
	for i, tok := range tokens {
		if !keep[i] {
			logger.Trace().Str("dir", tok).Msg("Dropping missing directory")
			continue
		}
		kept = append(kept, tok)
	}

	logger.Debug().
		Int("tokens", len(tokens)).
		Int("kept", len(kept)).
		Int("workers", opts.Workers).
		Msg("Filtered path")
	return s.finish(kept)
}

// probe runs exists over tokens and returns the answers by index, so the
// caller's order never depends on completion order.
func probe(tokens []string, exists ExistsFunc, workers int) []bool {
	keep := make([]bool, len(tokens))
	if workers > len(tokens) {
		workers = len(tokens)
	}
	if workers < 2 {
		for i, tok := range tokens {
			keep[i] = exists(tok)
		}
		return keep
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				keep[i] = exists(tokens[i])
			}
		}()
	}
	for i := range tokens {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return keep
}

// Has reports whether dir, once normalized, equals a token of path.
func (s Separator) Has(path, dir string) (bool, error) {
	tokens, err := s.tokens(path)
	if err != nil {
		return false, err
	}
	dir = NormalizeDir(dir)
	if dir == "" {
		return false, nil
	}
	for _, tok := range tokens {
		if tok == dir {
			return true, nil
		}
	}
	return false, nil
}

// Prepend inserts each of dirs at the front of path unless it is already
// present. Dirs are handled in order, so later ones end up first:
// Prepend("/bin", "/a", "/b") yields "/b:/a:/bin".
func (s Separator) Prepend(path string, dirs ...string) (string, error) {
	tokens, err := s.tokens(path)
	if err != nil {
		return "", err
	}
	present := toSet(tokens)
	var front []string
	for _, dir := range s.dirTokens(dirs) {
		if _, ok := present[dir]; ok {
			continue
		}
		present[dir] = struct{}{}
		front = append(front, dir)
	}
	reversed := make([]string, 0, len(front)+len(tokens))
	for i := len(front) - 1; i >= 0; i-- {
		reversed = append(reversed, front[i])
	}
	return s.finish(append(reversed, tokens...))
}

// Append adds each of dirs at the end of path unless it is already present,
// keeping the order of dirs.
func (s Separator) Append(path string, dirs ...string) (string, error) {
	tokens, err := s.tokens(path)
	if err != nil {
		return "", err
	}
	present := toSet(tokens)
	for _, dir := range s.dirTokens(dirs) {
		if _, ok := present[dir]; ok {
			continue
		}
		present[dir] = struct{}{}
		tokens = append(tokens, dir)
	}
	return s.finish(tokens)
}

// Join builds a path string from dirs. Each dir is normalized; nothing is
// deduplicated or checked for existence.
func (s Separator) Join(dirs ...string) (string, error) {
	return s.finish(s.dirTokens(dirs))
}

// tokens normalizes path and returns its tokens.
func (s Separator) tokens(path string) ([]string, error) {
	normalized, err := s.Normalize(path)
	if err != nil {
		return nil, err
	}
	if normalized == "" {
		return nil, nil
	}
	return strings.Split(normalized, s.String()), nil
}

// dirTokens normalizes directory arguments. An argument holding the
// separator contributes one token per element.
func (s Separator) dirTokens(dirs []string) []string {
	var out []string
	for _, dir := range dirs {
		out = append(out, s.Split(dir)...)
	}
	return out
}

func (s Separator) finish(tokens []string) (string, error) {
	out := s.join(tokens)
	if err := s.validate(out); err != nil {
		return "", err
	}
	return out, nil
}

func toSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}
	return set
}
