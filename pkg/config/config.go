package config

import (
	"strings"
	"unicode"

	"github.com/arthur-debert/pathman/pkg/errors"
	"github.com/arthur-debert/pathman/pkg/pathlist"
	"github.com/pelletier/go-toml/v2"
)

// Split output formats
const (
	FormatLines   = "lines"
	FormatEscaped = "escaped"
)

// Config is the effective pathman configuration
type Config struct {
	Separator string        `koanf:"separator" toml:"separator"`
	Split     SplitConfig   `koanf:"split" toml:"split"`
	Filter    FilterConfig  `koanf:"filter" toml:"filter"`
	Logging   LoggingConfig `koanf:"logging" toml:"logging"`

	source string
}

type SplitConfig struct {
	Format string `koanf:"format" toml:"format"`
}

type FilterConfig struct {
	Workers int `koanf:"workers" toml:"workers"`
}

type LoggingConfig struct {
	File string `koanf:"file" toml:"file"`
}

// Source returns the user config file that was loaded, or "" if none was.
func (c *Config) Source() string {
	return c.source
}

// PathSeparator returns the configured separator.
func (c *Config) PathSeparator() (pathlist.Separator, error) {
	sep, ok := pathlist.ParseSeparator(c.Separator)
	if !ok {
		return 0, errors.Newf(errors.ErrConfigValid, "separator %q must be a single character", c.Separator)
	}
	r := rune(sep)
	if r == '/' || unicode.IsSpace(r) || !unicode.IsPrint(r) {
		return 0, errors.Newf(errors.ErrConfigValid, "separator %q cannot be '/', whitespace or a control character", c.Separator)
	}
	return sep, nil
}

// Validate checks every setting and reports all problems at once.
func (c *Config) Validate() error {
	var problems []string

	if _, err := c.PathSeparator(); err != nil {
		problems = append(problems, errors.UserMessage(err))
	}

	switch c.Split.Format {
	case FormatLines, FormatEscaped:
	default:
		problems = append(problems, "split.format must be lines|escaped, got "+quote(c.Split.Format))
	}

	if c.Filter.Workers < 1 {
		problems = append(problems, "filter.workers must be >= 1")
	}

	if len(problems) > 0 {
		return errors.New(errors.ErrConfigValid, "invalid configuration: "+strings.Join(problems, "; ")).
			WithDetail("problems", problems)
	}
	return nil
}

// Marshal renders the configuration as TOML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return data, nil
}

func quote(s string) string {
	return `"` + s + `"`
}
