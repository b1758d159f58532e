package config

import (
	_ "embed"
	stderrors "errors"
	"os"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/pathman/pkg/errors"
	"github.com/arthur-debert/pathman/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment variable read as configuration
const EnvPrefix = "PATHMAN_"

// UserConfigFile is the config file looked up under the XDG config dirs
const UserConfigFile = "pathman/config.toml"

//go:embed embedded/defaults.toml
var defaultConfig []byte

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// LoadOptions controls where Load looks for the user file
type LoadOptions struct {
	// ConfigFile is an explicit config path. It must exist when set.
	ConfigFile string
}

// Load builds the configuration from defaults, the user file and the
// environment. The result is not validated.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"separator": string(os.PathListSeparator),
	}, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse embedded defaults")
	}

	// 2. User file
	source, err := userConfigPath(opts)
	if err != nil {
		return nil, err
	}
	if source != "" {
		if err := k.Load(file.Provider(source), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", source).
				WithDetail("path", source)
		}
		logger.Debug().Str("path", source).Msg("Loaded config file")
	}

	// 3. Env vars
	err = k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	// 4. Unmarshal
	cfg := &Config{source: source}
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			TagName:          "koanf",
			Result:           cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode configuration")
	}

	logger.Trace().
		Str("separator", cfg.Separator).
		Str("split.format", cfg.Split.Format).
		Int("filter.workers", cfg.Filter.Workers).
		Msg("Configuration loaded")
	return cfg, nil
}

func userConfigPath(opts LoadOptions) (string, error) {
	if opts.ConfigFile != "" {
		if _, err := os.Stat(opts.ConfigFile); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file %s", opts.ConfigFile).
				WithDetail("path", opts.ConfigFile)
		}
		return opts.ConfigFile, nil
	}

	path, err := xdg.SearchConfigFile(UserConfigFile)
	if err != nil {
		// No user file is the normal case.
		return "", nil
	}
	return path, nil
}
