// Package config loads pathman's configuration.
//
// Sources are layered with koanf, later ones winning:
//
//  1. built-in defaults (embedded/defaults.toml plus the platform separator)
//  2. the user file: --config, or $XDG_CONFIG_HOME/pathman/config.toml
//  3. PATHMAN_* environment variables (PATHMAN_SPLIT_FORMAT -> split.format)
//
// Command-line flags are applied by the caller on the returned Config.
package config
