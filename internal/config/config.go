// Package config loads huffpack settings from defaults, an optional YAML
// file, and HUFFPACK_ environment variables, in increasing precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is stripped from environment variables before they become keys:
// HUFFPACK_LOGGER_LEVEL sets logger.level.
const EnvPrefix = "HUFFPACK_"

// Keys understood by huffpack.
const (
	KeyLogLevel      = "logger.level"
	KeyLogPrettier   = "logger.prettier"
	KeyLogTimeFormat = "logger.time-format"
	KeyMaxInputSize  = "codec.max-input-size"
)

// Defaults holds the built-in value of every key.
var Defaults = map[string]interface{}{
	KeyLogLevel:      "info",
	KeyLogPrettier:   true,
	KeyLogTimeFormat: "2006-01-02T15:04:05Z07:00",
	KeyMaxInputSize:  int64(4294967295),
}

// Load builds a Conf from the defaults, the YAML file at path (skipped when
// path is empty), and the environment.
func Load(path string) (*Conf, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(Defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %q: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	return &Conf{Koanf: k}, nil
}

// envKey maps HUFFPACK_LOGGER_TIME_FORMAT to logger.time-format.  The first
// underscore separates the section from the key; later ones become dashes.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, rest, found := strings.Cut(key, "_")
	if !found {
		return key
	}
	return section + "." + strings.ReplaceAll(rest, "_", "-")
}
