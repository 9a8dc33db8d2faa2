// Package config loads shortcrypt CLI settings from flags, environment
// variables, and an optional config file, in that order of precedence,
// following the layering dittofs's pkg/config package establishes for its
// own server configuration.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the settings every shortcrypt subcommand needs to build a
// ShortCrypt instance and report its work.
type Config struct {
	// Key is the raw obfuscation key. Empty if KeyFile is set instead.
	Key string `mapstructure:"key"`

	// KeyFile, if set, names a file whose entire contents (trimmed of a
	// single trailing newline) are used as the raw key.
	KeyFile string `mapstructure:"key-file"`

	// Transport selects "url" or "qr" encoding for encrypt/decrypt/rotate.
	Transport string `mapstructure:"transport"`

	// Workers bounds batch command concurrency; 0 defaults to NumCPU.
	Workers int `mapstructure:"workers"`

	LogLevel  string `mapstructure:"log-level"`
	LogFormat string `mapstructure:"log-format"`
}

// Load builds a viper instance layering a config file (if cfgFile is
// non-empty), SHORTCRYPT_-prefixed environment variables, and defaults,
// then unmarshals it into a Config. Flags are bound by the caller before
// Load runs, via v.BindPFlags, so CLI flags always win.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	v.SetEnvPrefix("SHORTCRYPT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("transport", "url")
	v.SetDefault("workers", 0)
	v.SetDefault("log-level", "INFO")
	v.SetDefault("log-format", "text")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("shortcrypt: read config file %q: %w", cfgFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("shortcrypt: parse config: %w", err)
	}
	return &cfg, nil
}

// ResolveKey returns the raw key bytes from Key or KeyFile. Exactly one of
// the two must be set.
func (c *Config) ResolveKey() ([]byte, error) {
	if c.Key != "" && c.KeyFile != "" {
		return nil, fmt.Errorf("shortcrypt: --key and --key-file are mutually exclusive")
	}
	if c.Key != "" {
		return []byte(c.Key), nil
	}
	if c.KeyFile != "" {
		data, err := os.ReadFile(c.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("shortcrypt: read key file: %w", err)
		}
		return []byte(strings.TrimSuffix(string(data), "\n")), nil
	}
	return nil, fmt.Errorf("shortcrypt: one of --key or --key-file is required")
}
