// Package config loads knightpath settings with viper from an optional
// config file and KNIGHTPATH_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "KNIGHTPATH"

// ErrInvalidConfig wraps validation failures.
var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	ServerPort string `mapstructure:"SERVER_PORT"`
	LogLevel   string `mapstructure:"LOG_LEVEL"`
	// MaxDepth bounds the search; 0 means no limit.
	MaxDepth int `mapstructure:"MAX_DEPTH"`
}

// Setup reads cfgPath when non-empty, then overlays environment variables.
func Setup(cfgPath string) (*Config, error) {
	v := viper.New()
	v.SetDefault("SERVER_PORT", ":8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_DEPTH", 0)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", cfgPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects settings the command cannot run with.
func (c *Config) Validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("%w: SERVER_PORT is empty", ErrInvalidConfig)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: MAX_DEPTH cannot be negative (%d)", ErrInvalidConfig, c.MaxDepth)
	}
	return nil
}
