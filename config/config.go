// Package config loads the HTTP server configuration. Values come from an
// optional YAML config file with built-in defaults for everything.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// ServerConfig holds the settings for the schedsim HTTP API.
type ServerConfig struct {
	Port           int
	DefaultQuantum int64
}

// Load reads the server configuration. When path is empty, viper looks for a
// config.yaml in the working directory; a missing file is not an error and
// defaults apply.
func Load(path string) (*ServerConfig, error) {
	v := viper.New()
	v.SetDefault("server.port", 9095)
	v.SetDefault("scheduler.default_quantum", 2)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading server config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("reading server config: %w", err)
			}
		}
	}

	cfg := &ServerConfig{
		Port:           v.GetInt("server.port"),
		DefaultQuantum: v.GetInt64("scheduler.default_quantum"),
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("server.port must be in (0, 65535], got %d", cfg.Port)
	}
	if cfg.DefaultQuantum <= 0 {
		return nil, fmt.Errorf("scheduler.default_quantum must be positive, got %d", cfg.DefaultQuantum)
	}
	return cfg, nil
}
