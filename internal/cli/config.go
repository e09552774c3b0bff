// Package cli holds the ambient wiring shared by the smilesctl command
// tree: configuration loading and logger construction.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// envPrefix is the environment-variable prefix for every smilesctl setting.
const envPrefix = "SMILESCTL"

// Config holds smilesctl's runtime settings. Every field binds to both a
// config-file key and a SMILESCTL_ prefixed environment variable of the
// same name, uppercased.
type Config struct {
	LogLevel string `mapstructure:"log_level"`
	Format   string `mapstructure:"format"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetDefault("log_level", "info")
	v.SetDefault("format", "text")
	return v
}

// LoadConfig reads configPath (when non-empty) and layers SMILESCTL_*
// environment overrides and built-in defaults on top. A missing configPath
// is not an error: settings then come entirely from the environment and
// defaults.
func LoadConfig(configPath string) (*Config, error) {
	v := newViper()
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("cli: failed to read config file %q: %w", configPath, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("cli: failed to unmarshal configuration: %w", err)
	}
	return cfg, nil
}
