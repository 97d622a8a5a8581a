// Package config resolves the CLI settings from flags, NOTES_* environment
// variables and an optional YAML config file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Keys understood in the config file and environment.
const (
	KeyFile        = "file"
	KeyVerbose     = "verbose"
	KeyRenderStyle = "render_style"
)

// EnvPrefix prefixes every environment override (e.g. NOTES_FILE).
const EnvPrefix = "NOTES"

// Config holds the resolved settings.
type Config struct {
	File        string `yaml:"file" mapstructure:"file"`
	Verbose     bool   `yaml:"verbose" mapstructure:"verbose"`
	RenderStyle string `yaml:"render_style" mapstructure:"render_style"`
}

// DefaultConfig returns the settings used when nothing overrides them.
func DefaultConfig() *Config {
	return &Config{
		File:        "notes.json",
		RenderStyle: "auto",
	}
}

// Dir returns the directory searched for config.yaml.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "notes")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "notes")
}

// Load builds the configuration. configFile, when set, must exist; otherwise
// config.yaml is looked up in Dir() only, never in the working directory.
// Flags named after the keys are bound when present in flags.
func Load(flags *pflag.FlagSet, configFile string) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetDefault(KeyFile, cfg.File)
	v.SetDefault(KeyVerbose, cfg.Verbose)
	v.SetDefault(KeyRenderStyle, cfg.RenderStyle)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(Dir())
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for _, key := range []string{KeyFile, KeyVerbose, KeyRenderStyle} {
			flagName := strings.ReplaceAll(key, "_", "-")
			if f := flags.Lookup(flagName); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("config: bind flag %s: %w", flagName, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.File) == "" {
		return fmt.Errorf("config: %s must not be empty", KeyFile)
	}
	return nil
}
