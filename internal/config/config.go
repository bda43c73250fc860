// Package config loads bridge settings through viper: built-in defaults,
// an optional YAML file, BRIDGE_* environment variables and CLI flags.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/Iron-Ham/bridge/internal/abstraction"
	"github.com/Iron-Ham/bridge/internal/implementor"
	"github.com/spf13/viper"
)

// AppName names the config directory and env prefix.
const AppName = "bridge"

// EnvPrefix is the prefix for environment overrides, e.g. BRIDGE_DEMO_ABSTRACTION.
const EnvPrefix = "BRIDGE"

// Config represents the complete bridge configuration
type Config struct {
	Demo    DemoConfig    `mapstructure:"demo" yaml:"demo"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// DemoConfig controls which variants the composition root wires together
type DemoConfig struct {
	// Implementors lists implementor names in the order they are built and run
	Implementors []string `mapstructure:"implementors" yaml:"implementors"`
	// Abstraction is the abstraction kind wrapped around every implementor
	// Options: "refined", "logged"
	Abstraction string `mapstructure:"abstraction" yaml:"abstraction"`
}

// LoggingConfig controls debug logging
type LoggingConfig struct {
	// Enabled turns structured logging on (default: false)
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	// Level is the minimum level written: "debug", "info", "warn", "error"
	Level string `mapstructure:"level" yaml:"level"`
	// Dir holds debug.log; empty writes to stderr
	Dir string `mapstructure:"dir" yaml:"dir"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Demo: DemoConfig{
			Implementors: []string{implementor.NameA, implementor.NameB},
			Abstraction:  abstraction.KindRefined,
		},
		Logging: LoggingConfig{
			Enabled: false,
			Level:   "info",
			Dir:     "",
		},
	}
}

// SetDefaults registers Default() values with viper so that unset keys
// resolve to them.
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("demo.implementors", defaults.Demo.Implementors)
	viper.SetDefault("demo.abstraction", defaults.Demo.Abstraction)

	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
}

// BindEnv wires BRIDGE_* environment overrides into viper.
// Dots in keys become underscores, e.g. BRIDGE_LOGGING_LEVEL for logging.level.
func BindEnv() {
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Env values arrive as a single string; "a,b" means two names.
	cfg.Demo.Implementors = splitNames(cfg.Demo.Implementors)

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "." + AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// splitNames expands comma-separated entries and trims whitespace.
func splitNames(names []string) []string {
	var out []string
	for _, entry := range names {
		for _, name := range strings.Split(entry, ",") {
			out = append(out, strings.TrimSpace(name))
		}
	}
	return out
}
