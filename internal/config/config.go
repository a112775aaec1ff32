// Package config loads refa configuration: the JSON config file under
// .refa/, environment overrides, and the optional TOML naming rules file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// ConfigDirName is the per-project configuration directory.
const ConfigDirName = ".refa"

// Config represents the complete refa configuration.
type Config struct {
	Version int `json:"version" mapstructure:"version"`

	Rename  RenameConfig  `json:"rename" mapstructure:"rename"`
	Lint    LintConfig    `json:"lint" mapstructure:"lint"`
	Logging LoggingConfig `json:"logging" mapstructure:"logging"`
}

// RenameConfig contains rename engine configuration.
type RenameConfig struct {
	// DefaultStyle is used when --style is not given: camel, pascal or
	// snake. Empty means ask interactively.
	DefaultStyle string `json:"defaultStyle" mapstructure:"defaultStyle"`

	// RulesFile points to the TOML naming rules file, relative to the
	// config directory.
	RulesFile string `json:"rulesFile" mapstructure:"rulesFile"`
}

// LintConfig contains external linter configuration.
type LintConfig struct {
	// Command is the linter executable. Resolved via PATH when not absolute.
	Command string `json:"command" mapstructure:"command"`

	// TimeoutMs bounds a single linter run.
	TimeoutMs int `json:"timeoutMs" mapstructure:"timeoutMs"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level string `json:"level" mapstructure:"level"`
	File  string `json:"file" mapstructure:"file"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Rename: RenameConfig{
			DefaultStyle: "",
			RulesFile:    "naming.toml",
		},
		Lint: LintConfig{
			Command:   "eslint",
			TimeoutMs: 30000,
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

// LoadConfig reads config.json from root/.refa if present, applying defaults
// and REFA_* environment overrides. A missing file is not an error.
func LoadConfig(root string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(root, ConfigDirName))
	v.SetEnvPrefix("REFA")
	v.AutomaticEnv()

	def := DefaultConfig()
	v.SetDefault("version", def.Version)
	v.SetDefault("rename.defaultStyle", def.Rename.DefaultStyle)
	v.SetDefault("rename.rulesFile", def.Rename.RulesFile)
	v.SetDefault("lint.command", def.Lint.Command)
	v.SetDefault("lint.timeoutMs", def.Lint.TimeoutMs)
	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.file", def.Logging.File)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// ConfigDir returns the .refa directory for root, creating it if asked.
func ConfigDir(root string, create bool) (string, error) {
	dir := filepath.Join(root, ConfigDirName)
	if create {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create config dir: %w", err)
		}
	}
	return dir, nil
}
