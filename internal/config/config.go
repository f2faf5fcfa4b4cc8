package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/harrison/fsnamer/internal/codec"
)

// SettingsDir is the per-project settings directory.
const SettingsDir = ".fsnamer"

// DefaultCheckConfig is the check configuration file looked up in the working
// directory when none is given.
const DefaultCheckConfig = "fsnamer.toml"

// Config represents fsnamer tool settings
type Config struct {
	// Convention is the naming convention used by fix (see 'fsnamer conventions')
	Convention string `yaml:"convention"`

	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// LogDir is the directory where run logs are written ("" disables file logging)
	LogDir string `yaml:"log_dir"`

	// RequireRepository refuses to walk outside a git repository
	RequireRepository bool `yaml:"require_repository"`

	// IncludeHidden visits dot-files and dot-directories
	IncludeHidden bool `yaml:"include_hidden"`

	// IgnoreFiles are extra gitignore-style files applied to every fix run
	IgnoreFiles []string `yaml:"ignore_files"`

	// CheckConfig is the check configuration file
	CheckConfig string `yaml:"check_config"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		Convention:        codec.KebabCase.String(),
		LogLevel:          "info",
		LogDir:            "",
		RequireRepository: true,
		IncludeHidden:     false,
		CheckConfig:       DefaultCheckConfig,
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Booleans default to non-zero values, so only keys present in the
	// document override them.
	var rawMap map[string]interface{}
	if err := yaml.Unmarshal(data, &rawMap); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if fileCfg.Convention != "" {
		cfg.Convention = fileCfg.Convention
	}
	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}
	if _, exists := rawMap["log_dir"]; exists {
		cfg.LogDir = fileCfg.LogDir
	}
	if _, exists := rawMap["require_repository"]; exists {
		cfg.RequireRepository = fileCfg.RequireRepository
	}
	if _, exists := rawMap["include_hidden"]; exists {
		cfg.IncludeHidden = fileCfg.IncludeHidden
	}
	if len(fileCfg.IgnoreFiles) > 0 {
		cfg.IgnoreFiles = fileCfg.IgnoreFiles
	}
	if fileCfg.CheckConfig != "" {
		cfg.CheckConfig = fileCfg.CheckConfig
	}

	// Relative paths are relative to the project directory that holds
	// .fsnamer/, or to the file's own directory for a settings file
	// stored elsewhere.
	projectDir := filepath.Dir(path)
	if filepath.Base(projectDir) == SettingsDir {
		projectDir = filepath.Dir(projectDir)
	}
	cfg.LogDir = resolveFrom(projectDir, cfg.LogDir)
	for i, f := range cfg.IgnoreFiles {
		cfg.IgnoreFiles[i] = resolveFrom(projectDir, f)
	}
	if _, exists := rawMap["check_config"]; exists {
		cfg.CheckConfig = resolveFrom(projectDir, cfg.CheckConfig)
	}

	return cfg, nil
}

// LoadConfigFromDir loads configuration from .fsnamer/config.yaml in the specified directory
// If the directory or file doesn't exist, returns default configuration without error
func LoadConfigFromDir(dir string) (*Config, error) {
	configPath := filepath.Join(dir, SettingsDir, "config.yaml")
	return LoadConfig(configPath)
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
// This allows CLI flags to take precedence over config file settings
func (c *Config) MergeWithFlags(convention *string, logLevel *string, logDir *string, requireRepository *bool, includeHidden *bool, checkConfig *string) {
	if convention != nil {
		c.Convention = *convention
	}
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if logDir != nil {
		c.LogDir = *logDir
	}
	if requireRepository != nil {
		c.RequireRepository = *requireRepository
	}
	if includeHidden != nil {
		c.IncludeHidden = *includeHidden
	}
	if checkConfig != nil {
		c.CheckConfig = *checkConfig
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	if _, err := codec.ParseConvention(c.Convention); err != nil {
		return fmt.Errorf("invalid convention: %w", err)
	}

	if c.CheckConfig == "" {
		return fmt.Errorf("check_config cannot be empty")
	}

	return nil
}

// ParsedConvention returns the configured convention. Call Validate first.
func (c *Config) ParsedConvention() codec.Convention {
	conv, err := codec.ParseConvention(c.Convention)
	if err != nil {
		return codec.KebabCase
	}
	return conv
}

func resolveFrom(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
