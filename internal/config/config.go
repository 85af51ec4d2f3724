// Package config provides configuration loading and validation for the CLI
// and the analysis server.
package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Defaults
const (
	DefaultPort          = 5001
	DefaultModelPath     = "models/resume_quality_model.json"
	DefaultMaxUploadSize = 10 * 1024 * 1024
	DefaultLogLevel      = "info"
)

// Environment variables read by FromEnv.
const (
	EnvDatabaseURL   = "DATABASE_URL"
	EnvModelPath     = "ML_MODEL_PATH"
	EnvPort          = "PORT"
	EnvMaxUploadSize = "MAX_UPLOAD_SIZE"
	EnvLogLevel      = "LOG_LEVEL"
)

// Config represents settings that can be loaded from a JSON file or the
// environment. All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	DatabaseURL   string `json:"database_url,omitempty"`    // PostgreSQL connection URL; empty disables persistence
	ModelPath     string `json:"model_path,omitempty"`      // Trained predictor artifact
	Port          int    `json:"port,omitempty"`            // HTTP listen port
	MaxUploadSize int64  `json:"max_upload_size,omitempty"` // Maximum request body in bytes
	LogLevel      string `json:"log_level,omitempty"`       // debug, info, warn or error
	Verbose       bool   `json:"verbose,omitempty"`         // Print detailed summaries
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		ModelPath:     DefaultModelPath,
		Port:          DefaultPort,
		MaxUploadSize: DefaultMaxUploadSize,
		LogLevel:      DefaultLogLevel,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv reads configuration from environment variables. Unset variables
// leave fields empty so they can be merged with other sources.
func FromEnv() (*Config, error) {
	cfg := &Config{
		DatabaseURL: os.Getenv(EnvDatabaseURL),
		ModelPath:   os.Getenv(EnvModelPath),
		LogLevel:    os.Getenv(EnvLogLevel),
	}

	if v := os.Getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("config error: %s must be an integer: %w", EnvPort, err)
		}
		cfg.Port = port
	}

	if v := os.Getenv(EnvMaxUploadSize); v != "" {
		size, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("config error: %s must be an integer: %w", EnvMaxUploadSize, err)
		}
		cfg.MaxUploadSize = size
	}

	return cfg, nil
}

// Validate checks that the configuration has valid values.
// Zero values are allowed since they are filled by MergeWithDefaults.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 1 and 65535")
	}
	if c.MaxUploadSize < 0 {
		return fmt.Errorf("config error: 'max_upload_size' must be non-negative")
	}
	if c.LogLevel != "" {
		if _, err := ParseLogLevel(c.LogLevel); err != nil {
			return fmt.Errorf("config error: %w", err)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.ModelPath == "" {
		result.ModelPath = defaults.ModelPath
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.MaxUploadSize == 0 {
		result.MaxUploadSize = defaults.MaxUploadSize
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}

// Resolve layers an optional config file over the environment over the
// built-in defaults, and validates the result.
func Resolve(path string) (*Config, error) {
	env, err := FromEnv()
	if err != nil {
		return nil, err
	}
	merged := env.MergeWithDefaults(Defaults())

	if path != "" {
		file, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		merged = file.MergeWithDefaults(merged)
	}

	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

// ParseLogLevel maps a level name to a slog.Level.
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
}
