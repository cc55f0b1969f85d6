// Package config loads CLI settings from an optional YAML file and
// SUBSAVE_* environment variables.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the backing file used when neither the config file nor a
// flag names one.
const DefaultFile = "subscriptions.csv"

// Config holds settings shared by all subcommands.
type Config struct {
	File     string `yaml:"file" env:"SUBSAVE_FILE"`           // backing file path
	LogLevel string `yaml:"log_level" env:"SUBSAVE_LOG_LEVEL"` // "debug" | "info" | "warn" | "error"
	Format   string `yaml:"format" env:"SUBSAVE_FORMAT"`       // "text" | "json"
}

// Default returns the settings used when no config file is given.
func Default() Config {
	return Config{
		File:     DefaultFile,
		LogLevel: "info",
		Format:   "text",
	}
}

// Load reads the YAML file at path over the defaults. Unknown keys are
// rejected so a typo such as "fiel:" fails instead of being ignored.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overlays the SUBSAVE_* environment variables that are set and
// non-empty on cfg.
func ApplyEnv(cfg Config) (Config, error) {
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid environment: %w", err)
	}
	return cfg, nil
}

// Validate checks that every field holds a supported value.
func (c Config) Validate() error {
	if c.File == "" {
		return errors.New("file must not be empty")
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid format %q: must be text or json", c.Format)
	}
	return nil
}

// ParseLevel maps a log_level value to a slog level.
func ParseLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log_level %q: must be debug, info, warn or error", level)
	}
}
