// Package config loads the run configuration of the solver from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"aoc2023/internal/report"
)

var ErrInvalid = errors.New("invalid config")

// Config selects the input, the part to solve and how to present the answer.
type Config struct {
	// Input is the puzzle input path; "-" reads stdin.
	Input string `yaml:"input"`
	// Part is 1 (individual seeds) or 2 (seed ranges).
	Part int `yaml:"part"`
	// Format is one of report.FormatText or report.FormatYAML.
	Format string `yaml:"format"`
	// LogLevel is a zap level name ("debug", "info", ...).
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	var c Config
	applyDefaults(&c)

	return &c
}

// LoadFile loads and parses a YAML config file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config.
func Parse(data []byte) (*Config, error) {
	var c Config

	err := yaml.Unmarshal(data, &c)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&c)

	return &c, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(c *Config) {
	if c.Part == 0 {
		c.Part = 2
	}

	if c.Format == "" {
		c.Format = report.FormatText
	}

	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate checks that every field holds a supported value.
func (c *Config) Validate() error {
	if c.Part != 1 && c.Part != 2 {
		return fmt.Errorf("%w: part must be 1 or 2, got %d", ErrInvalid, c.Part)
	}

	if c.Format != report.FormatText && c.Format != report.FormatYAML {
		return fmt.Errorf("%w: unknown format %q", ErrInvalid, c.Format)
	}

	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Level returns LogLevel as a zap level.
func (c *Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return lvl, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return lvl, nil
}
