// Package config provides configuration loading and management for the
// sbol3 tooling.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/sbol3/export"
	"github.com/c360studio/sbol3/vocabulary"
)

// Config represents the complete sbol3 configuration
type Config struct {
	Design DesignConfig `yaml:"design"`
	Export ExportConfig `yaml:"export"`
	Log    LogConfig    `yaml:"log"`
}

// DesignConfig configures document assembly defaults
type DesignConfig struct {
	// Namespace is the default namespace for new documents when a manifest
	// does not declare one
	Namespace string `yaml:"namespace"`
}

// ExportConfig configures serialization settings
type ExportConfig struct {
	// Format is the default output format ("turtle", "ntriples", "jsonld")
	Format string `yaml:"format"`
	// Output is the output file path (empty = stdout)
	Output string `yaml:"output"`
}

// LogConfig configures logging output
type LogConfig struct {
	// Level is the minimum log level ("debug", "info", "warn", "error")
	Level string `yaml:"level"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Design: DesignConfig{
			Namespace: "https://example.org/designs",
		},
		Export: ExportConfig{
			Format: string(export.FormatTurtle),
			Output: "", // stdout
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if err := vocabulary.ValidateURI(c.Design.Namespace); err != nil {
		return fmt.Errorf("design.namespace: %w", err)
	}
	if _, err := export.ParseFormat(c.Export.Format); err != nil {
		return fmt.Errorf("export.format: %w", err)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn, or error")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for
// non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Design.Namespace != "" {
		c.Design.Namespace = other.Design.Namespace
	}

	if other.Export.Format != "" {
		c.Export.Format = other.Export.Format
	}
	if other.Export.Output != "" {
		c.Export.Output = other.Export.Output
	}

	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
}
