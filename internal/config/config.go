package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration for a conversion run. All fields can
// also be set through CLI flags; flags take precedence over the file.
type Config struct {
	Files      FilesConfig      `yaml:"files"`
	Conversion ConversionConfig `yaml:"conversion"`
}

// FilesConfig names the source export and the destination ledger file.
type FilesConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

// ConversionConfig holds mapping parameters.
type ConversionConfig struct {
	// Fiat is the local-currency code used to decide the sent/received
	// direction of buy and sell rows.
	Fiat string `yaml:"fiat"`
}

// Load reads a YAML config file and expands environment variables.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// Expand ${VAR} environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config yaml: %w", err)
	}

	return &cfg, nil
}

// LoadAndValidate loads config, applies defaults, and validates.
func LoadAndValidate(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}
