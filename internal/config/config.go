// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"confluent-cost/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Defaults contains estimation defaults
	Defaults DefaultsConfig `json:"defaults"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// DefaultsConfig contains default estimation settings
type DefaultsConfig struct {
	// Tier is the default T-shirt size
	Tier string `json:"tier"`

	// AnnualIncreaseRate is the default escalation rate
	AnnualIncreaseRate float64 `json:"annual_increase_rate"`

	// StartYear is the default first fiscal year; 0 means the current year
	StartYear int `json:"start_year"`

	// MonthlyStrategy is the default monthly-breakdown policy
	MonthlyStrategy string `json:"monthly_strategy"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Defaults: DefaultsConfig{
			Tier:               "Medium",
			AnnualIncreaseRate: 0.034,
			StartYear:          0,
			MonthlyStrategy:    "flat-average",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
