package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Royale struct {
		APIKey string `yaml:"api_key"`
	} `yaml:"royale"`
	Planner struct {
		GemToGoldRatio float64 `yaml:"gem_to_gold_ratio"`
	} `yaml:"planner"`
	Catalog struct {
		FallbackPath string `yaml:"fallback_path"`
	} `yaml:"catalog"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("ROYALE_API_KEY"); v != "" {
		cfg.Royale.APIKey = v
	}
	if v := os.Getenv("LEVELCALC_DB"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}

	// Defaults
	if cfg.Planner.GemToGoldRatio == 0 {
		cfg.Planner.GemToGoldRatio = 125.0
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4000
	}

	return cfg, nil
}

// Validate checks the fields required for API-backed workflows.
func (c *Config) Validate() error {
	if c.Royale.APIKey == "" {
		return fmt.Errorf("royale.api_key is required (or set ROYALE_API_KEY)")
	}
	if c.Planner.GemToGoldRatio <= 0 {
		return fmt.Errorf("planner.gem_to_gold_ratio must be positive")
	}
	return nil
}
