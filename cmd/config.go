package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the settings of the quote source and the update
// schedule, for the update and watch commands.
type Config struct {
	Quote struct {
		URL  string `yaml:"url"`  // JSON quote endpoint
		Path string `yaml:"path"` // jsonpath of the price in the response
	} `yaml:"quote"`
	SeriesFile string `yaml:"series_file"`
	Schedule   string `yaml:"schedule"` // cron expression for watch
}

// LoadConfig reads config from a YAML file, then applies environment
// variable overrides and defaults.
func LoadConfig(path string) (*Config, error) {
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
	if v := os.Getenv("HOLD_QUOTE_URL"); v != "" {
		cfg.Quote.URL = v
	}
	if v := os.Getenv("HOLD_QUOTE_PATH"); v != "" {
		cfg.Quote.Path = v
	}
	if v := os.Getenv("HOLD_SERIES_FILE"); v != "" {
		cfg.SeriesFile = v
	}

	// Defaults
	if cfg.SeriesFile == "" {
		cfg.SeriesFile = *seriesFile
	}
	if cfg.Quote.Path == "" {
		cfg.Quote.Path = "$.last"
	}
	if cfg.Schedule == "" {
		cfg.Schedule = "@hourly"
	}
	return cfg, nil
}

// Validate reports the settings a quote fetch cannot run without.
func (c *Config) Validate() error {
	if c.Quote.URL == "" {
		return fmt.Errorf("missing quote url (config 'quote.url' or HOLD_QUOTE_URL)")
	}
	return nil
}
