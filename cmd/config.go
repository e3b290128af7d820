package cmd

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/etnz/taxfolio"
	"github.com/etnz/taxfolio/date"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
)

// DefaultConfigFile is looked up in the working directory.
const DefaultConfigFile = "taxfolio.toml"

// Config holds the optional settings of taxfolio.toml.
type Config struct {
	Locale  string        `toml:"locale"`
	Today   string        `toml:"today"` // pins the running year, mostly for reproducible reports
	Charts  ChartsConfig  `toml:"charts"`
	Logging LoggingConfig `toml:"logging"`
}

// ChartsConfig holds chart bucketing settings.
type ChartsConfig struct {
	TopN        int      `toml:"top_n"`
	OthersLabel string   `toml:"others_label"`
	MonthLabels []string `toml:"month_labels"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `toml:"level"`
}

// NewDefaultConfig returns a Config with the engine defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Locale: taxfolio.DefaultLocale,
		Charts: ChartsConfig{
			TopN:        taxfolio.DefaultTopN,
			OthersLabel: taxfolio.DefaultOthersLabel,
			MonthLabels: slices.Clone(taxfolio.DefaultMonthLabels[:]),
		},
		Logging: LoggingConfig{Level: "warn"},
	}
}

// LoadConfig loads path over the defaults. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	config := NewDefaultConfig()
	if path == "" {
		return config, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return config, nil
}

// Engine validates c and turns it into the engine configuration.
func (c *Config) Engine() (taxfolio.Config, error) {
	cfg := taxfolio.DefaultConfig()
	if c.Locale != "" {
		if err := taxfolio.CheckLocale(c.Locale); err != nil {
			return cfg, err
		}
		cfg.Locale = c.Locale
	}
	if c.Today != "" {
		on, err := date.Parse(c.Today)
		if err != nil {
			return cfg, fmt.Errorf("invalid today in config: %w", err)
		}
		cfg.Today = on
	}
	if c.Charts.TopN < 0 {
		return cfg, fmt.Errorf("invalid charts.top_n %d: must not be negative", c.Charts.TopN)
	}
	if c.Charts.TopN > 0 {
		cfg.TopN = c.Charts.TopN
	}
	if c.Charts.OthersLabel != "" {
		cfg.OthersLabel = c.Charts.OthersLabel
	}
	if n := len(c.Charts.MonthLabels); n > 0 {
		if n != 12 {
			return cfg, fmt.Errorf("invalid charts.month_labels: want 12 labels, got %d", n)
		}
		copy(cfg.MonthLabels[:], c.Charts.MonthLabels)
	}
	return cfg, nil
}

// logLevel returns the configured level, warn when unknown.
func (c *Config) logLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(c.Logging.Level))
	if err != nil || c.Logging.Level == "" {
		return zerolog.WarnLevel
	}
	return level
}
