package rarity

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config holds the configuration for an Analyzer.
type Config struct {
	Strategy      string `yaml:"strategy"`       // Scoring strategy name
	MaxConcurrent int    `yaml:"max_concurrent"` // Maximum concurrent scoring workers
	Precision     int32  `yaml:"precision"`      // Decimal places for display totals
	EnableMetrics bool   `yaml:"enable_metrics"` // Record Prometheus metrics
}

// DefaultPrecision is the number of decimal places display totals are
// rounded to when Config.Precision is unset.
const DefaultPrecision = 4

// NewDefaultConfig creates a config with sensible defaults
func NewDefaultConfig() Config {
	return Config{
		Strategy:      StrategyStatistical,
		MaxConcurrent: 1,
		Precision:     DefaultPrecision,
	}
}

// NewProductionConfig creates a config with parallel scoring and metrics
// enabled
func NewProductionConfig() Config {
	cfg := NewDefaultConfig()
	cfg.MaxConcurrent = runtime.GOMAXPROCS(0)
	cfg.EnableMetrics = true
	return cfg
}

// LoadConfig reads a Config from a YAML file, applying defaults for any
// omitted fields.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Config{}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if cfg.Strategy == "" {
		cfg.Strategy = StrategyStatistical
	}
	if cfg.MaxConcurrent == 0 {
		cfg.MaxConcurrent = 1
	}
	if cfg.Precision == 0 {
		cfg.Precision = DefaultPrecision
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// WithStrategy sets the scoring strategy by name
func (c Config) WithStrategy(name string) Config {
	c.Strategy = name
	return c
}

// WithMaxConcurrent sets the maximum concurrent scoring workers
func (c Config) WithMaxConcurrent(max int) Config {
	if max < 0 {
		panic("MaxConcurrent must be non-negative")
	}
	c.MaxConcurrent = max
	return c
}

// WithPrecision sets the decimal precision used for display totals
func (c Config) WithPrecision(places int32) Config {
	if places < 0 {
		panic("Precision must be non-negative")
	}
	c.Precision = places
	return c
}

// WithMetrics enables Prometheus metrics recording
func (c Config) WithMetrics() Config {
	c.EnableMetrics = true
	return c
}

// Validate checks if the config is valid
func (c Config) Validate() error {
	if c.Strategy != "" {
		if _, err := StrategyByName(c.Strategy); err != nil {
			return err
		}
	}

	if c.MaxConcurrent < 0 {
		return errors.New("MaxConcurrent must be non-negative")
	}

	if c.Precision < 0 {
		return errors.New("Precision must be non-negative")
	}

	return nil
}
