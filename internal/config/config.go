// Package config reads and writes the mockbok.yaml configuration.
package config

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mockbok-dev/mockbok/internal/model"
	"github.com/mockbok-dev/mockbok/internal/service"
)

const dateLayout = "2006-01-02"

// Config is the top-level mockbok.yaml document.
type Config struct {
	Generation GenerationConfig `yaml:"generation"`
	Simulation SimulationConfig `yaml:"simulation"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// GenerationConfig controls the synthetic dataset.
type GenerationConfig struct {
	Seed        int64  `yaml:"seed"`
	DatasetSize int    `yaml:"dataset_size"`
	DateStart   string `yaml:"date_start"` // "YYYY-MM-DD", inclusive
	DateEnd     string `yaml:"date_end"`   // "YYYY-MM-DD", inclusive
	IncludeVAT  bool   `yaml:"include_vat"`
}

// SimulationConfig controls the fake network behavior.
type SimulationConfig struct {
	BaseDelayMillis int     `yaml:"base_delay_ms"`
	JitterMillis    int     `yaml:"jitter_ms"`
	ErrorRate       float64 `yaml:"error_rate"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Load reads a mockbok.yaml file from disk. Unknown keys are rejected
// rather than silently ignored.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the reference configuration: seed 42, 100 transactions
// over January 2024 with VAT, a 300ms±200ms simulated delay, and a 5%
// simulated error rate.
func Default() *Config {
	return &Config{
		Generation: GenerationConfig{
			Seed:        42,
			DatasetSize: 100,
			DateStart:   "2024-01-01",
			DateEnd:     "2024-01-31",
			IncludeVAT:  true,
		},
		Simulation: SimulationConfig{
			BaseDelayMillis: 300,
			JitterMillis:    200,
			ErrorRate:       0.05,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// GenerationModel converts the file form into the generator's typed
// configuration, parsing the date bounds.
func (c *Config) GenerationModel() (model.GenerationConfig, error) {
	start, err := time.ParseInLocation(dateLayout, c.Generation.DateStart, time.UTC)
	if err != nil {
		return model.GenerationConfig{}, fmt.Errorf("parsing date_start: %w", err)
	}
	end, err := time.ParseInLocation(dateLayout, c.Generation.DateEnd, time.UTC)
	if err != nil {
		return model.GenerationConfig{}, fmt.Errorf("parsing date_end: %w", err)
	}
	return model.GenerationConfig{
		Seed:           c.Generation.Seed,
		DatasetSize:    c.Generation.DatasetSize,
		DateRangeStart: start,
		DateRangeEnd:   end,
		IncludeVAT:     c.Generation.IncludeVAT,
	}, nil
}

// SimulationModel converts the file form into the facade's simulation
// settings.
func (c *Config) SimulationModel() service.Simulation {
	return service.Simulation{
		BaseDelay: time.Duration(c.Simulation.BaseDelayMillis) * time.Millisecond,
		Jitter:    time.Duration(c.Simulation.JitterMillis) * time.Millisecond,
		ErrorRate: c.Simulation.ErrorRate,
	}
}
