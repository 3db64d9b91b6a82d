package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultRows           = 30
	DefaultCols           = 60
	DefaultTicksPerSecond = 2
	DefaultMaxTicks       = 1000
	DefaultDensity        = 0.15
	DefaultDataDir        = ".lifelab"
)

// Config holds the simulation settings shared by the CLI and the TUI.
type Config struct {
	Rows           int     `yaml:"rows"`
	Cols           int     `yaml:"cols"`
	TicksPerSecond int     `yaml:"ticks_per_second"`
	MaxTicks       int     `yaml:"max_ticks"`
	Pattern        string  `yaml:"pattern"`
	Density        float64 `yaml:"density"`
	Seed           int64   `yaml:"seed"`
	DataDir        string  `yaml:"data_dir"`
}

func DefaultConfig() *Config {
	return &Config{
		Rows:           DefaultRows,
		Cols:           DefaultCols,
		TicksPerSecond: DefaultTicksPerSecond,
		MaxTicks:       DefaultMaxTicks,
		Density:        DefaultDensity,
		DataDir:        DefaultDataDir,
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects degenerate settings before a simulation starts.
func (c *Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("board dimensions must be positive, got %dx%d", c.Rows, c.Cols)
	}
	if c.TicksPerSecond <= 0 {
		return fmt.Errorf("ticks per second must be positive, got %d", c.TicksPerSecond)
	}
	if c.MaxTicks < 0 {
		return fmt.Errorf("max ticks must not be negative, got %d", c.MaxTicks)
	}
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("density must be in [0,1], got %f", c.Density)
	}
	return nil
}
