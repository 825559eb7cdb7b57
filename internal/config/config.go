// Package config loads map generator settings from a YAML file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/talgya/hexregions/internal/world"
)

// Config holds all generator configuration
type Config struct {
	Map      MapConfig      `yaml:"map"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
}

// MapConfig holds map generation settings
type MapConfig struct {
	Width    int   `yaml:"width"`
	Height   int   `yaml:"height"`
	Regions  int   `yaml:"regions"`
	Passes   *int  `yaml:"passes"` // nil = default; 0 is a valid pass count
	Seed     int64 `yaml:"seed"`   // 0 = random
	Variants int   `yaml:"variants"`
}

// DatabaseConfig holds the run ledger location. An empty path disables it.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()
	if _, err := cfg.Log.SlogLevel(); err != nil {
		return nil, err
	}
	if err := cfg.GenConfig().Validate(); err != nil {
		return nil, fmt.Errorf("invalid map config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	def := world.DefaultGenConfig()
	if c.Map.Width == 0 {
		c.Map.Width = def.Width
	}
	if c.Map.Height == 0 {
		c.Map.Height = def.Height
	}
	if c.Map.Regions == 0 {
		c.Map.Regions = def.Regions
	}
	if c.Map.Passes == nil {
		passes := def.Passes
		c.Map.Passes = &passes
	}
	if c.Map.Variants == 0 {
		c.Map.Variants = def.Variants
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// GenConfig converts the map section into generator parameters.
func (c *Config) GenConfig() world.GenConfig {
	gc := world.DefaultGenConfig()
	gc.Width = c.Map.Width
	gc.Height = c.Map.Height
	gc.Regions = c.Map.Regions
	if c.Map.Passes != nil {
		gc.Passes = *c.Map.Passes
	}
	gc.Seed = c.Map.Seed
	gc.Variants = c.Map.Variants
	return gc
}

// SlogLevel parses the configured level name.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", l.Level)
}
