// Package config loads tide-terminal settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ngmaloney/tide-terminal/internal/tide"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config holds all tide-terminal configuration.
type Config struct {
	// Saved trips live here.
	DatabasePath string `yaml:"database_path"`

	// Days shown by the calendar command and the TUI week strip.
	CalendarDays int `yaml:"calendar_days"`

	Detector DetectorConfig `yaml:"detector"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// DetectorConfig tunes high/low tide detection.
type DetectorConfig struct {
	Method           string  `yaml:"method"` // threshold, prominence
	StepMinutes      int     `yaml:"step_minutes"`
	HighThreshold    float64 `yaml:"high_threshold"`
	LowThreshold     float64 `yaml:"low_threshold"`
	MergeWindowHours float64 `yaml:"merge_window_hours"`
	MinProminence    float64 `yaml:"min_prominence"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // empty means stderr
}

// Default returns the built-in configuration.
func Default() *Config {
	p := tide.DefaultParams()
	return &Config{
		DatabasePath: filepath.Join(dataDir(), "tide-terminal.db"),
		CalendarDays: 7,
		Detector: DetectorConfig{
			Method:           string(p.Method),
			StepMinutes:      p.StepMinutes,
			HighThreshold:    p.HighThreshold,
			LowThreshold:     p.LowThreshold,
			MergeWindowHours: p.MergeWindow.Hours(),
			MinProminence:    p.MinProminence,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  filepath.Join(dataDir(), "tide-terminal.log"),
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/tide-terminal/config.yaml.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "tide-terminal", "config.yaml")
}

func dataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "tide-terminal")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "data"
	}
	return filepath.Join(home, ".local", "share", "tide-terminal")
}

// Load reads the file at path over the defaults. A missing file is not an
// error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}

// Validate checks every section.
func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return fmt.Errorf("%w: database_path is empty", ErrInvalid)
	}
	if c.CalendarDays < 1 || c.CalendarDays > 366 {
		return fmt.Errorf("%w: calendar_days %d is outside 1-366", ErrInvalid, c.CalendarDays)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalid, c.Logging.Level)
	}
	if err := c.DetectorParams().Validate(); err != nil {
		return fmt.Errorf("%w: detector: %w", ErrInvalid, err)
	}
	return nil
}

// DetectorParams converts the detector section for the tide package.
func (c *Config) DetectorParams() tide.DetectorParams {
	return tide.DetectorParams{
		Method:        tide.Method(c.Detector.Method),
		StepMinutes:   c.Detector.StepMinutes,
		HighThreshold: c.Detector.HighThreshold,
		LowThreshold:  c.Detector.LowThreshold,
		MergeWindow:   time.Duration(c.Detector.MergeWindowHours * float64(time.Hour)),
		MinProminence: c.Detector.MinProminence,
	}
}
