package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds verdant's runtime configuration.
type Config struct {
	// Logging
	LogLevel string `yaml:"log_level"` // debug, info, warn, error
	LogFile  string `yaml:"log_file"`  // empty logs to stderr

	// Play
	UndoCapacity    int    `yaml:"undo_capacity"`
	TransitionDelay string `yaml:"transition_delay"` // pause between a submit and the next round
	Rain            bool   `yaml:"rain"`
	Seed            int64  `yaml:"seed"` // 0 picks a time-based seed

	// Settings storage (gdata application name)
	SettingsApp string `yaml:"settings_app"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:        "info",
		UndoCapacity:    20,
		TransitionDelay: "1500ms",
		Rain:            true,
		SettingsApp:     "verdant",
	}
}

// Load reads a YAML config file over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}
	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("VERDANT_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("VERDANT_LOG_FILE"); v != "" {
		c.LogFile = v
	}
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	if c.UndoCapacity < 1 {
		return fmt.Errorf("undo_capacity must be at least 1, got %d", c.UndoCapacity)
	}
	if _, err := c.Delay(); err != nil {
		return err
	}
	return nil
}

// Delay parses TransitionDelay.
func (c *Config) Delay() (time.Duration, error) {
	if c.TransitionDelay == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.TransitionDelay)
	if err != nil {
		return 0, fmt.Errorf("invalid transition_delay %q: %w", c.TransitionDelay, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("transition_delay must not be negative, got %s", d)
	}
	return d, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
