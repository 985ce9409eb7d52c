// Package config provides configuration loading for meetload.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mweber/meetload/internal/metrics"
)

// Config is the root configuration structure.
type Config struct {
	Calendar   string           `yaml:"calendar"`
	Output     string           `yaml:"output"`
	WorkWindow WorkWindowConfig `yaml:"work_window"`
}

// WorkWindowConfig configures what counts as working time.
type WorkWindowConfig struct {
	StartHour int      `yaml:"start_hour"`
	EndHour   int      `yaml:"end_hour"`
	Weekdays  []string `yaml:"weekdays"`
}

// Load reads configuration from the default location
// (~/.config/meetload/config.yaml). A missing file is not an error:
// the tool is usable without any configuration.
func Load() (*Config, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("get config dir: %w", err)
	}

	return LoadFrom(filepath.Join(configDir, "meetload", "config.yaml"))
}

// LoadFrom reads configuration from a specific path. A missing file
// yields the defaults; a malformed file is an error.
func LoadFrom(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(expandPath(path))
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyDefaults()
			return &cfg, nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	cfg.applyDefaults()
	cfg.Output = expandPath(cfg.Output)

	return &cfg, nil
}

// applyDefaults sets default values for unspecified config options.
func (c *Config) applyDefaults() {
	if c.Calendar == "" {
		c.Calendar = "primary"
	}
	if c.Output == "" {
		c.Output = "meeting-metrics.html"
	}
	def := metrics.DefaultWorkWindow()
	if c.WorkWindow.StartHour == 0 && c.WorkWindow.EndHour == 0 {
		c.WorkWindow.StartHour = def.StartHour
		c.WorkWindow.EndHour = def.EndHour
	}
	if len(c.WorkWindow.Weekdays) == 0 {
		for _, wd := range []time.Weekday{time.Sunday, time.Monday, time.Tuesday, time.Wednesday, time.Thursday} {
			c.WorkWindow.Weekdays = append(c.WorkWindow.Weekdays, strings.ToLower(wd.String()))
		}
	}
}

// ToWorkWindow converts the configured window into the aggregator's
// form, validating hour bounds and weekday names.
func (c *Config) ToWorkWindow() (metrics.WorkWindow, error) {
	window := metrics.WorkWindow{
		StartHour: c.WorkWindow.StartHour,
		EndHour:   c.WorkWindow.EndHour,
		Weekdays:  make(map[time.Weekday]bool, len(c.WorkWindow.Weekdays)),
	}

	for _, name := range c.WorkWindow.Weekdays {
		wd, err := parseWeekday(name)
		if err != nil {
			return metrics.WorkWindow{}, err
		}
		window.Weekdays[wd] = true
	}

	if err := window.Validate(); err != nil {
		return metrics.WorkWindow{}, err
	}
	return window, nil
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func parseWeekday(name string) (time.Weekday, error) {
	if wd, ok := weekdays[strings.ToLower(strings.TrimSpace(name))]; ok {
		return wd, nil
	}
	return 0, fmt.Errorf("unknown weekday %q in work_window.weekdays", name)
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
