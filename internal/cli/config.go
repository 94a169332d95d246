package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mjdesu1/intramurals-engine/internal/schedule"
)

// Config is the YAML configuration for the CLI.
//
// Example:
//
//	database: ./intrams.db
//	events_dir: ./events
//	scheduling:
//	  baseline_hour: 9
//	  slot_interval_hours: 2
//	  slots_per_day: 3
//	  final_hour: 16
type Config struct {
	Database   string          `yaml:"database"`
	EventsDir  string          `yaml:"events_dir"`
	Scheduling schedule.Config `yaml:"scheduling"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Database:   "intrams.db",
		EventsDir:  "events",
		Scheduling: schedule.DefaultConfig(),
	}
}

// LoadConfig reads a YAML config file, filling unset fields with defaults.
// An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.Database == "" {
		cfg.Database = DefaultConfig().Database
	}
	if cfg.EventsDir == "" {
		cfg.EventsDir = DefaultConfig().EventsDir
	}
	if cfg.Scheduling.SlotIntervalHours == 0 {
		cfg.Scheduling = schedule.DefaultConfig()
	}

	return cfg, nil
}
