// Package schedule assigns dates, time slots, and venues to bracket matches
// and projects them into a flat, time-ordered schedule.
//
// Plan stamps scheduling fields onto a bracket; Project derives the schedule
// entries from those fields. Both are deterministic, and Project is a pure
// function of the bracket so the schedule is always regenerable from the
// bracket alone.
package schedule

import "time"

// Config holds the scheduling knobs. Every value has a historical default:
// play starts at 09:00, matches get two-hour slots, three slots run per day
// (later matches in a big round share times on alternate venues), and the
// final is pinned to 16:00 on its own day.
type Config struct {
	// BaselineHour is the hour-of-day of the first slot in each round.
	BaselineHour int `yaml:"baseline_hour"`

	// SlotIntervalHours is the spacing between slots within a round, and
	// also the fixed duration used for calendar export.
	SlotIntervalHours int `yaml:"slot_interval_hours"`

	// SlotsPerDay is the number of distinct time slots per round before
	// matches start sharing a slot across venues.
	SlotsPerDay int `yaml:"slots_per_day"`

	// FinalHour is the hour-of-day of the final, the last slot of its day.
	FinalHour int `yaml:"final_hour"`
}

// DefaultConfig returns the historical scheduling configuration.
func DefaultConfig() Config {
	return Config{
		BaselineHour:      9,
		SlotIntervalHours: 2,
		SlotsPerDay:       3,
		FinalHour:         16,
	}
}

// SlotDuration returns the slot interval as a time.Duration.
func (c Config) SlotDuration() time.Duration {
	return time.Duration(c.SlotIntervalHours) * time.Hour
}
