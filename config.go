package bookengine

import "time"

// Config controls the book's day-expiry policy. There is no environment
// variable or persisted config source (spec.md §6) — Config is a plain
// struct built with functional options, the same shape the teacher uses
// for entrywal.Config passed into entrywal.Open.
type Config struct {
	// DayCutoff is the time-of-day (offset from local midnight) at which
	// GoodForDay orders expire. Default 16:00, per spec.md §4.7/§9.
	DayCutoff time.Duration
	// CutoffSlack is added to the computed wake time so the expiry task
	// wakes slightly after the exact cutoff rather than racing it.
	// Default 100ms, per spec.md §4.7/§9.
	CutoffSlack time.Duration
}

// Option configures a Book at construction time.
type Option func(*Config)

// WithDayCutoff overrides the daily GoodForDay expiry time-of-day.
func WithDayCutoff(offsetFromMidnight time.Duration) Option {
	return func(c *Config) { c.DayCutoff = offsetFromMidnight }
}

// WithCutoffSlack overrides the slack added after the computed cutoff
// instant before the expiry task wakes.
func WithCutoffSlack(slack time.Duration) Option {
	return func(c *Config) { c.CutoffSlack = slack }
}

func defaultConfig() Config {
	return Config{
		DayCutoff:   16 * time.Hour,
		CutoffSlack: 100 * time.Millisecond,
	}
}
