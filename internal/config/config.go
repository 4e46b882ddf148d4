// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults, Load(ctx) to layer
//   file and environment overrides on top.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DataFile is the path of the JSON roster slot mirrored after
	// every mutation.
	DataFile string `koanf:"data_file"`

	// DedupeSize bounds the submission idempotency tracker.
	DedupeSize int `koanf:"dedupe_size"`

	// MaxSpeakers caps the number of names accepted per submission.
	MaxSpeakers int `koanf:"max_speakers"`

	// MaxRosterLimit caps GET /roster?limit.
	MaxRosterLimit int `koanf:"max_roster_limit"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		Addr:           ":9080",
		DataFile:       "meeting-speakers.json",
		DedupeSize:     10_000,
		MaxSpeakers:    3,
		MaxRosterLimit: 1_000,
	}
}
