package seeder

import "time"

// Config holds configuration for a seeding run.
type Config struct {
	BaseURL        string        // Base URL of the service
	NumSubmissions int           // Number of submissions to generate
	Timeout        time.Duration // HTTP request timeout
	Verbose        bool          // Enable verbose logging
}

// Stats holds seeding statistics.
type Stats struct {
	Submitted  int
	Reconciled int
	Duplicate  int
	Conflicts  int
	Failed     int
	RosterSize int
	StartTime  time.Time
	Duration   time.Duration
}
