package store

import "time"

// Config holds configuration for the Store.
type Config struct {
	// Table is the DynamoDB table holding event records, keyed by eventId.
	// Default: "EventsTable"
	Table string

	// Timeout bounds every store operation. No call may wait on DynamoDB
	// indefinitely.
	// Default: 5s
	Timeout time.Duration
}

// DefaultConfig returns sensible defaults for local development.
func DefaultConfig() Config {
	return Config{
		Table:   "EventsTable",
		Timeout: 5 * time.Second,
	}
}

// validate ensures config values are within acceptable bounds.
func (c *Config) validate() {
	if c.Table == "" {
		c.Table = "EventsTable"
	}
	if c.Timeout <= 0 {
		c.Timeout = 5 * time.Second
	}
}
