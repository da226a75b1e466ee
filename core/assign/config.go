package assign

import (
	"fmt"
	"time"
)

// Config defines optimizer tuning settings.
type Config struct {
	// SolverTimeoutSeconds bounds each day's solver invocation. A timed-out
	// day is reported as failed, not retried.
	SolverTimeoutSeconds int `json:"solver_timeout_seconds"`
	// MaxConcurrentDays limits how many days are solved in parallel.
	MaxConcurrentDays int `json:"max_concurrent_days"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.SolverTimeoutSeconds == 0 {
		c.SolverTimeoutSeconds = 30
	}
	if c.MaxConcurrentDays == 0 {
		c.MaxConcurrentDays = 4
	}
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	if c.SolverTimeoutSeconds < 0 {
		return fmt.Errorf("solver_timeout_seconds must not be negative")
	}
	if c.MaxConcurrentDays < 0 {
		return fmt.Errorf("max_concurrent_days must not be negative")
	}
	return nil
}

// SolverTimeout returns the per-day solver budget.
func (c Config) SolverTimeout() time.Duration {
	return time.Duration(c.SolverTimeoutSeconds) * time.Second
}
