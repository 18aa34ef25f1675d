// internal/workers/matching/match-scholarships/config.go
package matchscholarships

import (
	"fmt"
	"time"

	"scholarship-matcher/internal/common/config"
	"scholarship-matcher/internal/matching"
)

type Config struct {
	Enabled       bool
	MaxJobsActive int
	Timeout       time.Duration
	DefaultLimit  int
	MaxLimit      int
	InputSchema   map[string]interface{}
}

func DefaultConfig() *Config {
	return &Config{
		Enabled:       true,
		MaxJobsActive: 5,
		Timeout:       45 * time.Second,
		DefaultLimit:  matching.DefaultLimit,
		MaxLimit:      100,
	}
}

// LoadConfig applies the worker and matching sections of cfg over the defaults.
func LoadConfig(cfg *config.Config, schema map[string]interface{}) *Config {
	c := DefaultConfig()
	wc := config.GetWorkerConfig(cfg, TaskType)
	c.Enabled = wc.Enabled
	if wc.MaxJobsActive > 0 {
		c.MaxJobsActive = wc.MaxJobsActive
	}
	if wc.Timeout > 0 {
		c.Timeout = config.GetDuration(wc.Timeout)
	}
	if cfg.Matching.DefaultLimit > 0 {
		c.DefaultLimit = cfg.Matching.DefaultLimit
	}
	c.InputSchema = schema
	return c
}

func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.DefaultLimit <= 0 || c.DefaultLimit > c.MaxLimit {
		return fmt.Errorf("default limit must be between 1 and %d", c.MaxLimit)
	}
	return nil
}
