// internal/workers/matching/apply-relevance-ranking/config.go
package applyrelevanceranking

import (
	"time"

	"scholarship-matcher/internal/common/config"
	"scholarship-matcher/internal/matching"
)

type Config struct {
	Enabled       bool
	MaxJobsActive int
	MaxItems      int
	DefaultLimit  int
	Timeout       time.Duration
	InputSchema   map[string]interface{}
}

func LoadConfig(cfg *config.Config, schema map[string]interface{}) *Config {
	wc := config.GetWorkerConfig(cfg, TaskType)
	c := &Config{
		Enabled:       wc.Enabled,
		MaxJobsActive: wc.MaxJobsActive,
		MaxItems:      50,
		DefaultLimit:  matching.DefaultLimit,
		Timeout:       config.GetDuration(wc.Timeout),
		InputSchema:   schema,
	}
	if cfg.Matching.DefaultLimit > 0 {
		c.DefaultLimit = cfg.Matching.DefaultLimit
	}
	if c.Timeout <= 0 {
		c.Timeout = 10 * time.Second
	}
	return c
}
