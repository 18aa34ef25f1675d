// internal/workers/matching/generate-match-explanations/config.go
package generatematchexplanations

import (
	"time"

	"scholarship-matcher/internal/common/config"
)

type Config struct {
	Enabled       bool
	MaxJobsActive int
	Timeout       time.Duration
	MaxMatches    int
	InputSchema   map[string]interface{}
}

func LoadConfig(cfg *config.Config, schema map[string]interface{}) *Config {
	wc := config.GetWorkerConfig(cfg, TaskType)
	c := &Config{
		Enabled:       wc.Enabled,
		MaxJobsActive: wc.MaxJobsActive,
		Timeout:       config.GetDuration(wc.Timeout),
		MaxMatches:    50,
		InputSchema:   schema,
	}
	if c.Timeout <= 0 {
		c.Timeout = 45 * time.Second
	}
	return c
}
