// internal/workers/matching/calculate-match-score/config.go
package calculatematchscore

import (
	"time"

	"scholarship-matcher/internal/common/config"
)

type Config struct {
	Enabled       bool
	MaxJobsActive int
	Timeout       time.Duration
	InputSchema   map[string]interface{}
}

func LoadConfig(cfg *config.Config, schema map[string]interface{}) *Config {
	wc := config.GetWorkerConfig(cfg, TaskType)
	c := &Config{
		Enabled:       wc.Enabled,
		MaxJobsActive: wc.MaxJobsActive,
		Timeout:       config.GetDuration(wc.Timeout),
		InputSchema:   schema,
	}
	if c.Timeout <= 0 {
		c.Timeout = 10 * time.Second
	}
	return c
}
