// Package matching filters, scores, ranks and explains scholarship matches
// for a student profile. Everything except Explainer.Explain is pure.
package matching

import (
	"context"
	"time"

	"scholarship-matcher/internal/common/logger"
	"scholarship-matcher/internal/models"
)

// Result is the outcome of one Engine.Match call.
type Result struct {
	Matches        []models.ScholarshipMatch `json:"matches"`
	EvaluatedCount int                       `json:"evaluatedCount"`
	EligibleCount  int                       `json:"eligibleCount"`
}

// Engine runs the full pipeline: Filter, TopMatches, Explain.
type Engine struct {
	explainer *Explainer
	logger    logger.Logger
	now       func() time.Time
}

func NewEngine(explainer *Explainer, log logger.Logger) *Engine {
	return &Engine{
		explainer: explainer,
		logger:    log,
		now:       time.Now,
	}
}

// WithClock replaces the deadline reference clock.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// Explainer returns the engine's explainer.
func (e *Engine) Explainer() *Explainer {
	return e.explainer
}

// Now returns the engine's reference time.
func (e *Engine) Now() time.Time {
	return e.now()
}

// Match returns up to limit explained matches, best first.
func (e *Engine) Match(ctx context.Context, scholarships []models.Scholarship, profile models.Profile, locale models.Locale, limit int) Result {
	eligible := Filter(scholarships, profile, e.now())
	top := TopMatches(eligible, profile, limit)
	matches := e.explainer.Explain(ctx, top, profile, locale)

	e.logger.Info("matching completed", map[string]interface{}{
		"evaluated": len(scholarships),
		"eligible":  len(eligible),
		"returned":  len(matches),
		"locale":    string(locale),
	})

	return Result{
		Matches:        matches,
		EvaluatedCount: len(scholarships),
		EligibleCount:  len(eligible),
	}
}
