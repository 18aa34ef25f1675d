package matching

import (
	"context"
	"errors"
	"time"

	"scholarship-matcher/internal/common/logger"
	"scholarship-matcher/internal/models"
)

// Completer is the AI text service. Enabled reports whether it is configured;
// an unconfigured completer is never called.
type Completer interface {
	Enabled() bool
	Complete(ctx context.Context, prompt string) (string, error)
}

// Explanation sources reported to the Observer.
const (
	SourceAI       = "ai"
	SourceFallback = "fallback"
)

// AI call outcomes reported to the Observer.
const (
	OutcomeSuccess     = "success"
	OutcomeError       = "error"
	OutcomeTimeout     = "timeout"
	OutcomeUnparseable = "unparseable"
)

// Observer receives explanation metrics. Implementations must be safe for concurrent use.
type Observer interface {
	ObserveExplanations(source string, count int)
	ObserveAIRequest(outcome string, duration time.Duration)
}

type noopObserver struct{}

func (noopObserver) ObserveExplanations(string, int) {}
func (noopObserver) ObserveAIRequest(string, time.Duration) {}

// DefaultAITimeout bounds the single AI call made per Explain.
const DefaultAITimeout = 30 * time.Second

// Explainer annotates preliminary matches with a match level and explanation.
type Explainer struct {
	completer Completer
	timeout   time.Duration
	logger    logger.Logger
	observer  Observer
}

// NewExplainer builds an Explainer. completer and observer may be nil.
func NewExplainer(completer Completer, timeout time.Duration, log logger.Logger, observer Observer) *Explainer {
	if timeout <= 0 {
		timeout = DefaultAITimeout
	}
	if observer == nil {
		observer = noopObserver{}
	}
	return &Explainer{
		completer: completer,
		timeout:   timeout,
		logger:    log.WithFields(map[string]interface{}{"component": "explainer"}),
		observer:  observer,
	}
}

// Explain returns one ScholarshipMatch per input, in input order. It makes at
// most one AI call and never fails: any AI problem degrades to the template
// explanation, per item when the AI answered only some candidates.
func (e *Explainer) Explain(ctx context.Context, matches []models.PreliminaryMatch, profile models.Profile, locale models.Locale) []models.ScholarshipMatch {
	if len(matches) == 0 {
		return []models.ScholarshipMatch{}
	}

	ai := e.requestAI(ctx, matches, profile, locale)
	out, fromAI := Merge(matches, ai, locale)

	e.observer.ObserveExplanations(SourceAI, fromAI)
	e.observer.ObserveExplanations(SourceFallback, len(out)-fromAI)
	e.logger.Debug("explanations generated", map[string]interface{}{
		"count":    len(out),
		"fromAI":   fromAI,
		"locale":   string(locale),
		"aiParsed": ai.OK,
	})
	return out
}

func (e *Explainer) requestAI(ctx context.Context, matches []models.PreliminaryMatch, profile models.Profile, locale models.Locale) AIParseResult {
	if e.completer == nil || !e.completer.Enabled() {
		e.logger.Debug("ai service not configured, using fallback explanations", nil)
		return AIParseResult{}
	}

	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	start := time.Now()
	text, err := e.completer.Complete(callCtx, BuildPrompt(matches, profile, locale))
	elapsed := time.Since(start)
	if err != nil {
		outcome := OutcomeError
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			outcome = OutcomeTimeout
		}
		e.observer.ObserveAIRequest(outcome, elapsed)
		e.logger.Warn("ai explanation request failed, using fallback", map[string]interface{}{
			"error":      err.Error(),
			"outcome":    outcome,
			"durationMs": elapsed.Milliseconds(),
		})
		return AIParseResult{}
	}

	parsed := ParseAIResponse(text)
	if !parsed.OK {
		e.observer.ObserveAIRequest(OutcomeUnparseable, elapsed)
		e.logger.Warn("ai explanation response unparseable, using fallback", map[string]interface{}{
			"responseLength": len(text),
			"durationMs":     elapsed.Milliseconds(),
		})
		return AIParseResult{}
	}

	e.observer.ObserveAIRequest(OutcomeSuccess, elapsed)
	return parsed
}

// Merge combines preliminary matches with AI results by 1-based index. It
// returns the merged matches and how many explanations came from the AI.
// When ai is not OK every item uses the template.
func Merge(matches []models.PreliminaryMatch, ai AIParseResult, locale models.Locale) ([]models.ScholarshipMatch, int) {
	byIndex := make(map[int]AIMatch, len(ai.Matches))
	if ai.OK {
		for _, m := range ai.Matches {
			if _, seen := byIndex[m.Index]; !seen {
				byIndex[m.Index] = m
			}
		}
	}

	out := make([]models.ScholarshipMatch, 0, len(matches))
	fromAI := 0
	for i, m := range matches {
		level := LevelForScore(m.Score)
		explanation := ""

		if r, ok := byIndex[i+1]; ok {
			if r.Rating != "" {
				level = r.Rating
			}
			explanation = r.Explanation
		}
		if explanation == "" {
			explanation = FallbackExplanation(m, locale)
		} else {
			fromAI++
		}

		out = append(out, models.ScholarshipMatch{
			ScholarshipID: m.Scholarship.ID,
			Scholarship:   models.RefOf(m.Scholarship),
			Score:         m.Score,
			MatchLevel:    level,
			Explanation:   models.LocalizedText(locale, explanation),
			Factors:       m.Factors,
		})
	}
	return out, fromAI
}
