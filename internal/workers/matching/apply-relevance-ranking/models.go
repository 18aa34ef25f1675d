// internal/workers/matching/apply-relevance-ranking/models.go
package applyrelevanceranking

import "scholarship-matcher/internal/models"

type Input struct {
	Profile      *models.Profile      `json:"profile"`
	Scholarships []models.Scholarship `json:"scholarships"`
	Limit        int                  `json:"limit,omitempty"`
}

type Output struct {
	RankedMatches  []models.PreliminaryMatch `json:"rankedMatches"`
	EvaluatedCount int                       `json:"evaluatedCount"`
	EligibleCount  int                       `json:"eligibleCount"`
	Limit          int                       `json:"limit"`
}
