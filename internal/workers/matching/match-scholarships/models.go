// internal/workers/matching/match-scholarships/models.go
package matchscholarships

import "scholarship-matcher/internal/models"

// Input carries the profile and, optionally, the scholarships to match.
// When Scholarships is absent they are loaded from the configured source.
type Input struct {
	Profile      *models.Profile      `json:"profile"`
	Scholarships []models.Scholarship `json:"scholarships,omitempty"`
	Locale       string               `json:"locale,omitempty"`
	Limit        int                  `json:"limit,omitempty"`
}

type Output struct {
	RequestID      string                    `json:"requestId"`
	Locale         models.Locale             `json:"locale"`
	Matches        []models.ScholarshipMatch `json:"matches"`
	EvaluatedCount int                       `json:"evaluatedCount"`
	EligibleCount  int                       `json:"eligibleCount"`
	Source         string                    `json:"scholarshipSource"`
}
