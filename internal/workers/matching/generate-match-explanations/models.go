// internal/workers/matching/generate-match-explanations/models.go
package generatematchexplanations

import "scholarship-matcher/internal/models"

type Input struct {
	Profile *models.Profile           `json:"profile"`
	Matches []models.PreliminaryMatch `json:"matches"`
	Locale  string                    `json:"locale,omitempty"`
}

type Output struct {
	Matches []models.ScholarshipMatch `json:"matches"`
	Locale  models.Locale             `json:"locale"`
}
