// internal/workers/matching/calculate-match-score/models.go
package calculatematchscore

import (
	"scholarship-matcher/internal/matching"
	"scholarship-matcher/internal/models"
)

type Input struct {
	Profile     *models.Profile     `json:"profile"`
	Scholarship *models.Scholarship `json:"scholarship"`
}

type Output struct {
	ScholarshipID string                     `json:"scholarshipId"`
	Score         int                        `json:"score"`
	MatchLevel    models.MatchLevel          `json:"matchLevel"`
	Factors       []models.MatchFactor       `json:"factors"`
	Eligible      bool                       `json:"eligible"`
	Eligibility   matching.EligibilityReport `json:"eligibility"`
	Requirement   *matching.Requirement      `json:"requirement,omitempty"`
}
