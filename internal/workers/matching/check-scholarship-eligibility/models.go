// internal/workers/matching/check-scholarship-eligibility/models.go
package checkscholarshipeligibility

import (
	"scholarship-matcher/internal/matching"
	"scholarship-matcher/internal/models"
)

type Input struct {
	Profile      *models.Profile      `json:"profile"`
	Scholarships []models.Scholarship `json:"scholarships"`
}

type Output struct {
	Reports       []matching.EligibilityReport `json:"reports"`
	EligibleIDs   []string                     `json:"eligibleIds"`
	EligibleCount int                          `json:"eligibleCount"`
	IneligibleIDs []string                     `json:"ineligibleIds"`
	CheckedAt     string                       `json:"checkedAt"`
}
