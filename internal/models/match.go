// internal/models/match.go
package models

type FactorType string

const (
	FactorGPA     FactorType = "gpa"
	FactorField   FactorType = "field"
	FactorLevel   FactorType = "level"
	FactorFunding FactorType = "funding"
	FactorCountry FactorType = "country"
)

type FactorStatus string

const (
	StatusMatch    FactorStatus = "match"
	StatusPartial  FactorStatus = "partial"
	StatusMismatch FactorStatus = "mismatch"
)

// MatchFactor is one scored dimension. 0 <= Score <= MaxScore.
type MatchFactor struct {
	Type     FactorType   `json:"type"`
	Status   FactorStatus `json:"status"`
	Score    float64      `json:"score"`
	MaxScore float64      `json:"maxScore"`
	Detail   Bilingual    `json:"detail"`
}

// PreliminaryMatch is a scholarship with its deterministic 0-100 score.
type PreliminaryMatch struct {
	Scholarship Scholarship   `json:"scholarship"`
	Score       int           `json:"score"`
	Factors     []MatchFactor `json:"factors"`
}

type MatchLevel string

const (
	MatchExcellent MatchLevel = "excellent"
	MatchGood      MatchLevel = "good"
	MatchFair      MatchLevel = "fair"
)

// ScholarshipRef is the identity of a scholarship carried on a final match.
type ScholarshipRef struct {
	ID         string    `json:"id"`
	Title      Bilingual `json:"title"`
	University Bilingual `json:"university"`
	Country    Bilingual `json:"country"`
}

// ScholarshipMatch is the final annotated match returned to callers.
// Explanation has only the request locale's slot populated.
type ScholarshipMatch struct {
	ScholarshipID string         `json:"scholarshipId"`
	Scholarship   ScholarshipRef `json:"scholarship"`
	Score         int            `json:"score"`
	MatchLevel    MatchLevel     `json:"matchLevel"`
	Explanation   Bilingual      `json:"explanation"`
	Factors       []MatchFactor  `json:"factors"`
}

// RefOf returns the identity fields of s.
func RefOf(s Scholarship) ScholarshipRef {
	return ScholarshipRef{
		ID:         s.ID,
		Title:      s.Title,
		University: s.University,
		Country:    s.Country,
	}
}
