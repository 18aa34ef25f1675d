// internal/models/profile.go
package models

// FundingPreference is the student's acceptable funding type.
type FundingPreference string

const (
	FundingPreferenceFullyFundedOnly FundingPreference = "FULLY_FUNDED_ONLY"
	FundingPreferenceAny             FundingPreference = "ANY"
)

// Profile is a student's matching criteria. GPA is a percentage (0-100) and
// Country an ISO 3166-1 alpha-2 code.
type Profile struct {
	GPA                  float64           `json:"gpa"`
	CurrentLevel         string            `json:"currentLevel"`
	TargetLevel          string            `json:"targetLevel"`
	FieldsOfStudy        []string          `json:"fieldsOfStudy"`
	Country              string            `json:"country"`
	Languages            []string          `json:"languages,omitempty"`
	Age                  *int              `json:"age,omitempty"`
	FundingPreference    FundingPreference `json:"fundingPreference"`
	SpecialCircumstances string            `json:"specialCircumstances,omitempty"`
}

// FullyFundedOnly reports whether the student only accepts fully funded offers.
func (p Profile) FullyFundedOnly() bool {
	return p.FundingPreference == FundingPreferenceFullyFundedOnly
}
