package matching

import (
	"fmt"
	"strings"
	"time"

	"scholarship-matcher/internal/models"
)

// GPABuffer is how far below a requirement's minimum GPA a profile may be
// and still be considered.
const GPABuffer = 5.0

// CheckResult is the outcome of one eligibility check.
type CheckResult struct {
	Passed bool             `json:"passed"`
	Reason models.Bilingual `json:"reason"`
}

// EligibilityReport explains the filter decision for one scholarship.
type EligibilityReport struct {
	ScholarshipID string      `json:"scholarshipId"`
	Eligible      bool        `json:"eligible"`
	Deadline      CheckResult `json:"deadline"`
	Level         CheckResult `json:"level"`
	Funding       CheckResult `json:"funding"`
	GPA           CheckResult `json:"gpa"`
}

// Filter returns the scholarships the profile is structurally eligible for,
// preserving input order. now is the reference time for deadlines.
func Filter(scholarships []models.Scholarship, profile models.Profile, now time.Time) []models.Scholarship {
	eligible := make([]models.Scholarship, 0, len(scholarships))
	for _, s := range scholarships {
		if isEligible(s, profile, now) {
			eligible = append(eligible, s)
		}
	}
	return eligible
}

func isEligible(s models.Scholarship, profile models.Profile, now time.Time) bool {
	checks := []func(models.Scholarship, models.Profile, time.Time) CheckResult{
		checkDeadline, checkLevel, checkFunding, checkGPA,
	}
	for _, check := range checks {
		if !check(s, profile, now).Passed {
			return false
		}
	}
	return true
}

// CheckEligibility runs every check for every scholarship without short-circuiting.
// Eligible agrees with Filter.
func CheckEligibility(scholarships []models.Scholarship, profile models.Profile, now time.Time) []EligibilityReport {
	reports := make([]EligibilityReport, 0, len(scholarships))
	for _, s := range scholarships {
		r := EligibilityReport{
			ScholarshipID: s.ID,
			Deadline:      checkDeadline(s, profile, now),
			Level:         checkLevel(s, profile, now),
			Funding:       checkFunding(s, profile, now),
			GPA:           checkGPA(s, profile, now),
		}
		r.Eligible = r.Deadline.Passed && r.Level.Passed && r.Funding.Passed && r.GPA.Passed
		reports = append(reports, r)
	}
	return reports
}

// NormalizeFundingType upper-cases and replaces hyphens with underscores.
func NormalizeFundingType(fundingType string) string {
	return strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(fundingType)), "-", "_")
}

func checkDeadline(s models.Scholarship, _ models.Profile, now time.Time) CheckResult {
	if s.Deadline.Before(now) {
		return CheckResult{Reason: models.Bilingual{
			EN: fmt.Sprintf("Deadline passed on %s", s.Deadline.Format("2006-01-02")),
			AR: fmt.Sprintf("انتهى الموعد النهائي في %s", s.Deadline.Format("2006-01-02")),
		}}
	}
	return CheckResult{Passed: true, Reason: models.Bilingual{
		EN: fmt.Sprintf("Open until %s", s.Deadline.Format("2006-01-02")),
		AR: fmt.Sprintf("التقديم متاح حتى %s", s.Deadline.Format("2006-01-02")),
	}}
}

func checkLevel(s models.Scholarship, profile models.Profile, _ time.Time) CheckResult {
	if containsFold(s.StudyLevels, profile.TargetLevel) {
		return CheckResult{Passed: true, Reason: models.Bilingual{
			EN: fmt.Sprintf("Offers %s study", profile.TargetLevel),
			AR: fmt.Sprintf("يقدم الدراسة لمرحلة %s", profile.TargetLevel),
		}}
	}
	return CheckResult{Reason: models.Bilingual{
		EN: fmt.Sprintf("Does not offer %s study", profile.TargetLevel),
		AR: fmt.Sprintf("لا يقدم الدراسة لمرحلة %s", profile.TargetLevel),
	}}
}

func checkFunding(s models.Scholarship, profile models.Profile, _ time.Time) CheckResult {
	if profile.FullyFundedOnly() && NormalizeFundingType(s.FundingType) != models.FundingFullyFunded {
		return CheckResult{Reason: models.Bilingual{
			EN: "Not fully funded",
			AR: "المنحة ليست ممولة بالكامل",
		}}
	}
	return CheckResult{Passed: true, Reason: models.Bilingual{
		EN: "Funding type accepted",
		AR: "نوع التمويل مقبول",
	}}
}

func checkGPA(s models.Scholarship, profile models.Profile, _ time.Time) CheckResult {
	req, ok := ResolveRequirement(s)
	if !ok {
		return CheckResult{Passed: true, Reason: models.Bilingual{
			EN: "No known GPA requirement",
			AR: "لا يوجد شرط معدل معروف",
		}}
	}
	if profile.GPA < req.MinGPA-GPABuffer {
		return CheckResult{Reason: models.Bilingual{
			EN: fmt.Sprintf("GPA %.1f%% is more than %.0f points below the %.0f%% minimum", profile.GPA, GPABuffer, req.MinGPA),
			AR: fmt.Sprintf("المعدل %.1f%% أقل من الحد الأدنى %.0f%% بأكثر من %.0f نقاط", profile.GPA, req.MinGPA, GPABuffer),
		}}
	}
	if !req.SupportsLevel(profile.TargetLevel) {
		return CheckResult{Reason: models.Bilingual{
			EN: fmt.Sprintf("%s does not support %s study", req.Name, profile.TargetLevel),
			AR: fmt.Sprintf("برنامج %s لا يدعم مرحلة %s", req.Name, profile.TargetLevel),
		}}
	}
	return CheckResult{Passed: true, Reason: models.Bilingual{
		EN: fmt.Sprintf("GPA %.1f%% meets the %.0f%% minimum within tolerance", profile.GPA, req.MinGPA),
		AR: fmt.Sprintf("المعدل %.1f%% يستوفي الحد الأدنى %.0f%% ضمن الهامش المسموح", profile.GPA, req.MinGPA),
	}}
}
