package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholarship-matcher/internal/models"
)

func TestFilter(t *testing.T) {
	tests := []struct {
		name        string
		scholarship models.Scholarship
		profile     models.Profile
		want        bool
	}{
		{
			name:        "eligible",
			scholarship: newScholarship("s1", "Local Foundation Award"),
			profile:     newProfile(),
			want:        true,
		},
		{
			name:        "deadline passed",
			scholarship: newScholarship("s1", "Local Foundation Award", withDeadline(testNow.Add(-1))),
			profile:     newProfile(),
			want:        false,
		},
		{
			name:        "deadline exactly now is still open",
			scholarship: newScholarship("s1", "Local Foundation Award", withDeadline(testNow)),
			profile:     newProfile(),
			want:        true,
		},
		{
			name:        "level not offered",
			scholarship: newScholarship("s1", "Local Foundation Award", withLevels("bachelor")),
			profile:     newProfile(),
			want:        false,
		},
		{
			name:        "level match is case insensitive",
			scholarship: newScholarship("s1", "Local Foundation Award", withLevels("MASTER")),
			profile:     newProfile(),
			want:        true,
		},
		{
			name:        "fully funded only rejects partial",
			scholarship: newScholarship("s1", "Local Foundation Award", withFunding("PARTIALLY_FUNDED")),
			profile:     newProfile(fullyFundedOnly),
			want:        false,
		},
		{
			name:        "fully funded only accepts hyphenated lower case",
			scholarship: newScholarship("s1", "Local Foundation Award", withFunding("fully-funded")),
			profile:     newProfile(fullyFundedOnly),
			want:        true,
		},
		{
			name:        "any funding accepts partial",
			scholarship: newScholarship("s1", "Local Foundation Award", withFunding("PARTIALLY_FUNDED")),
			profile:     newProfile(),
			want:        true,
		},
		{
			name:        "gpa within buffer",
			scholarship: newScholarship("s1", "Fulbright Program"),
			profile:     newProfile(withGPA(75)),
			want:        true,
		},
		{
			name:        "requirement does not support level",
			scholarship: newScholarship("s1", "Chevening Scholarship", withLevels("master", "phd")),
			profile:     newProfile(func(p *models.Profile) { p.TargetLevel = "phd" }),
			want:        false,
		},
		{
			name:        "no requirement skips gpa check",
			scholarship: newScholarship("s1", "Local Foundation Award"),
			profile:     newProfile(withGPA(10)),
			want:        true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter([]models.Scholarship{tt.scholarship}, tt.profile, testNow)
			assert.Equal(t, tt.want, len(got) == 1)
		})
	}
}

func TestFilter_ScenarioC_GPABeyondBuffer(t *testing.T) {
	s := newScholarship("s1", "Fulbright Program")
	got := Filter([]models.Scholarship{s}, newProfile(withGPA(74)), testNow)
	assert.Empty(t, got)
}

func TestFilter_ScenarioD_HyphenatedPartialFunding(t *testing.T) {
	s := newScholarship("s1", "Local Foundation Award", withFunding("Partially-Funded"))
	assert.Equal(t, "PARTIALLY_FUNDED", NormalizeFundingType(s.FundingType))

	got := Filter([]models.Scholarship{s}, newProfile(fullyFundedOnly), testNow)
	assert.Empty(t, got)

	funding := factorOf(Score(s, newProfile(fullyFundedOnly)), models.FactorFunding)
	assert.Equal(t, 0.0, funding.Score)
	assert.Equal(t, models.StatusMismatch, funding.Status)
}

func TestFilter_NeverReturnsExpired(t *testing.T) {
	var input []models.Scholarship
	for i := -5; i <= 5; i++ {
		input = append(input, newScholarship(
			"s", "Local Foundation Award",
			withDeadline(testNow.AddDate(0, 0, i)),
		))
	}

	for _, s := range Filter(input, newProfile(), testNow) {
		assert.False(t, s.Deadline.Before(testNow))
	}
}

func TestFilter_PreservesOrder(t *testing.T) {
	input := []models.Scholarship{
		newScholarship("a", "Local Foundation Award"),
		newScholarship("b", "Local Foundation Award", withLevels("bachelor")),
		newScholarship("c", "Local Foundation Award"),
		newScholarship("d", "Local Foundation Award"),
	}

	got := Filter(input, newProfile(), testNow)
	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
	assert.Equal(t, "d", got[2].ID)
}

func TestCheckEligibility_AgreesWithFilter(t *testing.T) {
	input := []models.Scholarship{
		newScholarship("ok", "Local Foundation Award"),
		newScholarship("expired", "Local Foundation Award", withDeadline(testNow.AddDate(0, 0, -1))),
		newScholarship("level", "Local Foundation Award", withLevels("bachelor")),
		newScholarship("funding", "Local Foundation Award", withFunding("partially_funded")),
		newScholarship("gpa", "Fulbright Program"),
	}
	profile := newProfile(withGPA(70), fullyFundedOnly)

	reports := CheckEligibility(input, profile, testNow)
	filtered := Filter(input, profile, testNow)

	require.Len(t, reports, len(input))
	eligibleIDs := map[string]bool{}
	for _, s := range filtered {
		eligibleIDs[s.ID] = true
	}
	for _, r := range reports {
		assert.Equal(t, eligibleIDs[r.ScholarshipID], r.Eligible, r.ScholarshipID)
	}

	assert.True(t, reports[0].Eligible)
	assert.False(t, reports[1].Deadline.Passed)
	assert.False(t, reports[2].Level.Passed)
	assert.False(t, reports[3].Funding.Passed)
	assert.False(t, reports[4].GPA.Passed)
}

func TestCheckEligibility_EvaluatesAllChecks(t *testing.T) {
	s := newScholarship("s1", "Fulbright Program",
		withDeadline(testNow.AddDate(0, 0, -1)),
		withLevels("bachelor"),
		withFunding("PARTIALLY_FUNDED"),
	)
	reports := CheckEligibility([]models.Scholarship{s}, newProfile(withGPA(50), fullyFundedOnly), testNow)
	require.Len(t, reports, 1)

	r := reports[0]
	assert.False(t, r.Eligible)
	assert.False(t, r.Deadline.Passed)
	assert.False(t, r.Level.Passed)
	assert.False(t, r.Funding.Passed)
	assert.False(t, r.GPA.Passed)
	for _, c := range []CheckResult{r.Deadline, r.Level, r.Funding, r.GPA} {
		assert.NotEmpty(t, c.Reason.EN)
		assert.NotEmpty(t, c.Reason.AR)
	}
}
