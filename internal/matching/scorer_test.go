package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholarship-matcher/internal/models"
)

func TestScore_ScenarioA_UnknownRequirement(t *testing.T) {
	m := Score(newScholarship("s1", "Local Foundation Award"), newProfile(withGPA(70)))

	gpa := factorOf(m, models.FactorGPA)
	assert.Equal(t, MaxGPAScore, gpa.Score)
	assert.Equal(t, models.StatusMatch, gpa.Status)
	assert.Contains(t, gpa.Detail.EN, "not known")
}

func TestScore_ScenarioB_GPASlightlyBelow(t *testing.T) {
	m := Score(newScholarship("s1", "Fulbright Program"), newProfile(withGPA(77)))

	gpa := factorOf(m, models.FactorGPA)
	assert.Equal(t, models.StatusPartial, gpa.Status)
	assert.InDelta(t, 15.0, gpa.Score, 1e-9)
	assert.Contains(t, gpa.Detail.EN, "77.0")
	assert.Contains(t, gpa.Detail.EN, "80")
}

func TestScore_GPATiers(t *testing.T) {
	tests := []struct {
		gpa        float64
		wantScore  float64
		wantStatus models.FactorStatus
	}{
		{gpa: 95, wantScore: 30, wantStatus: models.StatusMatch},
		{gpa: 90, wantScore: 30, wantStatus: models.StatusMatch},
		{gpa: 89.9, wantScore: 27, wantStatus: models.StatusMatch},
		{gpa: 80, wantScore: 27, wantStatus: models.StatusMatch},
		{gpa: 79.9, wantScore: 15, wantStatus: models.StatusPartial},
		{gpa: 75, wantScore: 15, wantStatus: models.StatusPartial},
		{gpa: 74.9, wantScore: 0, wantStatus: models.StatusMismatch},
	}

	for _, tt := range tests {
		m := Score(newScholarship("s1", "Fulbright Program"), newProfile(withGPA(tt.gpa)))
		gpa := factorOf(m, models.FactorGPA)
		assert.InDelta(t, tt.wantScore, gpa.Score, 1e-9, "gpa %.1f", tt.gpa)
		assert.Equal(t, tt.wantStatus, gpa.Status, "gpa %.1f", tt.gpa)
	}
}

func TestScore_FieldFactor(t *testing.T) {
	tests := []struct {
		name             string
		scholarshipField string
		profileFields    []string
		wantScore        float64
		wantStatus       models.FactorStatus
	}{
		{name: "exact", scholarshipField: "Engineering", profileFields: []string{"engineering"}, wantScore: 25, wantStatus: models.StatusMatch},
		{name: "any profile field", scholarshipField: "Law", profileFields: []string{"Arts", "Law"}, wantScore: 25, wantStatus: models.StatusMatch},
		{name: "related", scholarshipField: "Engineering", profileFields: []string{"Technology"}, wantScore: 15, wantStatus: models.StatusPartial},
		{name: "science lists medicine", scholarshipField: "Science", profileFields: []string{"Medicine"}, wantScore: 15, wantStatus: models.StatusPartial},
		{name: "engineering does not list medicine", scholarshipField: "Engineering", profileFields: []string{"Medicine"}, wantScore: 5, wantStatus: models.StatusMismatch},
		{name: "medicine lists only science", scholarshipField: "Medicine", profileFields: []string{"Engineering"}, wantScore: 5, wantStatus: models.StatusMismatch},
		{name: "unrelated", scholarshipField: "Arts", profileFields: []string{"Engineering"}, wantScore: 5, wantStatus: models.StatusMismatch},
		{name: "unknown category", scholarshipField: "Astrology", profileFields: []string{"Science"}, wantScore: 5, wantStatus: models.StatusMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Score(newScholarship("s1", "Local Foundation Award", withField(tt.scholarshipField)),
				newProfile(withFields(tt.profileFields...)))
			f := factorOf(m, models.FactorField)
			assert.InDelta(t, tt.wantScore, f.Score, 1e-9)
			assert.Equal(t, tt.wantStatus, f.Status)
		})
	}
}

func TestScore_LevelFactor(t *testing.T) {
	single := factorOf(Score(newScholarship("s1", "Open Fellowship", withLevels("Master")), newProfile()), models.FactorLevel)
	assert.InDelta(t, 20.0, single.Score, 1e-9)

	multi := factorOf(Score(newScholarship("s1", "Open Fellowship", withLevels("bachelor", "master")), newProfile()), models.FactorLevel)
	assert.InDelta(t, 18.0, multi.Score, 1e-9)

	none := factorOf(Score(newScholarship("s1", "Open Fellowship", withLevels("phd")), newProfile()), models.FactorLevel)
	assert.Equal(t, 0.0, none.Score)
	assert.Equal(t, models.StatusMismatch, none.Status)
}

func TestScore_FundingFactor(t *testing.T) {
	tests := []struct {
		name      string
		funding   string
		ffo       bool
		wantScore float64
	}{
		{name: "any / full", funding: "FULLY_FUNDED", wantScore: 15},
		{name: "any / partial", funding: "partially-funded", wantScore: 10.5},
		{name: "fully funded only / full", funding: "Fully-Funded", ffo: true, wantScore: 15},
		{name: "fully funded only / partial", funding: "PARTIALLY_FUNDED", ffo: true, wantScore: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := newProfile()
			if tt.ffo {
				profile = newProfile(fullyFundedOnly)
			}
			f := factorOf(Score(newScholarship("s1", "Open Fellowship", withFunding(tt.funding)), profile), models.FactorFunding)
			assert.InDelta(t, tt.wantScore, f.Score, 1e-9)
		})
	}
}

func TestScore_CountryFactor(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		country   string
		profileCC string
		wantScore float64
	}{
		{name: "africa title, african student", title: "African Leaders Fellowship", country: "Canada", profileCC: "NG", wantScore: 10},
		{name: "africa title, non african student", title: "Africa Development Fellowship", country: "Canada", profileCC: "FR", wantScore: 5},
		{name: "arab title, mena student", title: "Arab Youth Fellowship", country: "Qatar", profileCC: "jo", wantScore: 10},
		{name: "islamic title, iranian student", title: "Islamic Studies Fellowship", country: "Malaysia", profileCC: "IR", wantScore: 10},
		{name: "turkey, arab student", title: "Istanbul Fellowship", country: "Turkey", profileCC: "SA", wantScore: 8},
		{name: "turkey, iranian student", title: "Istanbul Fellowship", country: "Turkey", profileCC: "IR", wantScore: 5},
		{name: "default", title: "Open Fellowship", country: "Canada", profileCC: "BR", wantScore: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Score(newScholarship("s1", tt.title, withCountry(tt.country)), newProfile(withProfileCountry(tt.profileCC)))
			f := factorOf(m, models.FactorCountry)
			assert.InDelta(t, tt.wantScore, f.Score, 1e-9)
			assert.Greater(t, f.Score, 0.0)
		})
	}
}

func TestScore_Total(t *testing.T) {
	t.Run("strong match", func(t *testing.T) {
		m := Score(newScholarship("s1", "Fulbright Program"), newProfile(withGPA(95), withProfileCountry("US")))
		// 30 + 25 + 18 + 15 + 5
		assert.Equal(t, 93, m.Score)
	})

	t.Run("rounds half up", func(t *testing.T) {
		s := newScholarship("s1", "Fulbright Program",
			withField("Engineering"),
			withLevels("master"),
			withFunding("PARTIALLY_FUNDED"),
		)
		m := Score(s, newProfile(withGPA(77), withFields("Technology")))
		// 15 + 15 + 20 + 10.5 + 5 = 65.5
		assert.Equal(t, 66, m.Score)
	})
}

func TestScore_Invariants(t *testing.T) {
	scholarships := []models.Scholarship{
		newScholarship("a", "Fulbright Program"),
		newScholarship("b", "Chevening Scholarship", withLevels("master"), withFunding("partially_funded")),
		newScholarship("c", "African Leaders Fellowship", withField("Medicine")),
		newScholarship("d", "Local Foundation Award", withLevels("phd")),
		newScholarship("e", "Istanbul Fellowship", withCountry("Turkey"), withField("Arts")),
	}
	profiles := []models.Profile{
		newProfile(),
		newProfile(withGPA(40), withProfileCountry("NG")),
		newProfile(withGPA(100), withFields("Science", "Arts"), fullyFundedOnly),
	}

	for _, s := range scholarships {
		for _, p := range profiles {
			m := Score(s, p)
			require.Len(t, m.Factors, 5)

			var maxSum, sum float64
			for _, f := range m.Factors {
				assert.GreaterOrEqual(t, f.Score, 0.0)
				assert.LessOrEqual(t, f.Score, f.MaxScore)
				assert.NotEmpty(t, f.Detail.EN)
				assert.NotEmpty(t, f.Detail.AR)
				maxSum += f.MaxScore
				sum += f.Score
			}
			assert.InDelta(t, 100.0, maxSum, 1e-9)
			assert.GreaterOrEqual(t, m.Score, 0)
			assert.LessOrEqual(t, m.Score, 100)
			assert.Equal(t, TotalScore(m.Factors), m.Score)
			assert.InDelta(t, sum, float64(m.Score), 0.5)
			assert.Equal(t, m, Score(s, p), "score must be deterministic")
		}
	}
}

func TestScore_FactorOrder(t *testing.T) {
	m := Score(newScholarship("s1", "Open Fellowship"), newProfile())
	want := []models.FactorType{models.FactorGPA, models.FactorField, models.FactorLevel, models.FactorFunding, models.FactorCountry}
	for i, f := range m.Factors {
		assert.Equal(t, want[i], f.Type)
	}
}
