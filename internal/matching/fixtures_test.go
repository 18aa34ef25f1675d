package matching

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"scholarship-matcher/internal/models"
)

var testNow = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

func newScholarship(id, title string, opts ...func(*models.Scholarship)) models.Scholarship {
	s := models.Scholarship{
		ID:           id,
		Title:        models.Bilingual{EN: title, AR: "منحة " + id},
		University:   models.Bilingual{EN: "Test University", AR: "جامعة الاختبار"},
		Country:      models.Bilingual{EN: "United States", AR: "الولايات المتحدة"},
		Deadline:     testNow.AddDate(0, 2, 0),
		FundingType:  models.FundingFullyFunded,
		StudyLevels:  []string{"master", "phd"},
		FieldOfStudy: "Engineering",
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func withLevels(levels ...string) func(*models.Scholarship) {
	return func(s *models.Scholarship) { s.StudyLevels = levels }
}

func withFunding(f string) func(*models.Scholarship) {
	return func(s *models.Scholarship) { s.FundingType = f }
}

func withField(f string) func(*models.Scholarship) {
	return func(s *models.Scholarship) { s.FieldOfStudy = f }
}

func withCountry(en string) func(*models.Scholarship) {
	return func(s *models.Scholarship) { s.Country = models.Bilingual{EN: en} }
}

func withDeadline(d time.Time) func(*models.Scholarship) {
	return func(s *models.Scholarship) { s.Deadline = d }
}

func newProfile(opts ...func(*models.Profile)) models.Profile {
	p := models.Profile{
		GPA:               85,
		CurrentLevel:      "bachelor",
		TargetLevel:       "master",
		FieldsOfStudy:     []string{"Engineering"},
		Country:           "FR",
		Languages:         []string{"English"},
		FundingPreference: models.FundingPreferenceAny,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

func withGPA(gpa float64) func(*models.Profile) {
	return func(p *models.Profile) { p.GPA = gpa }
}

func withFields(fields ...string) func(*models.Profile) {
	return func(p *models.Profile) { p.FieldsOfStudy = fields }
}

func withProfileCountry(code string) func(*models.Profile) {
	return func(p *models.Profile) { p.Country = code }
}

func fullyFundedOnly(p *models.Profile) {
	p.FundingPreference = models.FundingPreferenceFullyFundedOnly
}

func factorOf(m models.PreliminaryMatch, t models.FactorType) models.MatchFactor {
	for _, f := range m.Factors {
		if f.Type == t {
			return f
		}
	}
	return models.MatchFactor{}
}

type mockCompleter struct {
	mock.Mock
}

func (m *mockCompleter) Enabled() bool {
	return m.Called().Bool(0)
}

func (m *mockCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

type recordingObserver struct {
	mu           sync.Mutex
	explanations map[string]int
	outcomes     []string
}

func newRecordingObserver() *recordingObserver {
	return &recordingObserver{explanations: map[string]int{}}
}

func (r *recordingObserver) ObserveExplanations(source string, count int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.explanations[source] += count
}

func (r *recordingObserver) ObserveAIRequest(outcome string, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, outcome)
}
