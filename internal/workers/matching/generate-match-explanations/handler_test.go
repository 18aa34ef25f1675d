package generatematchexplanations

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholarship-matcher/internal/common/config"
	commonerrors "scholarship-matcher/internal/common/errors"
	"scholarship-matcher/internal/common/genai"
	"scholarship-matcher/internal/common/logger"
	"scholarship-matcher/internal/matching"
	"scholarship-matcher/internal/models"
)

func createProfile() *models.Profile {
	return &models.Profile{
		GPA:               82,
		TargetLevel:       "master",
		FieldsOfStudy:     []string{"Computer Science"},
		Country:           "TN",
		FundingPreference: models.FundingPreferenceAny,
	}
}

func createMatches() []models.PreliminaryMatch {
	s := models.Scholarship{
		ID:           "sch-1",
		Title:        models.Bilingual{EN: "Open Fellowship", AR: "زمالة مفتوحة"},
		University:   models.Bilingual{EN: "Test University"},
		Country:      models.Bilingual{EN: "Canada"},
		Deadline:     time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC),
		FundingType:  models.FundingFullyFunded,
		StudyLevels:  []string{"master"},
		FieldOfStudy: "Computer Science",
	}
	s2 := s
	s2.ID = "sch-2"
	return []models.PreliminaryMatch{
		matching.Score(s, *createProfile()),
		matching.Score(s2, *createProfile()),
	}
}

func newGenAIServer(t *testing.T, content string) *genai.Client {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/chat/completions"))
		body, _ := json.Marshal(map[string]interface{}{
			"choices": []interface{}{
				map[string]interface{}{"message": map[string]interface{}{"role": "assistant", "content": content}},
			},
		})
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}))
	t.Cleanup(server.Close)
	return genai.NewClient(genai.Config{BaseURL: server.URL, APIKey: "test-key", Model: "test-model", Timeout: 2 * time.Second})
}

func newTestHandler(t *testing.T, completer matching.Completer) *Handler {
	log := logger.NewTestLogger(t)
	return NewHandler(LoadConfig(&config.Config{}, nil), matching.NewExplainer(completer, time.Second, log, nil), log)
}

func TestHandler_Execute_UsesAIExplanations(t *testing.T) {
	completer := newGenAIServer(t, `Here you go: {"matches":[{"index":1,"rating":"excellent","explanation":"Strong fit for your CS background."}]}`)
	h := newTestHandler(t, completer)

	out, err := h.Execute(context.Background(), &Input{Profile: createProfile(), Matches: createMatches()})
	require.NoError(t, err)

	require.Len(t, out.Matches, 2)
	assert.Equal(t, models.LocaleEN, out.Locale)
	assert.Equal(t, "Strong fit for your CS background.", out.Matches[0].Explanation.EN)
	assert.Equal(t, models.MatchExcellent, out.Matches[0].MatchLevel)
	assert.NotEmpty(t, out.Matches[1].Explanation.EN)
	assert.NotEqual(t, out.Matches[0].Explanation.EN, out.Matches[1].Explanation.EN)
}

func TestHandler_Execute_FallsBackWithoutAI(t *testing.T) {
	h := newTestHandler(t, genai.NewClient(genai.Config{BaseURL: "http://127.0.0.1:1"}))

	out, err := h.Execute(context.Background(), &Input{Profile: createProfile(), Matches: createMatches(), Locale: "ar"})
	require.NoError(t, err)

	require.Len(t, out.Matches, 2)
	assert.Equal(t, models.LocaleAR, out.Locale)
	for i, m := range out.Matches {
		assert.Equal(t, createMatches()[i].Scholarship.ID, m.ScholarshipID)
		assert.NotEmpty(t, m.Explanation.AR)
		assert.Equal(t, matching.LevelForScore(m.Score), m.MatchLevel)
	}
}

func TestHandler_Execute_GarbageResponseFallsBack(t *testing.T) {
	h := newTestHandler(t, newGenAIServer(t, "I cannot help with that."))

	out, err := h.Execute(context.Background(), &Input{Profile: createProfile(), Matches: createMatches()})
	require.NoError(t, err)
	assert.Contains(t, out.Matches[0].Explanation.EN, "Strongest factor")
}

func TestHandler_Execute_EmptyMatches(t *testing.T) {
	out, err := newTestHandler(t, nil).Execute(context.Background(), &Input{Profile: createProfile()})
	require.NoError(t, err)
	assert.NotNil(t, out.Matches)
	assert.Empty(t, out.Matches)
}

func TestHandler_Execute_Rejects(t *testing.T) {
	h := newTestHandler(t, nil)
	h.config.MaxMatches = 1

	for _, input := range []*Input{nil, {Matches: createMatches()}, {Profile: createProfile(), Matches: createMatches()}} {
		_, err := h.Execute(context.Background(), input)
		stdErr, ok := commonerrors.AsStandardError(err)
		require.True(t, ok)
		assert.Equal(t, commonerrors.ErrCodeInvalidMatchInput, stdErr.Code)
	}
}
