// test/e2e/e2e_test.go
package e2e

import (
	"context"
	"os"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"scholarship-matcher/internal/common/aws"
	"scholarship-matcher/internal/common/camunda"
	"scholarship-matcher/internal/common/config"
	"scholarship-matcher/internal/common/database"
	"scholarship-matcher/internal/common/genai"
	"scholarship-matcher/internal/common/logger"
	"scholarship-matcher/internal/common/metrics"
	"scholarship-matcher/internal/matching"
	"scholarship-matcher/internal/models"
	"scholarship-matcher/internal/scholarships"
	"scholarship-matcher/pkg/registry"

	nsm "scholarship-matcher/internal/workers/communication/notify-scholarship-matches"
	arr "scholarship-matcher/internal/workers/matching/apply-relevance-ranking"
	cse "scholarship-matcher/internal/workers/matching/check-scholarship-eligibility"
	ms "scholarship-matcher/internal/workers/matching/match-scholarships"
)

var pipelineNow = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

var scholarshipColumns = []string{
	"id", "title_en", "title_ar", "university_en", "university_ar",
	"country_en", "country_ar", "deadline", "funding_type",
	"study_levels", "field_of_study",
}

type emailSender struct {
	mock.Mock
}

func (m *emailSender) SendEmail(ctx context.Context, email aws.Email) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

func studentProfile() *models.Profile {
	return &models.Profile{
		GPA:               86,
		CurrentLevel:      "bachelor",
		TargetLevel:       "master",
		FieldsOfStudy:     []string{"Engineering"},
		Country:           "JO",
		FundingPreference: models.FundingPreferenceAny,
	}
}

// newPipeline wires a postgres source behind the redis cache, exactly as the
// worker manager does, with sqlmock and miniredis standing in for the stores.
func newPipeline(t *testing.T) (scholarships.Source, sqlmock.Sqlmock, *matching.Engine) {
	t.Helper()
	log := logger.NewTestLogger(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	rdb := database.NewRedis(config.RedisConfig{Address: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	source, err := scholarships.NewSource(config.MatchingConfig{
		Source:       config.SourcePostgres,
		CacheEnabled: true,
		CacheTTL:     60,
	}, scholarships.Clients{Postgres: &database.PostgresClient{DB: db}, Redis: rdb}, log)
	require.NoError(t, err)

	explainer := matching.NewExplainer(genai.NewClient(genai.Config{}), time.Second, log, metrics.NewRecorder())
	engine := matching.NewEngine(explainer, log).WithClock(func() time.Time { return pipelineNow })
	return source, sqlMock, engine
}

func expectScholarships(sqlMock sqlmock.Sqlmock) {
	open := time.Date(2026, 11, 30, 0, 0, 0, 0, time.UTC)
	closed := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	sqlMock.ExpectQuery(regexp.QuoteMeta("FROM scholarships")).WillReturnRows(
		sqlmock.NewRows(scholarshipColumns).
			AddRow("sch-1", "Northern Lights Engineering Award", "جائزة الشمال للهندسة", "Lakeside Institute", nil,
				"Canada", "كندا", open, "FULLY_FUNDED", "{master}", "Engineering").
			AddRow("sch-2", "Harbour City Graduate Grant", nil, "Harbour University", nil,
				"Australia", nil, open, "PARTIAL", "{master,phd}", "Any").
			AddRow("sch-3", "Closed Window Fellowship", nil, "Old Hall College", nil,
				"Ireland", nil, closed, "FULLY_FUNDED", "{master}", "Engineering"),
	)
}

func TestPipeline_MatchThenNotify(t *testing.T) {
	source, sqlMock, engine := newPipeline(t)
	expectScholarships(sqlMock)

	log := logger.NewTestLogger(t)
	reg := registry.Default()

	matcher := ms.NewHandler(ms.LoadConfig(&config.Config{}, reg.InputSchema(ms.TaskType)), engine, source, nil, log)

	first, err := matcher.Execute(context.Background(), &ms.Input{Profile: studentProfile(), Locale: "en", Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, "postgres+redis", first.Source)
	assert.Equal(t, 3, first.EvaluatedCount)
	assert.Equal(t, 2, first.EligibleCount)
	require.Len(t, first.Matches, 2)
	for _, m := range first.Matches {
		assert.NotEqual(t, "sch-3", m.ScholarshipID)
		assert.NotEmpty(t, m.Explanation.EN)
	}
	assert.GreaterOrEqual(t, first.Matches[0].Score, first.Matches[1].Score)

	// The second request is served from redis; sqlmock would fail on another query.
	second, err := matcher.Execute(context.Background(), &ms.Input{Profile: studentProfile(), Locale: "ar"})
	require.NoError(t, err)
	assert.Equal(t, models.LocaleAR, second.Locale)
	assert.Len(t, second.Matches, 2)
	assert.NoError(t, sqlMock.ExpectationsWereMet())

	email := new(emailSender)
	email.On("SendEmail", mock.Anything, mock.MatchedBy(func(e aws.Email) bool {
		return e.To == "student@example.com" && e.Subject != ""
	})).Return("ses-123", nil)

	notifyCfg := nsm.LoadConfig(&config.Config{}, reg.InputSchema(nsm.TaskType))
	notifyCfg.EmailEnabled = true
	notifier := nsm.NewHandler(notifyCfg, email, nil, log)

	sent, err := notifier.Execute(context.Background(), &nsm.Input{
		Channel: models.ChannelEmail,
		Email:   "student@example.com",
		Locale:  "en",
		Matches: first.Matches,
	})
	require.NoError(t, err)
	assert.Equal(t, models.NotificationSent, sent.Status)
	assert.Equal(t, "ses-123", sent.MessageID)
	assert.Equal(t, 2, sent.MatchCount)
	email.AssertExpectations(t)
}

func TestPipeline_StepWorkersAgreeWithMatcher(t *testing.T) {
	source, sqlMock, engine := newPipeline(t)
	expectScholarships(sqlMock)
	log := logger.NewTestLogger(t)

	list, err := source.List(context.Background())
	require.NoError(t, err)

	checker := cse.NewHandler(cse.LoadConfig(&config.Config{}, nil), log).WithClock(func() time.Time { return pipelineNow })
	checked, err := checker.Execute(context.Background(), &cse.Input{Profile: studentProfile(), Scholarships: list})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"sch-1", "sch-2"}, checked.EligibleIDs)
	assert.Equal(t, []string{"sch-3"}, checked.IneligibleIDs)

	ranker := arr.NewHandler(arr.LoadConfig(&config.Config{}, nil), log).WithClock(func() time.Time { return pipelineNow })
	ranked, err := ranker.Execute(context.Background(), &arr.Input{Profile: studentProfile(), Scholarships: list, Limit: 5})
	require.NoError(t, err)

	result := engine.Match(context.Background(), list, *studentProfile(), models.LocaleEN, 5)
	require.Len(t, ranked.RankedMatches, len(result.Matches))
	for i := range result.Matches {
		assert.Equal(t, result.Matches[i].ScholarshipID, ranked.RankedMatches[i].Scholarship.ID)
		assert.Equal(t, result.Matches[i].Score, ranked.RankedMatches[i].Score)
	}
}

// TestBroker_Topology runs only against a live gateway.
func TestBroker_Topology(t *testing.T) {
	address := os.Getenv("ZEEBE_ADDRESS")
	if address == "" {
		t.Skip("ZEEBE_ADDRESS not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := camunda.NewClient(ctx, camunda.ConfigFrom(config.CamundaConfig{BrokerAddress: address}), logger.NewTestLogger(t))
	require.NoError(t, err)
	defer client.Close()

	assert.NoError(t, client.HealthCheck(ctx))
}
