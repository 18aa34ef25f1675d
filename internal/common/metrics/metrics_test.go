package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorder_ObserveExplanations(t *testing.T) {
	before := testutil.ToFloat64(ExplanationsTotal.WithLabelValues("ai"))

	r := NewRecorder()
	r.ObserveExplanations("ai", 3)
	r.ObserveExplanations("ai", 0)

	assert.Equal(t, before+3, testutil.ToFloat64(ExplanationsTotal.WithLabelValues("ai")))
}

func TestRecorder_ObserveAIRequest(t *testing.T) {
	NewRecorder().ObserveAIRequest("timeout", 2*time.Second)
	assert.GreaterOrEqual(t, testutil.CollectAndCount(GenAIRequestDuration), 1)
}

func TestObserveCandidates(t *testing.T) {
	evaluated := testutil.ToFloat64(CandidatesTotal.WithLabelValues(StageEvaluated))
	selected := testutil.ToFloat64(CandidatesTotal.WithLabelValues(StageSelected))

	ObserveCandidates(20, 8, 5)

	assert.Equal(t, evaluated+20, testutil.ToFloat64(CandidatesTotal.WithLabelValues(StageEvaluated)))
	assert.Equal(t, selected+5, testutil.ToFloat64(CandidatesTotal.WithLabelValues(StageSelected)))
}

func TestObserveJob(t *testing.T) {
	done := testutil.ToFloat64(WorkerJobsCompleted.WithLabelValues("match-scholarships"))
	failed := testutil.ToFloat64(WorkerJobsFailed.WithLabelValues("match-scholarships", "INVALID_MATCH_INPUT"))

	ObserveJob("match-scholarships", 10*time.Millisecond, "")
	ObserveJob("match-scholarships", 10*time.Millisecond, "INVALID_MATCH_INPUT")

	assert.Equal(t, done+1, testutil.ToFloat64(WorkerJobsCompleted.WithLabelValues("match-scholarships")))
	assert.Equal(t, failed+1, testutil.ToFloat64(WorkerJobsFailed.WithLabelValues("match-scholarships", "INVALID_MATCH_INPUT")))
}
