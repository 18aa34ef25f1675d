package camunda

import (
	"testing"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/pb"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"scholarship-matcher/internal/common/errors"
	"scholarship-matcher/internal/common/logger"
	"scholarship-matcher/internal/common/metrics"
)

type stubHandler struct {
	err   error
	calls int
}

func (s *stubHandler) Handle(worker.JobClient, entities.Job) error {
	s.calls++
	return s.err
}

func TestInstrument_RecordsOutcome(t *testing.T) {
	const taskType = "instrument-test"
	job := entities.Job{ActivatedJob: &pb.ActivatedJob{Key: 42}}

	ok := &stubHandler{}
	instrument(taskType, ok, logger.NewTestLogger(t), nil)(nil, job)
	assert.Equal(t, 1, ok.calls)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.WorkerJobsCompleted.WithLabelValues(taskType)))

	failing := &stubHandler{err: errors.NewInvalidMatchInputError("profile is required")}
	instrument(taskType, failing, logger.NewTestLogger(t), nil)(nil, job)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.WorkerJobsFailed.WithLabelValues(taskType, "INVALID_MATCH_INPUT")))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.WorkerJobsActive.WithLabelValues(taskType)))
}
