package errors

import (
	"fmt"
	"testing"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/pb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetriesFor(t *testing.T) {
	tests := []struct {
		name       string
		jobRetries int32
		maxRetries int
		want       int32
	}{
		{name: "job has more than max", jobRetries: 5, maxRetries: 3, want: 3},
		{name: "job has exactly max", jobRetries: 3, maxRetries: 3, want: 2},
		{name: "job has fewer than max", jobRetries: 2, maxRetries: 3, want: 1},
		{name: "last retry", jobRetries: 1, maxRetries: 3, want: 0},
		{name: "no retries left", jobRetries: 0, maxRetries: 3, want: 0},
		{name: "non-retryable code", jobRetries: 3, maxRetries: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := entities.Job{ActivatedJob: &pb.ActivatedJob{}}
			job.Retries = tt.jobRetries
			assert.Equal(t, tt.want, RetriesFor(job, tt.maxRetries))
		})
	}
}

func TestShouldRetry_RepeatedFailuresExhaustRetries(t *testing.T) {
	tests := []struct {
		name       string
		err        *StandardError
		jobRetries int32
		wantFails  int
	}{
		{
			name:       "source failure",
			err:        NewScholarshipSourceFailedError("postgres", fmt.Errorf("connection refused")),
			jobRetries: 3,
			wantFails:  2,
		},
		{
			name:       "notification send failure",
			err:        NewNotificationSendFailedError("email", fmt.Errorf("ses unavailable")),
			jobRetries: 10,
			wantFails:  3,
		},
		{
			name:       "source timeout",
			err:        NewScholarshipSourceTimeoutError("elasticsearch"),
			jobRetries: 3,
			wantFails:  2,
		},
		{
			name:       "business error throws at once",
			err:        NewInvalidMatchInputError("profile missing"),
			jobRetries: 3,
			wantFails:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bpmnErr := ConvertToBPMNError(tt.err)
			job := entities.Job{ActivatedJob: &pb.ActivatedJob{}}
			job.Retries = tt.jobRetries

			fails := 0
			for attempt := 0; attempt < 20 && shouldRetry(job, bpmnErr); attempt++ {
				next := RetriesFor(job, bpmnErr.Retries)
				require.Less(t, next, job.Retries, "each failure consumes a retry")
				job.Retries = next
				fails++
			}

			assert.Equal(t, tt.wantFails, fails)
			assert.False(t, shouldRetry(job, bpmnErr))
			assert.LessOrEqual(t, RetriesFor(job, bpmnErr.Retries), int32(0))
		})
	}
}

func TestConvertToBPMNError_Retries(t *testing.T) {
	retryable := ConvertToBPMNError(NewDatabaseConnectionFailedError(fmt.Errorf("dial tcp: refused")))
	assert.Equal(t, 3, retryable.Retries)
	assert.True(t, retryable.Retryable)

	flagged := NewScholarshipSourceFailedError("postgres", fmt.Errorf("boom"))
	flagged.Retryable = false
	assert.Equal(t, 0, ConvertToBPMNError(flagged).Retries)

	assert.True(t, IsRetryableErrorCode(ErrCodeNotificationSendFailed))
	assert.False(t, IsRetryableErrorCode(ErrCodeInvalidMatchInput))
}

func TestNormalize_WrapsPlainErrors(t *testing.T) {
	stdErr := Normalize(fmt.Errorf("unexpected"))
	assert.Equal(t, ErrorCode("INTERNAL_ERROR"), stdErr.Code)
	assert.False(t, stdErr.Retryable)
	assert.Equal(t, 0, ConvertToBPMNError(stdErr).Retries)

	src := NewScholarshipSourceTimeoutError("postgres")
	assert.Same(t, src, Normalize(fmt.Errorf("load: %w", src)))
}
