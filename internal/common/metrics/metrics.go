// internal/common/metrics/metrics.go
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "worker_job_duration_seconds",
			Help: "Duration of job processing in seconds",
		},
		[]string{"task_type"},
	)

	WorkerJobsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "worker_jobs_active",
			Help: "Number of active jobs per worker",
		},
		[]string{"task_type"},
	)

	ExplanationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scholarship_explanations_total",
			Help: "Explanations produced, by source (ai or fallback)",
		},
		[]string{"source"},
	)

	GenAIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "scholarship_genai_request_duration_seconds",
			Help:    "Duration of explanation requests to the generative AI service",
			Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30},
		},
		[]string{"outcome"},
	)

	CandidatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scholarship_candidates_total",
			Help: "Scholarships seen at each matching stage",
		},
		[]string{"stage"},
	)
)

// Candidate stages.
const (
	StageEvaluated = "evaluated"
	StageEligible  = "eligible"
	StageSelected  = "selected"
)

// Recorder forwards explanation metrics from the matching engine to prometheus.
type Recorder struct{}

func NewRecorder() Recorder { return Recorder{} }

func (Recorder) ObserveExplanations(source string, count int) {
	if count <= 0 {
		return
	}
	ExplanationsTotal.WithLabelValues(source).Add(float64(count))
}

func (Recorder) ObserveAIRequest(outcome string, d time.Duration) {
	GenAIRequestDuration.WithLabelValues(outcome).Observe(d.Seconds())
}

// ObserveCandidates records how many scholarships passed through one matching run.
func ObserveCandidates(evaluated, eligible, selected int) {
	CandidatesTotal.WithLabelValues(StageEvaluated).Add(float64(evaluated))
	CandidatesTotal.WithLabelValues(StageEligible).Add(float64(eligible))
	CandidatesTotal.WithLabelValues(StageSelected).Add(float64(selected))
}

// ObserveJob records the outcome of one handled job. errorCode is empty on success.
func ObserveJob(taskType string, d time.Duration, errorCode string) {
	WorkerJobDuration.WithLabelValues(taskType).Observe(d.Seconds())
	if errorCode == "" {
		WorkerJobsCompleted.WithLabelValues(taskType).Inc()
		return
	}
	WorkerJobsFailed.WithLabelValues(taskType, errorCode).Inc()
}
