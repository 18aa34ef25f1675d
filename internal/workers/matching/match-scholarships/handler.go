// internal/workers/matching/match-scholarships/handler.go
package matchscholarships

import (
	"context"
	"fmt"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"

	"scholarship-matcher/internal/common/errors"
	"scholarship-matcher/internal/common/logger"
	"scholarship-matcher/internal/common/metrics"
	"scholarship-matcher/internal/common/observability"
	"scholarship-matcher/internal/common/validation"
	"scholarship-matcher/internal/matching"
	"scholarship-matcher/internal/models"
	"scholarship-matcher/internal/scholarships"
)

const (
	TaskType = "match-scholarships"

	sourceInput = "input"
)

type Handler struct {
	config       *Config
	engine       *matching.Engine
	source       scholarships.Source
	obs          *observability.Observability
	errorHandler *errors.ErrorHandler
	logger       logger.Logger
}

// NewHandler builds the handler. source may be nil, in which case every job
// must carry its own scholarships.
func NewHandler(cfg *Config, engine *matching.Engine, source scholarships.Source, obs *observability.Observability, log logger.Logger) *Handler {
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       cfg,
		engine:       engine,
		source:       source,
		obs:          obs,
		errorHandler: errors.NewErrorHandler(log),
		logger:       log,
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) error {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	input, err := h.decode(job)
	if err != nil {
		h.errorHandler.HandleJobError(context.Background(), client, job, err)
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, input)
	if err != nil {
		h.errorHandler.HandleJobError(context.Background(), client, job, err)
		return err
	}

	return h.completeJob(client, job, output)
}

func (h *Handler) decode(job entities.Job) (*Input, error) {
	var input Input
	if err := validation.DecodeJob(job.Variables, h.config.InputSchema, &input); err != nil {
		return nil, err
	}
	return &input, nil
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if input == nil || input.Profile == nil {
		return nil, errors.NewInvalidMatchInputError("profile is required")
	}

	list, sourceName, err := h.scholarships(ctx, input)
	if err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit <= 0 {
		limit = h.config.DefaultLimit
	}
	if h.config.MaxLimit > 0 && limit > h.config.MaxLimit {
		limit = h.config.MaxLimit
	}
	locale := models.ParseLocale(input.Locale)

	result := h.engine.Match(ctx, list, *input.Profile, locale, limit)

	metrics.ObserveCandidates(result.EvaluatedCount, result.EligibleCount, len(result.Matches))
	h.obs.RecordMatches(ctx, string(locale), len(result.Matches))

	requestID := uuid.NewString()
	h.logger.Info("match request served", map[string]interface{}{
		"requestId": requestID,
		"source":    sourceName,
		"returned":  len(result.Matches),
	})

	return &Output{
		RequestID:      requestID,
		Locale:         locale,
		Matches:        result.Matches,
		EvaluatedCount: result.EvaluatedCount,
		EligibleCount:  result.EligibleCount,
		Source:         sourceName,
	}, nil
}

func (h *Handler) scholarships(ctx context.Context, input *Input) ([]models.Scholarship, string, error) {
	if input.Scholarships != nil {
		return input.Scholarships, sourceInput, nil
	}
	if h.source == nil {
		return nil, "", errors.NewInvalidMatchInputError("scholarships are required when no scholarship source is configured")
	}

	list, err := h.source.List(ctx)
	if err != nil {
		if _, ok := errors.AsStandardError(err); ok {
			return nil, "", err
		}
		return nil, "", errors.NewScholarshipSourceFailedError(h.source.Name(), err)
	}
	return list, h.source.Name(), nil
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) error {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{"error": err})
		return fmt.Errorf("complete job %d: %w", job.Key, err)
	}
	if _, err := cmd.Send(context.Background()); err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{"error": err})
		return fmt.Errorf("complete job %d: %w", job.Key, err)
	}
	return nil
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
