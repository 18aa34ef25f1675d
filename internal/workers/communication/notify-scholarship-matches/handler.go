// internal/workers/communication/notify-scholarship-matches/handler.go
package notifyscholarshipmatches

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"

	"scholarship-matcher/internal/common/aws"
	"scholarship-matcher/internal/common/errors"
	"scholarship-matcher/internal/common/logger"
	"scholarship-matcher/internal/common/validation"
	"scholarship-matcher/internal/models"
)

const TaskType = "notify-scholarship-matches"

type EmailSender interface {
	SendEmail(ctx context.Context, email aws.Email) (string, error)
}

type SMSSender interface {
	SendSMS(ctx context.Context, phoneNumber, message string) (string, error)
}

type Handler struct {
	config       *Config
	email        EmailSender
	sms          SMSSender
	errorHandler *errors.ErrorHandler
	logger       logger.Logger
	now          func() time.Time
}

// NewHandler builds the notifier. A nil sender disables its channel.
func NewHandler(cfg *Config, email EmailSender, sms SMSSender, log logger.Logger) *Handler {
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       cfg,
		email:        email,
		sms:          sms,
		errorHandler: errors.NewErrorHandler(log),
		logger:       log,
		now:          time.Now,
	}
}

func (h *Handler) WithClock(now func() time.Time) *Handler {
	h.now = now
	return h
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) error {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := validation.DecodeJob(job.Variables, h.config.InputSchema, &input); err != nil {
		h.errorHandler.HandleJobError(context.Background(), client, job, err)
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		h.errorHandler.HandleJobError(context.Background(), client, job, err)
		return err
	}

	return h.completeJob(client, job, output)
}

// execute returns the notification record alongside any send error so
// callers can see what was attempted.
func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if input == nil {
		return nil, errors.NewInvalidMatchInputError("notification input is required")
	}

	locale := models.ParseLocale(input.Locale)
	out := &Output{
		ID:         uuid.New().String(),
		Channel:    strings.ToLower(strings.TrimSpace(input.Channel)),
		Locale:     locale,
		MatchCount: len(input.Matches),
		SentAt:     h.now().UTC().Format(time.RFC3339),
	}

	switch out.Channel {
	case models.ChannelEmail:
		out.Recipient = strings.TrimSpace(input.Email)
		if !h.config.EmailEnabled || h.email == nil {
			return h.disabled(out), nil
		}
		if !validation.ValidateEmail(out.Recipient) {
			return nil, errors.NewRecipientMissingError(out.Channel)
		}
		return h.sendEmail(ctx, input, out)
	case models.ChannelSMS:
		out.Recipient = strings.TrimSpace(input.PhoneNumber)
		if !h.config.SMSEnabled || h.sms == nil {
			return h.disabled(out), nil
		}
		if !validation.ValidatePhone(out.Recipient) {
			return nil, errors.NewRecipientMissingError(out.Channel)
		}
		return h.sendSMS(ctx, input, out)
	default:
		return nil, errors.NewInvalidMatchInputError(fmt.Sprintf("unsupported notification channel %q", input.Channel))
	}
}

func (h *Handler) disabled(out *Output) *Output {
	h.logger.Info("notification channel disabled", map[string]interface{}{"channel": out.Channel})
	out.Status = models.NotificationDisabled
	return out
}

func (h *Handler) sendEmail(ctx context.Context, input *Input, out *Output) (*Output, error) {
	tmpl, err := renderEmail(buildData(input, out.Locale, h.config.MaxListed), out.Locale)
	if err != nil {
		return nil, fmt.Errorf("render email: %w", err)
	}

	id, err := h.email.SendEmail(ctx, aws.Email{
		To:       out.Recipient,
		Subject:  tmpl.Subject,
		HTMLBody: tmpl.HTMLBody,
		TextBody: tmpl.Body,
	})
	return h.result(out, id, err)
}

func (h *Handler) sendSMS(ctx context.Context, input *Input, out *Output) (*Output, error) {
	body, err := renderSMS(buildData(input, out.Locale, h.config.MaxListed), out.Locale)
	if err != nil {
		return nil, fmt.Errorf("render sms: %w", err)
	}

	id, err := h.sms.SendSMS(ctx, out.Recipient, body)
	return h.result(out, id, err)
}

func (h *Handler) result(out *Output, messageID string, err error) (*Output, error) {
	if err != nil {
		out.Status = models.NotificationFailed
		h.logger.Error("notification send failed", map[string]interface{}{
			"channel":        out.Channel,
			"notificationId": out.ID,
			"error":          err.Error(),
		})
		return out, errors.NewNotificationSendFailedError(out.Channel, err)
	}

	out.Status = models.NotificationSent
	out.MessageID = messageID
	h.logger.Info("notification sent", map[string]interface{}{
		"channel":        out.Channel,
		"notificationId": out.ID,
		"messageId":      messageID,
		"matchCount":     out.MatchCount,
	})
	return out, nil
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
