// cmd/worker-manager/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"scholarship-matcher/internal/common/aws"
	"scholarship-matcher/internal/common/camunda"
	"scholarship-matcher/internal/common/config"
	"scholarship-matcher/internal/common/genai"
	"scholarship-matcher/internal/common/logger"
	"scholarship-matcher/internal/common/metrics"
	"scholarship-matcher/internal/common/observability"
	"scholarship-matcher/internal/matching"
	"scholarship-matcher/internal/scholarships"
	"scholarship-matcher/pkg/registry"

	nsm "scholarship-matcher/internal/workers/communication/notify-scholarship-matches"
	arr "scholarship-matcher/internal/workers/matching/apply-relevance-ranking"
	cms "scholarship-matcher/internal/workers/matching/calculate-match-score"
	cse "scholarship-matcher/internal/workers/matching/check-scholarship-eligibility"
	gme "scholarship-matcher/internal/workers/matching/generate-match-explanations"
	ms "scholarship-matcher/internal/workers/matching/match-scholarships"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log logger.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(operationName+" failed, retrying", map[string]interface{}{
				"error":       err.Error(),
				"attempt":     i + 1,
				"maxRetries":  maxRetries,
				"nextRetryIn": delay.String(),
			})
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog).WithFields(map[string]interface{}{
		"service":     cfg.App.Name,
		"environment": cfg.App.Environment,
	})
	log.Info("starting worker manager", map[string]interface{}{"source": cfg.Matching.Source})

	obs := observability.New(cfg.App.Name, log)

	ctx := context.Background()

	// --- Zeebe ---
	zeebe, err := camunda.NewClient(ctx, camunda.ConfigFrom(cfg.Camunda), log)
	if err != nil {
		zapLog.Fatal("zeebe client failed", zap.Error(err))
	}

	// --- Scholarship stores ---
	clients, err := connectStores(ctx, cfg, log)
	if err != nil {
		zapLog.Fatal("store connection failed", zap.Error(err))
	}
	defer clients.close(log)

	source, err := scholarships.NewSource(cfg.Matching, clients.Clients, log)
	if err != nil {
		zapLog.Fatal("scholarship source setup failed", zap.Error(err))
	}
	log.Info("scholarship source ready", map[string]interface{}{"source": source.Name()})

	// --- Matching ---
	ai := genai.NewClient(genai.ConfigFrom(cfg.APIs.GenAI))
	if !ai.Enabled() {
		log.Warn("genai api key not set, explanations will use templates", nil)
	}
	explainer := matching.NewExplainer(ai, config.GetDuration(cfg.APIs.GenAI.Timeout), log, metrics.NewRecorder())
	engine := matching.NewEngine(explainer, log)

	reg := registry.Default()
	if cfg.Matching.RegistryPath != "" {
		if reg, err = registry.LoadRegistry(cfg.Matching.RegistryPath); err != nil {
			zapLog.Fatal("activity registry load failed", zap.Error(err))
		}
	}

	// --- Notification senders ---
	email, sms := notificationSenders(ctx, cfg, log)

	// --- Workers ---
	handlers := map[string]camunda.JobHandler{
		ms.TaskType:  ms.NewHandler(ms.LoadConfig(cfg, reg.InputSchema(ms.TaskType)), engine, source, obs, log),
		cse.TaskType: cse.NewHandler(cse.LoadConfig(cfg, reg.InputSchema(cse.TaskType)), log),
		cms.TaskType: cms.NewHandler(cms.LoadConfig(cfg, reg.InputSchema(cms.TaskType)), log),
		arr.TaskType: arr.NewHandler(arr.LoadConfig(cfg, reg.InputSchema(arr.TaskType)), log),
		gme.TaskType: gme.NewHandler(gme.LoadConfig(cfg, reg.InputSchema(gme.TaskType)), explainer, log),
		nsm.TaskType: nsm.NewHandler(nsm.LoadConfig(cfg, reg.InputSchema(nsm.TaskType)), email, sms, log),
	}

	var workers []*camunda.CamundaWorker
	for taskType, handler := range handlers {
		if !config.IsWorkerEnabled(cfg, taskType) {
			log.Info("worker disabled", map[string]interface{}{"taskType": taskType})
			continue
		}
		workers = append(workers, camunda.StartWorker(
			zeebe.GetClient(), taskType, config.GetWorkerConfig(cfg, taskType), handler, log, obs,
		))
	}
	log.Info("workers registered", map[string]interface{}{"count": len(workers)})

	// --- Health & Metrics Server ---
	server := &http.Server{
		Addr:              cfg.App.HTTPAddress,
		Handler:           newProbeMux(zeebe, clients.pingers(), log),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Info("health/metrics server listening", map[string]interface{}{"address": server.Addr})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("health/metrics server failed", map[string]interface{}{"error": err.Error()})
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Info("shutdown signal received, stopping workers", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, w := range workers {
		w.Stop()
	}
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("health/metrics server shutdown failed", map[string]interface{}{"error": err.Error()})
	}
	if err := zeebe.Close(); err != nil {
		log.Error("error closing zeebe client", map[string]interface{}{"error": err.Error()})
	}
	if err := obs.Shutdown(shutdownCtx); err != nil {
		log.Error("observability shutdown failed", map[string]interface{}{"error": err.Error()})
	}

	log.Info("worker manager stopped", nil)
}

// notificationSenders returns nil senders for disabled channels.
func notificationSenders(ctx context.Context, cfg *config.Config, log logger.Logger) (nsm.EmailSender, nsm.SMSSender) {
	n := cfg.Notifications
	if !n.Email.Enabled && !n.SMS.Enabled {
		return nil, nil
	}

	awsCfg, err := aws.LoadConfig(ctx, n.AWS.Region)
	if err != nil {
		log.Error("aws config load failed, notifications disabled", map[string]interface{}{"error": err.Error()})
		return nil, nil
	}

	var (
		email nsm.EmailSender
		sms   nsm.SMSSender
	)
	if n.Email.Enabled {
		email = aws.NewSESClient(awsCfg, n.Email.FromEmail)
	}
	if n.SMS.Enabled {
		sms = aws.NewSNSClient(awsCfg, n.SMS.SenderID)
	}
	return email, sms
}
