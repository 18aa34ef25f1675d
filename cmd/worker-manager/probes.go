// cmd/worker-manager/probes.go
package main

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"scholarship-matcher/internal/common/database"
	"scholarship-matcher/internal/common/logger"
)

const probeTimeout = 3 * time.Second

// newProbeMux serves /health (stores), /ready (broker) and /metrics.
func newProbeMux(broker database.Pinger, stores map[string]database.Pinger, log logger.Logger) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
		defer cancel()

		if name, err := database.PingAll(ctx, stores); err != nil {
			log.Warn("health check failed", map[string]interface{}{"store": name, "error": err.Error()})
			writeStatus(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy", "failing": name})
			return
		}
		writeStatus(w, http.StatusOK, map[string]string{"status": "healthy"})
	})

	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
		defer cancel()

		if err := broker.Ping(ctx); err != nil {
			log.Warn("readiness check failed", map[string]interface{}{"error": err.Error()})
			writeStatus(w, http.StatusServiceUnavailable, map[string]string{"status": "not ready"})
			return
		}
		writeStatus(w, http.StatusOK, map[string]string{"status": "ready"})
	})

	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

func writeStatus(w http.ResponseWriter, code int, body map[string]string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}
