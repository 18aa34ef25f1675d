package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholarship-matcher/internal/common/database"
	"scholarship-matcher/internal/common/logger"
)

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

func TestProbeMux(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		broker     fakePinger
		stores     map[string]database.Pinger
		wantCode   int
		wantStatus string
	}{
		{"healthy", "/health", fakePinger{}, map[string]database.Pinger{"postgres": fakePinger{}}, http.StatusOK, "healthy"},
		{"store down", "/health", fakePinger{}, map[string]database.Pinger{"redis": fakePinger{err: errors.New("refused")}}, http.StatusServiceUnavailable, "unhealthy"},
		{"ready", "/ready", fakePinger{}, nil, http.StatusOK, "ready"},
		{"broker down", "/ready", fakePinger{err: errors.New("unavailable")}, nil, http.StatusServiceUnavailable, "not ready"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := newProbeMux(tt.broker, tt.stores, logger.NewTestLogger(t))
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantStatus, body["status"])
		})
	}
}

func TestProbeMux_ReportsFailingStore(t *testing.T) {
	mux := newProbeMux(fakePinger{}, map[string]database.Pinger{
		"elasticsearch": fakePinger{err: errors.New("timeout")},
	}, logger.NewTestLogger(t))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "elasticsearch", body["failing"])
}

func TestProbeMux_ServesMetrics(t *testing.T) {
	mux := newProbeMux(fakePinger{}, nil, logger.NewTestLogger(t))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestRetryWithBackoff(t *testing.T) {
	calls := 0
	err := retryWithBackoff(func() error {
		calls++
		if calls < 3 {
			return errors.New("not yet")
		}
		return nil
	}, 5, 0, logger.NewTestLogger(t), "op")
	require.NoError(t, err)
	assert.Equal(t, 3, calls)

	err = retryWithBackoff(func() error { return errors.New("down") }, 2, 0, logger.NewTestLogger(t), "op")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "op failed after 2 attempts")
}
