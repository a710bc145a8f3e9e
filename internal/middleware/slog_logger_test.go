package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locafleet/backend/internal/middleware"
)

func TestNewSlogLogger_LogsRequestLine(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/vehicles/999", nil)
	rec := httptest.NewRecorder()

	// Wrap with RequestID first, exactly as main.go does, so the log line
	// carries the request id.
	middleware.RequestID(middleware.NewSlogLogger(logger)(next)).ServeHTTP(rec, req)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))

	assert.Equal(t, "request", line["msg"])
	assert.Equal(t, http.MethodGet, line["method"])
	assert.Equal(t, "/vehicles/999", line["path"])
	assert.Equal(t, float64(http.StatusNotFound), line["status"])
	assert.NotEmpty(t, line["request_id"])
	assert.Contains(t, line, "duration_ms")
}

func TestNewSlogLogger_DefaultStatus200(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok")) // implicit 200
	})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	middleware.NewSlogLogger(logger)(next).ServeHTTP(rec, req)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, float64(http.StatusOK), line["status"])
}
