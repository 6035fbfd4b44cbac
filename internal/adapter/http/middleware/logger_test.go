package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/standup/internal/infrastructure/logger"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, logger.Setup("info", &buf))
	t.Cleanup(func() { _ = logger.Setup("info", os.Stdout) })
	return &buf
}

func TestRequestLogger(t *testing.T) {
	logs := captureLogs(t)
	handler := chimw.RequestID(RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Job not found"}`))
	})))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/jobs/standup_x", nil))

	line := logs.String()
	assert.Contains(t, line, "method=GET")
	assert.Contains(t, line, "path=/jobs/standup_x")
	assert.Contains(t, line, "status=404")
	assert.Contains(t, line, "bytes=26")
	assert.Regexp(t, `req_id=\S+/\S+-\d+`, line)
}

func TestRequestLogger_DefaultsToOK(t *testing.T) {
	logs := captureLogs(t)
	handler := RequestLogger(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Contains(t, logs.String(), "status=200")
}

func TestRequestLogger_KeepsFlusher(t *testing.T) {
	var flushable bool
	handler := RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, flushable = w.(http.Flusher)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/job-events/x", nil))

	assert.True(t, flushable, "event streams need to flush through the logger")
}
