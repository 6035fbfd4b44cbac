package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bnema/standup/internal/domain"
	"github.com/bnema/standup/internal/infrastructure/logger"
	"github.com/bnema/standup/internal/service"
)

const defaultKeepAlive = 15 * time.Second

type SSEHandler struct {
	status    StatusService
	keepAlive time.Duration

	closing   chan struct{}
	closeOnce sync.Once
}

func NewSSEHandler(status StatusService) *SSEHandler {
	return &SSEHandler{status: status, keepAlive: defaultKeepAlive, closing: make(chan struct{})}
}

// Close ends every open stream. http.Server.Shutdown does not cancel
// request contexts, so without it open streams hold shutdown until jobs end.
func (h *SSEHandler) Close() {
	h.closeOnce.Do(func() { close(h.closing) })
}

// sseWriter serializes writes from the stream and the keep-alive ticker.
type sseWriter struct {
	mu      sync.Mutex
	w       http.ResponseWriter
	flusher http.Flusher
}

func (s *sseWriter) data(payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := fmt.Fprintf(s.w, "data: %s\n\n", payload); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}

func (s *sseWriter) comment(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = fmt.Fprintf(s.w, ": %s\n\n", text)
	s.flusher.Flush()
}

// Events godoc
// @Summary Follow a job
// @Description Server-sent events. Each event carries the same JSON as GET /jobs/{job_id}; the stream closes after the first completed or failed event.
// @Tags jobs
// @Produce text/event-stream
// @Param job_id path string true "job id"
// @Success 200 {object} service.JobView
// @Failure 404 {object} apiError
// @Router /job-events/{job_id} [get]
func (h *SSEHandler) Events(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "job_id")
	if !domain.ValidJobID(jobID) {
		writeError(w, http.StatusNotFound, "Job not found")
		return
	}
	if _, err := h.status.Get(r.Context(), jobID); err != nil {
		writeServiceError(w, r, err, "Job not found")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "Streaming unsupported")
		return
	}

	// A stream lives as long as its job, which may outlast the server's
	// WriteTimeout.
	if err := http.NewResponseController(w).SetWriteDeadline(time.Time{}); err != nil && !errors.Is(err, http.ErrNotSupported) {
		logger.Warn.Printf("event stream job=%s: clear write deadline: %v", jobID, err)
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	out := &sseWriter{w: w, flusher: flusher}
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	var wg sync.WaitGroup
	done := make(chan struct{})
	defer func() {
		close(done)
		wg.Wait()
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(h.keepAlive)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ctx.Done():
				return
			case <-h.closing:
				cancel()
				return
			case <-ticker.C:
				out.comment("keep-alive")
			}
		}
	}()

	err := h.status.Stream(ctx, jobID, func(view service.JobView) error {
		payload, err := json.Marshal(view)
		if err != nil {
			return err
		}
		return out.data(payload)
	})
	if err != nil && ctx.Err() == nil {
		logger.Warn.Printf("event stream job=%s ended: %v", jobID, err)
	}
}
