package http

import (
	"bufio"
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/standup/internal/adapter/http/middleware"
	"github.com/bnema/standup/internal/domain"
	"github.com/bnema/standup/internal/service"
)

func TestEvents_StreamsUntilTerminal(t *testing.T) {
	f := newServerFixture(t, nil)
	processing := &domain.Summary{JobID: "standup_s", Status: domain.JobStatusProcessing}

	f.jobs.EXPECT().GetJob(mock.Anything, "standup_s").Return(processing, nil).Twice()
	f.jobs.EXPECT().GetJob(mock.Anything, "standup_s").Return(completedJob("standup_s"), nil).Once()

	rec := f.do(httptest.NewRequest(http.MethodGet, "/job-events/standup_s", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "no", rec.Header().Get("X-Accel-Buffering"))

	events := strings.Split(strings.TrimSpace(rec.Body.String()), "\n\n")
	require.Len(t, events, 2)
	assert.JSONEq(t, `{"job_id":"standup_s","status":"processing","message":"Current status: processing"}`,
		strings.TrimPrefix(events[0], "data: "))
	assert.Contains(t, events[1], `"status":"completed"`)
	assert.Contains(t, events[1], `"summary":"- shipped"`)
}

func TestEvents_UnknownJob(t *testing.T) {
	f := newServerFixture(t, nil)
	f.jobs.EXPECT().GetJob(mock.Anything, "standup_nope").Return(nil, domain.ErrNotFound).Once()

	rec := f.do(httptest.NewRequest(http.MethodGet, "/job-events/standup_nope", nil))

	assertDetail(t, rec, http.StatusNotFound, "Job not found")
	assert.NotEqual(t, "text/event-stream", rec.Header().Get("Content-Type"))
}

// blockingStatus reports a job as processing forever.
type blockingStatus struct{}

func (blockingStatus) Get(_ context.Context, jobID string) (service.JobView, error) {
	return service.JobView{JobID: jobID, Status: domain.JobStatusProcessing}, nil
}

func (blockingStatus) Stream(ctx context.Context, jobID string, emit func(service.JobView) error) error {
	if err := emit(service.JobView{JobID: jobID, Status: domain.JobStatusProcessing}); err != nil {
		return err
	}
	<-ctx.Done()
	return nil
}

func TestEvents_KeepAliveUntilDisconnect(t *testing.T) {
	h := NewSSEHandler(blockingStatus{})
	h.keepAlive = 5 * time.Millisecond

	r := chi.NewRouter()
	r.Get("/job-events/{job_id}", h.Events)

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/job-events/standup_k", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		r.ServeHTTP(rec, req)
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("handler did not return after the client went away")
	}

	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, `data: {"job_id":"standup_k"`), body)
	assert.Contains(t, body, ": keep-alive\n\n")
}

// slowStatus reports processing every tick until completeAfter has passed.
type slowStatus struct {
	completeAfter time.Duration
}

func (slowStatus) Get(_ context.Context, jobID string) (service.JobView, error) {
	return service.JobView{JobID: jobID, Status: domain.JobStatusProcessing}, nil
}

func (s slowStatus) Stream(ctx context.Context, jobID string, emit func(service.JobView) error) error {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	completed := time.After(s.completeAfter)

	if err := emit(service.JobView{JobID: jobID, Status: domain.JobStatusProcessing}); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-completed:
			return emit(service.JobView{JobID: jobID, Status: domain.JobStatusCompleted})
		case <-ticker.C:
			if err := emit(service.JobView{JobID: jobID, Status: domain.JobStatusProcessing}); err != nil {
				return err
			}
		}
	}
}

func TestEvents_OutlivesServerWriteTimeout(t *testing.T) {
	r := chi.NewRouter()
	r.Use(middleware.RequestLogger)
	r.Get("/job-events/{job_id}", NewSSEHandler(slowStatus{completeAfter: 600 * time.Millisecond}).Events)

	srv := httptest.NewUnstartedServer(r)
	srv.Config.WriteTimeout = 200 * time.Millisecond
	srv.Start()
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/job-events/standup_slow")
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	events := strings.Split(strings.TrimSpace(string(body)), "\n\n")
	require.NotEmpty(t, events)
	assert.Contains(t, events[len(events)-1], `"status":"completed"`)
}

func TestServer_CloseStreamsLetsShutdownFinish(t *testing.T) {
	f := newServerFixture(t, nil)
	processing := &domain.Summary{JobID: "standup_w", Status: domain.JobStatusProcessing}
	f.jobs.EXPECT().GetJob(mock.Anything, "standup_w").Return(processing, nil)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	httpServer := &http.Server{Handler: f.srv}
	httpServer.RegisterOnShutdown(f.srv.CloseStreams)
	go func() { _ = httpServer.Serve(ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/job-events/standup_w")
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck

	first, err := bufio.NewReader(resp.Body).ReadString('\n')
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(first, "data: "), first)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	started := time.Now()

	require.NoError(t, httpServer.Shutdown(ctx))
	assert.Less(t, time.Since(started), 2*time.Second)
}
