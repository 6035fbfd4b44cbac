package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/standup/internal/adapter/storage/sqlite"
	"github.com/bnema/standup/internal/domain"
)

type wavNormalizer struct{}

func (wavNormalizer) Normalize(_ context.Context, _, outputDir string) (string, error) {
	out := filepath.Join(outputDir, "normalized.wav")
	return out, os.WriteFile(out, []byte("pcm"), 0o640)
}

// gatedTranscriber blocks until gate is closed, when one is set.
type gatedTranscriber struct {
	gate chan struct{}
}

func (g gatedTranscriber) Transcribe(ctx context.Context, _ string) (string, error) {
	if g.gate != nil {
		select {
		case <-g.gate:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return "yesterday I fixed the build, today the release", nil
}

type bulletSummarizer struct{}

func (bulletSummarizer) Summarize(_ context.Context, text string) (string, error) {
	return "- " + text, nil
}

type unusedNotifier struct{ t *testing.T }

func (n unusedNotifier) Notify(context.Context, string, string) error {
	n.t.Error("notify called with notifications disabled")
	return nil
}

type pipeline struct {
	store     *sqlite.Store
	ws        *Workspace
	runner    *Runner
	submitter *SubmissionService
	observer  *StatusObserver
}

func newPipeline(t *testing.T, transcriber gatedTranscriber) *pipeline {
	t.Helper()
	store, err := sqlite.NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	ws := newTestWorkspace(t)
	bus := NewEventBus()
	orch := NewOrchestrator(OrchestratorDeps{
		Jobs:        store,
		Channels:    store,
		Normalizer:  wavNormalizer{},
		Transcriber: transcriber,
		Summarizer:  bulletSummarizer{},
		Notifier:    unusedNotifier{t: t},
		Workspace:   ws,
		Events:      bus,
		Timeout:     5 * time.Second,
	})
	runner := NewRunner(orch.Run, 2)

	return &pipeline{
		store:     store,
		ws:        ws,
		runner:    runner,
		submitter: NewSubmissionService(store, ws, NewLocalDispatcher(runner)),
		observer:  NewStatusObserver(store, bus, 10*time.Millisecond),
	}
}

// seedChannels creates one project and channels 1..n.
func (p *pipeline) seedChannels(t *testing.T, n int) {
	t.Helper()
	ctx := context.Background()
	project := &domain.Project{Name: "platform"}
	require.NoError(t, p.store.CreateProject(ctx, project))
	for i := 1; i <= n; i++ {
		c := &domain.Channel{ProjectID: project.ID, Label: "team", DestinationID: "C0TEAM"}
		require.NoError(t, p.store.CreateChannel(ctx, c))
		require.Equal(t, int64(i), c.ID)
	}
}

func (p *pipeline) submit(t *testing.T, channelID int64) string {
	t.Helper()
	job, err := p.submitter.Submit(context.Background(), Upload{
		ChannelID: channelID,
		Filename:  "standup.m4a",
		Body:      strings.NewReader("recording bytes"),
		Notify:    false,
	})
	require.NoError(t, err)
	require.Equal(t, domain.JobStatusPending, job.Status)
	return job.JobID
}

// follow streams the job until the terminal view and returns every status seen.
func (p *pipeline) follow(t *testing.T, jobID string) []domain.JobStatus {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var seen []domain.JobStatus
	err := p.observer.Stream(ctx, jobID, func(v JobView) error {
		seen = append(seen, v.Status)
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, ctx.Err(), "stream did not reach a terminal state")
	return seen
}

// settle waits until every spawned job has returned, cleanup included.
func (p *pipeline) settle(t *testing.T) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, p.runner.Shutdown(ctx))
}

func (p *pipeline) dirExists(jobID string) bool {
	_, err := os.Stat(filepath.Join(p.ws.Root(), jobID))
	return err == nil
}

func TestPipeline_ExistingChannelCompletes(t *testing.T) {
	p := newPipeline(t, gatedTranscriber{})
	p.seedChannels(t, 7)

	jobID := p.submit(t, 7)
	seen := p.follow(t, jobID)
	p.settle(t)

	assert.Equal(t, domain.JobStatusCompleted, seen[len(seen)-1])
	assert.NotContains(t, seen[:len(seen)-1], domain.JobStatusCompleted)

	job, err := p.store.GetJob(context.Background(), jobID)
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusCompleted, job.Status)
	require.NotNil(t, job.Transcript)
	require.NotNil(t, job.Summary)
	assert.NotEmpty(t, *job.Transcript)
	assert.Equal(t, "- "+*job.Transcript, *job.Summary)
	assert.False(t, job.NotificationSent)
	assert.Nil(t, job.NotificationError)
	assert.Nil(t, job.Error)
	assert.False(t, p.dirExists(jobID), "working directory removed")
}

func TestPipeline_MissingChannelFails(t *testing.T) {
	p := newPipeline(t, gatedTranscriber{})
	p.seedChannels(t, 1)

	jobID := p.submit(t, 999)
	seen := p.follow(t, jobID)
	p.settle(t)

	assert.NotContains(t, seen, domain.JobStatusProcessing)
	assert.Equal(t, domain.JobStatusFailed, seen[len(seen)-1])

	job, err := p.store.GetJob(context.Background(), jobID)
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusFailed, job.Status)
	require.NotNil(t, job.Error)
	assert.Contains(t, *job.Error, "999")
	assert.Nil(t, job.Transcript)
	assert.Nil(t, job.Summary)
	assert.False(t, p.dirExists(jobID))
}

func TestPipeline_StreamDisconnectDoesNotStopJob(t *testing.T) {
	gate := make(chan struct{})
	p := newPipeline(t, gatedTranscriber{gate: gate})
	p.seedChannels(t, 7)

	jobID := p.submit(t, 7)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := p.observer.Stream(ctx, jobID, func(v JobView) error {
		if v.Status == domain.JobStatusProcessing {
			cancel()
		}
		return nil
	})
	require.NoError(t, err)
	require.ErrorIs(t, ctx.Err(), context.Canceled, "client left while processing")

	close(gate)
	p.settle(t)

	job, err := p.store.GetJob(context.Background(), jobID)
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusCompleted, job.Status)
	assert.False(t, p.dirExists(jobID))
}
