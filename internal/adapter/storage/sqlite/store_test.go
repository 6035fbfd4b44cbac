package sqlite

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bnema/standup/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func createJob(t *testing.T, s *Store, channelID int64) *domain.Summary {
	t.Helper()
	job := domain.NewPendingSummary(domain.JobSpec{
		JobID:            domain.NewJobID(time.Now()),
		ChannelID:        channelID,
		AudioFilePath:    "/tmp/work/x/original.wav",
		OriginalFilename: "standup.wav",
	})
	require.NoError(t, s.CreateJob(context.Background(), job))
	return job
}

func TestStore_CreateAndGetJob(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	job := createJob(t, s, 7)

	assert.NotZero(t, job.ID)
	assert.False(t, job.CreatedAt.IsZero())

	got, err := s.GetJob(ctx, job.JobID)
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusPending, got.Status)
	assert.Equal(t, int64(7), got.ChannelID)
	assert.Equal(t, "standup.wav", got.OriginalFilename)
	assert.Nil(t, got.Transcript)
	assert.Nil(t, got.Summary)
	assert.Nil(t, got.NotificationError)
	assert.False(t, got.NotificationSent)
}

func TestStore_CreateJob_DuplicateJobID(t *testing.T) {
	s := newTestStore(t)
	job := createJob(t, s, 1)

	dup := domain.NewPendingSummary(domain.JobSpec{JobID: job.JobID, ChannelID: 1})
	assert.Error(t, s.CreateJob(context.Background(), dup))
}

func TestStore_GetJob_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetJob(context.Background(), "standup_missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_UpdateJob_HappyPath(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	job := createJob(t, s, 7)

	require.NoError(t, s.UpdateJob(ctx, job.JobID, domain.ProcessingUpdate()))
	got, err := s.GetJob(ctx, job.JobID)
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusProcessing, got.Status)

	notifyErr := "channel_not_found"
	require.NoError(t, s.UpdateJob(ctx, job.JobID, domain.CompletedUpdate("hello team", "- shipped", false, &notifyErr)))

	got, err = s.GetJob(ctx, job.JobID)
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusCompleted, got.Status)
	require.NotNil(t, got.Transcript)
	require.NotNil(t, got.Summary)
	assert.Equal(t, "hello team", *got.Transcript)
	assert.Equal(t, "- shipped", *got.Summary)
	require.NotNil(t, got.NotificationError)
	assert.Equal(t, notifyErr, *got.NotificationError)
	assert.Nil(t, got.Error)

	again, err := s.GetJob(ctx, job.JobID)
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestStore_UpdateJob_RejectsInvalidTransitions(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	t.Run("pending to completed", func(t *testing.T) {
		job := createJob(t, s, 1)
		err := s.UpdateJob(ctx, job.JobID, domain.CompletedUpdate("t", "s", false, nil))
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)

		got, err := s.GetJob(ctx, job.JobID)
		require.NoError(t, err)
		assert.Equal(t, domain.JobStatusPending, got.Status)
		assert.Nil(t, got.Transcript)
	})

	t.Run("leaving a terminal state", func(t *testing.T) {
		job := createJob(t, s, 1)
		require.NoError(t, s.UpdateJob(ctx, job.JobID, domain.FailedUpdate("boom")))

		assert.ErrorIs(t, s.UpdateJob(ctx, job.JobID, domain.ProcessingUpdate()), domain.ErrInvalidTransition)
		assert.ErrorIs(t, s.UpdateJob(ctx, job.JobID, domain.FailedUpdate("again")), domain.ErrInvalidTransition)

		got, err := s.GetJob(ctx, job.JobID)
		require.NoError(t, err)
		require.NotNil(t, got.Error)
		assert.Equal(t, "boom", *got.Error)
	})

	t.Run("processing twice", func(t *testing.T) {
		job := createJob(t, s, 1)
		require.NoError(t, s.UpdateJob(ctx, job.JobID, domain.ProcessingUpdate()))
		assert.ErrorIs(t, s.UpdateJob(ctx, job.JobID, domain.ProcessingUpdate()), domain.ErrInvalidTransition)
	})

	t.Run("unknown job", func(t *testing.T) {
		assert.ErrorIs(t, s.UpdateJob(ctx, "standup_nope", domain.ProcessingUpdate()), domain.ErrNotFound)
	})

	t.Run("malformed update", func(t *testing.T) {
		job := createJob(t, s, 1)
		text := "x"
		err := s.UpdateJob(ctx, job.JobID, domain.JobUpdate{Status: domain.JobStatusProcessing, Transcript: &text})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestStore_UpdateJob_ConcurrentTerminalWritesHaveOneWinner(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	job := createJob(t, s, 1)
	require.NoError(t, s.UpdateJob(ctx, job.JobID, domain.ProcessingUpdate()))

	var wins atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			u := domain.FailedUpdate("worker failed")
			if i%2 == 0 {
				u = domain.CompletedUpdate("t", "s", false, nil)
			}
			err := s.UpdateJob(ctx, job.JobID, u)
			if err == nil {
				wins.Add(1)
				return
			}
			assert.True(t, errors.Is(err, domain.ErrInvalidTransition), "got %v", err)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
}

func TestStore_ListUnfinishedJobs(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	pending := createJob(t, s, 1)
	processing := createJob(t, s, 1)
	done := createJob(t, s, 1)
	require.NoError(t, s.UpdateJob(ctx, processing.JobID, domain.ProcessingUpdate()))
	require.NoError(t, s.UpdateJob(ctx, done.JobID, domain.FailedUpdate("x")))

	jobs, err := s.ListUnfinishedJobs(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, pending.JobID, jobs[0].JobID)
	assert.Equal(t, processing.JobID, jobs[1].JobID)
}

func TestStore_ProjectsAndChannels(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	p := &domain.Project{Name: "Platform", Description: "infra"}
	require.NoError(t, s.CreateProject(ctx, p))
	assert.NotZero(t, p.ID)
	assert.Empty(t, p.Channels)

	c := &domain.Channel{ProjectID: p.ID, Label: "backend", DestinationID: "C0123"}
	require.NoError(t, s.CreateChannel(ctx, c))
	assert.NotZero(t, c.ID)

	got, err := s.GetProject(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, got.Channels, 1)
	assert.Equal(t, "C0123", got.Channels[0].DestinationID)

	projects, err := s.ListProjects(ctx, domain.NewPage(0, 10))
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Len(t, projects[0].Channels, 1)

	channels, err := s.ListChannels(ctx, domain.NewPage(0, 10))
	require.NoError(t, err)
	assert.Len(t, channels, 1)

	deleted, err := s.DeleteProject(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Platform", deleted.Name)

	_, err = s.GetChannel(ctx, c.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "channels cascade with their project")

	_, err = s.DeleteProject(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_CreateChannel_UnknownProject(t *testing.T) {
	s := newTestStore(t)

	err := s.CreateChannel(context.Background(), &domain.Channel{ProjectID: 42, Label: "x", DestinationID: "C1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStore_DeleteChannel(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	p := &domain.Project{Name: "P"}
	require.NoError(t, s.CreateProject(ctx, p))
	c := &domain.Channel{ProjectID: p.ID, Label: "x", DestinationID: "C1"}
	require.NoError(t, s.CreateChannel(ctx, c))

	require.NoError(t, s.DeleteChannel(ctx, c.ID))
	assert.ErrorIs(t, s.DeleteChannel(ctx, c.ID), domain.ErrNotFound)
}

func TestStore_Summaries(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a := createJob(t, s, 3)
	createJob(t, s, 4)
	b := createJob(t, s, 3)

	byChannel, err := s.ListSummariesByChannel(ctx, 3)
	require.NoError(t, err)
	require.Len(t, byChannel, 2)
	assert.ElementsMatch(t, []string{a.JobID, b.JobID}, []string{byChannel[0].JobID, byChannel[1].JobID})

	all, err := s.ListSummaries(ctx, domain.NewPage(1, 1))
	require.NoError(t, err)
	require.Len(t, all, 1)

	got, err := s.GetSummary(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.JobID, got.JobID)

	_, err = s.GetSummary(ctx, 9999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
