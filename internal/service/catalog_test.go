package service

import (
	"context"
	"strings"
	"testing"

	"github.com/bnema/standup/internal/domain"
	"github.com/bnema/standup/internal/port/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestCatalog(t *testing.T) (*CatalogService, *mocks.CatalogStoreMock, *mocks.JobStoreMock) {
	t.Helper()
	store := mocks.NewCatalogStoreMock(t)
	jobs := mocks.NewJobStoreMock(t)
	return NewCatalogService(store, jobs), store, jobs
}

func TestCatalogService_CreateProject(t *testing.T) {
	svc, store, _ := newTestCatalog(t)

	store.EXPECT().CreateProject(mock.Anything, mock.MatchedBy(func(p *domain.Project) bool {
		return p.Name == "Platform" && p.Description == "infra team"
	})).RunAndReturn(func(_ context.Context, p *domain.Project) error {
		p.ID = 1
		return nil
	}).Once()

	p, err := svc.CreateProject(context.Background(), "  Platform ", " infra team ")
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.ID)

	_, err = svc.CreateProject(context.Background(), "   ", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCatalogService_ProjectChannels(t *testing.T) {
	svc, store, _ := newTestCatalog(t)

	store.EXPECT().GetProject(mock.Anything, int64(1)).Return(&domain.Project{
		ID:       1,
		Channels: []domain.Channel{{ID: 3, ProjectID: 1, Label: "backend"}},
	}, nil).Once()
	store.EXPECT().GetProject(mock.Anything, int64(2)).Return(nil, domain.ErrNotFound).Once()

	channels, err := svc.ProjectChannels(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, channels, 1)
	assert.Equal(t, "backend", channels[0].Label)

	_, err = svc.ProjectChannels(context.Background(), 2)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalogService_CreateChannel(t *testing.T) {
	svc, store, _ := newTestCatalog(t)

	store.EXPECT().CreateChannel(mock.Anything, mock.MatchedBy(func(c *domain.Channel) bool {
		return c.ProjectID == 1 && c.Label == "backend" && c.DestinationID == "C0123"
	})).Return(nil).Once()

	c, err := svc.CreateChannel(context.Background(), 1, "backend", " C0123 ")
	require.NoError(t, err)
	assert.Equal(t, "C0123", c.DestinationID)

	_, err = svc.CreateChannel(context.Background(), 1, "backend", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = svc.CreateChannel(context.Background(), 0, "backend", "C1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCatalogService_GetChannelIncludesSummaries(t *testing.T) {
	svc, store, _ := newTestCatalog(t)

	store.EXPECT().GetChannel(mock.Anything, int64(3)).Return(&domain.Channel{ID: 3}, nil).Once()
	store.EXPECT().ListSummariesByChannel(mock.Anything, int64(3)).Return([]domain.Summary{{ID: 9, JobID: "standup_a"}}, nil).Once()

	c, err := svc.GetChannel(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, c.Summaries, 1)
	assert.Equal(t, "standup_a", c.Summaries[0].JobID)
}

func TestCatalogService_CreateSummary(t *testing.T) {
	t.Run("stores a completed record", func(t *testing.T) {
		svc, store, jobs := newTestCatalog(t)

		store.EXPECT().GetChannel(mock.Anything, int64(3)).Return(&domain.Channel{ID: 3}, nil).Once()
		jobs.EXPECT().CreateJob(mock.Anything, mock.MatchedBy(func(s *domain.Summary) bool {
			return strings.HasPrefix(s.JobID, "manual_") &&
				s.Status == domain.JobStatusCompleted &&
				*s.Transcript == "hello" && *s.Summary == "- hi"
		})).Return(nil).Once()

		got, err := svc.CreateSummary(context.Background(), ManualSummary{
			ChannelID:  3,
			Transcript: "hello",
			Summary:    " - hi ",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.JobStatusCompleted, got.Status)
	})

	t.Run("unknown channel", func(t *testing.T) {
		svc, store, _ := newTestCatalog(t)
		store.EXPECT().GetChannel(mock.Anything, int64(99)).Return(nil, domain.ErrNotFound).Once()

		_, err := svc.CreateSummary(context.Background(), ManualSummary{ChannelID: 99, Transcript: "t", Summary: "s"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("missing fields", func(t *testing.T) {
		svc, _, _ := newTestCatalog(t)

		for _, m := range []ManualSummary{
			{ChannelID: 0, Transcript: "t", Summary: "s"},
			{ChannelID: 1, Transcript: " ", Summary: "s"},
			{ChannelID: 1, Transcript: "t", Summary: ""},
		} {
			_, err := svc.CreateSummary(context.Background(), m)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		}
	})
}
