package port

import (
	"context"

	"github.com/bnema/standup/internal/domain"
)

// JobStore holds job records. UpdateJob must apply the whole update in one
// statement and reject it with domain.ErrInvalidTransition when the stored
// status is not a predecessor of the new one.
type JobStore interface {
	CreateJob(ctx context.Context, s *domain.Summary) error
	GetJob(ctx context.Context, jobID string) (*domain.Summary, error)
	UpdateJob(ctx context.Context, jobID string, u domain.JobUpdate) error
	// ListUnfinishedJobs returns pending and processing records, oldest first.
	ListUnfinishedJobs(ctx context.Context) ([]domain.Summary, error)
}

type ChannelLookup interface {
	GetChannel(ctx context.Context, id int64) (*domain.Channel, error)
}

type CatalogStore interface {
	ChannelLookup

	CreateProject(ctx context.Context, p *domain.Project) error
	GetProject(ctx context.Context, id int64) (*domain.Project, error)
	ListProjects(ctx context.Context, page domain.Page) ([]domain.Project, error)
	DeleteProject(ctx context.Context, id int64) (*domain.Project, error)

	CreateChannel(ctx context.Context, c *domain.Channel) error
	ListChannels(ctx context.Context, page domain.Page) ([]domain.Channel, error)
	ListChannelsByProject(ctx context.Context, projectID int64) ([]domain.Channel, error)
	DeleteChannel(ctx context.Context, id int64) error

	GetSummary(ctx context.Context, id int64) (*domain.Summary, error)
	ListSummaries(ctx context.Context, page domain.Page) ([]domain.Summary, error)
	ListSummariesByChannel(ctx context.Context, channelID int64) ([]domain.Summary, error)
}

type Store interface {
	JobStore
	CatalogStore
	Close() error
}
