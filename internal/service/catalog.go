package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/standup/internal/domain"
	"github.com/bnema/standup/internal/port"
)

// CatalogService serves the projects, channels and summaries listings.
type CatalogService struct {
	store port.CatalogStore
	jobs  port.JobStore
}

func NewCatalogService(store port.CatalogStore, jobs port.JobStore) *CatalogService {
	return &CatalogService{store: store, jobs: jobs}
}

func (s *CatalogService) CreateProject(ctx context.Context, name, description string) (*domain.Project, error) {
	p, err := domain.NewProject(name, description)
	if err != nil {
		return nil, err
	}
	if err := s.store.CreateProject(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *CatalogService) GetProject(ctx context.Context, id int64) (*domain.Project, error) {
	return s.store.GetProject(ctx, id)
}

func (s *CatalogService) ListProjects(ctx context.Context, page domain.Page) ([]domain.Project, error) {
	return s.store.ListProjects(ctx, page)
}

func (s *CatalogService) DeleteProject(ctx context.Context, id int64) (*domain.Project, error) {
	return s.store.DeleteProject(ctx, id)
}

// ProjectChannels fails with domain.ErrNotFound for an unknown project
// rather than returning an empty list.
func (s *CatalogService) ProjectChannels(ctx context.Context, projectID int64) ([]domain.Channel, error) {
	p, err := s.store.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return p.Channels, nil
}

func (s *CatalogService) CreateChannel(ctx context.Context, projectID int64, label, destinationID string) (*domain.Channel, error) {
	c, err := domain.NewChannel(projectID, label, destinationID)
	if err != nil {
		return nil, err
	}
	if err := s.store.CreateChannel(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// GetChannel returns the channel with its summaries, newest first.
func (s *CatalogService) GetChannel(ctx context.Context, id int64) (*domain.Channel, error) {
	c, err := s.store.GetChannel(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.Summaries, err = s.store.ListSummariesByChannel(ctx, id); err != nil {
		return nil, fmt.Errorf("list summaries of channel %d: %w", id, err)
	}
	return c, nil
}

func (s *CatalogService) ListChannels(ctx context.Context, page domain.Page) ([]domain.Channel, error) {
	return s.store.ListChannels(ctx, page)
}

func (s *CatalogService) DeleteChannel(ctx context.Context, id int64) error {
	return s.store.DeleteChannel(ctx, id)
}

// ManualSummary is a summary written directly through the API, without
// going through the processing pipeline.
type ManualSummary struct {
	ChannelID     int64
	AudioFilePath string
	Transcript    string
	Summary       string
}

// CreateSummary stores m as an already completed job record.
func (s *CatalogService) CreateSummary(ctx context.Context, m ManualSummary) (*domain.Summary, error) {
	transcript := strings.TrimSpace(m.Transcript)
	summary := strings.TrimSpace(m.Summary)
	switch {
	case m.ChannelID <= 0:
		return nil, fmt.Errorf("%w: channel_id must be positive", domain.ErrInvalidInput)
	case transcript == "":
		return nil, fmt.Errorf("%w: transcript is required", domain.ErrInvalidInput)
	case summary == "":
		return nil, fmt.Errorf("%w: summary is required", domain.ErrInvalidInput)
	}

	if _, err := s.store.GetChannel(ctx, m.ChannelID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: channel %d does not exist", domain.ErrInvalidInput, m.ChannelID)
		}
		return nil, err
	}

	rec := domain.NewPendingSummary(domain.JobSpec{
		JobID:         domain.NewManualJobID(time.Now()),
		ChannelID:     m.ChannelID,
		AudioFilePath: m.AudioFilePath,
	})
	rec.Status = domain.JobStatusCompleted
	rec.Transcript = &transcript
	rec.Summary = &summary

	if err := s.jobs.CreateJob(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *CatalogService) GetSummary(ctx context.Context, id int64) (*domain.Summary, error) {
	return s.store.GetSummary(ctx, id)
}

func (s *CatalogService) ListSummaries(ctx context.Context, page domain.Page) ([]domain.Summary, error) {
	return s.store.ListSummaries(ctx, page)
}

func (s *CatalogService) ChannelSummaries(ctx context.Context, channelID int64) ([]domain.Summary, error) {
	return s.store.ListSummariesByChannel(ctx, channelID)
}
