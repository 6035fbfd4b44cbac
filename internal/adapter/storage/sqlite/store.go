package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/bnema/standup/internal/adapter/storage/sqlite/sqlitedb"
	"github.com/bnema/standup/internal/domain"
	"github.com/bnema/standup/internal/port"
	"github.com/pressly/goose/v3"
	"modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrations embed.FS

type Store struct {
	db      *sql.DB
	queries *sqlitedb.Queries
}

var hookOnce sync.Once

func registerHook() {
	hookOnce.Do(func() {
		sqlite.RegisterConnectionHook(func(conn sqlite.ExecQuerierContext, dsn string) error {
			pragmas := []string{
				"PRAGMA journal_mode = WAL",
				"PRAGMA busy_timeout = 5000",
				"PRAGMA synchronous = NORMAL",
				"PRAGMA foreign_keys = ON",
				"PRAGMA cache_size = -8000", // 8MB
			}
			for _, p := range pragmas {
				if _, err := conn.ExecContext(context.Background(), p, nil); err != nil {
					return fmt.Errorf("execute %s: %w", p, err)
				}
			}
			return nil
		})
	})
}

func NewStore(dataDir string) (*Store, error) {
	registerHook()

	dbPath := filepath.Join(dataDir, "standup.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Single connection for SQLite (WAL allows concurrent reads but only one writer)
	db.SetMaxOpenConns(1)

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{
		db:      db,
		queries: sqlitedb.New(db),
	}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Jobs

func (s *Store) CreateJob(ctx context.Context, sum *domain.Summary) error {
	row, err := s.queries.InsertSummary(ctx, sqlitedb.InsertSummaryParams{
		JobID:             sum.JobID,
		ChannelID:         sum.ChannelID,
		OriginalFilename:  sum.OriginalFilename,
		AudioFilePath:     sum.AudioFilePath,
		Status:            string(sum.Status),
		Transcript:        nullString(sum.Transcript),
		Summary:           nullString(sum.Summary),
		NotificationSent:  sum.NotificationSent,
		NotificationError: nullString(sum.NotificationError),
		Error:             nullString(sum.Error),
	})
	if err != nil {
		return fmt.Errorf("insert summary: %w", err)
	}
	*sum = *summaryFromRow(row)
	return nil
}

func (s *Store) GetJob(ctx context.Context, jobID string) (*domain.Summary, error) {
	row, err := s.queries.GetSummaryByJobID(ctx, jobID)
	if err != nil {
		return nil, notFound(err)
	}
	return summaryFromRow(row), nil
}

// UpdateJob applies u only if the stored status is one of u.Status's
// predecessors. The check and the write are the same statement.
func (s *Store) UpdateJob(ctx context.Context, jobID string, u domain.JobUpdate) error {
	if err := u.Validate(); err != nil {
		return err
	}
	from, alt := transitionSources(u.Status)

	n, err := s.queries.TransitionSummary(ctx, sqlitedb.TransitionSummaryParams{
		Status:            string(u.Status),
		Transcript:        nullString(u.Transcript),
		Summary:           nullString(u.Summary),
		NotificationSent:  u.NotificationSent,
		NotificationError: nullString(u.NotificationError),
		Error:             nullString(u.Error),
		JobID:             jobID,
		FromStatus:        string(from),
		AltFromStatus:     string(alt),
	})
	if err != nil {
		return fmt.Errorf("update summary: %w", err)
	}
	if n > 0 {
		return nil
	}

	current, err := s.GetJob(ctx, jobID)
	if err != nil {
		return err
	}
	return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, current.Status, u.Status)
}

func (s *Store) ListUnfinishedJobs(ctx context.Context) ([]domain.Summary, error) {
	rows, err := s.queries.ListUnfinishedSummaries(ctx)
	if err != nil {
		return nil, err
	}
	return summariesFromRows(rows), nil
}

// Catalog

func (s *Store) CreateProject(ctx context.Context, p *domain.Project) error {
	row, err := s.queries.InsertProject(ctx, sqlitedb.InsertProjectParams{
		Name:        p.Name,
		Description: p.Description,
	})
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	*p = *projectFromRow(row)
	p.Channels = []domain.Channel{}
	return nil
}

func (s *Store) GetProject(ctx context.Context, id int64) (*domain.Project, error) {
	row, err := s.queries.GetProject(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	p := projectFromRow(row)
	if p.Channels, err = s.ListChannelsByProject(ctx, id); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Store) ListProjects(ctx context.Context, page domain.Page) ([]domain.Project, error) {
	rows, err := s.queries.ListProjects(ctx, sqlitedb.ListProjectsParams{
		Limit:  int64(page.Limit),
		Offset: int64(page.Skip),
	})
	if err != nil {
		return nil, err
	}
	projects := make([]domain.Project, 0, len(rows))
	for _, row := range rows {
		p := projectFromRow(row)
		if p.Channels, err = s.ListChannelsByProject(ctx, p.ID); err != nil {
			return nil, err
		}
		projects = append(projects, *p)
	}
	return projects, nil
}

// DeleteProject removes the project and, through the foreign key, its
// channels. The returned value is the project as it was before deletion.
func (s *Store) DeleteProject(ctx context.Context, id int64) (*domain.Project, error) {
	p, err := s.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}
	n, err := s.queries.DeleteProject(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete project: %w", err)
	}
	if n == 0 {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (s *Store) CreateChannel(ctx context.Context, c *domain.Channel) error {
	if _, err := s.queries.GetProject(ctx, c.ProjectID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: project %d does not exist", domain.ErrInvalidInput, c.ProjectID)
		}
		return err
	}
	row, err := s.queries.InsertChannel(ctx, sqlitedb.InsertChannelParams{
		ProjectID: c.ProjectID,
		Label:     c.Label,
		ChannelID: c.DestinationID,
	})
	if err != nil {
		return fmt.Errorf("insert channel: %w", err)
	}
	*c = *channelFromRow(row)
	return nil
}

func (s *Store) GetChannel(ctx context.Context, id int64) (*domain.Channel, error) {
	row, err := s.queries.GetChannel(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return channelFromRow(row), nil
}

func (s *Store) ListChannels(ctx context.Context, page domain.Page) ([]domain.Channel, error) {
	rows, err := s.queries.ListChannels(ctx, sqlitedb.ListChannelsParams{
		Limit:  int64(page.Limit),
		Offset: int64(page.Skip),
	})
	if err != nil {
		return nil, err
	}
	return channelsFromRows(rows), nil
}

func (s *Store) ListChannelsByProject(ctx context.Context, projectID int64) ([]domain.Channel, error) {
	rows, err := s.queries.ListChannelsByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return channelsFromRows(rows), nil
}

func (s *Store) DeleteChannel(ctx context.Context, id int64) error {
	n, err := s.queries.DeleteChannel(ctx, id)
	if err != nil {
		return fmt.Errorf("delete channel: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *Store) GetSummary(ctx context.Context, id int64) (*domain.Summary, error) {
	row, err := s.queries.GetSummary(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return summaryFromRow(row), nil
}

func (s *Store) ListSummaries(ctx context.Context, page domain.Page) ([]domain.Summary, error) {
	rows, err := s.queries.ListSummaries(ctx, sqlitedb.ListSummariesParams{
		Limit:  int64(page.Limit),
		Offset: int64(page.Skip),
	})
	if err != nil {
		return nil, err
	}
	return summariesFromRows(rows), nil
}

func (s *Store) ListSummariesByChannel(ctx context.Context, channelID int64) ([]domain.Summary, error) {
	rows, err := s.queries.ListSummariesByChannel(ctx, channelID)
	if err != nil {
		return nil, err
	}
	return summariesFromRows(rows), nil
}

// transitionSources returns the two values bound to the status guard.
// A status with a single predecessor repeats it.
func transitionSources(to domain.JobStatus) (domain.JobStatus, domain.JobStatus) {
	from := to.Predecessors()
	switch len(from) {
	case 0:
		return "", ""
	case 1:
		return from[0], from[0]
	default:
		return from[0], from[1]
	}
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func summaryFromRow(row sqlitedb.Summary) *domain.Summary {
	return &domain.Summary{
		ID:                row.ID,
		JobID:             row.JobID,
		ChannelID:         row.ChannelID,
		OriginalFilename:  row.OriginalFilename,
		AudioFilePath:     row.AudioFilePath,
		Status:            domain.JobStatus(row.Status),
		Transcript:        stringPtr(row.Transcript),
		Summary:           stringPtr(row.Summary),
		NotificationSent:  row.NotificationSent,
		NotificationError: stringPtr(row.NotificationError),
		Error:             stringPtr(row.Error),
		CreatedAt:         row.CreatedAt,
	}
}

func summariesFromRows(rows []sqlitedb.Summary) []domain.Summary {
	out := make([]domain.Summary, 0, len(rows))
	for _, row := range rows {
		out = append(out, *summaryFromRow(row))
	}
	return out
}

func projectFromRow(row sqlitedb.Project) *domain.Project {
	return &domain.Project{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		CreatedAt:   row.CreatedAt,
	}
}

func channelFromRow(row sqlitedb.Channel) *domain.Channel {
	return &domain.Channel{
		ID:            row.ID,
		ProjectID:     row.ProjectID,
		Label:         row.Label,
		DestinationID: row.ChannelID,
		CreatedAt:     row.CreatedAt,
	}
}

func channelsFromRows(rows []sqlitedb.Channel) []domain.Channel {
	out := make([]domain.Channel, 0, len(rows))
	for _, row := range rows {
		out = append(out, *channelFromRow(row))
	}
	return out
}

var _ port.Store = (*Store)(nil)
