package postgres

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/standup/internal/domain"
	"github.com/bnema/standup/internal/port"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

type Store struct {
	pool *pgxpool.Pool
}

func NewStore(ctx context.Context, dsn string) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("open pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := migrate(pool); err != nil {
		pool.Close()
		return nil, err
	}
	return &Store{pool: pool}, nil
}

func migrate(pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

const summaryColumns = `id, job_id, channel_id, original_filename, audio_file_path, status,
transcript, summary, notification_sent, notification_error, error, created_at`

func scanSummary(row pgx.Row) (*domain.Summary, error) {
	var (
		sum    domain.Summary
		status string
	)
	if err := row.Scan(
		&sum.ID,
		&sum.JobID,
		&sum.ChannelID,
		&sum.OriginalFilename,
		&sum.AudioFilePath,
		&status,
		&sum.Transcript, // NULL => nil
		&sum.Summary,
		&sum.NotificationSent,
		&sum.NotificationError,
		&sum.Error,
		&sum.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	sum.Status = domain.JobStatus(status)
	return &sum, nil
}

func collectSummaries(rows pgx.Rows) ([]domain.Summary, error) {
	defer rows.Close()
	out := []domain.Summary{}
	for rows.Next() {
		sum, err := scanSummary(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *sum)
	}
	return out, rows.Err()
}

func (s *Store) CreateJob(ctx context.Context, sum *domain.Summary) error {
	q := `
INSERT INTO summaries (job_id, channel_id, original_filename, audio_file_path, status,
    transcript, summary, notification_sent, notification_error, error)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + summaryColumns

	created, err := scanSummary(s.pool.QueryRow(ctx, q,
		sum.JobID, sum.ChannelID, sum.OriginalFilename, sum.AudioFilePath, string(sum.Status),
		sum.Transcript, sum.Summary, sum.NotificationSent, sum.NotificationError, sum.Error,
	))
	if err != nil {
		return fmt.Errorf("insert summary: %w", err)
	}
	*sum = *created
	return nil
}

func (s *Store) GetJob(ctx context.Context, jobID string) (*domain.Summary, error) {
	q := `SELECT ` + summaryColumns + ` FROM summaries WHERE job_id = $1`
	return scanSummary(s.pool.QueryRow(ctx, q, jobID))
}

func (s *Store) UpdateJob(ctx context.Context, jobID string, u domain.JobUpdate) error {
	if err := u.Validate(); err != nil {
		return err
	}
	from := make([]string, 0, 2)
	for _, st := range u.Status.Predecessors() {
		from = append(from, string(st))
	}

	const q = `
UPDATE summaries
SET status = $2, transcript = $3, summary = $4,
    notification_sent = $5, notification_error = $6, error = $7
WHERE job_id = $1 AND status = ANY($8);`

	tag, err := s.pool.Exec(ctx, q, jobID, string(u.Status), u.Transcript, u.Summary,
		u.NotificationSent, u.NotificationError, u.Error, from)
	if err != nil {
		return fmt.Errorf("update summary: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	current, err := s.GetJob(ctx, jobID)
	if err != nil {
		return err
	}
	return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, current.Status, u.Status)
}

func (s *Store) ListUnfinishedJobs(ctx context.Context) ([]domain.Summary, error) {
	q := `SELECT ` + summaryColumns + ` FROM summaries
WHERE status IN ('pending', 'processing') ORDER BY id`
	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	return collectSummaries(rows)
}

func (s *Store) CreateProject(ctx context.Context, p *domain.Project) error {
	const q = `
INSERT INTO projects (name, description) VALUES ($1, $2)
RETURNING id, created_at;`
	if err := s.pool.QueryRow(ctx, q, p.Name, p.Description).Scan(&p.ID, &p.CreatedAt); err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	p.Channels = []domain.Channel{}
	return nil
}

func (s *Store) GetProject(ctx context.Context, id int64) (*domain.Project, error) {
	const q = `SELECT id, name, description, created_at FROM projects WHERE id = $1;`
	var p domain.Project
	if err := s.pool.QueryRow(ctx, q, id).Scan(&p.ID, &p.Name, &p.Description, &p.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	var err error
	if p.Channels, err = s.ListChannelsByProject(ctx, id); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) ListProjects(ctx context.Context, page domain.Page) ([]domain.Project, error) {
	const q = `SELECT id, name, description, created_at FROM projects ORDER BY id LIMIT $1 OFFSET $2;`
	rows, err := s.pool.Query(ctx, q, page.Limit, page.Skip)
	if err != nil {
		return nil, err
	}
	projects, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Project, error) {
		var p domain.Project
		err := row.Scan(&p.ID, &p.Name, &p.Description, &p.CreatedAt)
		return p, err
	})
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if projects[i].Channels, err = s.ListChannelsByProject(ctx, projects[i].ID); err != nil {
			return nil, err
		}
	}
	return projects, nil
}

func (s *Store) DeleteProject(ctx context.Context, id int64) (*domain.Project, error) {
	p, err := s.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}
	tag, err := s.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1;`, id)
	if err != nil {
		return nil, fmt.Errorf("delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

const channelColumns = `id, project_id, label, channel_id, created_at`

func scanChannel(row pgx.Row) (domain.Channel, error) {
	var c domain.Channel
	err := row.Scan(&c.ID, &c.ProjectID, &c.Label, &c.DestinationID, &c.CreatedAt)
	return c, err
}

func (s *Store) CreateChannel(ctx context.Context, c *domain.Channel) error {
	var exists bool
	if err := s.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM projects WHERE id = $1);`, c.ProjectID).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: project %d does not exist", domain.ErrInvalidInput, c.ProjectID)
	}

	q := `INSERT INTO channels (project_id, label, channel_id) VALUES ($1, $2, $3)
RETURNING ` + channelColumns
	created, err := scanChannel(s.pool.QueryRow(ctx, q, c.ProjectID, c.Label, c.DestinationID))
	if err != nil {
		return fmt.Errorf("insert channel: %w", err)
	}
	*c = created
	return nil
}

func (s *Store) GetChannel(ctx context.Context, id int64) (*domain.Channel, error) {
	c, err := scanChannel(s.pool.QueryRow(ctx, `SELECT `+channelColumns+` FROM channels WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (s *Store) ListChannels(ctx context.Context, page domain.Page) ([]domain.Channel, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+channelColumns+` FROM channels ORDER BY id LIMIT $1 OFFSET $2`, page.Limit, page.Skip)
	if err != nil {
		return nil, err
	}
	return collectChannels(rows)
}

func (s *Store) ListChannelsByProject(ctx context.Context, projectID int64) ([]domain.Channel, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+channelColumns+` FROM channels
WHERE project_id = $1 ORDER BY created_at DESC, id DESC`, projectID)
	if err != nil {
		return nil, err
	}
	return collectChannels(rows)
}

func collectChannels(rows pgx.Rows) ([]domain.Channel, error) {
	channels, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Channel, error) {
		return scanChannel(row)
	})
	if err != nil {
		return nil, err
	}
	if channels == nil {
		channels = []domain.Channel{}
	}
	return channels, nil
}

func (s *Store) DeleteChannel(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM channels WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("delete channel: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *Store) GetSummary(ctx context.Context, id int64) (*domain.Summary, error) {
	return scanSummary(s.pool.QueryRow(ctx, `SELECT `+summaryColumns+` FROM summaries WHERE id = $1`, id))
}

func (s *Store) ListSummaries(ctx context.Context, page domain.Page) ([]domain.Summary, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+summaryColumns+` FROM summaries ORDER BY id LIMIT $1 OFFSET $2`, page.Limit, page.Skip)
	if err != nil {
		return nil, err
	}
	return collectSummaries(rows)
}

func (s *Store) ListSummariesByChannel(ctx context.Context, channelID int64) ([]domain.Summary, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+summaryColumns+` FROM summaries
WHERE channel_id = $1 ORDER BY created_at DESC, id DESC`, channelID)
	if err != nil {
		return nil, err
	}
	return collectSummaries(rows)
}

var _ port.Store = (*Store)(nil)
