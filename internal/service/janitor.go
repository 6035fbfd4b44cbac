package service

import (
	"context"
	"errors"
	"time"

	"github.com/bnema/standup/internal/domain"
	"github.com/bnema/standup/internal/infrastructure/logger"
	"github.com/bnema/standup/internal/port"
)

const interruptedDiagnostic = "interrupted by server restart"

// Janitor removes working directories that no running job owns anymore.
type Janitor struct {
	jobs   port.JobStore
	ws     *Workspace
	events EventPublisher
	maxAge time.Duration
}

func NewJanitor(jobs port.JobStore, ws *Workspace, events EventPublisher, maxAge time.Duration) *Janitor {
	return &Janitor{jobs: jobs, ws: ws, events: events, maxAge: maxAge}
}

// Sweep removes directories older than maxAge whose job is terminal or
// unknown. Directories of pending or processing jobs are left alone.
func (j *Janitor) Sweep(ctx context.Context) (int, error) {
	ids, err := j.ws.StaleDirs(time.Now().Add(-j.maxAge))
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, id := range ids {
		job, err := j.jobs.GetJob(ctx, id)
		switch {
		case errors.Is(err, domain.ErrNotFound):
		case err != nil:
			logger.Error.Printf("janitor: load job=%s: %v", id, err)
			continue
		case !job.Status.IsTerminal():
			continue
		}

		if err := j.ws.Remove(id); err != nil {
			logger.Error.Printf("janitor: remove job=%s: %v", id, err)
			continue
		}
		removed++
	}
	if removed > 0 {
		logger.Info.Printf("janitor: removed %d stale working directories", removed)
	}
	return removed, nil
}

// FailInterrupted marks every unfinished job as failed. It is meant for
// startup when jobs run in-process: nothing will ever resume them.
func (j *Janitor) FailInterrupted(ctx context.Context) (int, error) {
	jobs, err := j.jobs.ListUnfinishedJobs(ctx)
	if err != nil {
		return 0, err
	}

	failed := 0
	for _, job := range jobs {
		err := j.jobs.UpdateJob(ctx, job.JobID, domain.FailedUpdate(interruptedDiagnostic))
		if err != nil {
			if !errors.Is(err, domain.ErrInvalidTransition) {
				logger.Error.Printf("janitor: fail job=%s: %v", job.JobID, err)
			}
			continue
		}
		if j.events != nil {
			j.events.Publish(job.JobID, Event{JobID: job.JobID, Status: domain.JobStatusFailed})
		}
		if err := j.ws.Remove(job.JobID); err != nil {
			logger.Error.Printf("janitor: remove job=%s: %v", job.JobID, err)
		}
		failed++
	}
	if failed > 0 {
		logger.Warn.Printf("marked %d interrupted jobs as failed", failed)
	}
	return failed, nil
}

// Run sweeps on every tick until ctx is cancelled.
func (j *Janitor) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if _, err := j.Sweep(ctx); err != nil {
				logger.Error.Printf("cleanup failed: %v", err)
			}
		case <-ctx.Done():
			return
		}
	}
}
