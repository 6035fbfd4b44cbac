package service

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/bnema/standup/internal/domain"
	"github.com/bnema/standup/internal/infrastructure/logger"
	"github.com/bnema/standup/internal/port"
)

// JobFunc runs one job to completion. *Orchestrator.Run satisfies it.
type JobFunc func(ctx context.Context, spec domain.JobSpec) error

// Handle follows one spawned job. Callers that don't care about the
// outcome drop it.
type Handle struct {
	JobID string
	done  chan struct{}
	err   error
}

func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Err returns the job's error. It is only meaningful after Done is closed.
func (h *Handle) Err() error {
	select {
	case <-h.done:
		return h.err
	default:
		return nil
	}
}

func (h *Handle) Wait(ctx context.Context) error {
	select {
	case <-h.done:
		return h.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Runner executes jobs in goroutines of the current process, at most
// limit at a time. Jobs are not tied to the context of the request that
// spawned them.
type Runner struct {
	run    JobFunc
	ctx    context.Context
	cancel context.CancelFunc
	sem    chan struct{}
	wg     sync.WaitGroup
}

func NewRunner(run JobFunc, limit int) *Runner {
	if limit < 1 {
		limit = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Runner{
		run:    run,
		ctx:    ctx,
		cancel: cancel,
		sem:    make(chan struct{}, limit),
	}
}

func (r *Runner) Spawn(spec domain.JobSpec) *Handle {
	h := &Handle{JobID: spec.JobID, done: make(chan struct{})}

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer close(h.done)

		select {
		case r.sem <- struct{}{}:
			defer func() { <-r.sem }()
		case <-r.ctx.Done():
			h.err = r.ctx.Err()
			logger.Warn.Printf("job=%s not started: runner stopped", spec.JobID)
			return
		}

		h.err = r.exec(spec)
	}()
	return h
}

func (r *Runner) exec(spec domain.JobSpec) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Error.Printf("job=%s panic in runner: %v\n%s", spec.JobID, rec, debug.Stack())
			err = fmt.Errorf("job %s panicked: %v", spec.JobID, rec)
		}
	}()
	return r.run(r.ctx, spec)
}

// Shutdown waits for running jobs. When ctx expires first, the jobs are
// cancelled and Shutdown waits for them to record their outcome.
func (r *Runner) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		r.cancel()
		return nil
	case <-ctx.Done():
		logger.Warn.Printf("cancelling in-flight jobs")
		r.cancel()
		<-done
		return ctx.Err()
	}
}

// LocalDispatcher runs submitted jobs on a Runner and discards the handle.
type LocalDispatcher struct {
	runner *Runner
}

func NewLocalDispatcher(runner *Runner) *LocalDispatcher {
	return &LocalDispatcher{runner: runner}
}

// Dispatch ignores ctx: the job must outlive the submitting request.
func (d *LocalDispatcher) Dispatch(_ context.Context, spec domain.JobSpec) error {
	if err := d.runner.ctx.Err(); err != nil {
		return fmt.Errorf("dispatch %s: %w", spec.JobID, err)
	}
	_ = d.runner.Spawn(spec)
	return nil
}

var _ port.Dispatcher = (*LocalDispatcher)(nil)
