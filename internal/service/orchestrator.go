package service

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/bnema/standup/internal/domain"
	"github.com/bnema/standup/internal/infrastructure/logger"
	"github.com/bnema/standup/internal/port"
)

// writeTimeout bounds record writes, which must still happen after the
// run context is cancelled.
const writeTimeout = 10 * time.Second

type OrchestratorDeps struct {
	Jobs        port.JobStore
	Channels    port.ChannelLookup
	Normalizer  port.Normalizer
	Transcriber port.Transcriber
	Summarizer  port.Summarizer
	Notifier    port.Notifier
	Workspace   *Workspace
	Events      EventPublisher
	// Timeout bounds the collaborator calls of one job. Zero means none.
	Timeout time.Duration
}

// Orchestrator drives one job from pending to a terminal state.
type Orchestrator struct {
	deps OrchestratorDeps
}

func NewOrchestrator(deps OrchestratorDeps) *Orchestrator {
	return &Orchestrator{deps: deps}
}

type jobRun struct {
	o        *Orchestrator
	spec     domain.JobSpec
	terminal bool
}

// Run processes spec.JobID. It returns the error that failed the job, if
// any, after the failure has been recorded. Panics are recovered and
// recorded as failures, and so is a status write the store rejects. The
// working directory is removed once the record is terminal; if even the
// failure cannot be written the files are kept so the job can be retried.
func (o *Orchestrator) Run(ctx context.Context, spec domain.JobSpec) (err error) {
	r := &jobRun{o: o, spec: spec}

	defer r.cleanup()
	defer func() {
		if rec := recover(); rec != nil {
			logger.Error.Printf("job=%s panic: %v\n%s", spec.JobID, rec, debug.Stack())
			err = r.fail(ctx, fmt.Errorf("internal error: %v", rec))
		}
	}()

	return r.execute(ctx)
}

func (r *jobRun) execute(ctx context.Context) error {
	d := r.o.deps
	jobID := r.spec.JobID

	job, err := d.Jobs.GetJob(ctx, jobID)
	if err != nil {
		return fmt.Errorf("load job %s: %w", jobID, err)
	}
	if job.Status.IsTerminal() {
		logger.Info.Printf("job=%s already %s, nothing to do", jobID, job.Status)
		r.terminal = true
		return nil
	}

	channel, err := d.Channels.GetChannel(ctx, r.spec.ChannelID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return r.fail(ctx, fmt.Errorf("channel %d: %w", r.spec.ChannelID, domain.ErrChannelNotFound))
		}
		return r.fail(ctx, fmt.Errorf("lookup channel %d: %w", r.spec.ChannelID, err))
	}

	if job.Status == domain.JobStatusPending {
		if err := r.write(ctx, domain.ProcessingUpdate()); err != nil {
			return r.writeFailed(ctx, fmt.Errorf("mark job %s processing: %w", jobID, err))
		}
	} else {
		logger.Warn.Printf("job=%s resuming from %s", jobID, job.Status)
	}

	runCtx := ctx
	if d.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, d.Timeout)
		defer cancel()
	}

	started := time.Now()
	transcript, err := r.transcribe(runCtx)
	if err != nil {
		return r.fail(ctx, fmt.Errorf("%w: %w", domain.ErrTranscription, err))
	}
	logger.Info.Printf("job=%s transcribed %d chars in %s", jobID, len(transcript), time.Since(started).Round(time.Millisecond))

	summary, err := d.Summarizer.Summarize(runCtx, transcript)
	if err != nil {
		return r.fail(ctx, fmt.Errorf("%w: %w", domain.ErrSummarization, err))
	}
	logger.Info.Printf("job=%s summarized into %d chars", jobID, len(summary))

	sent, notifyErr := r.notify(runCtx, summary, channel)

	if err := r.write(ctx, domain.CompletedUpdate(transcript, summary, sent, notifyErr)); err != nil {
		return r.writeFailed(ctx, fmt.Errorf("mark job %s completed: %w", jobID, err))
	}
	r.terminal = true
	logger.Info.Printf("job=%s completed in %s (notification_sent=%t)", jobID, time.Since(started).Round(time.Millisecond), sent)
	return nil
}

func (r *jobRun) transcribe(ctx context.Context) (string, error) {
	d := r.o.deps
	dir, err := d.Workspace.Dir(r.spec.JobID)
	if err != nil {
		return "", err
	}
	normalized, err := d.Normalizer.Normalize(ctx, r.spec.AudioFilePath, dir)
	if err != nil {
		return "", fmt.Errorf("normalize audio: %w", err)
	}
	return d.Transcriber.Transcribe(ctx, normalized)
}

// notify never fails the job. A failed attempt is reported through the
// returned diagnostic.
func (r *jobRun) notify(ctx context.Context, summary string, channel *domain.Channel) (bool, *string) {
	if !r.spec.Notify {
		return false, nil
	}
	if err := r.o.deps.Notifier.Notify(ctx, summary, channel.DestinationID); err != nil {
		msg := fmt.Errorf("%w: %w", domain.ErrNotification, err).Error()
		logger.Warn.Printf("job=%s %s", r.spec.JobID, msg)
		return false, &msg
	}
	return true, nil
}

// fail records cause on the job and returns it.
func (r *jobRun) fail(ctx context.Context, cause error) error {
	logger.Error.Printf("job=%s failed: %v", r.spec.JobID, cause)
	if err := r.write(ctx, domain.FailedUpdate(cause.Error())); err != nil {
		logger.Error.Printf("job=%s could not record failure: %v", r.spec.JobID, err)
		return errors.Join(cause, err)
	}
	r.terminal = true
	return cause
}

// writeFailed handles a rejected status write. A record that moved under
// us is left alone; any other error is recorded as the job's failure.
func (r *jobRun) writeFailed(ctx context.Context, cause error) error {
	if errors.Is(cause, domain.ErrInvalidTransition) || errors.Is(cause, domain.ErrNotFound) {
		logger.Warn.Printf("job=%s %v", r.spec.JobID, cause)
		return cause
	}
	return r.fail(ctx, cause)
}

func (r *jobRun) write(ctx context.Context, u domain.JobUpdate) error {
	wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), writeTimeout)
	defer cancel()

	if err := r.o.deps.Jobs.UpdateJob(wctx, r.spec.JobID, u); err != nil {
		return err
	}
	if r.o.deps.Events != nil {
		r.o.deps.Events.Publish(r.spec.JobID, Event{JobID: r.spec.JobID, Status: u.Status})
	}
	return nil
}

func (r *jobRun) cleanup() {
	if !r.terminal {
		return
	}
	if err := r.o.deps.Workspace.Remove(r.spec.JobID); err != nil {
		logger.Error.Printf("job=%s cleanup failed: %v", r.spec.JobID, err)
	}
}
