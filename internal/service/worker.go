package service

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"github.com/bnema/standup/internal/domain"
	"github.com/bnema/standup/internal/infrastructure/logger"
	"github.com/bnema/standup/internal/port"
)

// WorkerPool claims jobs from a shared queue and runs them. A claim is only
// acknowledged once the job function returned, so a crashed process leaves
// its jobs for the reaper to hand out again.
type WorkerPool struct {
	queue        port.JobQueue
	run          JobFunc
	workers      int
	reapInterval time.Duration
	retryDelay   time.Duration
	idleDelay    time.Duration
	wg           sync.WaitGroup
}

func NewWorkerPool(queue port.JobQueue, run JobFunc, workers int, reapInterval time.Duration) *WorkerPool {
	if workers < 1 {
		workers = 1
	}
	return &WorkerPool{
		queue:        queue,
		run:          run,
		workers:      workers,
		reapInterval: reapInterval,
		retryDelay:   2 * time.Second,
		idleDelay:    500 * time.Millisecond,
	}
}

func (wp *WorkerPool) Start(ctx context.Context) {
	wp.reap(ctx)

	for i := 0; i < wp.workers; i++ {
		i := i
		wp.wg.Add(1)
		go func() {
			defer wp.wg.Done()
			wp.runWorker(ctx, i)
		}()
	}
	if wp.reapInterval > 0 {
		wp.wg.Add(1)
		go func() {
			defer wp.wg.Done()
			wp.runReaper(ctx)
		}()
	}
	logger.Info.Printf("started %d workers", wp.workers)
}

// Wait blocks until every worker has returned. Workers return once the
// context given to Start is cancelled and their current job is done.
func (wp *WorkerPool) Wait() {
	wp.wg.Wait()
}

func (wp *WorkerPool) runWorker(ctx context.Context, id int) {
	for {
		if ctx.Err() != nil {
			logger.Info.Printf("worker %d shutting down", id)
			return
		}

		spec, receipt, err := wp.queue.Dequeue(ctx)
		if err != nil {
			if ctx.Err() != nil {
				continue
			}
			logger.Error.Printf("worker %d: failed to claim job: %v", id, err)
			sleep(ctx, wp.retryDelay)
			continue
		}
		if spec == nil {
			sleep(ctx, wp.idleDelay)
			continue
		}

		logger.Info.Printf("worker %d: processing job=%s (channel=%d)", id, spec.JobID, spec.ChannelID)
		wp.process(ctx, id, *spec, receipt)
	}
}

// process runs the job to the end even when the pool is stopping. Only a
// process that dies mid-job leaves a claim behind.
func (wp *WorkerPool) process(ctx context.Context, id int, spec domain.JobSpec, receipt string) {
	jobCtx := context.WithoutCancel(ctx)
	if err := wp.exec(jobCtx, spec); err != nil {
		logger.Warn.Printf("worker %d: job=%s ended with error: %v", id, spec.JobID, err)
	}

	ackCtx, cancel := context.WithTimeout(jobCtx, writeTimeout)
	defer cancel()
	if err := wp.queue.Ack(ackCtx, receipt); err != nil {
		logger.Error.Printf("worker %d: ack job=%s: %v", id, spec.JobID, err)
	}
}

func (wp *WorkerPool) exec(ctx context.Context, spec domain.JobSpec) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Error.Printf("job=%s panic in worker: %v\n%s", spec.JobID, rec, debug.Stack())
			err = fmt.Errorf("job %s panicked: %v", spec.JobID, rec)
		}
	}()
	return wp.run(ctx, spec)
}

func (wp *WorkerPool) runReaper(ctx context.Context) {
	ticker := time.NewTicker(wp.reapInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			wp.reap(ctx)
		}
	}
}

func (wp *WorkerPool) reap(ctx context.Context) {
	n, err := wp.queue.RequeueStale(ctx)
	if err != nil {
		if ctx.Err() == nil {
			logger.Error.Printf("failed to requeue stale jobs: %v", err)
		}
		return
	}
	if n > 0 {
		logger.Warn.Printf("requeued %d stale jobs", n)
	}
}

func sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// QueueDispatcher schedules jobs by pushing them onto a JobQueue.
type QueueDispatcher struct {
	queue port.JobQueue
}

func NewQueueDispatcher(queue port.JobQueue) *QueueDispatcher {
	return &QueueDispatcher{queue: queue}
}

func (d *QueueDispatcher) Dispatch(ctx context.Context, spec domain.JobSpec) error {
	return d.queue.Enqueue(ctx, spec)
}

var _ port.Dispatcher = (*QueueDispatcher)(nil)
