package port

import (
	"context"

	"github.com/bnema/standup/internal/domain"
)

// Dispatcher schedules a job to run outside the submitting request.
type Dispatcher interface {
	Dispatch(ctx context.Context, spec domain.JobSpec) error
}

// JobQueue is a durable queue of job specs with at-least-once delivery.
type JobQueue interface {
	Enqueue(ctx context.Context, spec domain.JobSpec) error
	Dequeue(ctx context.Context) (*domain.JobSpec, string, error)
	Ack(ctx context.Context, receipt string) error
	RequeueStale(ctx context.Context) (int, error)
}
