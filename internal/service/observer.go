package service

import (
	"context"
	"time"

	"github.com/bnema/standup/internal/domain"
	"github.com/bnema/standup/internal/port"
)

// JobView is the status payload shared by the poll endpoint and the event
// stream.
type JobView struct {
	JobID             string           `json:"job_id"`
	Status            domain.JobStatus `json:"status"`
	Message           string           `json:"message"`
	SummaryID         *int64           `json:"summary_id,omitempty"`
	Transcript        *string          `json:"transcript,omitempty"`
	Summary           *string          `json:"summary,omitempty"`
	NotificationSent  *bool            `json:"notification_sent,omitempty"`
	NotificationError *string          `json:"notification_error,omitempty"`
	Error             *string          `json:"error,omitempty"`
}

func (v JobView) Terminal() bool {
	return v.Status.IsTerminal()
}

func NewJobView(s *domain.Summary) JobView {
	v := JobView{JobID: s.JobID, Status: s.Status}

	switch s.Status {
	case domain.JobStatusCompleted:
		id, sent := s.ID, s.NotificationSent
		v.Message = "Processing complete"
		v.SummaryID = &id
		v.Transcript = s.Transcript
		v.Summary = s.Summary
		v.NotificationSent = &sent
		v.NotificationError = s.NotificationError
	case domain.JobStatusFailed:
		v.Message = "Processing failed"
		v.Error = s.Error
	default:
		v.Message = "Current status: " + string(s.Status)
	}
	return v
}

// StatusObserver reads job records on behalf of clients. It never writes.
type StatusObserver struct {
	jobs     port.JobStore
	events   EventSubscriber
	interval time.Duration
}

// NewStatusObserver polls every interval. events may be nil, in which case
// streams only wake on the ticker.
func NewStatusObserver(jobs port.JobStore, events EventSubscriber, interval time.Duration) *StatusObserver {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	return &StatusObserver{jobs: jobs, events: events, interval: interval}
}

func (o *StatusObserver) Get(ctx context.Context, jobID string) (JobView, error) {
	s, err := o.jobs.GetJob(ctx, jobID)
	if err != nil {
		return JobView{}, err
	}
	return NewJobView(s), nil
}

// Stream emits the current view immediately and then after every tick or
// change notification, until a terminal view has been emitted. It returns
// nil once the terminal view is out, or when ctx is cancelled. An error
// from emit (usually a gone client) ends the stream with that error.
func (o *StatusObserver) Stream(ctx context.Context, jobID string, emit func(JobView) error) error {
	var wake <-chan Event
	if o.events != nil {
		ch := o.events.Subscribe(jobID)
		defer o.events.Unsubscribe(jobID, ch)
		wake = ch
	}

	ticker := time.NewTicker(o.interval)
	defer ticker.Stop()

	for ctx.Err() == nil {
		view, err := o.Get(ctx, jobID)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		if err := emit(view); err != nil {
			return err
		}
		if view.Terminal() {
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		case <-wake:
		}
	}
	return nil
}
