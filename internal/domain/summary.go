package domain

import (
	"fmt"
	"time"
)

// Summary is the job record: one row per submitted recording.
type Summary struct {
	ID                int64     `json:"id"`
	JobID             string    `json:"job_id"`
	ChannelID         int64     `json:"channel_id"`
	OriginalFilename  string    `json:"original_filename"`
	AudioFilePath     string    `json:"audio_file_path"`
	Status            JobStatus `json:"status"`
	Transcript        *string   `json:"transcript"`
	Summary           *string   `json:"summary"`
	NotificationSent  bool      `json:"notification_sent"`
	NotificationError *string   `json:"notification_error"`
	Error             *string   `json:"error"`
	CreatedAt         time.Time `json:"created_at"`
}

func NewPendingSummary(spec JobSpec) *Summary {
	return &Summary{
		JobID:            spec.JobID,
		ChannelID:        spec.ChannelID,
		OriginalFilename: spec.OriginalFilename,
		AudioFilePath:    spec.AudioFilePath,
		Status:           JobStatusPending,
	}
}

// JobUpdate is a whole-field replacement of the mutable part of a job record.
// Stores apply it in a single statement guarded by the allowed source states.
type JobUpdate struct {
	Status            JobStatus
	Transcript        *string
	Summary           *string
	NotificationSent  bool
	NotificationError *string
	Error             *string
}

func ProcessingUpdate() JobUpdate {
	return JobUpdate{Status: JobStatusProcessing}
}

func CompletedUpdate(transcript, summary string, notificationSent bool, notificationErr *string) JobUpdate {
	return JobUpdate{
		Status:            JobStatusCompleted,
		Transcript:        &transcript,
		Summary:           &summary,
		NotificationSent:  notificationSent,
		NotificationError: notificationErr,
	}
}

func FailedUpdate(diagnostic string) JobUpdate {
	return JobUpdate{
		Status: JobStatusFailed,
		Error:  &diagnostic,
	}
}

func (u JobUpdate) Validate() error {
	if !u.Status.Valid() || u.Status == JobStatusPending {
		return fmt.Errorf("%w: cannot write status %q", ErrInvalidTransition, u.Status)
	}
	if u.Status == JobStatusCompleted {
		if u.Transcript == nil || u.Summary == nil {
			return fmt.Errorf("%w: completed update needs transcript and summary", ErrInvalidInput)
		}
	} else if u.Transcript != nil || u.Summary != nil {
		return fmt.Errorf("%w: transcript and summary are only written on completion", ErrInvalidInput)
	}
	if u.Error != nil && u.Status != JobStatusFailed {
		return fmt.Errorf("%w: error is only written on failure", ErrInvalidInput)
	}
	if (u.NotificationSent || u.NotificationError != nil) && u.Status != JobStatusCompleted {
		return fmt.Errorf("%w: notification fields are only written on completion", ErrInvalidInput)
	}
	return nil
}
