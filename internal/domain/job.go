package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
)

// jobTransitions lists the forward edges of the job lifecycle.
// Terminal states have no outgoing edges.
var jobTransitions = map[JobStatus][]JobStatus{
	JobStatusPending:    {JobStatusProcessing, JobStatusFailed},
	JobStatusProcessing: {JobStatusCompleted, JobStatusFailed},
}

func ParseJobStatus(s string) (JobStatus, error) {
	st := JobStatus(strings.TrimSpace(s))
	if !st.Valid() {
		return "", fmt.Errorf("%w: unknown job status %q", ErrInvalidInput, s)
	}
	return st, nil
}

func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusPending, JobStatusProcessing, JobStatusCompleted, JobStatusFailed:
		return true
	}
	return false
}

func (s JobStatus) IsTerminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

func (s JobStatus) CanTransition(to JobStatus) bool {
	for _, next := range jobTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// Predecessors returns every status from which s can be reached in one step.
func (s JobStatus) Predecessors() []JobStatus {
	var from []JobStatus
	for _, candidate := range []JobStatus{JobStatusPending, JobStatusProcessing} {
		if candidate.CanTransition(s) {
			from = append(from, candidate)
		}
	}
	return from
}

// JobSpec is everything the orchestrator needs to run one job.
type JobSpec struct {
	JobID            string `json:"job_id"`
	ChannelID        int64  `json:"channel_id"`
	AudioFilePath    string `json:"audio_file_path"`
	OriginalFilename string `json:"original_filename"`
	Notify           bool   `json:"notify"`
}

var jobIDPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]{0,127}$`)

// NewJobID returns an identifier of the form standup_20060102_150405_1a2b3c4d.
func NewJobID(now time.Time) string {
	return newPrefixedID("standup", now)
}

// NewManualJobID is used for summaries created directly through the API.
func NewManualJobID(now time.Time) string {
	return newPrefixedID("manual", now)
}

func newPrefixedID(prefix string, now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return prefix + "_" + now.UTC().Format("20060102_150405") + "_" + suffix
}

// ValidJobID reports whether id is safe to use as a single path element.
func ValidJobID(id string) bool {
	return jobIDPattern.MatchString(id)
}
