package domain

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobStatus_CanTransition(t *testing.T) {
	tests := []struct {
		from JobStatus
		to   JobStatus
		want bool
	}{
		{JobStatusPending, JobStatusProcessing, true},
		{JobStatusPending, JobStatusFailed, true},
		{JobStatusPending, JobStatusCompleted, false},
		{JobStatusPending, JobStatusPending, false},
		{JobStatusProcessing, JobStatusCompleted, true},
		{JobStatusProcessing, JobStatusFailed, true},
		{JobStatusProcessing, JobStatusPending, false},
		{JobStatusCompleted, JobStatusFailed, false},
		{JobStatusCompleted, JobStatusProcessing, false},
		{JobStatusFailed, JobStatusCompleted, false},
		{JobStatusFailed, JobStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransition(tt.to))
		})
	}
}

func TestJobStatus_Predecessors(t *testing.T) {
	assert.Empty(t, JobStatusPending.Predecessors())
	assert.Equal(t, []JobStatus{JobStatusPending}, JobStatusProcessing.Predecessors())
	assert.Equal(t, []JobStatus{JobStatusProcessing}, JobStatusCompleted.Predecessors())
	assert.Equal(t, []JobStatus{JobStatusPending, JobStatusProcessing}, JobStatusFailed.Predecessors())
}

func TestJobStatus_IsTerminal(t *testing.T) {
	assert.False(t, JobStatusPending.IsTerminal())
	assert.False(t, JobStatusProcessing.IsTerminal())
	assert.True(t, JobStatusCompleted.IsTerminal())
	assert.True(t, JobStatusFailed.IsTerminal())
}

func TestParseJobStatus(t *testing.T) {
	st, err := ParseJobStatus(" completed ")
	require.NoError(t, err)
	assert.Equal(t, JobStatusCompleted, st)

	_, err = ParseJobStatus("done")
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestNewJobID(t *testing.T) {
	now := time.Date(2024, 3, 5, 9, 7, 1, 0, time.UTC)

	id := NewJobID(now)

	assert.True(t, strings.HasPrefix(id, "standup_20240305_090701_"), id)
	assert.Len(t, id, len("standup_20240305_090701_")+8)
	assert.True(t, ValidJobID(id))
	assert.NotEqual(t, id, NewJobID(now), "ids must not repeat")
}

func TestValidJobID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"standup_20240305_090701_1a2b3c4d", true},
		{"manual_20240305_090701_1a2b3c4d", true},
		{"", false},
		{".", false},
		{"..", false},
		{"../etc", false},
		{"a/b", false},
		{"_leading", false},
		{strings.Repeat("a", 129), false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidJobID(tt.id))
		})
	}
}

func TestJobUpdate_Validate(t *testing.T) {
	msg := "boom"
	text := "text"

	tests := []struct {
		name    string
		update  JobUpdate
		wantErr error
	}{
		{"processing", ProcessingUpdate(), nil},
		{"completed", CompletedUpdate("t", "s", true, nil), nil},
		{"completed with notification error", CompletedUpdate("t", "s", false, &msg), nil},
		{"failed", FailedUpdate("channel 9: channel not found"), nil},
		{"back to pending", JobUpdate{Status: JobStatusPending}, ErrInvalidTransition},
		{"unknown status", JobUpdate{Status: "done"}, ErrInvalidTransition},
		{"completed without transcript", JobUpdate{Status: JobStatusCompleted, Summary: &text}, ErrInvalidInput},
		{"failed with summary", JobUpdate{Status: JobStatusFailed, Summary: &text}, ErrInvalidInput},
		{"processing with error", JobUpdate{Status: JobStatusProcessing, Error: &msg}, ErrInvalidInput},
		{"failed with notification", JobUpdate{Status: JobStatusFailed, NotificationSent: true}, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.update.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestNewChannel(t *testing.T) {
	ch, err := NewChannel(3, "  backend ", " C0123 ")
	require.NoError(t, err)
	assert.Equal(t, "backend", ch.Label)
	assert.Equal(t, "C0123", ch.DestinationID)

	_, err = NewChannel(0, "backend", "C0123")
	assert.True(t, errors.Is(err, ErrInvalidInput))
	_, err = NewChannel(3, " ", "C0123")
	assert.True(t, errors.Is(err, ErrInvalidInput))
	_, err = NewChannel(3, "backend", "")
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestNewProject(t *testing.T) {
	p, err := NewProject(" Platform ", " infra team ")
	require.NoError(t, err)
	assert.Equal(t, "Platform", p.Name)
	assert.Equal(t, "infra team", p.Description)

	_, err = NewProject("", "x")
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestNewPage(t *testing.T) {
	assert.Equal(t, Page{Skip: 0, Limit: 100}, NewPage(-4, 0))
	assert.Equal(t, Page{Skip: 10, Limit: 20}, NewPage(10, 20))
	assert.Equal(t, Page{Skip: 0, Limit: 100}, NewPage(0, 1000))
}
