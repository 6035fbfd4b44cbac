package domain

import (
	"fmt"
	"strings"
	"time"
)

type Project struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	Channels    []Channel `json:"channels"`
}

// Channel belongs to a project. DestinationID is the messaging channel
// that receives the summaries.
type Channel struct {
	ID            int64     `json:"id"`
	ProjectID     int64     `json:"project_id"`
	Label         string    `json:"label"`
	DestinationID string    `json:"channel_id"`
	CreatedAt     time.Time `json:"created_at"`
	Summaries     []Summary `json:"summaries,omitempty"`
}

func NewProject(name, description string) (*Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: project name is required", ErrInvalidInput)
	}
	return &Project{
		Name:        name,
		Description: strings.TrimSpace(description),
	}, nil
}

func NewChannel(projectID int64, label, destinationID string) (*Channel, error) {
	label = strings.TrimSpace(label)
	destinationID = strings.TrimSpace(destinationID)
	switch {
	case projectID <= 0:
		return nil, fmt.Errorf("%w: project_id must be positive", ErrInvalidInput)
	case label == "":
		return nil, fmt.Errorf("%w: channel label is required", ErrInvalidInput)
	case destinationID == "":
		return nil, fmt.Errorf("%w: channel_id is required", ErrInvalidInput)
	}
	return &Channel{
		ProjectID:     projectID,
		Label:         label,
		DestinationID: destinationID,
	}, nil
}

const (
	DefaultPageLimit = 100
	MaxPageLimit     = 100
)

// Page is an offset window over a listing.
type Page struct {
	Skip  int
	Limit int
}

func NewPage(skip, limit int) Page {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return Page{Skip: skip, Limit: limit}
}
