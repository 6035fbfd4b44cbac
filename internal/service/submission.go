package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bnema/standup/internal/domain"
	"github.com/bnema/standup/internal/infrastructure/logger"
	"github.com/bnema/standup/internal/port"
)

var extPattern = regexp.MustCompile(`^\.[a-z0-9]{1,8}$`)

// maxFilenameBytes is the usual filesystem limit for one name.
const maxFilenameBytes = 255

// Upload is one recording submitted for processing.
type Upload struct {
	ChannelID int64
	Filename  string
	Body      io.Reader
	Notify    bool
}

type SubmissionService struct {
	jobs       port.JobStore
	ws         *Workspace
	dispatcher port.Dispatcher
	now        func() time.Time
}

func NewSubmissionService(jobs port.JobStore, ws *Workspace, dispatcher port.Dispatcher) *SubmissionService {
	return &SubmissionService{
		jobs:       jobs,
		ws:         ws,
		dispatcher: dispatcher,
		now:        time.Now,
	}
}

// Submit stores the recording in a fresh working directory, records a
// pending job and hands it to the dispatcher. It returns as soon as the job
// is scheduled.
func (s *SubmissionService) Submit(ctx context.Context, u Upload) (*domain.Summary, error) {
	if u.ChannelID <= 0 {
		return nil, fmt.Errorf("%w: channel_id must be positive", domain.ErrInvalidInput)
	}
	if u.Body == nil {
		return nil, fmt.Errorf("%w: audio file is required", domain.ErrInvalidInput)
	}

	u.Filename = originalName(u.Filename)

	jobID := domain.NewJobID(s.now())
	if _, err := s.ws.Create(jobID); err != nil {
		return nil, err
	}

	path, size, err := s.ws.Save(jobID, "original"+audioExt(u.Filename), u.Body)
	if err != nil {
		s.discard(jobID)
		return nil, fmt.Errorf("save upload: %w", err)
	}
	if size == 0 {
		s.discard(jobID)
		return nil, fmt.Errorf("%w: audio file is empty", domain.ErrInvalidInput)
	}

	spec := domain.JobSpec{
		JobID:            jobID,
		ChannelID:        u.ChannelID,
		AudioFilePath:    path,
		OriginalFilename: u.Filename,
		Notify:           u.Notify,
	}
	job := domain.NewPendingSummary(spec)
	if err := s.jobs.CreateJob(ctx, job); err != nil {
		s.discard(jobID)
		return nil, fmt.Errorf("create job: %w", err)
	}

	if err := s.dispatcher.Dispatch(ctx, spec); err != nil {
		wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), writeTimeout)
		defer cancel()
		ferr := s.jobs.UpdateJob(wctx, jobID, domain.FailedUpdate("could not schedule job: "+err.Error()))
		s.discard(jobID)
		return nil, errors.Join(fmt.Errorf("dispatch job: %w", err), ferr)
	}

	logger.Info.Printf("job=%s submitted (channel=%d, file=%q, %d bytes, notify=%t)",
		jobID, u.ChannelID, logger.SanitizeForLog(u.Filename), size, u.Notify)
	return job, nil
}

func (s *SubmissionService) discard(jobID string) {
	if err := s.ws.Remove(jobID); err != nil {
		logger.Error.Printf("job=%s cleanup after rejected upload failed: %v", jobID, err)
	}
}

// audioExt keeps the uploaded extension when it is a plain one. ffmpeg
// sniffs the content anyway, the extension only helps humans.
func audioExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if !extPattern.MatchString(ext) {
		return ".wav"
	}
	return ext
}

// originalName is the client filename as stored on the job: base name only,
// control characters and quotes replaced, at most maxFilenameBytes with a
// plain extension kept. Nothing usable left yields "recording".
func originalName(name string) string {
	name = strings.Map(func(r rune) rune {
		if r < 32 || r == 127 || r == '"' {
			return '_'
		}
		return r
	}, name)
	name = strings.TrimSpace(filepath.Base(strings.ReplaceAll(name, `\`, "/")))
	if name == "." || name == "/" || strings.Trim(name, "_ ") == "" {
		return "recording"
	}
	if len(name) <= maxFilenameBytes {
		return name
	}

	ext := filepath.Ext(name)
	if !extPattern.MatchString(strings.ToLower(ext)) {
		ext = ""
	}
	base := name[:len(name)-len(ext)]
	cut := maxFilenameBytes - len(ext)
	for cut > 0 && !utf8.RuneStart(base[cut]) {
		cut--
	}
	return base[:cut] + ext
}
