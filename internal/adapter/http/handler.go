package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/bnema/standup/internal/adapter/http/templates"
	"github.com/bnema/standup/internal/adapter/http/validation"
	"github.com/bnema/standup/internal/domain"
	"github.com/bnema/standup/internal/infrastructure/logger"
	"github.com/bnema/standup/internal/service"
)

type SubmissionService interface {
	Submit(ctx context.Context, u service.Upload) (*domain.Summary, error)
}

type StatusService interface {
	Get(ctx context.Context, jobID string) (service.JobView, error)
	Stream(ctx context.Context, jobID string, emit func(service.JobView) error) error
}

type CatalogService interface {
	CreateProject(ctx context.Context, name, description string) (*domain.Project, error)
	GetProject(ctx context.Context, id int64) (*domain.Project, error)
	ListProjects(ctx context.Context, page domain.Page) ([]domain.Project, error)
	DeleteProject(ctx context.Context, id int64) (*domain.Project, error)
	ProjectChannels(ctx context.Context, projectID int64) ([]domain.Channel, error)

	CreateChannel(ctx context.Context, projectID int64, label, destinationID string) (*domain.Channel, error)
	GetChannel(ctx context.Context, id int64) (*domain.Channel, error)
	ListChannels(ctx context.Context, page domain.Page) ([]domain.Channel, error)
	DeleteChannel(ctx context.Context, id int64) error

	CreateSummary(ctx context.Context, m service.ManualSummary) (*domain.Summary, error)
	GetSummary(ctx context.Context, id int64) (*domain.Summary, error)
	ListSummaries(ctx context.Context, page domain.Page) ([]domain.Summary, error)
	ChannelSummaries(ctx context.Context, channelID int64) ([]domain.Summary, error)
}

type Handlers struct {
	submissions SubmissionService
	status      StatusService
	catalog     CatalogService
	maxSizeMB   int
	version     string
}

func NewHandlers(submissions SubmissionService, status StatusService, catalog CatalogService, maxSizeMB int, version string) *Handlers {
	return &Handlers{
		submissions: submissions,
		status:      status,
		catalog:     catalog,
		maxSizeMB:   maxSizeMB,
		version:     version,
	}
}

type uploadResponse struct {
	JobID   string           `json:"job_id"`
	Status  domain.JobStatus `json:"status"`
	Message string           `json:"message"`
}

// Welcome godoc
// @Summary Service banner
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *Handlers) Welcome(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Welcome to the Standup Summarizer API",
		"version": h.version,
		"docs":    "/swagger/index.html",
	})
}

// Health godoc
// @Summary Liveness check
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// UploadAudio godoc
// @Summary Submit a standup recording
// @Description Stores the recording, records a pending job and schedules transcription and summarization in the background.
// @Tags jobs
// @Accept multipart/form-data
// @Produce json
// @Param channel_id query int true "channel id"
// @Param audio_file formData file true "recording (mp3, wav, ogg, flac, webm, m4a, mp4)"
// @Param send_to_slack formData bool false "post the summary to the channel (default true)"
// @Success 202 {object} uploadResponse
// @Failure 400 {object} apiError
// @Failure 413 {object} apiError
// @Failure 415 {object} apiError
// @Failure 500 {object} apiError
// @Router /upload-audio/ [post]
func (h *Handlers) UploadAudio(w http.ResponseWriter, r *http.Request) {
	maxBytes := int64(h.maxSizeMB) * 1024 * 1024
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "File too large")
			return
		}
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	file, header, err := r.FormFile("audio_file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "audio_file is required")
		return
	}
	defer file.Close() //nolint:errcheck

	if !validation.DeclaredMediaType(header.Header.Get("Content-Type")) {
		writeError(w, http.StatusBadRequest, "File must be an audio file")
		return
	}
	mime, allowed, err := validation.ValidateMagicBytes(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Could not read audio_file")
		return
	}
	if !allowed {
		logger.Warn.Printf("rejected upload %s: detected %s", logger.SanitizeForLog(header.Filename), mime)
		writeError(w, http.StatusUnsupportedMediaType, "Unsupported audio format")
		return
	}

	channelID, err := parseChannelID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	notify := true
	if v := strings.TrimSpace(r.FormValue("send_to_slack")); v != "" {
		if notify, err = strconv.ParseBool(v); err != nil {
			writeError(w, http.StatusBadRequest, "send_to_slack must be a boolean")
			return
		}
	}

	job, err := h.submissions.Submit(r.Context(), service.Upload{
		ChannelID: channelID,
		Filename:  header.Filename,
		Body:      file,
		Notify:    notify,
	})
	if err != nil {
		writeServiceError(w, r, err, "Channel not found")
		return
	}

	writeJSON(w, http.StatusAccepted, uploadResponse{
		JobID:   job.JobID,
		Status:  job.Status,
		Message: "Audio file uploaded and processing started",
	})
}

// parseChannelID reads channel_id from the query string, falling back to
// the form body.
func parseChannelID(r *http.Request) (int64, error) {
	raw := r.URL.Query().Get("channel_id")
	if raw == "" {
		raw = r.FormValue("channel_id")
	}
	if raw == "" {
		return 0, errors.New("channel_id is required")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("channel_id must be a positive integer")
	}
	return id, nil
}

// GetJobStatus godoc
// @Summary Poll a job
// @Tags jobs
// @Produce json
// @Param job_id path string true "job id"
// @Success 200 {object} service.JobView
// @Failure 404 {object} apiError
// @Router /jobs/{job_id} [get]
func (h *Handlers) GetJobStatus(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "job_id")
	if !domain.ValidJobID(jobID) {
		writeError(w, http.StatusNotFound, "Job not found")
		return
	}

	view, err := h.status.Get(r.Context(), jobID)
	if err != nil {
		writeServiceError(w, r, err, "Job not found")
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// JobPage renders a small HTML page that follows the job's event stream.
func (h *Handlers) JobPage(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "job_id")
	if !domain.ValidJobID(jobID) {
		http.Error(w, "Job not found", http.StatusNotFound)
		return
	}

	view, err := h.status.Get(r.Context(), jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "Job not found", http.StatusNotFound)
			return
		}
		logger.Error.Printf("job page %s: %v", jobID, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.JobPage(view.JobID, string(view.Status), view.Message).Render(r.Context(), w); err != nil {
		logger.Error.Printf("render job page %s: %v", jobID, err)
	}
}

type createProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type createChannelRequest struct {
	ProjectID int64  `json:"project_id"`
	Label     string `json:"label"`
	ChannelID string `json:"channel_id"`
}

type createSummaryRequest struct {
	ChannelID     int64  `json:"channel_id"`
	AudioFilePath string `json:"audio_file_path"`
	Transcript    string `json:"transcript"`
	Summary       string `json:"summary"`
}

// CreateProject godoc
// @Summary Create a project
// @Tags projects
// @Accept json
// @Produce json
// @Param request body createProjectRequest true "project"
// @Success 201 {object} domain.Project
// @Failure 400 {object} apiError
// @Router /projects/ [post]
func (h *Handlers) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	p, err := h.catalog.CreateProject(r.Context(), req.Name, req.Description)
	if err != nil {
		writeServiceError(w, r, err, "Project not found")
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// ListProjects godoc
// @Summary List projects with their channels
// @Tags projects
// @Produce json
// @Param skip query int false "offset"
// @Param limit query int false "page size (1-100)"
// @Success 200 {array} domain.Project
// @Router /projects/ [get]
func (h *Handlers) ListProjects(w http.ResponseWriter, r *http.Request) {
	page, ok := parsePage(w, r)
	if !ok {
		return
	}
	projects, err := h.catalog.ListProjects(r.Context(), page)
	if err != nil {
		writeServiceError(w, r, err, "Project not found")
		return
	}
	writeJSON(w, http.StatusOK, nonNil(projects))
}

// GetProject godoc
// @Summary Get a project with its channels
// @Tags projects
// @Produce json
// @Param id path int true "project id"
// @Success 200 {object} domain.Project
// @Failure 404 {object} apiError
// @Router /projects/{id} [get]
func (h *Handlers) GetProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "Project not found")
	if !ok {
		return
	}
	p, err := h.catalog.GetProject(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "Project not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// DeleteProject godoc
// @Summary Delete a project and its channels
// @Tags projects
// @Produce json
// @Param id path int true "project id"
// @Success 200 {object} domain.Project
// @Failure 404 {object} apiError
// @Router /projects/{id} [delete]
func (h *Handlers) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "Project not found")
	if !ok {
		return
	}
	p, err := h.catalog.DeleteProject(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "Project not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// ProjectChannels godoc
// @Summary List the channels of a project
// @Tags projects
// @Produce json
// @Param id path int true "project id"
// @Success 200 {array} domain.Channel
// @Failure 404 {object} apiError
// @Router /projects/{id}/channels [get]
func (h *Handlers) ProjectChannels(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "Project not found")
	if !ok {
		return
	}
	channels, err := h.catalog.ProjectChannels(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "Project not found")
		return
	}
	writeJSON(w, http.StatusOK, nonNil(channels))
}

// CreateChannel godoc
// @Summary Create a channel in a project
// @Tags channels
// @Accept json
// @Produce json
// @Param request body createChannelRequest true "channel"
// @Success 201 {object} domain.Channel
// @Failure 400 {object} apiError
// @Router /channels/ [post]
func (h *Handlers) CreateChannel(w http.ResponseWriter, r *http.Request) {
	var req createChannelRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	c, err := h.catalog.CreateChannel(r.Context(), req.ProjectID, req.Label, req.ChannelID)
	if err != nil {
		writeServiceError(w, r, err, "Project not found")
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// ListChannels godoc
// @Summary List channels
// @Tags channels
// @Produce json
// @Param skip query int false "offset"
// @Param limit query int false "page size (1-100)"
// @Success 200 {array} domain.Channel
// @Router /channels/ [get]
func (h *Handlers) ListChannels(w http.ResponseWriter, r *http.Request) {
	page, ok := parsePage(w, r)
	if !ok {
		return
	}
	channels, err := h.catalog.ListChannels(r.Context(), page)
	if err != nil {
		writeServiceError(w, r, err, "Channel not found")
		return
	}
	writeJSON(w, http.StatusOK, nonNil(channels))
}

// GetChannel godoc
// @Summary Get a channel with its summaries
// @Tags channels
// @Produce json
// @Param id path int true "channel id"
// @Success 200 {object} domain.Channel
// @Failure 404 {object} apiError
// @Router /channels/{id} [get]
func (h *Handlers) GetChannel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "Channel not found")
	if !ok {
		return
	}
	c, err := h.catalog.GetChannel(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "Channel not found")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// DeleteChannel godoc
// @Summary Delete a channel
// @Tags channels
// @Produce json
// @Param id path int true "channel id"
// @Success 200 {object} messageResponse
// @Failure 404 {object} apiError
// @Router /channels/{id} [delete]
func (h *Handlers) DeleteChannel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "Channel not found")
	if !ok {
		return
	}
	if err := h.catalog.DeleteChannel(r.Context(), id); err != nil {
		writeServiceError(w, r, err, "Channel not found")
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Channel deleted successfully"})
}

// CreateSummary godoc
// @Summary Store a summary written outside the pipeline
// @Tags summaries
// @Accept json
// @Produce json
// @Param request body createSummaryRequest true "summary"
// @Success 201 {object} domain.Summary
// @Failure 400 {object} apiError
// @Router /summaries/ [post]
func (h *Handlers) CreateSummary(w http.ResponseWriter, r *http.Request) {
	var req createSummaryRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	s, err := h.catalog.CreateSummary(r.Context(), service.ManualSummary{
		ChannelID:     req.ChannelID,
		AudioFilePath: req.AudioFilePath,
		Transcript:    req.Transcript,
		Summary:       req.Summary,
	})
	if err != nil {
		writeServiceError(w, r, err, "Channel not found")
		return
	}
	writeJSON(w, http.StatusCreated, s)
}

// ListSummaries godoc
// @Summary List summaries, newest first
// @Tags summaries
// @Produce json
// @Param skip query int false "offset"
// @Param limit query int false "page size (1-100)"
// @Success 200 {array} domain.Summary
// @Router /summaries/ [get]
func (h *Handlers) ListSummaries(w http.ResponseWriter, r *http.Request) {
	page, ok := parsePage(w, r)
	if !ok {
		return
	}
	summaries, err := h.catalog.ListSummaries(r.Context(), page)
	if err != nil {
		writeServiceError(w, r, err, "Summary not found")
		return
	}
	writeJSON(w, http.StatusOK, nonNil(summaries))
}

// GetSummary godoc
// @Summary Get a summary
// @Tags summaries
// @Produce json
// @Param id path int true "summary id"
// @Success 200 {object} domain.Summary
// @Failure 404 {object} apiError
// @Router /summaries/{id} [get]
func (h *Handlers) GetSummary(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "Summary not found")
	if !ok {
		return
	}
	s, err := h.catalog.GetSummary(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "Summary not found")
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// ChannelSummaries godoc
// @Summary List the summaries of a channel
// @Tags summaries
// @Produce json
// @Param channel_id path int true "channel id"
// @Success 200 {array} domain.Summary
// @Router /summaries/channel/{channel_id} [get]
func (h *Handlers) ChannelSummaries(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "channel_id", "Channel not found")
	if !ok {
		return
	}
	summaries, err := h.catalog.ChannelSummaries(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "Channel not found")
		return
	}
	writeJSON(w, http.StatusOK, nonNil(summaries))
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return false
	}
	return true
}

// pathID parses a positive integer URL parameter. Anything else cannot
// name an existing row, so it is answered with notFound.
func pathID(w http.ResponseWriter, r *http.Request, param, notFound string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusNotFound, notFound)
		return 0, false
	}
	return id, true
}

func parsePage(w http.ResponseWriter, r *http.Request) (domain.Page, bool) {
	q := r.URL.Query()
	skip, limit := 0, 0
	var err error
	if v := q.Get("skip"); v != "" {
		if skip, err = strconv.Atoi(v); err != nil || skip < 0 {
			writeError(w, http.StatusBadRequest, "skip must be a non-negative integer")
			return domain.Page{}, false
		}
	}
	if v := q.Get("limit"); v != "" {
		if limit, err = strconv.Atoi(v); err != nil || limit < 1 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return domain.Page{}, false
		}
	}
	return domain.NewPage(skip, limit), true
}

// nonNil keeps empty listings encoded as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
