package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/bnema/standup/docs"
	"github.com/bnema/standup/internal/adapter/http/middleware"
	"github.com/bnema/standup/internal/adapter/http/ratelimit"
)

type ServerDeps struct {
	Submissions SubmissionService
	Status      StatusService
	Catalog     CatalogService
	Auth        APIKeyValidator

	CORSOrigins []string
	MaxUploadMB int
	Version     string

	// Optional; defaults suit production.
	Limiter *ratelimit.FailureLimiter
	Backoff *ratelimit.Backoff
}

type Server struct {
	router     chi.Router
	handlers   *Handlers
	sseHandler *SSEHandler
}

func NewServer(deps ServerDeps) *Server {
	if deps.Limiter == nil {
		deps.Limiter = ratelimit.NewFailureLimiter(5, 15*time.Minute, 30*time.Minute)
	}
	if deps.Backoff == nil {
		deps.Backoff = ratelimit.NewBackoff(500*time.Millisecond, 10*time.Second, 2.0)
	}

	s := &Server{
		router:     chi.NewRouter(),
		handlers:   NewHandlers(deps.Submissions, deps.Status, deps.Catalog, deps.MaxUploadMB, deps.Version),
		sseHandler: NewSSEHandler(deps.Status),
	}

	r := s.router
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger)
	r.Use(middleware.SecurityHeaders)
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   deps.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", APIKeyHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler)
	r.Use(APIKeyAuth(deps.Auth, deps.Limiter, deps.Backoff, isPublicPath))

	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	h := s.handlers
	r := s.router

	r.Get("/", h.Welcome)
	r.Get("/health", h.Health)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Post("/upload-audio", h.UploadAudio)
	r.Post("/upload-audio/", h.UploadAudio)

	r.Get("/jobs/{job_id}", h.GetJobStatus)
	r.Get("/jobs/{job_id}/view", h.JobPage)
	r.Get("/job-events/{job_id}", s.sseHandler.Events)

	r.Route("/projects", func(r chi.Router) {
		r.Post("/", h.CreateProject)
		r.Get("/", h.ListProjects)
		r.Get("/{id}", h.GetProject)
		r.Delete("/{id}", h.DeleteProject)
		r.Get("/{id}/channels", h.ProjectChannels)
	})

	r.Route("/channels", func(r chi.Router) {
		r.Post("/", h.CreateChannel)
		r.Get("/", h.ListChannels)
		r.Get("/{id}", h.GetChannel)
		r.Delete("/{id}", h.DeleteChannel)
	})

	r.Route("/summaries", func(r chi.Router) {
		r.Post("/", h.CreateSummary)
		r.Get("/", h.ListSummaries)
		r.Get("/channel/{channel_id}", h.ChannelSummaries)
		r.Get("/{id}", h.GetSummary)
	})
}

func isPublicPath(path string) bool {
	return path == "/" || path == "/health" || strings.HasPrefix(path, "/swagger/")
}

// CloseStreams ends open event streams so http.Server.Shutdown can finish.
// Register it with http.Server.RegisterOnShutdown.
func (s *Server) CloseStreams() {
	s.sseHandler.Close()
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
