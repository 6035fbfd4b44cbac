// @title Standup Summarizer API
// @version 1.0
// @description Upload standup recordings, follow their processing and browse the resulting summaries.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bnema/standup/config"
	"github.com/bnema/standup/internal/adapter/converter/ffmpeg"
	HTTPAdapter "github.com/bnema/standup/internal/adapter/http"
	"github.com/bnema/standup/internal/adapter/notifier/slackbot"
	"github.com/bnema/standup/internal/adapter/queue/redisqueue"
	"github.com/bnema/standup/internal/adapter/storage/postgres"
	sqlitestore "github.com/bnema/standup/internal/adapter/storage/sqlite"
	"github.com/bnema/standup/internal/adapter/summarizer/claude"
	"github.com/bnema/standup/internal/adapter/transcriber/whisper"
	"github.com/bnema/standup/internal/infrastructure/logger"
	"github.com/bnema/standup/internal/port"
	"github.com/bnema/standup/internal/service"
)

var version = "dev"

const (
	cleanupInterval = 1 * time.Hour
	workdirMaxAge   = 24 * time.Hour
	reapInterval    = 5 * time.Minute
	staleClaimAfter = 1 * time.Hour
	shutdownTimeout = 30 * time.Second
)

func main() {
	hashKey := flag.String("hash-key", "", "print the API_KEY_HASH value for the given key and exit")
	flag.Parse()

	if *hashKey != "" {
		hash, err := service.HashAPIKey(*hashKey)
		if err != nil {
			fmt.Fprintf(os.Stderr, "hash key: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(hash)
		return
	}

	if err := run(); err != nil {
		logger.Error.Printf("%v", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Setup(cfg.LogLevel, os.Stdout); err != nil {
		return err
	}

	logger.Info.Printf("starting standup %s on port %d", version, cfg.Port)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}
	// Jobs still running after shutdown keep the store and the model;
	// the process exit reclaims them.
	drained := true
	defer func() {
		if drained {
			_ = store.Close()
		}
	}()

	workspace, err := service.NewWorkspace(cfg.TempDirectory)
	if err != nil {
		return fmt.Errorf("failed to create workspace: %w", err)
	}
	eventBus := service.NewEventBus()

	transcriber, err := whisper.NewTranscriber(whisper.Config{
		ModelDir:   cfg.WhisperModelDir,
		Language:   cfg.WhisperLanguage,
		NumThreads: cfg.WhisperThreads,
	})
	if err != nil {
		return fmt.Errorf("failed to load whisper model: %w", err)
	}
	defer func() {
		if drained {
			transcriber.Close()
		}
	}()

	summarizer, err := claude.NewSummarizer(claude.Config{
		APIKey: cfg.AnthropicAPIKey,
		Model:  cfg.AnthropicModel,
	})
	if err != nil {
		return fmt.Errorf("failed to create summarizer: %w", err)
	}

	orchestrator := service.NewOrchestrator(service.OrchestratorDeps{
		Jobs:        store,
		Channels:    store,
		Normalizer:  ffmpeg.NewConverter(),
		Transcriber: transcriber,
		Summarizer:  summarizer,
		Notifier: slackbot.NewNotifier(slackbot.Config{
			Token:           cfg.SlackBotToken,
			FallbackChannel: cfg.SlackChannelID,
		}),
		Workspace: workspace,
		Events:    eventBus,
		Timeout:   cfg.JobTimeout,
	})

	janitor := service.NewJanitor(store, workspace, eventBus, workdirMaxAge)

	// Jobs outlive requests; they stop only after the HTTP server is down.
	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	var (
		dispatcher port.Dispatcher
		drain      func(context.Context) bool
	)
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		defer func() { _ = rdb.Close() }()
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("failed to reach redis at %s: %w", cfg.RedisAddr, err)
		}

		queue := redisqueue.New(rdb, redisqueue.Config{Key: cfg.RedisQueueKey, StaleAfter: staleClaimAfter})
		pool := service.NewWorkerPool(queue, orchestrator.Run, cfg.Workers, reapInterval)
		pool.Start(workerCtx)

		dispatcher = service.NewQueueDispatcher(queue)
		drain = func(ctx context.Context) bool {
			workerCancel()
			done := make(chan struct{})
			go func() {
				pool.Wait()
				close(done)
			}()
			select {
			case <-done:
				return true
			case <-ctx.Done():
				logger.Warn.Printf("workers still busy at shutdown, their claims will be requeued")
				return false
			}
		}
		logger.Info.Printf("dispatching jobs through redis queue %q", cfg.RedisQueueKey)
	} else {
		if _, err := janitor.FailInterrupted(ctx); err != nil {
			logger.Error.Printf("failed to mark interrupted jobs: %v", err)
		}

		runner := service.NewRunner(orchestrator.Run, cfg.Workers)
		dispatcher = service.NewLocalDispatcher(runner)
		drain = func(ctx context.Context) bool {
			// Shutdown returns only once every job has recorded its outcome.
			if err := runner.Shutdown(ctx); err != nil {
				logger.Warn.Printf("runner shutdown: %v", err)
			}
			return true
		}
		logger.Info.Printf("running jobs in-process, %d at a time", cfg.Workers)
	}

	authSvc, err := service.NewAuthService(cfg.APIKeyHash)
	if err != nil {
		return err
	}
	if !authSvc.Enabled() {
		logger.Warn.Printf("API_KEY_HASH is not set, the API is open")
	}

	server := HTTPAdapter.NewServer(HTTPAdapter.ServerDeps{
		Submissions: service.NewSubmissionService(store, workspace, dispatcher),
		Status:      service.NewStatusObserver(store, eventBus, cfg.StatusPollInterval),
		Catalog:     service.NewCatalogService(store, store),
		Auth:        authSvc,
		CORSOrigins: cfg.CORSOrigins,
		MaxUploadMB: cfg.MaxUploadSizeMB,
		Version:     version,
	})

	go janitor.Run(workerCtx, cleanupInterval)

	addr := fmt.Sprintf(":%d", cfg.Port)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      server,
		ReadTimeout:  5 * time.Minute,
		WriteTimeout: 10 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}
	httpServer.RegisterOnShutdown(server.CloseStreams)

	serveErr := make(chan error, 1)
	go func() {
		logger.Info.Printf("server listening on %s", addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
		logger.Info.Printf("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error.Printf("http shutdown error: %v", err)
	}

	// Let in-flight jobs finish. They get their own budget whatever the
	// HTTP shutdown used.
	drainCtx, cancelDrain := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelDrain()
	drained = drain(drainCtx)
	workerCancel()

	logger.Info.Printf("shutdown complete")
	return nil
}

func openStore(ctx context.Context, cfg *config.Config) (port.Store, error) {
	if cfg.UsesPostgres() {
		logger.Info.Printf("using postgres store")
		return postgres.NewStore(ctx, cfg.DatabaseURL)
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	logger.Info.Printf("using sqlite store in %s", cfg.DataDir)
	return sqlitestore.NewStore(cfg.DataDir)
}
