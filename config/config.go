package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     int
	LogLevel string

	DataDir       string
	TempDirectory string
	DatabaseURL   string

	RedisAddr     string
	RedisPassword string
	RedisQueueKey string
	Workers       int

	MaxUploadSizeMB    int
	StatusPollInterval time.Duration
	JobTimeout         time.Duration

	WhisperModelDir string
	WhisperLanguage string
	WhisperThreads  int

	AnthropicAPIKey string
	AnthropicModel  string

	SlackBotToken  string
	SlackChannelID string

	APIKeyHash  string
	CORSOrigins []string
}

// UsesPostgres reports whether DatabaseURL points at Postgres rather than the
// embedded SQLite file.
func (c *Config) UsesPostgres() bool {
	return strings.HasPrefix(c.DatabaseURL, "postgres://") || strings.HasPrefix(c.DatabaseURL, "postgresql://")
}

// Load reads .env files (path list, default ".env") into the environment
// without overriding variables that are already set, then builds the
// config. A missing .env file is not an error.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var errs []error
	intVar := func(key string, def int) int {
		v, err := strconv.Atoi(getEnv(key, strconv.Itoa(def)))
		if err != nil || v <= 0 {
			errs = append(errs, fmt.Errorf("invalid %s: must be a positive integer", key))
		}
		return v
	}
	durationVar := func(key string, def time.Duration) time.Duration {
		v, err := time.ParseDuration(getEnv(key, def.String()))
		if err != nil || v <= 0 {
			errs = append(errs, fmt.Errorf("invalid %s: must be a positive duration", key))
		}
		return v
	}

	dataDir := getEnv("DATA_DIR", "./data")
	cfg := &Config{
		Port:     intVar("PORT", 8000),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		DataDir:       dataDir,
		TempDirectory: getEnv("TEMP_DIRECTORY", filepath.Join(dataDir, "work")),
		DatabaseURL:   os.Getenv("DATABASE_URL"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisQueueKey: getEnv("REDIS_QUEUE_KEY", "standup:jobs"),
		Workers:       intVar("WORKERS", 2),

		MaxUploadSizeMB:    intVar("MAX_UPLOAD_SIZE_MB", 500),
		StatusPollInterval: durationVar("STATUS_POLL_INTERVAL", 2*time.Second),
		JobTimeout:         durationVar("JOB_TIMEOUT", 30*time.Minute),

		WhisperModelDir: os.Getenv("WHISPER_MODEL_DIR"),
		WhisperLanguage: getEnv("WHISPER_LANGUAGE", "en"),
		WhisperThreads:  intVar("WHISPER_THREADS", 4),

		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicModel:  getEnv("ANTHROPIC_MODEL", "claude-3-5-sonnet-20240620"),

		SlackBotToken:  os.Getenv("SLACK_BOT_TOKEN"),
		SlackChannelID: os.Getenv("SLACK_CHANNEL_ID"),

		APIKeyHash:  os.Getenv("API_KEY_HASH"),
		CORSOrigins: splitList(getEnv("CORS_ORIGIN", "http://localhost:8080")),
	}

	if cfg.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid PORT: %d is out of range", cfg.Port))
	}
	if cfg.DatabaseURL != "" && !cfg.UsesPostgres() {
		errs = append(errs, errors.New("invalid DATABASE_URL: only postgres:// URLs are supported"))
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
