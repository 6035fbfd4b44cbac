package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"PORT", "LOG_LEVEL", "DATA_DIR", "TEMP_DIRECTORY", "DATABASE_URL",
	"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_QUEUE_KEY", "WORKERS",
	"MAX_UPLOAD_SIZE_MB", "STATUS_POLL_INTERVAL", "JOB_TIMEOUT",
	"WHISPER_MODEL_DIR", "WHISPER_LANGUAGE", "WHISPER_THREADS",
	"ANTHROPIC_API_KEY", "ANTHROPIC_MODEL", "SLACK_BOT_TOKEN", "SLACK_CHANNEL_ID",
	"API_KEY_HASH", "CORS_ORIGIN",
}

// clearEnv blanks every key Load reads; t.Setenv restores them afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), ".env")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "./data", cfg.DataDir)
	assert.Equal(t, filepath.Join("./data", "work"), cfg.TempDirectory)
	assert.Empty(t, cfg.DatabaseURL)
	assert.False(t, cfg.UsesPostgres())
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, "standup:jobs", cfg.RedisQueueKey)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, 500, cfg.MaxUploadSizeMB)
	assert.Equal(t, 2*time.Second, cfg.StatusPollInterval)
	assert.Equal(t, 30*time.Minute, cfg.JobTimeout)
	assert.Equal(t, "en", cfg.WhisperLanguage)
	assert.Equal(t, 4, cfg.WhisperThreads)
	assert.Equal(t, "claude-3-5-sonnet-20240620", cfg.AnthropicModel)
	assert.Equal(t, []string{"http://localhost:8080"}, cfg.CORSOrigins)
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9001")
	t.Setenv("DATA_DIR", "/srv/standup")
	t.Setenv("DATABASE_URL", "postgres://standup@db/standup")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("WORKERS", "6")
	t.Setenv("STATUS_POLL_INTERVAL", "500ms")
	t.Setenv("CORS_ORIGIN", "https://a.example, https://b.example,")

	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, 9001, cfg.Port)
	assert.Equal(t, "/srv/standup/work", cfg.TempDirectory)
	assert.True(t, cfg.UsesPostgres())
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, 6, cfg.Workers)
	assert.Equal(t, 500*time.Millisecond, cfg.StatusPollInterval)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SLACK_CHANNEL_ID=C0FALLBACK\nWORKERS=3\n"), 0o600))
	t.Setenv("WORKERS", "5")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "C0FALLBACK", cfg.SlackChannelID)
	assert.Equal(t, 5, cfg.Workers, "the environment wins over the file")
	t.Cleanup(func() { _ = os.Unsetenv("SLACK_CHANNEL_ID") })
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"PORT", "http"},
		{"PORT", "70000"},
		{"WORKERS", "0"},
		{"MAX_UPLOAD_SIZE_MB", "-1"},
		{"STATUS_POLL_INTERVAL", "2"},
		{"JOB_TIMEOUT", "forever"},
		{"DATABASE_URL", "mysql://localhost/standup"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load(missingEnvFile(t))

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}
