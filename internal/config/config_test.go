package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"review-scheduler/internal/config"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		path := writeConfig(t, "database_url: postgres://u:p@localhost:5432/db\n")

		cfg, err := config.Load(path)
		require.NoError(t, err)
		require.Equal(t, "8080", cfg.App.Port)
		require.Equal(t, "info", cfg.App.LogLevel)
		require.Equal(t, 10*time.Second, cfg.App.ShutdownTimeout)
		require.Equal(t, config.TransportLog, cfg.Notify.Transport)
		require.Equal(t, 5, cfg.Notify.MaxAttempts)
		require.Equal(t, "scheduler.notification.v1", cfg.Kafka.Topic)
	})

	t.Run("file values", func(t *testing.T) {
		path := writeConfig(t, `
app:
  port: "9090"
  log_level: debug
database_url: postgres://u:p@localhost:5432/db
retry:
  max_attempts: 5
  backoff: exponential
  base: 10ms
notify:
  transport: kafka
kafka:
  brokers: "k1:9092,k2:9092"
`)

		cfg, err := config.Load(path)
		require.NoError(t, err)
		require.Equal(t, "9090", cfg.App.Port)
		require.Equal(t, "debug", cfg.App.LogLevel)
		require.Equal(t, 5, cfg.Retry.MaxAttempts)
		require.Equal(t, "exponential", cfg.Retry.Backoff)
		require.Equal(t, 10*time.Millisecond, cfg.Retry.Base)
		require.Equal(t, "k1:9092,k2:9092", cfg.Kafka.Brokers)
	})

	t.Run("env overrides file", func(t *testing.T) {
		path := writeConfig(t, "database_url: postgres://file\n")
		t.Setenv("DATABASE_URL", "postgres://env")
		t.Setenv("APP_PORT", "7070")

		cfg, err := config.Load(path)
		require.NoError(t, err)
		require.Equal(t, "postgres://env", cfg.DatabaseURL)
		require.Equal(t, "7070", cfg.App.Port)
	})

	t.Run("missing database url", func(t *testing.T) {
		path := writeConfig(t, "app:\n  port: \"8080\"\n")

		_, err := config.Load(path)
		require.ErrorContains(t, err, "database_url")
	})

	t.Run("smtp transport needs host", func(t *testing.T) {
		path := writeConfig(t, "database_url: postgres://x\nnotify:\n  transport: smtp\n")

		_, err := config.Load(path)
		require.ErrorContains(t, err, "smtp.host")
	})

	t.Run("unknown transport", func(t *testing.T) {
		path := writeConfig(t, "database_url: postgres://x\nnotify:\n  transport: pigeon\n")

		_, err := config.Load(path)
		require.ErrorContains(t, err, "pigeon")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})
}
