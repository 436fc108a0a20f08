package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/talos/pkg/cli/config"
	"github.com/secmon-lab/talos/pkg/utils/logging"
)

func TestLoggerConfigure(t *testing.T) {
	prev := logging.Default()
	t.Cleanup(func() { logging.SetDefault(prev) })

	t.Run("defaults", func(t *testing.T) {
		logger := config.NewLoggerForTest("info", "console", "stdout")
		closer, err := logger.Configure()
		gt.NoError(t, err).Required()
		gt.Value(t, closer).NotNil()
		closer()
	})

	t.Run("json to file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "talos.log")
		logger := config.NewLoggerForTest("debug", "json", path)
		closer, err := logger.Configure()
		gt.NoError(t, err).Required()

		logging.Default().Info("hello")
		closer()

		data, err := os.ReadFile(path)
		gt.NoError(t, err).Required()
		gt.String(t, string(data)).Contains("hello")
	})

	t.Run("unknown level", func(t *testing.T) {
		logger := config.NewLoggerForTest("loud", "console", "stdout")
		_, err := logger.Configure()
		gt.Error(t, err).Is(config.ErrInvalidLogLevel)
	})

	t.Run("unknown format", func(t *testing.T) {
		logger := config.NewLoggerForTest("info", "xml", "stdout")
		_, err := logger.Configure()
		gt.Error(t, err).Is(config.ErrInvalidLogFormat)
	})
}

func TestRepositoryConfigure(t *testing.T) {
	ctx := context.Background()

	t.Run("memory backend", func(t *testing.T) {
		cfg := config.NewRepositoryForTest("memory", "", "")
		repo, err := cfg.Configure(ctx)
		gt.NoError(t, err).Required()
		gt.Value(t, repo).NotNil()
		gt.NoError(t, repo.Close())
	})

	t.Run("firestore requires project ID", func(t *testing.T) {
		cfg := config.NewRepositoryForTest("firestore", "", "")
		_, err := cfg.Configure(ctx)
		gt.Error(t, err).Is(config.ErrMissingProjectID)
	})

	t.Run("unknown backend", func(t *testing.T) {
		cfg := config.NewRepositoryForTest("etcd", "", "")
		_, err := cfg.Configure(ctx)
		gt.Error(t, err).Is(config.ErrInvalidBackend)
	})
}

func TestSlackConfigure(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		cfg := config.NewSlackForTest("", "")
		gt.Value(t, cfg.IsConfigured()).Equal(false)

		notifier, err := cfg.Configure()
		gt.NoError(t, err)
		gt.Value(t, notifier).Nil()
	})

	t.Run("token without channel", func(t *testing.T) {
		cfg := config.NewSlackForTest("xoxb-dummy", "")
		_, err := cfg.Configure()
		gt.Error(t, err).Is(config.ErrIncompleteSlack)
	})

	t.Run("channel without token", func(t *testing.T) {
		cfg := config.NewSlackForTest("", "C0123456789")
		_, err := cfg.Configure()
		gt.Error(t, err).Is(config.ErrIncompleteSlack)
	})

	t.Run("fully configured", func(t *testing.T) {
		cfg := config.NewSlackForTest("xoxb-dummy", "C0123456789")
		gt.Value(t, cfg.IsConfigured()).Equal(true)

		notifier, err := cfg.Configure()
		gt.NoError(t, err).Required()
		gt.Value(t, notifier).NotNil()
	})
}
