package logging_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/addrename/pkg/logging"
)

func TestNewLoggerFromConfig(t *testing.T) {
	originalLevel := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(originalLevel)

	t.Run("json file output", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "log.json")
		logger := logging.NewLoggerFromConfig(&logging.Config{Level: "warn", Format: "json", Output: path})

		logger.Info().Msg("hidden message")
		logger.Warn().Str("scope", "dg1").Msg("visible message")

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.NotContains(t, string(content), "hidden message")
		assert.Contains(t, string(content), "visible message")
		assert.Contains(t, string(content), `"scope":"dg1"`)
	})

	t.Run("console format", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "log.txt")
		logger := logging.NewLoggerFromConfig(&logging.Config{Level: "info", Format: "console", Output: path, NoColor: true})
		logger.Info().Msg("console test")

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "console test")
		assert.Contains(t, string(content), "INF")
	})

	t.Run("nil config uses defaults", func(t *testing.T) {
		cfg := logging.DefaultConfig()
		assert.Equal(t, "info", cfg.Level)
		assert.Equal(t, "auto", cfg.Format)
		assert.Equal(t, "stderr", cfg.Output)
		_ = logging.NewLoggerFromConfig(nil)
	})
}

func TestContextFields(t *testing.T) {
	tl := logging.NewTestLogger(t)

	ctx := logging.WithLogger(context.Background(), tl.Logger)
	ctx = logging.WithRunID(ctx, "run-1")
	ctx = logging.WithScope(ctx, "branch-dg")

	logging.FromContext(ctx).Info().Msg("tagged")

	assert.Equal(t, "run-1", logging.RunID(ctx))
	assert.True(t, tl.Contains(`"run_id":"run-1"`))
	assert.True(t, tl.Contains(`"scope":"branch-dg"`))
	assert.Len(t, tl.Lines(), 1)
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	assert.Same(t, logging.Default(), logging.FromContext(context.Background()))
	assert.Equal(t, "", logging.RunID(context.Background()))
}

func TestEnvConfig(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("DEBUG", "1")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_OUTPUT", "discard")

	cfg := logging.EnvConfig()
	assert.Equal(t, "debug", cfg.Level)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "discard", cfg.Output)

	t.Setenv("LOG_LEVEL", "error")
	assert.Equal(t, "error", logging.EnvConfig().Level)
}
