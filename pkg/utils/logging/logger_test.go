package logging_test

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/monoconf/pkg/domain/types"
	"github.com/m-mizutani/monoconf/pkg/utils/logging"
)

func TestConfigure(t *testing.T) {
	t.Cleanup(func() {
		gt.NoError(t, logging.Configure("text", "info", "stdout"))
	})

	t.Run("text and json formats", func(t *testing.T) {
		gt.NoError(t, logging.Configure("text", "debug", "stderr"))
		gt.NoError(t, logging.Configure("json", "info", "-"))
	})

	t.Run("log file output", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "monoconf.log")
		gt.NoError(t, logging.Configure("json", "info", path))
		logging.Default().Info("config document is valid", slog.Int("workspaces", 2))

		out := gt.R1(os.ReadFile(path)).NoError(t)
		gt.S(t, string(out)).Contains(`"workspaces":2`)
	})

	t.Run("invalid options are rejected", func(t *testing.T) {
		err := logging.Configure("yaml", "info", "stdout")
		gt.True(t, errors.Is(err, types.ErrInvalidOption))

		err = logging.Configure("json", "trace", "stdout")
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}

func TestLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	gt.NoError(t, logging.ConfigureWriter("json", "warn", &buf))
	t.Cleanup(func() {
		gt.NoError(t, logging.Configure("text", "info", "stdout"))
	})

	logging.Default().Info("config source reloaded")
	gt.V(t, buf.Len()).Equal(0)

	logging.Default().Warn("failed to reload config source")
	gt.S(t, buf.String()).Contains("failed to reload config source")
}

func TestSentryDSNIsMasked(t *testing.T) {
	buf := capture(t)

	dsn := types.SentryDSN("https://key@o0.ingest.sentry.io/1")
	logging.Default().Info("sentry configured", slog.Any("dsn", dsn))

	gt.S(t, buf.String()).Contains("sentry configured")
	gt.S(t, buf.String()).NotContains("o0.ingest.sentry.io")
}
