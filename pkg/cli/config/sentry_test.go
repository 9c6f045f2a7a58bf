package config_test

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/monoconf/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

func parseSentry(t *testing.T, args ...string) *config.Sentry {
	t.Helper()
	var sentryCfg config.Sentry
	cmd := &cli.Command{
		Name:  "test",
		Flags: sentryCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			return nil
		},
	}
	gt.NoError(t, cmd.Run(context.Background(), append([]string{"test"}, args...)))
	return &sentryCfg
}

func TestSentryFromEnv(t *testing.T) {
	t.Setenv("MONOCONF_SENTRY_DSN", "https://key@o0.ingest.sentry.io/1")
	t.Setenv("MONOCONF_SENTRY_ENV", "staging")

	sentryCfg := parseSentry(t)

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	logger.Info("sentry", slog.Any("sentry", sentryCfg))

	gt.S(t, buf.String()).Contains(`"Environment":"staging"`)
	gt.S(t, buf.String()).NotContains("o0.ingest.sentry.io")
}

func TestSentryConfigure(t *testing.T) {
	ctx := context.Background()

	t.Run("no DSN leaves sentry disabled", func(t *testing.T) {
		gt.NoError(t, parseSentry(t).Configure(ctx))
	})

	t.Run("invalid DSN is rejected without exposing it", func(t *testing.T) {
		sentryCfg := parseSentry(t, "--sentry-dsn", "ftp://key@o0.ingest.sentry.io/1")
		err := sentryCfg.Configure(ctx)
		gt.Error(t, err)

		dsn := goerr.Unwrap(err).Values()["dsn"]
		gt.S(t, fmt.Sprint(dsn)).NotContains("o0.ingest.sentry.io")
	})
}
