package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/monoconf/pkg/cli/config"
	"github.com/m-mizutani/monoconf/pkg/controller/server"
	"github.com/m-mizutani/monoconf/pkg/domain/types"
	"github.com/m-mizutani/monoconf/pkg/infra"
	"github.com/m-mizutani/monoconf/pkg/usecase"
	"github.com/m-mizutani/monoconf/pkg/utils/logging"

	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		addr            string
		providerTimeout time.Duration
		maxBodySize     int64

		source    config.Source
		firestore config.Firestore
		sentry    config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("MONOCONF_ADDR"),
			Destination: &addr,
		},
		&cli.DurationFlag{
			Name:        "provider-timeout",
			Usage:       "Deadline of a single config provider call",
			Value:       usecase.DefaultProviderTimeout,
			Sources:     cli.EnvVars("MONOCONF_PROVIDER_TIMEOUT"),
			Destination: &providerTimeout,
		},
		&cli.Int64Flag{
			Name:        "max-body-size",
			Usage:       "Maximum size of a request body in bytes",
			Value:       server.DefaultMaxBodySize,
			Sources:     cli.EnvVars("MONOCONF_MAX_BODY_SIZE"),
			Destination: &maxBodySize,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Serve GetProjects, GetWorkspaces and GetAbout over HTTP",
		Flags: slice.Flatten(
			serveFlags,
			source.Flags(),
			firestore.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("ProviderTimeout", providerTimeout),
				slog.Any("Source", &source),
				slog.Any("Firestore", &firestore),
				slog.Any("Sentry", &sentry),
				slog.String("Version", types.AppVersion),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			provider, closeProvider, err := source.NewProvider(ctx, &firestore)
			if err != nil {
				return err
			}
			defer closeProvider()

			clients := infra.New(infra.WithConfigProvider(provider))
			uc := usecase.New(clients, usecase.WithProviderTimeout(providerTimeout))
			s := server.New(uc, server.WithMaxBodySize(maxBodySize))

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      30 * time.Second,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}
