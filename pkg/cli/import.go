package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/monoconf/pkg/cli/config"
	"github.com/m-mizutani/monoconf/pkg/domain/types"
	"github.com/m-mizutani/monoconf/pkg/repository/file"
	"github.com/m-mizutani/monoconf/pkg/utils/logging"
	"github.com/m-mizutani/monoconf/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func importCommand() *cli.Command {
	var firestore config.Firestore

	return &cli.Command{
		Name:      "import",
		Usage:     "Replace the config stored in Firestore with a config document",
		ArgsUsage: "<config-file>",
		Flags:     firestore.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			path := c.Args().First()
			if path == "" {
				return goerr.Wrap(types.ErrInvalidOption, "config file path is required")
			}

			// Validate before touching Firestore
			doc, err := file.Load(path)
			if err != nil {
				return err
			}

			provider, err := firestore.NewProvider(ctx)
			if err != nil {
				return err
			}
			defer safe.Close(ctx, provider)

			if err := provider.Import(ctx, doc); err != nil {
				return err
			}

			logging.Default().Info("config document imported",
				slog.String("path", path),
				slog.Any("firestore", &firestore),
				slog.Int("workspaces", len(doc.Workspaces)),
			)
			return nil
		},
	}
}
