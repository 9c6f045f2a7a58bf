package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/monoconf/pkg/domain/types"
	"github.com/m-mizutani/monoconf/pkg/repository/file"
	"github.com/m-mizutani/monoconf/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func validateCommand() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "Load and validate a config document",
		ArgsUsage: "<config-file>",
		Action: func(ctx context.Context, c *cli.Command) error {
			path := c.Args().First()
			if path == "" {
				return goerr.Wrap(types.ErrInvalidOption, "config file path is required")
			}

			doc, err := file.Load(path)
			if err != nil {
				return err
			}

			var projects int
			for _, ws := range doc.Workspaces {
				projects += len(ws.Projects)
				logging.Default().Info("workspace",
					slog.String("name", ws.Name.String()),
					slog.Int("projects", len(ws.Projects)),
				)
			}

			var links int
			if doc.About != nil {
				links = len(doc.About.Links)
			}

			logging.Default().Info("config document is valid",
				slog.String("path", path),
				slog.Int("workspaces", len(doc.Workspaces)),
				slog.Int("projects", projects),
				slog.Int("about_links", links),
			)
			return nil
		},
	}
}
