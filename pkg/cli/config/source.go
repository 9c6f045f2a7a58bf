package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/monoconf/pkg/domain/interfaces"
	"github.com/m-mizutani/monoconf/pkg/domain/types"
	"github.com/m-mizutani/monoconf/pkg/infra/gcs"
	"github.com/m-mizutani/monoconf/pkg/repository/file"
	gcsrepo "github.com/m-mizutani/monoconf/pkg/repository/gcs"
	"github.com/m-mizutani/monoconf/pkg/utils/logging"
	"github.com/m-mizutani/monoconf/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

// Source selects where the served config document comes from. Exactly one of
// a local file, a Cloud Storage object or Firestore must be given.
type Source struct {
	configFile string
	gcsURL     string
}

func (x *Source) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config-file",
			Usage:       "Path to config document (YAML or JSON), re-read on change",
			Aliases:     []string{"c"},
			Category:    "Source",
			Sources:     cli.EnvVars("MONOCONF_CONFIG_FILE"),
			Destination: &x.configFile,
		},
		&cli.StringFlag{
			Name:        "config-gcs",
			Usage:       "Cloud Storage URL of config document (gs://bucket/object), re-read on new generation",
			Category:    "Source",
			Sources:     cli.EnvVars("MONOCONF_CONFIG_GCS"),
			Destination: &x.gcsURL,
		},
	}
}

func (x *Source) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("ConfigFile", x.configFile),
		slog.String("GCS", x.gcsURL),
	)
}

// NewProvider builds the config provider. The returned function releases
// resources held by the provider and is never nil.
func (x *Source) NewProvider(ctx context.Context, fs *Firestore) (interfaces.ConfigProvider, func(), error) {
	nop := func() {}

	var selected int
	for _, enabled := range []bool{x.configFile != "", x.gcsURL != "", fs != nil && fs.Enabled()} {
		if enabled {
			selected++
		}
	}
	if selected != 1 {
		return nil, nop, goerr.Wrap(types.ErrInvalidOption,
			"exactly one of --config-file, --config-gcs and --firestore-project-id is required",
			goerr.V("selected", selected),
		)
	}

	switch {
	case x.configFile != "":
		provider, err := file.New(x.configFile)
		if err != nil {
			return nil, nop, err
		}
		logging.From(ctx).Info("serving config file", slog.String("path", x.configFile))
		return provider, nop, nil

	case x.gcsURL != "":
		bucket, object, err := gcsrepo.ParseURL(x.gcsURL)
		if err != nil {
			return nil, nop, err
		}
		client, err := gcs.New(ctx)
		if err != nil {
			return nil, nop, err
		}
		provider, err := gcsrepo.New(ctx, client, bucket, object)
		if err != nil {
			safe.Close(ctx, client)
			return nil, nop, err
		}
		logging.From(ctx).Info("serving config object", slog.String("bucket", bucket), slog.String("object", object))
		return provider, func() { safe.Close(ctx, client) }, nil

	default:
		provider, err := fs.NewProvider(ctx)
		if err != nil {
			return nil, nop, err
		}
		logging.From(ctx).Info("serving config from firestore", slog.Any("firestore", fs))
		return provider, func() { safe.Close(ctx, provider) }, nil
	}
}
