package gcs

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/monoconf/pkg/domain/interfaces"
	"github.com/m-mizutani/monoconf/pkg/domain/model"
	"github.com/m-mizutani/monoconf/pkg/domain/types"
	"github.com/m-mizutani/monoconf/pkg/repository/document"
	"github.com/m-mizutani/monoconf/pkg/repository/memory"
	"github.com/m-mizutani/monoconf/pkg/utils/safe"
)

// DefaultMaxDocumentSize bounds the size of the config object
const DefaultMaxDocumentSize int64 = 8 << 20

// ParseURL splits gs://bucket/path/to/object
func ParseURL(s string) (bucket, object string, err error) {
	u, err := url.Parse(s)
	if err != nil {
		return "", "", goerr.Wrap(types.ErrInvalidOption, "invalid object URL", goerr.V("url", s))
	}
	object = strings.TrimPrefix(u.Path, "/")
	if u.Scheme != "gs" || u.Host == "" || object == "" {
		return "", "", goerr.Wrap(types.ErrInvalidOption, "object URL must be gs://bucket/object", goerr.V("url", s))
	}
	return u.Host, object, nil
}

// Provider serves a config document stored in Cloud Storage. The object is
// fetched again when its generation changes.
type Provider struct {
	*memory.Reloader
}

var _ interfaces.ConfigProvider = (*Provider)(nil)

type source struct {
	storage interfaces.ObjectStorage
	bucket  string
	object  string
	maxSize int64
}

type config struct {
	maxSize  int64
	reloader []memory.ReloaderOption
}

type Option func(*config)

// WithMaxDocumentSize sets the largest object accepted. A larger object is
// rejected as a whole.
func WithMaxDocumentSize(size int64) Option {
	return func(cfg *config) {
		cfg.maxSize = size
	}
}

func WithReloaderOptions(options ...memory.ReloaderOption) Option {
	return func(cfg *config) {
		cfg.reloader = append(cfg.reloader, options...)
	}
}

func New(ctx context.Context, storage interfaces.ObjectStorage, bucket, object string, options ...Option) (*Provider, error) {
	cfg := &config{maxSize: DefaultMaxDocumentSize}
	for _, opt := range options {
		opt(cfg)
	}

	src := &source{
		storage: storage,
		bucket:  bucket,
		object:  object,
		maxSize: cfg.maxSize,
	}
	reloaderOptions := append([]memory.ReloaderOption{
		memory.WithLogAttrs(slog.String("bucket", bucket), slog.String("object", object)),
	}, cfg.reloader...)

	reloader, err := memory.NewReloader(ctx, src, reloaderOptions...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load config object",
			goerr.V("bucket", bucket),
			goerr.V("object", object),
		)
	}
	return &Provider{Reloader: reloader}, nil
}

func (x *source) unavailable(err error, msg string) error {
	return goerr.Wrap(types.ErrUnavailable, msg,
		goerr.V("bucket", x.bucket),
		goerr.V("object", x.object),
		goerr.V("reason", err.Error()),
	)
}

func (x *source) Revision(ctx context.Context) (string, error) {
	attrs, err := x.storage.Attrs(ctx, x.bucket, x.object)
	if err != nil {
		return "", x.unavailable(err, "config object is not accessible")
	}
	return strconv.FormatInt(attrs.Generation, 10), nil
}

func (x *source) Load(ctx context.Context) (*model.Document, error) {
	r, err := x.storage.NewReader(ctx, x.bucket, x.object)
	if err != nil {
		return nil, x.unavailable(err, "failed to open config object")
	}
	defer safe.Close(ctx, r)

	// One extra byte tells an object of exactly maxSize from a larger one
	data, err := io.ReadAll(io.LimitReader(r, x.maxSize+1))
	if err != nil {
		return nil, x.unavailable(err, "failed to read config object")
	}
	if int64(len(data)) > x.maxSize {
		return nil, goerr.Wrap(types.ErrValidationFailed, "config object is too large",
			goerr.V("bucket", x.bucket),
			goerr.V("object", x.object),
			goerr.V("limit", x.maxSize),
		)
	}

	doc, err := document.Parse(data)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid config object",
			goerr.V("bucket", x.bucket),
			goerr.V("object", x.object),
		)
	}
	return doc, nil
}
