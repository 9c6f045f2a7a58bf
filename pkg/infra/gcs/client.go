package gcs

import (
	"context"
	"errors"
	"io"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/monoconf/pkg/domain/interfaces"
	"github.com/m-mizutani/monoconf/pkg/domain/types"
	"google.golang.org/api/option"
)

type Client struct {
	client *storage.Client
}

var _ interfaces.ObjectStorage = (*Client)(nil)

func New(ctx context.Context, options ...option.ClientOption) (*Client, error) {
	client, err := storage.NewClient(ctx, options...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Cloud Storage client")
	}

	return &Client{client: client}, nil
}

// Attrs implements interfaces.ObjectStorage.
func (x *Client) Attrs(ctx context.Context, bucket, object string) (*interfaces.ObjectAttrs, error) {
	attrs, err := x.client.Bucket(bucket).Object(object).Attrs(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) || errors.Is(err, storage.ErrBucketNotExist) {
			return nil, goerr.Wrap(types.ErrNotFound, "object not found",
				goerr.V("bucket", bucket),
				goerr.V("object", object),
			)
		}
		return nil, goerr.Wrap(err, "failed to get object attributes",
			goerr.V("bucket", bucket),
			goerr.V("object", object),
		)
	}

	return &interfaces.ObjectAttrs{
		Generation: attrs.Generation,
	}, nil
}

// NewReader implements interfaces.ObjectStorage.
func (x *Client) NewReader(ctx context.Context, bucket, object string) (io.ReadCloser, error) {
	r, err := x.client.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open object",
			goerr.V("bucket", bucket),
			goerr.V("object", object),
		)
	}
	return r, nil
}

func (x *Client) Close() error {
	if err := x.client.Close(); err != nil {
		return goerr.Wrap(err, "failed to close Cloud Storage client")
	}
	return nil
}
