package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . ObjectStorage

import (
	"context"
	"io"
)

// ObjectAttrs is the subset of object metadata used to detect a changed document
type ObjectAttrs struct {
	Generation int64
}

type ObjectStorage interface {
	Attrs(ctx context.Context, bucket, object string) (*ObjectAttrs, error)
	NewReader(ctx context.Context, bucket, object string) (io.ReadCloser, error)
}
