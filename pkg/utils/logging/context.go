package logging

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/monoconf/pkg/domain/types"
)

type ctxLoggerKey struct{}

// With returns a new context with logger
func With(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey{}, logger)
}

// From returns logger from context. If logger is not set, return default logger
func From(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxLoggerKey{}).(*slog.Logger); ok {
		return l
	}
	return defaultLogger
}

type ctxRequestIDKey struct{}

// WithRequest binds id to ctx. The logger of the returned context carries
// the request_id attribute.
func WithRequest(ctx context.Context, id types.RequestID) context.Context {
	ctx = context.WithValue(ctx, ctxRequestIDKey{}, id)
	return With(ctx, From(ctx).With(RequestIDAttr(id)))
}

// RequestIDFrom returns the request ID bound by WithRequest
func RequestIDFrom(ctx context.Context) (types.RequestID, bool) {
	id, ok := ctx.Value(ctxRequestIDKey{}).(types.RequestID)
	return id, ok
}
