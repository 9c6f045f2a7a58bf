package errutil

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/monoconf/pkg/utils/logging"
)

// HandleError reports err to Sentry with its goerr values as extras, then logs it.
// The rpc value, when present, also becomes a Sentry tag.
func HandleError(ctx context.Context, msg string, err error) {
	if err == nil {
		return
	}

	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		if reqID, ok := logging.RequestIDFrom(ctx); ok {
			scope.SetTag(logging.KeyRequestID, string(reqID))
		}
		if goErr := goerr.Unwrap(err); goErr != nil {
			for k, v := range goErr.Values() {
				scope.SetExtra(fmt.Sprintf("%v", k), v)
			}
			if rpc, ok := goErr.Values()[logging.KeyRPC]; ok {
				scope.SetTag(logging.KeyRPC, fmt.Sprintf("%v", rpc))
			}
		}
	})
	evID := hub.CaptureException(err)

	logging.From(ctx).Error(msg,
		logging.ErrorAttr(err),
		slog.Any("sentry.EventID", evID),
	)
}
