package safe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/m-mizutani/monoconf/pkg/utils/logging"
)

// Close closes closer and logs a failure with the logger of ctx. A nil
// closer and io.EOF are ignored.
func Close(ctx context.Context, closer io.Closer) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil && !errors.Is(err, io.EOF) {
		logging.From(ctx).Warn("fail to close resource",
			slog.String("resource", fmt.Sprintf("%T", closer)),
			logging.ErrorAttr(err),
		)
	}
}
