package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/m-mizutani/monoconf/pkg/domain/types"
	"github.com/m-mizutani/monoconf/pkg/utils/logging"
)

const requestIDHeader = "X-Request-Id"

func preProcess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := types.NewRequestID()
		ctx := logging.WithRequest(r.Context(), reqID)
		logger := logging.From(ctx)

		w.Header().Set(requestIDHeader, string(reqID))
		lw := &accessRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK, // Default to 200 if WriteHeader is not called
		}

		requestedAt := time.Now()
		next.ServeHTTP(lw, r.WithContext(ctx))

		logger.Info("http access",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr),
			slog.Int("status_code", lw.statusCode),
			slog.Int("response_size", lw.size),
			slog.Int64("content_length", r.ContentLength),
			slog.String("content_type", r.Header.Get("Content-Type")),
			slog.String("user_agent", r.UserAgent()),
			slog.Duration("elapsed", time.Since(requestedAt)),
		)
	})
}

// accessRecorder keeps what the access log reports about the response
type accessRecorder struct {
	http.ResponseWriter
	statusCode int
	size       int
}

func (x *accessRecorder) WriteHeader(code int) {
	x.statusCode = code
	x.ResponseWriter.WriteHeader(code)
}

func (x *accessRecorder) Write(b []byte) (int, error) {
	n, err := x.ResponseWriter.Write(b)
	x.size += n
	return n, err
}
