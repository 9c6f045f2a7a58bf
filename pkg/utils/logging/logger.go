package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/m-mizutani/clog"
	"github.com/m-mizutani/clog/hooks"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/masq"
	"github.com/m-mizutani/monoconf/pkg/domain/types"
)

var defaultLogger = slog.New(slog.NewTextHandler(os.Stdout, nil))

func init() {
	_ = Configure("text", "info", "stdout")
}

// Default returns the process wide logger
func Default() *slog.Logger {
	return defaultLogger
}

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Configure replaces the default logger. output is "stdout" (or "-"),
// "stderr" or a file path.
func Configure(format, level, output string) error {
	w, err := openOutput(output)
	if err != nil {
		return err
	}
	return ConfigureWriter(format, level, w)
}

// ConfigureWriter replaces the default logger with one writing to w
func ConfigureWriter(format, level string, w io.Writer) error {
	lv, ok := levels[level]
	if !ok {
		return goerr.Wrap(types.ErrInvalidOption, "invalid log level", goerr.V("value", level))
	}

	handler, err := newHandler(format, lv, w)
	if err != nil {
		return err
	}
	defaultLogger = slog.New(handler)
	return nil
}

func openOutput(output string) (io.Writer, error) {
	switch output {
	case "stdout", "-":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	}

	fd, err := os.Create(filepath.Clean(output))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open log file", goerr.V("path", output))
	}
	return fd, nil
}

// redact hides Sentry DSNs and `masq:"secret"` fields in every handler
func redact() func(groups []string, a slog.Attr) slog.Attr {
	return masq.New(
		masq.WithTag("secret"),
		masq.WithType[types.SentryDSN](masq.MaskWithSymbol('*', 16)),
	)
}

func newHandler(format string, level slog.Level, w io.Writer) (slog.Handler, error) {
	switch format {
	case "text":
		return clog.New(
			clog.WithWriter(w),
			clog.WithLevel(level),
			clog.WithSource(true),
			clog.WithColorMap(&clog.ColorMap{
				Level: map[slog.Level]*color.Color{
					slog.LevelDebug: color.New(color.FgGreen, color.Bold),
					slog.LevelInfo:  color.New(color.FgCyan, color.Bold),
					slog.LevelWarn:  color.New(color.FgYellow, color.Bold),
					slog.LevelError: color.New(color.FgRed, color.Bold),
				},
				LevelDefault: color.New(color.FgBlue, color.Bold),
				Time:         color.New(color.FgWhite),
				Message:      color.New(color.FgHiWhite),
				AttrKey:      color.New(color.FgHiCyan),
				AttrValue:    color.New(color.FgHiWhite),
			}),
			clog.WithAttrHook(hooks.GoErr()),
			clog.WithReplaceAttr(redact()),
		), nil

	case "json":
		return slog.NewJSONHandler(w, &slog.HandlerOptions{
			AddSource:   true,
			Level:       level,
			ReplaceAttr: redact(),
		}), nil

	default:
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid log format, should be 'json' or 'text'", goerr.V("value", format))
	}
}
