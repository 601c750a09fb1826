// Package logger builds the process-wide structured logger.
package logger

import (
	"io"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry/v2"
)

// New builds a logger writing to w.
// Development: text format with Debug level.
// Production: JSON format with Info level.
// With a Sentry DSN, errors are also sent to Sentry. The returned flush
// function waits for buffered Sentry events and is safe to call always.
func New(w io.Writer, isDev bool, sentryDSN string) (*slog.Logger, func()) {
	var handlers []slog.Handler

	if isDev {
		handlers = append(handlers, slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	} else {
		handlers = append(handlers, slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	flush := func() {}
	if sentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              sentryDSN,
			TracesSampleRate: 1.0,
		})
		if err == nil {
			handlers = append(handlers, slogsentry.Option{Level: slog.LevelError}.NewSentryHandler())
			flush = func() { sentry.Flush(2 * time.Second) }
		}
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = slogmulti.Fanout(handlers...)
	} else {
		handler = handlers[0]
	}
	return slog.New(handler), flush
}

// Init builds the logger and installs it as the slog default.
func Init(w io.Writer, isDev bool, sentryDSN string) (*slog.Logger, func()) {
	log, flush := New(w, isDev, sentryDSN)
	slog.SetDefault(log)
	return log, flush
}
