package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig configures NewWithSentry. Embed it in an application config
// to read it from the environment.
type SentryConfig struct {
	DSN         string `env:"SENTRY_DSN"`
	Environment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
	// MinLevel is the lowest level forwarded to Sentry as a log entry.
	// Errors always become Sentry issues.
	MinLevel slog.Level `env:"SENTRY_MIN_LEVEL" envDefault:"WARN"`
}

// NewWithSentry returns a JSON logger on stdout at level that also forwards
// records to Sentry. With an empty DSN, or when the SDK fails to start, it
// logs to stdout only.
func NewWithSentry(cfg SentryConfig, level slog.Level, extractors ...ContextExtractor) *slog.Logger {
	stdout := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})

	if cfg.DSN == "" {
		return slog.New(NewLogHandlerDecorator(stdout, extractors...))
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		EnableLogs:  true,
	}); err != nil {
		slog.New(stdout).Error("failed to initialize sentry", slog.String("error", err.Error()))
		return slog.New(NewLogHandlerDecorator(stdout, extractors...))
	}

	return slog.New(NewLogHandlerDecorator(
		newMultiHandler(stdout, newSentryHandler(cfg.MinLevel)),
		extractors...,
	))
}

// sentryLevels splits the levels at or above minLevel into those that open
// issues (errors only) and those stored as logs.
func sentryLevels(minLevel slog.Level) (events, logs []slog.Level) {
	for _, l := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if l >= minLevel {
			logs = append(logs, l)
		}
	}
	return []slog.Level{slog.LevelError}, logs
}

func newSentryHandler(minLevel slog.Level) slog.Handler {
	events, logs := sentryLevels(minLevel)
	return sentryslog.Option{
		EventLevel: events,
		LogLevel:   logs,
	}.NewSentryHandler(context.Background())
}
