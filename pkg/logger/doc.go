// Package logger provides log/slog constructors with context-based attribute injection.
//
// # Basic Usage
//
//	log := logger.New()
//	log.Info("catalog loaded", slog.Int("languages", 3))
//
// Pick the level from configuration with ParseLevel:
//
//	log := logger.NewWithLevel(logger.ParseLevel(os.Getenv("LOG_LEVEL")))
//
// # Context Extractors
//
// A ContextExtractor turns a context value into a log attribute. Extractors run
// on every log call, so request-scoped values are picked up as they change:
//
//	log := logger.New(middlewares.LanguageExtractor())
//	log.InfoContext(r.Context(), "page rendered")
//	// {"level":"INFO","msg":"page rendered","lang":"de-DE"}
//
// Return false from an extractor to leave the attribute out for that record.
//
// # Sentry
//
// NewWithSentry logs JSON to stdout and forwards records to Sentry: errors
// become issues, records at or above SentryConfig.MinLevel are stored as logs.
// With an empty DSN it logs to stdout only, so local runs need no setup:
//
//	log := logger.NewWithSentry(cfg.Sentry, slog.LevelInfo, middlewares.LanguageExtractor())
//	defer sentry.Flush(2 * time.Second)
//
// # Silent Logger
//
// NewNope discards everything. It is the default logger of a lingo Catalog.
package logger
