package main

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/getsentry/sentry-go"
	"github.com/go-chi/chi/v5"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/lingo"
	"github.com/dmitrymomot/lingo/middlewares"
	"github.com/dmitrymomot/lingo/pkg/logger"
)

//go:embed locales
var locales embed.FS

type config struct {
	Address  string `env:"ADDRESS" envDefault:":8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	// FromDisk reads LINGO_DIR instead of the embedded locales.
	FromDisk bool `env:"LOCALES_FROM_DISK" envDefault:"false"`

	Lingo  lingo.Config
	Sentry logger.SentryConfig
}

func main() {
	cfg, err := env.ParseAs[config]()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.NewWithSentry(cfg.Sentry, logger.ParseLevel(cfg.LogLevel), middlewares.LanguageExtractor())

	catalog, err := loadCatalog(cfg, log)
	if err != nil {
		log.Error("failed to load catalog", slog.Any("error", err))
		exit(1)
	}

	if err := run(cfg.Address, router(catalog, log), log); err != nil {
		log.Error("application error", slog.Any("error", err))
		exit(1)
	}
	exit(0)
}

// exit flushes buffered Sentry events before the process ends.
// Flush is a no-op when Sentry was not initialized.
func exit(code int) {
	sentry.Flush(2 * time.Second)
	os.Exit(code)
}

func loadCatalog(cfg config, log *slog.Logger) (*lingo.Catalog, error) {
	missing := lingo.WithMissingMessageHandler(func(lang language.Tag, key string, err error) {
		log.Warn("untranslated message", slog.String("lang", lang.String()), slog.String("key", key), slog.Any("error", err))
	})

	if cfg.FromDisk {
		return lingo.LoadConfig(cfg.Lingo, lingo.WithLogger(log), missing)
	}

	sub, err := fs.Sub(locales, "locales")
	if err != nil {
		return nil, err
	}
	opts := append(cfg.Lingo.Options(), lingo.WithLogger(log), missing)
	return lingo.LoadFS(sub, cfg.Lingo.DefaultLanguage, opts...)
}

func router(catalog *lingo.Catalog, log *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(middlewares.Language(catalog, middlewares.WithContentLanguage()))
		r.Get("/", greet(log))
		r.Get("/hello", greet(log))
	})

	// Path prefix first, then the usual negotiation.
	r.Route("/{lang}", func(r chi.Router) {
		r.Use(middlewares.Language(catalog,
			middlewares.WithContentLanguage(),
			middlewares.WithLanguageSources(
				middlewares.FromURLParam("lang"),
				middlewares.FromCookie("lang"),
				middlewares.FromAcceptLanguage(),
			),
		))
		r.Get("/hello", greet(log))
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		tr := catalog.Translator(catalog.DefaultLanguage())
		http.Error(w, tr.T("errors.not_found"), http.StatusNotFound)
	})

	return r
}

// greet renders the welcome line and the inbox counter, e.g. /de/hello?name=Ada&unread=3.
func greet(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tr := middlewares.TranslatorFromContext(r.Context())

		name := r.URL.Query().Get("name")
		if name == "" {
			name = "Gopher"
		}
		unread, err := strconv.Atoi(r.URL.Query().Get("unread"))
		if err != nil {
			unread = 0
		}

		log.InfoContext(r.Context(), "greeting", slog.Int("unread", unread))

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintln(w, tr.T("welcome", lingo.Args{"Name": name}))
		fmt.Fprintln(w, tr.Tn("inbox", unread))
	}
}

func run(addr string, handler http.Handler, log *slog.Logger) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", slog.String("address", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	return server.Shutdown(shutdownCtx)
}
