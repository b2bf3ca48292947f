package middlewares

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/lingo"
	"github.com/dmitrymomot/lingo/pkg/logger"
)

type languageKey struct{}

type translatorKey struct{}

// LanguageSource reads a language preference from a request. The value may be
// a single tag ("de") or an Accept-Language list ("de-CH,de;q=0.9,en;q=0.5").
type LanguageSource func(r *http.Request) (string, bool)

// LanguageConfig configures the Language middleware.
type LanguageConfig struct {
	Sources         []LanguageSource
	ContentLanguage bool
}

// LanguageOption configures LanguageConfig.
type LanguageOption func(*LanguageConfig)

// WithLanguageSources replaces the default source chain
// (query "lang", cookie "lang", Accept-Language header).
func WithLanguageSources(sources ...LanguageSource) LanguageOption {
	return func(cfg *LanguageConfig) {
		cfg.Sources = sources
	}
}

// WithContentLanguage sets the Content-Language response header to the
// resolved language.
func WithContentLanguage() LanguageOption {
	return func(cfg *LanguageConfig) {
		cfg.ContentLanguage = true
	}
}

// FromQuery reads a query parameter.
func FromQuery(name string) LanguageSource {
	return func(r *http.Request) (string, bool) {
		v := r.URL.Query().Get(name)
		return v, v != ""
	}
}

// FromCookie reads a plain cookie.
func FromCookie(name string) LanguageSource {
	return func(r *http.Request) (string, bool) {
		c, err := r.Cookie(name)
		if err != nil || c.Value == "" {
			return "", false
		}
		return c.Value, true
	}
}

// FromHeader reads a request header.
func FromHeader(name string) LanguageSource {
	return func(r *http.Request) (string, bool) {
		v := r.Header.Get(name)
		return v, v != ""
	}
}

// FromAcceptLanguage reads the Accept-Language header.
func FromAcceptLanguage() LanguageSource {
	return FromHeader("Accept-Language")
}

// FromURLParam reads a chi route parameter, e.g. "lang" in "/{lang}/docs".
func FromURLParam(name string) LanguageSource {
	return func(r *http.Request) (string, bool) {
		v := chi.URLParam(r, name)
		return v, v != ""
	}
}

// Language returns middleware that resolves the request language against the
// catalog and stores it, together with a Translator, in the request context.
//
// Sources are tried in order; the first one whose value matches a loaded
// language wins. Values that do not parse or match nothing are skipped. When
// no source matches, the catalog's default language is used.
func Language(catalog *lingo.Catalog, opts ...LanguageOption) func(http.Handler) http.Handler {
	if catalog == nil {
		panic("middlewares: catalog is not provided")
	}

	cfg := &LanguageConfig{
		Sources: []LanguageSource{
			FromQuery("lang"),
			FromCookie("lang"),
			FromAcceptLanguage(),
		},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := resolveLanguage(catalog, cfg.Sources, r)

			ctx := context.WithValue(r.Context(), languageKey{}, lang)
			ctx = context.WithValue(ctx, translatorKey{}, catalog.Translator(lang))

			if cfg.ContentLanguage {
				w.Header().Set("Content-Language", lang.String())
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func resolveLanguage(catalog *lingo.Catalog, sources []LanguageSource, r *http.Request) language.Tag {
	for _, src := range sources {
		v, ok := src(r)
		if !ok {
			continue
		}
		tags, _, err := language.ParseAcceptLanguage(v)
		if err != nil || len(tags) == 0 {
			continue
		}
		if tag, ok := catalog.Negotiate(tags...); ok {
			return tag
		}
	}
	return catalog.DefaultLanguage()
}

// LanguageFromContext returns the language resolved by the Language middleware.
func LanguageFromContext(ctx context.Context) (language.Tag, bool) {
	tag, ok := ctx.Value(languageKey{}).(language.Tag)
	return tag, ok
}

// TranslatorFromContext returns the Translator stored by the Language middleware,
// or nil when the middleware did not run.
func TranslatorFromContext(ctx context.Context) *lingo.Translator {
	if tr, ok := ctx.Value(translatorKey{}).(*lingo.Translator); ok {
		return tr
	}
	return nil
}

// LanguageExtractor returns a logger.ContextExtractor adding the resolved
// language as the "lang" attribute.
//
//	log := logger.New(middlewares.LanguageExtractor())
func LanguageExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if tag, ok := LanguageFromContext(ctx); ok {
			return slog.String("lang", tag.String()), true
		}
		return slog.Attr{}, false
	}
}
