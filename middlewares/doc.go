// Package middlewares provides net/http middleware for lingo catalogs.
//
// The middleware has the standard func(http.Handler) http.Handler shape, so it
// plugs into chi, http.ServeMux wrappers or any other router.
//
// # Language
//
// Language resolves the request language and stores it with a Translator in
// the request context:
//
//	r := chi.NewRouter()
//	r.Use(middlewares.Language(catalog, middlewares.WithContentLanguage()))
//	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
//	    tr := middlewares.TranslatorFromContext(r.Context())
//	    fmt.Fprintln(w, tr.T("hello"))
//	})
//
// By default the language is taken from the "lang" query parameter, then the
// "lang" cookie, then the Accept-Language header. Each candidate is negotiated
// against the loaded languages, so "de-CH" is served by a "de" bundle. Override
// the chain with WithLanguageSources:
//
//	r.Route("/{lang}", func(r chi.Router) {
//	    r.Use(middlewares.Language(catalog, middlewares.WithLanguageSources(
//	        middlewares.FromURLParam("lang"),
//	        middlewares.FromAcceptLanguage(),
//	    )))
//	})
//
// Use LanguageExtractor with the logger package to tag request logs:
//
//	log := logger.New(middlewares.LanguageExtractor())
package middlewares
