// Package lingo loads localized message catalogs from a directory tree and
// renders messages with automatic fallback to a default language.
//
// Messages are compiled with go-i18n, language identifiers are parsed with
// golang.org/x/text/language. A Catalog is built once by Load and is read-only
// afterwards, so a single value can be shared by every request handler.
//
// # Directory Layout
//
// Each immediate child of the root directory names one language:
//
//	locales/
//	    en-US/                 directory: every resource file below it, at any
//	        common.toml        depth, merges into the en-US bundle
//	        errors/
//	            auth.yaml
//	    de.toml                file: the whole de bundle
//	    pt-BR.json
//	    README.md              ignored: not a resource extension
//	    shared/                ignored: "shared" is not a language tag
//
// Resource files use the go-i18n message format in TOML, YAML or JSON:
//
//	# en-US/common.toml
//	hello = "Hello, {{.Name}}!"
//
//	[inbox]
//	one   = "You have {{.PluralCount}} message"
//	other = "You have {{.PluralCount}} messages"
//
// Names are canonicalized, so "en-us/" and "en-US.toml" name the same language.
// When that happens the entry listed last (lexical file-name order) replaces
// the earlier one entirely.
//
// # Basic Usage
//
//	catalog, err := lingo.Load("locales", "en-US")
//	if err != nil {
//		return err
//	}
//
//	msg, err := catalog.Message(language.German, "hello", lingo.Args{"Name": "Ada"})
//	// "Hallo, Ada!"
//
//	msg, err = catalog.PluralMessage(language.German, "inbox", 3, nil)
//	// "Du hast 3 Nachrichten"
//
// # Fallback
//
// A language without a bundle is served by the default language's bundle.
// A bundle that exists but lacks the key is not: the lookup fails with a
// *MissingMessageError naming the language that was consulted. Opt into
// retrying missing keys in the default bundle with
// WithMessageFallback(FallbackDefaultMessages).
//
// # Errors
//
// Load fails as a whole; no partially populated Catalog is returned:
//
//   - ErrInvalidLanguage: the default language does not parse
//   - ErrIO: the root or a top-level language entry cannot be read
//   - ErrTemplateCompile (*CompileError): malformed file, template or duplicate key
//
// Lookups fail per call:
//
//   - ErrNoDefaultBundle: neither the requested nor the default language was loaded
//   - ErrMissingMessage (*MissingMessageError): the key is not in the chosen bundle
//   - ErrFormat (*FormatError): a template argument or plural form is missing
//
// # Translator
//
// Templates usually want a string no matter what. A Translator binds a
// language and returns the key itself when rendering fails:
//
//	tr := catalog.Translator(language.MustParse("pt-BR"))
//	title := tr.T("page.title")
//	count := tr.Tn("inbox", 5)
//
// # HTTP
//
// The middlewares package negotiates the request language (query, cookie,
// Accept-Language) and stores a Translator in the request context.
//
// # Configuration
//
// Config carries env tags and can be parsed with ConfigFromEnv:
//
//	cfg, err := lingo.ConfigFromEnv() // LINGO_DIR, LINGO_DEFAULT_LANGUAGE, ...
//	catalog, err := lingo.LoadConfig(cfg, lingo.WithLogger(log))
package lingo
