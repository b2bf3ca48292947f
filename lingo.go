package lingo

import (
	"io/fs"
	"log/slog"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/dmitrymomot/lingo/internal"
)

// Type aliases - public API
type (
	// Catalog maps loaded languages to their bundles plus a default language.
	// It is immutable after Load and safe for concurrent use.
	Catalog = internal.Catalog

	// Bundle is the compiled set of messages of one language.
	Bundle = internal.Bundle

	// Translator binds a Catalog to one language.
	Translator = internal.Translator

	// Args holds named template arguments.
	Args = internal.Args

	// Option configures Load.
	Option = internal.Option

	// Formats maps resource file extensions to decoders.
	Formats = internal.Formats

	// MessageFallback selects the missing-key policy.
	MessageFallback = internal.MessageFallback

	// MissingMessageHandler observes failed Translator lookups.
	MissingMessageHandler = internal.MissingMessageHandler

	// Resource is one compiled resource file.
	Resource = internal.Resource

	// CompileError reports a malformed resource file.
	CompileError = internal.CompileError

	// MissingMessageError reports a key absent from the bundle used for a lookup.
	MissingMessageError = internal.MissingMessageError

	// FormatError reports a message that failed to render.
	FormatError = internal.FormatError
)

const (
	// FallbackLanguageOnly substitutes the default bundle only for languages
	// that were not loaded. This is the default policy.
	FallbackLanguageOnly = internal.FallbackLanguageOnly

	// FallbackDefaultMessages also retries missing keys in the default bundle.
	FallbackDefaultMessages = internal.FallbackDefaultMessages
)

// Constructors

// Load builds a Catalog from the directory tree at root.
//
// Example layout:
//
//	locales/
//	    en-US/
//	        common.toml
//	        errors/validation.yaml
//	    de.toml
//	    pt-BR.json
//
// Example:
//
//	catalog, err := lingo.Load("locales", "en-US",
//	    lingo.WithLogger(log),
//	)
func Load(root, defaultLanguage string, opts ...Option) (*Catalog, error) {
	return internal.Load(root, defaultLanguage, opts...)
}

// LoadFS builds a Catalog from an fs.FS, typically an embed.FS.
//
// Example:
//
//	//go:embed locales
//	var localesFS embed.FS
//
//	sub, _ := fs.Sub(localesFS, "locales")
//	catalog, err := lingo.LoadFS(sub, "en-US")
func LoadFS(fsys fs.FS, defaultLanguage string, opts ...Option) (*Catalog, error) {
	return internal.LoadFS(fsys, defaultLanguage, opts...)
}

// DefaultFormats returns the built-in format registry: .toml, .yaml, .yml and .json.
func DefaultFormats() Formats {
	return internal.DefaultFormats()
}

// ParseMessageFallback parses "language" or "messages".
func ParseMessageFallback(s string) (MessageFallback, error) {
	return internal.ParseMessageFallback(s)
}

// Load options

// WithLogger sets the logger used during Load.
// Skipped entries are logged at debug level, replaced bundles at warn level.
func WithLogger(l *slog.Logger) Option {
	return internal.WithLogger(l)
}

// WithFormat registers a decoder for a file extension.
//
// Example:
//
//	lingo.Load("locales", "en", lingo.WithFormat("ini", ini.Unmarshal))
func WithFormat(ext string, unmarshal i18n.UnmarshalFunc) Option {
	return internal.WithFormat(ext, unmarshal)
}

// WithFormats replaces the format registry entirely.
func WithFormats(formats Formats) Option {
	return internal.WithFormats(formats)
}

// WithConcurrency bounds parallel compilation of files within one language directory.
func WithConcurrency(n int) Option {
	return internal.WithConcurrency(n)
}

// WithMessageFallback selects the missing-key policy.
func WithMessageFallback(f MessageFallback) Option {
	return internal.WithMessageFallback(f)
}

// WithMissingMessageHandler sets the hook called when Translator.T or
// Translator.Tn falls back to printing the key.
func WithMissingMessageHandler(h MissingMessageHandler) Option {
	return internal.WithMissingMessageHandler(h)
}
