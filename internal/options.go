package internal

import (
	"fmt"
	"log/slog"
	"runtime"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/lingo/pkg/logger"
)

// MessageFallback decides what happens when the bundle chosen for a lookup
// exists but lacks the requested key.
type MessageFallback int

const (
	// FallbackLanguageOnly falls back to the default language only when the
	// requested language has no bundle. A key missing from an existing bundle
	// is reported as a MissingMessageError.
	FallbackLanguageOnly MessageFallback = iota

	// FallbackDefaultMessages additionally retries a missing key in the
	// default language's bundle.
	FallbackDefaultMessages
)

func (f MessageFallback) String() string {
	switch f {
	case FallbackLanguageOnly:
		return "language"
	case FallbackDefaultMessages:
		return "messages"
	default:
		return fmt.Sprintf("MessageFallback(%d)", int(f))
	}
}

// ParseMessageFallback parses the names produced by MessageFallback.String.
func ParseMessageFallback(s string) (MessageFallback, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "language":
		return FallbackLanguageOnly, nil
	case "messages":
		return FallbackDefaultMessages, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFallback, s)
	}
}

// UnmarshalText lets env and flag parsers fill a MessageFallback field.
func (f *MessageFallback) UnmarshalText(text []byte) error {
	v, err := ParseMessageFallback(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// MissingMessageHandler is called by a Translator whenever a lookup fails.
type MissingMessageHandler func(lang language.Tag, key string, err error)

// Option configures a Catalog during Load.
type Option func(*options) error

type options struct {
	logger         *slog.Logger
	formats        Formats
	missingMessage MissingMessageHandler
	concurrency    int
	fallback       MessageFallback
}

func newOptions(opts ...Option) (*options, error) {
	o := &options{
		logger:      logger.NewNope(),
		formats:     DefaultFormats(),
		concurrency: runtime.GOMAXPROCS(0),
		fallback:    FallbackLanguageOnly,
	}

	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	return o, nil
}

// WithLogger sets the logger used while loading. Nil keeps the no-op default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) error {
		if l != nil {
			o.logger = l
		}
		return nil
	}
}

// WithFormat registers (or replaces) the decoder for a file extension.
// The extension may be given with or without the leading dot.
func WithFormat(ext string, unmarshal i18n.UnmarshalFunc) Option {
	return func(o *options) error {
		ext = normalizeExtension(ext)
		if ext == "" {
			return ErrEmptyExtension
		}
		if unmarshal == nil {
			return ErrNilUnmarshaler
		}
		o.formats[ext] = unmarshal
		return nil
	}
}

// WithFormats replaces the whole format registry.
func WithFormats(formats Formats) Option {
	return func(o *options) error {
		registry := make(Formats, len(formats))
		for ext, fn := range formats {
			ext = normalizeExtension(ext)
			if ext == "" {
				return ErrEmptyExtension
			}
			if fn == nil {
				return ErrNilUnmarshaler
			}
			registry[ext] = fn
		}
		o.formats = registry
		return nil
	}
}

// WithConcurrency bounds how many files of one language directory are
// compiled at the same time. Defaults to GOMAXPROCS.
func WithConcurrency(n int) Option {
	return func(o *options) error {
		if n < 1 {
			return ErrInvalidConcurrency
		}
		o.concurrency = n
		return nil
	}
}

// WithMessageFallback selects the missing-key policy.
func WithMessageFallback(f MessageFallback) Option {
	return func(o *options) error {
		if f != FallbackLanguageOnly && f != FallbackDefaultMessages {
			return fmt.Errorf("%w: %d", ErrUnknownFallback, int(f))
		}
		o.fallback = f
		return nil
	}
}

// WithMissingMessageHandler sets a hook invoked by Translator.T and
// Translator.Tn when a message cannot be rendered. Useful to surface
// untranslated keys during development.
func WithMissingMessageHandler(h MissingMessageHandler) Option {
	return func(o *options) error {
		o.missingMessage = h
		return nil
	}
}
