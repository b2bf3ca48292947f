package internal

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

var (
	// Load-time failures. Any of these aborts the whole load.
	ErrIO              = errors.New("lingo: i/o failure")
	ErrInvalidLanguage = errors.New("lingo: invalid language tag")
	ErrTemplateCompile = errors.New("lingo: template compile failure")

	// Lookup-time failures. The catalog stays usable after any of these.
	ErrNoDefaultBundle = errors.New("lingo: no bundle for the default language")
	ErrMissingMessage  = errors.New("lingo: message not found")
	ErrFormat          = errors.New("lingo: message format failure")

	// Option validation.
	ErrEmptyExtension     = errors.New("lingo: format extension cannot be empty")
	ErrNilUnmarshaler     = errors.New("lingo: unmarshal function cannot be nil")
	ErrInvalidConcurrency = errors.New("lingo: concurrency must be positive")
	ErrUnknownFallback    = errors.New("lingo: unknown message fallback policy")
)

// CompileError reports a resource file that could not be turned into messages.
// Diagnostics holds every problem found in the file, in file order where the
// underlying parser provides one.
type CompileError struct {
	Path        string
	Diagnostics []error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrTemplateCompile, e.Path, joinDiagnostics(e.Diagnostics))
}

func (e *CompileError) Is(target error) bool {
	return target == ErrTemplateCompile
}

func (e *CompileError) Unwrap() []error {
	return e.Diagnostics
}

// MissingMessageError reports a key absent from the bundle that served the lookup.
// Language is the bundle actually consulted, which differs from the requested
// language when the catalog fell back to its default.
type MissingMessageError struct {
	Key      string
	Language language.Tag
}

func (e *MissingMessageError) Error() string {
	return fmt.Sprintf("%s: %q in language %q", ErrMissingMessage, e.Key, e.Language)
}

func (e *MissingMessageError) Is(target error) bool {
	return target == ErrMissingMessage
}

// FormatError reports a message that was found but could not be rendered
// against the supplied arguments.
type FormatError struct {
	Key         string
	Language    language.Tag
	Diagnostics []error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: %q in language %q: %s", ErrFormat, e.Key, e.Language, joinDiagnostics(e.Diagnostics))
}

func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

func (e *FormatError) Unwrap() []error {
	return e.Diagnostics
}

func joinDiagnostics(diags []error) string {
	if len(diags) == 0 {
		return "unknown error"
	}
	parts := make([]string, 0, len(diags))
	for _, d := range diags {
		parts = append(parts, d.Error())
	}
	return strings.Join(parts, "; ")
}

func ioError(path string, err error) error {
	return fmt.Errorf("%w: %q: %w", ErrIO, path, err)
}
