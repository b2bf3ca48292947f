package lingo

import "github.com/dmitrymomot/lingo/internal"

// Errors returned by Load.
var (
	ErrIO              = internal.ErrIO
	ErrInvalidLanguage = internal.ErrInvalidLanguage
	ErrTemplateCompile = internal.ErrTemplateCompile
)

// Errors returned by lookups. They never invalidate the Catalog.
var (
	ErrNoDefaultBundle = internal.ErrNoDefaultBundle
	ErrMissingMessage  = internal.ErrMissingMessage
	ErrFormat          = internal.ErrFormat
)

// Option validation errors.
var (
	ErrEmptyExtension     = internal.ErrEmptyExtension
	ErrNilUnmarshaler     = internal.ErrNilUnmarshaler
	ErrInvalidConcurrency = internal.ErrInvalidConcurrency
	ErrUnknownFallback    = internal.ErrUnknownFallback
)
