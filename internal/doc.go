// Package internal implements the lingo localization catalog.
//
// This package is internal and should not be used directly. Import
// "github.com/dmitrymomot/lingo" instead, which re-exports the public API.
//
// # Components
//
//   - Scan: enumerates the resource files below one top-level entry
//   - LoadResource / CompileResource: read one file and compile it with go-i18n
//   - Bundle: the merged, immutable set of messages of one language
//   - Catalog: the language → Bundle index plus the default language
//   - Translator: a Catalog bound to one language with never-failing helpers
//
// # Load
//
// Load lists the root directory once. Each child whose stem parses as a
// language tag becomes one Bundle: a file is compiled directly, a directory is
// scanned recursively and all of its files merge into the same Bundle. Files of
// one directory are compiled concurrently (see WithConcurrency) and merged in
// sorted path order. Two children that canonicalize to the same tag replace
// each other in directory-listing order, which fs.ReadDir keeps lexical.
//
// # Lookup
//
// Lookup resolves the bundle first (requested language, then the default
// language) and only then the key. With FallbackLanguageOnly a bundle that
// exists but lacks the key reports MissingMessageError; FallbackDefaultMessages
// retries the key in the default bundle.
//
// # Failure policy
//
//   - default language that does not parse: ErrInvalidLanguage, before any I/O
//   - unreadable root, or unreadable top-level entry: ErrIO
//   - root child whose name is not a language: skipped
//   - unreadable nested directory, broken link or link cycle: skipped
//   - malformed file, malformed template, duplicate key: *CompileError
package internal
