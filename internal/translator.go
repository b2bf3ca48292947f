package internal

import (
	"maps"

	"golang.org/x/text/language"
)

// Translator binds a Catalog to one requested language.
// T and Tn never fail: they return the key itself when a message cannot be
// rendered, which suits templates that must always print something.
type Translator struct {
	catalog  *Catalog
	language language.Tag
}

// Translator returns a Translator for lang.
func (c *Catalog) Translator(lang language.Tag) *Translator {
	return &Translator{catalog: c, language: lang}
}

// T renders key, merging args left to right. On failure the catalog's
// missing-message handler is called and key is returned.
func (t *Translator) T(key string, args ...Args) string {
	out, err := t.catalog.Message(t.language, key, mergeArgs(args))
	if err != nil {
		return t.miss(key, err)
	}
	return out
}

// Tn renders the plural form of key selected by count.
func (t *Translator) Tn(key string, count any, args ...Args) string {
	out, err := t.catalog.PluralMessage(t.language, key, count, mergeArgs(args))
	if err != nil {
		return t.miss(key, err)
	}
	return out
}

// Message is Catalog.Message for the translator's language.
func (t *Translator) Message(key string, args Args) (string, error) {
	return t.catalog.Message(t.language, key, args)
}

// PluralMessage is Catalog.PluralMessage for the translator's language.
func (t *Translator) PluralMessage(key string, count any, args Args) (string, error) {
	return t.catalog.PluralMessage(t.language, key, count, args)
}

// Language returns the requested language. The bundle actually used may be
// the catalog default when this language was not loaded.
func (t *Translator) Language() language.Tag {
	return t.language
}

// Catalog returns the underlying catalog.
func (t *Translator) Catalog() *Catalog {
	return t.catalog
}

func (t *Translator) miss(key string, err error) string {
	if h := t.catalog.missingMessage; h != nil {
		h(t.language, key, err)
	}
	return key
}

func mergeArgs(args []Args) Args {
	switch len(args) {
	case 0:
		return nil
	case 1:
		return args[0]
	}
	merged := make(Args)
	for _, a := range args {
		maps.Copy(merged, a)
	}
	return merged
}
