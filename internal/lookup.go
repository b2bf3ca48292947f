package internal

import (
	"fmt"
	"slices"

	"golang.org/x/text/language"
)

// Message renders key in lang.
//
// If lang has no bundle the default language's bundle is used instead; if that
// is missing too the error wraps ErrNoDefaultBundle. A key absent from the
// chosen bundle yields a *MissingMessageError naming the language actually
// consulted. Rendering failures yield a *FormatError.
func (c *Catalog) Message(lang language.Tag, key string, args Args) (string, error) {
	return c.render(lang, key, nil, args)
}

// PluralMessage is Message with a plural count. count may be any integer,
// float or numeric string accepted by go-i18n.
func (c *Catalog) PluralMessage(lang language.Tag, key string, count any, args Args) (string, error) {
	return c.render(lang, key, count, args)
}

// MessageString is Message for a language given as text. A language that does
// not parse is treated like one without a bundle.
func (c *Catalog) MessageString(lang, key string, args Args) (string, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.Und
	}
	return c.render(tag, key, nil, args)
}

func (c *Catalog) render(lang language.Tag, key string, count any, args Args) (string, error) {
	b, err := c.resolve(lang)
	if err != nil {
		return "", err
	}

	m, ok := b.Message(key)
	if !ok && c.fallback == FallbackDefaultMessages && b.tag != c.defaultLang {
		if db, exists := c.bundles[c.defaultLang]; exists {
			b = db
			m, ok = db.Message(key)
		}
	}
	if !ok {
		return "", &MissingMessageError{Key: key, Language: b.tag}
	}

	return b.Format(m, count, args)
}

// resolve picks the bundle for lang, falling back to the default language.
func (c *Catalog) resolve(lang language.Tag) (*Bundle, error) {
	if b, ok := c.bundles[lang]; ok {
		return b, nil
	}
	if b, ok := c.bundles[c.defaultLang]; ok {
		return b, nil
	}
	return nil, fmt.Errorf("%w: requested %q, default %q", ErrNoDefaultBundle, lang, c.defaultLang)
}

// Bundle returns the bundle loaded for exactly lang, without fallback.
func (c *Catalog) Bundle(lang language.Tag) (*Bundle, bool) {
	b, ok := c.bundles[lang]
	return b, ok
}

// HasLanguage reports whether a bundle was loaded for lang.
func (c *Catalog) HasLanguage(lang language.Tag) bool {
	_, ok := c.bundles[lang]
	return ok
}

// Languages returns the loaded languages sorted by their canonical string.
func (c *Catalog) Languages() []language.Tag {
	return slices.Clone(c.languages)
}

// DefaultLanguage returns the fallback language given to Load.
func (c *Catalog) DefaultLanguage() language.Tag {
	return c.defaultLang
}

// MessageFallback returns the missing-key policy the catalog was loaded with.
func (c *Catalog) MessageFallback() MessageFallback {
	return c.fallback
}

// Match returns the loaded language that best serves the preference list,
// or the default language when nothing is close enough.
func (c *Catalog) Match(preferred ...language.Tag) language.Tag {
	tag, _ := c.Negotiate(preferred...)
	return tag
}

// Negotiate is Match that also reports whether a loaded language matched.
// When it did not, the default language is returned with false.
func (c *Catalog) Negotiate(preferred ...language.Tag) (language.Tag, bool) {
	if c.matcher == nil || len(preferred) == 0 {
		return c.defaultLang, false
	}
	_, idx, conf := c.matcher.Match(preferred...)
	if conf == language.No {
		return c.defaultLang, false
	}
	return c.matchTags[idx], true
}
