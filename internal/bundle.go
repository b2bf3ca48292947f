package internal

import (
	"fmt"
	"maps"
	"slices"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/nicksnyder/go-i18n/v2/i18n/template"
	"golang.org/x/text/language"
)

// Args holds the named arguments a message template is rendered against.
type Args map[string]any

// pluralCountArg is the template field go-i18n uses for the plural count.
const pluralCountArg = "PluralCount"

// formatParser fails on template fields missing from Args instead of
// rendering "<no value>".
var formatParser = &template.TextParser{Option: "missingkey=error"}

// Bundle is the compiled set of messages for exactly one language.
// It is built during Load and never modified afterwards.
type Bundle struct {
	tag       language.Tag
	store     *i18n.Bundle
	localizer *i18n.Localizer
	messages  map[string]*i18n.Message
}

func newBundle(tag language.Tag) *Bundle {
	store := i18n.NewBundle(tag)
	return &Bundle{
		tag:       tag,
		store:     store,
		localizer: i18n.NewLocalizer(store, tag.String()),
		messages:  make(map[string]*i18n.Message),
	}
}

// add merges a compiled resource into the bundle. A message ID already
// defined by an earlier resource is a compile error for the later one.
func (b *Bundle) add(res *Resource) error {
	var diags []error
	for _, m := range res.Messages {
		if _, exists := b.messages[m.ID]; exists {
			diags = append(diags, fmt.Errorf("duplicate message %q", m.ID))
		}
	}
	if len(diags) > 0 {
		return &CompileError{Path: res.Path, Diagnostics: diags}
	}

	if err := b.store.AddMessages(b.tag, res.Messages...); err != nil {
		return &CompileError{Path: res.Path, Diagnostics: []error{err}}
	}

	for _, m := range res.Messages {
		b.messages[m.ID] = m
	}
	return nil
}

// Tag returns the bundle's language.
func (b *Bundle) Tag() language.Tag {
	return b.tag
}

// Message returns the definition stored under key.
func (b *Bundle) Message(key string) (*i18n.Message, bool) {
	m, ok := b.messages[key]
	return m, ok
}

// MessageIDs returns every message key of the bundle in sorted order.
func (b *Bundle) MessageIDs() []string {
	return slices.Sorted(maps.Keys(b.messages))
}

// Len returns the number of messages in the bundle.
func (b *Bundle) Len() int {
	return len(b.messages)
}

// Format renders m against args. A non-nil count selects the CLDR plural form
// and is also available to the template as .PluralCount unless args sets it.
// Every call renders from the compiled template; nothing is cached.
func (b *Bundle) Format(m *i18n.Message, count any, args Args) (string, error) {
	data := make(map[string]any, len(args)+1)
	maps.Copy(data, args)

	cfg := &i18n.LocalizeConfig{
		MessageID:      m.ID,
		TemplateData:   data,
		TemplateParser: formatParser,
	}
	if count != nil {
		cfg.PluralCount = count
		if _, ok := data[pluralCountArg]; !ok {
			data[pluralCountArg] = count
		}
	}

	out, err := b.localizer.Localize(cfg)
	if err != nil {
		return "", &FormatError{Key: m.ID, Language: b.tag, Diagnostics: []error{err}}
	}
	return out, nil
}
