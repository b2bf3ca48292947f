package internal

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/nicksnyder/go-i18n/v2/i18n/template"
)

var errInvalidEncoding = errors.New("file is not valid UTF-8")

// compileParser is go-i18n's own text/template parser. Using it at load time
// guarantees that a template accepted here will also parse at format time.
var compileParser = &template.TextParser{}

// Resource is one compiled resource file: every message it defines, sorted by ID.
type Resource struct {
	Path     string
	Messages []*i18n.Message
}

// LoadResource reads name from fsys and compiles it with the decoder registered
// for its extension. Read failures wrap ErrIO; syntax problems are reported as a
// *CompileError listing every diagnostic found in the file.
func LoadResource(fsys fs.FS, name string, formats Formats) (*Resource, error) {
	unmarshal, ok := formats.lookup(name)
	if !ok {
		return nil, &CompileError{
			Path:        name,
			Diagnostics: []error{fmt.Errorf("no format registered for extension %q", path.Ext(name))},
		}
	}

	buf, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, ioError(name, err)
	}
	if !utf8.Valid(buf) {
		return nil, ioError(name, errInvalidEncoding)
	}

	return CompileResource(name, buf, unmarshal)
}

// CompileResource turns raw file content into a Resource.
// The format segment handed to go-i18n is taken from name's extension.
func CompileResource(name string, buf []byte, unmarshal i18n.UnmarshalFunc) (*Resource, error) {
	// An empty file, or a document holding only comments, defines nothing.
	if len(bytes.TrimSpace(buf)) == 0 {
		return &Resource{Path: name}, nil
	}
	var raw any
	if err := unmarshal(buf, &raw); err != nil {
		return nil, &CompileError{Path: name, Diagnostics: []error{err}}
	}
	if raw == nil {
		return &Resource{Path: name}, nil
	}

	format := strings.TrimPrefix(path.Ext(name), ".")
	file, err := i18n.ParseMessageFileBytes(buf, name, map[string]i18n.UnmarshalFunc{format: unmarshal})
	if err != nil {
		return nil, &CompileError{Path: name, Diagnostics: []error{err}}
	}

	messages := file.Messages
	slices.SortFunc(messages, func(a, b *i18n.Message) int {
		return cmp.Compare(a.ID, b.ID)
	})

	var diags []error
	for i, m := range messages {
		// "a.b" and a nested "b" under "a" flatten to the same ID.
		if i > 0 && messages[i-1].ID == m.ID {
			diags = append(diags, fmt.Errorf("duplicate message %q", m.ID))
			continue
		}
		diags = append(diags, checkMessage(m)...)
	}
	if len(diags) > 0 {
		return nil, &CompileError{Path: name, Diagnostics: diags}
	}

	return &Resource{Path: name, Messages: messages}, nil
}

// checkMessage parses every plural form of m and returns one diagnostic per
// form that does not parse. A message without any form is also rejected:
// go-i18n cannot render it.
func checkMessage(m *i18n.Message) []error {
	forms := []struct {
		name string
		src  string
	}{
		{"zero", m.Zero},
		{"one", m.One},
		{"two", m.Two},
		{"few", m.Few},
		{"many", m.Many},
		{"other", m.Other},
	}

	if m.ID == "" {
		return []error{errors.New("message without an ID")}
	}

	var diags []error
	empty := true
	for _, f := range forms {
		if f.src == "" {
			continue
		}
		empty = false
		if _, err := compileParser.Parse(f.src, m.LeftDelim, m.RightDelim); err != nil {
			diags = append(diags, fmt.Errorf("message %q, form %q: %w", m.ID, f.name, err))
		}
	}
	if empty {
		diags = append(diags, fmt.Errorf("message %q has no content", m.ID))
	}
	return diags
}
