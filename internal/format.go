package internal

import (
	"encoding/json"
	"maps"
	"path"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"gopkg.in/yaml.v3"
)

// Formats maps a resource file extension to the function that decodes it.
// Keys are lower-case and carry the leading dot (".toml").
type Formats map[string]i18n.UnmarshalFunc

// DefaultFormats returns the registry used when no format option is given:
// TOML, YAML (.yaml and .yml) and JSON.
func DefaultFormats() Formats {
	return Formats{
		".toml": toml.Unmarshal,
		".yaml": yaml.Unmarshal,
		".yml":  yaml.Unmarshal,
		".json": json.Unmarshal,
	}
}

// Match reports whether name carries a registered extension.
// Comparison is case-insensitive so "en.TOML" and "en.toml" are both resources.
func (f Formats) Match(name string) bool {
	_, ok := f.lookup(name)
	return ok
}

// Stem returns name without its directory and extension.
func (f Formats) Stem(name string) string {
	base := path.Base(name)
	return strings.TrimSuffix(base, path.Ext(base))
}

// Extensions returns the registered extensions in sorted order.
func (f Formats) Extensions() []string {
	return slices.Sorted(maps.Keys(f))
}

func (f Formats) lookup(name string) (i18n.UnmarshalFunc, bool) {
	ext := strings.ToLower(path.Ext(name))
	if ext == "" {
		return nil, false
	}
	fn, ok := f[ext]
	return fn, ok
}

func normalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
