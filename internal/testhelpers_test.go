package internal_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

var (
	enUS = language.MustParse("en-US")
	de   = language.German
	fr   = language.French
)

// writeTree creates files (slash paths relative to root) with the given content.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
}

// newTree returns a fresh temp dir populated with files.
func newTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	writeTree(t, root, files)
	return root
}

func symlink(t *testing.T, target, link string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(link), 0o755))
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}
}

// basicTree is a small catalog used by lookup tests.
var basicTree = map[string]string{
	"en-US/common.toml": `
hello = "Hello, {{.Name}}!"
plain = "Plain text"

[inbox]
one = "You have {{.PluralCount}} message"
other = "You have {{.PluralCount}} messages"

[menu]
save = "Save"
`,
	"en-US/errors/auth.yaml": `
denied: "Access denied"
only_one:
  one: "Exactly one"
`,
	"de.toml": `
hello = "Hallo, {{.Name}}!"

[inbox]
one = "Du hast {{.PluralCount}} Nachricht"
other = "Du hast {{.PluralCount}} Nachrichten"
`,
	"pt-BR.json":    `{"hello": "Olá, {{.Name}}!"}`,
	"README.md":     "not a resource",
	"shared/x.toml": `hello = "never loaded"`,
}
