package internal_test

import (
	"path"
	"testing"
	"testing/fstest"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lingo/internal"
)

func TestCompileResource(t *testing.T) {
	t.Parallel()

	t.Run("sorts messages and keeps every plural form", func(t *testing.T) {
		t.Parallel()
		res, err := internal.CompileResource("en.toml", []byte(`
zeta = "Z"
alpha = "A"

[cats]
one = "{{.PluralCount}} cat"
other = "{{.PluralCount}} cats"
`), toml.Unmarshal)
		require.NoError(t, err)
		assert.Equal(t, "en.toml", res.Path)
		require.Len(t, res.Messages, 3)
		assert.Equal(t, "alpha", res.Messages[0].ID)
		assert.Equal(t, "cats", res.Messages[1].ID)
		assert.Equal(t, "{{.PluralCount}} cat", res.Messages[1].One)
		assert.Equal(t, "{{.PluralCount}} cats", res.Messages[1].Other)
		assert.Equal(t, "zeta", res.Messages[2].ID)
	})

	t.Run("collects every broken template", func(t *testing.T) {
		t.Parallel()
		_, err := internal.CompileResource("en.toml", []byte(`
a = "{{.Name"
b = "fine"
c = "{{if}}"
`), toml.Unmarshal)

		var ce *internal.CompileError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, "en.toml", ce.Path)
		require.Len(t, ce.Diagnostics, 2)
		assert.Contains(t, ce.Diagnostics[0].Error(), `message "a"`)
		assert.Contains(t, ce.Diagnostics[1].Error(), `message "c"`)
	})

	t.Run("rejects a message without content", func(t *testing.T) {
		t.Parallel()
		_, err := internal.CompileResource("en.toml", []byte(`empty = ""`), toml.Unmarshal)
		require.ErrorIs(t, err, internal.ErrTemplateCompile)
	})

	t.Run("rejects keys that flatten to the same ID", func(t *testing.T) {
		t.Parallel()
		for name, src := range map[string]string{
			"en.yaml": "a.b: dotted\na:\n  b: nested\n",
			"en.toml": "\"a.b\" = \"dotted\"\n\n[a]\nb = \"nested\"\n",
		} {
			unmarshal := internal.DefaultFormats()[path.Ext(name)]
			for range 20 {
				_, err := internal.CompileResource(name, []byte(src), unmarshal)

				var ce *internal.CompileError
				require.ErrorAs(t, err, &ce, name)
				require.Len(t, ce.Diagnostics, 1)
				assert.Contains(t, ce.Diagnostics[0].Error(), `duplicate message "a.b"`)
			}
		}
	})

	t.Run("treats comment-only documents as empty", func(t *testing.T) {
		t.Parallel()
		for name, src := range map[string]string{
			"todo.yaml": "# translations pending\n",
			"todo.toml": "# translations pending\n",
			"todo.json": "",
			"blank.yml": "\n  \n",
		} {
			res, err := internal.CompileResource(name, []byte(src), internal.DefaultFormats()[path.Ext(name)])
			require.NoError(t, err, name)
			assert.Equal(t, name, res.Path)
			assert.Empty(t, res.Messages, name)
		}
	})

	t.Run("reports decoder errors", func(t *testing.T) {
		t.Parallel()
		_, err := internal.CompileResource("en.toml", []byte(`= nope`), toml.Unmarshal)
		require.ErrorIs(t, err, internal.ErrTemplateCompile)
	})
}

func TestLoadResource(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"en.yml":   {Data: []byte("greeting:\n  hello: Hi\n")},
		"en.JSON":  {Data: []byte(`{"bye": "Bye"}`)},
		"en.ini":   {Data: []byte("x=y")},
		"bad.toml": {Data: []byte{'a', '=', '"', 0xc3, '"'}},
	}
	formats := internal.DefaultFormats()

	t.Run("decodes by extension", func(t *testing.T) {
		t.Parallel()
		res, err := internal.LoadResource(fsys, "en.yml", formats)
		require.NoError(t, err)
		require.Len(t, res.Messages, 1)
		assert.Equal(t, "greeting.hello", res.Messages[0].ID)

		res, err = internal.LoadResource(fsys, "en.JSON", formats)
		require.NoError(t, err)
		require.Len(t, res.Messages, 1)
		assert.Equal(t, "Bye", res.Messages[0].Other)
	})

	t.Run("rejects unregistered extensions", func(t *testing.T) {
		t.Parallel()
		_, err := internal.LoadResource(fsys, "en.ini", formats)
		require.ErrorIs(t, err, internal.ErrTemplateCompile)
	})

	t.Run("rejects invalid encoding", func(t *testing.T) {
		t.Parallel()
		_, err := internal.LoadResource(fsys, "bad.toml", formats)
		require.ErrorIs(t, err, internal.ErrIO)
	})

	t.Run("wraps read failures", func(t *testing.T) {
		t.Parallel()
		_, err := internal.LoadResource(fsys, "missing.toml", formats)
		require.ErrorIs(t, err, internal.ErrIO)
	})
}

func TestFormats(t *testing.T) {
	t.Parallel()

	f := internal.DefaultFormats()
	assert.Equal(t, []string{".json", ".toml", ".yaml", ".yml"}, f.Extensions())
	assert.True(t, f.Match("a/b/en.Yaml"))
	assert.False(t, f.Match("en"))
	assert.False(t, f.Match("en.md"))
	assert.Equal(t, "pt-BR", f.Stem("dir/pt-BR.json"))
}
