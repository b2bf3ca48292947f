package internal_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/lingo/internal"
)

type missRecorder struct {
	mu     sync.Mutex
	misses []string
}

func (r *missRecorder) handle(lang language.Tag, key string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.misses = append(r.misses, lang.String()+":"+key)
}

func (r *missRecorder) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.misses...)
}

func TestTranslator(t *testing.T) {
	t.Parallel()

	t.Run("renders messages", func(t *testing.T) {
		t.Parallel()
		tr := loadBasic(t).Translator(de)

		assert.Equal(t, de, tr.Language())
		assert.Equal(t, "Hallo, Ada!", tr.T("hello", internal.Args{"Name": "Ada"}))
		assert.Equal(t, "Du hast 2 Nachrichten", tr.Tn("inbox", 2))
	})

	t.Run("merges argument maps left to right", func(t *testing.T) {
		t.Parallel()
		tr := loadBasic(t).Translator(enUS)

		got := tr.T("hello", internal.Args{"Name": "Ada"}, internal.Args{"Name": "Grace"})
		assert.Equal(t, "Hello, Grace!", got)
	})

	t.Run("returns the key and reports failures", func(t *testing.T) {
		t.Parallel()
		rec := &missRecorder{}
		c := loadBasic(t, internal.WithMissingMessageHandler(rec.handle))
		tr := c.Translator(de)

		assert.Equal(t, "plain", tr.T("plain"))
		assert.Equal(t, "hello", tr.T("hello"), "missing argument")
		assert.Equal(t, "only_one", c.Translator(enUS).Tn("only_one", 4))

		assert.Equal(t, []string{"de:plain", "de:hello", "en-US:only_one"}, rec.all())
	})

	t.Run("works without a handler", func(t *testing.T) {
		t.Parallel()
		tr := loadBasic(t).Translator(de)
		assert.Equal(t, "missing.key", tr.T("missing.key"))
	})

	t.Run("exposes the error through Message", func(t *testing.T) {
		t.Parallel()
		c := loadBasic(t)
		tr := c.Translator(de)

		_, err := tr.Message("plain", nil)
		require.ErrorIs(t, err, internal.ErrMissingMessage)
		assert.Same(t, c, tr.Catalog())

		_, err = c.Translator(enUS).PluralMessage("only_one", 9, nil)
		require.ErrorIs(t, err, internal.ErrFormat)

		got, err := tr.PluralMessage("inbox", 1, nil)
		require.NoError(t, err)
		assert.Equal(t, "Du hast 1 Nachricht", got)
	})

	t.Run("is safe for concurrent use", func(t *testing.T) {
		t.Parallel()
		tr := loadBasic(t).Translator(enUS)

		var wg sync.WaitGroup
		for i := range 16 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.Equal(t, "Save", tr.T("menu.save"))
				assert.NotEmpty(t, tr.Tn("inbox", i))
			}()
		}
		wg.Wait()
	})
}
