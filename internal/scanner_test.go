package internal_test

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lingo/internal"
	"github.com/dmitrymomot/lingo/pkg/logger"
)

func TestScan(t *testing.T) {
	t.Parallel()

	formats := internal.DefaultFormats()
	fsys := fstest.MapFS{
		"en/z.toml":          {Data: []byte("")},
		"en/a.yaml":          {Data: []byte("")},
		"en/deep/er/b.json":  {Data: []byte("")},
		"en/deep/notes.md":   {Data: []byte("")},
		"en/UPPER.TOML":      {Data: []byte("")},
		"de.toml":            {Data: []byte("")},
		"de.txt":             {Data: []byte("")},
		"empty/.placeholder": {Data: []byte("")},
	}

	t.Run("walks directories in sorted order", func(t *testing.T) {
		t.Parallel()
		files, err := internal.Scan(fsys, "en", formats, logger.NewNope())
		require.NoError(t, err)
		assert.Equal(t, []string{"en/UPPER.TOML", "en/a.yaml", "en/deep/er/b.json", "en/z.toml"}, files)
	})

	t.Run("returns a resource file itself", func(t *testing.T) {
		t.Parallel()
		files, err := internal.Scan(fsys, "de.toml", formats, logger.NewNope())
		require.NoError(t, err)
		assert.Equal(t, []string{"de.toml"}, files)
	})

	t.Run("ignores unregistered files", func(t *testing.T) {
		t.Parallel()
		files, err := internal.Scan(fsys, "de.txt", formats, logger.NewNope())
		require.NoError(t, err)
		assert.Empty(t, files)

		files, err = internal.Scan(fsys, "empty", formats, logger.NewNope())
		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("fails on a missing entry", func(t *testing.T) {
		t.Parallel()
		_, err := internal.Scan(fsys, "fr", formats, logger.NewNope())
		require.ErrorIs(t, err, internal.ErrIO)
	})
}

func TestScanCycle(t *testing.T) {
	t.Parallel()

	root := newTree(t, map[string]string{
		"en/a.toml":     `a = "A"`,
		"en/sub/b.toml": `b = "B"`,
	})
	symlink(t, filepath.Join(root, "en"), filepath.Join(root, "en", "sub", "up"))
	symlink(t, filepath.Join(root, "en", "sub"), filepath.Join(root, "en", "side"))

	files, err := internal.Scan(os.DirFS(root), "en", internal.DefaultFormats(), logger.NewNope())
	require.NoError(t, err)
	// "side" is a second path to "sub", not a cycle, so its files appear twice.
	assert.Equal(t, []string{"en/a.toml", "en/side/b.toml", "en/sub/b.toml"}, files)
}
