package internal

import (
	"cmp"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"slices"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
)

// Catalog maps each loaded language to its Bundle and remembers the default
// language. It is read-only after Load and safe for concurrent lookups.
type Catalog struct {
	bundles        map[language.Tag]*Bundle
	defaultLang    language.Tag
	languages      []language.Tag
	matchTags      []language.Tag
	matcher        language.Matcher
	missingMessage MissingMessageHandler
	fallback       MessageFallback
}

// Load builds a Catalog from the directory tree at root.
//
// The immediate children of root name the languages: a file "<tag>.<ext>" or
// a directory "<tag>" holding resource files at any depth. Children whose name
// is not a valid language tag, and files with an unregistered extension, are
// ignored. defaultLanguage is validated before the filesystem is touched.
// Any read or compile failure aborts the load and no Catalog is returned.
func Load(root, defaultLanguage string, opts ...Option) (*Catalog, error) {
	return load(os.DirFS(root), root, defaultLanguage, opts)
}

// LoadFS is Load over an fs.FS whose root holds the language entries.
// It accepts embed.FS, os.DirFS or any other read-only filesystem.
func LoadFS(fsys fs.FS, defaultLanguage string, opts ...Option) (*Catalog, error) {
	return load(fsys, ".", defaultLanguage, opts)
}

func load(fsys fs.FS, root, defaultLanguage string, opts []Option) (*Catalog, error) {
	defaultTag, err := language.Parse(defaultLanguage)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidLanguage, defaultLanguage, err)
	}

	o, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, ioError(root, err)
	}

	l := &loader{fsys: fsys, opts: o}
	bundles := make(map[language.Tag]*Bundle)
	sources := make(map[language.Tag]string)

	// fs.ReadDir sorts by file name, so duplicate tags resolve the same way on every run.
	for _, entry := range entries {
		tag, isDir, ok := l.candidate(entry)
		if !ok {
			continue
		}

		b, err := l.bundle(entry.Name(), tag, isDir)
		if err != nil {
			return nil, err
		}

		if prev, exists := sources[tag]; exists {
			o.logger.Warn("language bundle replaced",
				slog.String("language", tag.String()),
				slog.String("previous", prev),
				slog.String("source", entry.Name()),
			)
		}
		bundles[tag] = b
		sources[tag] = entry.Name()
	}

	if _, ok := bundles[defaultTag]; !ok {
		o.logger.Warn("default language has no bundle", slog.String("language", defaultTag.String()))
	}

	c := newCatalog(bundles, defaultTag, o)
	o.logger.Info("localization catalog loaded",
		slog.String("root", root),
		slog.String("default", defaultTag.String()),
		slog.Int("languages", len(bundles)),
	)

	return c, nil
}

func newCatalog(bundles map[language.Tag]*Bundle, defaultTag language.Tag, o *options) *Catalog {
	languages := make([]language.Tag, 0, len(bundles))
	for tag := range bundles {
		languages = append(languages, tag)
	}
	slices.SortFunc(languages, compareTags)

	// The matcher treats its first tag as the fallback, so the default goes first.
	matchTags := make([]language.Tag, 0, len(languages))
	if _, ok := bundles[defaultTag]; ok {
		matchTags = append(matchTags, defaultTag)
	}
	for _, tag := range languages {
		if tag != defaultTag {
			matchTags = append(matchTags, tag)
		}
	}

	c := &Catalog{
		bundles:        bundles,
		defaultLang:    defaultTag,
		languages:      languages,
		matchTags:      matchTags,
		missingMessage: o.missingMessage,
		fallback:       o.fallback,
	}
	if len(matchTags) > 0 {
		c.matcher = language.NewMatcher(matchTags)
	}
	return c
}

type loader struct {
	fsys fs.FS
	opts *options
}

// candidate decides whether a root entry names a language. Links are
// resolved so a linked directory counts as a directory.
func (l *loader) candidate(entry fs.DirEntry) (language.Tag, bool, bool) {
	name := entry.Name()
	isDir := entry.IsDir()

	if entry.Type()&fs.ModeSymlink != 0 {
		info, err := fs.Stat(l.fsys, name)
		if err != nil {
			l.opts.logger.Debug("skipping broken link", slog.String("entry", name), slog.String("error", err.Error()))
			return language.Und, false, false
		}
		isDir = info.IsDir()
	}

	stem := name
	if !isDir {
		if !l.opts.formats.Match(name) {
			l.opts.logger.Debug("skipping non-resource file", slog.String("entry", name))
			return language.Und, false, false
		}
		stem = l.opts.formats.Stem(name)
	}

	tag, err := language.Parse(stem)
	if err != nil {
		l.opts.logger.Debug("skipping entry without a language name", slog.String("entry", name), slog.String("error", err.Error()))
		return language.Und, false, false
	}

	return tag, isDir, true
}

// bundle compiles every file of one root entry into a single Bundle.
func (l *loader) bundle(name string, tag language.Tag, isDir bool) (*Bundle, error) {
	files := []string{name}
	if isDir {
		var err error
		files, err = Scan(l.fsys, name, l.opts.formats, l.opts.logger)
		if err != nil {
			return nil, err
		}
	}

	resources, err := l.compile(files)
	if err != nil {
		return nil, err
	}

	// Merge in scan order so duplicate-key errors do not depend on scheduling.
	b := newBundle(tag)
	for _, res := range resources {
		if err := b.add(res); err != nil {
			return nil, err
		}
	}

	l.opts.logger.Debug("language bundle built",
		slog.String("language", tag.String()),
		slog.String("source", name),
		slog.Int("files", len(files)),
		slog.Int("messages", b.Len()),
	)

	return b, nil
}

func (l *loader) compile(files []string) ([]*Resource, error) {
	resources := make([]*Resource, len(files))
	errs := make([]error, len(files))

	var g errgroup.Group
	g.SetLimit(l.opts.concurrency)
	for i, name := range files {
		g.Go(func() error {
			resources[i], errs[i] = LoadResource(l.fsys, name, l.opts.formats)
			return nil
		})
	}
	_ = g.Wait()

	// Report the first failure in scan order, whichever finished first.
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return resources, nil
}

func compareTags(a, b language.Tag) int {
	return cmp.Compare(a.String(), b.String())
}
