package internal

import (
	"io/fs"
	"log/slog"
	"os"
	"path"
	"slices"
)

// Scan enumerates the resource files of one top-level catalog entry.
//
// A file yields itself when its extension is registered and nothing otherwise.
// A directory is walked to any depth, following symbolic links. The entry
// itself must be readable; below it, unreadable directories, broken links and
// link cycles are skipped and logged at debug level. The result is sorted.
func Scan(fsys fs.FS, name string, formats Formats, log *slog.Logger) ([]string, error) {
	info, err := fs.Stat(fsys, name)
	if err != nil {
		return nil, ioError(name, err)
	}

	if !info.IsDir() {
		if formats.Match(name) {
			return []string{name}, nil
		}
		return nil, nil
	}

	entries, err := fs.ReadDir(fsys, name)
	if err != nil {
		return nil, ioError(name, err)
	}

	s := &scanner{fsys: fsys, formats: formats, log: log}
	files := s.walk(name, entries, []fs.FileInfo{info}, nil)
	slices.Sort(files)

	return files, nil
}

type scanner struct {
	fsys    fs.FS
	formats Formats
	log     *slog.Logger
}

func (s *scanner) walk(dir string, entries []fs.DirEntry, ancestors []fs.FileInfo, files []string) []string {
	for _, entry := range entries {
		p := path.Join(dir, entry.Name())

		info, err := s.resolve(entry, p)
		if err != nil {
			s.log.Debug("skipping unresolvable entry", slog.String("path", p), slog.String("error", err.Error()))
			continue
		}

		if !info.IsDir() {
			if s.formats.Match(p) {
				files = append(files, p)
			}
			continue
		}

		if isAncestor(info, ancestors) {
			s.log.Debug("skipping directory cycle", slog.String("path", p))
			continue
		}

		children, err := fs.ReadDir(s.fsys, p)
		if err != nil {
			s.log.Debug("skipping unreadable directory", slog.String("path", p), slog.String("error", err.Error()))
			continue
		}

		files = s.walk(p, children, append(slices.Clip(ancestors), info), files)
	}

	return files
}

// resolve returns the FileInfo of the link target for symlinks and the entry's
// own FileInfo for everything else.
func (s *scanner) resolve(entry fs.DirEntry, p string) (fs.FileInfo, error) {
	if entry.Type()&fs.ModeSymlink != 0 {
		return fs.Stat(s.fsys, p)
	}
	return entry.Info()
}

// isAncestor detects link cycles. os.SameFile reports false for FileInfo
// values not produced by the os package (embed.FS, fstest.MapFS).
func isAncestor(info fs.FileInfo, ancestors []fs.FileInfo) bool {
	for _, a := range ancestors {
		if os.SameFile(info, a) {
			return true
		}
	}
	return false
}
