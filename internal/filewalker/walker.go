package filewalker

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
)

// LangExtension is the extension of lang files.
const LangExtension = ".lang"

// FileEntry is a lang file found in a locale repository.
type FileEntry struct {
	// Path is the absolute file path.
	Path string
	// Locale is the top-level directory the file lives in (e.g. "fr").
	Locale string
	// Name is the path relative to the locale directory, with forward
	// slashes (e.g. "firefox/new.lang"). The same Name identifies a file
	// across locales.
	Name string
}

// Walker discovers lang files in a repository laid out as
// <root>/<locale>/<name>.lang.
type Walker struct {
	skipHidden bool
}

// NewWalker creates a Walker that ignores hidden directories such as .git.
func NewWalker() *Walker {
	return &Walker{skipHidden: true}
}

// Walk returns every lang file under root, sorted by locale then name.
// Files directly in root belong to no locale and are skipped.
func (w *Walker) Walk(root string) ([]FileEntry, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root path: %w", err)
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root is not a directory: %s", root)
	}

	var entries []FileEntry

	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("Error walking path")
			return nil
		}

		if d.IsDir() {
			if w.skipHidden && path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.ToLower(filepath.Ext(path)) != LangExtension {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		locale, name, ok := strings.Cut(filepath.ToSlash(rel), "/")
		if !ok {
			return nil
		}

		entries = append(entries, FileEntry{
			Path:   path,
			Locale: locale,
			Name:   name,
		})
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walk directory: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Locale != entries[j].Locale {
			return entries[i].Locale < entries[j].Locale
		}
		return entries[i].Name < entries[j].Name
	})

	log.Info().Int("count", len(entries)).Str("root", root).Msg("Discovered lang files")
	return entries, nil
}

// Locales returns the distinct locales of entries, sorted.
func Locales(entries []FileEntry) []string {
	seen := make(map[string]struct{})
	var locales []string
	for _, e := range entries {
		if _, ok := seen[e.Locale]; ok {
			continue
		}
		seen[e.Locale] = struct{}{}
		locales = append(locales, e.Locale)
	}
	sort.Strings(locales)
	return locales
}

// ForLocale returns the entries of one locale.
func ForLocale(entries []FileEntry, locale string) []FileEntry {
	var out []FileEntry
	for _, e := range entries {
		if e.Locale == locale {
			out = append(out, e)
		}
	}
	return out
}

// PathFor returns where the file called name lives for locale, whether or
// not it exists.
func PathFor(root, locale, name string) string {
	return filepath.Join(root, locale, filepath.FromSlash(name))
}
