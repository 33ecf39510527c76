// Package loader scans workspace locale directories into LocaleRecords.
package loader

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"lokey/internal/catalog"
	"lokey/internal/parser"
	"lokey/internal/paths"
)

// localePattern accepts locale ids like "en", "de", "en-US", "zh_Hans".
var localePattern = regexp.MustCompile(`^[a-z]{2,3}([-_][A-Za-z0-9]{2,8})*$`)

// Options configures a scan.
type Options struct {
	// Root is the workspace root directory.
	Root string
	// LocalePaths are workspace-relative directories holding locale files.
	LocalePaths []string
	// Registry supplies the per-extension parsers.
	Registry *parser.Registry
	// Ignore holds glob patterns matched against canonical file paths.
	Ignore []string
	// Logger reports skipped and failed files.
	Logger *slog.Logger
}

// FileError is a non-fatal per-file parse failure.
type FileError struct {
	File string `json:"file"`
	Err  string `json:"error"`
}

// Result is one scan snapshot.
type Result struct {
	Records []catalog.LocaleRecord
	Locales []string
	Files   int
	Errors  []FileError
}

// Scan walks the locale directories and parses every supported file into
// records. The locale is detected from the file name ("en.json") or from
// the first directory component ("en/common.json", where the file base
// becomes a keypath namespace). Parse failures are collected, not fatal:
// one broken file must not hide the rest of the workspace.
func Scan(opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	res := &Result{}
	localeSet := map[string]bool{}

	for _, dir := range opts.LocalePaths {
		absDir := paths.Join(opts.Root, dir)
		err := filepath.WalkDir(absDir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if os.IsNotExist(err) {
					return filepath.SkipAll
				}
				return err
			}
			if d.IsDir() {
				return nil
			}

			format := opts.Registry.ForPath(path)
			if format == nil {
				return nil
			}

			canonical, err := paths.Canonicalize(path, opts.Root)
			if err != nil {
				return err
			}
			if ignored(canonical, opts.Ignore) {
				return nil
			}

			rel, err := filepath.Rel(absDir, path)
			if err != nil {
				return err
			}
			locale, namespace := detect(filepath.ToSlash(rel))
			if locale == "" {
				logger.Debug("file skipped, no locale in path", "file", canonical)
				return nil
			}

			res.Files++
			data, err := os.ReadFile(path)
			if err != nil {
				res.Errors = append(res.Errors, FileError{File: canonical, Err: err.Error()})
				return nil
			}
			flat, err := format.Parse(data)
			if err != nil {
				logger.Warn("locale file failed to parse", "file", canonical, "error", err)
				res.Errors = append(res.Errors, FileError{File: canonical, Err: err.Error()})
				return nil
			}

			localeSet[locale] = true
			for _, keypath := range parser.SortedKeys(flat) {
				full := keypath
				if namespace != "" {
					full = namespace + "." + keypath
				}
				res.Records = append(res.Records, catalog.LocaleRecord{
					KeyPath:  full,
					Locale:   locale,
					Value:    flat[keypath],
					FilePath: canonical,
				})
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	for locale := range localeSet {
		res.Locales = append(res.Locales, locale)
	}
	sort.Strings(res.Locales)

	logger.Info("scan complete",
		"files", res.Files,
		"records", len(res.Records),
		"locales", len(res.Locales),
		"errors", len(res.Errors),
	)
	return res, nil
}

// detect extracts the locale id and keypath namespace from a path relative
// to the locale directory.
func detect(rel string) (locale, namespace string) {
	ext := filepath.Ext(rel)
	base := strings.TrimSuffix(filepath.Base(rel), ext)
	dir := filepath.Dir(rel)

	// "en.json", "nav/en.json": locale in the file name, directories
	// above it form the namespace.
	if localePattern.MatchString(base) {
		if dir != "." {
			namespace = strings.ReplaceAll(filepath.ToSlash(dir), "/", ".")
		}
		return base, namespace
	}

	// "en/common.json": locale as the first directory, file base plus any
	// deeper directories form the namespace.
	parts := strings.Split(filepath.ToSlash(rel), "/")
	if len(parts) >= 2 && localePattern.MatchString(parts[0]) {
		segs := append(parts[1:len(parts)-1], base)
		return parts[0], strings.Join(segs, ".")
	}

	return "", ""
}

// ignored matches the canonical path against the ignore globs, both on the
// full path and on the base name.
func ignored(canonical string, patterns []string) bool {
	for _, p := range patterns {
		if ok, _ := filepath.Match(p, canonical); ok {
			return true
		}
		if ok, _ := filepath.Match(p, filepath.Base(canonical)); ok {
			return true
		}
	}
	return false
}

// TargetFile derives the backing file path for a locale that has no real
// record yet, by substituting the locale id into a sibling file's path.
// "locales/en.json" + "fr" yields "locales/fr.json"; namespaced layouts
// ("en/common.json") substitute the directory component instead.
func TargetFile(siblingPath, siblingLocale, locale string) string {
	dir := filepath.ToSlash(filepath.Dir(siblingPath))
	ext := filepath.Ext(siblingPath)
	base := strings.TrimSuffix(filepath.Base(siblingPath), ext)

	if base == siblingLocale {
		if dir == "." {
			return locale + ext
		}
		return dir + "/" + locale + ext
	}

	parts := strings.Split(dir, "/")
	for i, p := range parts {
		if p == siblingLocale {
			parts[i] = locale
			return strings.Join(parts, "/") + "/" + base + ext
		}
	}

	// Fall back to a sibling named after the locale.
	if dir == "." {
		return locale + ext
	}
	return dir + "/" + locale + ext
}
