// Package scanner enumerates a project's source files. It is the only
// component that walks the filesystem; the analyzers consume the path
// lists it produces.
package scanner

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Structural precondition failures.
var (
	// ErrRootNotFound means the scan root does not exist.
	ErrRootNotFound = errors.New("scan root not found")
	// ErrRootNotADirectory means the scan root is not a directory.
	ErrRootNotADirectory = errors.New("scan root is not a directory")
)

// DefaultExtensions are the source extensions scanned when the caller
// supplies none.
var DefaultExtensions = []string{".js", ".jsx", ".ts", ".tsx"}

// knownIgnoredDirs are directories that never contain project source.
var knownIgnoredDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
	".next":        true,
	"dist":         true,
	"build":        true,
	"coverage":     true,
	"out":          true,
}

// Options configures a scan.
type Options struct {
	// Extensions filters files by extension. Empty means
	// DefaultExtensions.
	Extensions []string

	// IgnorePatterns are extra glob patterns matched against both the
	// base name and the root-relative path of each entry. They extend
	// the project's .gitignore, never replace it.
	IgnorePatterns []string
}

// Scan walks root and returns the absolute paths of all matching
// source files in walk order. Hidden directories, known vendor
// directories, and .gitignore entries are skipped.
func Scan(root string, opts Options) ([]string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", root, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRootNotFound, abs)
		}
		return nil, fmt.Errorf("stat %s: %w", abs, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrRootNotADirectory, abs)
	}

	extensions := opts.Extensions
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	wanted := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		wanted[ext] = true
	}

	ignores := append(loadGitignore(abs), opts.IgnorePatterns...)

	var files []string
	err = filepath.Walk(abs, func(path string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, relErr := filepath.Rel(abs, path)
		if relErr != nil {
			return nil
		}

		if fi.IsDir() {
			if path == abs {
				return nil
			}
			if strings.HasPrefix(fi.Name(), ".") || knownIgnoredDirs[fi.Name()] {
				return filepath.SkipDir
			}
			if matchesIgnore(rel, fi.Name(), ignores) {
				return filepath.SkipDir
			}
			return nil
		}

		if !wanted[filepath.Ext(fi.Name())] {
			return nil
		}
		if matchesIgnore(rel, fi.Name(), ignores) {
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", abs, err)
	}

	return files, nil
}

// matchesIgnore checks a relative path against ignore patterns. A
// pattern matches the entry's base name, its full relative path, or a
// leading directory of it.
func matchesIgnore(rel, base string, patterns []string) bool {
	relSlash := filepath.ToSlash(rel)
	for _, pattern := range patterns {
		if ok, _ := filepath.Match(pattern, base); ok {
			return true
		}
		if ok, _ := filepath.Match(pattern, relSlash); ok {
			return true
		}
		if strings.HasPrefix(relSlash, pattern+"/") {
			return true
		}
	}
	return false
}

// loadGitignore reads simple patterns from the project's .gitignore.
// Comments, blank lines, and negations are skipped; this intentionally
// covers the common cases, not the full gitignore grammar.
func loadGitignore(root string) []string {
	f, err := os.Open(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	defer func() { _ = f.Close() }()

	var patterns []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!") {
			continue
		}
		line = strings.TrimSuffix(line, "/")
		line = strings.TrimPrefix(line, "/")
		if line != "" {
			patterns = append(patterns, line)
		}
	}
	return patterns
}
