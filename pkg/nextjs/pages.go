package nextjs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/alexberriman/nextlens/internal/logging"
)

// ErrPagesDirectoryRequired means no pages directory was supplied.
var ErrPagesDirectoryRequired = errors.New("pages directory is required")

// Bracket-notation segment patterns, most specific first.
var (
	// [[...param]] - optional catch-all segment
	optionalCatchAllRe = regexp.MustCompile(`^\[\[\.\.\.([^\]]+)\]\]$`)

	// [...param] - catch-all segment
	catchAllRe = regexp.MustCompile(`^\[\.\.\.([^\]]+)\]$`)

	// [param] - dynamic segment
	dynamicRe = regexp.MustCompile(`^\[([^.\]][^\]]*)\]$`)
)

// Bootstrap files the pages router reserves for application wiring.
// They never produce a route.
var bootstrapFiles = map[string]bool{
	"_app":      true,
	"_document": true,
}

// ScanPageRoutes enumerates a pages directory and translates every
// recognized source file into a PageRouteInfo. Structural preconditions
// fail fast before any file is processed.
func ScanPageRoutes(pagesDir string, logger *logging.Logger) ([]PageRouteInfo, error) {
	if pagesDir == "" {
		return nil, ErrPagesDirectoryRequired
	}

	abs, err := filepath.Abs(pagesDir)
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", pagesDir, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, abs)
		}
		return nil, fmt.Errorf("stat %s: %w", abs, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, abs)
	}

	var relFiles []string
	err = filepath.Walk(abs, func(path string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() {
			if strings.HasPrefix(fi.Name(), ".") && path != abs {
				return filepath.SkipDir
			}
			return nil
		}
		if !recognizedExtensions[filepath.Ext(fi.Name())] {
			return nil
		}
		rel, err := filepath.Rel(abs, path)
		if err != nil {
			return nil
		}
		relFiles = append(relFiles, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", abs, err)
	}

	routes := TranslatePageRoutes(abs, relFiles)
	logger.Info("pages router scanned", map[string]any{
		"directory": abs,
		"routes":    len(routes),
	})
	return routes, nil
}

// TranslatePageRoutes translates a pages-root-relative file list into
// route descriptors, preserving input order. Bootstrap files are
// dropped entirely.
func TranslatePageRoutes(pagesDir string, relFiles []string) []PageRouteInfo {
	var routes []PageRouteInfo
	for _, rel := range relFiles {
		if route, ok := TranslatePageRoute(pagesDir, rel); ok {
			routes = append(routes, route)
		}
	}
	return routes
}

// TranslatePageRoute converts a single pages-root-relative file path
// into a route descriptor. The second return value is false for files
// that produce no route (_app, _document, unrecognized extensions).
func TranslatePageRoute(pagesDir, relPath string) (PageRouteInfo, bool) {
	ext := filepath.Ext(relPath)
	if !recognizedExtensions[ext] {
		return PageRouteInfo{}, false
	}

	trimmed := strings.TrimSuffix(filepath.ToSlash(relPath), ext)
	segments := strings.Split(trimmed, "/")

	if bootstrapFiles[segments[len(segments)-1]] {
		return PageRouteInfo{}, false
	}

	// index maps to the parent directory's path; root index maps to /.
	if segments[len(segments)-1] == "index" {
		segments = segments[:len(segments)-1]
	}

	route := PageRouteInfo{
		AbsolutePath: filepath.Join(pagesDir, relPath),
		FileType:     PageRouteTypePage,
	}

	// API classification keys off directory segments: a file named
	// api.ts is not an API route, a file under api/ is.
	for _, dirPart := range strings.Split(filepath.ToSlash(filepath.Dir(relPath)), "/") {
		if dirPart == "api" {
			route.FileType = PageRouteTypeAPI
			route.IsAPIRoute = true
			break
		}
	}

	parts := make([]string, 0, len(segments))
	for _, segment := range segments {
		switch {
		case optionalCatchAllRe.MatchString(segment):
			route.IsDynamic = true
			route.IsOptionalCatchAll = true
		case catchAllRe.MatchString(segment):
			route.IsDynamic = true
			route.IsCatchAll = true
		case dynamicRe.MatchString(segment):
			route.IsDynamic = true
		}

		parts = append(parts, segment)
	}

	route.RoutePath = "/" + strings.Join(parts, "/")
	return route, true
}
