package nextjs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexberriman/nextlens/internal/logging"
)

// Structural precondition failures. These are raised before any
// per-file work begins.
var (
	// ErrDirectoryNotFound means the given path does not exist.
	ErrDirectoryNotFound = errors.New("directory not found")
	// ErrNotADirectory means the given path exists but is not a directory.
	ErrNotADirectory = errors.New("not a directory")
)

// Candidate directories are probed in order; the first existing one
// wins, so a root-level directory takes precedence over src/.
var (
	appDirCandidates   = []string{"app", filepath.Join("src", "app")}
	pagesDirCandidates = []string{"pages", filepath.Join("src", "pages")}
)

// DetectStructure probes a project root for app-router and pages-router
// directories. The absence of both is a valid outcome, not an error.
func DetectStructure(basePath string, logger *logging.Logger) (*ProjectStructure, error) {
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", basePath, err)
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

	structure := &ProjectStructure{}

	if dir, ok := firstExistingDir(abs, appDirCandidates); ok {
		structure.HasAppRouter = true
		structure.AppDirectory = dir
		logger.Info("app router detected", map[string]any{"directory": dir})
	}

	if dir, ok := firstExistingDir(abs, pagesDirCandidates); ok {
		structure.HasPagesRouter = true
		structure.PagesDirectory = dir
		logger.Info("pages router detected", map[string]any{"directory": dir})
	}

	if !structure.HasAppRouter && !structure.HasPagesRouter {
		logger.Warn("no Next.js router directories found", map[string]any{"path": abs})
	}

	return structure, nil
}

// firstExistingDir returns the first candidate under root that exists
// and is a directory.
func firstExistingDir(root string, candidates []string) (string, bool) {
	for _, candidate := range candidates {
		path := filepath.Join(root, candidate)
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			return path, true
		}
	}
	return "", false
}
