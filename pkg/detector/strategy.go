package detector

import (
	"os"
	"strings"
	"sync"

	"github.com/alexberriman/nextlens/internal/logging"
)

// Strategy is the capability contract every router-detection variant
// implements. HasImports gates HasComponents: usage evidence is only
// meaningful once import evidence is confirmed, so a dispatcher must
// not call HasComponents for content that failed the import check.
type Strategy interface {
	// Name identifies the strategy in logs.
	Name() string

	// Type is the router type this strategy detects.
	Type() RouterType

	// HasImports reports whether the content imports the target
	// routing library.
	HasImports(content string) bool

	// HasComponents reports whether the content actually uses the
	// library's routing surface.
	HasComponents(content string) bool

	// DetermineType performs the finer-grained marker pass once both
	// gates have passed.
	DetermineType(content string) RouterType

	// ExtractRoutes pulls route literals out of the content,
	// best-effort. Zero matches is a legitimate empty result.
	ExtractRoutes(content string, logger *logging.Logger) []RouteInfo
}

// patternStrategy supplies the shared two-gate pattern matching.
type patternStrategy struct {
	name              string
	routerType        RouterType
	importPatterns    []string
	componentPatterns []string
}

func (p *patternStrategy) Name() string     { return p.name }
func (p *patternStrategy) Type() RouterType { return p.routerType }

func (p *patternStrategy) HasImports(content string) bool {
	return containsAny(content, p.importPatterns)
}

func (p *patternStrategy) HasComponents(content string) bool {
	return containsAny(content, p.componentPatterns)
}

func containsAny(content string, patterns []string) bool {
	for _, pattern := range patterns {
		if strings.Contains(content, pattern) {
			return true
		}
	}
	return false
}

// Detector dispatches candidate files across an ordered strategy list.
// First match wins: a file satisfying several strategies' surface
// patterns is attributed to the earliest-registered one.
type Detector struct {
	strategies []Strategy
	logger     *logging.Logger
}

// New creates a Detector with the standard strategies in priority
// order: JSX, then object-factory, then data-router.
func New(logger *logging.Logger) *Detector {
	return NewWithStrategies(logger,
		NewJSXStrategy(),
		NewObjectStrategy(),
		NewDataRouterStrategy(),
	)
}

// NewWithStrategies creates a Detector with an explicit strategy order.
func NewWithStrategies(logger *logging.Logger, strategies ...Strategy) *Detector {
	return &Detector{strategies: strategies, logger: logger}
}

// DetectFile reads and classifies a single file. A read failure is not
// propagated; the file simply is not a router.
func (d *Detector) DetectFile(path string) RouterFileInfo {
	content, err := os.ReadFile(path)
	if err != nil {
		d.logger.Debug("router candidate unreadable", map[string]any{
			"path":  path,
			"error": err.Error(),
		})
		return RouterFileInfo{FilePath: path, RouterType: RouterTypeUnknown}
	}
	return d.DetectContent(path, string(content))
}

// DetectContent classifies already-read content.
func (d *Detector) DetectContent(path, content string) RouterFileInfo {
	for _, strategy := range d.strategies {
		// Import evidence gates the component check entirely.
		if !strategy.HasImports(content) {
			continue
		}
		if !strategy.HasComponents(content) {
			continue
		}

		routerType := strategy.DetermineType(content)
		d.logger.Debug("router file detected", map[string]any{
			"path":     path,
			"strategy": strategy.Name(),
			"type":     string(routerType),
		})
		return RouterFileInfo{FilePath: path, IsRouter: true, RouterType: routerType}
	}
	return RouterFileInfo{FilePath: path, RouterType: RouterTypeUnknown}
}

// DetectAll evaluates every candidate file independently. File reads
// run concurrently; results keep input order.
func (d *Detector) DetectAll(paths []string) []RouterFileInfo {
	results := make([]RouterFileInfo, len(paths))

	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			results[i] = d.DetectFile(path)
		}(i, path)
	}
	wg.Wait()

	return results
}

// DetectRouters runs DetectAll and filters to the positively-identified
// files.
func (d *Detector) DetectRouters(paths []string) []RouterFileInfo {
	var routers []RouterFileInfo
	for _, info := range d.DetectAll(paths) {
		if info.IsRouter {
			routers = append(routers, info)
		}
	}
	return routers
}

// ExtractRoutes reads a detected router file and extracts its route
// literals with the strategy matching its router type. Failures are
// logged and yield an empty list.
func (d *Detector) ExtractRoutes(info RouterFileInfo) []RouteInfo {
	if !info.IsRouter {
		return nil
	}

	strategy := d.strategyFor(info.RouterType)
	if strategy == nil {
		return nil
	}

	content, err := os.ReadFile(info.FilePath)
	if err != nil {
		d.logger.Error("failed to read router file", map[string]any{
			"path":  info.FilePath,
			"error": err.Error(),
		})
		return nil
	}

	return strategy.ExtractRoutes(string(content), d.logger)
}

func (d *Detector) strategyFor(routerType RouterType) Strategy {
	for _, strategy := range d.strategies {
		if strategy.Type() == routerType {
			return strategy
		}
	}
	return nil
}

// hasColonSegments reports whether a route path carries dynamic
// segments in colon notation (:id) or a splat (*).
func hasColonSegments(path string) bool {
	for _, segment := range strings.Split(path, "/") {
		if strings.HasPrefix(segment, ":") || segment == "*" {
			return true
		}
	}
	return false
}
