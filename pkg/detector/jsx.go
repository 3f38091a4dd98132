package detector

import (
	"regexp"

	"github.com/alexberriman/nextlens/internal/logging"
)

// jsxStrategy detects JSX-element route declarations: <Routes> trees
// built from <Route path="..."> elements.
type jsxStrategy struct {
	patternStrategy
}

// NewJSXStrategy creates the JSX-element detection strategy.
func NewJSXStrategy() Strategy {
	return &jsxStrategy{patternStrategy{
		name:       "jsx",
		routerType: RouterTypeJSX,
		importPatterns: []string{
			`from 'react-router-dom'`,
			`from "react-router-dom"`,
			`from 'react-router'`,
			`from "react-router"`,
			`require('react-router-dom')`,
			`require("react-router-dom")`,
		},
		componentPatterns: []string{
			"<Routes",
			"<Route ",
			"<Route>",
			"<BrowserRouter",
			"<HashRouter",
			"<Switch",
		},
	}}
}

func (s *jsxStrategy) DetermineType(content string) RouterType {
	return RouterTypeJSX
}

// jsxRoutePathRe matches the path attribute of a <Route> element,
// quoted directly or wrapped in a braced string expression.
var jsxRoutePathRe = regexp.MustCompile(`<Route\b[^>]*\bpath\s*=\s*\{?["']([^"']+)["']\}?`)

// ExtractRoutes collects <Route path="..."> literals in file order.
// Dynamic segments use colon notation (:id), not bracket notation.
func (s *jsxStrategy) ExtractRoutes(content string, logger *logging.Logger) []RouteInfo {
	seen := make(map[string]bool)
	var routes []RouteInfo

	for _, m := range jsxRoutePathRe.FindAllStringSubmatch(content, -1) {
		path := m[1]
		if seen[path] {
			continue
		}
		seen[path] = true
		routes = append(routes, RouteInfo{
			Path:               path,
			HasDynamicSegments: hasColonSegments(path),
		})
	}

	if len(routes) == 0 {
		logger.Debug("no JSX route literals found", nil)
	}
	return routes
}
