package detector

import (
	"regexp"
	"strings"

	"github.com/alexberriman/nextlens/internal/logging"
)

// dataRouterStrategy detects data-router creation calls
// (createBrowserRouter and variants) and standalone route-tree object
// literals.
type dataRouterStrategy struct {
	patternStrategy
}

// NewDataRouterStrategy creates the data-router detection strategy.
func NewDataRouterStrategy() Strategy {
	return &dataRouterStrategy{patternStrategy{
		name:       "data-router",
		routerType: RouterTypeDataRouter,
		importPatterns: []string{
			`from 'react-router-dom'`,
			`from "react-router-dom"`,
			`from 'react-router'`,
			`from "react-router"`,
			`require('react-router-dom')`,
			`require("react-router-dom")`,
		},
		componentPatterns: []string{
			"createBrowserRouter",
			"createHashRouter",
			"createMemoryRouter",
			"<RouterProvider",
		},
	}}
}

func (s *dataRouterStrategy) DetermineType(content string) RouterType {
	return RouterTypeDataRouter
}

// createRouterCallRe matches the creation call, tolerating
// type-parameter decoration between the name and the call parens.
var createRouterCallRe = regexp.MustCompile(`create(?:Browser|Hash|Memory)Router\s*(?:<[^(]*>)?\s*\(`)

// routeTreeVarRe matches a standalone route-tree array binding such as
// "const routes = [" or "const appRoutes: RouteObject[] = [".
var routeTreeVarRe = regexp.MustCompile(`(?:const|let|var)\s+\w*[Rr]outes?\w*\s*(?::[^=\n]*)?=\s*\[`)

// ExtractRoutes recognizes both the creation-call form and the
// standalone route-tree form; the result is the union of whatever
// forms are found, deduplicated by path in file order.
func (s *dataRouterStrategy) ExtractRoutes(content string, logger *logging.Logger) []RouteInfo {
	var routes []RouteInfo

	for _, m := range createRouterCallRe.FindAllStringIndex(content, -1) {
		open := strings.IndexByte(content[m[1]-1:], '[')
		if open < 0 {
			continue
		}
		open += m[1] - 1

		end := matchDelim(content, open)
		if end < 0 {
			logger.Debug("unterminated router creation call", nil)
			continue
		}
		routes = append(routes, parseRouteArray(content[open+1:end])...)
	}

	for _, m := range routeTreeVarRe.FindAllStringIndex(content, -1) {
		open := m[1] - 1
		end := matchDelim(content, open)
		if end < 0 {
			continue
		}
		routes = append(routes, parseRouteArray(content[open+1:end])...)
	}

	deduped := dedupeByPath(routes)
	if len(deduped) == 0 {
		logger.Debug("no data-router route literals found", nil)
	}
	return deduped
}

func dedupeByPath(routes []RouteInfo) []RouteInfo {
	seen := make(map[string]bool)
	var out []RouteInfo
	for _, route := range routes {
		if route.Path != "" && seen[route.Path] {
			continue
		}
		seen[route.Path] = true
		out = append(out, route)
	}
	return out
}
