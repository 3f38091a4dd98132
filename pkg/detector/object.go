package detector

import (
	"strings"

	"github.com/alexberriman/nextlens/internal/logging"
)

// objectStrategy detects object-factory route configuration: route
// tables passed to useRoutes().
type objectStrategy struct {
	patternStrategy
}

// NewObjectStrategy creates the object-factory detection strategy.
func NewObjectStrategy() Strategy {
	return &objectStrategy{patternStrategy{
		name:       "object",
		routerType: RouterTypeObject,
		importPatterns: []string{
			`from 'react-router-dom'`,
			`from "react-router-dom"`,
			`from 'react-router'`,
			`from "react-router"`,
			`require('react-router-dom')`,
			`require("react-router-dom")`,
		},
		componentPatterns: []string{
			"useRoutes(",
		},
	}}
}

func (s *objectStrategy) DetermineType(content string) RouterType {
	return RouterTypeObject
}

// ExtractRoutes locates useRoutes() calls and walks the nested
// children structure of each route table.
func (s *objectStrategy) ExtractRoutes(content string, logger *logging.Logger) []RouteInfo {
	var routes []RouteInfo
	offset := 0

	for {
		idx := strings.Index(content[offset:], "useRoutes(")
		if idx < 0 {
			break
		}
		idx += offset

		open := strings.IndexByte(content[idx:], '[')
		if open < 0 {
			break
		}
		open += idx

		end := matchDelim(content, open)
		if end < 0 {
			logger.Debug("unterminated route table", nil)
			break
		}

		routes = append(routes, parseRouteArray(content[open+1:end])...)
		offset = end + 1
	}

	if len(routes) == 0 {
		logger.Debug("no object route literals found", nil)
	}
	return routes
}
