package detector

import "regexp"

// Bounded object-literal walking shared by the object-factory and
// data-router extractors. This is deliberately not a JavaScript
// grammar: it tracks delimiter depth and string literals, nothing more.

var (
	routePathFieldRe = regexp.MustCompile(`\bpath\s*:\s*['"]([^'"]+)['"]`)
	childrenFieldRe  = regexp.MustCompile(`\bchildren\s*:\s*\[`)
)

// matchDelim returns the index of the delimiter closing s[open],
// or -1 when it never closes. Quoted spans are skipped.
func matchDelim(s string, open int) int {
	var closeCh byte
	switch s[open] {
	case '[':
		closeCh = ']'
	case '{':
		closeCh = '}'
	case '(':
		closeCh = ')'
	default:
		return -1
	}
	openCh := s[open]

	depth := 0
	var inStr byte
	for i := open; i < len(s); i++ {
		c := s[i]
		if inStr != 0 {
			if c == inStr && s[i-1] != '\\' {
				inStr = 0
			}
			continue
		}
		switch c {
		case '\'', '"', '`':
			inStr = c
		case openCh:
			depth++
		case closeCh:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// topLevelObjects returns the top-level {...} spans of an array body.
func topLevelObjects(s string) []string {
	var objects []string
	var inStr byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inStr != 0 {
			if c == inStr && s[i-1] != '\\' {
				inStr = 0
			}
			continue
		}
		switch c {
		case '\'', '"', '`':
			inStr = c
		case '{':
			end := matchDelim(s, i)
			if end < 0 {
				return objects
			}
			objects = append(objects, s[i:end+1])
			i = end
		}
	}
	return objects
}

// maskNested blanks everything strictly inside nested delimiters so
// field regexes only see an object's own top level. Offsets are
// preserved, which lets callers map matches back into the original.
func maskNested(s string) string {
	out := []byte(s)
	depth := 0
	var inStr byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inStr != 0 {
			if depth > 0 {
				out[i] = ' '
			}
			if c == inStr && s[i-1] != '\\' {
				inStr = 0
			}
			continue
		}
		switch c {
		case '\'', '"', '`':
			inStr = c
			if depth > 0 {
				out[i] = ' '
			}
		case '{', '[', '(':
			if depth > 0 {
				out[i] = ' '
			}
			depth++
		case '}', ']', ')':
			depth--
			if depth > 0 {
				out[i] = ' '
			}
		default:
			if depth > 0 {
				out[i] = ' '
			}
		}
	}
	return string(out)
}

// parseRouteObject reconstructs one route literal, walking nested
// children arrays recursively. ok is false for objects carrying
// neither a path nor children.
func parseRouteObject(obj string) (RouteInfo, bool) {
	if len(obj) < 2 {
		return RouteInfo{}, false
	}
	inner := obj[1 : len(obj)-1]
	masked := maskNested(inner)

	var route RouteInfo
	found := false

	if m := routePathFieldRe.FindStringSubmatchIndex(masked); m != nil {
		route.Path = inner[m[2]:m[3]]
		route.HasDynamicSegments = hasColonSegments(route.Path)
		found = true
	}

	if m := childrenFieldRe.FindStringIndex(masked); m != nil {
		open := m[1] - 1 // index of the '[' in both masked and inner
		if end := matchDelim(inner, open); end > open {
			for _, child := range topLevelObjects(inner[open+1 : end]) {
				if childRoute, ok := parseRouteObject(child); ok {
					route.Children = append(route.Children, childRoute)
				}
			}
			if len(route.Children) > 0 {
				found = true
			}
		}
	}

	return route, found
}

// parseRouteArray walks the top-level objects of an array body in
// declaration order.
func parseRouteArray(body string) []RouteInfo {
	var routes []RouteInfo
	for _, obj := range topLevelObjects(body) {
		if route, ok := parseRouteObject(obj); ok {
			routes = append(routes, route)
		}
	}
	return routes
}
