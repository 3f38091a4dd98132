// Package detector identifies router-definition files for
// non-filesystem routing libraries and extracts their route literals.
// Detection is lexical: literal import and usage patterns over raw file
// content, never syntax-tree parsing.
package detector

// RouterType identifies which routing convention a file uses.
type RouterType string

const (
	// RouterTypeJSX is JSX-element route declarations (<Routes>/<Route>).
	RouterTypeJSX RouterType = "jsx"
	// RouterTypeObject is object-factory route configuration (useRoutes).
	RouterTypeObject RouterType = "object"
	// RouterTypeDataRouter is data-router creation calls
	// (createBrowserRouter and friends).
	RouterTypeDataRouter RouterType = "data-router"
	// RouterTypeUnknown is any file not positively identified.
	RouterTypeUnknown RouterType = "unknown"
)

// RouterFileInfo is the detection verdict for a single file.
// RouterType is unknown whenever IsRouter is false.
type RouterFileInfo struct {
	FilePath   string     `json:"file_path"`
	IsRouter   bool       `json:"is_router"`
	RouterType RouterType `json:"router_type"`
}

// RouteInfo is one route literal discovered in a router-definition
// file. Children preserve declaration order.
type RouteInfo struct {
	Path               string      `json:"path"`
	HasDynamicSegments bool        `json:"has_dynamic_segments"`
	Children           []RouteInfo `json:"children,omitempty"`
}
