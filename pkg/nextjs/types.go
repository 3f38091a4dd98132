// Package nextjs analyzes the routing topology of a Next.js project by
// inspecting its source tree. Nothing in this package executes or loads
// the target project; classification works from file paths and bounded
// textual pattern matching over file contents.
package nextjs

// FileType classifies a file by its routing significance inside an
// app-router directory.
type FileType string

const (
	// FileTypePage is a page component (page.tsx, index.tsx).
	FileTypePage FileType = "page"
	// FileTypeLayout is a shared layout component.
	FileTypeLayout FileType = "layout"
	// FileTypeRoute is an API route handler.
	FileTypeRoute FileType = "route"
	// FileTypeLoading is a loading state component.
	FileTypeLoading FileType = "loading"
	// FileTypeNotFound is a not-found boundary.
	FileTypeNotFound FileType = "not-found"
	// FileTypeError is an error boundary.
	FileTypeError FileType = "error"
	// FileTypeTemplate is a re-rendering layout variant.
	FileTypeTemplate FileType = "template"
	// FileTypeMiddleware is a middleware entry point.
	FileTypeMiddleware FileType = "middleware"
	// FileTypeDefault is a parallel-route fallback.
	FileTypeDefault FileType = "default"
	// FileTypeOther is any file without routing significance.
	FileTypeOther FileType = "other"
)

// ProjectStructure describes which router conventions a project uses.
// A router flag is true iff its directory field is set.
type ProjectStructure struct {
	HasAppRouter   bool   `json:"has_app_router"`
	HasPagesRouter bool   `json:"has_pages_router"`
	AppDirectory   string `json:"app_directory,omitempty"`
	PagesDirectory string `json:"pages_directory,omitempty"`
}

// SpecialFileInfo is the classification of a single file.
type SpecialFileInfo struct {
	FilePath          string   `json:"file_path"`
	FileName          string   `json:"file_name"`
	FileType          FileType `json:"file_type"`
	Extension         string   `json:"extension"`
	IsSpecialFile     bool     `json:"is_special_file"`
	IsClientComponent bool     `json:"is_client_component"`
	IsServerComponent bool     `json:"is_server_component"`
}

// PageRouteType distinguishes page routes from API routes in the pages
// router.
type PageRouteType string

const (
	// PageRouteTypePage is a user-facing page route.
	PageRouteTypePage PageRouteType = "page"
	// PageRouteTypeAPI is an API route.
	PageRouteTypeAPI PageRouteType = "api"
)

// PageRouteInfo describes one URL route derived from a pages-router
// file. IsCatchAll and IsOptionalCatchAll imply IsDynamic; IsAPIRoute
// holds iff FileType is api.
type PageRouteInfo struct {
	AbsolutePath       string        `json:"absolute_path"`
	RoutePath          string        `json:"route_path"`
	FileType           PageRouteType `json:"file_type"`
	IsDynamic          bool          `json:"is_dynamic"`
	IsCatchAll         bool          `json:"is_catch_all"`
	IsOptionalCatchAll bool          `json:"is_optional_catch_all"`
	IsAPIRoute         bool          `json:"is_api_route"`
}

// MiddlewareInfo describes the project's middleware file, if any.
// FilePath and Matcher are only set when Exists is true.
type MiddlewareInfo struct {
	Exists   bool     `json:"exists"`
	FilePath string   `json:"file_path,omitempty"`
	Matcher  []string `json:"matcher,omitempty"`
}

// RewriteRule is one rewrite declared in the project config, in
// declaration order.
type RewriteRule struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
}

// RedirectRule is one redirect declared in the project config, in
// declaration order. StatusCode is zero when the config omits it.
type RedirectRule struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Permanent   bool   `json:"permanent"`
	StatusCode  int    `json:"status_code,omitempty"`
}
