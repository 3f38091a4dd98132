package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alexberriman/nextlens/pkg/detector"
	"github.com/alexberriman/nextlens/pkg/nextjs"
)

// jsonOutput is the global flag for JSON output mode
var jsonOutput bool

// JSONResponse is the standard response wrapper for JSON output
type JSONResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// StructureOutput represents the JSON output for the structure command
type StructureOutput struct {
	Path      string                   `json:"path"`
	Structure *nextjs.ProjectStructure `json:"structure"`
}

// RoutesOutput represents the JSON output for the routes command
type RoutesOutput struct {
	Routes       []nextjs.PageRouteInfo   `json:"routes"`
	SpecialFiles []nextjs.SpecialFileInfo `json:"special_files,omitempty"`
	TotalRoutes  int                      `json:"total_routes"`
	TotalAPI     int                      `json:"total_api_routes"`
}

// MiddlewareCmdOutput represents the JSON output for the middleware command
type MiddlewareCmdOutput struct {
	Middleware nextjs.MiddlewareInfo `json:"middleware"`
	Rewrites   []nextjs.RewriteRule  `json:"rewrites"`
	Redirects  []nextjs.RedirectRule `json:"redirects"`
}

// RouterOutput represents one detected router file in JSON output
type RouterOutput struct {
	File       string               `json:"file"`
	RouterType string               `json:"router_type"`
	Routes     []detector.RouteInfo `json:"routes"`
}

// DetectOutput represents the JSON output for the detect command
type DetectOutput struct {
	Routers      []RouterOutput `json:"routers"`
	FilesScanned int            `json:"files_scanned"`
	TotalRouters int            `json:"total_routers"`
}

// AnalyzeOutput represents the JSON output for the analyze command
type AnalyzeOutput struct {
	Path       string                   `json:"path"`
	Structure  *nextjs.ProjectStructure `json:"structure"`
	Routes     []nextjs.PageRouteInfo   `json:"routes,omitempty"`
	Middleware nextjs.MiddlewareInfo    `json:"middleware"`
	Rewrites   []nextjs.RewriteRule     `json:"rewrites,omitempty"`
	Redirects  []nextjs.RedirectRule    `json:"redirects,omitempty"`
	Routers    []RouterOutput           `json:"routers,omitempty"`
}

// OpenAPIOutput represents the JSON output for the openapi command
type OpenAPIOutput struct {
	File      string `json:"file"`
	Format    string `json:"format"`
	Version   string `json:"version"`
	APIRoutes int    `json:"api_routes"`
	Size      string `json:"size"`
}

// WatchRunOutput represents one analysis pass in watch --json mode
type WatchRunOutput struct {
	Trigger      string `json:"trigger"`
	TotalRoutes  int    `json:"total_routes"`
	TotalRouters int    `json:"total_routers"`
	ExecExit     *int   `json:"exec_exit,omitempty"`
}

// printJSON outputs data as formatted JSON to stdout
func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
	}
}

// printSuccess outputs a successful JSON response
func printSuccess(data any) {
	printJSON(JSONResponse{Success: true, Data: data})
}

// printJSONError outputs an error as JSON
func printJSONError(err error) {
	printJSON(JSONResponse{Success: false, Error: err.Error()})
}

func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
