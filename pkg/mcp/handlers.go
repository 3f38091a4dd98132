package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/alexberriman/nextlens/pkg/detector"
	"github.com/alexberriman/nextlens/pkg/nextjs"
	"github.com/alexberriman/nextlens/pkg/scanner"
)

// resolvePath turns the optional "path" argument into an absolute
// project directory under the server's workdir.
func (s *Server) resolvePath(req mcp.CallToolRequest) string {
	path := req.GetString("path", "")
	if path == "" {
		return s.workdir
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(s.workdir, path)
}

func toolJSON(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleAnalyzeStructure(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	root := s.resolvePath(req)

	structure, err := nextjs.DetectStructure(root, s.logger)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toolJSON(structure)
}

func (s *Server) handleListRoutes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	root := s.resolvePath(req)

	structure, err := nextjs.DetectStructure(root, s.logger)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if !structure.HasPagesRouter {
		return toolJSON(map[string]any{
			"total":  0,
			"routes": []nextjs.PageRouteInfo{},
		})
	}

	routes, err := nextjs.ScanPageRoutes(structure.PagesDirectory, s.logger)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if routes == nil {
		routes = []nextjs.PageRouteInfo{}
	}
	return toolJSON(map[string]any{
		"total":  len(routes),
		"routes": routes,
	})
}

func (s *Server) handleGetMiddleware(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	root := s.resolvePath(req)

	middleware := nextjs.FindMiddleware(root, s.logger)
	rewrites, redirects := nextjs.AnalyzeConfig(root, s.logger)

	return toolJSON(map[string]any{
		"middleware": middleware,
		"rewrites":   rewrites,
		"redirects":  redirects,
	})
}

func (s *Server) handleDetectRouters(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	root := s.resolvePath(req)

	paths, err := scanner.Scan(root, scanner.Options{})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	det := detector.New(s.logger)
	routers := det.DetectRouters(paths)

	type routerReport struct {
		detector.RouterFileInfo
		Routes []detector.RouteInfo `json:"routes"`
	}
	reports := make([]routerReport, 0, len(routers))
	for _, info := range routers {
		reports = append(reports, routerReport{
			RouterFileInfo: info,
			Routes:         det.ExtractRoutes(info),
		})
	}
	return toolJSON(map[string]any{
		"total":   len(reports),
		"routers": reports,
	})
}
