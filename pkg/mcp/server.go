// Package mcp exposes the project analyzers as Model Context Protocol
// tools so coding agents can inspect a Next.js codebase.
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/alexberriman/nextlens/internal/logging"
	"github.com/alexberriman/nextlens/internal/version"
)

// Server wraps an MCP server rooted at a project directory.
type Server struct {
	workdir   string
	mcpServer *server.MCPServer
	logger    *logging.Logger
}

// NewServer creates an MCP server for the given project directory and
// registers all analysis tools.
func NewServer(workdir string, logger *logging.Logger) *Server {
	s := &Server{
		workdir: workdir,
		logger:  logger,
		mcpServer: server.NewMCPServer(
			"nextlens",
			version.Version,
			server.WithToolCapabilities(true),
		),
	}
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(
		mcp.NewTool("analyze_structure",
			mcp.WithDescription("Detect which Next.js router directories (app, pages) a project uses"),
			mcp.WithString("path",
				mcp.Description("Project directory, relative to the server root"),
			),
		),
		s.handleAnalyzeStructure,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("list_routes",
			mcp.WithDescription("List the page and API routes of a pages-router Next.js project"),
			mcp.WithString("path",
				mcp.Description("Project directory, relative to the server root"),
			),
		),
		s.handleListRoutes,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("get_middleware",
			mcp.WithDescription("Locate the middleware file and report its matcher patterns plus next.config rewrites and redirects"),
			mcp.WithString("path",
				mcp.Description("Project directory, relative to the server root"),
			),
		),
		s.handleGetMiddleware,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("detect_routers",
			mcp.WithDescription("Find react-router files in a project and extract their route definitions"),
			mcp.WithString("path",
				mcp.Description("Project directory, relative to the server root"),
			),
		),
		s.handleDetectRouters,
	)
}

// ServeStdio runs the server over stdin/stdout until the client
// disconnects.
func (s *Server) ServeStdio() error {
	s.logger.Info("starting MCP server", map[string]any{"workdir": s.workdir})
	return server.ServeStdio(s.mcpServer)
}
