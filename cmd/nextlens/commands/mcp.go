package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexberriman/nextlens/pkg/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp [path]",
	Short: "Serve the analyzers as Model Context Protocol tools",
	Long: `Start an MCP server over stdio exposing the routing analyzers as
tools for coding agents.

Tools:
  analyze_structure   Router directory detection
  list_routes         Page and API routes
  get_middleware      Middleware and config rules
  detect_routers      React-router file detection

Example client configuration (claude_desktop_config.json):
  {"mcpServers": {"nextlens": {"command": "nextlens", "args": ["mcp", "/path/to/project"]}}}`,
	Args: cobra.MaximumNArgs(1),
	Run:  runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) {
	path := absProjectPath(args)

	// Stdout belongs to the protocol; logs go to stderr.
	server := mcp.NewServer(path, newLogger())
	if err := server.ServeStdio(); err != nil {
		fmt.Fprintf(os.Stderr, "mcp server error: %v\n", err)
		os.Exit(1)
	}
}
