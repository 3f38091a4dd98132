package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/alexberriman/nextlens/pkg/nextjs"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [path]",
	Short: "Run the full routing analysis",
	Long: `Run structure detection, route translation, middleware inspection,
and router detection in one pass.

When run on a terminal without a path argument, the path is prompted
interactively.

Examples:
  nextlens analyze
  nextlens analyze ./my-app
  nextlens analyze ./my-app --json`,
	Args: cobra.MaximumNArgs(1),
	Run:  runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

// collectAnalysis runs every analyzer against the project root.
func collectAnalysis(path string) (*AnalyzeOutput, error) {
	structure, err := nextjs.DetectStructure(path, newLogger())
	if err != nil {
		return nil, err
	}

	routes, err := collectRoutes(path)
	if err != nil {
		return nil, err
	}

	routers, err := collectRouters(path)
	if err != nil {
		return nil, err
	}

	middleware := collectMiddleware(path)

	return &AnalyzeOutput{
		Path:       path,
		Structure:  structure,
		Routes:     routes.Routes,
		Middleware: middleware.Middleware,
		Rewrites:   middleware.Rewrites,
		Redirects:  middleware.Redirects,
		Routers:    routers.Routers,
	}, nil
}

func runAnalyze(cmd *cobra.Command, args []string) {
	cyan := color.New(color.FgCyan).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	path := projectPath(args)

	// Prompt for the path when interactive and none was given.
	if len(args) == 0 && !jsonOutput && isatty.IsTerminal(os.Stdin.Fd()) {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Project path").
					Description("Directory of the project to analyze").
					Value(&path),
			),
		)
		if err := form.Run(); err != nil {
			fmt.Printf("  %s Cancelled\n", yellow("!"))
			return
		}
		if path == "" {
			path = "."
		}
	}

	abs, err := filepath.Abs(path)
	if err == nil {
		path = abs
	}

	out, err := collectAnalysis(path)
	if err != nil {
		if jsonOutput {
			printJSONError(err)
		} else {
			fmt.Printf("  %s %v\n", red("Error:"), err)
		}
		os.Exit(1)
	}

	if jsonOutput {
		printSuccess(out)
		return
	}

	fmt.Printf("\n  %s Analysis\n\n", cyan("nextlens"))
	fmt.Printf("  Path: %s\n\n", dim(out.Path))

	fmt.Printf("  App router:    %v\n", out.Structure.HasAppRouter)
	fmt.Printf("  Pages router:  %v\n", out.Structure.HasPagesRouter)
	fmt.Printf("  Routes:        %d\n", len(out.Routes))
	fmt.Printf("  Middleware:    %v\n", out.Middleware.Exists)
	fmt.Printf("  Rewrites:      %d\n", len(out.Rewrites))
	fmt.Printf("  Redirects:     %d\n", len(out.Redirects))
	fmt.Printf("  Router files:  %d\n\n", len(out.Routers))
}
