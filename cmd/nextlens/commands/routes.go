package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/alexberriman/nextlens/pkg/nextjs"
	"github.com/alexberriman/nextlens/pkg/scanner"
)

var routesCmd = &cobra.Command{
	Use:   "routes [path]",
	Short: "List the routes of a Next.js project",
	Long: `Translate the pages directory into URL route descriptors and
classify the special files of an app directory.

Examples:
  nextlens routes
  nextlens routes ./my-app
  nextlens routes ./my-app --json`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRoutes,
}

func init() {
	rootCmd.AddCommand(routesCmd)
}

// collectRoutes gathers pages-router routes and app-router special
// files for a project root.
func collectRoutes(path string) (*RoutesOutput, error) {
	logger := newLogger()

	structure, err := nextjs.DetectStructure(path, logger)
	if err != nil {
		return nil, err
	}

	out := &RoutesOutput{}

	if structure.HasPagesRouter {
		routes, err := nextjs.ScanPageRoutes(structure.PagesDirectory, logger)
		if err != nil {
			return nil, err
		}
		out.Routes = routes
		out.TotalRoutes = len(routes)
		for _, r := range routes {
			if r.IsAPIRoute {
				out.TotalAPI++
			}
		}
	}

	if structure.HasAppRouter {
		cfg, err := loadProjectConfig(path)
		if err != nil {
			return nil, err
		}
		paths, err := scanner.Scan(structure.AppDirectory, scanner.Options{
			Extensions:     cfg.Extensions,
			IgnorePatterns: cfg.IgnorePatterns,
		})
		if err != nil {
			return nil, err
		}
		out.SpecialFiles = nextjs.Analyze(paths)
	}

	return out, nil
}

func runRoutes(cmd *cobra.Command, args []string) {
	cyan := color.New(color.FgCyan).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	path := absProjectPath(args)

	out, err := collectRoutes(path)
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

	fmt.Printf("\n  %s Routes\n\n", cyan("nextlens"))

	if len(out.Routes) > 0 {
		fmt.Printf("  Pages router (%d routes, %d api)\n\n", out.TotalRoutes, out.TotalAPI)
		for _, r := range out.Routes {
			marker := green("page")
			if r.IsAPIRoute {
				marker = yellow("api ")
			}
			suffix := ""
			if r.IsDynamic {
				suffix = dim("  dynamic")
			}
			fmt.Printf("  %s  %s%s\n", marker, r.RoutePath, suffix)
		}
		fmt.Println()
	}

	if len(out.SpecialFiles) > 0 {
		fmt.Printf("  App router (%d special files)\n\n", len(out.SpecialFiles))
		for _, f := range out.SpecialFiles {
			fmt.Printf("  %-12s %s\n", f.FileType, dim(f.FilePath))
		}
		fmt.Println()
	}

	if len(out.Routes) == 0 && len(out.SpecialFiles) == 0 {
		fmt.Printf("  No routes found\n\n")
	}
}
