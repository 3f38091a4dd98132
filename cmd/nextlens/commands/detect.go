package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/alexberriman/nextlens/pkg/detector"
	"github.com/alexberriman/nextlens/pkg/scanner"
)

var detectCmd = &cobra.Command{
	Use:   "detect [path]",
	Short: "Find react-router definition files and their routes",
	Long: `Scan a project's source files for react-router usage and extract the
route definitions from every positively identified file.

Detection recognizes three definition styles: JSX route elements,
useRoutes object literals, and data-router creation calls.

Examples:
  nextlens detect
  nextlens detect ./my-app --json`,
	Args: cobra.MaximumNArgs(1),
	Run:  runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)
}

// collectRouters scans the project and extracts routes from each
// detected router file.
func collectRouters(path string) (*DetectOutput, error) {
	cfg, err := loadProjectConfig(path)
	if err != nil {
		return nil, err
	}

	paths, err := scanner.Scan(path, scanner.Options{
		Extensions:     cfg.Extensions,
		IgnorePatterns: cfg.IgnorePatterns,
	})
	if err != nil {
		return nil, err
	}

	det := detector.New(newLogger())
	routers := det.DetectRouters(paths)

	out := &DetectOutput{
		Routers:      make([]RouterOutput, 0, len(routers)),
		FilesScanned: len(paths),
		TotalRouters: len(routers),
	}
	for _, info := range routers {
		out.Routers = append(out.Routers, RouterOutput{
			File:       info.FilePath,
			RouterType: string(info.RouterType),
			Routes:     det.ExtractRoutes(info),
		})
	}
	return out, nil
}

func runDetect(cmd *cobra.Command, args []string) {
	cyan := color.New(color.FgCyan).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	path := absProjectPath(args)

	out, err := collectRouters(path)
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

	fmt.Printf("\n  %s Router Detection\n\n", cyan("nextlens"))
	fmt.Printf("  Scanned %d files, found %d router definitions\n\n", out.FilesScanned, out.TotalRouters)

	for _, r := range out.Routers {
		fmt.Printf("  %s %s %s\n", green("✓"), r.File, dim(fmt.Sprintf("(%s)", r.RouterType)))
		printRouteTree(r.Routes, "    ")
	}
	if out.TotalRouters > 0 {
		fmt.Println()
	}
}

func printRouteTree(routes []detector.RouteInfo, indent string) {
	dim := color.New(color.Faint).SprintFunc()
	for _, route := range routes {
		suffix := ""
		if route.HasDynamicSegments {
			suffix = dim("  dynamic")
		}
		path := route.Path
		if path == "" {
			path = dim("(pathless)")
		}
		fmt.Printf("%s%s%s\n", indent, path, suffix)
		printRouteTree(route.Children, indent+"  ")
	}
}
