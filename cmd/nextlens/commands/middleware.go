package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/alexberriman/nextlens/pkg/nextjs"
)

var middlewareCmd = &cobra.Command{
	Use:   "middleware [path]",
	Short: "Inspect middleware and next.config routing rules",
	Long: `Locate the project's middleware file, extract its matcher patterns,
and report the rewrites and redirects declared in next.config.

Examples:
  nextlens middleware
  nextlens middleware ./my-app --json`,
	Args: cobra.MaximumNArgs(1),
	Run:  runMiddleware,
}

func init() {
	rootCmd.AddCommand(middlewareCmd)
}

func collectMiddleware(path string) MiddlewareCmdOutput {
	logger := newLogger()
	rewrites, redirects := nextjs.AnalyzeConfig(path, logger)
	return MiddlewareCmdOutput{
		Middleware: nextjs.FindMiddleware(path, logger),
		Rewrites:   rewrites,
		Redirects:  redirects,
	}
}

func runMiddleware(cmd *cobra.Command, args []string) {
	cyan := color.New(color.FgCyan).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	path := absProjectPath(args)
	out := collectMiddleware(path)

	if jsonOutput {
		printSuccess(out)
		return
	}

	fmt.Printf("\n  %s Middleware\n\n", cyan("nextlens"))

	if out.Middleware.Exists {
		fmt.Printf("  %s Middleware found  %s\n", green("✓"), out.Middleware.FilePath)
		for _, m := range out.Middleware.Matcher {
			fmt.Printf("    matcher  %s\n", m)
		}
	} else {
		fmt.Printf("  %s No middleware file\n", dim("✗"))
	}
	fmt.Println()

	if len(out.Rewrites) > 0 {
		fmt.Printf("  Rewrites (%d)\n", len(out.Rewrites))
		for _, r := range out.Rewrites {
			fmt.Printf("    %s %s %s\n", r.Source, dim("→"), r.Destination)
		}
		fmt.Println()
	}
	if len(out.Redirects) > 0 {
		fmt.Printf("  Redirects (%d)\n", len(out.Redirects))
		for _, r := range out.Redirects {
			status := ""
			if r.StatusCode != 0 {
				status = fmt.Sprintf("  [%d]", r.StatusCode)
			} else if r.Permanent {
				status = "  [permanent]"
			}
			fmt.Printf("    %s %s %s%s\n", r.Source, dim("→"), r.Destination, dim(status))
		}
		fmt.Println()
	}
}
