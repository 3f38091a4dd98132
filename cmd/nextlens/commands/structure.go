package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/alexberriman/nextlens/pkg/nextjs"
)

var structureCmd = &cobra.Command{
	Use:   "structure [path]",
	Short: "Detect which Next.js router directories a project uses",
	Long: `Probe a project root for app-router and pages-router directories.

Root-level directories take precedence over their src/ variants. A
project with neither directory is reported as such, not treated as an
error.

Examples:
  nextlens structure
  nextlens structure ./my-app
  nextlens structure ./my-app --json`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStructure,
}

func init() {
	rootCmd.AddCommand(structureCmd)
}

func runStructure(cmd *cobra.Command, args []string) {
	cyan := color.New(color.FgCyan).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	path := absProjectPath(args)

	structure, err := nextjs.DetectStructure(path, newLogger())
	if err != nil {
		if jsonOutput {
			printJSONError(err)
		} else {
			fmt.Printf("  %s %v\n", red("Error:"), err)
		}
		os.Exit(1)
	}

	if jsonOutput {
		printSuccess(StructureOutput{Path: path, Structure: structure})
		return
	}

	fmt.Printf("\n  %s Project Structure\n\n", cyan("nextlens"))
	fmt.Printf("  Path: %s\n\n", dim(path))

	if structure.HasAppRouter {
		fmt.Printf("  %s App router      %s\n", green("✓"), structure.AppDirectory)
	} else {
		fmt.Printf("  %s App router\n", dim("✗"))
	}
	if structure.HasPagesRouter {
		fmt.Printf("  %s Pages router    %s\n", green("✓"), structure.PagesDirectory)
	} else {
		fmt.Printf("  %s Pages router\n", dim("✗"))
	}
	if !structure.HasAppRouter && !structure.HasPagesRouter {
		fmt.Printf("\n  No Next.js router directories found\n")
	}
	fmt.Println()
}
