package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/alexberriman/nextlens/pkg/nextjs"
)

var openapiCmd = &cobra.Command{
	Use:   "openapi [path]",
	Short: "Export discovered API routes as an OpenAPI specification",
	Long: `Generate an OpenAPI 3.1 specification from the API routes discovered
in a project's pages directory.

Handler methods are not statically known, so each path documents a
generic GET operation with its path parameters.

Examples:
  nextlens openapi
  nextlens openapi ./my-app --format yaml
  nextlens openapi ./my-app --title "My API" --api-version 2.0.0
  nextlens openapi ./my-app --openapi30`,
	Args: cobra.MaximumNArgs(1),
	Run:  runOpenAPI,
}

var (
	openapiOutput    string
	openapiFormat    string
	openapiTitle     string
	openapiVersion   string
	openapiDesc      string
	openapiServerURL string
	openapiOpenAPI30 bool
)

func init() {
	rootCmd.AddCommand(openapiCmd)

	openapiCmd.Flags().StringVarP(&openapiOutput, "output", "o", "openapi.json", "Output file path")
	openapiCmd.Flags().StringVarP(&openapiFormat, "format", "f", "json", "Output format (json|yaml)")
	openapiCmd.Flags().StringVar(&openapiTitle, "title", "", "API title (defaults to project name)")
	openapiCmd.Flags().StringVar(&openapiVersion, "api-version", "1.0.0", "API version")
	openapiCmd.Flags().StringVar(&openapiDesc, "description", "", "API description")
	openapiCmd.Flags().StringVar(&openapiServerURL, "server", "", "Server URL (e.g., http://localhost:3000)")
	openapiCmd.Flags().BoolVar(&openapiOpenAPI30, "openapi30", false, "Use OpenAPI 3.0.3 instead of 3.1.0")
}

func runOpenAPI(cmd *cobra.Command, args []string) {
	cyan := color.New(color.FgCyan).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	path := absProjectPath(args)
	fail := func(err error) {
		if jsonOutput {
			printJSONError(err)
		} else {
			fmt.Printf("  %s %v\n", red("Error:"), err)
		}
		os.Exit(1)
	}

	if !jsonOutput {
		fmt.Printf("\n  %s OpenAPI Export\n\n", cyan("nextlens"))
	}

	logger := newLogger()
	structure, err := nextjs.DetectStructure(path, logger)
	if err != nil {
		fail(err)
	}
	if !structure.HasPagesRouter {
		fail(fmt.Errorf("no pages directory found in %s", path))
	}

	routes, err := nextjs.ScanPageRoutes(structure.PagesDirectory, logger)
	if err != nil {
		fail(err)
	}

	apiCount := 0
	for _, r := range routes {
		if r.IsAPIRoute {
			apiCount++
		}
	}
	if !jsonOutput {
		fmt.Printf("  %s Found %d API routes\n", green("✓"), apiCount)
	}

	title := openapiTitle
	if title == "" {
		title = projectNameFromPackageJSON(path)
	}

	config := nextjs.OpenAPIConfig{
		Title:       title,
		Version:     openapiVersion,
		Description: openapiDesc,
		ServerURL:   openapiServerURL,
	}
	if openapiOpenAPI30 {
		config.OpenAPIVersion = "3.0.3"
	}

	doc, err := nextjs.GenerateOpenAPI(routes, config)
	if err != nil {
		fail(err)
	}

	data, err := nextjs.MarshalOpenAPI(doc, openapiFormat)
	if err != nil {
		fail(err)
	}

	if err := os.WriteFile(openapiOutput, data, 0644); err != nil {
		fail(fmt.Errorf("write %s: %w", openapiOutput, err))
	}

	size := formatBytes(int64(len(data)))

	if jsonOutput {
		printSuccess(OpenAPIOutput{
			File:      openapiOutput,
			Format:    openapiFormat,
			Version:   doc.OpenAPI,
			APIRoutes: apiCount,
			Size:      size,
		})
		return
	}

	fmt.Printf("  %s Spec generated\n\n", green("✓"))
	fmt.Printf("  Output:  %s\n", green(openapiOutput))
	fmt.Printf("  Format:  OpenAPI %s (%s)\n", doc.OpenAPI, openapiFormat)
	fmt.Printf("  Routes:  %d\n", apiCount)
	fmt.Printf("  Size:    %s\n\n", dim(size))
}

// projectNameFromPackageJSON reads the project name from package.json,
// falling back to an empty string.
func projectNameFromPackageJSON(root string) string {
	data, err := os.ReadFile(filepath.Join(root, "package.json"))
	if err != nil {
		return ""
	}
	var pkg struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &pkg); err != nil {
		return ""
	}
	return pkg.Name
}
