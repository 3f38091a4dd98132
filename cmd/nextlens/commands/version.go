package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/alexberriman/nextlens/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run:   runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) {
	if jsonOutput {
		printSuccess(map[string]string{
			"version": version.GetVersion(),
			"go":      runtime.Version(),
			"os":      runtime.GOOS,
			"arch":    runtime.GOARCH,
		})
		return
	}
	fmt.Printf("nextlens %s (%s %s/%s)\n", version.GetVersion(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
