// Package commands provides the CLI commands for nextlens.
package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alexberriman/nextlens/internal/logging"
	"github.com/alexberriman/nextlens/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "nextlens",
	Short: "nextlens - Next.js route and router discovery",
	Long: `nextlens statically analyzes a JavaScript or TypeScript project and
reconstructs its routing topology. The target project is never executed.

Quick Start:
  nextlens structure .     Detect app/pages router directories
  nextlens routes .        List page and API routes
  nextlens middleware .    Inspect middleware and config rules
  nextlens detect .        Find react-router definition files
  nextlens analyze .       Run the full analysis
  nextlens serve .         Expose the analysis over HTTP
  nextlens watch .         Re-run the analysis on file changes
  nextlens mcp .           Serve the analyzers as MCP tools

Documentation: https://github.com/alexberriman/nextlens`,
	Version: version.GetVersion(),
}

var (
	verbose  bool
	logLevel string
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for automation and LLM agents)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug|info|warn|error|off)")
}

// newLogger builds the logger the analysis packages use, honoring the
// global flags. Human commands keep the log stream quiet by default so
// structured progress does not interleave with formatted output.
func newLogger() *logging.Logger {
	level := logging.LevelOff
	if logLevel != "" {
		level = logging.ParseLevel(logLevel)
	} else if verbose {
		level = logging.LevelDebug
	}

	format := logging.FormatHuman
	if jsonOutput {
		format = logging.FormatJSON
	}

	return logging.New(logging.Config{Level: level, Format: format})
}

// projectConfig is the optional nextlens.yaml in the analyzed project.
type projectConfig struct {
	Extensions     []string `mapstructure:"extensions"`
	IgnorePatterns []string `mapstructure:"ignore"`
}

// loadProjectConfig reads nextlens.yaml from the project root. A
// missing file is fine; a malformed one is an error.
func loadProjectConfig(root string) (projectConfig, error) {
	v := viper.New()
	v.SetConfigName("nextlens")
	v.SetConfigType("yaml")
	v.AddConfigPath(root)

	var cfg projectConfig
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read nextlens.yaml: %w", err)
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("parse nextlens.yaml: %w", err)
	}
	return cfg, nil
}

// projectPath resolves the optional positional path argument.
func projectPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

// absProjectPath is projectPath made absolute for display.
func absProjectPath(args []string) string {
	abs, err := filepath.Abs(projectPath(args))
	if err != nil {
		return projectPath(args)
	}
	return abs
}
