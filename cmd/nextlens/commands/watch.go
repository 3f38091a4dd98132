package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/alexberriman/nextlens/pkg/runner"
)

var watchCmd = &cobra.Command{
	Use:   "watch [path]",
	Short: "Re-run the analysis when source files change",
	Long: `Watch a project's source tree and re-run the routing analysis on
every change to a JavaScript or TypeScript file.

With --exec, an external command runs after each analysis pass, for
example to regenerate typed route helpers.

Examples:
  nextlens watch
  nextlens watch ./my-app
  nextlens watch ./my-app --exec "npm run codegen"`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWatch,
}

var watchExec string

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVar(&watchExec, "exec", "", "Command to run after each analysis pass")
}

func runWatch(cmd *cobra.Command, args []string) {
	cyan := color.New(color.FgCyan).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	path := absProjectPath(args)

	if !jsonOutput {
		fmt.Printf("\n  %s Watch\n\n", cyan("nextlens"))
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		if jsonOutput {
			printJSONError(err)
		} else {
			fmt.Printf("  %s Failed to create file watcher: %v\n", red("Error:"), err)
		}
		os.Exit(1)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the tree recursively, skipping the directories the scanner
	// skips too.
	_ = filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			name := info.Name()
			if p != path && (strings.HasPrefix(name, ".") || name == "node_modules" || name == "dist" || name == "build" || name == "out") {
				return filepath.SkipDir
			}
			_ = watcher.Add(p)
		}
		return nil
	})

	runPass(path, "initial")

	if !jsonOutput {
		fmt.Printf("  %s Watching for changes...\n\n", green("✓"))
	}

	var debounceTimer *time.Timer
	debounceDuration := 100 * time.Millisecond

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			ext := filepath.Ext(event.Name)
			if ext != ".js" && ext != ".jsx" && ext != ".ts" && ext != ".tsx" {
				continue
			}

			// New directories need watching too.
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = watcher.Add(event.Name)
				}
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			name := event.Name
			debounceTimer = time.AfterFunc(debounceDuration, func() {
				runPass(path, name)
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			if !jsonOutput {
				fmt.Printf("  %s Watcher error: %v\n", yellow("Warning:"), err)
			}

		case <-signals:
			if !jsonOutput {
				fmt.Println("\n  Shutting down...")
			}
			return
		}
	}
}

// runPass runs one analysis pass and the optional --exec command.
func runPass(path, trigger string) {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	timestamp := time.Now().Format("15:04:05")

	out, err := collectAnalysis(path)
	if err != nil {
		if jsonOutput {
			printJSONError(err)
		} else {
			fmt.Printf("  [%s] %s analysis failed: %v\n", timestamp, red("✗"), err)
		}
		return
	}

	result := WatchRunOutput{
		Trigger:      trigger,
		TotalRoutes:  len(out.Routes),
		TotalRouters: len(out.Routers),
	}

	if watchExec != "" {
		parts := strings.Fields(watchExec)
		r := &runner.ExecRunner{Dir: path}
		execResult, err := r.Run(context.Background(), parts[0], parts[1:]...)
		if err != nil {
			if jsonOutput {
				printJSONError(err)
			} else {
				fmt.Printf("  [%s] %s exec failed: %v\n", timestamp, red("✗"), err)
			}
			return
		}
		result.ExecExit = &execResult.ExitCode
	}

	if jsonOutput {
		printSuccess(result)
		return
	}

	fmt.Printf("  [%s] %s %d routes, %d router files %s\n",
		timestamp, green("✓"), result.TotalRoutes, result.TotalRouters, dim(fmt.Sprintf("(%s)", filepath.Base(trigger))))
	if result.ExecExit != nil && *result.ExecExit != 0 {
		fmt.Printf("  [%s] %s exec exited with code %d\n", timestamp, red("✗"), *result.ExecExit)
	}
}
