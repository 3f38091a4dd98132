package commands

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/alexberriman/nextlens/internal/version"
	"github.com/alexberriman/nextlens/pkg/nextjs"
)

var serveCmd = &cobra.Command{
	Use:   "serve [path]",
	Short: "Expose the analysis over HTTP",
	Long: `Start a local HTTP server exposing the analysis as JSON endpoints.

Endpoints:
  GET /api/structure    Router directory detection
  GET /api/routes       Page and API routes
  GET /api/middleware   Middleware and config rules
  GET /api/routers      Detected react-router files
  GET /api/analysis     Everything in one document
  GET /healthz          Liveness check

Each request re-runs the analysis, so results always reflect the
current state of the source tree.

Examples:
  nextlens serve
  nextlens serve ./my-app --port 9000
  nextlens serve ./my-app --open`,
	Args: cobra.MaximumNArgs(1),
	Run:  runServe,
}

var (
	servePort string
	serveHost string
	serveOpen bool
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&servePort, "port", "p", "4551", "Port to serve on")
	serveCmd.Flags().StringVarP(&serveHost, "host", "H", "127.0.0.1", "Host to bind to")
	serveCmd.Flags().BoolVar(&serveOpen, "open", false, "Open the analysis in a browser")
}

func runServe(cmd *cobra.Command, args []string) {
	cyan := color.New(color.FgCyan).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	path := absProjectPath(args)

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		writeServeJSON(w, map[string]string{"status": "ok", "version": version.GetVersion()})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/structure", func(w http.ResponseWriter, req *http.Request) {
			structure, err := nextjs.DetectStructure(path, newLogger())
			if err != nil {
				writeServeError(w, err)
				return
			}
			writeServeJSON(w, structure)
		})
		r.Get("/routes", func(w http.ResponseWriter, req *http.Request) {
			out, err := collectRoutes(path)
			if err != nil {
				writeServeError(w, err)
				return
			}
			writeServeJSON(w, out)
		})
		r.Get("/middleware", func(w http.ResponseWriter, req *http.Request) {
			writeServeJSON(w, collectMiddleware(path))
		})
		r.Get("/routers", func(w http.ResponseWriter, req *http.Request) {
			out, err := collectRouters(path)
			if err != nil {
				writeServeError(w, err)
				return
			}
			writeServeJSON(w, out)
		})
		r.Get("/analysis", func(w http.ResponseWriter, req *http.Request) {
			out, err := collectAnalysis(path)
			if err != nil {
				writeServeError(w, err)
				return
			}
			writeServeJSON(w, out)
		})
	})

	addr := fmt.Sprintf("%s:%s", serveHost, servePort)
	url := fmt.Sprintf("http://%s/api/analysis", addr)

	fmt.Printf("\n  %s Analysis Server\n\n", cyan("nextlens"))
	fmt.Printf("  Project:  %s\n", path)
	fmt.Printf("  %s Serving on %s\n\n", green("➜"), cyan(url))
	fmt.Printf("  Press %s to stop\n\n", yellow("Ctrl+C"))

	if serveOpen {
		if err := browser.OpenURL(url); err != nil {
			fmt.Printf("  %s Could not open browser: %v\n", yellow("Warning:"), err)
		}
	}

	server := &http.Server{Addr: addr, Handler: r}
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		fmt.Printf("  %s Server error: %v\n\n", red("Error:"), err)
		os.Exit(1)
	}
}

func writeServeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(JSONResponse{Success: true, Data: v})
}

func writeServeError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	_ = json.NewEncoder(w).Encode(JSONResponse{Success: false, Error: err.Error()})
}
