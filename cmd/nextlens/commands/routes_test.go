package commands

import (
	"os"
	"path/filepath"
	"testing"
)

func writeProjectFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create dir for %s: %v", name, err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
}

func TestCollectRoutes_PagesProject(t *testing.T) {
	tmpDir := t.TempDir()
	writeProjectFiles(t, tmpDir, map[string]string{
		"pages/index.tsx":        "export default {}",
		"pages/about.tsx":        "export default {}",
		"pages/blog/[slug].tsx":  "export default {}",
		"pages/api/users.ts":     "export default {}",
		"pages/api/[...path].ts": "export default {}",
	})

	out, err := collectRoutes(tmpDir)
	if err != nil {
		t.Fatalf("collectRoutes failed: %v", err)
	}

	if out.TotalRoutes != 5 {
		t.Errorf("TotalRoutes = %d, want 5", out.TotalRoutes)
	}
	if out.TotalAPI != 2 {
		t.Errorf("TotalAPI = %d, want 2", out.TotalAPI)
	}

	paths := make(map[string]bool)
	for _, r := range out.Routes {
		paths[r.RoutePath] = true
	}
	for _, want := range []string{"/", "/about", "/blog/[slug]", "/api/users"} {
		if !paths[want] {
			t.Errorf("missing route %s in %v", want, paths)
		}
	}
}

func TestCollectRoutes_AppProject(t *testing.T) {
	tmpDir := t.TempDir()
	writeProjectFiles(t, tmpDir, map[string]string{
		"app/page.tsx":           "export default {}",
		"app/layout.tsx":         "export default {}",
		"app/blog/loading.tsx":   "export default {}",
		"app/lib/helpers.ts":     "export {}",
		"app/api/users/route.ts": "export {}",
		"app/dashboard/page.tsx": "export default {}",
	})

	out, err := collectRoutes(tmpDir)
	if err != nil {
		t.Fatalf("collectRoutes failed: %v", err)
	}

	if out.TotalRoutes != 0 {
		t.Errorf("TotalRoutes = %d, want 0 for app-only project", out.TotalRoutes)
	}
	// helpers.ts is not a special file and must be filtered out.
	if len(out.SpecialFiles) != 5 {
		t.Fatalf("got %d special files, want 5: %+v", len(out.SpecialFiles), out.SpecialFiles)
	}
	for _, f := range out.SpecialFiles {
		if f.FileName == "helpers.ts" {
			t.Error("helpers.ts should not be classified as special")
		}
	}
}

func TestCollectRoutes_MissingProject(t *testing.T) {
	_, err := collectRoutes(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Fatal("expected error for missing project directory")
	}
}
