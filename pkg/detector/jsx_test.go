package detector

import (
	"testing"

	"github.com/alexberriman/nextlens/internal/logging"
)

func TestJSXStrategy_Gates(t *testing.T) {
	s := NewJSXStrategy()

	tests := []struct {
		name           string
		content        string
		wantImports    bool
		wantComponents bool
	}{
		{
			name:           "import and usage",
			content:        `import { Routes, Route } from 'react-router-dom';` + "\n" + `<Routes><Route path="/" /></Routes>`,
			wantImports:    true,
			wantComponents: true,
		},
		{
			name:        "import without usage",
			content:     `import { useNavigate } from 'react-router-dom';`,
			wantImports: true,
		},
		{
			name:           "usage without import",
			content:        `<Routes><Route path="/" /></Routes>`,
			wantComponents: true,
		},
		{
			name:    "unrelated file",
			content: `export const add = (a, b) => a + b;`,
		},
		{
			name:        "RouterProvider is not a JSX route element",
			content:     `import { RouterProvider } from 'react-router-dom'; <RouterProvider router={r} />`,
			wantImports: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.HasImports(tt.content); got != tt.wantImports {
				t.Errorf("HasImports = %v, want %v", got, tt.wantImports)
			}
			if got := s.HasComponents(tt.content); got != tt.wantComponents {
				t.Errorf("HasComponents = %v, want %v", got, tt.wantComponents)
			}
		})
	}
}

func TestJSXStrategy_ExtractRoutes(t *testing.T) {
	s := NewJSXStrategy()

	content := `import { Routes, Route } from 'react-router-dom';

export default function App() {
  return (
    <Routes>
      <Route path="/" element={<Home />} />
      <Route path="/about" element={<About />} />
      <Route path="/users/:id" element={<User />} />
      <Route path={"/docs/*"} element={<Docs />} />
      <Route index element={<Index />} />
    </Routes>
  );
}
`

	routes := s.ExtractRoutes(content, logging.Nop())
	if len(routes) != 4 {
		t.Fatalf("got %d routes, want 4: %+v", len(routes), routes)
	}

	wantPaths := []string{"/", "/about", "/users/:id", "/docs/*"}
	for i, want := range wantPaths {
		if routes[i].Path != want {
			t.Errorf("routes[%d].Path = %q, want %q", i, routes[i].Path, want)
		}
	}

	if routes[0].HasDynamicSegments || routes[1].HasDynamicSegments {
		t.Error("static paths must not be dynamic")
	}
	if !routes[2].HasDynamicSegments {
		t.Error("/users/:id must be dynamic")
	}
	if !routes[3].HasDynamicSegments {
		t.Error("/docs/* must be dynamic")
	}
}

func TestJSXStrategy_ExtractRoutes_Dedupe(t *testing.T) {
	s := NewJSXStrategy()

	content := `<Route path="/dup" /><Route path="/dup" />`
	routes := s.ExtractRoutes(content, logging.Nop())
	if len(routes) != 1 {
		t.Errorf("got %d routes, want 1 (deduplicated)", len(routes))
	}
}

func TestJSXStrategy_ExtractRoutes_Empty(t *testing.T) {
	s := NewJSXStrategy()

	routes := s.ExtractRoutes("nothing here", logging.Nop())
	if len(routes) != 0 {
		t.Errorf("got %d routes, want 0", len(routes))
	}
}
