package nextjs

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/alexberriman/nextlens/internal/logging"
)

func TestParseMatcher(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name: "bracketed list",
			content: `export const config = {
  matcher: ['/api/:path*', '/admin/:path*'],
}`,
			want: []string{"/api/:path*", "/admin/:path*"},
		},
		{
			name:    "bare string normalizes to one-element list",
			content: `export const config = { matcher: '/api/:path*' }`,
			want:    []string{"/api/:path*"},
		},
		{
			name:    "double-quoted string",
			content: `export const config = { matcher: "/dashboard/:path*" }`,
			want:    []string{"/dashboard/:path*"},
		},
		{
			name:    "single entry list",
			content: `matcher: ["/about"]`,
			want:    []string{"/about"},
		},
		{
			name:    "no matcher",
			content: `export function middleware(req) { return NextResponse.next() }`,
			want:    nil,
		},
		{
			name:    "malformed matcher degrades to not found",
			content: `matcher: buildMatchers()`,
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseMatcher(tt.content)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseMatcher() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindMiddleware(t *testing.T) {
	t.Run("no middleware", func(t *testing.T) {
		info := FindMiddleware(t.TempDir(), logging.Nop())
		if info.Exists {
			t.Error("expected Exists=false")
		}
		if info.FilePath != "" || info.Matcher != nil {
			t.Errorf("fields must be empty when middleware is absent: %+v", info)
		}
	})

	t.Run("root middleware.ts", func(t *testing.T) {
		tmpDir := t.TempDir()
		content := `export const config = { matcher: ['/api/:path*', '/admin/:path*'] }`
		path := filepath.Join(tmpDir, "middleware.ts")
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write middleware: %v", err)
		}

		info := FindMiddleware(tmpDir, logging.Nop())
		if !info.Exists {
			t.Fatal("expected Exists=true")
		}
		if info.FilePath != path {
			t.Errorf("FilePath = %q, want %q", info.FilePath, path)
		}
		want := []string{"/api/:path*", "/admin/:path*"}
		if !reflect.DeepEqual(info.Matcher, want) {
			t.Errorf("Matcher = %v, want %v", info.Matcher, want)
		}
	})

	t.Run("root takes precedence over src", func(t *testing.T) {
		tmpDir := t.TempDir()
		if err := os.MkdirAll(filepath.Join(tmpDir, "src"), 0755); err != nil {
			t.Fatalf("failed to create src: %v", err)
		}
		rootPath := filepath.Join(tmpDir, "middleware.ts")
		srcPath := filepath.Join(tmpDir, "src", "middleware.ts")
		if err := os.WriteFile(rootPath, []byte(`matcher: '/root'`), 0644); err != nil {
			t.Fatalf("failed to write root middleware: %v", err)
		}
		if err := os.WriteFile(srcPath, []byte(`matcher: '/src'`), 0644); err != nil {
			t.Fatalf("failed to write src middleware: %v", err)
		}

		info := FindMiddleware(tmpDir, logging.Nop())
		if info.FilePath != rootPath {
			t.Errorf("FilePath = %q, want root candidate %q", info.FilePath, rootPath)
		}
	})

	t.Run("js fallback", func(t *testing.T) {
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, "middleware.js")
		if err := os.WriteFile(path, []byte(`matcher: '/only'`), 0644); err != nil {
			t.Fatalf("failed to write middleware: %v", err)
		}

		info := FindMiddleware(tmpDir, logging.Nop())
		if !info.Exists || info.FilePath != path {
			t.Errorf("expected js candidate %q, got %+v", path, info)
		}
	})
}

const sampleConfig = `/** @type {import('next').NextConfig} */
const nextConfig = {
  reactStrictMode: true,
  async rewrites() {
    return [
      { source: '/old-blog/:slug', destination: '/blog/:slug' },
      { source: '/docs', destination: '/documentation' },
    ];
  },
  async redirects() {
    return [
      { source: '/home', destination: '/', permanent: true },
      { source: '/temp', destination: '/new', permanent: false, statusCode: 307 },
    ];
  },
};

module.exports = nextConfig;
`

func TestParseRewrites(t *testing.T) {
	rules := ParseRewrites(sampleConfig)
	want := []RewriteRule{
		{Source: "/old-blog/:slug", Destination: "/blog/:slug"},
		{Source: "/docs", Destination: "/documentation"},
	}
	if !reflect.DeepEqual(rules, want) {
		t.Errorf("ParseRewrites = %v, want %v", rules, want)
	}
}

func TestParseRewrites_Absent(t *testing.T) {
	if rules := ParseRewrites(`module.exports = {}`); rules != nil {
		t.Errorf("expected nil, got %v", rules)
	}
}

func TestParseRedirects(t *testing.T) {
	rules := ParseRedirects(sampleConfig)
	if len(rules) != 2 {
		t.Fatalf("got %d redirects, want 2", len(rules))
	}

	if rules[0].Source != "/home" || rules[0].Destination != "/" || !rules[0].Permanent {
		t.Errorf("rules[0] = %+v", rules[0])
	}
	if rules[0].StatusCode != 0 {
		t.Errorf("rules[0].StatusCode = %d, want 0 (unset)", rules[0].StatusCode)
	}
	if rules[1].Permanent {
		t.Errorf("rules[1].Permanent = true, want false")
	}
	if rules[1].StatusCode != 307 {
		t.Errorf("rules[1].StatusCode = %d, want 307", rules[1].StatusCode)
	}
}

func TestAnalyzeConfig(t *testing.T) {
	t.Run("no config file", func(t *testing.T) {
		rewrites, redirects := AnalyzeConfig(t.TempDir(), logging.Nop())
		if rewrites != nil || redirects != nil {
			t.Errorf("expected empty lists, got %v / %v", rewrites, redirects)
		}
	})

	t.Run("config with rules", func(t *testing.T) {
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, "next.config.js")
		if err := os.WriteFile(path, []byte(sampleConfig), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		rewrites, redirects := AnalyzeConfig(tmpDir, logging.Nop())
		if len(rewrites) != 2 {
			t.Errorf("got %d rewrites, want 2", len(rewrites))
		}
		if len(redirects) != 2 {
			t.Errorf("got %d redirects, want 2", len(redirects))
		}
	})

	t.Run("malformed config degrades to empty", func(t *testing.T) {
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, "next.config.js")
		if err := os.WriteFile(path, []byte(`module.exports = buildConfig()`), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		rewrites, redirects := AnalyzeConfig(tmpDir, logging.Nop())
		if rewrites != nil || redirects != nil {
			t.Errorf("expected empty lists, got %v / %v", rewrites, redirects)
		}
	})
}
