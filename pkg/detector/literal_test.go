package detector

import "testing"

func TestMatchDelim(t *testing.T) {
	tests := []struct {
		name string
		s    string
		open int
		want int
	}{
		{"flat array", `[1, 2]`, 0, 5},
		{"nested array", `[[1], 2]`, 0, 7},
		{"bracket inside string", `['a]b']`, 0, 6},
		{"unterminated", `[1, 2`, 0, -1},
		{"object", `{a: 1}`, 0, 5},
		{"parens", `(x)`, 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchDelim(tt.s, tt.open); got != tt.want {
				t.Errorf("matchDelim(%q, %d) = %d, want %d", tt.s, tt.open, got, tt.want)
			}
		})
	}
}

func TestTopLevelObjects(t *testing.T) {
	body := `{ path: '/' }, { path: '/x', children: [{ path: 'y' }] }`
	objects := topLevelObjects(body)
	if len(objects) != 2 {
		t.Fatalf("got %d objects, want 2: %v", len(objects), objects)
	}
	if objects[0] != `{ path: '/' }` {
		t.Errorf("objects[0] = %q", objects[0])
	}
}

func TestParseRouteObject(t *testing.T) {
	t.Run("path only", func(t *testing.T) {
		route, ok := parseRouteObject(`{ path: '/about', element: x }`)
		if !ok || route.Path != "/about" {
			t.Errorf("route = %+v, ok = %v", route, ok)
		}
	})

	t.Run("nested path is not the parent's", func(t *testing.T) {
		route, ok := parseRouteObject(`{ children: [{ path: '/inner' }] }`)
		if !ok {
			t.Fatal("expected ok")
		}
		if route.Path != "" {
			t.Errorf("parent path = %q, want empty", route.Path)
		}
		if len(route.Children) != 1 || route.Children[0].Path != "/inner" {
			t.Errorf("children = %+v", route.Children)
		}
	})

	t.Run("no route fields", func(t *testing.T) {
		if _, ok := parseRouteObject(`{ element: x }`); ok {
			t.Error("expected ok=false for object without route fields")
		}
	})
}
