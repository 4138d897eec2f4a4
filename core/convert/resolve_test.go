package convert

import "testing"

func TestResolveURL(t *testing.T) {
	const base = "https://example.com/dir/page.html"

	tests := []struct {
		name   string
		urlStr string
		base   string
		want   string
	}{
		{"empty returns empty", "", base, ""},
		{"absolute passthrough", "https://other.org/a", base, "https://other.org/a"},
		{"root relative", "/x", base, "https://example.com/x"},
		{"path relative", "pic.png", base, "https://example.com/dir/pic.png"},
		{"dotdot relative", "../up.html", base, "https://example.com/up.html"},
		{"fragment only", "#sec", base, "https://example.com/dir/page.html#sec"},
		{"query only", "?q=1", base, "https://example.com/dir/page.html?q=1"},
		{"protocol relative", "//cdn.example.net/lib.js", base, "https://cdn.example.net/lib.js"},
		{"javascript untouched", "javascript:alert(1)", base, "javascript:alert(1)"},
		{"malformed escape passthrough", "%zz", base, "%zz"},
		{"malformed scheme passthrough", "://nope", base, "://nope"},
		{"empty base passthrough", "/x", "", "/x"},
		{"relative base passthrough", "/x", "not-a-base", "/x"},
		{"malformed base passthrough", "/x", "http://bad\x7fhost/", "/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveURL(tt.urlStr, tt.base); got != tt.want {
				t.Fatalf("ResolveURL(%q, %q) = %q, want %q", tt.urlStr, tt.base, got, tt.want)
			}
		})
	}
}

// Empty input maps to empty output no matter the base, including bases
// that are themselves broken.
func TestResolveURL_EmptyAlwaysEmpty(t *testing.T) {
	for _, base := range []string{"", "https://example.com", "://nope", "relative/only"} {
		if got := ResolveURL("", base); got != "" {
			t.Fatalf("ResolveURL(%q, %q) = %q, want empty", "", base, got)
		}
	}
}
