package normalize

import (
	"strings"
	"testing"

	"github.com/gaurav-prasanna/clipmark/core"
	"golang.org/x/net/html"
)

func makeClip(t *testing.T, fragment string, baseURL string) *core.Clip {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return &core.Clip{Root: doc, HTML: fragment, BaseURL: baseURL}
}

func TestTreeNormalizer(t *testing.T) {
	clip := makeClip(t, `<h2>Title</h2><p>Hello <b>World</b> <a href="/x">go</a></p>`, "https://example.com/dir/page.html")

	md, err := NewTree().Normalize(clip)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"## Title",
		"**World**",
		"[go](https://example.com/x)",
	} {
		if !strings.Contains(md, want) {
			t.Fatalf("markdown missing %q:\n%s", want, md)
		}
	}
	if strings.Contains(md, "\n\n\n") || md != strings.TrimSpace(md) {
		t.Fatalf("markdown not finalized: %q", md)
	}
}

func TestTreeNormalizer_EmptyClip(t *testing.T) {
	md, err := NewTree().Normalize(makeClip(t, "", ""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if md != "" {
		t.Fatalf("empty clip should produce empty markdown, got %q", md)
	}
}

func TestFidelityNormalizer(t *testing.T) {
	clip := makeClip(t, `<h2>Title</h2><p>Hello <strong>World</strong></p>`, "")

	md, err := NewFidelity().Normalize(clip)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(md, "Title") || !strings.Contains(md, "**World**") {
		t.Fatalf("unexpected markdown: %q", md)
	}
}
