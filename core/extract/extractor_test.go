package extract

import (
	"strings"
	"testing"
)

const pageURL = "https://example.com/dir/page.html"

func TestSelect_PrefersMainContainer(t *testing.T) {
	rawHTML := `<html><head><title>My Page</title></head><body>
		<nav>menu</nav>
		<main><p>main content</p></main>
	</body></html>`

	clip, err := New().Select(rawHTML, pageURL, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(clip.HTML, "main content") {
		t.Fatalf("expected main content in fragment, got: %s", clip.HTML)
	}
	if strings.Contains(clip.HTML, "menu") {
		t.Fatalf("nav should not be part of the <main> fragment: %s", clip.HTML)
	}
	if clip.Title != "My Page" {
		t.Fatalf("title = %q, want %q", clip.Title, "My Page")
	}
	if clip.BaseURL != pageURL {
		t.Fatalf("base = %q, want page URL %q", clip.BaseURL, pageURL)
	}
}

func TestSelect_FallsBackToBody(t *testing.T) {
	clip, err := New().Select(`<p>just a body</p>`, pageURL, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(clip.HTML, "just a body") {
		t.Fatalf("expected body fallback, got: %s", clip.HTML)
	}
}

func TestSelect_CSSSelector(t *testing.T) {
	rawHTML := `<body>
		<div class="sidebar">junk</div>
		<article class="post"><h2>Post</h2></article>
	</body>`

	clip, err := New().Select(rawHTML, pageURL, "article.post")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(clip.HTML, "Post") {
		t.Fatalf("expected selected article, got: %s", clip.HTML)
	}
	if strings.Contains(clip.HTML, "junk") {
		t.Fatalf("sidebar should not be selected: %s", clip.HTML)
	}
}

func TestSelect_SelectorMatchesNothing(t *testing.T) {
	_, err := New().Select(`<p>content</p>`, pageURL, "#nope")
	if err == nil {
		t.Fatal("expected an error for a selector that matches nothing")
	}
}

func TestSelect_StripsScripts(t *testing.T) {
	rawHTML := `<body><p>keep</p><script>alert(1)</script><style>p{}</style></body>`

	clip, err := New().Select(rawHTML, pageURL, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(clip.HTML, "alert") || strings.Contains(clip.HTML, "p{}") {
		t.Fatalf("script/style should be stripped, got: %s", clip.HTML)
	}
	if !strings.Contains(clip.HTML, "keep") {
		t.Fatalf("content should survive stripping, got: %s", clip.HTML)
	}
}

func TestSelect_KeepsImages(t *testing.T) {
	clip, err := New().Select(`<body><p>text <img src="pic.png"></p></body>`, pageURL, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(clip.HTML, "img") {
		t.Fatalf("a clip keeps its images, got: %s", clip.HTML)
	}
}

func TestSelect_BaseOverride(t *testing.T) {
	rawHTML := `<html><head><base href="/assets/"></head><body><p>x</p></body></html>`

	clip, err := New().Select(rawHTML, pageURL, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if clip.BaseURL != "https://example.com/assets/" {
		t.Fatalf("base = %q, want %q", clip.BaseURL, "https://example.com/assets/")
	}
}

func TestSelect_PlainTextFallback(t *testing.T) {
	rawHTML := "<body><p>first\n\n   line</p><p>second</p></body>"

	clip, err := New().Select(rawHTML, pageURL, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(clip.Text, "\n") || strings.Contains(clip.Text, "  ") {
		t.Fatalf("fallback text not compacted: %q", clip.Text)
	}
	if !strings.Contains(clip.Text, "first") || !strings.Contains(clip.Text, "second") {
		t.Fatalf("fallback text missing content: %q", clip.Text)
	}
}
