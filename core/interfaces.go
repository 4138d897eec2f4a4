// Package core defines the pipeline interfaces for clipmark.
// Each stage of the pipeline is a clean, testable interface:
// fetch → select → normalize → render → write.
package core

import (
	"context"

	"golang.org/x/net/html"
)

// FetchResult holds the raw HTML of a page and where it came from.
// URL is empty when the source was a local file or stdin.
type FetchResult struct {
	URL        string
	StatusCode int
	HTML       string
}

// Clip is the user's selection, ready for conversion: the fragment
// root, its serialized HTML, a plain-text fallback, and the page's
// effective base URL (any in-document <base href> already applied).
type Clip struct {
	Root    *html.Node
	HTML    string
	Text    string
	Title   string
	BaseURL string
}

// ClipMetadata describes the source of a clip.
type ClipMetadata struct {
	URL       string `json:"url"`
	Domain    string `json:"domain"`
	Title     string `json:"title"`
	ClippedAt string `json:"clipped_at"` // RFC3339
}

// Heading is a single heading found in the converted Markdown.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// Link is a hyperlink found in the converted Markdown.
type Link struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// Image is an image reference found in the converted Markdown.
type Image struct {
	Alt string `json:"alt"`
	Src string `json:"src"`
}

// ClipContent holds the document body in its two forms.
type ClipContent struct {
	Markdown string `json:"markdown"`
	Text     string `json:"text"`
}

// ClipStructure summarizes the Markdown structure for JSON output.
type ClipStructure struct {
	Headings   []Heading `json:"headings"`
	Links      []Link    `json:"links"`
	Images     []Image   `json:"images"`
	CodeBlocks int       `json:"code_blocks"`
	Lists      int       `json:"lists"`
}

// ClipJSON is the complete JSON output for a single clip.
type ClipJSON struct {
	Metadata  ClipMetadata  `json:"metadata"`
	Content   ClipContent   `json:"content"`
	Structure ClipStructure `json:"structure"`
}

// Fetcher retrieves raw HTML from a URL, file path, or stdin.
type Fetcher interface {
	Fetch(ctx context.Context, source string) (*FetchResult, error)
}

// Selector picks the clipped fragment out of a full page.
type Selector interface {
	Select(html string, pageURL string, cssSelector string) (*Clip, error)
}

// Normalizer converts a clip into Markdown (the canonical format).
type Normalizer interface {
	Normalize(clip *Clip) (string, error)
}

// Renderer converts Markdown (and metadata) into a final output format.
type Renderer interface {
	Render(markdown string, meta ClipMetadata) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md", ".pdf").
	Extension() string
}
