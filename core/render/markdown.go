// Package render provides output renderers for the clipmark pipeline.
// This file implements the Markdown renderer, which wraps the converted
// body with the clip document header (title, source, timestamp).
package render

import (
	"strings"

	"github.com/gaurav-prasanna/clipmark/core"
)

// MarkdownRenderer writes the canonical Markdown document.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render wraps the Markdown body with a document header naming the
// source page and clip time, separated from the body by a rule.
// Clips from local files or stdin have no source URL; the header then
// carries only what is known.
func (r *MarkdownRenderer) Render(markdown string, meta core.ClipMetadata) ([]byte, error) {
	var b strings.Builder

	if meta.Title != "" {
		b.WriteString("# " + meta.Title + "\n\n")
	}
	if meta.URL != "" {
		b.WriteString("Source: " + meta.URL + "\n")
	}
	if meta.ClippedAt != "" {
		b.WriteString("Clipped: " + meta.ClippedAt + "\n")
	}
	if b.Len() > 0 {
		b.WriteString("\n---\n\n")
	}
	b.WriteString(markdown)
	b.WriteString("\n")

	return []byte(b.String()), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}
