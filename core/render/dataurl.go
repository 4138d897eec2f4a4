// Package render — data-URL renderer.
// Encodes the full Markdown document as a base64 data URL, the form a
// browser download action consumes directly.
package render

import (
	"encoding/base64"

	"github.com/gaurav-prasanna/clipmark/core"
)

const dataURLPrefix = "data:text/markdown;charset=utf-8;base64,"

// DataURLRenderer produces a base64 data URL of the Markdown document.
type DataURLRenderer struct {
	markdown *MarkdownRenderer
}

// NewDataURLRenderer creates a DataURLRenderer.
func NewDataURLRenderer() *DataURLRenderer {
	return &DataURLRenderer{markdown: NewMarkdownRenderer()}
}

// Render builds the headed Markdown document and base64-encodes it
// into a data URL.
func (r *DataURLRenderer) Render(markdown string, meta core.ClipMetadata) ([]byte, error) {
	doc, err := r.markdown.Render(markdown, meta)
	if err != nil {
		return nil, err
	}
	return []byte(dataURLPrefix + base64.StdEncoding.EncodeToString(doc)), nil
}

// Extension returns the file extension for data-URL output.
func (r *DataURLRenderer) Extension() string {
	return ".dataurl.txt"
}
