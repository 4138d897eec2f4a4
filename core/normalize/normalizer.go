// Package normalize implements the Normalizer interface.
// It converts the clipped fragment into Markdown, which serves as the
// canonical intermediate format for all downstream renderers.
//
// Two engines are available: the tree engine (clipmark's own converter
// in core/convert, the default) and a fidelity engine backed by
// html-to-markdown for users who want fuller CommonMark output.
package normalize

import (
	"fmt"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/gaurav-prasanna/clipmark/core"
	"github.com/gaurav-prasanna/clipmark/core/convert"
)

// TreeNormalizer converts a clip with the core tree converter:
// per-tag rules, URL resolution against the clip's base, then
// whitespace finalization. It cannot fail.
type TreeNormalizer struct{}

// NewTree creates a TreeNormalizer.
func NewTree() *TreeNormalizer {
	return &TreeNormalizer{}
}

// Normalize converts the clip fragment into Markdown.
func (n *TreeNormalizer) Normalize(clip *core.Clip) (string, error) {
	root := convert.FromHTML(clip.Root)
	return convert.Finalize(convert.Convert(root, clip.BaseURL)), nil
}

// FidelityNormalizer converts a clip using html-to-markdown.
type FidelityNormalizer struct{}

// NewFidelity creates a FidelityNormalizer.
func NewFidelity() *FidelityNormalizer {
	return &FidelityNormalizer{}
}

// Normalize converts the serialized clip fragment into Markdown.
func (n *FidelityNormalizer) Normalize(clip *core.Clip) (string, error) {
	markdown, err := htmltomarkdown.ConvertString(clip.HTML)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return markdown, nil
}
