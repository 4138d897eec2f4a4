// Package render — JSON renderer.
// Builds the structured JSON output from Markdown and clip metadata.
// Parses the Markdown back out to report structure (headings, links,
// images, code blocks, lists) alongside the body.
package render

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/clipmark/core"
)

// JSONRenderer produces structured JSON output from Markdown.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render converts Markdown and metadata into the clip JSON structure.
func (r *JSONRenderer) Render(markdown string, meta core.ClipMetadata) ([]byte, error) {
	clip := core.ClipJSON{
		Metadata: meta,
		Content: core.ClipContent{
			Markdown: markdown,
			Text:     stripMarkdown(markdown),
		},
		Structure: core.ClipStructure{
			Headings:   extractHeadings(markdown),
			Links:      extractLinks(markdown),
			Images:     extractImages(markdown),
			CodeBlocks: countCodeBlocks(markdown),
			Lists:      countLists(markdown),
		},
	}

	data, err := json.MarshalIndent(clip, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}

// --- Markdown parsing helpers ---

var headingRegex = regexp.MustCompile(`(?m)^(#{1,6})\s+(.+)$`)

func extractHeadings(md string) []core.Heading {
	matches := headingRegex.FindAllStringSubmatch(md, -1)
	headings := make([]core.Heading, 0, len(matches))
	for _, m := range matches {
		headings = append(headings, core.Heading{
			Level: len(m[1]),
			Text:  strings.TrimSpace(m[2]),
		})
	}
	return headings
}

// imageRegex matches Markdown images ![alt](src); it must run before
// the link pass so images are not double-counted as links.
var imageRegex = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)

func extractImages(md string) []core.Image {
	matches := imageRegex.FindAllStringSubmatch(md, -1)
	images := make([]core.Image, 0, len(matches))
	for _, m := range matches {
		images = append(images, core.Image{
			Alt: m[1],
			Src: m[2],
		})
	}
	return images
}

// linkRegex matches Markdown links [text](url). Image syntax shares
// the shape, so callers strip images before matching.
var linkRegex = regexp.MustCompile(`\[([^\]]*)\]\(([^)]+)\)`)

func extractLinks(md string) []core.Link {
	matches := linkRegex.FindAllStringSubmatch(imageRegex.ReplaceAllString(md, ""), -1)
	links := make([]core.Link, 0, len(matches))
	for _, m := range matches {
		links = append(links, core.Link{
			Text: m[1],
			Href: m[2],
		})
	}
	return links
}

// countCodeBlocks counts fenced code blocks (``` delimited).
func countCodeBlocks(md string) int {
	return strings.Count(md, "```") / 2
}

// countLists counts list items (lines starting with - or * or 1.).
var listItemRegex = regexp.MustCompile(`(?m)^[\s]*[-*]\s|^[\s]*\d+\.\s`)

func countLists(md string) int {
	return len(listItemRegex.FindAllString(md, -1))
}

// stripMarkdown removes the formatting this pipeline emits to produce
// plain text.
func stripMarkdown(md string) string {
	text := md
	// Remove heading markers.
	text = headingRegex.ReplaceAllString(text, "$2")
	// Remove images entirely; their alt text is not body text.
	text = imageRegex.ReplaceAllString(text, "")
	// Remove links, keep text.
	text = linkRegex.ReplaceAllString(text, "$1")
	// Remove bold/italic.
	text = regexp.MustCompile(`\*{1,3}([^*]+)\*{1,3}`).ReplaceAllString(text, "$1")
	// Remove code block fences.
	text = strings.ReplaceAll(text, "```", "")
	// Remove inline code.
	text = regexp.MustCompile("`([^`]+)`").ReplaceAllString(text, "$1")
	// Collapse whitespace.
	text = regexp.MustCompile(`\n{3,}`).ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}
