// Package render — PDF renderer.
// Converts the Markdown document into a styled PDF using gofpdf.
// Handles headings (variable font sizes), paragraphs, code blocks,
// lists, and image placeholders; links render as "text (url)".
package render

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/clipmark/core"
	"github.com/jung-kurt/gofpdf"
)

// PDFRenderer renders the clip as a PDF document.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render converts Markdown into PDF bytes.
func (r *PDFRenderer) Render(markdown string, meta core.ClipMetadata) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Document header from metadata.
	if meta.Title != "" {
		pdf.SetFont("Helvetica", "B", 18)
		pdf.MultiCell(0, 8, meta.Title, "", "L", false)
		pdf.Ln(4)
	}
	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(100, 100, 100)
	if meta.URL != "" {
		pdf.MultiCell(0, 5, "Source: "+meta.URL, "", "L", false)
	}
	if meta.ClippedAt != "" {
		pdf.MultiCell(0, 5, "Clipped: "+meta.ClippedAt, "", "L", false)
	}
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(6)

	// Parse and render Markdown line by line.
	lines := strings.Split(markdown, "\n")
	inCodeBlock := false

	for i := 0; i < len(lines); i++ {
		line := lines[i]

		// Toggle code block state.
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inCodeBlock = !inCodeBlock
			pdf.Ln(2)
			continue
		}

		if inCodeBlock {
			pdf.SetFont("Courier", "", 9)
			pdf.SetFillColor(245, 245, 245)
			pdf.MultiCell(0, 4.5, line, "", "L", true)
			continue
		}

		// Skip empty lines (add spacing instead).
		if strings.TrimSpace(line) == "" {
			pdf.Ln(3)
			continue
		}

		trimmed := strings.TrimSpace(line)

		// Images become a gray placeholder naming the source.
		if m := imageRegex.FindStringSubmatch(trimmed); m != nil && strings.HasPrefix(trimmed, "![") {
			pdf.SetFont("Helvetica", "I", 9)
			pdf.SetTextColor(100, 100, 100)
			pdf.MultiCell(0, 5, "[image: "+m[1]+" -> "+m[2]+"]", "", "L", false)
			pdf.SetTextColor(0, 0, 0)
			continue
		}

		// Headings.
		if strings.HasPrefix(line, "#") {
			level := 0
			for _, ch := range line {
				if ch == '#' {
					level++
				} else {
					break
				}
			}
			text := strings.TrimSpace(strings.TrimLeft(line, "# "))
			renderHeading(pdf, text, level)
			continue
		}

		// List items.
		if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
			pdf.SetFont("Helvetica", "", 10)
			text := "• " + strings.TrimSpace(trimmed[2:])
			pdf.MultiCell(0, 5, flattenInline(text), "", "L", false)
			continue
		}

		// Regular paragraph text.
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, flattenInline(line), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

// renderHeading sets the font size based on heading level and writes text.
func renderHeading(pdf *gofpdf.Fpdf, text string, level int) {
	sizes := map[int]float64{1: 18, 2: 15, 3: 13, 4: 12}
	size, ok := sizes[level]
	if !ok {
		size = 10
	}
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", size)
	pdf.MultiCell(0, size*0.6, flattenInline(text), "", "L", false)
	pdf.Ln(2)
}

// flattenInline strips inline Markdown formatting for PDF rendering.
// Links keep both text and target since a PDF paragraph cannot carry
// the href invisibly.
func flattenInline(text string) string {
	// Links become "text (url)".
	text = regexp.MustCompile(`\[([^\]]*)\]\(([^)]+)\)`).ReplaceAllString(text, "$1 ($2)")
	// Remove bold markers.
	text = strings.ReplaceAll(text, "**", "")
	// Remove italic markers (but not asterisks inside words).
	text = regexp.MustCompile(`(?:^|\s)\*([^*]+)\*(?:\s|$)`).ReplaceAllString(text, " $1 ")
	// Remove inline code markers.
	text = regexp.MustCompile("`([^`]+)`").ReplaceAllString(text, "$1")
	return strings.TrimSpace(text)
}
