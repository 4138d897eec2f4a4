// Package extract implements the Selector interface.
// It picks the clipped fragment out of a full HTML page by:
//  1. Honoring an explicit CSS selector when the user gave one
//  2. Otherwise using the best content container (<main>, <article>, or <body>)
//
// Unlike a reader-mode extractor it keeps images and figures — a clip
// should preserve what the user selected. Only script/style noise is
// removed.
package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/clipmark/core"
	"github.com/gaurav-prasanna/clipmark/core/convert"
)

// noiseSelectors are elements that never carry clip content.
var noiseSelectors = []string{
	"script", "style", "noscript",
	"iframe", "svg", "canvas",
}

// containerTags is the fallback priority order when no CSS selector
// is given. <main> is the most semantically correct, then <article>,
// then <body>.
var containerTags = []string{"main", "article", "body"}

var whitespaceRuns = regexp.MustCompile(`\s+`)

// HTMLSelector extracts the clip fragment from raw HTML.
type HTMLSelector struct{}

// New creates an HTMLSelector.
func New() *HTMLSelector {
	return &HTMLSelector{}
}

// Select parses raw HTML and returns the fragment to convert, with the
// page's effective base URL (pageURL adjusted for any <base href>
// override) and a plain-text fallback for when conversion yields
// nothing usable.
func (s *HTMLSelector) Select(rawHTML string, pageURL string, cssSelector string) (*core.Clip, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	// Effective base: an in-document <base href> overrides the page URL.
	baseURL := pageURL
	if href, ok := doc.Find("base[href]").First().Attr("href"); ok && href != "" {
		baseURL = convert.ResolveURL(href, pageURL)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())

	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	var content *goquery.Selection
	if cssSelector != "" {
		found := doc.Find(cssSelector)
		if found.Length() == 0 {
			return nil, fmt.Errorf("selector %q matched nothing", cssSelector)
		}
		content = found.First()
	} else {
		for _, tag := range containerTags {
			if found := doc.Find(tag); found.Length() > 0 {
				content = found.First()
				break
			}
		}
	}

	if content == nil || len(content.Nodes) == 0 {
		return nil, fmt.Errorf("no content container found in HTML")
	}

	fragment, err := goquery.OuterHtml(content)
	if err != nil {
		return nil, fmt.Errorf("serializing fragment: %w", err)
	}

	return &core.Clip{
		Root:    content.Nodes[0],
		HTML:    fragment,
		Text:    compactText(content.Text()),
		Title:   title,
		BaseURL: baseURL,
	}, nil
}

// compactText collapses whitespace runs so the plain-text fallback is
// a single readable block.
func compactText(v string) string {
	return strings.TrimSpace(whitespaceRuns.ReplaceAllString(v, " "))
}
