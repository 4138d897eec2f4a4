// Package crawl provides same-domain page discovery for site mode.
// It tries sitemap.xml first and falls back to BFS link crawling,
// keeping discovery separate from the clip pipeline.
package crawl

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/clipmark/core"
	"github.com/gaurav-prasanna/clipmark/core/convert"
)

// sitemapURL holds a URL from a sitemap.xml.
type sitemapURL struct {
	Loc string `xml:"loc"`
}

// sitemapIndex is the root element of a sitemap.xml.
type sitemapIndex struct {
	URLs []sitemapURL `xml:"url"`
}

// assetExtensions are file extensions skipped during discovery; they
// are not pages worth clipping.
var assetExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".svg": true, ".webp": true, ".ico": true, ".bmp": true,
	".css": true, ".js": true, ".mjs": true,
	".woff": true, ".woff2": true, ".ttf": true, ".eot": true,
	".mp4": true, ".webm": true, ".mp3": true, ".wav": true,
	".zip": true, ".tar": true, ".gz": true,
	".pdf": true, ".doc": true, ".docx": true, ".xls": true, ".xlsx": true,
}

// skippedSchemes are href prefixes that never lead to a page.
var skippedSchemes = []string{"mailto:", "javascript:", "tel:"}

// DiscoverSite finds up to maxPages same-domain URLs to clip, starting
// from startURL. startURL itself is always a candidate.
func DiscoverSite(ctx context.Context, startURL string, maxPages int, fetcher core.Fetcher) ([]string, error) {
	parsed, err := url.Parse(startURL)
	if err != nil {
		return nil, fmt.Errorf("parsing start URL: %w", err)
	}
	host := parsed.Host

	sitemap := fmt.Sprintf("%s://%s/sitemap.xml", parsed.Scheme, host)
	if urls, err := fromSitemap(ctx, sitemap, host, maxPages); err == nil && len(urls) > 0 {
		return urls, nil
	}

	return fromLinks(ctx, startURL, host, maxPages, fetcher)
}

// fromSitemap fetches and parses sitemap.xml for same-domain pages.
func fromSitemap(ctx context.Context, sitemapAddr string, host string, maxPages int) ([]string, error) {
	client := &http.Client{Timeout: 15 * time.Second}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sitemapAddr, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sitemap returned %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var sitemap sitemapIndex
	if err := xml.Unmarshal(body, &sitemap); err != nil {
		return nil, err
	}

	var urls []string
	for _, u := range sitemap.URLs {
		if len(urls) >= maxPages {
			break
		}
		if isPage(u.Loc, host) {
			urls = append(urls, canonical(u.Loc))
		}
	}
	return urls, nil
}

// fromLinks performs BFS crawling to find same-domain pages.
func fromLinks(ctx context.Context, startURL string, host string, maxPages int, fetcher core.Fetcher) ([]string, error) {
	queue := newQueue(maxPages)
	queue.add(canonical(startURL))

	for queue.hasNext() {
		current := queue.next()

		result, err := fetcher.Fetch(ctx, current)
		if err != nil {
			continue // skip failed pages, don't block the crawl
		}

		for _, link := range pageLinks(result.HTML, current) {
			if isPage(link, host) {
				queue.add(canonical(link))
			}
		}
	}

	return queue.all(), nil
}

// pageLinks extracts all hrefs from a page, resolved to absolute URLs
// against the page's own address.
func pageLinks(rawHTML string, pageURL string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil
	}

	var links []string
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if href == "" || strings.HasPrefix(href, "#") {
			return
		}
		for _, scheme := range skippedSchemes {
			if strings.HasPrefix(href, scheme) {
				return
			}
		}
		if resolved := convert.ResolveURL(href, pageURL); resolved != "" {
			links = append(links, resolved)
		}
	})

	return links
}

// isPage reports whether rawURL is a same-host, non-asset page URL.
func isPage(rawURL string, host string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if parsed.Host != host {
		return false
	}
	return !assetExtensions[strings.ToLower(path.Ext(parsed.Path))]
}

// canonical strips fragments and trailing slashes for deduplication.
func canonical(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	parsed.Fragment = ""
	if parsed.Path != "/" {
		parsed.Path = strings.TrimSuffix(parsed.Path, "/")
	}
	return parsed.String()
}
