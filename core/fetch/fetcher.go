// Package fetch implements the Fetcher interface.
// A source is a URL, a local file path, or "-" for stdin, so a page
// saved from the browser can be clipped offline the same way a live
// one is clipped over HTTP.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gaurav-prasanna/clipmark/core"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "clipmark/1.0 (https://github.com/gaurav-prasanna/clipmark)"
)

// SourceFetcher fetches page HTML from a URL, file, or stdin.
type SourceFetcher struct {
	client    *http.Client
	userAgent string
	stdin     io.Reader
}

// Option configures a SourceFetcher.
type Option func(*SourceFetcher)

// WithTimeout overrides the HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *SourceFetcher) {
		if d > 0 {
			f.client.Timeout = d
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *SourceFetcher) {
		if ua != "" {
			f.userAgent = ua
		}
	}
}

// New creates a SourceFetcher with sensible defaults.
func New(opts ...Option) *SourceFetcher {
	f := &SourceFetcher{
		client:    &http.Client{Timeout: defaultTimeout},
		userAgent: defaultUserAgent,
		stdin:     os.Stdin,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// IsURL reports whether source will be fetched over HTTP.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// Fetch retrieves the HTML content of the given source.
// For non-URL sources the returned FetchResult has no URL, so relative
// references in the page stay unresolved unless a base is supplied
// elsewhere.
func (f *SourceFetcher) Fetch(ctx context.Context, source string) (*core.FetchResult, error) {
	switch {
	case IsURL(source):
		return f.fetchHTTP(ctx, source)
	case source == "-":
		body, err := io.ReadAll(f.stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return &core.FetchResult{HTML: string(body)}, nil
	default:
		body, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("reading file %s: %w", source, err)
		}
		return &core.FetchResult{HTML: string(body)}, nil
	}
}

func (f *SourceFetcher) fetchHTTP(ctx context.Context, url string) (*core.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return &core.FetchResult{
		URL:        url,
		StatusCode: resp.StatusCode,
		HTML:       string(body),
	}, nil
}
