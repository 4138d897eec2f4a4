// Package output handles file naming and writing for clipmark outputs.
// Single clips are named from the source domain and clip date
// (e.g., example_com_2026-08-29.md); site mode mirrors the URL path
// structure. Existing files are never overwritten — names are
// uniquified with a numeric suffix instead.
package output

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// fallbackName is used when a clip has no source URL (file or stdin).
const fallbackName = "clip"

// Writer writes rendered output to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir}, nil
}

// WriteClip writes a single clip.
// Filename: domain_date.ext (e.g., example_com_2026-08-29.md), with a
// _1, _2, ... suffix when the name is already taken.
func (w *Writer) WriteClip(rawURL string, clippedAt time.Time, data []byte, ext string) (string, error) {
	name := filenameFor(rawURL, clippedAt)
	path, err := uniquePath(filepath.Join(w.OutputDir, name), ext)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// WriteSitePage writes one page of a site clip, mirroring the URL path.
// Example: https://site.com/docs/intro → <outdir>/docs/intro.md
func (w *Writer) WriteSitePage(rawURL string, data []byte, ext string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parsing URL: %w", err)
	}

	urlPath := strings.TrimSuffix(parsed.Path, "/")
	if urlPath == "" || urlPath == "/" {
		urlPath = "/index"
	}
	urlPath = strings.TrimPrefix(urlPath, "/")

	fullPath, err := uniquePath(filepath.Join(w.OutputDir, urlPath), ext)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", filepath.Dir(fullPath), err)
	}

	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", fullPath, err)
	}
	return fullPath, nil
}

// uniquePath returns base+ext, or the first base_N+ext that does not
// exist yet. Stat errors other than "not exist" are reported rather
// than risking an overwrite.
func uniquePath(base, ext string) (string, error) {
	path := base + ext
	for n := 1; ; n++ {
		_, err := os.Stat(path)
		if os.IsNotExist(err) {
			return path, nil
		}
		if err != nil {
			return "", fmt.Errorf("checking %s: %w", path, err)
		}
		path = fmt.Sprintf("%s_%d%s", base, n, ext)
	}
}

// filenameFor derives the flat filename for a clip from its source
// domain and clip date. Sources without a URL fall back to "clip".
func filenameFor(rawURL string, clippedAt time.Time) string {
	name := fallbackName
	if rawURL != "" {
		if parsed, err := url.Parse(rawURL); err == nil && parsed.Host != "" {
			name = sanitize(parsed.Host)
		} else {
			name = sanitize(rawURL)
		}
	}
	return name + "_" + clippedAt.Format("2006-01-02")
}

// sanitize replaces non-alphanumeric characters with underscores.
func sanitize(s string) string {
	var b strings.Builder
	for _, ch := range s {
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') {
			b.WriteRune(ch)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}
