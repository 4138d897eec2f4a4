// Package cmd — clip command.
// This is the main command that orchestrates the pipeline:
// fetch → select → normalize → render → write.
//
// It layers flags over the config file, picks the engine and renderer,
// and applies the plain-text fallback contract: a clip that cannot be
// converted is saved as unformatted selection text, never reported as
// a user-visible error.
package cmd

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/gaurav-prasanna/clipmark/core"
	"github.com/gaurav-prasanna/clipmark/core/config"
	"github.com/gaurav-prasanna/clipmark/core/extract"
	"github.com/gaurav-prasanna/clipmark/core/fetch"
	"github.com/gaurav-prasanna/clipmark/core/normalize"
	"github.com/gaurav-prasanna/clipmark/core/output"
	"github.com/gaurav-prasanna/clipmark/core/render"
	"github.com/gaurav-prasanna/clipmark/crawl"
	"github.com/spf13/cobra"
)

// Flag variables.
var (
	flagSelect    string
	flagBase      string
	flagEngine    string
	flagMarkdown  bool
	flagJSON      bool
	flagPDF       bool
	flagDataURL   bool
	flagSite      bool
	flagOutputDir string
)

var clipCmd = &cobra.Command{
	Use:   "clip <url|file|->",
	Short: "Clip a page (or a fragment of it) to Markdown",
	Long: `Clip fetches a page from a URL, a local HTML file, or stdin ("-"),
selects the fragment to keep, converts it to Markdown with absolute
links, and writes the result.

Examples:
  clipmark clip https://example.com/article
  clipmark clip https://example.com --select "article.post" --pdf
  clipmark clip saved.html --base https://example.com/dir/ --dataurl
  clipmark clip https://docs.example.com --site --output_dir ./docs`,
	Args: cobra.ExactArgs(1),
	RunE: runClip,
}

func init() {
	rootCmd.AddCommand(clipCmd)

	clipCmd.Flags().StringVar(&flagSelect, "select", "", "CSS selector for the fragment to clip (default: main/article/body)")
	clipCmd.Flags().StringVar(&flagBase, "base", "", "Base URL for resolving relative links (file/stdin sources)")
	clipCmd.Flags().StringVar(&flagEngine, "engine", "", "Conversion engine: tree or fidelity")

	// Output format flags (mutually exclusive; default from config).
	clipCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Output Markdown (default)")
	clipCmd.Flags().BoolVar(&flagJSON, "json", false, "Output structured JSON")
	clipCmd.Flags().BoolVar(&flagPDF, "pdf", false, "Output PDF")
	clipCmd.Flags().BoolVar(&flagDataURL, "dataurl", false, "Output a base64 data URL")

	clipCmd.Flags().BoolVar(&flagSite, "site", false, "Clip every same-domain page, not just the given one")
	clipCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: current directory)")
}

func runClip(cmd *cobra.Command, args []string) error {
	source := args[0]

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	applyFlags(&cfg)

	if err := validate(cfg, source); err != nil {
		return err
	}

	renderer := selectRenderer(cfg.Format)
	normalizer := selectNormalizer(cfg.Engine)
	fetcher := fetch.New(fetch.WithTimeout(cfg.HTTPTimeout), fetch.WithUserAgent(cfg.UserAgent))
	selector := extract.New()

	writer, err := output.New(cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	ctx := context.Background()

	if flagSite {
		return runSite(ctx, source, cfg, fetcher, selector, normalizer, renderer, writer)
	}
	return runSingle(ctx, source, fetcher, selector, normalizer, renderer, writer)
}

// runSingle clips one source through the pipeline.
func runSingle(
	ctx context.Context,
	source string,
	fetcher core.Fetcher,
	selector core.Selector,
	normalizer core.Normalizer,
	renderer core.Renderer,
	writer *output.Writer,
) error {
	clippedAt := time.Now().UTC()

	data, meta, err := processSource(ctx, source, clippedAt, fetcher, selector, normalizer, renderer)
	if err != nil {
		return err
	}

	path, err := writer.WriteClip(meta.URL, clippedAt, data, renderer.Extension())
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "✓ Written: %s\n", path)
	return nil
}

// runSite discovers same-domain pages and clips each one.
func runSite(
	ctx context.Context,
	startURL string,
	cfg config.Config,
	fetcher core.Fetcher,
	selector core.Selector,
	normalizer core.Normalizer,
	renderer core.Renderer,
	writer *output.Writer,
) error {
	fmt.Fprintf(os.Stdout, "Discovering pages from %s...\n", startURL)

	urls, err := crawl.DiscoverSite(ctx, startURL, cfg.SiteMaxPages, fetcher)
	if err != nil {
		return fmt.Errorf("discovering pages: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Found %d pages to clip\n", len(urls))

	clippedAt := time.Now().UTC()

	var errCount int
	for i, pageURL := range urls {
		fmt.Fprintf(os.Stdout, "[%d/%d] Clipping %s\n", i+1, len(urls), pageURL)

		data, _, err := processSource(ctx, pageURL, clippedAt, fetcher, selector, normalizer, renderer)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  ✗ Error: %v\n", err)
			errCount++
			continue
		}

		path, err := writer.WriteSitePage(pageURL, data, renderer.Extension())
		if err != nil {
			fmt.Fprintf(os.Stderr, "  ✗ Write error: %v\n", err)
			errCount++
			continue
		}
		fmt.Fprintf(os.Stdout, "  ✓ Written: %s\n", path)
	}

	if errCount > 0 {
		fmt.Fprintf(os.Stderr, "\n%d/%d pages failed\n", errCount, len(urls))
	}
	return nil
}

// processSource runs one source through fetch → select → normalize →
// render. A conversion that fails or produces nothing degrades to the
// plain selection text rather than surfacing an error.
func processSource(
	ctx context.Context,
	source string,
	clippedAt time.Time,
	fetcher core.Fetcher,
	selector core.Selector,
	normalizer core.Normalizer,
	renderer core.Renderer,
) ([]byte, core.ClipMetadata, error) {
	result, err := fetcher.Fetch(ctx, source)
	if err != nil {
		return nil, core.ClipMetadata{}, fmt.Errorf("fetch: %w", err)
	}

	pageURL := result.URL
	baseURL := pageURL
	if flagBase != "" {
		baseURL = flagBase
	}

	clip, err := selector.Select(result.HTML, baseURL, flagSelect)
	if err != nil {
		return nil, core.ClipMetadata{}, fmt.Errorf("select: %w", err)
	}

	markdown, err := normalizer.Normalize(clip)
	if err != nil || markdown == "" {
		if err != nil {
			fmt.Fprintf(os.Stderr, "  conversion failed (%v), saving plain text\n", err)
		}
		markdown = clip.Text
	}

	meta := buildMetadata(pageURL, clip.Title, clippedAt)

	data, err := renderer.Render(markdown, meta)
	if err != nil {
		return nil, core.ClipMetadata{}, fmt.Errorf("render: %w", err)
	}

	return data, meta, nil
}

// buildMetadata constructs ClipMetadata from the source URL and page title.
func buildMetadata(pageURL string, title string, clippedAt time.Time) core.ClipMetadata {
	domain := ""
	if pageURL != "" {
		if parsed, err := url.Parse(pageURL); err == nil {
			domain = parsed.Host
		}
	}
	return core.ClipMetadata{
		URL:       pageURL,
		Domain:    domain,
		Title:     title,
		ClippedAt: clippedAt.Format(time.RFC3339),
	}
}

// applyFlags overlays CLI flags on the loaded config.
func applyFlags(cfg *config.Config) {
	if flagEngine != "" {
		cfg.Engine = flagEngine
	}
	if flagOutputDir != "" {
		cfg.OutputDir = flagOutputDir
	}
	switch {
	case flagMarkdown:
		cfg.Format = "markdown"
	case flagJSON:
		cfg.Format = "json"
	case flagPDF:
		cfg.Format = "pdf"
	case flagDataURL:
		cfg.Format = "dataurl"
	}
}

// validate checks flag combinations and the source kind.
func validate(cfg config.Config, source string) error {
	formatCount := 0
	for _, set := range []bool{flagMarkdown, flagJSON, flagPDF, flagDataURL} {
		if set {
			formatCount++
		}
	}
	if formatCount > 1 {
		return fmt.Errorf("only one output format allowed per run (got %d)", formatCount)
	}

	if err := config.ValidateEngine(cfg.Engine); err != nil {
		return err
	}
	if err := config.ValidateFormat(cfg.Format); err != nil {
		return err
	}

	if fetch.IsURL(source) {
		parsed, err := url.Parse(source)
		if err != nil || parsed.Host == "" {
			return fmt.Errorf("invalid URL: %s", source)
		}
	} else if flagSite {
		return fmt.Errorf("--site requires a URL source, got %s", source)
	}

	return nil
}

// selectNormalizer picks the conversion engine.
func selectNormalizer(engine string) core.Normalizer {
	if engine == "fidelity" {
		return normalize.NewFidelity()
	}
	return normalize.NewTree()
}

// selectRenderer picks the output renderer.
func selectRenderer(format string) core.Renderer {
	switch format {
	case "json":
		return render.NewJSONRenderer()
	case "pdf":
		return render.NewPDFRenderer()
	case "dataurl":
		return render.NewDataURLRenderer()
	default:
		return render.NewMarkdownRenderer()
	}
}
