package cmd

import (
	"testing"
	"time"

	"github.com/gaurav-prasanna/clipmark/core/config"
	"github.com/gaurav-prasanna/clipmark/core/normalize"
	"github.com/gaurav-prasanna/clipmark/core/render"
)

func resetFlags() {
	flagSelect, flagBase, flagEngine = "", "", ""
	flagMarkdown, flagJSON, flagPDF, flagDataURL, flagSite = false, false, false, false, false
	flagOutputDir = ""
}

func TestValidate(t *testing.T) {
	cfg := config.Config{Engine: "tree", Format: "markdown"}

	t.Run("url source", func(t *testing.T) {
		resetFlags()
		if err := validate(cfg, "https://example.com"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("file source", func(t *testing.T) {
		resetFlags()
		if err := validate(cfg, "page.html"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("two formats rejected", func(t *testing.T) {
		resetFlags()
		flagJSON, flagPDF = true, true
		if err := validate(cfg, "https://example.com"); err == nil {
			t.Fatal("expected an error for two format flags")
		}
	})

	t.Run("site needs url", func(t *testing.T) {
		resetFlags()
		flagSite = true
		if err := validate(cfg, "page.html"); err == nil {
			t.Fatal("expected an error for --site with a file source")
		}
	})

	t.Run("bad engine rejected", func(t *testing.T) {
		resetFlags()
		if err := validate(config.Config{Engine: "warp", Format: "markdown"}, "page.html"); err == nil {
			t.Fatal("expected an error for an unknown engine")
		}
	})
}

func TestApplyFlags(t *testing.T) {
	resetFlags()
	flagPDF = true
	flagEngine = "fidelity"
	flagOutputDir = "/tmp/out"

	cfg := config.Config{Engine: "tree", Format: "markdown"}
	applyFlags(&cfg)

	if cfg.Format != "pdf" || cfg.Engine != "fidelity" || cfg.OutputDir != "/tmp/out" {
		t.Fatalf("cfg = %+v", cfg)
	}
	resetFlags()
}

func TestBuildMetadata(t *testing.T) {
	at := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	meta := buildMetadata("https://example.com/post", "A Post", at)

	if meta.Domain != "example.com" {
		t.Fatalf("domain = %q", meta.Domain)
	}
	if meta.ClippedAt != "2026-08-29T10:00:00Z" {
		t.Fatalf("clipped_at = %q", meta.ClippedAt)
	}

	local := buildMetadata("", "Saved", at)
	if local.Domain != "" || local.URL != "" {
		t.Fatalf("local clip should carry no URL: %+v", local)
	}
}

func TestSelectRendererAndNormalizer(t *testing.T) {
	if _, ok := selectRenderer("pdf").(*render.PDFRenderer); !ok {
		t.Fatal("pdf format should pick the PDF renderer")
	}
	if _, ok := selectRenderer("markdown").(*render.MarkdownRenderer); !ok {
		t.Fatal("markdown format should pick the Markdown renderer")
	}
	if _, ok := selectNormalizer("fidelity").(*normalize.FidelityNormalizer); !ok {
		t.Fatal("fidelity engine should pick the fidelity normalizer")
	}
	if _, ok := selectNormalizer("tree").(*normalize.TreeNormalizer); !ok {
		t.Fatal("tree engine should pick the tree normalizer")
	}
}
