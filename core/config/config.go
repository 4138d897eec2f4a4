// Package config loads clipmark defaults from an optional TOML file.
// Lookup order: $XDG_CONFIG_HOME/clipmark/config.toml, then
// ~/.config/clipmark/config.toml. Missing file means built-in
// defaults; CLI flags override whatever the file sets.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	defaultHTTPTimeoutSec = 30
	defaultUserAgent      = "clipmark/1.0 (https://github.com/gaurav-prasanna/clipmark)"
	defaultEngine         = "tree"
	defaultFormat         = "markdown"
	defaultSiteMaxPages   = 100

	configFolderName  = "clipmark"
	configFileName    = "config.toml"
	configPathEnvName = "XDG_CONFIG_HOME"
)

// Config holds the resolved clipmark settings.
type Config struct {
	HTTPTimeout  time.Duration
	UserAgent    string
	OutputDir    string
	Engine       string // "tree" or "fidelity"
	Format       string // "markdown", "json", "pdf", "dataurl"
	SiteMaxPages int
}

// fileConfig mirrors the TOML file shape; all fields optional.
type fileConfig struct {
	HTTPTimeoutSec int    `toml:"http_timeout_sec"`
	UserAgent      string `toml:"user_agent"`
	OutputDir      string `toml:"output_dir"`
	Engine         string `toml:"engine"`
	Format         string `toml:"format"`
	SiteMaxPages   int    `toml:"site_max_pages"`
}

// Load returns the effective configuration: built-in defaults overlaid
// with the config file when one exists.
func Load() (Config, error) {
	cfg := Config{
		HTTPTimeout:  defaultHTTPTimeoutSec * time.Second,
		UserAgent:    defaultUserAgent,
		Engine:       defaultEngine,
		Format:       defaultFormat,
		SiteMaxPages: defaultSiteMaxPages,
	}

	path, ok, err := findConfigPath()
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return cfg, nil
	}

	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	if fc.HTTPTimeoutSec > 0 {
		cfg.HTTPTimeout = time.Duration(fc.HTTPTimeoutSec) * time.Second
	}
	if fc.UserAgent != "" {
		cfg.UserAgent = fc.UserAgent
	}
	if fc.OutputDir != "" {
		cfg.OutputDir = fc.OutputDir
	}
	if fc.Engine != "" {
		if err := ValidateEngine(fc.Engine); err != nil {
			return Config{}, fmt.Errorf("%s: %w", path, err)
		}
		cfg.Engine = fc.Engine
	}
	if fc.Format != "" {
		if err := ValidateFormat(fc.Format); err != nil {
			return Config{}, fmt.Errorf("%s: %w", path, err)
		}
		cfg.Format = fc.Format
	}
	if fc.SiteMaxPages > 0 {
		cfg.SiteMaxPages = fc.SiteMaxPages
	}

	return cfg, nil
}

// ValidateEngine rejects unknown engine names.
func ValidateEngine(engine string) error {
	switch engine {
	case "tree", "fidelity":
		return nil
	default:
		return fmt.Errorf("unknown engine %q (want tree or fidelity)", engine)
	}
}

// ValidateFormat rejects unknown output format names.
func ValidateFormat(format string) error {
	switch format {
	case "markdown", "json", "pdf", "dataurl":
		return nil
	default:
		return fmt.Errorf("unknown format %q (want markdown, json, pdf, or dataurl)", format)
	}
}

// findConfigPath locates the config file, reporting whether it exists.
func findConfigPath() (string, bool, error) {
	var dirs []string
	if xdg := os.Getenv(configPathEnvName); xdg != "" {
		dirs = append(dirs, filepath.Join(xdg, configFolderName))
	}
	home, err := os.UserHomeDir()
	if err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", configFolderName))
	}

	for _, dir := range dirs {
		path := filepath.Join(dir, configFileName)
		if _, err := os.Stat(path); err == nil {
			return path, true, nil
		} else if !os.IsNotExist(err) {
			return "", false, fmt.Errorf("checking %s: %w", path, err)
		}
	}
	return "", false, nil
}
