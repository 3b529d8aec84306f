// Package sitegen builds a static copy of the documentation site: one
// HTML file per page, a JSON search index, and minified assets.
package sitegen

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/nethippo/developer-website/internal/content"
	"github.com/nethippo/developer-website/internal/ui/components"
	"github.com/nethippo/developer-website/internal/ui/features/docs"
	"github.com/nethippo/developer-website/internal/ui/features/nav"
)

// Config holds options for a static build.
type Config struct {
	SiteTitle string
	RepoURL   string
	OutputDir string
	Minify    bool
	Logger    *slog.Logger
}

// Result summarizes a completed build.
type Result struct {
	Pages  int
	Assets int
}

// searchEntry is one row of the exported search index.
type searchEntry struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Body string `json:"body"`
}

// Build renders every page of the library into the output directory.
// Pages get pretty URLs: /guides/install becomes guides/install/index.html.
func Build(lib *content.Library, cfg Config) (*Result, error) {
	if err := os.MkdirAll(cfg.OutputDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	res := &Result{}
	tree := lib.Tree()

	var buildErr error
	lib.Walk(func(page *content.Page) {
		if buildErr != nil {
			return
		}
		if err := writePage(lib, tree, page, cfg); err != nil {
			buildErr = fmt.Errorf("failed to render %s: %w", page.URL, err)
			return
		}
		res.Pages++
	})
	if buildErr != nil {
		return nil, buildErr
	}

	if err := writeSearchIndex(lib, cfg.OutputDir); err != nil {
		return nil, err
	}

	assets, err := writeAssets(cfg)
	if err != nil {
		return nil, err
	}
	res.Assets = assets

	return res, nil
}

// writePage renders a single page through the layout shell. Static pages
// carry every subtree in the DOM so expansion works without a server.
func writePage(lib *content.Library, tree []content.PageNode, page *content.Page, cfg Config) error {
	crumbs := lib.Breadcrumbs(page.URL)
	toggles := nav.DefaultExpansion(tree, page.URL, crumbs)

	ctx := components.PageContext{
		SiteTitle:   cfg.SiteTitle,
		Title:       page.DisplayName,
		ContentHTML: page.HTML,
		EditURL:     docs.EditURL(cfg.RepoURL, page.SourcePath),
		NavTree:     tree,
		Tree: components.TreeContext{
			CurrentPath:   page.URL,
			Breadcrumbs:   crumbs,
			Toggles:       toggles,
			EagerSubtrees: true,
		},
		Static: true,
	}

	outPath := outputPath(cfg.OutputDir, page.URL)
	if err := os.MkdirAll(filepath.Dir(outPath), 0750); err != nil {
		return err
	}

	f, err := os.Create(outPath) //nolint:gosec // G304: outPath derives from the page tree
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	return components.Shell(ctx).Render(f)
}

// outputPath maps a page URL to a file under the output directory.
func outputPath(outputDir, url string) string {
	rel := strings.Trim(url, "/")
	if rel == "" {
		return filepath.Join(outputDir, "index.html")
	}
	return filepath.Join(outputDir, filepath.FromSlash(rel), "index.html")
}

// writeSearchIndex exports the page set as search-index.json for
// client-side filtering on the static site.
func writeSearchIndex(lib *content.Library, outputDir string) error {
	entries := make([]searchEntry, 0, lib.Len())
	lib.Walk(func(page *content.Page) {
		entries = append(entries, searchEntry{
			Name: page.DisplayName,
			URL:  page.URL,
			Body: page.Text,
		})
	})

	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode search index: %w", err)
	}

	return os.WriteFile(filepath.Join(outputDir, "search-index.json"), data, 0600)
}
