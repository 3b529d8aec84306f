// Package commands implements the devsite subcommands.
package commands

import (
	"fmt"
	"os"

	"github.com/nethippo/developer-website/internal/config"
	"github.com/nethippo/developer-website/internal/content"
	"github.com/nethippo/developer-website/internal/search"
)

// openLibrary loads the content library and builds an in-memory search
// index over it. The caller closes the returned index.
func openLibrary(cfg *config.Config) (*content.Library, *search.Index, error) {
	if _, err := os.Stat(cfg.ContentDir); os.IsNotExist(err) {
		return nil, nil, fmt.Errorf("content directory does not exist: %s", cfg.ContentDir)
	}

	lib, err := content.Load(cfg.ContentDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load content: %w", err)
	}

	idx, err := search.Open(":memory:")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open search index: %w", err)
	}
	if err := idx.Rebuild(lib); err != nil {
		_ = idx.Close()
		return nil, nil, fmt.Errorf("failed to build search index: %w", err)
	}

	return lib, idx, nil
}
