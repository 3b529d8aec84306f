package sitegen

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/evanw/esbuild/pkg/api"

	"github.com/nethippo/developer-website/internal/ui/resources"
)

// writeAssets copies the embedded static assets into the output
// directory, bundling CSS and JS through esbuild. Returns the number of
// assets written.
func writeAssets(cfg Config) (int, error) {
	files, err := resources.Files()
	if err != nil {
		return 0, fmt.Errorf("failed to open static assets: %w", err)
	}

	staticDir := filepath.Join(cfg.OutputDir, "static")
	if err := os.MkdirAll(staticDir, 0750); err != nil {
		return 0, err
	}

	count := 0
	err = fs.WalkDir(files, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		data, err := fs.ReadFile(files, path)
		if err != nil {
			return err
		}

		switch filepath.Ext(path) {
		case ".css":
			data, err = transformAsset(string(data), api.LoaderCSS, cfg.Minify)
		case ".js":
			data, err = transformAsset(string(data), api.LoaderJS, cfg.Minify)
		}
		if err != nil {
			return fmt.Errorf("failed to bundle %s: %w", path, err)
		}

		outPath := filepath.Join(staticDir, filepath.FromSlash(path))
		if err := os.MkdirAll(filepath.Dir(outPath), 0750); err != nil {
			return err
		}
		if err := os.WriteFile(outPath, data, 0600); err != nil {
			return err
		}
		count++
		return nil
	})
	if err != nil {
		return 0, err
	}

	return count, nil
}

// transformAsset runs a single source through esbuild's transform API.
func transformAsset(src string, loader api.Loader, minify bool) ([]byte, error) {
	result := api.Transform(src, api.TransformOptions{
		Loader:            loader,
		MinifyWhitespace:  minify,
		MinifyIdentifiers: minify,
		MinifySyntax:      minify,
		Target:            api.ES2020,
		LogLevel:          api.LogLevelWarning,
	})

	if len(result.Errors) > 0 {
		var errMsg string
		for _, e := range result.Errors {
			errMsg += e.Text + "\n"
		}
		return nil, fmt.Errorf("esbuild errors:\n%s", errMsg)
	}

	return result.Code, nil
}
