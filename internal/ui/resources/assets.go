// Package resources provides static asset handling for the UI server
// and the static site builder.
package resources

import (
	"embed"
	"io/fs"
)

// StaticDirectoryPath is the path to static assets from the project root.
const StaticDirectoryPath = "internal/ui/resources/static"

//go:embed static/*
var staticFS embed.FS

// Files exposes the embedded static assets, rooted at the static
// directory.
func Files() (fs.FS, error) {
	return fs.Sub(staticFS, "static")
}

// StaticPath returns the URL path for a static asset.
func StaticPath(path string) string {
	return "/static/" + path
}
