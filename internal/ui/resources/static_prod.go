//go:build !dev

package resources

import "net/http"

// Handler returns an HTTP handler for serving static files. In
// production mode the files are embedded in the binary and cached hard.
func Handler() http.Handler {
	fsys, _ := Files()
	fileServer := http.FileServer(http.FS(fsys))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		http.StripPrefix("/static/", fileServer).ServeHTTP(w, r)
	})
}
