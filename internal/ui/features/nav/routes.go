package nav

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/nethippo/developer-website/internal/content"
	"github.com/nethippo/developer-website/internal/search"
)

// SetupRoutes registers the sidebar endpoints on the router.
func SetupRoutes(
	router chi.Router,
	lib *content.Library,
	idx *search.Index,
	reg *Registry,
	sessionStore sessions.Store,
	logger *slog.Logger,
) error {
	handlers := NewHandlers(lib, idx, reg, sessionStore, logger)

	router.Route("/api/nav", func(r chi.Router) {
		r.Post("/toggle", handlers.ToggleSSE)
		r.Get("/filter", handlers.FilterSSE)
		r.Post("/mobile", handlers.MobileSSE)
	})
	router.Post("/api/consent", handlers.ConsentSSE)

	return nil
}
