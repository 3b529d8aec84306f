package docs

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/nethippo/developer-website/internal/content"
	"github.com/nethippo/developer-website/internal/ui/features/nav"
	"github.com/nethippo/developer-website/internal/ui/notifier"
)

// SetupRoutes registers docs routes on the router. The catch-all must be
// registered after every other route.
func SetupRoutes(
	router chi.Router,
	lib *content.Library,
	reg *nav.Registry,
	sessionStore sessions.Store,
	notify *notifier.Notifier,
	cfg Config,
	logger *slog.Logger,
) error {
	handlers := NewHandlers(lib, reg, sessionStore, notify, cfg, logger)

	if cfg.IsDev {
		router.Get("/updates", handlers.Updates)
	}
	router.Get("/*", handlers.Page)

	return nil
}
