// Package router sets up HTTP routes for the UI server.
package router

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/nethippo/developer-website/internal/content"
	"github.com/nethippo/developer-website/internal/search"
	docsFeature "github.com/nethippo/developer-website/internal/ui/features/docs"
	navFeature "github.com/nethippo/developer-website/internal/ui/features/nav"
	"github.com/nethippo/developer-website/internal/ui/notifier"
	"github.com/nethippo/developer-website/internal/ui/resources"
)

// SetupRoutes configures all routes for the UI server. The docs
// catch-all goes last so the API and static routes win.
func SetupRoutes(
	router chi.Router,
	lib *content.Library,
	idx *search.Index,
	sessionStore *sessions.CookieStore,
	notify *notifier.Notifier,
	cfg docsFeature.Config,
	logger *slog.Logger,
) error {
	router.Handle("/static/*", resources.Handler())

	registry := navFeature.NewRegistry()

	if err := navFeature.SetupRoutes(router, lib, idx, registry, sessionStore, logger); err != nil {
		return err
	}

	if err := docsFeature.SetupRoutes(router, lib, registry, sessionStore, notify, cfg, logger); err != nil {
		return err
	}

	return nil
}
