// Package docs serves the documentation pages through the layout shell.
package docs

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/sessions"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/nethippo/developer-website/internal/content"
	"github.com/nethippo/developer-website/internal/ui/components"
	"github.com/nethippo/developer-website/internal/ui/features/nav"
	"github.com/nethippo/developer-website/internal/ui/notifier"
)

// editPathPrefix is the fixed path between the repository base URL and
// the content-relative source path of a document.
const editPathPrefix = "/edit/main/content/"

// generatedDir is the reserved content subtree whose documents never get
// an edit link.
const generatedDir = "generated/"

// Handlers provides HTTP handlers for the docs feature.
type Handlers struct {
	library      *content.Library
	registry     *nav.Registry
	sessionStore sessions.Store
	notifier     *notifier.Notifier
	siteTitle    string
	repoURL      string
	isDev        bool
	logger       *slog.Logger
}

// Config holds the docs feature's settings.
type Config struct {
	SiteTitle string
	RepoURL   string
	IsDev     bool
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(
	lib *content.Library,
	reg *nav.Registry,
	sessionStore sessions.Store,
	notify *notifier.Notifier,
	cfg Config,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		library:      lib,
		registry:     reg,
		sessionStore: sessionStore,
		notifier:     notify,
		siteTitle:    cfg.SiteTitle,
		repoURL:      cfg.RepoURL,
		isDev:        cfg.IsDev,
		logger:       logger,
	}
}

// Page renders a documentation page, or the not-found page with a 404
// status when the path resolves to nothing.
func (h *Handlers) Page(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	page, ok := h.library.Lookup(path)
	if !ok {
		h.notFound(w, r, path)
		return
	}

	ctx := h.pageContext(w, r, path)
	ctx.Title = page.DisplayName
	ctx.ContentHTML = page.HTML
	ctx.EditURL = EditURL(h.repoURL, page.SourcePath)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := components.Shell(ctx).Render(w); err != nil {
		h.logger.Error("rendering page", "path", path, "error", err)
	}
}

func (h *Handlers) notFound(w http.ResponseWriter, r *http.Request, path string) {
	ctx := h.pageContext(w, r, path)
	ctx.Title = "Page Not Found"
	ctx.ContentHTML = `<h1>Page not found</h1><p>The page you are looking for does not exist.</p>`

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	if err := components.Shell(ctx).Render(w); err != nil {
		h.logger.Error("rendering not-found page", "path", path, "error", err)
	}
}

// pageContext assembles the shared view model for a request: the
// visitor's tree state synced to the route, the mobile nav flag, and the
// cookie dialog visibility.
func (h *Handlers) pageContext(w http.ResponseWriter, r *http.Request, path string) components.PageContext {
	tree := h.library.Tree()
	crumbs := h.library.Breadcrumbs(path)

	toggles := map[string]bool{}
	if visitorID, err := nav.EnsureVisitor(h.sessionStore, w, r); err == nil {
		state := h.registry.State(visitorID)
		state.Sync(path, func() map[string]bool {
			return nav.DefaultExpansion(tree, path, crumbs)
		})
		toggles = state.Snapshot()
	} else {
		h.logger.Warn("visitor session unavailable", "error", err)
	}

	return components.PageContext{
		SiteTitle: h.siteTitle,
		NavTree:   tree,
		Tree: components.TreeContext{
			CurrentPath: path,
			Breadcrumbs: crumbs,
			Toggles:     toggles,
		},
		MobileNavOpen:    nav.MobileNavOpen(h.sessionStore, w, r, path),
		ShowCookieDialog: !nav.HasConsent(h.sessionStore, r),
		IsDev:            h.isDev,
	}
}

// Updates is the dev-mode SSE endpoint: it reloads the page whenever the
// content watcher broadcasts a change.
func (h *Handlers) Updates(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	updates := h.notifier.Subscribe()
	defer h.notifier.Unsubscribe(updates)

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-updates:
			if err := sse.ExecuteScript("window.location.reload()"); err != nil {
				return
			}
		}
	}
}

// EditURL derives the "edit this page" link for a document's source
// path, or "" when sourcePath is empty or falls under the reserved
// generated subtree.
func EditURL(repoURL, sourcePath string) string {
	if repoURL == "" || sourcePath == "" {
		return ""
	}
	if strings.HasPrefix(sourcePath, generatedDir) {
		return ""
	}
	return strings.TrimSuffix(repoURL, "/") + editPathPrefix + sourcePath
}
