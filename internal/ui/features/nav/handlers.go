package nav

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/sessions"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/nethippo/developer-website/internal/content"
	"github.com/nethippo/developer-website/internal/search"
	"github.com/nethippo/developer-website/internal/ui/components"
)

// Handlers provides the sidebar's SSE endpoints.
type Handlers struct {
	library      *content.Library
	index        *search.Index
	registry     *Registry
	sessionStore sessions.Store
	logger       *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(lib *content.Library, idx *search.Index, reg *Registry, sessionStore sessions.Store, logger *slog.Logger) *Handlers {
	return &Handlers{
		library:      lib,
		index:        idx,
		registry:     reg,
		sessionStore: sessionStore,
		logger:       logger,
	}
}

// navSignals is the datastar signal payload the sidebar binds.
type navSignals struct {
	Search string `json:"search"`
}

// ToggleSSE flips one node's expansion state and patches the sidebar.
func (h *Handlers) ToggleSSE(w http.ResponseWriter, r *http.Request) {
	// Read signals before creating the SSE stream (it consumes the body).
	var signals navSignals
	_ = datastar.ReadSignals(r, &signals)

	sse := datastar.NewSSE(w, r)

	key := r.URL.Query().Get("key")
	path := currentPath(r)
	if key == "" {
		return
	}

	visitorID, err := EnsureVisitor(h.sessionStore, w, r)
	if err != nil {
		_ = sse.ConsoleError(err)
		return
	}

	state := h.registry.State(visitorID)
	tree := h.library.Tree()
	crumbs := h.library.Breadcrumbs(path)
	state.Sync(path, func() map[string]bool {
		return DefaultExpansion(tree, path, crumbs)
	})
	state.Toggle(key)

	h.patchSidebar(sse, r, w, path, signals.Search, state)
}

// FilterSSE recomputes the search filter and patches the sidebar.
func (h *Handlers) FilterSSE(w http.ResponseWriter, r *http.Request) {
	var signals navSignals
	if err := datastar.ReadSignals(r, &signals); err != nil {
		sse := datastar.NewSSE(w, r)
		_ = sse.ConsoleError(err)
		return
	}

	sse := datastar.NewSSE(w, r)
	path := currentPath(r)

	visitorID, err := EnsureVisitor(h.sessionStore, w, r)
	if err != nil {
		_ = sse.ConsoleError(err)
		return
	}

	state := h.registry.State(visitorID)
	tree := h.library.Tree()
	crumbs := h.library.Breadcrumbs(path)
	state.Sync(path, func() map[string]bool {
		return DefaultExpansion(tree, path, crumbs)
	})

	h.patchSidebar(sse, r, w, path, signals.Search, state)
}

// MobileSSE flips the mobile nav flag and patches the sidebar.
func (h *Handlers) MobileSSE(w http.ResponseWriter, r *http.Request) {
	var signals navSignals
	_ = datastar.ReadSignals(r, &signals)

	sse := datastar.NewSSE(w, r)
	path := currentPath(r)

	visitorID, err := EnsureVisitor(h.sessionStore, w, r)
	if err != nil {
		_ = sse.ConsoleError(err)
		return
	}

	open := ToggleMobileNav(h.sessionStore, w, r)
	state := h.registry.State(visitorID)
	tree := h.library.Tree()
	crumbs := h.library.Breadcrumbs(path)
	state.Sync(path, func() map[string]bool {
		return DefaultExpansion(tree, path, crumbs)
	})

	h.patchSidebarOpen(sse, path, signals.Search, state, open)
}

// ConsentSSE records cookie consent and removes the dialog.
func (h *Handlers) ConsentSSE(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	if err := RecordConsent(h.sessionStore, w, r); err != nil {
		_ = sse.ConsoleError(err)
		return
	}
	if err := sse.PatchElements(`<div id="cookie-dialog" hidden></div>`); err != nil {
		_ = sse.ConsoleError(err)
	}
}

func (h *Handlers) patchSidebar(sse *datastar.ServerSentEventGenerator, r *http.Request, w http.ResponseWriter, path, term string, state *TreeState) {
	open := false
	if session, err := h.sessionStore.Get(r, SessionName); err == nil {
		open, _ = session.Values[mobileNavKey].(bool)
	}
	h.patchSidebarOpen(sse, path, term, state, open)
}

func (h *Handlers) patchSidebarOpen(sse *datastar.ServerSentEventGenerator, path, term string, state *TreeState, mobileOpen bool) {
	filter, err := h.BuildFilter(term)
	if err != nil {
		_ = sse.ConsoleError(err)
		return
	}

	ctx := components.PageContext{
		NavTree: h.library.Tree(),
		Tree: components.TreeContext{
			CurrentPath: path,
			Breadcrumbs: h.library.Breadcrumbs(path),
			Filter:      filter,
			Toggles:     state.Snapshot(),
		},
		MobileNavOpen: mobileOpen,
	}

	var b strings.Builder
	if err := components.Sidebar(ctx).Render(&b); err != nil {
		_ = sse.ConsoleError(err)
		return
	}
	if err := sse.PatchElements(b.String()); err != nil {
		_ = sse.ConsoleError(err)
	}
}

// BuildFilter queries the index for term and expands the matches into
// the renderer's filter set (matches plus ancestors). An empty term
// yields the inactive filter.
func (h *Handlers) BuildFilter(term string) (search.Filter, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return search.Filter{}, nil
	}
	matches, err := h.index.Query(term)
	if err != nil {
		return search.Filter{}, err
	}
	return search.Expand(h.library.Tree(), term, matches), nil
}

func currentPath(r *http.Request) string {
	if p := r.URL.Query().Get("path"); p != "" {
		return p
	}
	return "/"
}
