// Package components renders the site's HTML: the page layout shell and
// the recursive, search-filterable navigation tree.
package components

import (
	"github.com/nethippo/developer-website/internal/content"
	"github.com/nethippo/developer-website/internal/search"
)

// TreeContext carries everything the navigation tree needs to render one
// request: the current route, the breadcrumb ancestry for it, the active
// search filter, and the visitor's expansion toggles keyed by node key.
type TreeContext struct {
	CurrentPath string
	Breadcrumbs []string
	Filter      search.Filter
	Toggles     map[string]bool

	// EagerSubtrees renders collapsed subtrees hidden instead of
	// omitting them, so static builds can expand them client-side.
	EagerSubtrees bool
}

// OnBreadcrumbPath reports whether a display name lies on the breadcrumb
// ancestry of the current page.
func (c TreeContext) OnBreadcrumbPath(name string) bool {
	for _, b := range c.Breadcrumbs {
		if b == name {
			return true
		}
	}
	return false
}

// expanded returns the effective displayed expansion for a node key: the
// visitor's toggle state, or a forced-open state while the node matches
// the active filter. The filter never mutates the toggle itself, so
// clearing it reverts to the pre-filter state.
func (c TreeContext) expanded(key, name string) bool {
	if c.Toggles[key] {
		return true
	}
	return c.Filter.Active() && c.Filter.Names[name]
}

// PageContext is the view model for a full page render.
type PageContext struct {
	SiteTitle   string
	Title       string
	ContentHTML string
	EditURL     string // empty suppresses the edit link
	NavTree     []content.PageNode
	Tree        TreeContext

	MobileNavOpen    bool
	ShowCookieDialog bool
	IsDev            bool
	Static           bool // static build: no server endpoints available
}
