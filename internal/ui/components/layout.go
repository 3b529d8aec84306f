package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Layout constants. The sidebar column is fixed-width; below the mobile
// breakpoint the grid collapses to a single column and the sidebar
// becomes an overlay driven by the mobile header toggle.
const (
	sidebarWidth     = 300  // px
	mobileBreakpoint = 1024 // px
)

// datastarCDN serves the client runtime for SSE-driven interactivity.
const datastarCDN = "https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0/bundles/datastar.js"

// Shell renders the full HTML document: header, mobile header, sidebar,
// content area, footer, and the cookie-consent dialog arranged in the
// responsive grid.
func Shell(ctx PageContext) g.Node {
	title := ctx.SiteTitle
	if ctx.Title != "" {
		title = ctx.Title + " - " + ctx.SiteTitle
	}

	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(title)),
				h.Link(h.Rel("stylesheet"), h.Href("/static/site.css")),
				gridStyle(),
				h.Script(h.Src("/static/app.js"), h.Defer()),
				g.If(!ctx.Static, h.Script(h.Src(datastarCDN), h.Defer())),
			),
			h.Body(
				g.If(ctx.IsDev, h.Div(g.Attr("data-init", "@get('/updates')"))),
				h.Div(
					h.ID("site-shell"),
					h.Class(shellClass(ctx)),
					SiteHeader(ctx),
					MobileHeader(ctx),
					Sidebar(ctx),
					ContentPane(ctx),
					SiteFooter(ctx),
				),
				g.If(ctx.ShowCookieDialog, CookieDialog()),
			),
		),
	)
}

func shellClass(ctx PageContext) string {
	cls := "site-shell"
	if ctx.MobileNavOpen {
		cls += " mobile-nav-open"
	}
	return cls
}

// gridStyle emits the computed grid: a fixed sidebar column plus a fluid
// content column, collapsing to one column under the breakpoint. The
// header height is measured client-side into --header-height so the
// sidebar's scroll region can sit below it.
func gridStyle() g.Node {
	css := fmt.Sprintf(`
.site-shell {
	display: grid;
	grid-template-columns: %dpx minmax(0, 1fr);
	grid-template-areas:
		"header header"
		"sidebar content"
		"footer footer";
}
.site-sidebar {
	grid-area: sidebar;
	position: sticky;
	top: var(--header-height, 64px);
	max-height: calc(100vh - var(--header-height, 64px));
	overflow-y: auto;
}
@media (max-width: %dpx) {
	.site-shell {
		grid-template-columns: minmax(0, 1fr);
		grid-template-areas:
			"header"
			"content"
			"footer";
	}
	.site-sidebar { display: none; }
	.site-sidebar.is-open {
		display: block;
		position: fixed;
		inset: var(--header-height, 64px) 0 0 0;
		max-height: none;
		z-index: 10;
	}
}`, sidebarWidth, mobileBreakpoint)
	return h.StyleEl(g.Raw(css))
}

// SiteHeader renders the desktop header row.
func SiteHeader(ctx PageContext) g.Node {
	return h.Header(
		h.ID("site-header"),
		h.Class("site-header"),
		h.A(h.Class("site-title"), h.Href("/"), g.Text(ctx.SiteTitle)),
		h.Nav(
			h.Class("header-nav"),
			h.A(h.Href("/guides"), g.Text("Guides")),
			h.A(h.Href("/reference"), g.Text("Reference")),
		),
	)
}

// MobileHeader renders the compact header with the nav toggle shown
// below the breakpoint.
func MobileHeader(ctx PageContext) g.Node {
	label := "Open navigation"
	if ctx.MobileNavOpen {
		label = "Close navigation"
	}
	return h.Div(
		h.Class("mobile-header"),
		h.Button(
			h.Type("button"),
			h.Class("mobile-nav-toggle"),
			g.Attr("aria-label", label),
			g.Attr("data-on-click", mobileToggleCall(ctx.Tree.CurrentPath)),
			g.Raw(`<svg viewBox="0 0 16 16" width="20" height="20" aria-hidden="true"><path fill="currentColor" d="M1 3h14v2H1V3zm0 4h14v2H1V7zm0 4h14v2H1v-2z"/></svg>`),
		),
	)
}

func mobileToggleCall(path string) string {
	return fmt.Sprintf("@post('/api/nav/mobile?path=%s')", queryEscape(path))
}

// Sidebar renders the navigation column: the filter box and the tree.
// Its id is the patch target for the nav feature's SSE handlers.
func Sidebar(ctx PageContext) g.Node {
	cls := "site-sidebar"
	if ctx.MobileNavOpen {
		cls += " is-open"
	}
	return h.Aside(
		h.ID("site-sidebar"),
		h.Class(cls),
		g.Attr("data-signals", fmt.Sprintf("{search: %q}", ctx.Tree.Filter.Term)),
		g.If(!ctx.Static, h.Div(
			h.Class("nav-search"),
			h.Input(
				h.Type("search"),
				h.Placeholder("Filter pages"),
				h.Value(ctx.Tree.Filter.Term),
				g.Attr("data-bind-search"),
				g.Attr("data-on-input__debounce.300ms", filterCall(ctx.Tree.CurrentPath)),
			),
		)),
		h.Nav(
			h.Class("site-nav"),
			g.Attr("aria-label", "Documentation"),
			NavTree(ctx.NavTree, ctx.Tree, 0, ""),
		),
	)
}

func filterCall(path string) string {
	return fmt.Sprintf("@get('/api/nav/filter?path=%s')", queryEscape(path))
}

// ContentPane renders the main column: the document body and, when not
// suppressed, the edit-this-page link.
func ContentPane(ctx PageContext) g.Node {
	return h.Main(
		h.Class("site-content"),
		h.Article(
			h.Class("doc-body"),
			g.Raw(ctx.ContentHTML),
		),
		g.If(ctx.EditURL != "", h.P(
			h.Class("edit-page"),
			h.A(
				h.Href(ctx.EditURL),
				h.Rel("noopener"),
				g.Text("Edit this page"),
			),
		)),
	)
}

// SiteFooter renders the footer row.
func SiteFooter(ctx PageContext) g.Node {
	return h.Footer(
		h.Class("site-footer"),
		h.P(g.Text(ctx.SiteTitle)),
	)
}

// CookieDialog renders the consent banner. Accepting posts to the
// consent endpoint, which patches the dialog away and records the choice
// in the visitor's session.
func CookieDialog() g.Node {
	return h.Div(
		h.ID("cookie-dialog"),
		h.Class("cookie-dialog"),
		g.Attr("role", "dialog"),
		g.Attr("aria-label", "Cookie consent"),
		h.P(g.Text("This site uses cookies to remember your navigation preferences.")),
		h.Button(
			h.Type("button"),
			h.Class("cookie-accept"),
			g.Attr("data-on-click", "@post('/api/consent')"),
			g.Text("OK"),
		),
	)
}
