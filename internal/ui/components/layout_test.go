package components

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nethippo/developer-website/internal/content"
)

func shellContext() PageContext {
	return PageContext{
		SiteTitle:   "Dev Docs",
		Title:       "Install",
		ContentHTML: "<h1>Install</h1><p>body</p>",
		NavTree: []content.PageNode{
			{DisplayName: "Guides", URL: "/guides"},
		},
		Tree: TreeContext{CurrentPath: "/guides/install"},
	}
}

func TestShell_FullDocument(t *testing.T) {
	html := render(t, Shell(shellContext()))

	assert.Contains(t, html, "<!doctype html>")
	assert.Contains(t, html, "<title>Install - Dev Docs</title>")
	assert.Contains(t, html, `id="site-shell"`)
	assert.Contains(t, html, `id="site-header"`)
	assert.Contains(t, html, `id="site-sidebar"`)
	assert.Contains(t, html, "<h1>Install</h1>")
	assert.Contains(t, html, `href="/static/site.css"`)
	assert.Contains(t, html, `src="/static/app.js"`)
	assert.Contains(t, html, "datastar")
}

func TestShell_TitleFallsBackToSiteTitle(t *testing.T) {
	ctx := shellContext()
	ctx.Title = ""
	html := render(t, Shell(ctx))
	assert.Contains(t, html, "<title>Dev Docs</title>")
}

func TestShell_StaticModeOmitsServerWiring(t *testing.T) {
	ctx := shellContext()
	ctx.Static = true
	html := render(t, Shell(ctx))

	assert.NotContains(t, html, "datastar")
	// No filter box without a server to answer it
	assert.NotContains(t, html, "/api/nav/filter")
}

func TestShell_DevModeSubscribesToUpdates(t *testing.T) {
	ctx := shellContext()
	ctx.IsDev = true
	html := render(t, Shell(ctx))
	assert.Contains(t, html, "/updates")
}

func TestShell_CookieDialog(t *testing.T) {
	ctx := shellContext()
	html := render(t, Shell(ctx))
	assert.NotContains(t, html, "cookie-dialog")

	ctx.ShowCookieDialog = true
	html = render(t, Shell(ctx))
	assert.Contains(t, html, `id="cookie-dialog"`)
	assert.Contains(t, html, "/api/consent")
}

func TestGridStyle_FixedSidebarColumnAndBreakpoint(t *testing.T) {
	css := render(t, gridStyle())

	assert.Contains(t, css, "grid-template-columns: 300px minmax(0, 1fr)")
	assert.Contains(t, css, "@media (max-width: 1024px)")
	assert.Contains(t, css, "--header-height")
}

func TestSidebar_MobileOpenState(t *testing.T) {
	ctx := shellContext()
	closed := render(t, Sidebar(ctx))
	assert.NotContains(t, closed, "is-open")

	ctx.MobileNavOpen = true
	open := render(t, Sidebar(ctx))
	assert.Contains(t, open, `class="site-sidebar is-open"`)
}

func TestContentPane_EditLink(t *testing.T) {
	ctx := shellContext()
	ctx.EditURL = "https://example.com/repo/edit/main/content/guides/install.md"
	html := render(t, ContentPane(ctx))
	assert.Contains(t, html, "Edit this page")
	assert.Contains(t, html, ctx.EditURL)

	ctx.EditURL = ""
	html = render(t, ContentPane(ctx))
	assert.NotContains(t, html, "Edit this page")
}
