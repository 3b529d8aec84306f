package components

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/nethippo/developer-website/internal/content"
	"github.com/nethippo/developer-website/internal/search"
)

// render renders a node to a string for assertions.
func render(t *testing.T, node g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, node.Render(&b))
	return b.String()
}

func TestHighlightFragments(t *testing.T) {
	tests := []struct {
		name string
		text string
		term string
		want []Fragment
	}{
		{
			name: "match in the middle",
			text: "Build apps",
			term: "app",
			want: []Fragment{{Text: "Build "}, {Text: "app", Match: true}, {Text: "s"}},
		},
		{
			name: "case insensitive preserves original casing",
			text: "Getting Started",
			term: "get",
			want: []Fragment{{Text: "Get", Match: true}, {Text: "ting Started"}},
		},
		{
			name: "repeated matches",
			text: "banana",
			term: "an",
			want: []Fragment{{Text: "b"}, {Text: "an", Match: true}, {Text: "an", Match: true}, {Text: "a"}},
		},
		{
			name: "no match",
			text: "Reference",
			term: "zzz",
			want: []Fragment{{Text: "Reference"}},
		},
		{
			name: "empty term",
			text: "Guides",
			term: "",
			want: []Fragment{{Text: "Guides"}},
		},
		{
			name: "whole name matches",
			text: "FAQ",
			term: "faq",
			want: []Fragment{{Text: "FAQ", Match: true}},
		},
		{
			name: "lowercasing that shrinks a rune keeps fragments aligned",
			text: "İstanbul",
			term: "stan",
			want: []Fragment{{Text: "İ"}, {Text: "stan", Match: true}, {Text: "bul"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HighlightFragments(tt.text, tt.term))
		})
	}
}

func TestHighlightFragments_FragmentsStayValidUTF8(t *testing.T) {
	names := []string{"İstanbul", "Straße", "ĲSSELMEER", "Ōkina gaido"}
	terms := []string{"s", "stan", "ss", "ĳ", "ōk", "a"}

	for _, name := range names {
		for _, term := range terms {
			frags := HighlightFragments(name, term)
			var joined strings.Builder
			for _, f := range frags {
				assert.True(t, utf8.ValidString(f.Text),
					"fragment %q of %q/%q is not valid UTF-8", f.Text, name, term)
				joined.WriteString(f.Text)
			}
			assert.Equal(t, name, joined.String(), "fragments of %q/%q do not round-trip", name, term)
		}
	}
}

func TestHighlightedName_WrapsMatchesInMark(t *testing.T) {
	html := render(t, HighlightedName("Build apps", "app", true))
	assert.Contains(t, html, `<mark class="nav-highlight">app</mark>`)
	assert.Contains(t, html, "Build ")

	// Inactive filter renders plain text
	plain := render(t, HighlightedName("Build apps", "app", false))
	assert.Equal(t, "Build apps", plain)
}

func TestNavTree_GroupsInFirstSeenOrder(t *testing.T) {
	pages := []content.PageNode{
		{DisplayName: "Intro", URL: "/intro"},
		{DisplayName: "Install", URL: "/install", Group: "Setup"},
		{DisplayName: "About", URL: "/about"},
		{DisplayName: "Upgrade", URL: "/upgrade", Group: "Setup"},
	}

	html := render(t, NavTree(pages, TreeContext{}, 0, ""))

	// The unlabeled group renders first with no label row
	assert.NotContains(t, html, `<li class="nav-group-label"></li>`)
	assert.Contains(t, html, `<li class="nav-group-label">Setup</li>`)

	// Members regroup under their label regardless of input interleaving
	introPos := strings.Index(html, "Intro")
	aboutPos := strings.Index(html, "About")
	labelPos := strings.Index(html, "Setup")
	installPos := strings.Index(html, "Install")
	upgradePos := strings.Index(html, "Upgrade")
	assert.Less(t, introPos, aboutPos)
	assert.Less(t, aboutPos, labelPos)
	assert.Less(t, labelPos, installPos)
	assert.Less(t, installPos, upgradePos)
}

func TestNavTree_FilterOmitsPagesAndEmptyGroupLabels(t *testing.T) {
	pages := []content.PageNode{
		{DisplayName: "Keep", URL: "/keep"},
		{DisplayName: "Drop", URL: "/drop"},
		{DisplayName: "Also Dropped", URL: "/other", Group: "Extras"},
	}
	ctx := TreeContext{
		Filter: search.Filter{Term: "keep", Names: map[string]bool{"Keep": true}},
	}

	html := render(t, NavTree(pages, ctx, 0, ""))

	assert.Contains(t, html, "Keep")
	assert.NotContains(t, html, "Drop")
	// A group whose members are all filtered out loses its label row too
	assert.NotContains(t, html, "Extras")
}

func TestNavItem_CurrentAndPartialClasses(t *testing.T) {
	tree := content.PageNode{
		DisplayName: "Guides",
		URL:         "/guides",
		Children: []content.PageNode{
			{DisplayName: "Install", URL: "/guides/install"},
		},
	}

	ctx := TreeContext{
		CurrentPath: "/guides/install/",
		Breadcrumbs: []string{"Guides", "Install"},
		Toggles:     map[string]bool{"Guides": true},
	}

	html := render(t, NavItem(tree, ctx, 0, ""))

	// Ancestor of the current page: partial, not current
	assert.Contains(t, html, `class="nav-item is-partial is-expanded"`)
	// The current page itself, trailing slash notwithstanding
	assert.Contains(t, html, `class="nav-item is-current"`)
}

func TestNavItem_SubtreeRendering(t *testing.T) {
	node := content.PageNode{
		DisplayName: "Guides",
		URL:         "/guides",
		Children: []content.PageNode{
			{DisplayName: "Install", URL: "/guides/install"},
		},
	}

	// Collapsed: subtree absent
	collapsed := render(t, NavItem(node, TreeContext{}, 0, ""))
	assert.NotContains(t, collapsed, "Install")

	// Expanded: subtree rendered at the next depth
	expanded := render(t, NavItem(node, TreeContext{Toggles: map[string]bool{"Guides": true}}, 0, ""))
	assert.Contains(t, expanded, "Install")
	assert.Contains(t, expanded, "nav-depth-1")

	// Eager mode: collapsed subtree present but hidden
	eager := render(t, NavItem(node, TreeContext{EagerSubtrees: true}, 0, ""))
	assert.Contains(t, eager, "Install")
	assert.Contains(t, eager, `style="display:none"`)
}

func TestNavItem_FilterForcesExpansionWithoutTouchingToggles(t *testing.T) {
	node := content.PageNode{
		DisplayName: "Guides",
		URL:         "/guides",
		Children: []content.PageNode{
			{DisplayName: "Install", URL: "/guides/install"},
		},
	}
	toggles := map[string]bool{}
	ctx := TreeContext{
		Toggles: toggles,
		Filter: search.Filter{
			Term:  "install",
			Names: map[string]bool{"Guides": true, "Install": true},
		},
	}

	html := render(t, NavItem(node, ctx, 0, ""))

	assert.Contains(t, html, "is-expanded")
	assert.Contains(t, html, "Install")
	// The forced expansion is display-only
	assert.Empty(t, toggles)
}

func TestNavLink_ToggleableOnlyAtDepthZero(t *testing.T) {
	guides := content.PageNode{DisplayName: "Guides", URL: "/guides"}

	atRoot := render(t, NavItem(guides, TreeContext{CurrentPath: "/x"}, 0, ""))
	assert.Contains(t, atRoot, "/api/nav/toggle")

	nested := render(t, NavItem(guides, TreeContext{CurrentPath: "/x"}, 1, "Parent"))
	assert.NotContains(t, nested, "/api/nav/toggle")

	// Non-toggleable sections never get the click action
	about := content.PageNode{DisplayName: "About", URL: "/about"}
	plain := render(t, NavItem(about, TreeContext{CurrentPath: "/x"}, 0, ""))
	assert.NotContains(t, plain, "/api/nav/toggle")
}

func TestNavToggle_ButtonForNonNavigableNodes(t *testing.T) {
	node := content.PageNode{
		DisplayName: "Deploy",
		Children: []content.PageNode{
			{DisplayName: "Docker", URL: "/deploy/docker"},
		},
	}

	html := render(t, NavItem(node, TreeContext{}, 1, "Guides"))

	assert.Contains(t, html, "<button")
	assert.Contains(t, html, `aria-expanded="false"`)
	assert.Contains(t, html, "/api/nav/toggle")
	assert.NotContains(t, html, "<a ")
}

func TestNavItem_ExternalLink(t *testing.T) {
	node := content.PageNode{DisplayName: "Community", URL: "https://discuss.example.com"}

	html := render(t, NavItem(node, TreeContext{}, 0, ""))

	assert.Contains(t, html, `href="https://discuss.example.com"`)
	assert.Contains(t, html, `rel="noopener"`)
	assert.Contains(t, html, "nav-external")
}

func TestSectionIcon_TopLevelOnly(t *testing.T) {
	node := content.PageNode{DisplayName: "Guides", URL: "/guides"}

	atRoot := render(t, NavItem(node, TreeContext{}, 0, ""))
	assert.Contains(t, atRoot, "nav-icon")

	nested := render(t, NavItem(node, TreeContext{}, 1, "Parent"))
	assert.NotContains(t, nested, "nav-icon")
}
