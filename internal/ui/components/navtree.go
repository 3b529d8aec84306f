package components

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/nethippo/developer-website/internal/content"
)

// toggleableSections are the top-level entries whose link click also
// flips expansion in addition to navigating. Closed set; extending it
// means editing this table.
var toggleableSections = map[string]bool{
	"Guides":       true,
	"Reference":    true,
	"Tutorials":    true,
	"Integrations": true,
}

// NavTree renders one level of the navigation tree: pages partitioned
// into groups in first-seen order, group label rows for non-empty group
// names, and a NavItem per surviving page. Recursion into children
// happens inside NavItem.
func NavTree(pages []content.PageNode, ctx TreeContext, depth int, parentKey string) g.Node {
	type group struct {
		name    string
		members []content.PageNode
	}

	var groups []*group
	byName := map[string]*group{}
	for _, p := range pages {
		grp, ok := byName[p.Group]
		if !ok {
			grp = &group{name: p.Group}
			byName[p.Group] = grp
			groups = append(groups, grp)
		}
		grp.members = append(grp.members, p)
	}

	var rows []g.Node
	for _, grp := range groups {
		visible := make([]content.PageNode, 0, len(grp.members))
		for _, p := range grp.members {
			if ctx.Filter.Matches(p.DisplayName) {
				visible = append(visible, p)
			}
		}
		if len(visible) == 0 {
			continue
		}
		if grp.name != "" {
			rows = append(rows, h.Li(
				h.Class("nav-group-label"),
				g.Text(grp.name),
			))
		}
		for _, p := range visible {
			rows = append(rows, NavItem(p, ctx, depth, parentKey))
		}
	}

	return h.Ul(
		h.Class(fmt.Sprintf("nav-tree nav-depth-%d", depth)),
		g.Group(rows),
	)
}

// NavItem renders a single node as a link or a toggle button, plus the
// recursive subtree when the node is effectively expanded.
func NavItem(page content.PageNode, ctx TreeContext, depth int, parentKey string) g.Node {
	key := page.Key(parentKey)
	expanded := ctx.expanded(key, page.DisplayName)
	isCurrent := page.IsCurrent(ctx.CurrentPath)
	isPartial := !isCurrent && ctx.OnBreadcrumbPath(page.DisplayName)

	classes := []string{"nav-item"}
	if isCurrent {
		classes = append(classes, "is-current")
	}
	if isPartial {
		classes = append(classes, "is-partial")
	}
	if expanded {
		classes = append(classes, "is-expanded")
	}

	var control g.Node
	if page.URL != "" {
		control = navLink(page, ctx, depth, key, expanded)
	} else {
		control = navToggle(page, ctx, depth, key, expanded)
	}

	var subtree g.Node
	switch {
	case expanded && page.HasChildren():
		subtree = NavTree(page.Children, ctx, depth+1, key)
	case ctx.EagerSubtrees && page.HasChildren():
		subtree = h.Div(
			g.Attr("style", "display:none"),
			NavTree(page.Children, ctx, depth+1, key),
		)
	}

	return h.Li(
		h.Class(strings.Join(classes, " ")),
		control,
		subtree,
	)
}

// navLink renders a navigable node. Top-level toggleable sections also
// flip their expansion state on click, everything else just navigates.
func navLink(page content.PageNode, ctx TreeContext, depth int, key string, expanded bool) g.Node {
	var toggleAction g.Node
	if depth == 0 && toggleableSections[page.DisplayName] {
		toggleAction = g.Attr("data-on-click", toggleCall(key, ctx.CurrentPath))
	}

	return h.A(
		h.Class("nav-link"),
		h.Href(page.URL),
		g.If(page.IsExternal(), h.Rel("noopener")),
		toggleAction,
		itemLabel(page, ctx, depth, expanded),
	)
}

// navToggle renders a non-navigable node as a button that only expands
// and collapses. Native button semantics cover keyboard activation.
func navToggle(page content.PageNode, ctx TreeContext, depth int, key string, expanded bool) g.Node {
	return h.Button(
		h.Type("button"),
		h.Class("nav-toggle"),
		g.Attr("aria-expanded", fmt.Sprintf("%t", expanded)),
		g.Attr("data-on-click", toggleCall(key, ctx.CurrentPath)),
		itemLabel(page, ctx, depth, expanded),
	)
}

// itemLabel renders the icon, highlighted name, and trailing indicator
// of a node.
func itemLabel(page content.PageNode, ctx TreeContext, depth int, expanded bool) g.Node {
	var icon g.Node
	if depth == 0 {
		icon = SectionIcon(page.DisplayName)
	}

	var indicator g.Node
	switch {
	case page.HasChildren():
		indicator = Chevron(expanded)
	case page.IsExternal():
		indicator = ExternalIcon()
	}

	return g.Group([]g.Node{
		icon,
		h.Span(
			h.Class("nav-label"),
			HighlightedName(page.DisplayName, ctx.Filter.Term, ctx.Filter.Active()),
		),
		indicator,
	})
}

// toggleCall builds the datastar action that flips a node's expansion
// state on the server and patches the sidebar back in.
func toggleCall(key, path string) string {
	return fmt.Sprintf("@post('/api/nav/toggle?key=%s&path=%s')",
		queryEscape(key), queryEscape(path))
}

func queryEscape(s string) string {
	return url.QueryEscape(s)
}

// Fragment is one run of a display name after splitting on the search
// term. Match fragments render emphasized.
type Fragment struct {
	Text  string
	Match bool
}

// HighlightFragments splits name on case-insensitive occurrences of
// term, preserving the original casing and interleaving non-matching
// runs unchanged. An empty term yields the whole name unmatched.
// Matching is per rune so names whose lowercase form changes byte
// length (İ, for one) never get sliced mid-rune.
func HighlightFragments(name, term string) []Fragment {
	if term == "" {
		return []Fragment{{Text: name}}
	}

	runes := []rune(name)
	needle := []rune(term)
	for i, r := range needle {
		needle[i] = unicode.ToLower(r)
	}

	var frags []Fragment
	start, i := 0, 0
	for i <= len(runes)-len(needle) {
		if !needleAt(runes, needle, i) {
			i++
			continue
		}
		if i > start {
			frags = append(frags, Fragment{Text: string(runes[start:i])})
		}
		frags = append(frags, Fragment{Text: string(runes[i : i+len(needle)]), Match: true})
		i += len(needle)
		start = i
	}
	if start < len(runes) {
		frags = append(frags, Fragment{Text: string(runes[start:])})
	}
	return frags
}

func needleAt(runes, needle []rune, at int) bool {
	for i, r := range needle {
		if unicode.ToLower(runes[at+i]) != r {
			return false
		}
	}
	return true
}

// HighlightedName renders a display name with filter matches wrapped in
// <mark>.
func HighlightedName(name, term string, active bool) g.Node {
	if !active {
		return g.Text(name)
	}
	frags := HighlightFragments(name, term)
	nodes := make([]g.Node, 0, len(frags))
	for _, f := range frags {
		if f.Match {
			nodes = append(nodes, h.Mark(h.Class("nav-highlight"), g.Text(f.Text)))
		} else {
			nodes = append(nodes, g.Text(f.Text))
		}
	}
	return g.Group(nodes)
}
