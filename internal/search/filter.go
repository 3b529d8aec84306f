package search

import "github.com/nethippo/developer-website/internal/content"

// Filter restricts the navigation tree to a set of page display names.
// A nil Names set means no filter is active and everything renders.
type Filter struct {
	Term  string
	Names map[string]bool // nil when inactive
}

// Active reports whether the filter restricts rendering.
func (f Filter) Active() bool {
	return f.Names != nil
}

// Matches reports whether a display name survives the filter. With no
// active filter every name survives.
func (f Filter) Matches(name string) bool {
	if f.Names == nil {
		return true
	}
	return f.Names[name]
}

// Expand builds the filter set for the tree renderer from raw index
// matches: each matched name plus all of its ancestors, so that matched
// pages stay reachable and their ancestors render force-expanded. The
// set is non-nil (but possibly empty) whenever term is non-empty.
func Expand(tree []content.PageNode, term string, matches []string) Filter {
	if term == "" {
		return Filter{}
	}

	matched := make(map[string]bool, len(matches))
	for _, m := range matches {
		matched[m] = true
	}

	names := make(map[string]bool)
	var walk func(nodes []content.PageNode, trail []string)
	walk = func(nodes []content.PageNode, trail []string) {
		for _, n := range nodes {
			chain := append(append([]string{}, trail...), n.DisplayName)
			if matched[n.DisplayName] {
				for _, name := range chain {
					names[name] = true
				}
			}
			walk(n.Children, chain)
		}
	}
	walk(tree, nil)

	return Filter{Term: term, Names: names}
}
