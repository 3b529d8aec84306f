// Package content loads the markdown content directory and exposes the
// navigation tree and rendered pages consumed by the UI and the static
// site builder.
package content

import "strings"

// PageNode is one entry in the navigation hierarchy. A node with a URL is
// navigable; a node without one only expands and collapses. Both can hold
// children.
type PageNode struct {
	DisplayName string
	URL         string // empty means not navigable
	Group       string // empty means the default, unlabeled group
	SourcePath  string // content-relative markdown path, empty for synthetic nodes
	Children    []PageNode
}

// HasChildren reports whether the node has a subtree to expand.
func (n PageNode) HasChildren() bool {
	return len(n.Children) > 0
}

// IsExternal reports whether the node links outside the site. Anything
// with an explicit scheme prefix counts; site-relative URLs never do.
func (n PageNode) IsExternal() bool {
	return strings.HasPrefix(n.URL, "http")
}

// IsCurrent reports whether the node's URL identifies the given route
// path. Trailing slashes are ignored on both sides so /docs/ and /docs
// are the same page.
func (n PageNode) IsCurrent(path string) bool {
	if n.URL == "" {
		return false
	}
	return NormalizePath(n.URL) == NormalizePath(path)
}

// Key returns the stable identity of the node under the given parent key:
// the chain of display names from the root, joined with "/". It is used to
// address per-visitor expansion state.
func (n PageNode) Key(parentKey string) string {
	if parentKey == "" {
		return n.DisplayName
	}
	return parentKey + "/" + n.DisplayName
}

// NormalizePath strips a trailing slash so path comparisons are
// slash-insensitive. The root path stays "/".
func NormalizePath(p string) string {
	if p == "/" || p == "" {
		return "/"
	}
	return strings.TrimSuffix(p, "/")
}

// PageMeta is the YAML frontmatter of a content file. Unknown keys are
// ignored; everything is optional.
type PageMeta struct {
	Title  string `mapstructure:"title"`
	Group  string `mapstructure:"group"`
	Order  int    `mapstructure:"order"`
	Hidden bool   `mapstructure:"hidden"`
	URL    string `mapstructure:"url"` // external link override
}

// Breadcrumbs returns the display names from the tree root down to the
// node whose URL matches path, inclusive. It returns nil when no node
// matches.
func Breadcrumbs(tree []PageNode, path string) []string {
	target := NormalizePath(path)

	var walk func(nodes []PageNode, trail []string) []string
	walk = func(nodes []PageNode, trail []string) []string {
		for _, n := range nodes {
			chain := append(append([]string{}, trail...), n.DisplayName)
			if n.URL != "" && NormalizePath(n.URL) == target {
				return chain
			}
			if found := walk(n.Children, chain); found != nil {
				return found
			}
		}
		return nil
	}
	return walk(tree, nil)
}
