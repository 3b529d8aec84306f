// Package nav owns per-visitor navigation state and the sidebar's SSE
// endpoints: node expansion toggles, the search filter, and the mobile
// nav flag.
package nav

import (
	"sync"

	"github.com/nethippo/developer-website/internal/content"
)

// TreeState holds one visitor's expansion toggles, keyed by stable node
// key (the display-name path). Toggles reset to freshly computed
// defaults on route transitions only; re-rendering the same path leaves
// them untouched.
type TreeState struct {
	mu       sync.Mutex
	prevPath string
	toggles  map[string]bool
}

// NewTreeState returns an empty state that will initialize on the first
// Sync.
func NewTreeState() *TreeState {
	return &TreeState{toggles: map[string]bool{}}
}

// Sync resets the toggles to defaults() when path differs from the
// previously observed path. defaults is only invoked on an actual
// transition, so the reset is edge-triggered. Paths are compared
// trailing-slash-insensitive, matching page identity. Returns whether a
// reset happened.
func (s *TreeState) Sync(path string, defaults func() map[string]bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	path = content.NormalizePath(path)
	if path == s.prevPath {
		return false
	}
	s.prevPath = path

	fresh := defaults()
	s.toggles = make(map[string]bool, len(fresh))
	for k, v := range fresh {
		s.toggles[k] = v
	}
	return true
}

// Toggle flips the expansion state for a node key.
func (s *TreeState) Toggle(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.toggles[key] = !s.toggles[key]
}

// Snapshot returns a copy of the current toggle map.
func (s *TreeState) Snapshot() map[string]bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]bool, len(s.toggles))
	for k, v := range s.toggles {
		out[k] = v
	}
	return out
}

// Registry maps visitor IDs to their tree state.
type Registry struct {
	mu     sync.Mutex
	states map[string]*TreeState
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{states: map[string]*TreeState{}}
}

// State returns the visitor's tree state, creating it on first use.
func (r *Registry) State(visitorID string) *TreeState {
	r.mu.Lock()
	defer r.mu.Unlock()

	st, ok := r.states[visitorID]
	if !ok {
		st = NewTreeState()
		r.states[visitorID] = st
	}
	return st
}

// DefaultExpansion computes the default toggle map for a route: on the
// homepage every top-level node starts open; elsewhere a node starts
// open iff its display name lies on the breadcrumb ancestry of the
// current page.
func DefaultExpansion(tree []content.PageNode, path string, breadcrumbs []string) map[string]bool {
	isHome := path == "/"
	onPath := make(map[string]bool, len(breadcrumbs))
	for _, b := range breadcrumbs {
		onPath[b] = true
	}

	out := map[string]bool{}
	var walk func(nodes []content.PageNode, parentKey string, depth int)
	walk = func(nodes []content.PageNode, parentKey string, depth int) {
		for _, n := range nodes {
			key := n.Key(parentKey)
			out[key] = (isHome && depth == 0) || onPath[n.DisplayName]
			walk(n.Children, key, depth+1)
		}
	}
	walk(tree, "", 0)
	return out
}
