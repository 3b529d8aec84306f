package content

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Page is one rendered content document.
type Page struct {
	DisplayName string
	URL         string
	SourcePath  string // content-relative markdown path
	Meta        PageMeta
	HTML        string // rendered body
	Text        string // raw markdown body, used for search indexing
}

// Library holds the loaded content tree and page set. It is safe for
// concurrent use; Reload swaps the whole snapshot under the write lock.
type Library struct {
	mu    sync.RWMutex
	dir   string
	tree  []PageNode
	pages map[string]*Page // keyed by normalized URL path
}

var titleCaser = cases.Title(language.English)

// Load walks dir, parses every markdown file, and builds the navigation
// tree and page set.
func Load(dir string) (*Library, error) {
	lib := &Library{dir: dir}
	if err := lib.Reload(); err != nil {
		return nil, err
	}
	return lib, nil
}

// Dir returns the content directory the library was loaded from.
func (l *Library) Dir() string {
	return l.dir
}

// Reload re-reads the content directory and atomically replaces the
// current snapshot.
func (l *Library) Reload() error {
	tree, pages, err := loadDir(l.dir)
	if err != nil {
		return err
	}

	l.mu.Lock()
	l.tree = tree
	l.pages = pages
	l.mu.Unlock()
	return nil
}

// Tree returns the navigation tree. The returned slice must be treated
// as read-only.
func (l *Library) Tree() []PageNode {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree
}

// Lookup resolves a route path to its page, trailing-slash-insensitive.
func (l *Library) Lookup(path string) (*Page, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	p, ok := l.pages[NormalizePath(path)]
	return p, ok
}

// Breadcrumbs returns the display-name ancestry for a route path.
func (l *Library) Breadcrumbs(path string) []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return Breadcrumbs(l.tree, path)
}

// Walk visits every page in URL order.
func (l *Library) Walk(fn func(*Page)) {
	l.mu.RLock()
	urls := make([]string, 0, len(l.pages))
	for u := range l.pages {
		urls = append(urls, u)
	}
	sort.Strings(urls)
	pages := make([]*Page, 0, len(urls))
	for _, u := range urls {
		pages = append(pages, l.pages[u])
	}
	l.mu.RUnlock()

	for _, p := range pages {
		fn(p)
	}
}

// Len returns the number of loaded pages.
func (l *Library) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.pages)
}

// loadDir builds the tree and page set for a content directory.
func loadDir(dir string) ([]PageNode, map[string]*Page, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, nil, fmt.Errorf("content directory: %w", err)
	}

	pages := make(map[string]*Page)
	tree, err := loadLevel(dir, "", pages)
	if err != nil {
		return nil, nil, err
	}

	// The root index.md becomes the homepage but stays out of the tree.
	if err := loadRootIndex(dir, pages); err != nil {
		return nil, nil, err
	}

	return tree, pages, nil
}

func loadRootIndex(dir string, pages map[string]*Page) error {
	path := filepath.Join(dir, "index.md")
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	page, err := loadPage(path, "index.md", "/")
	if err != nil {
		return err
	}
	pages["/"] = page
	return nil
}

// loadLevel reads one directory level into nodes, recursing into
// subdirectories. rel is the content-relative path of the level.
func loadLevel(root, rel string, pages map[string]*Page) ([]PageNode, error) {
	entries, err := os.ReadDir(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		return nil, fmt.Errorf("reading content level %q: %w", rel, err)
	}

	type ordered struct {
		node  PageNode
		order int
	}
	var nodes []ordered

	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
			continue
		}
		childRel := name
		if rel != "" {
			childRel = rel + "/" + name
		}

		switch {
		case entry.IsDir():
			node, order, err := loadSection(root, childRel, pages)
			if err != nil {
				return nil, err
			}
			if node != nil {
				nodes = append(nodes, ordered{node: *node, order: order})
			}

		case strings.HasSuffix(name, ".md"):
			if rel == "" && name == "index.md" {
				continue // homepage, handled by loadRootIndex
			}
			if name == "index.md" {
				continue // section landing page, handled by loadSection
			}
			url := "/" + strings.TrimSuffix(childRel, ".md")
			page, err := loadPage(filepath.Join(root, filepath.FromSlash(childRel)), childRel, url)
			if err != nil {
				return nil, err
			}
			if page.Meta.Hidden {
				continue
			}
			nodeURL := page.URL
			if page.Meta.URL != "" {
				nodeURL = page.Meta.URL
			} else {
				pages[NormalizePath(url)] = page
			}
			nodes = append(nodes, ordered{
				node: PageNode{
					DisplayName: page.DisplayName,
					URL:         nodeURL,
					Group:       page.Meta.Group,
					SourcePath:  childRel,
				},
				order: page.Meta.Order,
			})
		}
	}

	sort.SliceStable(nodes, func(i, j int) bool {
		if nodes[i].order != nodes[j].order {
			return nodes[i].order < nodes[j].order
		}
		return nodes[i].node.DisplayName < nodes[j].node.DisplayName
	})

	out := make([]PageNode, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.node)
	}
	return out, nil
}

// loadSection turns a subdirectory into a tree node. The directory's
// index.md, when present, provides the section's title, URL, and
// metadata; without one the section is a toggle-only node named after
// the directory.
func loadSection(root, rel string, pages map[string]*Page) (*PageNode, int, error) {
	children, err := loadLevel(root, rel, pages)
	if err != nil {
		return nil, 0, err
	}

	node := PageNode{
		DisplayName: titleCaser.String(strings.ReplaceAll(filepath.Base(rel), "-", " ")),
	}
	order := 0

	indexRel := rel + "/index.md"
	indexPath := filepath.Join(root, filepath.FromSlash(indexRel))
	if _, err := os.Stat(indexPath); err == nil {
		url := "/" + rel
		page, err := loadPage(indexPath, indexRel, url)
		if err != nil {
			return nil, 0, err
		}
		if page.Meta.Hidden {
			return nil, 0, nil
		}
		pages[NormalizePath(url)] = page
		node.DisplayName = page.DisplayName
		node.URL = page.URL
		node.Group = page.Meta.Group
		node.SourcePath = indexRel
		order = page.Meta.Order
	}

	if node.URL == "" && len(children) == 0 {
		return nil, 0, nil // nothing navigable below, drop the section
	}

	node.Children = children
	return &node, order, nil
}

// loadPage parses and renders one markdown file.
func loadPage(path, rel, url string) (*Page, error) {
	src, err := os.ReadFile(path) //nolint:gosec // G304: path comes from walking the configured content dir
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", rel, err)
	}

	raw, body, err := splitFrontmatter(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", rel, err)
	}
	meta, err := decodeMeta(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", rel, err)
	}

	displayName := meta.Title
	if displayName == "" {
		displayName = extractHeading(body)
	}
	if displayName == "" {
		base := strings.TrimSuffix(filepath.Base(rel), ".md")
		if base == "index" {
			base = filepath.Base(filepath.Dir(rel))
		}
		displayName = titleCaser.String(strings.ReplaceAll(base, "-", " "))
	}

	html, err := renderMarkdown(body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", rel, err)
	}

	return &Page{
		DisplayName: displayName,
		URL:         url,
		SourcePath:  filepath.ToSlash(rel),
		Meta:        meta,
		HTML:        html,
		Text:        string(body),
	}, nil
}
