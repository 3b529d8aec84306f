// Package search maintains the page search index backing the sidebar
// filter.
package search

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/nethippo/developer-website/internal/content"
)

// Index is a SQLite-backed page index. Rebuild replaces the whole
// table, so queries between rebuilds see a consistent snapshot.
type Index struct {
	mu sync.Mutex
	db *sql.DB
}

const schemaSQL = `
CREATE TABLE IF NOT EXISTS pages (
	name    TEXT NOT NULL,
	url     TEXT NOT NULL,
	body    TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_pages_name ON pages(name);
`

// Open opens the index database. Use ":memory:" for an in-memory index,
// which is the default for the dev server.
func Open(path string) (*Index, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening search index: %w", err)
	}
	// A single connection keeps an in-memory database from evaporating
	// between pool checkouts.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging search index: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initializing search index schema: %w", err)
	}

	return &Index{db: db}, nil
}

// Close closes the underlying database.
func (x *Index) Close() error {
	if x.db == nil {
		return nil
	}
	return x.db.Close()
}

// Rebuild replaces the index contents with the library's current pages.
func (x *Index) Rebuild(lib *content.Library) error {
	x.mu.Lock()
	defer x.mu.Unlock()

	tx, err := x.db.Begin()
	if err != nil {
		return fmt.Errorf("starting index rebuild: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM pages`); err != nil {
		return fmt.Errorf("clearing search index: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO pages (name, url, body) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing index insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	var walkErr error
	lib.Walk(func(p *content.Page) {
		if walkErr != nil {
			return
		}
		if _, err := stmt.Exec(p.DisplayName, p.URL, p.Text); err != nil {
			walkErr = fmt.Errorf("indexing %s: %w", p.URL, err)
		}
	})
	if walkErr != nil {
		return walkErr
	}

	return tx.Commit()
}

// Query returns the display names of pages whose name or body contains
// term, case-insensitively. An empty term returns nil.
func (x *Index) Query(term string) ([]string, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, nil
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	pattern := "%" + escapeLike(term) + "%"
	rows, err := x.db.Query(
		`SELECT name FROM pages
		 WHERE name LIKE ? ESCAPE '\' COLLATE NOCASE
		    OR body LIKE ? ESCAPE '\' COLLATE NOCASE
		 ORDER BY name`,
		pattern, pattern,
	)
	if err != nil {
		return nil, fmt.Errorf("querying search index: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// escapeLike escapes LIKE metacharacters in user input.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
