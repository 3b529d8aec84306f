package search

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nethippo/developer-website/internal/content"
)

// newTestIndex builds an in-memory index over a small content tree.
func newTestIndex(t *testing.T) (*Index, *content.Library) {
	t.Helper()

	dir := t.TempDir()
	files := map[string]string{
		"build-apps.md": "---\ntitle: \"Build apps\"\n---\n\nHow to build applications.\n",
		"deploy.md":     "---\ntitle: \"Deploy\"\n---\n\nShipping to production.\n",
		"faq.md":        "---\ntitle: \"FAQ\"\n---\n\nDeployment questions answered.\n",
	}
	for rel, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, rel), []byte(body), 0600))
	}

	lib, err := content.Load(dir)
	require.NoError(t, err)

	idx, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = idx.Close() })

	require.NoError(t, idx.Rebuild(lib))
	return idx, lib
}

func TestQuery_MatchesNameAndBody(t *testing.T) {
	idx, _ := newTestIndex(t)

	tests := []struct {
		name string
		term string
		want []string
	}{
		{"name match", "apps", []string{"Build apps"}},
		{"body match", "production", []string{"Deploy"}},
		{"case insensitive", "DEPLOY", []string{"Deploy", "FAQ"}},
		{"no match", "kubernetes", nil},
		{"empty term", "", nil},
		{"whitespace only", "   ", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := idx.Query(tt.term)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuery_EscapesLikeMetacharacters(t *testing.T) {
	idx, _ := newTestIndex(t)

	// % would otherwise match everything
	got, err := idx.Query("100%")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRebuild_ReplacesContents(t *testing.T) {
	idx, lib := newTestIndex(t)

	// A second rebuild must not duplicate rows
	require.NoError(t, idx.Rebuild(lib))

	got, err := idx.Query("deploy")
	require.NoError(t, err)
	assert.Equal(t, []string{"Deploy", "FAQ"}, got)
}
