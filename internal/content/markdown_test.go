package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitFrontmatter(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		wantMeta map[string]any
		wantBody string
		wantErr  bool
	}{
		{
			name:     "with frontmatter",
			src:      "---\ntitle: \"Install\"\norder: 2\n---\n\n# Install\n",
			wantMeta: map[string]any{"title": "Install", "order": 2},
			wantBody: "\n# Install\n",
		},
		{
			name:     "no frontmatter",
			src:      "# Plain\n",
			wantMeta: nil,
			wantBody: "# Plain\n",
		},
		{
			name:     "unterminated fence treated as body",
			src:      "---\ntitle: oops\n",
			wantMeta: nil,
			wantBody: "---\ntitle: oops\n",
		},
		{
			name:    "invalid yaml",
			src:     "---\n: [unbalanced\n---\nbody\n",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, body, err := splitFrontmatter([]byte(tt.src))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.wantMeta == nil {
				assert.Nil(t, meta)
			} else {
				assert.Equal(t, tt.wantMeta, meta)
			}
			assert.Equal(t, tt.wantBody, string(body))
		})
	}
}

func TestDecodeMeta_WeaklyTyped(t *testing.T) {
	meta, err := decodeMeta(map[string]any{
		"title":  "Install",
		"order":  "3", // string, still decodes
		"hidden": "true",
		"extra":  "ignored",
	})
	require.NoError(t, err)

	assert.Equal(t, "Install", meta.Title)
	assert.Equal(t, 3, meta.Order)
	assert.True(t, meta.Hidden)
}

func TestRenderMarkdown(t *testing.T) {
	html, err := renderMarkdown([]byte("# Title\n\nSome *emphasis* and a [link](/guides).\n"))
	require.NoError(t, err)

	assert.Contains(t, html, "<h1 id=\"title\">Title</h1>")
	assert.Contains(t, html, "<em>emphasis</em>")
	assert.Contains(t, html, `<a href="/guides">link</a>`)
}

func TestRenderMarkdown_GFMTable(t *testing.T) {
	html, err := renderMarkdown([]byte("| a | b |\n|---|---|\n| 1 | 2 |\n"))
	require.NoError(t, err)
	assert.Contains(t, html, "<table>")
}

func TestExtractHeading(t *testing.T) {
	assert.Equal(t, "First", extractHeading([]byte("intro\n\n# First\n\n# Second\n")))
	assert.Equal(t, "", extractHeading([]byte("## only subheadings\n")))
}
