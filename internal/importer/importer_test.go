package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	doc, err := Convert(`<!DOCTYPE html>
<html>
<head><title>Installation Guide</title></head>
<body>
<h1>Installing</h1>
<p>Run the <strong>installer</strong>.</p>
<ul><li>Step one</li><li>Step two</li></ul>
</body>
</html>`)
	require.NoError(t, err)

	assert.Equal(t, "Installation Guide", doc.Title)
	assert.Contains(t, doc.Markdown, "# Installing")
	assert.Contains(t, doc.Markdown, "**installer**")
	assert.Contains(t, doc.Markdown, "- Step one")
}

func TestConvert_TitleFallsBackToH1(t *testing.T) {
	doc, err := Convert(`<html><body><h1>Only Heading</h1><p>body</p></body></html>`)
	require.NoError(t, err)
	assert.Equal(t, "Only Heading", doc.Title)
}

func TestConvert_NoTitleAtAll(t *testing.T) {
	doc, err := Convert(`<html><body><p>just a paragraph</p></body></html>`)
	require.NoError(t, err)
	assert.Empty(t, doc.Title)
	assert.Contains(t, doc.Markdown, "just a paragraph")
}

func TestDocument_Page(t *testing.T) {
	doc := &Document{Title: "Install", Markdown: "# Install\n\nbody"}
	page := doc.Page()

	assert.Contains(t, page, "---\ntitle: \"Install\"\n---\n")
	assert.Contains(t, page, "# Install")
}
