// Package importer converts HTML documents into content pages: markdown
// body plus a frontmatter block carrying the document title.
package importer

import (
	"fmt"
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"golang.org/x/net/html"
)

// reExcessiveNewlines collapses runs of blank lines left by conversion.
var reExcessiveNewlines = regexp.MustCompile(`\n{4,}`)

// Document is the result of converting one HTML source.
type Document struct {
	Title    string
	Markdown string
}

// Convert parses an HTML document, extracts its title, and converts the
// body to markdown. The title comes from the <title> element, falling
// back to the first <h1>.
func Convert(htmlContent string) (*Document, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	title := textContent(findElement(doc, "title"))
	if title == "" {
		title = textContent(findElement(doc, "h1"))
	}

	md, err := htmltomarkdown.ConvertString(htmlContent)
	if err != nil {
		return nil, fmt.Errorf("failed to convert HTML: %w", err)
	}
	md = strings.TrimSpace(reExcessiveNewlines.ReplaceAllString(md, "\n\n\n"))

	return &Document{
		Title:    strings.TrimSpace(title),
		Markdown: md,
	}, nil
}

// Page renders the document as a markdown page with frontmatter.
func (d *Document) Page() string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString(fmt.Sprintf("title: %q\n", d.Title))
	b.WriteString("---\n\n")
	b.WriteString(d.Markdown)
	b.WriteString("\n")
	return b.String()
}

// findElement finds the first element with the given tag name.
func findElement(n *html.Node, tag string) *html.Node {
	if n == nil {
		return nil
	}
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// textContent returns the concatenated text of a node's subtree.
func textContent(n *html.Node) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}
