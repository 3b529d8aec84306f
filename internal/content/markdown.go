package content

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"gopkg.in/yaml.v3"
)

// frontmatterDelim separates YAML frontmatter from the markdown body.
const frontmatterDelim = "---"

var markdown = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		highlighting.NewHighlighting(
			highlighting.WithStyle("github"),
		),
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
	goldmark.WithRendererOptions(
		html.WithUnsafe(),
	),
)

// splitFrontmatter separates an optional leading YAML frontmatter block
// from the markdown body. Files without a frontmatter fence are returned
// unchanged with an empty meta map.
func splitFrontmatter(src []byte) (meta map[string]any, body []byte, err error) {
	text := string(src)
	if !strings.HasPrefix(text, frontmatterDelim+"\n") && text != frontmatterDelim {
		return nil, src, nil
	}

	rest := text[len(frontmatterDelim)+1:]
	idx := strings.Index(rest, "\n"+frontmatterDelim)
	if idx < 0 {
		return nil, src, nil
	}

	raw := rest[:idx]
	body = []byte(strings.TrimPrefix(rest[idx+1+len(frontmatterDelim):], "\n"))

	meta = map[string]any{}
	if err := yaml.Unmarshal([]byte(raw), &meta); err != nil {
		return nil, nil, fmt.Errorf("parsing frontmatter: %w", err)
	}
	return meta, body, nil
}

// decodeMeta converts a frontmatter map into PageMeta. Decoding is
// weakly typed so "order: \"3\"" and similar sloppiness still works.
func decodeMeta(raw map[string]any) (PageMeta, error) {
	var meta PageMeta
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &meta,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return meta, err
	}
	if err := dec.Decode(raw); err != nil {
		return meta, fmt.Errorf("decoding frontmatter: %w", err)
	}
	return meta, nil
}

// renderMarkdown converts a markdown body to HTML.
func renderMarkdown(body []byte) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert(body, &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return buf.String(), nil
}

// extractHeading returns the first H1 text of a markdown body, or "".
func extractHeading(body []byte) string {
	for _, line := range strings.Split(string(body), "\n") {
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# "))
		}
	}
	return ""
}
