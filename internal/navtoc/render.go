package navtoc

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// FormatEntry renders a single TOC bullet.
func FormatEntry(title, url string) string {
	return "- [" + title + "](" + url + ")"
}

// Render joins TOC lines into the printed document, which ends in a blank
// line.
func Render(lines []string) string {
	return strings.Join(lines, "\n") + "\n\n"
}

// RenderHTML converts a rendered TOC document to HTML.
func RenderHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.New().Convert([]byte(markdown), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Link is an inline link found in a rendered TOC.
type Link struct {
	Text        string
	Destination string
}

// Links parses a rendered TOC and returns its inline links in document
// order. A bullet whose destination is not a valid CommonMark link target
// (for instance one containing spaces) yields no link.
func Links(markdown string) []Link {
	src := []byte(markdown)
	root := goldmark.New().Parser().Parse(text.NewReader(src))

	var links []Link
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if link, ok := n.(*ast.Link); ok {
			links = append(links, Link{
				Text:        nodeText(link, src),
				Destination: string(link.Destination),
			})
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return links
}

func nodeText(n ast.Node, src []byte) string {
	var sb strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			sb.Write(t.Segment.Value(src))
			continue
		}
		sb.WriteString(nodeText(c, src))
	}
	return sb.String()
}
