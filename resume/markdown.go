package resume

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// ParseMarkdown converts a markdown résumé into the same record Parse
// produces from plain text. The first level-1 heading becomes the name,
// the first paragraph before any section becomes the subtitle, deeper
// headings become section headings and list items become bullets.
func ParseMarkdown(src []byte) *Resume {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	r := &Resume{Name: FallbackName}
	named := false
	for child := doc.FirstChild(); child != nil; child = child.NextSibling() {
		switch n := child.(type) {
		case *ast.Heading:
			txt := string(n.Text(src))
			if n.Level == 1 && !named {
				r.Name = txt
				named = true
				continue
			}
			r.appendSeparator()
			r.Lines = append(r.Lines, Line{Kind: Heading, Text: txt})
		case *ast.Paragraph:
			txt := paragraphText(n, src)
			if r.Subtitle == "" && len(r.Lines) == 0 {
				r.Subtitle = txt
				continue
			}
			r.appendSeparator()
			r.Lines = append(r.Lines, Line{Kind: Plain, Text: txt})
		case *ast.List:
			r.appendSeparator()
			for item := n.FirstChild(); item != nil; item = item.NextSibling() {
				li, ok := item.(*ast.ListItem)
				if !ok {
					continue
				}
				r.Lines = append(r.Lines, Line{Kind: Bullet, Text: listItemText(li, src)})
			}
		}
	}
	return r
}

// appendSeparator inserts one blank line between blocks, never two.
func (r *Resume) appendSeparator() {
	if n := len(r.Lines); n > 0 && r.Lines[n-1].Kind != Blank {
		r.Lines = append(r.Lines, Line{Kind: Blank})
	}
}

// paragraphText concatenates the text segments of a paragraph, turning
// soft and hard line breaks into single spaces.
func paragraphText(n *ast.Paragraph, src []byte) string {
	var sb strings.Builder
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if t, ok := child.(*ast.Text); ok {
			sb.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				sb.WriteByte(' ')
			}
			continue
		}
		sb.Write(child.Text(src))
	}
	return strings.TrimSpace(sb.String())
}

// listItemText extracts the text of a list item; items usually wrap their
// content in a paragraph or text block.
func listItemText(li *ast.ListItem, src []byte) string {
	child := li.FirstChild()
	if child == nil {
		return ""
	}
	switch c := child.(type) {
	case *ast.Paragraph:
		return paragraphText(c, src)
	case *ast.TextBlock:
		var sb strings.Builder
		for t := c.FirstChild(); t != nil; t = t.NextSibling() {
			sb.Write(t.Text(src))
			sb.WriteByte(' ')
		}
		return strings.TrimSpace(sb.String())
	default:
		return strings.TrimSpace(string(child.Text(src)))
	}
}
