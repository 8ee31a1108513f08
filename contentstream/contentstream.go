// Package contentstream serializes page draw instructions into the PDF
// operator sequences stored in each page's content stream.
package contentstream

import (
	"fmt"
	"strings"

	"github.com/wudi/resumekit/document"
	"github.com/wudi/resumekit/geo"
)

// Serialize renders every instruction of the page, in order, into content
// stream bytes. The result is Latin-1 encoded; runes outside the range
// are replaced rather than surfaced as errors.
func Serialize(p *document.Page) []byte {
	var b strings.Builder
	for _, inst := range p.Instructions {
		switch op := inst.(type) {
		case document.Rect:
			writeRect(&b, op)
		case document.Circle:
			writeCircle(&b, op)
		case document.Text:
			writeText(&b, op)
		}
	}
	return encodeLatin1(b.String())
}

// paintOperator picks the path-painting operator: fill, stroke, or both.
func paintOperator(fill, stroke bool) string {
	switch {
	case fill && stroke:
		return "B"
	case fill:
		return "f"
	default:
		return "S"
	}
}

func writeColor(b *strings.Builder, c document.Color, stroke bool) {
	op := "rg"
	if stroke {
		op = "RG"
	}
	fmt.Fprintf(b, "%.3f %.3f %.3f %s\n", c.R, c.G, c.B, op)
}

func writeLineWidth(b *strings.Builder, w float64) {
	if w <= 0 {
		w = 1
	}
	fmt.Fprintf(b, "%.2f w\n", w)
}

func writeRect(b *strings.Builder, r document.Rect) {
	if r.Fill != nil {
		writeColor(b, *r.Fill, false)
	}
	if r.Stroke != nil {
		writeColor(b, *r.Stroke, true)
		writeLineWidth(b, r.LineWidth)
	}
	fmt.Fprintf(b, "%.2f %.2f %.2f %.2f re\n", r.X, r.Y, r.W, r.H)
	b.WriteString(paintOperator(r.Fill != nil, r.Stroke != nil))
	b.WriteString("\n")
}

func writeCircle(b *strings.Builder, c document.Circle) {
	stroke := c.Mode == document.PaintStroke
	writeColor(b, c.Color, stroke)
	if stroke {
		writeLineWidth(b, c.LineWidth)
	}
	start, segments := geo.Circle(c.CX, c.CY, c.Radius)
	fmt.Fprintf(b, "%.2f %.2f m\n", start.X, start.Y)
	for _, s := range segments {
		fmt.Fprintf(b, "%.2f %.2f %.2f %.2f %.2f %.2f c\n",
			s.Control1.X, s.Control1.Y, s.Control2.X, s.Control2.Y, s.End.X, s.End.Y)
	}
	if stroke {
		b.WriteString("S\n")
	} else {
		b.WriteString("f\n")
	}
}

func writeText(b *strings.Builder, t document.Text) {
	if t.Color != nil {
		writeColor(b, *t.Color, false)
	}
	b.WriteString("BT\n")
	fmt.Fprintf(b, "/%s %.2f Tf\n", t.Font, t.Size)
	fmt.Fprintf(b, "1 0 0 1 %.2f %.2f Tm\n", t.X, t.Y)
	fmt.Fprintf(b, "(%s) Tj\n", Escape(t.Value))
	b.WriteString("ET\n")
}

// Escape backslash-prefixes the three characters with syntactic meaning
// inside a PDF literal string. No other characters are altered.
func Escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "(", `\(`)
	s = strings.ReplaceAll(s, ")", `\)`)
	return s
}

// encodeLatin1 maps the stream to Latin-1 bytes. Runes beyond the range
// become '?'; the base fonts carry no glyphs for them anyway.
func encodeLatin1(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if r > 0xFF {
			out = append(out, '?')
		} else {
			out = append(out, byte(r))
		}
	}
	return out
}
