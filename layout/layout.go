// Package layout turns a parsed résumé into a paginated document of draw
// instructions, deciding line wrapping and page breaks.
package layout

import (
	"fmt"
	"strings"

	"github.com/wudi/resumekit/document"
	"github.com/wudi/resumekit/resume"
	"github.com/wudi/resumekit/theme"
)

const (
	marginX = 36.0

	// bottomLimit is the lowest baseline the cursor may reach. Headings
	// and body lines reserve a small look-ahead above it so neither ends
	// up orphaned at the very bottom of a page.
	bottomLimit      = 56.0
	headingLookahead = 16.0
	lineLookahead    = 10.0

	lineStep  = 12.0
	blankStep = 7.0

	// bodyStartOffset positions the cursor below the slim header on
	// continuation pages.
	bodyStartOffset = 112.0
)

// Metric is one value/label card of the first-page metrics row.
type Metric struct {
	Value, Label string
}

// Engine lays out résumé content page by page. The page counter lives on
// the engine, not in package state, so independent documents can be
// generated concurrently from separate engines.
type Engine struct {
	theme   theme.Theme
	contact string
	metrics []Metric

	pageWidth  float64
	pageHeight float64

	doc    *document.Document
	page   *document.Page
	cursor float64

	name     string
	subtitle string
}

// Option configures an Engine.
type Option func(*Engine)

// WithTheme sets the page palette.
func WithTheme(t theme.Theme) Option {
	return func(e *Engine) { e.theme = t }
}

// WithContact sets the first-page contact line. An empty line is omitted.
func WithContact(line string) Option {
	return func(e *Engine) { e.contact = line }
}

// WithMetrics sets the first-page metric cards; only the first four are
// rendered.
func WithMetrics(metrics []Metric) Option {
	return func(e *Engine) { e.metrics = metrics }
}

// WithPageSize sets the page dimensions in points.
func WithPageSize(width, height float64) Option {
	return func(e *Engine) {
		e.pageWidth = width
		e.pageHeight = height
	}
}

// NewEngine creates a layout engine with the default A4-like page and
// palette.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		theme:      theme.Default(),
		pageWidth:  document.DefaultWidth,
		pageHeight: document.DefaultHeight,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) contentWidth() float64 { return e.pageWidth - 2*marginX }

// Render lays out the résumé and returns the finished document. All
// pagination state is reset on entry, so the same engine can render
// repeatedly with identical results.
func (e *Engine) Render(r *resume.Resume) *document.Document {
	e.doc = document.NewDocument(e.pageWidth, e.pageHeight)
	e.name, e.subtitle = r.Name, r.Subtitle

	e.beginPage(true)
	e.drawContactLine()
	containerY := e.drawMetricsRow()
	e.cursor = containerY - 18
	e.layoutBody(r.Lines)
	return e.doc
}

// beginPage starts a new page: decorations, then the header panel with
// the name and subtitle. Continuation pages get a slimmer header and a
// right-aligned page label.
func (e *Engine) beginPage(first bool) {
	e.page = e.doc.NewPage()
	e.drawDecor()

	headerH, nameSize := 56.0, 18.0
	if first {
		headerH, nameSize = 86.0, 24.0
	}
	headerY := e.pageHeight - 36 - headerH

	e.page.DrawRect(document.Rect{
		X: marginX, Y: headerY, W: e.contentWidth(), H: headerH,
		Fill: cptr(e.theme.Panel), Stroke: cptr(e.theme.Border), LineWidth: 1.1,
	})
	e.page.DrawText(document.Text{
		X: marginX + 16, Y: headerY + headerH - 32,
		Value: e.name, Size: nameSize, Font: document.FontBold, Color: cptr(e.theme.Accent),
	})
	e.page.DrawText(document.Text{
		X: marginX + 16, Y: headerY + headerH - 52,
		Value: e.subtitle, Size: 11, Font: document.FontRegular, Color: cptr(e.theme.Text),
	})

	if !first {
		e.page.DrawText(document.Text{
			X: e.pageWidth - 102, Y: headerY + 12,
			Value: fmt.Sprintf("Page %d", e.page.Number), Size: 9.5,
			Font: document.FontRegular, Color: cptr(e.theme.Muted),
		})
	}
}

// breakPage moves to a fresh continuation page and resets the cursor.
func (e *Engine) breakPage() {
	e.beginPage(false)
	e.cursor = e.pageHeight - bodyStartOffset
}

func (e *Engine) drawContactLine() {
	if e.contact == "" {
		return
	}
	e.page.DrawText(document.Text{
		X: marginX + 16, Y: e.pageHeight - 118,
		Value: e.contact, Size: 9.2, Font: document.FontRegular, Color: cptr(e.theme.Muted),
	})
}

// drawMetricsRow renders the metric cards inside their container and
// returns the container's bottom edge, where body layout resumes.
// Labels wrap to at most two lines; anything further is dropped.
func (e *Engine) drawMetricsRow() float64 {
	containerY := e.pageHeight - 216
	metrics := e.metrics
	if len(metrics) == 0 {
		return containerY
	}
	if len(metrics) > 4 {
		metrics = metrics[:4]
	}

	e.page.DrawRect(document.Rect{
		X: marginX, Y: containerY, W: e.contentWidth(), H: 88,
		Fill: cptr(e.theme.PanelAlt), Stroke: cptr(e.theme.Border), LineWidth: 1.0,
	})

	const gap = 8.0
	cardW := (e.contentWidth() - gap*5) / 4
	for idx, m := range metrics {
		x := marginX + gap + float64(idx)*(cardW+gap)
		y := containerY + 12
		e.page.DrawRect(document.Rect{
			X: x, Y: y, W: cardW, H: 64,
			Fill: cptr(cardFill), Stroke: cptr(e.theme.Border), LineWidth: 0.8,
		})

		valueSize := 16.0
		if idx >= 3 {
			valueSize = 13.5
		}
		e.page.DrawText(document.Text{
			X: x + 8, Y: y + 38,
			Value: m.Value, Size: valueSize, Font: document.FontBold, Color: cptr(e.theme.Accent),
		})

		wrapped := wrapText(m.Label, cardW-14, 8.8, false)
		if len(wrapped) > 2 {
			wrapped = wrapped[:2]
		}
		textY := y + 18.0
		for _, line := range wrapped {
			e.page.DrawText(document.Text{
				X: x + 8, Y: textY,
				Value: line, Size: 8.8, Font: document.FontRegular, Color: cptr(e.theme.Muted),
			})
			textY -= 10
		}
	}
	return containerY
}

// layoutBody walks the classified lines, moving the cursor down and
// breaking pages as vertical space runs out.
func (e *Engine) layoutBody(lines []resume.Line) {
	xText := marginX + 12.0
	for _, ln := range lines {
		switch ln.Kind {
		case resume.Blank:
			e.cursor -= blankStep
			if e.cursor < bottomLimit {
				e.breakPage()
			}

		case resume.Heading:
			e.cursor -= 6
			if e.cursor < bottomLimit+headingLookahead {
				e.breakPage()
			}
			e.page.DrawText(document.Text{
				X: xText, Y: e.cursor,
				Value: strings.ToUpper(ln.Text), Size: 11,
				Font: document.FontBold, Color: cptr(e.theme.Accent),
			})
			e.cursor -= 14

		case resume.Bullet:
			wrapped := wrapText(ln.Text, e.contentWidth()-38, 9.6, false)
			for i, part := range wrapped {
				if e.cursor < bottomLimit+lineLookahead {
					e.breakPage()
				}
				prefix := "- "
				if i > 0 {
					prefix = "  "
				}
				e.page.DrawText(document.Text{
					X: xText + 8, Y: e.cursor,
					Value: prefix + part, Size: 9.6,
					Font: document.FontRegular, Color: cptr(e.theme.Text),
				})
				e.cursor -= lineStep
			}

		case resume.Plain:
			wrapped := wrapText(ln.Text, e.contentWidth()-24, 9.8, false)
			for _, part := range wrapped {
				if e.cursor < bottomLimit+lineLookahead {
					e.breakPage()
				}
				e.page.DrawText(document.Text{
					X: xText, Y: e.cursor,
					Value: part, Size: 9.8,
					Font: document.FontRegular, Color: cptr(e.theme.Text),
				})
				e.cursor -= lineStep
			}
		}
	}
}

// cptr copies a color so instructions never alias engine state.
func cptr(c document.Color) *document.Color { return &c }
