// Package document holds the in-memory model produced by the layout
// engine: an ordered list of pages, each carrying the draw instructions
// that will become its PDF content stream.
package document

// Default page dimensions in PDF points.
const (
	DefaultWidth  = 595.0
	DefaultHeight = 842.0
)

// Color is an RGB color with components in [0, 1].
type Color struct {
	R, G, B float64
}

// Font identifies one of the two shared page fonts.
type Font string

const (
	FontRegular Font = "F1" // Helvetica
	FontBold    Font = "F2" // Helvetica-Bold
)

// PaintMode selects how a circle path is painted.
type PaintMode int

const (
	PaintFill PaintMode = iota
	PaintStroke
)

// Instruction is a single drawing operation on a page. The concrete
// variants are Rect, Circle and Text.
type Instruction interface {
	instruction()
}

// Rect paints an axis-aligned rectangle. Fill and Stroke are optional;
// when both are set the rectangle is filled and outlined in one pass.
type Rect struct {
	X, Y, W, H float64
	Fill       *Color
	Stroke     *Color
	LineWidth  float64
}

// Circle paints a full circle approximated by four Bézier segments.
type Circle struct {
	CX, CY, Radius float64
	Color          Color
	Mode           PaintMode
	LineWidth      float64
}

// Text places a single run of text at a baseline position.
type Text struct {
	X, Y  float64
	Value string
	Size  float64
	Font  Font
	Color *Color
}

func (Rect) instruction()   {}
func (Circle) instruction() {}
func (Text) instruction()   {}

// Page is an ordered batch of instructions plus its 1-based page number.
// The layout engine appends to the current page only; once it moves on,
// the page is never touched again.
type Page struct {
	Number       int
	Instructions []Instruction
}

func (p *Page) DrawRect(r Rect) *Page {
	p.Instructions = append(p.Instructions, r)
	return p
}

func (p *Page) DrawCircle(c Circle) *Page {
	p.Instructions = append(p.Instructions, c)
	return p
}

func (p *Page) DrawText(t Text) *Page {
	p.Instructions = append(p.Instructions, t)
	return p
}

// Document is the ordered list of finished pages. Page order equals
// reading order, and a rendered document always holds at least one page.
type Document struct {
	Width, Height float64
	Pages         []*Page
}

// NewDocument returns an empty document with the given page size.
func NewDocument(width, height float64) *Document {
	return &Document{Width: width, Height: height}
}

// NewPage allocates the next page, numbers it and appends it to the
// document.
func (d *Document) NewPage() *Page {
	p := &Page{Number: len(d.Pages) + 1}
	d.Pages = append(d.Pages, p)
	return p
}

func (d *Document) PageCount() int { return len(d.Pages) }
