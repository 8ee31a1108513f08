package layout

import (
	"github.com/wudi/resumekit/document"
	"github.com/wudi/resumekit/geo"
)

// Fixed decoration colors; unlike the theme palette these are not
// configurable.
var (
	glowTop    = document.Color{R: 0.08, G: 0.18, B: 0.30}
	glowBottom = document.Color{R: 0.12, G: 0.10, B: 0.24}
	starColor  = document.Color{R: 0.82, G: 0.92, B: 1.0}
	cardFill   = document.Color{R: 0.08, G: 0.14, B: 0.30}
)

// drawDecor paints the page background: base fill, two soft corner
// glows, two concentric rings near the top corner and the star field.
func (e *Engine) drawDecor() {
	e.page.DrawRect(document.Rect{
		X: 0, Y: 0, W: e.pageWidth, H: e.pageHeight, Fill: cptr(e.theme.Background),
	})

	e.page.DrawCircle(document.Circle{
		CX: 40, CY: e.pageHeight - 40, Radius: 170, Color: glowTop, Mode: document.PaintFill,
	})
	e.page.DrawCircle(document.Circle{
		CX: e.pageWidth - 60, CY: 120, Radius: 200, Color: glowBottom, Mode: document.PaintFill,
	})

	for _, radius := range []float64{24, 40} {
		e.page.DrawCircle(document.Circle{
			CX: e.pageWidth - 78, CY: e.pageHeight - 66, Radius: radius,
			Color: e.theme.Border, Mode: document.PaintStroke, LineWidth: 1.25,
		})
	}

	for _, s := range geo.StarField(e.pageWidth, e.pageHeight) {
		e.page.DrawRect(document.Rect{
			X: s.X, Y: s.Y, W: s.Size, H: s.Size, Fill: cptr(starColor),
		})
	}
}
