// Package theme defines the color palette applied to every rendered page.
package theme

import (
	"fmt"

	"github.com/wudi/resumekit/document"
)

// Theme is the page palette. It is built once before rendering and only
// read afterwards. All color components must be in [0, 1].
type Theme struct {
	Background document.Color
	Panel      document.Color
	PanelAlt   document.Color
	Border     document.Color
	Text       document.Color
	Muted      document.Color
	Accent     document.Color
	AccentAlt  document.Color
}

// Default returns the built-in night-sky palette.
func Default() Theme {
	return Theme{
		Background: document.Color{R: 0.03, G: 0.06, B: 0.14},
		Panel:      document.Color{R: 0.07, G: 0.13, B: 0.28},
		PanelAlt:   document.Color{R: 0.06, G: 0.11, B: 0.24},
		Border:     document.Color{R: 0.22, G: 0.33, B: 0.50},
		Text:       document.Color{R: 0.90, G: 0.95, B: 0.99},
		Muted:      document.Color{R: 0.77, G: 0.84, B: 0.91},
		Accent:     document.Color{R: 0.91, G: 0.76, B: 0.50},
		AccentAlt:  document.Color{R: 0.56, G: 0.44, B: 0.74},
	}
}

// Validate reports the first color whose components fall outside [0, 1].
func (t Theme) Validate() error {
	named := []struct {
		name  string
		color document.Color
	}{
		{"background", t.Background},
		{"panel", t.Panel},
		{"panel_alt", t.PanelAlt},
		{"border", t.Border},
		{"text", t.Text},
		{"muted", t.Muted},
		{"accent", t.Accent},
		{"accent_alt", t.AccentAlt},
	}
	for _, n := range named {
		for _, v := range []float64{n.color.R, n.color.G, n.color.B} {
			if v < 0 || v > 1 {
				return fmt.Errorf("theme color %s: component %.3f out of range [0, 1]", n.name, v)
			}
		}
	}
	return nil
}
