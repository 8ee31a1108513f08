package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorGreen = lipgloss.Color("35")  // success
	colorCyan  = lipgloss.Color("36")  // values
	colorDim   = lipgloss.Color("240") // muted text
)

var (
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleValue   = lipgloss.NewStyle().Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
)

const iconSuccess = "✓"

// successLine formats the terminal summary printed after a render.
func successLine(path string, pages, bytes int) string {
	pageWord := "pages"
	if pages == 1 {
		pageWord = "page"
	}
	return fmt.Sprintf("%s Generated %s %s",
		styleSuccess.Render(iconSuccess),
		styleValue.Render(path),
		styleDim.Render(fmt.Sprintf("(%d %s, %d bytes)", pages, pageWord, bytes)))
}
