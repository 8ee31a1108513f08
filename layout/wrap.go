package layout

import (
	"strings"
	"unicode/utf8"
)

// Average glyph width as a fraction of the font size. The base fonts are
// not embedded, so wrapping works from a character budget instead of
// real metrics.
const (
	charFactorRegular = 0.53
	charFactorBold    = 0.56
)

// wrapText greedily wraps text to the character budget implied by width
// and fontSize. Words are never split and hyphens are not break points;
// a word wider than the whole budget gets a line of its own. Empty input
// yields a single empty line.
func wrapText(text string, width, fontSize float64, bold bool) []string {
	if text == "" {
		return []string{""}
	}
	factor := charFactorRegular
	if bold {
		factor = charFactorBold
	}
	maxChars := int(width / (fontSize * factor))
	if maxChars < 12 {
		maxChars = 12
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{text}
	}

	var lines []string
	current := words[0]
	currentLen := utf8.RuneCountInString(current)
	for _, word := range words[1:] {
		wordLen := utf8.RuneCountInString(word)
		if currentLen+1+wordLen <= maxChars {
			current += " " + word
			currentLen += 1 + wordLen
		} else {
			lines = append(lines, current)
			current = word
			currentLen = wordLen
		}
	}
	return append(lines, current)
}
