package layout

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func budgetFor(width, fontSize float64, bold bool) int {
	factor := charFactorRegular
	if bold {
		factor = charFactorBold
	}
	n := int(width / (fontSize * factor))
	if n < 12 {
		n = 12
	}
	return n
}

func TestWrapTextPreservesWordSequence(t *testing.T) {
	inputs := []string{
		"a single short line",
		"the quick brown fox jumps over the lazy dog and keeps running well past the fence line",
		"word",
		"two words",
		"hyphen-joined words stay-together even when wrapping is tight here",
	}
	for _, in := range inputs {
		for _, width := range []float64{60, 120, 300, 523} {
			lines := wrapText(in, width, 9.8, false)
			got := strings.Join(strings.Fields(strings.Join(lines, " ")), " ")
			want := strings.Join(strings.Fields(in), " ")
			if got != want {
				t.Errorf("wrapText(%q, %v) lost words: got %q", in, width, got)
			}
		}
	}
}

func TestWrapTextRespectsBudget(t *testing.T) {
	in := "alpha beta gamma delta epsilon zeta eta theta iota kappa lambda mu"
	width, size := 120.0, 9.6
	budget := budgetFor(width, size, false)
	for _, line := range wrapText(in, width, size, false) {
		if n := utf8.RuneCountInString(line); n > budget {
			// Only a single over-long word may exceed the budget.
			if strings.Contains(line, " ") {
				t.Errorf("line %q has %d chars, budget %d", line, n, budget)
			}
		}
	}
}

func TestWrapTextLongWordKeptWhole(t *testing.T) {
	word := strings.Repeat("x", 80)
	lines := wrapText(word, 60, 9.6, false)
	if len(lines) != 1 || lines[0] != word {
		t.Fatalf("long word should come back unchanged, got %q", lines)
	}
}

func TestWrapTextEmptyInput(t *testing.T) {
	lines := wrapText("", 100, 10, false)
	if len(lines) != 1 || lines[0] != "" {
		t.Fatalf("empty input: got %q, want one empty line", lines)
	}
}

func TestWrapTextWhitespaceOnly(t *testing.T) {
	lines := wrapText("   ", 100, 10, false)
	if len(lines) != 1 || lines[0] != "   " {
		t.Fatalf("whitespace-only input should come back unchanged, got %q", lines)
	}
}

func TestWrapTextMinimumBudget(t *testing.T) {
	// A tiny width still allows 12 characters per line.
	lines := wrapText("abcd efgh ijk", 1, 100, true)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), lines)
	}
	if lines[0] != "abcd efgh" {
		t.Fatalf("first line = %q, want %q", lines[0], "abcd efgh")
	}
}

func TestWrapTextBoldUsesWiderFactor(t *testing.T) {
	if budgetFor(100, 10, true) >= budgetFor(100, 10, false) {
		t.Fatal("bold text should get a smaller character budget")
	}
}
