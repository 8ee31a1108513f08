package layout

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wudi/resumekit/document"
	"github.com/wudi/resumekit/resume"
)

func pageTexts(p *document.Page) []document.Text {
	var out []document.Text
	for _, inst := range p.Instructions {
		if t, ok := inst.(document.Text); ok {
			out = append(out, t)
		}
	}
	return out
}

func hasText(p *document.Page, value string) bool {
	for _, t := range pageTexts(p) {
		if t.Value == value {
			return true
		}
	}
	return false
}

func render(t *testing.T, input string, opts ...Option) *document.Document {
	t.Helper()
	rec := resume.Parse(input, resume.NewClassifier())
	return NewEngine(opts...).Render(rec)
}

func TestRenderShortResumeSinglePage(t *testing.T) {
	doc := render(t, "Jane Doe\nEngineer\n\nFirst line\nSecond line\nThird line\n")
	if doc.PageCount() != 1 {
		t.Fatalf("page count = %d, want 1", doc.PageCount())
	}
	p := doc.Pages[0]
	if !hasText(p, "Jane Doe") || !hasText(p, "Engineer") {
		t.Fatal("header name/subtitle missing from first page")
	}
	if !hasText(p, "First line") {
		t.Fatal("body line missing")
	}
	if hasText(p, "Page 1") {
		t.Fatal("first page must not carry a page label")
	}
}

func TestRenderLongResumePaginatesWithLabels(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("Jane Doe\nEngineer\n\n")
	item := strings.TrimSpace(strings.Repeat("lorem ipsum dolor sit amet ", 5)) // ~130 chars
	for i := 0; i < 60; i++ {
		sb.WriteString("- " + item + "\n")
	}

	doc := render(t, sb.String())
	if doc.PageCount() <= 1 {
		t.Fatalf("page count = %d, want > 1", doc.PageCount())
	}
	for i, p := range doc.Pages {
		if p.Number != i+1 {
			t.Fatalf("page %d numbered %d", i, p.Number)
		}
		label := fmt.Sprintf("Page %d", p.Number)
		if i == 0 {
			continue
		}
		if !hasText(p, label) {
			t.Errorf("page %d missing label %q", p.Number, label)
		}
		if !hasText(p, "Jane Doe") {
			t.Errorf("page %d missing header name", p.Number)
		}
	}
}

func TestRenderBackToBackHeadings(t *testing.T) {
	doc := render(t, "Jane Doe\nEngineer\nExperience\nEducation\n")
	if doc.PageCount() != 1 {
		t.Fatalf("page count = %d, want 1", doc.PageCount())
	}

	var first, second *document.Text
	for _, txt := range pageTexts(doc.Pages[0]) {
		switch txt.Value {
		case "EXPERIENCE":
			cp := txt
			first = &cp
		case "EDUCATION":
			cp := txt
			second = &cp
		}
	}
	if first == nil || second == nil {
		t.Fatal("headings not rendered upper-cased")
	}
	// Each heading costs exactly its 6pt pre-gap plus 14pt of advance;
	// nothing collapses or doubles up between adjacent headings.
	if got := first.Y - second.Y; got != 20 {
		t.Fatalf("heading spacing = %v, want 20", got)
	}
}

func TestRenderEmptyInput(t *testing.T) {
	doc := render(t, "")
	if doc.PageCount() != 1 {
		t.Fatalf("page count = %d, want 1", doc.PageCount())
	}
	if !hasText(doc.Pages[0], resume.FallbackName) {
		t.Fatal("fallback name missing from header")
	}
	if len(doc.Pages[0].Instructions) == 0 {
		t.Fatal("empty input should still draw decorations and the header")
	}
}

func TestRenderDeterministic(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("Jane Doe\nEngineer\n\nExperience\n")
	for i := 0; i < 40; i++ {
		sb.WriteString("- shipped a thing that mattered to someone in production somewhere\n")
	}
	a := render(t, sb.String())
	b := render(t, sb.String())
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("layout not deterministic:\n%s", diff)
	}
}

func TestHeadingNeverOrphanedAtBottom(t *testing.T) {
	// Interleave padding with headings so some headings land close to
	// the bottom margin on every page.
	var sb strings.Builder
	sb.WriteString("Jane Doe\nEngineer\n\n")
	for i := 0; i < 30; i++ {
		sb.WriteString("Experience\n")
		for j := 0; j < i%13; j++ {
			sb.WriteString("filler line of plain body text\n")
		}
	}
	doc := render(t, sb.String())
	for _, p := range doc.Pages {
		for _, txt := range pageTexts(p) {
			if txt.Value != "EXPERIENCE" {
				continue
			}
			if txt.Y < bottomLimit+headingLookahead {
				t.Fatalf("page %d: heading rendered at y=%v, below the %v floor",
					p.Number, txt.Y, bottomLimit+headingLookahead)
			}
		}
	}
}

func TestMetricsRowOnFirstPageOnly(t *testing.T) {
	metrics := []Metric{
		{Value: "7+", Label: "Years of experience"},
		{Value: "5", Label: "Teams"},
		{Value: "10+", Label: "Apps"},
		{Value: "Cloud", Label: "Platform expertise"},
	}
	var sb strings.Builder
	sb.WriteString("Jane Doe\nEngineer\n\n")
	for i := 0; i < 120; i++ {
		sb.WriteString("plain body line that occupies one slot of vertical space\n")
	}
	doc := render(t, sb.String(), WithMetrics(metrics), WithContact("Email: a@b  |  LinkedIn: c  |  Location: d"))
	if doc.PageCount() < 2 {
		t.Fatalf("want multiple pages, got %d", doc.PageCount())
	}
	if !hasText(doc.Pages[0], "7+") {
		t.Fatal("metric value missing from first page")
	}
	if !hasText(doc.Pages[0], "Email: a@b  |  LinkedIn: c  |  Location: d") {
		t.Fatal("contact line missing from first page")
	}
	for _, p := range doc.Pages[1:] {
		if hasText(p, "7+") {
			t.Fatalf("page %d repeats the metrics row", p.Number)
		}
	}
}

func TestMetricLabelTruncatesAfterTwoLines(t *testing.T) {
	metrics := []Metric{{
		Value: "1",
		Label: strings.TrimSpace(strings.Repeat("very long metric label text ", 6)),
	}}
	doc := render(t, "Jane Doe\nEngineer\n", WithMetrics(metrics))

	// Label lines render at 8.8pt; count them.
	n := 0
	for _, txt := range pageTexts(doc.Pages[0]) {
		if txt.Size == 8.8 {
			n++
		}
	}
	if n != 2 {
		t.Fatalf("got %d label lines, want exactly 2 (silent truncation)", n)
	}
}
