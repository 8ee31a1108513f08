// Package resume loads résumé input and classifies it into the semantic
// lines consumed by the layout engine.
package resume

import (
	"fmt"
	"os"
	"strings"
)

// LineKind classifies one body line.
type LineKind int

const (
	Blank LineKind = iota
	Heading
	Bullet
	Plain
)

// Line is one classified unit of body content. For bullets the text has
// the "- " marker already stripped.
type Line struct {
	Kind LineKind
	Text string
}

// Resume is the parsed input record: a display name, a subtitle and the
// classified body lines in original order.
type Resume struct {
	Name     string
	Subtitle string
	Lines    []Line
}

// FallbackName is used when the input holds no non-blank lines at all.
const FallbackName = "Untitled"

// defaultHeadings is the closed set of section titles recognized as
// headings in plain-text input.
var defaultHeadings = []string{
	"Contact",
	"Languages",
	"Professional Summary",
	"Current Focus",
	"Core Strengths",
	"Tools and Platforms",
	"Atlassian Ecosystem",
	"Delivery and Operations",
	"Process and Governance",
	"Experience",
	"Education",
	"Certifications",
	"Interests",
}

// Classifier tags raw body lines. Extra titles extend the default heading
// set without replacing it.
type Classifier struct {
	headings map[string]bool
}

func NewClassifier(extra ...string) *Classifier {
	h := make(map[string]bool, len(defaultHeadings)+len(extra))
	for _, t := range defaultHeadings {
		h[t] = true
	}
	for _, t := range extra {
		if t = strings.TrimSpace(t); t != "" {
			h[t] = true
		}
	}
	return &Classifier{headings: h}
}

// Classify tags a single raw line. A heading is an exact member of the
// title set that does not start with a bullet marker; a bullet starts
// with "- "; an empty trimmed line is blank; everything else is plain.
func (c *Classifier) Classify(raw string) Line {
	line := strings.TrimSpace(raw)
	switch {
	case line == "":
		return Line{Kind: Blank}
	case c.headings[line] && !strings.HasPrefix(line, "-"):
		return Line{Kind: Heading, Text: line}
	case strings.HasPrefix(line, "- "):
		return Line{Kind: Bullet, Text: strings.TrimSpace(line[2:])}
	default:
		return Line{Kind: Plain, Text: line}
	}
}

// Load reads a plain-text résumé file. A read failure is fatal; decoding
// is lossy (invalid UTF-8 is substituted, never surfaced).
func Load(path string, c *Classifier) (*Resume, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read résumé: %w", err)
	}
	return Parse(string(data), c), nil
}

// Parse splits the input into the display name (first non-blank line),
// subtitle (second non-blank line) and classified body lines. Blank lines
// in the body are preserved as separators; trailing whitespace is
// trimmed from every line.
func Parse(src string, c *Classifier) *Resume {
	src = strings.ToValidUTF8(src, "�")
	rawLines := splitLines(src)

	r := &Resume{Name: FallbackName}
	seen := 0
	for _, raw := range rawLines {
		if strings.TrimSpace(raw) != "" {
			seen++
			if seen == 1 {
				r.Name = strings.TrimSpace(raw)
				continue
			}
			if seen == 2 {
				r.Subtitle = strings.TrimSpace(raw)
				continue
			}
		}
		// Blank lines around the header pair stay in the body so the
		// original vertical rhythm is preserved.
		r.Lines = append(r.Lines, c.Classify(strings.TrimRight(raw, " \t")))
	}
	return r
}

func splitLines(src string) []string {
	src = strings.ReplaceAll(src, "\r\n", "\n")
	src = strings.TrimSuffix(src, "\n")
	if src == "" {
		return nil
	}
	return strings.Split(src, "\n")
}
