// Package config loads the optional TOML run configuration: input and
// output paths, contact details, metric cards and theme overrides.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/wudi/resumekit/document"
	"github.com/wudi/resumekit/theme"
)

// DefaultPath is where the CLI looks for a configuration file unless told
// otherwise.
const DefaultPath = "resumekit.toml"

// Metric is one card of the first-page metrics row. The row geometry is
// fixed; only the data is configurable.
type Metric struct {
	Value string `toml:"value"`
	Label string `toml:"label"`
}

// Contact feeds the first-page contact line.
type Contact struct {
	Email    string `toml:"email"`
	LinkedIn string `toml:"linkedin"`
	Location string `toml:"location"`
}

// Line renders the contact line in its fixed wire format. Existing
// consumers depend on the exact separator, so do not reformat it.
func (c Contact) Line() string {
	return fmt.Sprintf("Email: %s  |  LinkedIn: %s  |  Location: %s", c.Email, c.LinkedIn, c.Location)
}

// IsZero reports whether no contact field is set.
func (c Contact) IsZero() bool { return c == Contact{} }

// Palette carries raw theme overrides. Each entry is an RGB triple with
// components in [0, 1]; absent entries keep the default color.
type Palette struct {
	Background []float64 `toml:"background"`
	Panel      []float64 `toml:"panel"`
	PanelAlt   []float64 `toml:"panel_alt"`
	Border     []float64 `toml:"border"`
	Text       []float64 `toml:"text"`
	Muted      []float64 `toml:"muted"`
	Accent     []float64 `toml:"accent"`
	AccentAlt  []float64 `toml:"accent_alt"`
}

// Config is the full run configuration.
type Config struct {
	Input         string   `toml:"input"`
	Output        string   `toml:"output"`
	Markdown      bool     `toml:"markdown"`
	ExtraHeadings []string `toml:"extra_headings"`
	Contact       Contact  `toml:"contact"`
	Metrics       []Metric `toml:"metrics"`
	Theme         Palette  `toml:"theme"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Input:  "cv.txt",
		Output: "cv.pdf",
		Metrics: []Metric{
			{Value: "7+", Label: "Years of experience"},
			{Value: "5", Label: "Enterprise environments supported"},
			{Value: "10+", Label: "Platform integrations delivered"},
			{Value: "Cloud & DC", Label: "Platform expertise"},
		},
	}
}

// Load reads the TOML file at path over the defaults. A missing file is
// fine when optional is true.
func Load(path string, optional bool) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// BuildTheme applies the palette overrides to the default theme and
// validates the result.
func (c Config) BuildTheme() (theme.Theme, error) {
	t := theme.Default()
	overrides := []struct {
		name string
		src  []float64
		dst  *document.Color
	}{
		{"background", c.Theme.Background, &t.Background},
		{"panel", c.Theme.Panel, &t.Panel},
		{"panel_alt", c.Theme.PanelAlt, &t.PanelAlt},
		{"border", c.Theme.Border, &t.Border},
		{"text", c.Theme.Text, &t.Text},
		{"muted", c.Theme.Muted, &t.Muted},
		{"accent", c.Theme.Accent, &t.Accent},
		{"accent_alt", c.Theme.AccentAlt, &t.AccentAlt},
	}
	for _, o := range overrides {
		if o.src == nil {
			continue
		}
		if len(o.src) != 3 {
			return t, fmt.Errorf("theme.%s: want 3 components, got %d", o.name, len(o.src))
		}
		*o.dst = document.Color{R: o.src[0], G: o.src[1], B: o.src[2]}
	}
	if err := t.Validate(); err != nil {
		return t, err
	}
	return t, nil
}
