// Package render draws a laid-out chart model as an SVG document. It is the
// concrete rendering surface: it owns text measurement and drives the layout
// engine's measurement pass, but never participates in layout itself.
package render

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"eduradarbackend/internal/chart"
)

// Theme controls the visual appearance of the rendered chart. Geometry is
// owned by the layout engine; themes only touch drawing.
type Theme struct {
	Width          float64           `yaml:"width"`
	Height         float64           `yaml:"height"`
	FontFamily     string            `yaml:"font_family"`
	FontSize       float64           `yaml:"font_size"`
	Background     string            `yaml:"background"`
	RingStroke     string            `yaml:"ring_stroke"`
	BoundaryStroke string            `yaml:"boundary_stroke"`
	LabelColor     string            `yaml:"label_color"`
	MarkerColor    string            `yaml:"marker_color"`
	SegmentOpacity float64           `yaml:"segment_opacity"`
	CategoryFills  map[string]string `yaml:"category_fills"`
	UnknownFill    string            `yaml:"unknown_fill"`
}

// DefaultTheme returns the built-in appearance.
func DefaultTheme() Theme {
	return Theme{
		Width:          900,
		Height:         900,
		FontFamily:     "Arial, sans-serif",
		FontSize:       11,
		Background:     "#ffffff",
		RingStroke:     "#d0d0d0",
		BoundaryStroke: "#ececec",
		LabelColor:     "#333333",
		MarkerColor:    "#f4b400",
		SegmentOpacity: 0.55,
		CategoryFills: map[string]string{
			string(chart.CategorySocial):        "#e2547a",
			string(chart.CategoryTechnological): "#4285f4",
			string(chart.CategoryEconomic):      "#f4b400",
			string(chart.CategoryEnvironmental): "#0f9d58",
			string(chart.CategoryPolitical):     "#ab47bc",
		},
		UnknownFill: "#9e9e9e",
	}
}

// LoadTheme reads a YAML theme file layered over the defaults. An empty
// path returns the defaults unchanged.
func LoadTheme(path string) (Theme, error) {
	theme := DefaultTheme()
	if path == "" {
		return theme, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("render: read theme %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return Theme{}, fmt.Errorf("render: parse theme %s: %w", path, err)
	}
	if theme.Width <= 0 || theme.Height <= 0 {
		return Theme{}, fmt.Errorf("render: theme %s: width and height must be positive", path)
	}
	return theme, nil
}

// CategoryFill returns the segment fill for a category, defaulting to the
// unknown fill.
func (t Theme) CategoryFill(c chart.Category) string {
	if fill, ok := t.CategoryFills[string(c)]; ok && fill != "" {
		return fill
	}
	return t.UnknownFill
}
