package render

import "unicode/utf8"

// EstimatedMeasurer approximates rendered label widths from rune count.
// Average glyph width runs about 0.6 of the font size for the default font
// stack; the factor is calibrated, not derived.
type EstimatedMeasurer struct {
	CharWidthFactor float64
}

// Measure returns the estimated width of text at the given font size.
func (m EstimatedMeasurer) Measure(text string, fontSize float64) float64 {
	factor := m.CharWidthFactor
	if factor <= 0 {
		factor = 0.6
	}
	return float64(utf8.RuneCountInString(text)) * fontSize * factor
}
