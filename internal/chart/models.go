package chart

import "strings"

// RawRecord represents one row fetched from an upstream tabular source
// before normalization. Domain carries the raw pipe-delimited tag string.
type RawRecord struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	Description        string `json:"description"`
	SourceURL          string `json:"source_url"`
	Horizon            string `json:"horizon"`
	Domain             string `json:"domain"`
	Category           string `json:"category"`
	ParticipantFlagged bool   `json:"participant_flagged"`
}

// Signal is one normalized scan entry rendered as a label plus optional
// colored arc segments on the radar.
type Signal struct {
	ID                 string     `json:"id"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	SourceURL          string     `json:"source_url"`
	Horizon            string     `json:"horizon"`
	Domains            []DomainID `json:"domains"`
	Category           Category   `json:"category"`
	ParticipantFlagged bool       `json:"participant_flagged"`
}

// Category is one of the five STEEP classification buckets.
type Category string

const (
	CategorySocial        Category = "Social"
	CategoryTechnological Category = "Technological"
	CategoryEconomic      Category = "Economic"
	CategoryEnvironmental Category = "Environmental"
	CategoryPolitical     Category = "Political"
	CategoryUnknown       Category = "Unknown"
)

// Categories lists the known STEEP buckets in their fixed order. The order
// is the primary sort key for signals around the circle.
var Categories = [5]Category{
	CategorySocial,
	CategoryTechnological,
	CategoryEconomic,
	CategoryEnvironmental,
	CategoryPolitical,
}

// SortIndex returns the category's position in the fixed order. Unknown or
// unrecognized categories land in a trailing bucket after all known ones.
func (c Category) SortIndex() int {
	for i, known := range Categories {
		if c == known {
			return i
		}
	}
	return len(Categories)
}

// ParseCategory maps a free-text category value onto the closed STEEP
// enumeration. Anything unrecognized, including the empty string, becomes
// CategoryUnknown.
func ParseCategory(raw string) Category {
	norm := CollapseWhitespace(raw)
	for _, known := range Categories {
		if strings.EqualFold(norm, string(known)) {
			return known
		}
	}
	return CategoryUnknown
}

// LabelPosition is the computed placement of one signal label. Measured
// reports whether the position came out of the measurement-corrected pass
// or is still the provisional estimate.
type LabelPosition struct {
	X               float64 `json:"x"`
	Y               float64 `json:"y"`
	RotationDegrees float64 `json:"rotation_degrees"`
	Measured        bool    `json:"measured"`
}

// Wedge is the annular arc segment drawn for one (signal, domain) pair.
// A signal tagged with k domains produces k wedges sharing the same angular
// span but different radial bands.
type Wedge struct {
	SignalIndex int      `json:"signal_index"`
	Domain      DomainID `json:"domain"`
	InnerRadius float64  `json:"inner_radius"`
	OuterRadius float64  `json:"outer_radius"`
	StartDeg    float64  `json:"start_deg"`
	EndDeg      float64  `json:"end_deg"`
	Path        string   `json:"path"`
}
