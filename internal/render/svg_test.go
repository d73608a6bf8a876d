package render

import (
	"strings"
	"testing"

	"eduradarbackend/internal/chart"
)

func buildModel(engine *chart.Engine, signals []chart.Signal) *chart.ChartModel {
	generation, positions := engine.RequestLayout(signals)
	return &chart.ChartModel{
		Generation: generation,
		Signals:    signals,
		Labels:     engine.Labels(),
		Positions:  positions,
		Wedges:     chart.BuildWedges(engine.CenterX, engine.CenterY, signals),
	}
}

func TestRenderSVGDrawsLabelsAndWedges(t *testing.T) {
	theme := DefaultTheme()
	engine := chart.NewEngine(theme.Width/2, theme.Height/2, chart.OuterRingRadius())
	renderer := NewRenderer(theme)

	signals := []chart.Signal{
		{ID: "a", Title: "Tildes & ampersands", Category: chart.CategorySocial,
			Domains: []chart.DomainID{chart.DomainEquityAccess, chart.DomainCurriculumReform}},
		{ID: "b", Title: "Flagged entry", Category: chart.CategoryPolitical,
			Domains:            []chart.DomainID{chart.DomainTeachingLearning},
			ParticipantFlagged: true},
	}

	svg := renderer.RenderSVG(engine, buildModel(engine, signals))

	if !strings.HasPrefix(svg, "<svg") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatalf("not a complete SVG document")
	}
	if !strings.Contains(svg, "Tildes &amp; ampersands") {
		t.Errorf("label text must be XML-escaped")
	}
	if strings.Count(svg, `fill-opacity`) != 3 {
		t.Errorf("expected 3 wedge paths, got %d", strings.Count(svg, `fill-opacity`))
	}
	// participant marker for the flagged signal
	if !strings.Contains(svg, `r="3"`) {
		t.Errorf("flagged signal should carry a marker")
	}
	// one hover annulus per domain ring
	if got := strings.Count(svg, `fill-rule="evenodd"`); got != len(chart.CanonicalDomains) {
		t.Errorf("expected %d hover targets, got %d", len(chart.CanonicalDomains), got)
	}
}

func TestRenderSVGAppliesMeasurementPass(t *testing.T) {
	theme := DefaultTheme()
	engine := chart.NewEngine(theme.Width/2, theme.Height/2, chart.OuterRingRadius())
	renderer := NewRenderer(theme)

	signals := []chart.Signal{{ID: "a", Title: "A reasonably long signal title"}}
	model := buildModel(engine, signals)

	positions := renderer.Finalize(engine, model)
	if len(positions) != 1 {
		t.Fatalf("expected 1 position, got %d", len(positions))
	}
	if !positions[0].Measured {
		t.Errorf("finalized positions should be measurement-corrected")
	}
	if positions[0] == model.Positions[0] {
		t.Errorf("corrected position should differ from the provisional one")
	}
}

func TestRenderSVGEmptyModel(t *testing.T) {
	theme := DefaultTheme()
	engine := chart.NewEngine(theme.Width/2, theme.Height/2, chart.OuterRingRadius())
	renderer := NewRenderer(theme)

	svg := renderer.RenderSVG(engine, buildModel(engine, nil))
	if !strings.HasPrefix(svg, "<svg") {
		t.Fatalf("empty chart should still render a document")
	}
	if strings.Count(svg, "<circle") != 1+len(chart.CanonicalDomains) {
		t.Errorf("empty chart should still draw the rings")
	}
}

func TestEstimatedMeasurerScalesWithTextAndFont(t *testing.T) {
	m := EstimatedMeasurer{}

	short := m.Measure("abcd", 10)
	if short != 4*10*0.6 {
		t.Errorf("width = %v, want %v", short, 4*10*0.6)
	}
	if m.Measure("abcdabcd", 10) <= short {
		t.Errorf("longer text must measure wider")
	}
	if m.Measure("abcd", 20) <= short {
		t.Errorf("larger font must measure wider")
	}
	// runes, not bytes
	if m.Measure("éééé", 10) != short {
		t.Errorf("multibyte runes must count once")
	}
}
