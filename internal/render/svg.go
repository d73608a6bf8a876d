package render

import (
	"fmt"
	"strings"

	"eduradarbackend/internal/chart"
)

// Renderer draws chart models as SVG. It fills the rendering-surface role
// of the two-pass protocol: labels are measured with the injected measurer,
// widths are reported back to the engine, and the corrected pass is what
// gets drawn.
type Renderer struct {
	Theme    Theme
	Measurer chart.TextMeasurer
}

// NewRenderer constructs a renderer with the estimated measurer.
func NewRenderer(theme Theme) *Renderer {
	return &Renderer{
		Theme:    theme,
		Measurer: EstimatedMeasurer{},
	}
}

// Finalize runs the measurement pass for every label of the model against
// the engine and returns the corrected positions. Labels the measurer
// cannot size keep their provisional position; one bad label never blocks
// the rest.
func (r *Renderer) Finalize(engine *chart.Engine, model *chart.ChartModel) map[int]chart.LabelPosition {
	for i, label := range model.Labels {
		width := r.Measurer.Measure(label, r.Theme.FontSize)
		engine.ReportMeasurement(model.Generation, i, width)
	}
	if positions, ok := engine.FinalizePass(model.Generation); ok {
		return positions
	}
	// A reload superseded this generation; its positions are already stale.
	return model.Positions
}

// RenderSVG measures, finalizes, and renders the model as a complete SVG
// document.
func (r *Renderer) RenderSVG(engine *chart.Engine, model *chart.ChartModel) string {
	positions := r.Finalize(engine, model)
	return r.renderDocument(model, positions)
}

func (r *Renderer) renderDocument(model *chart.ChartModel, positions map[int]chart.LabelPosition) string {
	t := r.Theme
	cx := t.Width / 2
	cy := t.Height / 2

	var svg strings.Builder
	fmt.Fprintf(&svg, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %g %g">`+"\n", t.Width, t.Height)
	fmt.Fprintf(&svg, `<rect width="%g" height="%g" fill="%s"/>`+"\n", t.Width, t.Height, t.Background)

	r.drawRings(&svg, cx, cy)
	r.drawBoundaries(&svg, cx, cy, len(model.Signals))
	r.drawWedges(&svg, model)
	r.drawHoverTargets(&svg, cx, cy)
	r.drawLabels(&svg, model, positions)

	svg.WriteString("</svg>")
	return svg.String()
}

func (r *Renderer) drawRings(svg *strings.Builder, cx, cy float64) {
	t := r.Theme
	fmt.Fprintf(svg, `<circle cx="%g" cy="%g" r="%d" fill="none" stroke="%s"/>`+"\n",
		cx, cy, chart.InnerBoundaryRadius, t.RingStroke)
	for _, d := range chart.CanonicalDomains {
		fmt.Fprintf(svg, `<circle cx="%g" cy="%g" r="%g" fill="none" stroke="%s"/>`+"\n",
			cx, cy, d.RingRadius, t.RingStroke)
		label := escapeXML(d.DisplayLabel)
		fmt.Fprintf(svg, `<text x="%g" y="%g" font-family="%s" font-size="%g" fill="%s" text-anchor="middle">%s</text>`+"\n",
			cx, cy-d.RingRadius+12, t.FontFamily, t.FontSize-2, t.RingStroke, label)
	}
}

// drawBoundaries draws one faint radial line per slot boundary.
func (r *Renderer) drawBoundaries(svg *strings.Builder, cx, cy float64, n int) {
	if n == 0 {
		return
	}
	outer := chart.OuterRingRadius()
	for i := 0; i < n; i++ {
		angle := chart.SlotStart(i, n)
		from := chart.PolarToCartesian(cx, cy, chart.InnerBoundaryRadius, angle)
		to := chart.PolarToCartesian(cx, cy, outer, angle)
		fmt.Fprintf(svg, `<line x1="%.3f" y1="%.3f" x2="%.3f" y2="%.3f" stroke="%s"/>`+"\n",
			from.X, from.Y, to.X, to.Y, r.Theme.BoundaryStroke)
	}
}

func (r *Renderer) drawWedges(svg *strings.Builder, model *chart.ChartModel) {
	for _, w := range model.Wedges {
		fill := r.Theme.UnknownFill
		if w.SignalIndex >= 0 && w.SignalIndex < len(model.Signals) {
			fill = r.Theme.CategoryFill(model.Signals[w.SignalIndex].Category)
		}
		fmt.Fprintf(svg, `<path d="%s" fill="%s" fill-opacity="%g" stroke="none"/>`+"\n",
			w.Path, fill, r.Theme.SegmentOpacity)
	}
}

// drawHoverTargets emits one invisible annulus per domain ring so a viewer
// can hit-test rings natively.
func (r *Renderer) drawHoverTargets(svg *strings.Builder, cx, cy float64) {
	inner := float64(chart.InnerBoundaryRadius)
	for _, d := range chart.CanonicalDomains {
		path := chart.FullAnnulusPath(cx, cy, inner, d.RingRadius)
		fmt.Fprintf(svg, `<path d="%s" fill="transparent" fill-rule="evenodd" data-domain="%s"/>`+"\n",
			path, d.ID)
		inner = d.RingRadius
	}
}

func (r *Renderer) drawLabels(svg *strings.Builder, model *chart.ChartModel, positions map[int]chart.LabelPosition) {
	t := r.Theme
	for i, label := range model.Labels {
		pos, ok := positions[i]
		if !ok {
			continue
		}
		fmt.Fprintf(svg,
			`<text x="%.3f" y="%.3f" transform="rotate(%.3f %.3f %.3f)" font-family="%s" font-size="%g" fill="%s" text-anchor="middle" dominant-baseline="middle">%s</text>`+"\n",
			pos.X, pos.Y, pos.RotationDegrees, pos.X, pos.Y, t.FontFamily, t.FontSize, t.LabelColor, escapeXML(label))
		if model.Signals[i].ParticipantFlagged {
			marker := chart.PolarToCartesian(t.Width/2, t.Height/2,
				chart.OuterRingRadius()+6, chart.SlotCenter(i, len(model.Labels)))
			fmt.Fprintf(svg, `<circle cx="%.3f" cy="%.3f" r="3" fill="%s"/>`+"\n",
				marker.X, marker.Y, t.MarkerColor)
		}
	}
}

func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&#39;")
	return s
}
