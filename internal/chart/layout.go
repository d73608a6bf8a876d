package chart

import (
	"math"
	"sync"
)

// TextMeasurer reports the rendered width of a label at a given font size.
// Text metrics belong to the rendering surface, so implementations live
// there and are injected into the layout engine.
type TextMeasurer interface {
	Measure(text string, fontSize float64) float64
}

// Layout tuning constants, in abstract chart units. Gap and BaseOffset are
// calibrated together: the uniform visual clearance between the outer ring
// and a label's near edge works out to Gap-BaseOffset once half the measured
// width is added back in the corrected pass.
const (
	DefaultLabelGap        = 52
	DefaultLabelBaseOffset = 40
	DefaultMicroAdjustment = 4

	// TitleRuneBudget caps label length before measurement. Longer titles
	// are cut to titleTruncateAt runes plus an ellipsis.
	TitleRuneBudget = 55
	titleTruncateAt = 52
)

// SlotWidth returns the angular width in degrees owned by each of n slots.
func SlotWidth(n int) float64 {
	return 360 / float64(n)
}

// SlotStart returns the start angle of slot i of n. The n slots partition
// [0, 360) exactly, with no gaps or overlaps, for any n >= 1.
func SlotStart(i, n int) float64 {
	return float64(i) * SlotWidth(n)
}

// SlotCenter returns the center angle of slot i of n.
func SlotCenter(i, n int) float64 {
	return (float64(i) + 0.5) * SlotWidth(n)
}

// Engine computes label placements around the outer ring in two passes.
// RequestLayout assigns every signal its angular slot and a provisional
// radius; once the rendering surface has mounted a label and knows its real
// width it calls ReportMeasurement, and FinalizePass swaps the corrected
// positions in wholesale. Measurements reported against a superseded
// generation are ignored, so a reload can never resurrect stale geometry.
type Engine struct {
	CenterX     float64
	CenterY     float64
	OuterRadius float64
	Gap         float64
	BaseOffset  float64
	MicroAdjust float64

	mu         sync.Mutex
	generation uint64
	labels     []string
	current    map[int]LabelPosition
	pending    map[int]LabelPosition
}

// NewEngine constructs an engine centered at (cx, cy) laying labels out
// around a ring of the given radius, with default tuning.
func NewEngine(cx, cy, outerRadius float64) *Engine {
	return &Engine{
		CenterX:     cx,
		CenterY:     cy,
		OuterRadius: outerRadius,
		Gap:         DefaultLabelGap,
		BaseOffset:  DefaultLabelBaseOffset,
		MicroAdjust: DefaultMicroAdjustment,
	}
}

// RequestLayout replaces the engine's signal list and synchronously returns
// provisional positions for every label. The returned generation token must
// accompany subsequent ReportMeasurement and FinalizePass calls. A zero
// length list yields an empty positions map.
func (e *Engine) RequestLayout(signals []Signal) (uint64, map[int]LabelPosition) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.generation++
	e.labels = make([]string, len(signals))
	e.current = make(map[int]LabelPosition, len(signals))

	for i, sig := range signals {
		e.labels[i] = TruncateTitle(sig.Title)
		e.current[i] = e.provisionalPosition(i, len(signals))
	}

	e.pending = clonePositions(e.current)
	return e.generation, clonePositions(e.current)
}

// ReportMeasurement records the rendered bounding-box width of one label
// and stages its corrected position. It reports false when the generation
// is stale, the index is out of range, or the width is unusable; in every
// such case the provisional position stays in effect for that label only.
func (e *Engine) ReportMeasurement(generation uint64, index int, width float64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if generation != e.generation {
		return false
	}
	if index < 0 || index >= len(e.labels) {
		return false
	}
	if width <= 0 || math.IsNaN(width) || math.IsInf(width, 0) {
		return false
	}

	e.pending[index] = e.correctedPosition(index, len(e.labels), width)
	return true
}

// FinalizePass atomically swaps the staged positions in as current and
// returns them. This is the only point where the stale/current boundary
// moves; a pass finalized against a superseded generation is discarded.
func (e *Engine) FinalizePass(generation uint64) (map[int]LabelPosition, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if generation != e.generation {
		return nil, false
	}

	e.current = e.pending
	e.pending = clonePositions(e.current)
	return clonePositions(e.current), true
}

// Positions returns a copy of the current positions map.
func (e *Engine) Positions() map[int]LabelPosition {
	e.mu.Lock()
	defer e.mu.Unlock()
	return clonePositions(e.current)
}

// Labels returns the truncated label text per signal index for the current
// generation. Truncation happens before measurement because it changes the
// width that feeds the corrected pass.
func (e *Engine) Labels() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]string, len(e.labels))
	copy(out, e.labels)
	return out
}

func (e *Engine) provisionalPosition(i, n int) LabelPosition {
	angle := SlotCenter(i, n)
	radius := e.OuterRadius + e.Gap - e.BaseOffset
	pos := PolarToCartesian(e.CenterX, e.CenterY, radius, angle)
	return LabelPosition{
		X:               pos.X,
		Y:               pos.Y,
		RotationDegrees: NormalizeRotation(angle + 90),
	}
}

func (e *Engine) correctedPosition(i, n int, width float64) LabelPosition {
	angle := SlotCenter(i, n)
	angleRad := angle * math.Pi / 180

	// sin(2a) peaks at the diagonals and vanishes on the axes, matching
	// where the baseline/rotation interaction is worst.
	rotationFactor := math.Abs(math.Sin(2 * angleRad))
	baselineShift := rotationFactor * e.MicroAdjust

	radius := e.OuterRadius + e.Gap - e.BaseOffset + width/2 - baselineShift
	pos := PolarToCartesian(e.CenterX, e.CenterY, radius, angle)
	return LabelPosition{
		X:               pos.X,
		Y:               pos.Y,
		RotationDegrees: NormalizeRotation(angle + 90),
		Measured:        true,
	}
}

// TruncateTitle enforces the label character budget on an already
// normalized title.
func TruncateTitle(title string) string {
	runes := []rune(title)
	if len(runes) <= TitleRuneBudget {
		return title
	}
	return string(runes[:titleTruncateAt]) + "…"
}

func clonePositions(src map[int]LabelPosition) map[int]LabelPosition {
	out := make(map[int]LabelPosition, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
